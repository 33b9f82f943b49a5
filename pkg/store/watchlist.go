package store

import (
	"fmt"
	"regexp"
	"strings"
)

// domainRe is a deliberately permissive shape check; real validation belongs
// to the registrar, this only rejects obvious garbage at the boundary.
var domainRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9.-]*[a-z0-9])?$`)

// Watchlist is the ordered set of protected domains. Order matters: the
// match engine's first-seen-wins tie-break depends on it. Not safe for
// concurrent use on its own; the monitor serializes access.
type Watchlist struct {
	domains []string
}

// NewWatchlist creates an empty watch-list
func NewWatchlist() *Watchlist {
	return &Watchlist{}
}

// Add validates and appends a domain. Rejects malformed input and
// duplicates without mutating state.
func (w *Watchlist) Add(dom string) error {
	dom = strings.ToLower(strings.TrimSpace(dom))
	if dom == "" {
		return fmt.Errorf("empty domain")
	}
	if !domainRe.MatchString(dom) {
		return fmt.Errorf("invalid domain format: %q", dom)
	}
	for _, d := range w.domains {
		if d == dom {
			return fmt.Errorf("domain already monitored: %s", dom)
		}
	}
	w.domains = append(w.domains, dom)
	return nil
}

// Remove deletes a domain, preserving the order of the rest. Returns false
// if the domain was not present.
func (w *Watchlist) Remove(dom string) bool {
	dom = strings.ToLower(strings.TrimSpace(dom))
	for i, d := range w.domains {
		if d == dom {
			w.domains = append(w.domains[:i], w.domains[i+1:]...)
			return true
		}
	}
	return false
}

// Domains returns a copy in insertion order
func (w *Watchlist) Domains() []string {
	res := make([]string, len(w.domains))
	copy(res, w.domains)
	return res
}

// Len returns the number of watched domains
func (w *Watchlist) Len() int { return len(w.domains) }

// Clear drops all watched domains
func (w *Watchlist) Clear() { w.domains = nil }

// Replace swaps in a previously persisted list, used at startup
func (w *Watchlist) Replace(domains []string) {
	w.domains = append([]string(nil), domains...)
}
