package store

import "github.com/squatwatch/squatwatch/pkg/domain"

// Threats is the deduplicated history of reportable detections, most recent
// first. It is an audit trail: unbounded except by an explicit Clear, unlike
// the per-feed recency rings. Not safe for concurrent use on its own; the
// monitor serializes access.
type Threats struct {
	history []domain.Threat
}

// NewThreats creates an empty threat history
func NewThreats() *Threats {
	return &Threats{}
}

// Record prepends a threat to the history
func (t *Threats) Record(threat domain.Threat) {
	t.history = append([]domain.Threat{threat}, t.history...)
}

// FindDuplicate returns the existing threat for the same (domain, source)
// pair, or nil. Cross-source duplicates are independent detections and are
// not considered duplicates.
func (t *Threats) FindDuplicate(dom string, source domain.Source) *domain.Threat {
	for i := range t.history {
		if t.history[i].Domain == dom && t.history[i].Source == source {
			return &t.history[i]
		}
	}
	return nil
}

// Dismiss transitions a threat to dismissed. Unknown or already-dismissed
// ids are a no-op, not an error.
func (t *Threats) Dismiss(id string) {
	for i := range t.history {
		if t.history[i].ID == id {
			t.history[i].Status = domain.StatusDismissed
			return
		}
	}
}

// Filter returns threats satisfying the predicate, preserving order. The
// result is a copy; the underlying history is never mutated through it.
func (t *Threats) Filter(pred func(domain.Threat) bool) []domain.Threat {
	res := []domain.Threat{}
	for _, th := range t.history {
		if pred(th) {
			res = append(res, th)
		}
	}
	return res
}

// All returns a copy of the full history, most recent first
func (t *Threats) All() []domain.Threat {
	res := make([]domain.Threat, len(t.history))
	copy(res, t.history)
	return res
}

// Len returns the number of recorded threats
func (t *Threats) Len() int { return len(t.history) }

// Clear drops the whole history
func (t *Threats) Clear() { t.history = nil }

// Replace swaps in a previously persisted history, used at startup
func (t *Threats) Replace(history []domain.Threat) {
	t.history = append([]domain.Threat(nil), history...)
}
