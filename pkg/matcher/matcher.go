package matcher

import (
	"strings"

	"github.com/squatwatch/squatwatch/pkg/domain"
)

// substringScore is the fixed score assigned to containment matches. It can
// tie with a similarity score for another entry; ties keep the first entry
// seen, in watch-list order.
const substringScore = 0.9

// Matcher scores candidate domains against the watch-list. The similarity
// threshold gates the "similar" branch only; exact and substring matches are
// unaffected by it.
type Matcher struct {
	Threshold float64
}

// New creates a matcher with the given similarity threshold
func New(threshold float64) *Matcher {
	return &Matcher{Threshold: threshold}
}

// Match finds the best-scoring watch entry for a candidate domain. The
// candidate must be pre-normalized with Normalize. Exact matches short-circuit
// at score 1.0; substring containment scores a fixed 0.9; similarity is
// adopted when it meets the threshold and strictly beats the current best.
func (m *Matcher) Match(candidate string, watchlist []string) domain.MatchResult {
	best := domain.MatchResult{Type: domain.MatchNone}

	for _, entry := range watchlist {
		if candidate == entry {
			return domain.MatchResult{Matched: true, Score: 1.0, Type: domain.MatchExact, Keyword: entry}
		}

		if strings.Contains(candidate, entry) || strings.Contains(entry, candidate) {
			if substringScore > best.Score {
				best = domain.MatchResult{Matched: true, Score: substringScore, Type: domain.MatchSubstring, Keyword: entry}
			}
		}

		if sim := Similarity(candidate, entry); sim >= m.Threshold && sim > best.Score {
			best = domain.MatchResult{Matched: true, Score: sim, Type: domain.MatchSimilar, Keyword: entry}
		}
	}

	return best
}

// Normalize prepares a raw observed domain for matching: strips a leading
// wildcard marker and lowercases. Both feeds must go through this to keep
// scores comparable.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(raw), "*."))
}
