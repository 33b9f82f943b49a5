package domain

// MatchType classifies how a candidate domain matched a watched entry
type MatchType string

const (
	MatchExact     MatchType = "exact"
	MatchSubstring MatchType = "substring"
	MatchSimilar   MatchType = "similar"
	MatchNone      MatchType = "none"
)

// MatchResult is the outcome of scoring a candidate domain against the watch-list.
// Keyword holds the watched entry that produced the best score.
type MatchResult struct {
	Matched bool      `json:"matched"`
	Score   float64   `json:"score"`
	Type    MatchType `json:"type"`
	Keyword string    `json:"keyword,omitempty"`
}
