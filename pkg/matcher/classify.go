package matcher

import "github.com/squatwatch/squatwatch/pkg/domain"

// classification bands are fixed and independent of the user-configurable
// similarity threshold: the threshold controls detection sensitivity, these
// control alert severity.
const (
	highThreshold   = 0.90
	mediumThreshold = 0.75
)

// Classify maps a match score to a threat level band
func Classify(score float64) domain.ThreatLevel {
	switch {
	case score >= highThreshold:
		return domain.LevelHigh
	case score >= mediumThreshold:
		return domain.LevelMedium
	default:
		return domain.LevelLow
	}
}
