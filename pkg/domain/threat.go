package domain

import "time"

// ThreatLevel is the severity band derived from a match score
type ThreatLevel string

const (
	LevelHigh   ThreatLevel = "high"
	LevelMedium ThreatLevel = "medium"
	LevelLow    ThreatLevel = "low"
)

// Reportable reports whether the level qualifies for threat history and alerting
func (l ThreatLevel) Reportable() bool {
	return l == LevelHigh || l == LevelMedium
}

// Source identifies which feed produced a detection
type Source string

const (
	SourceCertStream Source = "certstream"
	SourceLookup     Source = "lookup"
)

// ThreatStatus is the lifecycle state of a recorded threat
type ThreatStatus string

const (
	StatusActive    ThreatStatus = "active"
	StatusDismissed ThreatStatus = "dismissed"
)

// Threat is a reportable detection. Status is the only field mutated after
// creation, by an explicit dismiss.
type Threat struct {
	ID             string       `json:"id"`
	Domain         string       `json:"domain"`
	Source         Source       `json:"source"`
	DetectedAt     time.Time    `json:"detected_at"`
	Level          ThreatLevel  `json:"level"`
	Score          float64      `json:"score"`
	MatchedKeyword string       `json:"matched_keyword"`
	MatchType      MatchType    `json:"match_type"`
	Certificate    *CertInfo    `json:"certificate,omitempty"`
	Status         ThreatStatus `json:"status"`
}

// CertInfo carries the certificate fields kept as evidence for push-feed detections
type CertInfo struct {
	Issuer       string   `json:"issuer,omitempty"`
	SerialNumber string   `json:"serial_number,omitempty"`
	NotBefore    string   `json:"not_before,omitempty"`
	NotAfter     string   `json:"not_after,omitempty"`
	AllDomains   []string `json:"all_domains,omitempty"`
}

// FeedRecord is a lightweight envelope kept in the per-feed recency buffers,
// independent from the threat history. A record may exist without being
// reportable.
type FeedRecord struct {
	Domain    string      `json:"domain"`
	Match     MatchResult `json:"match"`
	Level     ThreatLevel `json:"level"`
	Timestamp time.Time   `json:"timestamp"`
	Cert      *CertInfo   `json:"cert,omitempty"`
}

// UsageCounter tracks daily poll-feed quota consumption. Count resets once
// per calendar day, on first evaluation after rollover.
type UsageCounter struct {
	Count     int       `json:"count"`
	Date      string    `json:"date"` // calendar day, formatted 2006-01-02
	LastCheck time.Time `json:"last_check"`
}

// Stats are running counters for the lifetime of the process
type Stats struct {
	CertsProcessed    int `json:"certs_processed"`
	CertStreamMatched int `json:"certstream_matched"`
	LookupFound       int `json:"lookup_found"`
	TotalThreats      int `json:"total_threats"`
	AlertsSent        int `json:"alerts_sent"`
}

// Settings holds user-adjustable behavior. Changes take effect on the next
// scheduling decision, not retroactively.
type Settings struct {
	SimilarityThreshold   float64 `json:"similarity_threshold"`
	AutoAlerts            bool    `json:"auto_alerts"`
	CertStreamFiltering   bool    `json:"certstream_filtering"`
	LookupEnabled         bool    `json:"lookup_enabled"`
	LookupIntervalMinutes int     `json:"lookup_interval_minutes"`
}

// DefaultSettings mirrors the first-run defaults
func DefaultSettings() Settings {
	return Settings{
		SimilarityThreshold:   0.75,
		AutoAlerts:            true,
		CertStreamFiltering:   true,
		LookupEnabled:         true,
		LookupIntervalMinutes: 20,
	}
}
