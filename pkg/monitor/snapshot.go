package monitor

import (
	"time"

	"github.com/squatwatch/squatwatch/pkg/domain"
)

// Status is the live view used by the status endpoint
type Status struct {
	UptimeSeconds       int64        `json:"uptime_seconds"`
	CertStreamConnected bool         `json:"certstream_connected"`
	CertStreamPaused    bool         `json:"certstream_paused"`
	LookupEnabled       bool         `json:"lookup_enabled"`
	AlertsConfigured    bool         `json:"alerts_configured"`
	QuotaUsed           int          `json:"quota_used"`
	QuotaLimit          int          `json:"quota_limit"`
	WatchedDomains      int          `json:"watched_domains"`
	ActiveThreats       int          `json:"active_threats"`
	Stats               domain.Stats `json:"stats"`
}

// Snapshot is the full exportable state, one serializable structure
type Snapshot struct {
	Threats    []domain.Threat     `json:"threats"`
	CertFeed   []domain.FeedRecord `json:"certstream"`
	LookupFeed []domain.FeedRecord `json:"lookup"`
	Domains    []string            `json:"domains"`
	Stats      domain.Stats        `json:"stats"`
	Settings   domain.Settings     `json:"settings"`
	Usage      domain.UsageCounter `json:"usage"`
	ExportTime time.Time           `json:"export_time"`
}

// Status reports the current operational state
func (m *Monitor) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollUsageLocked()

	active := m.threats.Filter(func(t domain.Threat) bool { return t.Status == domain.StatusActive })
	return Status{
		UptimeSeconds:       int64(time.Since(m.startTime).Seconds()),
		CertStreamConnected: m.certConnected,
		CertStreamPaused:    m.certPaused,
		LookupEnabled:       m.settings.LookupEnabled,
		AlertsConfigured:    m.dispatcher.Configured(),
		QuotaUsed:           m.usage.Count,
		QuotaLimit:          dailyQuota,
		WatchedDomains:      m.watchlist.Len(),
		ActiveThreats:       len(active),
		Stats:               m.stats,
	}
}

// Export returns a read-only snapshot of the whole monitor state
func (m *Monitor) Export() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Threats:    m.threats.All(),
		CertFeed:   m.certRing.Records(),
		LookupFeed: m.lookupRing.Records(),
		Domains:    m.watchlist.Domains(),
		Stats:      m.stats,
		Settings:   m.settings,
		Usage:      m.usage,
		ExportTime: m.nowFn(),
	}
}
