package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/squatwatch/squatwatch/pkg/domain"
	"github.com/squatwatch/squatwatch/pkg/feed"
	"github.com/squatwatch/squatwatch/pkg/matcher"
	"github.com/squatwatch/squatwatch/pkg/store"
)

//go:generate moq -out mocks/persister.go -pkg mocks -skip-ensure -fmt goimports . Persister
//go:generate moq -out mocks/lookuper.go -pkg mocks -skip-ensure -fmt goimports . Lookuper
//go:generate moq -out mocks/dispatcher.go -pkg mocks -skip-ensure -fmt goimports . Dispatcher

// persistence keys, one JSON blob per key
const (
	keyDomains    = "domains"
	keySettings   = "settings"
	keyThreats    = "threats"
	keyUsage      = "usage"
	keyCertFeed   = "certstream_feed"
	keyLookupFeed = "lookup_feed"
)

// dailyQuota is the poll-feed lookup ceiling per calendar day
const dailyQuota = 5

// Persister is the key-value persistence collaborator, last write wins per key
type Persister interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	DeleteAll(ctx context.Context) error
}

// Lookuper is the registration-lookup collaborator, one bounded request per
// watched domain
type Lookuper interface {
	Lookup(ctx context.Context, domain string) (*feed.LookupResult, error)
}

// Dispatcher decides and performs external alerting for new threats
type Dispatcher interface {
	MaybeAlert(ctx context.Context, threat domain.Threat, autoAlerts bool) bool
	TestAlert(ctx context.Context) error
	Configured() bool
}

// Monitor is the orchestrator: it owns the watch-list, settings, counters,
// feed buffers and threat history, and wires both feeds to the scoring and
// alerting pipeline. All mutations of shared state are serialized by a single
// mutex; scoring is pure and runs outside of it.
type Monitor struct {
	persist    Persister
	lookup     Lookuper
	dispatcher Dispatcher

	mu            sync.Mutex
	watchlist     *store.Watchlist
	threats       *store.Threats
	certRing      *store.Ring
	lookupRing    *store.Ring
	settings      domain.Settings
	stats         domain.Stats
	usage         domain.UsageCounter
	certPaused    bool
	certConnected bool
	startTime     time.Time

	schedMu    sync.Mutex
	pollCancel context.CancelFunc
	pollWG     sync.WaitGroup
	runCtx     context.Context

	// restartMu serializes whole stop-then-reschedule sequences, passMu
	// serializes lookup passes; schedMu only guards the fields above
	restartMu sync.Mutex
	passMu    sync.Mutex

	// overridable for deterministic tests
	nowFn  func() time.Time
	warmup time.Duration
	pacing time.Duration
}

// Params configures a Monitor
type Params struct {
	Persister  Persister
	Lookuper   Lookuper
	Dispatcher Dispatcher
}

// New creates a monitor with default settings; call Load to restore persisted
// state, then Run to start scheduling.
func New(p Params) *Monitor {
	return &Monitor{
		persist:    p.Persister,
		lookup:     p.Lookuper,
		dispatcher: p.Dispatcher,
		watchlist:  store.NewWatchlist(),
		threats:    store.NewThreats(),
		certRing:   store.NewRing(store.DefaultRingCap),
		lookupRing: store.NewRing(store.DefaultRingCap),
		settings:   domain.DefaultSettings(),
		startTime:  time.Now(),
		nowFn:      time.Now,
		warmup:     30 * time.Second,
		pacing:     time.Second,
	}
}

// Load restores persisted state. Missing keys keep defaults; unreadable blobs
// are logged and skipped rather than failing startup.
func (m *Monitor) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	load := func(key string, v any) {
		data, err := m.persist.Load(ctx, key)
		if err != nil {
			lgr.Printf("[WARN] failed to load %s: %v", key, err)
			return
		}
		if data == nil {
			return
		}
		if err := json.Unmarshal(data, v); err != nil {
			lgr.Printf("[WARN] failed to parse stored %s: %v", key, err)
		}
	}

	var domains []string
	load(keyDomains, &domains)
	m.watchlist.Replace(domains)

	settings := domain.DefaultSettings()
	load(keySettings, &settings)
	m.settings = settings

	var threats []domain.Threat
	load(keyThreats, &threats)
	m.threats.Replace(threats)

	load(keyUsage, &m.usage)

	var certFeed, lookupFeed []domain.FeedRecord
	load(keyCertFeed, &certFeed)
	m.certRing.Replace(certFeed)
	load(keyLookupFeed, &lookupFeed)
	m.lookupRing.Replace(lookupFeed)

	lgr.Printf("[INFO] state loaded: %d domains, %d threats", m.watchlist.Len(), m.threats.Len())
	return nil
}

// Run starts poll scheduling and blocks until ctx is canceled
func (m *Monitor) Run(ctx context.Context) {
	m.schedMu.Lock()
	m.runCtx = ctx
	m.schedMu.Unlock()

	m.restartPolling()
	<-ctx.Done()

	m.restartMu.Lock()
	m.stopPolling()
	m.restartMu.Unlock()
}

// save marshals v and persists it under key, best effort
func (m *Monitor) save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		lgr.Printf("[ERROR] failed to marshal %s: %v", key, err)
		return
	}
	if err := m.persist.Save(context.Background(), key, data); err != nil {
		lgr.Printf("[WARN] failed to save %s: %v", key, err)
	}
}

// AddDomain validates and adds a protected domain, starting poll scheduling
// when the list becomes non-empty.
func (m *Monitor) AddDomain(dom string) error {
	m.mu.Lock()
	if err := m.watchlist.Add(dom); err != nil {
		m.mu.Unlock()
		return err
	}
	domains := m.watchlist.Domains()
	m.mu.Unlock()

	m.save(keyDomains, domains)
	lgr.Printf("[INFO] added domain to monitoring: %s", matcher.Normalize(dom))
	m.restartPolling()
	return nil
}

// RemoveDomain removes a protected domain, stopping poll scheduling when the
// list becomes empty.
func (m *Monitor) RemoveDomain(dom string) error {
	m.mu.Lock()
	if !m.watchlist.Remove(dom) {
		m.mu.Unlock()
		return fmt.Errorf("domain not monitored: %s", dom)
	}
	domains := m.watchlist.Domains()
	m.mu.Unlock()

	m.save(keyDomains, domains)
	lgr.Printf("[INFO] removed domain from monitoring: %s", dom)
	m.restartPolling()
	return nil
}

// Domains returns the watch-list in order
func (m *Monitor) Domains() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.watchlist.Domains()
}

// DismissThreat marks a threat dismissed; unknown ids are a no-op
func (m *Monitor) DismissThreat(id string) {
	m.mu.Lock()
	m.threats.Dismiss(id)
	threats := m.threats.All()
	m.mu.Unlock()
	m.save(keyThreats, threats)
}

// Threats returns threats matching the optional level/source/status filters,
// most recent first.
func (m *Monitor) Threats(level domain.ThreatLevel, source domain.Source, status domain.ThreatStatus) []domain.Threat {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.threats.Filter(func(t domain.Threat) bool {
		if level != "" && t.Level != level {
			return false
		}
		if source != "" && t.Source != source {
			return false
		}
		if status != "" && t.Status != status {
			return false
		}
		return true
	})
}

// CertFeed returns the certstream recency buffer, newest first
func (m *Monitor) CertFeed() []domain.FeedRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.certRing.Records()
}

// LookupFeed returns the lookup recency buffer, newest first
func (m *Monitor) LookupFeed() []domain.FeedRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookupRing.Records()
}

// ClearCertFeed empties the certstream buffer
func (m *Monitor) ClearCertFeed() {
	m.mu.Lock()
	m.certRing.Clear()
	m.mu.Unlock()
	m.save(keyCertFeed, []domain.FeedRecord{})
}

// ClearLookupFeed empties the lookup buffer
func (m *Monitor) ClearLookupFeed() {
	m.mu.Lock()
	m.lookupRing.Clear()
	m.mu.Unlock()
	m.save(keyLookupFeed, []domain.FeedRecord{})
}

// PauseCertStream stops scoring of inbound certificate records; records are
// still counted while paused.
func (m *Monitor) PauseCertStream(paused bool) {
	m.mu.Lock()
	m.certPaused = paused
	m.mu.Unlock()
	if paused {
		lgr.Printf("[INFO] certstream feed paused")
		return
	}
	lgr.Printf("[INFO] certstream feed resumed")
}

// Settings returns the current settings
func (m *Monitor) Settings() domain.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// UpdateSettings validates and applies new settings. Scheduling-related
// changes take effect on the next scheduling decision.
func (m *Monitor) UpdateSettings(s domain.Settings) error {
	if s.SimilarityThreshold < 0 || s.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity threshold must be within [0,1]")
	}
	if s.LookupIntervalMinutes < 1 {
		return fmt.Errorf("lookup interval must be at least 1 minute")
	}

	m.mu.Lock()
	m.settings = s
	m.mu.Unlock()

	m.save(keySettings, s)
	m.restartPolling()
	return nil
}

// Usage returns the current quota state, applying day rollover first
func (m *Monitor) Usage() domain.UsageCounter {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollUsageLocked()
	return m.usage
}

// ResetUsage zeroes the daily counter on operator request
func (m *Monitor) ResetUsage() {
	m.mu.Lock()
	m.usage.Count = 0
	m.usage.Date = m.nowFn().Format("2006-01-02")
	usage := m.usage
	m.mu.Unlock()
	m.save(keyUsage, usage)
	lgr.Printf("[INFO] lookup usage counter reset")
}

// TestAlert sends an operator-triggered test message
func (m *Monitor) TestAlert(ctx context.Context) error {
	return m.dispatcher.TestAlert(ctx)
}

// ClearAll drops all state: watch-list, threats, buffers, counters, usage
func (m *Monitor) ClearAll(ctx context.Context) error {
	m.mu.Lock()
	m.watchlist.Clear()
	m.threats.Clear()
	m.certRing.Clear()
	m.lookupRing.Clear()
	m.stats = domain.Stats{}
	m.usage = domain.UsageCounter{}
	m.mu.Unlock()

	if err := m.persist.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear persisted state: %w", err)
	}
	lgr.Printf("[WARN] all monitor data cleared")
	m.restartPolling()
	return nil
}

// rollUsageLocked resets the quota counter on the first evaluation of a new
// calendar day. Callers must hold mu.
func (m *Monitor) rollUsageLocked() {
	today := m.nowFn().Format("2006-01-02")
	if m.usage.Date != today {
		m.usage.Count = 0
		m.usage.Date = today
	}
}

// newThreat builds a threat record for a reportable detection
func (m *Monitor) newThreat(dom string, source domain.Source, res domain.MatchResult, level domain.ThreatLevel, cert *domain.CertInfo) domain.Threat {
	return domain.Threat{
		ID:             uuid.NewString(),
		Domain:         dom,
		Source:         source,
		DetectedAt:     m.nowFn(),
		Level:          level,
		Score:          res.Score,
		MatchedKeyword: res.Keyword,
		MatchType:      res.Type,
		Certificate:    cert,
		Status:         domain.StatusActive,
	}
}

// dispatchAlert hands a recorded threat to the alert collaborator,
// fire-and-forget: recording never waits on delivery.
func (m *Monitor) dispatchAlert(threat domain.Threat, autoAlerts bool) {
	go func() {
		if !m.dispatcher.MaybeAlert(context.Background(), threat, autoAlerts) {
			return
		}
		promAlertsSent.Inc()
		m.mu.Lock()
		m.stats.AlertsSent++
		m.mu.Unlock()
	}()
}
