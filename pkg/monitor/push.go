package monitor

import (
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/squatwatch/squatwatch/pkg/domain"
	"github.com/squatwatch/squatwatch/pkg/feed"
	"github.com/squatwatch/squatwatch/pkg/matcher"
)

// maxScoreWorkers bounds parallel scoring of domains extracted from a single
// certificate. Scoring is pure, only the write-back needs the lock.
const maxScoreWorkers = 4

// HandleRecord processes one certificate-stream record: extracts every
// subject domain, scores each against the full watch-list and feeds matches
// into the recording/alerting path. A single certificate can yield zero, one
// or multiple match events. Paused or filtering-disabled records are counted
// but not scored.
func (m *Monitor) HandleRecord(rec feed.Record) {
	m.mu.Lock()
	m.stats.CertsProcessed++
	paused := m.certPaused
	filtering := m.settings.CertStreamFiltering
	threshold := m.settings.SimilarityThreshold
	watch := m.watchlist.Domains()
	m.mu.Unlock()

	promCertsProcessed.Inc()

	if paused || !filtering || len(watch) == 0 {
		return
	}

	domains := rec.Data.LeafCert.AllDomains
	candidates := make([]string, len(domains))
	results := make([]domain.MatchResult, len(domains))

	eng := matcher.New(threshold)
	var g errgroup.Group
	g.SetLimit(maxScoreWorkers)
	for i, raw := range domains {
		g.Go(func() error {
			candidates[i] = matcher.Normalize(raw)
			results[i] = eng.Match(candidates[i], watch)
			return nil
		})
	}
	_ = g.Wait() // scoring never errors

	for i, res := range results {
		if !res.Matched {
			continue
		}
		m.recordCertMatch(candidates[i], res, rec.Data.LeafCert)
	}
}

// epochToRFC3339 converts a unix-seconds timestamp to a readable form,
// empty for the zero value upstream uses for missing fields
func epochToRFC3339(epoch float64) string {
	if epoch == 0 {
		return ""
	}
	return time.Unix(int64(epoch), 0).UTC().Format(time.RFC3339)
}

// HandleConnStatus tracks the push-feed connection state for status reporting
func (m *Monitor) HandleConnStatus(connected bool) {
	m.mu.Lock()
	m.certConnected = connected
	m.mu.Unlock()
}

// recordCertMatch appends a match to the certstream buffer and, when the
// level is reportable, records a threat and triggers alerting. The push path
// does not deduplicate: repeat issuance is an independent detection.
func (m *Monitor) recordCertMatch(dom string, res domain.MatchResult, leaf *feed.LeafCert) {
	level := matcher.Classify(res.Score)
	cert := &domain.CertInfo{
		Issuer:       leaf.IssuerCN(),
		SerialNumber: leaf.SerialNumber,
		NotBefore:    epochToRFC3339(leaf.NotBefore),
		NotAfter:     epochToRFC3339(leaf.NotAfter),
		AllDomains:   leaf.AllDomains,
	}

	m.mu.Lock()
	m.stats.CertStreamMatched++
	m.certRing.Add(domain.FeedRecord{
		Domain:    dom,
		Match:     res,
		Level:     level,
		Timestamp: m.nowFn(),
		Cert:      cert,
	})
	certFeed := m.certRing.Records()

	var threat *domain.Threat
	var threats []domain.Threat
	autoAlerts := m.settings.AutoAlerts
	if level.Reportable() {
		t := m.newThreat(dom, domain.SourceCertStream, res, level, cert)
		m.threats.Record(t)
		m.stats.TotalThreats++
		threat = &t
		threats = m.threats.All()
	}
	m.mu.Unlock()

	promMatches.WithLabelValues(string(domain.SourceCertStream)).Inc()
	m.save(keyCertFeed, certFeed)

	if threat == nil {
		return
	}
	promThreats.WithLabelValues(string(level)).Inc()
	m.save(keyThreats, threats)
	lgr.Printf("[WARN] %s threat detected from certstream: %s (matched %s, %s)",
		threat.Level, threat.Domain, threat.MatchedKeyword, threat.MatchType)
	m.dispatchAlert(*threat, autoAlerts)
}
