package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/squatwatch/squatwatch/pkg/domain"
	"github.com/squatwatch/squatwatch/pkg/matcher"
)

// restartPolling cancels any scheduled passes and reschedules from scratch
// per the current settings and watch-list. Safe to call redundantly; a no-op
// before Run provides the context.
func (m *Monitor) restartPolling() {
	// the whole stop-then-reschedule runs under restartMu; interleaved
	// restarts from concurrent mutations would otherwise overwrite each
	// other's cancel handle and leak a running loop
	m.restartMu.Lock()
	defer m.restartMu.Unlock()

	m.stopPolling()

	m.schedMu.Lock()
	runCtx := m.runCtx
	m.schedMu.Unlock()
	if runCtx == nil {
		return
	}

	m.mu.Lock()
	enabled := m.settings.LookupEnabled && m.watchlist.Len() > 0
	interval := time.Duration(m.settings.LookupIntervalMinutes) * time.Minute
	m.mu.Unlock()
	if !enabled {
		return
	}

	ctx, cancel := context.WithCancel(runCtx)
	m.schedMu.Lock()
	m.pollCancel = cancel
	m.pollWG.Add(1)
	m.schedMu.Unlock()

	go m.pollLoop(ctx, interval)
	lgr.Printf("[INFO] lookup monitoring scheduled every %v", interval)
}

// stopPolling cancels pending and recurring schedule entries and waits for an
// in-flight pass to notice. Idempotent.
func (m *Monitor) stopPolling() {
	m.schedMu.Lock()
	cancel := m.pollCancel
	m.pollCancel = nil
	m.schedMu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.pollWG.Wait()
}

// pollLoop runs the warm-up delay, then a pass per interval tick, until canceled
func (m *Monitor) pollLoop(ctx context.Context, interval time.Duration) {
	defer m.pollWG.Done()

	select {
	case <-ctx.Done():
		return
	case <-time.After(m.warmup):
	}
	m.runLookupPass(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.runLookupPass(ctx)
		}
	}
}

// TriggerLookupNow starts a manual pass, subject to the same enablement and
// quota checks as a scheduled one. The pass runs in the background; the
// error reports only why it could not start.
func (m *Monitor) TriggerLookupNow() error {
	m.schedMu.Lock()
	runCtx := m.runCtx
	m.schedMu.Unlock()
	if runCtx == nil {
		return fmt.Errorf("monitor not running")
	}

	m.mu.Lock()
	m.rollUsageLocked()
	enabled := m.settings.LookupEnabled && m.watchlist.Len() > 0
	exhausted := m.usage.Count >= dailyQuota
	m.mu.Unlock()

	if !enabled {
		return fmt.Errorf("lookup feed disabled or watch-list empty")
	}
	if exhausted {
		return fmt.Errorf("daily lookup limit reached (%d/%d)", dailyQuota, dailyQuota)
	}

	// the manual pass is not tied to the recurring schedule; it aborts on
	// run-context cancellation like any other pass
	go m.runLookupPass(runCtx)
	return nil
}

// runLookupPass iterates the watch-list in order, one request per entry,
// pacing requests one second apart and stopping the moment the daily quota is
// exhausted. A failed lookup is logged, skipped and not charged to the quota.
func (m *Monitor) runLookupPass(ctx context.Context) {
	// one pass at a time; a manual trigger overlapping a scheduled pass waits
	m.passMu.Lock()
	defer m.passMu.Unlock()
	if ctx.Err() != nil {
		return
	}

	m.mu.Lock()
	m.rollUsageLocked()
	watch := m.watchlist.Domains()
	m.mu.Unlock()

	lgr.Printf("[INFO] running lookup pass over %d domains", len(watch))

	for i, dom := range watch {
		if ctx.Err() != nil {
			return
		}

		// a quota slot is reserved before every individual request; the
		// check and the increment share one critical section so the count
		// can never be pushed past the ceiling, no matter who else runs
		m.mu.Lock()
		m.rollUsageLocked()
		if m.usage.Count >= dailyQuota {
			m.mu.Unlock()
			lgr.Printf("[WARN] daily lookup limit reached (%d/%d), stopping pass", dailyQuota, dailyQuota)
			break
		}
		m.usage.Count++
		m.mu.Unlock()

		res, err := m.lookup.Lookup(ctx, dom)
		if err != nil {
			// failure skips the entry, does not abort the pass; the reserved
			// slot is refunded, only successful requests stay charged
			lgr.Printf("[WARN] lookup failed for %s: %v", dom, err)
			promLookups.WithLabelValues("error").Inc()
			m.mu.Lock()
			m.rollUsageLocked()
			if m.usage.Count > 0 {
				m.usage.Count--
			}
			m.mu.Unlock()
		} else {
			promLookups.WithLabelValues("ok").Inc()
			m.processLookupResults(res.Domains, dom)
		}

		if i < len(watch)-1 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(m.pacing):
			}
		}
	}

	m.mu.Lock()
	m.usage.LastCheck = m.nowFn()
	usage := m.usage
	m.mu.Unlock()
	m.save(keyUsage, usage)
}

// processLookupResults scores suspicious registrations against the watch
// entry that produced them. Candidates already recorded from the lookup
// source are skipped; the same domain seen by the push feed is an
// independent detection and is kept separately.
func (m *Monitor) processLookupResults(suspicious []string, origin string) {
	for _, raw := range suspicious {
		dom := matcher.Normalize(raw)

		m.mu.Lock()
		dup := m.threats.FindDuplicate(dom, domain.SourceLookup) != nil
		m.mu.Unlock()
		if dup {
			continue
		}

		score := matcher.Similarity(dom, origin)
		level := matcher.Classify(score)
		res := domain.MatchResult{Matched: true, Score: score, Type: domain.MatchSimilar, Keyword: origin}

		m.mu.Lock()
		m.stats.LookupFound++
		m.lookupRing.Add(domain.FeedRecord{
			Domain:    dom,
			Match:     res,
			Level:     level,
			Timestamp: m.nowFn(),
		})
		lookupFeed := m.lookupRing.Records()

		var threat *domain.Threat
		var threats []domain.Threat
		autoAlerts := m.settings.AutoAlerts
		if level.Reportable() {
			t := m.newThreat(dom, domain.SourceLookup, res, level, nil)
			m.threats.Record(t)
			m.stats.TotalThreats++
			threat = &t
			threats = m.threats.All()
		}
		m.mu.Unlock()

		promMatches.WithLabelValues(string(domain.SourceLookup)).Inc()
		m.save(keyLookupFeed, lookupFeed)

		if threat == nil {
			continue
		}
		promThreats.WithLabelValues(string(level)).Inc()
		m.save(keyThreats, threats)
		lgr.Printf("[WARN] %s threat detected from lookup: %s (similar to %s)", threat.Level, threat.Domain, origin)
		m.dispatchAlert(*threat, autoAlerts)
	}
}
