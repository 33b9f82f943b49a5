package monitor

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squatwatch/squatwatch/pkg/domain"
	"github.com/squatwatch/squatwatch/pkg/feed"
)

func TestMonitor_RunLookupPass_QuotaEnforced(t *testing.T) {
	m, _, lookuper, _ := newTestMonitor(t)
	for i := 0; i < 7; i++ {
		require.NoError(t, m.AddDomain(fmt.Sprintf("watch%d.com", i)))
	}

	m.runLookupPass(context.Background())

	assert.Len(t, lookuper.LookupCalls(), 5, "pass stops at the daily ceiling")
	usage := m.Usage()
	assert.Equal(t, 5, usage.Count)
	assert.False(t, usage.LastCheck.IsZero())
}

func TestMonitor_RunLookupPass_FailureNotCharged(t *testing.T) {
	m, _, lookuper, _ := newTestMonitor(t)
	require.NoError(t, m.AddDomain("good.com"))
	require.NoError(t, m.AddDomain("bad.com"))

	lookuper.LookupFunc = func(_ context.Context, dom string) (*feed.LookupResult, error) {
		if dom == "bad.com" {
			return nil, fmt.Errorf("boom")
		}
		return &feed.LookupResult{}, nil
	}

	m.runLookupPass(context.Background())

	assert.Len(t, lookuper.LookupCalls(), 2, "failure skips the entry, pass continues")
	assert.Equal(t, 1, m.Usage().Count, "only successful requests consume quota")
}

func TestMonitor_RunLookupPass_ConcurrentPassesRespectQuota(t *testing.T) {
	m, _, lookuper, _ := newTestMonitor(t)
	for i := 0; i < 7; i++ {
		require.NoError(t, m.AddDomain(fmt.Sprintf("watch%d.com", i)))
	}
	lookuper.LookupFunc = func(context.Context, string) (*feed.LookupResult, error) {
		time.Sleep(5 * time.Millisecond)
		return &feed.LookupResult{}, nil
	}

	// one slot left for today, two passes racing for it
	m.mu.Lock()
	m.usage.Count = dailyQuota - 1
	m.usage.Date = m.nowFn().Format("2006-01-02")
	m.mu.Unlock()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.runLookupPass(context.Background())
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, m.Usage().Count, dailyQuota, "overlapping passes never push past the ceiling")
	assert.Len(t, lookuper.LookupCalls(), 1, "one slot remained, one request went out")
}

func TestMonitor_RunLookupPass_DayRollover(t *testing.T) {
	m, _, lookuper, _ := newTestMonitor(t)
	require.NoError(t, m.AddDomain("watch.com"))

	day := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m.nowFn = func() time.Time { return day }

	for i := 0; i < 5; i++ {
		m.runLookupPass(context.Background())
	}
	assert.Equal(t, 5, m.Usage().Count)

	// exhausted for today, the next pass makes no requests
	m.runLookupPass(context.Background())
	assert.Len(t, lookuper.LookupCalls(), 5)

	// new calendar day resets the counter before the first check
	day = day.Add(24 * time.Hour)
	assert.Equal(t, 0, m.Usage().Count)

	m.runLookupPass(context.Background())
	assert.Len(t, lookuper.LookupCalls(), 6)
	assert.Equal(t, 1, m.Usage().Count)
}

func TestMonitor_RunLookupPass_WatchOrderAndPacing(t *testing.T) {
	m, _, lookuper, _ := newTestMonitor(t)
	require.NoError(t, m.AddDomain("first.com"))
	require.NoError(t, m.AddDomain("second.com"))
	require.NoError(t, m.AddDomain("third.com"))

	m.runLookupPass(context.Background())

	calls := lookuper.LookupCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, "first.com", calls[0].Domain)
	assert.Equal(t, "second.com", calls[1].Domain)
	assert.Equal(t, "third.com", calls[2].Domain)
}

func TestMonitor_ProcessLookupResults_Dedup(t *testing.T) {
	m, _, _, _ := newTestMonitor(t)
	require.NoError(t, m.AddDomain("paypal.com"))

	m.processLookupResults([]string{"paypa1.com"}, "paypal.com")
	m.processLookupResults([]string{"paypa1.com"}, "paypal.com")

	assert.Len(t, m.Threats("", domain.SourceLookup, ""), 1, "one entry per domain and source")

	// the push feed seeing the same domain is an independent detection
	m.HandleRecord(certRecord("paypa1.com"))
	assert.Len(t, m.Threats("", "", ""), 2)

	// a dismissed entry still suppresses re-recording from lookups
	lookupThreats := m.Threats("", domain.SourceLookup, "")
	m.DismissThreat(lookupThreats[0].ID)
	m.processLookupResults([]string{"paypa1.com"}, "paypal.com")
	assert.Len(t, m.Threats("", domain.SourceLookup, ""), 1)
}

func TestMonitor_ProcessLookupResults_Alerting(t *testing.T) {
	m, _, _, dispatcher := newTestMonitor(t)
	require.NoError(t, m.AddDomain("paypal.com"))

	m.processLookupResults([]string{"paypa1.com", "unrelated-site.org"}, "paypal.com")

	assert.Equal(t, 2, m.Status().Stats.LookupFound, "every suspicious registration lands in the buffer")
	require.Len(t, m.LookupFeed(), 2)
	assert.Len(t, m.Threats("", domain.SourceLookup, ""), 1, "only the reportable one enters the history")

	threats := m.Threats("", domain.SourceLookup, "")
	assert.Nil(t, threats[0].Certificate, "lookup detections carry no certificate evidence")
	assert.Equal(t, domain.MatchSimilar, threats[0].MatchType)
	assert.Equal(t, "paypal.com", threats[0].MatchedKeyword)

	require.Eventually(t, func() bool { return len(dispatcher.MaybeAlertCalls()) == 1 },
		time.Second, 5*time.Millisecond)
}

func TestMonitor_TriggerLookupNow(t *testing.T) {
	m, _, lookuper, _ := newTestMonitor(t)

	err := m.TriggerLookupNow()
	require.Error(t, err, "refused before Run provides a context")
	assert.Contains(t, err.Error(), "not running")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		m.Run(ctx)
	}()
	// wait for Run to install its context
	require.Eventually(t, func() bool {
		m.schedMu.Lock()
		defer m.schedMu.Unlock()
		return m.runCtx != nil
	}, time.Second, time.Millisecond)

	err = m.TriggerLookupNow()
	require.Error(t, err, "refused with an empty watch-list")
	assert.Contains(t, err.Error(), "disabled or watch-list empty")

	require.NoError(t, m.AddDomain("watch.com"))
	require.NoError(t, m.TriggerLookupNow())
	require.Eventually(t, func() bool { return len(lookuper.LookupCalls()) >= 1 },
		time.Second, time.Millisecond)

	// exhaust the quota, the next manual pass is refused up front
	m.mu.Lock()
	m.usage.Count = dailyQuota
	m.usage.Date = m.nowFn().Format("2006-01-02")
	m.mu.Unlock()

	err = m.TriggerLookupNow()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "daily lookup limit reached (5/5)")

	cancel()
	wg.Wait()
}

func TestMonitor_TriggerLookupNow_ConcurrentTriggersRespectQuota(t *testing.T) {
	m, _, lookuper, _ := newTestMonitor(t)
	m.warmup = time.Minute // keep the scheduled pass out of the way
	require.NoError(t, m.AddDomain("watch.com"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		m.Run(ctx)
	}()
	require.Eventually(t, func() bool {
		m.schedMu.Lock()
		defer m.schedMu.Unlock()
		return m.runCtx != nil
	}, time.Second, time.Millisecond)

	lookuper.LookupFunc = func(context.Context, string) (*feed.LookupResult, error) {
		time.Sleep(5 * time.Millisecond)
		return &feed.LookupResult{}, nil
	}
	m.mu.Lock()
	m.usage.Count = dailyQuota - 1
	m.usage.Date = m.nowFn().Format("2006-01-02")
	m.mu.Unlock()

	// both triggers may pass the up-front check, the passes themselves must
	// not admit more requests than the remaining slot allows
	var trig sync.WaitGroup
	for i := 0; i < 2; i++ {
		trig.Add(1)
		go func() {
			defer trig.Done()
			_ = m.TriggerLookupNow()
		}()
	}
	trig.Wait()

	require.Eventually(t, func() bool { return m.Usage().Count == dailyQuota },
		time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Len(t, lookuper.LookupCalls(), 1, "one slot remained, one request total")
	assert.Equal(t, dailyQuota, m.Usage().Count)

	cancel()
	wg.Wait()
}

func TestMonitor_Run_ConcurrentReschedulesKeepSingleLoop(t *testing.T) {
	m, _, lookuper, _ := newTestMonitor(t)
	m.warmup = 250 * time.Millisecond // well past the hammer phase below
	require.NoError(t, m.AddDomain("watch.com"))

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		m.Run(ctx)
	}()

	// hammer the reschedule path from parallel callers; every restart must
	// retire the previous loop before installing the next one
	var hammer sync.WaitGroup
	for i := 0; i < 10; i++ {
		hammer.Add(1)
		go func(n int) {
			defer hammer.Done()
			for j := 0; j < 10; j++ {
				s := m.Settings()
				s.LookupIntervalMinutes = 20 + n
				assert.NoError(t, m.UpdateSettings(s))
			}
		}(i)
	}
	hammer.Wait()

	// exactly one surviving loop fires exactly one pass after its warm-up
	require.Eventually(t, func() bool { return len(lookuper.LookupCalls()) >= 1 },
		time.Second, time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Len(t, lookuper.LookupCalls(), 1, "a leaked loop would run an extra pass")

	cancel()
	wg.Wait()
}

func TestMonitor_Run_SchedulesAfterWarmup(t *testing.T) {
	m, _, lookuper, _ := newTestMonitor(t)
	require.NoError(t, m.AddDomain("watch.com"))

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		m.Run(ctx)
	}()

	require.Eventually(t, func() bool { return len(lookuper.LookupCalls()) >= 1 },
		time.Second, time.Millisecond, "first pass fires after the warm-up delay")

	cancel()
	wg.Wait()
}

func TestMonitor_Run_NoPollingWhenDisabled(t *testing.T) {
	m, _, lookuper, _ := newTestMonitor(t)
	require.NoError(t, m.AddDomain("watch.com"))

	s := m.Settings()
	s.LookupEnabled = false
	require.NoError(t, m.UpdateSettings(s))

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		m.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, lookuper.LookupCalls())

	// re-enabling reschedules without restarting the monitor
	s.LookupEnabled = true
	require.NoError(t, m.UpdateSettings(s))
	require.Eventually(t, func() bool { return len(lookuper.LookupCalls()) >= 1 },
		time.Second, time.Millisecond)

	cancel()
	wg.Wait()
}

func TestMonitor_Run_RemovingLastDomainStopsPolling(t *testing.T) {
	m, _, lookuper, _ := newTestMonitor(t)
	require.NoError(t, m.AddDomain("watch.com"))

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		m.Run(ctx)
	}()

	require.Eventually(t, func() bool { return len(lookuper.LookupCalls()) >= 1 },
		time.Second, time.Millisecond)

	require.NoError(t, m.RemoveDomain("watch.com"))
	seen := len(lookuper.LookupCalls())
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, seen, len(lookuper.LookupCalls()), "no passes scheduled for an empty watch-list")

	cancel()
	wg.Wait()
}
