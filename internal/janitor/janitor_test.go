package janitor

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"ticket-search-service/internal/cache"
	"ticket-search-service/internal/metrics"
	"ticket-search-service/internal/testutil"
)

type countingSweepable struct {
	calls   atomic.Int32
	evicted int
	notify  chan struct{}
}

func (c *countingSweepable) EvictExpired() int {
	c.calls.Add(1)
	if c.notify != nil {
		select {
		case c.notify <- struct{}{}:
		default:
		}
	}
	return c.evicted
}

func TestSweepOnceRecordsMetrics(t *testing.T) {
	sweepable := &countingSweepable{evicted: 3}
	recorder := metrics.NewRecorder()
	j := New(sweepable, nil, recorder, time.Minute)

	if got := j.SweepOnce(); got != 3 {
		t.Fatalf("expected 3 evicted, got %d", got)
	}
	if got := sweepable.calls.Load(); got != 1 {
		t.Fatalf("expected 1 sweep, got %d", got)
	}
}

func TestJanitorSweepsOnInterval(t *testing.T) {
	sweepable := &countingSweepable{notify: make(chan struct{}, 1)}
	j := New(sweepable, nil, nil, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	j.Start(ctx)
	defer j.Stop()

	select {
	case <-sweepable.notify:
	case <-time.After(time.Second):
		t.Fatal("janitor never swept")
	}
}

func TestJanitorStopsOnContextCancel(t *testing.T) {
	sweepable := &countingSweepable{}
	j := New(sweepable, nil, nil, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	j.Start(ctx)
	cancel()

	time.Sleep(20 * time.Millisecond)
	calls := sweepable.calls.Load()
	time.Sleep(20 * time.Millisecond)
	if got := sweepable.calls.Load(); got != calls {
		t.Fatalf("janitor kept sweeping after cancel: %d then %d", calls, got)
	}
}

func TestJanitorStartIsIdempotent(t *testing.T) {
	sweepable := &countingSweepable{}
	j := New(sweepable, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	j.Start(ctx)
	j.Start(ctx)
	j.Stop()
	j.Stop()
}

func TestJanitorEvictsFromMemoryCache(t *testing.T) {
	now := testutil.MustParseRFC3339("2024-07-01T12:00:00Z")
	clock := &now
	store := cache.NewMemoryWithClock(func() time.Time { return *clock })

	ctx := context.Background()
	if err := store.Set(ctx, "search:stale", nil, time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Set(ctx, "search:fresh", nil, time.Hour); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	later := now.Add(2 * time.Second)
	*clock = later

	j := New(store, nil, metrics.NewRecorder(), time.Minute)
	if got := j.SweepOnce(); got != 1 {
		t.Fatalf("expected 1 eviction, got %d", got)
	}
	if got := store.Len(); got != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", got)
	}
}
