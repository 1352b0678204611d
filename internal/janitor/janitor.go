// Package janitor periodically sweeps expired entries out of the
// in-memory search cache so idle keys do not pin memory between
// lookups.
package janitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ticket-search-service/internal/logging"
	"ticket-search-service/internal/metrics"
)

const defaultInterval = 60 * time.Second

// Sweepable is the slice of the cache the janitor needs.
type Sweepable interface {
	EvictExpired() int
}

// Janitor evicts expired cache entries on an interval.
type Janitor struct {
	cache    Sweepable
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
}

// New constructs a Janitor with sane defaults.
func New(cache Sweepable, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Janitor{
		cache:    cache,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins sweeping until the context is cancelled or Stop is
// called.
func (j *Janitor) Start(ctx context.Context) {
	j.startMu.Lock()
	if j.started {
		j.startMu.Unlock()
		return
	}
	j.started = true
	j.startMu.Unlock()

	j.ticker = time.NewTicker(j.interval)

	go func() {
		logging.Info(j.logger, "janitor started", slog.Int64(logging.FieldDurationMS, j.interval.Milliseconds()))
		for {
			select {
			case <-ctx.Done():
				j.stopTicker()
				logging.Info(j.logger, "janitor stopped")
				return
			case <-j.done:
				j.stopTicker()
				logging.Info(j.logger, "janitor stopped")
				return
			case <-j.ticker.C:
				j.sweepOnce()
			}
		}
	}()
}

// Stop halts the sweep loop.
func (j *Janitor) Stop() {
	j.stopOnce.Do(func() {
		close(j.done)
		j.stopTicker()
	})
}

// SweepOnce runs a single eviction pass and returns the number of
// evicted entries.
func (j *Janitor) SweepOnce() int {
	return j.sweepOnce()
}

func (j *Janitor) sweepOnce() int {
	start := time.Now()
	evicted := j.cache.EvictExpired()
	j.metrics.RecordSweep(time.Since(start), evicted)
	if evicted > 0 {
		logging.Info(j.logger, "evicted expired cache entries",
			slog.Int(logging.FieldCount, evicted),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
	}
	return evicted
}

func (j *Janitor) stopTicker() {
	if j.ticker != nil {
		j.ticker.Stop()
	}
}
