package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

// Recorder captures lightweight, in-memory metrics about provider
// calls, cache lookups, and searches. It mirrors everything into
// OpenTelemetry instruments when telemetry is enabled, and a nil
// Recorder is safe to call.
type Recorder struct {
	mu       sync.Mutex
	provider map[string]*providerStats
	cache    cacheStats
	searches int
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		provider: make(map[string]*providerStats),
		otel:     otel,
	}
}

// RecordProviderCall increments counters for a provider search call and
// stores the last observed latency.
func (r *Recorder) RecordProviderCall(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderCall(provider, duration, err)
	}
}

// RecordCacheLookup tracks a cache hit or miss.
func (r *Recorder) RecordCacheLookup(hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if hit {
		r.cache.hits++
	} else {
		r.cache.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(hit)
	}
}

// RecordSearch tracks one completed search pipeline run.
func (r *Recorder) RecordSearch(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.searches++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSearch(duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordSweep tracks one cache janitor cycle and how many entries it
// evicted.
func (r *Recorder) RecordSweep(duration time.Duration, evicted int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordSweep(duration, evicted)
}

// ProviderCalls returns the total search calls recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.snapshot(provider).calls
}

// ProviderErrors returns the total failed calls recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.snapshot(provider).errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.snapshot(provider).lastCallLatency
}

// CacheHits returns the number of cache hits recorded.
func (r *Recorder) CacheHits() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.hits
}

// CacheMisses returns the number of cache misses recorded.
func (r *Recorder) CacheMisses() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.misses
}

// Searches returns the number of search runs recorded.
func (r *Recorder) Searches() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.searches
}

// ensureStats must be called with the mutex held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.provider[provider]
	if !ok {
		stats = &providerStats{}
		r.provider[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	if r == nil {
		return providerStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.provider[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
