package cache

import (
	"context"
	"sync"
	"time"

	"ticket-search-service/internal/domain"
)

type entry struct {
	expiresAt time.Time
	events    []domain.Event
}

// Memory is a mutex-guarded in-process Store with lazy eviction:
// expired entries are removed when a Get observes them, or by an
// EvictExpired sweep.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return NewMemoryWithClock(time.Now)
}

// NewMemoryWithClock constructs a store with an injected time source.
func NewMemoryWithClock(now func() time.Time) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     now,
	}
}

// Get returns the stored events if present and not expired. An expired
// entry is evicted as a side effect and reported as a miss.
func (m *Memory) Get(ctx context.Context, key string) ([]domain.Event, bool, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if e.expiresAt.Before(m.now()) {
		delete(m.entries, key)
		return nil, false, nil
	}
	return e.events, true, nil
}

// Set stores events under key, overwriting any existing entry. The
// entry expires ttl from now.
func (m *Memory) Set(ctx context.Context, key string, events []domain.Event, ttl time.Duration) error {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{
		expiresAt: m.now().Add(ttl),
		events:    events,
	}
	return nil
}

// EvictExpired removes every expired entry and reports how many were
// dropped. Live entries are untouched.
func (m *Memory) EvictExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	evicted := 0
	for key, e := range m.entries {
		if e.expiresAt.Before(now) {
			delete(m.entries, key)
			evicted++
		}
	}
	return evicted
}

// Len reports how many entries are currently stored, expired or not.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
