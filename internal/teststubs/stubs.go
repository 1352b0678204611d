// Package teststubs provides hand-rolled test doubles shared across
// package tests.
package teststubs

import (
	"context"
	"sync/atomic"
	"time"

	"ticket-search-service/internal/domain"
)

// StubProvider is a test double for providers.Provider.
type StubProvider struct {
	ID          string
	Events      []domain.Event
	Err         error
	Statuses    []domain.ProviderStatus
	StatusErr   error
	SearchCalls atomic.Int32
	StatusCalls atomic.Int32

	// FailuresBeforeSuccess makes the first n Search calls fail with
	// Err before succeeding; used by retry tests.
	FailuresBeforeSuccess int32
}

// Search returns the configured events and error while tracking calls.
func (s *StubProvider) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Event, error) {
	_ = ctx
	_ = req
	call := s.SearchCalls.Add(1)
	if s.FailuresBeforeSuccess > 0 && call <= s.FailuresBeforeSuccess {
		return nil, s.Err
	}
	if s.FailuresBeforeSuccess == 0 && s.Err != nil {
		return nil, s.Err
	}
	return s.Events, nil
}

// Status returns the configured statuses while tracking calls.
func (s *StubProvider) Status(ctx context.Context) ([]domain.ProviderStatus, error) {
	_ = ctx
	s.StatusCalls.Add(1)
	if s.StatusErr != nil {
		return nil, s.StatusErr
	}
	return s.Statuses, nil
}

// ProviderID names the stub for error wrapping.
func (s *StubProvider) ProviderID() string {
	if s.ID == "" {
		return "stub"
	}
	return s.ID
}

// StubCache is a test double for cache.Store.
type StubCache struct {
	Entries  map[string][]domain.Event
	GetErr   error
	SetErr   error
	GetCalls atomic.Int32
	SetCalls atomic.Int32
	LastTTL  time.Duration
}

// NewStubCache returns an empty stub cache.
func NewStubCache() *StubCache {
	return &StubCache{Entries: make(map[string][]domain.Event)}
}

// Get returns the stored entry, or the configured error.
func (s *StubCache) Get(ctx context.Context, key string) ([]domain.Event, bool, error) {
	_ = ctx
	s.GetCalls.Add(1)
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	events, ok := s.Entries[key]
	return events, ok, nil
}

// Set stores the entry, or returns the configured error.
func (s *StubCache) Set(ctx context.Context, key string, events []domain.Event, ttl time.Duration) error {
	_ = ctx
	s.SetCalls.Add(1)
	s.LastTTL = ttl
	if s.SetErr != nil {
		return s.SetErr
	}
	s.Entries[key] = events
	return nil
}
