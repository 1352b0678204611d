// Package cache stores search result sets keyed by request fingerprint
// with a time-to-live.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticket-search-service/internal/domain"
)

// Store is the capability the orchestrator consumes. Implementations
// must be safe for concurrent use; Get must treat an expired entry as
// absent.
type Store interface {
	Get(ctx context.Context, key string) ([]domain.Event, bool, error)
	Set(ctx context.Context, key string, events []domain.Event, ttl time.Duration) error
}

// CacheError wraps a backend failure with the failing operation and key.
type CacheError struct {
	Op  string
	Key string
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}

// AsCacheError attempts to unwrap an error into a CacheError.
func AsCacheError(err error) (*CacheError, bool) {
	var cerr *CacheError
	if errors.As(err, &cerr) {
		return cerr, true
	}
	return nil, false
}
