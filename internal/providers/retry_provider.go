package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"ticket-search-service/internal/domain"
	"ticket-search-service/internal/logging"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingProvider wraps a Provider with retry/backoff behavior on
// Search. Status is never retried: a health probe should report the
// current state, not mask it.
type retryingProvider struct {
	inner           Provider
	name            string
	logger          *slog.Logger
	maxAttempts     uint64
	initialInterval time.Duration
}

// NewRetryingProvider wraps the given provider with exponential-backoff
// retries. If maxAttempts/initialInterval are <= 0, defaults are used.
func NewRetryingProvider(inner Provider, name string, logger *slog.Logger, maxAttempts int, initialInterval time.Duration) Provider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	return &retryingProvider{
		inner:           inner,
		name:            name,
		logger:          logger,
		maxAttempts:     uint64(maxAttempts),
		initialInterval: initialInterval,
	}
}

func (r *retryingProvider) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Event, error) {
	var events []domain.Event

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialInterval
	// maxAttempts counts total tries, WithMaxRetries counts retries after the first.
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, r.maxAttempts-1), ctx)

	attempt := 0
	op := func() error {
		attempt++
		var err error
		events, err = r.inner.Search(ctx, req)
		return err
	}
	notify := func(err error, delay time.Duration) {
		logger := logging.FromContext(ctx, r.logger)
		logging.Warn(logger, "provider search retry",
			slog.String(logging.FieldProvider, r.name),
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			"error", err,
		)
	}

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *retryingProvider) Status(ctx context.Context) ([]domain.ProviderStatus, error) {
	return r.inner.Status(ctx)
}

// ProviderID reports the wrapped provider's name.
func (r *retryingProvider) ProviderID() string {
	return r.name
}
