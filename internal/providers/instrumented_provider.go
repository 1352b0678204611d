package providers

import (
	"context"
	"log/slog"
	"time"

	"ticket-search-service/internal/domain"
	"ticket-search-service/internal/logging"
	"ticket-search-service/internal/metrics"
)

// instrumentedProvider records call counts and latency for every
// Search, and logs failures with the provider name attached.
type instrumentedProvider struct {
	inner   Provider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewInstrumentedProvider wraps a provider with metrics and logging.
func NewInstrumentedProvider(inner Provider, name string, logger *slog.Logger, recorder *metrics.Recorder) Provider {
	return &instrumentedProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
	}
}

func (p *instrumentedProvider) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Event, error) {
	start := time.Now()
	events, err := p.inner.Search(ctx, req)
	elapsed := time.Since(start)

	p.metrics.RecordProviderCall(p.name, elapsed, err)

	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		logging.Warn(logger, "provider search failed",
			slog.String(logging.FieldProvider, p.name),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			"error", err,
		)
		return nil, err
	}

	logging.Info(logger, "provider search complete",
		slog.String(logging.FieldProvider, p.name),
		slog.Int(logging.FieldCount, len(events)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return events, nil
}

func (p *instrumentedProvider) Status(ctx context.Context) ([]domain.ProviderStatus, error) {
	return p.inner.Status(ctx)
}

// ProviderID reports the wrapped provider's name.
func (p *instrumentedProvider) ProviderID() string {
	return p.name
}
