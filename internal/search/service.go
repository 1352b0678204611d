// Package search composes the result pipeline: cache lookup, provider
// aggregation, best-price marking, normalization, cache store.
package search

import (
	"context"
	"log/slog"
	"time"

	"ticket-search-service/internal/cache"
	"ticket-search-service/internal/domain"
	"ticket-search-service/internal/logging"
	"ticket-search-service/internal/metrics"
	"ticket-search-service/internal/normalize"
	"ticket-search-service/internal/pricing"
	"ticket-search-service/internal/providers"
)

// DefaultCacheTTL matches the original gateway's 120s window.
const DefaultCacheTTL = 120 * time.Second

// Config tunes the pipeline.
type Config struct {
	CacheTTL       time.Duration
	TargetCurrency domain.Currency
}

// Service coordinates search queries across providers and cache. It
// holds no per-request state; instances are safe for concurrent use.
type Service struct {
	provider providers.Provider
	cache    cache.Store // nil disables caching entirely
	ttl      time.Duration
	target   domain.Currency
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// New constructs the orchestrator. A nil store disables caching
// transparently.
func New(provider providers.Provider, store cache.Store, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.TargetCurrency == "" {
		cfg.TargetCurrency = domain.CurrencyUSD
	}
	return &Service{
		provider: provider,
		cache:    store,
		ttl:      cfg.CacheTTL,
		target:   cfg.TargetCurrency,
		logger:   logger,
		metrics:  recorder,
	}
}

// Search runs the pipeline for one request. Requests with non-positive
// limits are rejected before any provider or cache interaction.
func (s *Service) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	start := time.Now()
	resp, err := s.search(ctx, req)
	s.metrics.RecordSearch(time.Since(start), err)
	return resp, err
}

func (s *Service) search(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	if req.Limit <= 0 {
		return domain.SearchResponse{}, domain.ValidationError{Field: "limit", Message: "must be a positive integer"}
	}

	logger := logging.FromContext(ctx, s.logger)

	var key string
	if s.cache != nil {
		key = cache.Key(req)
		events, hit, err := s.cache.Get(ctx, key)
		if err != nil {
			// A broken cache read degrades to a miss; the search can
			// still be answered from providers.
			logging.Warn(logger, "cache get failed, treating as miss",
				slog.String(logging.FieldCacheKey, key), "error", err)
			hit = false
		}
		s.metrics.RecordCacheLookup(hit)
		if hit {
			return domain.NewSearchResponse(events), nil
		}
	}

	events, err := s.provider.Search(ctx, req)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	pricing.MarkBestPrices(events, s.target)
	events = normalize.Events(events)

	if s.cache != nil {
		// All-or-nothing store: a request cancelled mid-pipeline must
		// not leave a cache entry behind.
		if err := ctx.Err(); err != nil {
			return domain.SearchResponse{}, err
		}
		if err := s.cache.Set(ctx, key, events, s.ttl); err != nil {
			logging.Error(logger, "cache set failed", err,
				slog.String(logging.FieldCacheKey, key))
		}
	}

	return domain.NewSearchResponse(events), nil
}

// ProvidersStatus returns health snapshots from every configured
// provider.
func (s *Service) ProvidersStatus(ctx context.Context) ([]domain.ProviderStatus, error) {
	return s.provider.Status(ctx)
}
