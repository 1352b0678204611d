package server

import (
	"log/slog"

	"ticket-search-service/internal/config"
	"ticket-search-service/internal/logging"
	"ticket-search-service/internal/metrics"
	"ticket-search-service/internal/providers"
	"ticket-search-service/internal/providers/fixture"
	"ticket-search-service/internal/providers/httpapi"
)

// providerFactory assembles the composite provider with shared
// wrappers (retry + instrumentation) around each backend.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

func (f providerFactory) build(cfg config.Config) providers.Provider {
	var backends []providers.Provider
	for _, name := range cfg.Providers {
		base := f.selectProvider(name, cfg)
		if base == nil {
			logging.Warn(f.logger, "skipping unknown provider", slog.String(logging.FieldProvider, name))
			continue
		}
		backends = append(backends, f.wrap(base, cfg))
	}
	if len(backends) == 0 {
		// Keep the service answerable even with a broken provider list.
		backends = append(backends, f.wrap(fixture.New(), cfg))
	}
	return providers.NewComposite(backends...)
}

func (f providerFactory) selectProvider(name string, cfg config.Config) providers.Provider {
	switch name {
	case "fixture":
		return fixture.New()
	case "http":
		if cfg.TicketAPI.BaseURL == "" {
			logging.Warn(f.logger, "http provider requested without PROVIDER_BASE_URL")
			return nil
		}
		return httpapi.NewClient(httpapi.Config{
			ProviderID: cfg.TicketAPI.ProviderID,
			BaseURL:    cfg.TicketAPI.BaseURL,
			APIKey:     cfg.TicketAPI.APIKey,
		})
	default:
		return nil
	}
}

func (f providerFactory) wrap(base providers.Provider, cfg config.Config) providers.Provider {
	name := providerName(base)
	retried := providers.NewRetryingProvider(base, name, f.logger, cfg.Retry.MaxAttempts, cfg.Retry.InitialInterval)
	return providers.NewInstrumentedProvider(retried, name, f.logger, f.metrics)
}

func providerName(p providers.Provider) string {
	if ident, ok := p.(providers.Identifier); ok {
		return ident.ProviderID()
	}
	return "provider"
}
