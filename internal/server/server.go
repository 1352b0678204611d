// Package server wires config, providers, cache, profiles and the HTTP
// surface into a runnable service.
package server

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"

	"ticket-search-service/internal/cache"
	"ticket-search-service/internal/config"
	"ticket-search-service/internal/domain"
	httpserver "ticket-search-service/internal/http"
	"ticket-search-service/internal/janitor"
	"ticket-search-service/internal/logging"
	"ticket-search-service/internal/metrics"
	"ticket-search-service/internal/profile"
	"ticket-search-service/internal/search"
)

var metricsSetup = metrics.Setup

// Server owns the composed service components and their lifecycle.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	searchService *search.Service
	profiles      *profile.Service
	httpServer    httpServer
	metricsServer httpServer
	janitor       *janitor.Janitor
	metricsStop   func(context.Context) error
	profileDB     *sql.DB
}

// New constructs a server from configuration.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	provider := newProviderFactory(logger, recorder).build(cfg)

	store, sweepable := buildCache(cfg, logger)

	profileStore, profileDB, err := buildProfileStore(cfg)
	if err != nil {
		return nil, err
	}

	searchSvc := search.New(provider, store, search.Config{
		CacheTTL:       cfg.CacheTTL,
		TargetCurrency: domain.Currency(cfg.TargetCurrency),
	}, logger, recorder)
	profileSvc := profile.NewService(profileStore, logger)

	var jan *janitor.Janitor
	if sweepable != nil {
		jan = janitor.New(sweepable, logger, recorder, cfg.SweepInterval)
	}

	httpSrv := buildHTTPServer(cfg, searchSvc, profileSvc, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		searchService: searchSvc,
		profiles:      profileSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		janitor:       jan,
		metricsStop:   metricsShutdown,
		profileDB:     profileDB,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, searchSvc *search.Service, httpSrv httpServer, jan *janitor.Janitor) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		searchService: searchSvc,
		httpServer:    httpSrv,
		janitor:       jan,
	}
}

func buildCache(cfg config.Config, logger *slog.Logger) (cache.Store, janitor.Sweepable) {
	switch cfg.Cache.Backend {
	case "off":
		return nil, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		// Redis evicts by TTL on its own; the janitor only serves the
		// in-memory backend.
		return cache.NewRedis(client, logger), nil
	default:
		mem := cache.NewMemory()
		return mem, mem
	}
}

func buildProfileStore(cfg config.Config) (profile.Store, *sql.DB, error) {
	if cfg.Profile.Backend != "sqlite" {
		return profile.NewMemoryStore(), nil, nil
	}

	db, err := sql.Open("sqlite3", cfg.Profile.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	store, err := profile.NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return store, db, nil
}

func buildHTTPServer(cfg config.Config, searchSvc *search.Service, profileSvc *profile.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := httpserver.NewHandler(searchSvc, profileSvc, logger)
	auth := httpserver.NewAuthMiddleware(httpserver.AuthConfig{
		Secret:    cfg.Auth.JWTSecret,
		DemoToken: cfg.Auth.DemoToken,
	}, logger)
	router := httpserver.NewRouter(handler, auth)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := httpserver.LoggingMiddleware(logger, recorder, router)

	return newNetHTTPServer(":"+cfg.Port, wrapped, true)
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(":"+recCfg.Port, handler, false)
	}

	return rec, metricsSrv, shutdown
}

// Run starts the janitor and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.janitor != nil {
		s.janitor.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.janitor != nil {
		s.janitor.Stop()
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.profileDB != nil {
		if err := s.profileDB.Close(); err != nil {
			logging.Warn(s.logger, "profile store close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
