package config

import "time"

const (
	envPort           = "PORT"
	envCacheTTL       = "SEARCH_CACHE_TTL"
	envTargetCurrency = "TARGET_CURRENCY"
	envProviders      = "PROVIDERS"
	envSweepInterval  = "CACHE_SWEEP_INTERVAL"
	envRetryAttempts  = "RETRY_MAX_ATTEMPTS"
	envRetryInterval  = "RETRY_INITIAL_INTERVAL"
	envCacheBackend   = "CACHE_BACKEND"
	envRedisAddr      = "REDIS_ADDR"
	envRedisPassword  = "REDIS_PASSWORD"
	envRedisDB        = "REDIS_DB"
	envProfileStore   = "PROFILE_STORE"
	envSQLitePath     = "SQLITE_PATH"
	envJWTSecret      = "JWT_SECRET"
	envDemoToken      = "AUTH_DEMO_TOKEN"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Matches the 120s response cache window the gateway has always used.
	defaultCacheTTL       = 2 * Duration(time.Minute)
	defaultTargetCurrency = "USD"
	defaultSweepInterval  = Duration(time.Minute)
	defaultRetryAttempts  = 3
	defaultRetryInterval  = 200 * Duration(time.Millisecond)
	defaultCacheBackend   = "memory"
	defaultProfileStore   = "memory"
	defaultSQLitePath     = "profiles.db"
	defaultMetricsPort    = "9090"
)

// defaultProviders is the fixture-only provider list used when
// PROVIDERS is unset.
var defaultProviders = []string{"fixture"}
