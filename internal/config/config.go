// Package config reads runtime configuration from environment
// variables with sensible defaults.
package config

// Config holds runtime configuration for the server.
type Config struct {
	Port           string
	CacheTTL       Duration
	TargetCurrency string
	Providers      []string
	SweepInterval  Duration
	Retry          RetryConfig
	Cache          CacheConfig
	Profile        ProfileConfig
	Auth           AuthConfig
	TicketAPI      TicketAPIConfig
	Metrics        MetricsConfig
}

// Load reads configuration from environment variables with sensible
// defaults.
func Load() Config {
	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		CacheTTL:       durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		TargetCurrency: envOrDefault(envTargetCurrency, defaultTargetCurrency),
		Providers:      listEnvOrDefault(envProviders, defaultProviders),
		SweepInterval:  durationEnvOrDefault(envSweepInterval, defaultSweepInterval),
		Retry:          loadRetry(),
		Cache:          loadCache(),
		Profile:        loadProfile(),
		Auth:           loadAuth(),
		TicketAPI:      loadTicketAPI(),
		Metrics:        loadMetrics(),
	}
}

// RetryConfig controls provider retry behavior.
type RetryConfig struct {
	MaxAttempts     int
	InitialInterval Duration
}

func loadRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts:     intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		InitialInterval: durationEnvOrDefault(envRetryInterval, defaultRetryInterval),
	}
}

// CacheConfig selects and configures the response cache backend.
type CacheConfig struct {
	Backend       string // "memory", "redis" or "off"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func loadCache() CacheConfig {
	return CacheConfig{
		Backend:       envOrDefault(envCacheBackend, defaultCacheBackend),
		RedisAddr:     envOrDefault(envRedisAddr, "localhost:6379"),
		RedisPassword: envOrDefault(envRedisPassword, ""),
		RedisDB:       intEnvOrDefault(envRedisDB, 0),
	}
}

// ProfileConfig selects the profile store backend.
type ProfileConfig struct {
	Backend    string // "memory" or "sqlite"
	SQLitePath string
}

func loadProfile() ProfileConfig {
	return ProfileConfig{
		Backend:    envOrDefault(envProfileStore, defaultProfileStore),
		SQLitePath: envOrDefault(envSQLitePath, defaultSQLitePath),
	}
}

// AuthConfig holds bearer-token authentication settings.
type AuthConfig struct {
	JWTSecret string
	DemoToken string
}

func loadAuth() AuthConfig {
	return AuthConfig{
		JWTSecret: envOrDefault(envJWTSecret, ""),
		DemoToken: envOrDefault(envDemoToken, ""),
	}
}

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, "ticket-search-service"),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
