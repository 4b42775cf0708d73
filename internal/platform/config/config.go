// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Persistence strategies accepted by BoardConfig.Strategy.
const (
	StrategyLocal  = "local"
	StrategyRemote = "remote"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig           `koanf:"server"`
	Log       LogConfig              `koanf:"log"`
	Client    ClientConfig           `koanf:"client"`
	Telemetry TelemetryConfig        `koanf:"telemetry"`
	Sync      SyncConfig             `koanf:"sync"`
	Boards    map[string]BoardConfig `koanf:"boards"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// ShutdownTimeout bounds the drain of in-flight requests on SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the project document store client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// SyncConfig tunes the background save loop shared by every board.
type SyncConfig struct {
	QueueSize int           `koanf:"queue_size"`
	Coalesce  bool          `koanf:"coalesce"`
	Timeout   time.Duration `koanf:"timeout"`
}

// BoardConfig describes one hosted board instance.
type BoardConfig struct {
	// Layout is "board" or "planner".
	Layout string `koanf:"layout"`
	// Strategy is StrategyLocal or StrategyRemote.
	Strategy string `koanf:"strategy"`
	// Seed names the built-in board used on first run (local strategy).
	Seed string `koanf:"seed"`

	// Local strategy.
	Key       string `koanf:"key"`
	Backend   string `koanf:"backend"`
	Path      string `koanf:"path"`
	RedisAddr string `koanf:"redis_addr"`

	// Remote strategy.
	MaxWorkers int `koanf:"max_workers"`
}
