package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	validLayouts  = []string{"board", "planner"}
	validBackends = []string{"memory", "file", "sqlite", "redis"}

	// seedLayouts maps every built-in seed name to the layout it produces.
	seedLayouts = map[string]string{
		"":        "board",
		"empty":   "board",
		"kanban":  "board",
		"tasks":   "board",
		"planner": "planner",
	}
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Sync.validate(),
		c.validateBoards(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if err := cl.validateRateLimit(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validateRateLimit() error {
	if cl.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond)
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		return fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			cl.RateLimit.BurstSize)
	}
	return nil
}

func (s *SyncConfig) validate() error {
	var errs []error

	if s.QueueSize < 1 {
		errs = append(errs, fmt.Errorf("sync.queue_size must be >= 1, got %d", s.QueueSize))
	}
	if s.Timeout <= 0 {
		errs = append(errs, errors.New("sync.timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (c *Config) validateBoards() error {
	if len(c.Boards) == 0 {
		return errors.New("boards must configure at least one board")
	}

	var errs []error
	for name, b := range c.Boards {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, errors.New("boards: board name must not be empty"))
			continue
		}
		errs = append(errs, b.validate("boards."+name))
	}
	return errors.Join(errs...)
}

func (b *BoardConfig) validate(prefix string) error {
	var errs []error

	if !slices.Contains(validLayouts, b.Layout) {
		errs = append(errs, fmt.Errorf("%s.layout must be one of: %s; got %q",
			prefix, strings.Join(validLayouts, ", "), b.Layout))
	}

	switch b.Strategy {
	case StrategyLocal:
		errs = append(errs, b.validateLocal(prefix))
	case StrategyRemote:
		if b.Layout != "board" {
			errs = append(errs, fmt.Errorf("%s.layout must be board for the remote strategy, got %q", prefix, b.Layout))
		}
		if b.MaxWorkers < 0 {
			errs = append(errs, fmt.Errorf("%s.max_workers must not be negative, got %d", prefix, b.MaxWorkers))
		}
	default:
		errs = append(errs, fmt.Errorf("%s.strategy must be one of: %s, %s; got %q",
			prefix, StrategyLocal, StrategyRemote, b.Strategy))
	}

	return errors.Join(errs...)
}

func (b *BoardConfig) validateLocal(prefix string) error {
	var errs []error

	layout, ok := seedLayouts[b.Seed]
	switch {
	case !ok:
		errs = append(errs, fmt.Errorf("%s.seed must be one of: empty, kanban, planner, tasks; got %q", prefix, b.Seed))
	case layout != b.Layout && slices.Contains(validLayouts, b.Layout):
		errs = append(errs, fmt.Errorf("%s.seed %q has layout %s, want %s", prefix, b.Seed, layout, b.Layout))
	}

	if !slices.Contains(validBackends, b.Backend) {
		errs = append(errs, fmt.Errorf("%s.backend must be one of: %s; got %q",
			prefix, strings.Join(validBackends, ", "), b.Backend))
	}
	if (b.Backend == "file" || b.Backend == "sqlite") && b.Path == "" {
		errs = append(errs, fmt.Errorf("%s.path must not be empty for the %s backend", prefix, b.Backend))
	}
	if b.Backend == "redis" && b.RedisAddr == "" {
		errs = append(errs, fmt.Errorf("%s.redis_addr must not be empty for the redis backend", prefix))
	}

	return errors.Join(errs...)
}
