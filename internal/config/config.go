// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor
// principles.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Event source kinds accepted by EVENT_SOURCE.
const (
	SourceHTTP      = "http"
	SourcePostgres  = "postgres"
	SourceSynthetic = "synthetic"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Event source selection: http, postgres or synthetic
	EventSource    string `env:"EVENT_SOURCE" envDefault:"synthetic"`
	EventSourceURL string `env:"EVENT_SOURCE_URL"`
	DatabaseURL    string `env:"DATABASE_URL"`

	// Optional Redis for the persisted filter selection
	RedisURL string `env:"REDIS_URL"`

	// Report cache
	RevalidateInterval time.Duration `env:"REVALIDATE_INTERVAL" envDefault:"5m"`
	FetchTimeout       time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`

	// Synthetic source seed (development only)
	SyntheticSeed int64 `env:"SYNTHETIC_SEED" envDefault:"1"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	LogFile   string `env:"LOG_FILE"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Validate enforces the source-specific requirements.
func (c *Config) Validate() error {
	switch c.EventSource {
	case SourceHTTP:
		if c.EventSourceURL == "" {
			return fmt.Errorf("EVENT_SOURCE_URL is required when EVENT_SOURCE=%s", SourceHTTP)
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when EVENT_SOURCE=%s", SourcePostgres)
		}
	case SourceSynthetic:
	default:
		return fmt.Errorf("unknown EVENT_SOURCE %q", c.EventSource)
	}

	if c.RevalidateInterval <= 0 {
		return fmt.Errorf("REVALIDATE_INTERVAL must be positive, got %s", c.RevalidateInterval)
	}
	return nil
}

// Load parses environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
