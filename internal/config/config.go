// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultFreeDailyLimit caps free-tier drill generations per user per day.
const DefaultFreeDailyLimit = 10

// Config is the service configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port int

	// DBPath is the sqlite database file. Empty means the default
	// data-dir location.
	DBPath string

	// JWTSecret signs and verifies bearer tokens. Empty enables the
	// X-User-ID dev verifier instead.
	JWTSecret string

	// FreeDailyLimit is the per-user daily generation quota. Zero or
	// negative disables the quota.
	FreeDailyLimit int

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from DRILLWISE_* environment variables.
func Load() (Config, error) {
	cfg := Config{
		Port:           8080,
		DBPath:         os.Getenv("DRILLWISE_DB"),
		JWTSecret:      os.Getenv("DRILLWISE_JWT_SECRET"),
		FreeDailyLimit: DefaultFreeDailyLimit,
		LogLevel:       "info",
	}

	if v := os.Getenv("DRILLWISE_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("DRILLWISE_PORT: %w", err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("DRILLWISE_FREE_DAILY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("DRILLWISE_FREE_DAILY_LIMIT: %w", err)
		}
		cfg.FreeDailyLimit = n
	}
	if v := os.Getenv("DRILLWISE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
