// Package config provides application configuration loaded from the environment.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// Round holds defaults applied to newly created rounds.
	Round RoundConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string `validate:"oneof=debug release test"`
	// MetricsEnabled exposes Prometheus metrics on /metrics.
	MetricsEnabled bool
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:         LoadServerConfigFromEnv(),
		Logger:         LoadLoggerConfigFromEnv(),
		Round:          LoadRoundConfigFromEnv(),
		GinMode:        GetEnv("GIN_MODE", "release"),
		MetricsEnabled: GetEnvBool("METRICS_ENABLED", true),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	if err := c.Round.Validate(); err != nil {
		return fmt.Errorf("round config validation failed: %w", err)
	}

	if err := validate.Var(c.GinMode, "oneof=debug release test"); err != nil {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}
