package config

import "fmt"

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is the minimum enabled level.
	Level string `validate:"oneof=debug info warn error"`
	// Format selects the zap encoder.
	Format string `validate:"oneof=json console"`
	// Output is stdout, stderr or a file path.
	Output string `validate:"required"`
}

// LoadLoggerConfigFromEnv loads logger configuration from LOG_* variables.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  GetEnv("LOG_LEVEL", "info"),
		Format: GetEnv("LOG_FORMAT", "json"),
		Output: GetEnv("LOG_OUTPUT", "stdout"),
	}
}

// Validate reports the first invalid logger field.
func (c LoggerConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid logger config (level=%q format=%q output=%q): %w", c.Level, c.Format, c.Output, err)
	}
	return nil
}

// IsProduction reports whether the production encoder preset applies.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}
