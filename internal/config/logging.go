package config

import "fmt"

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level" validate:"required"`

	// Format selects the output format for logs: "json" for log pipelines,
	// "console" for human-readable local output.
	Format string `koanf:"format" validate:"required"`
}

// Validate applies rules that go beyond struct tags: enum membership for
// level and format.
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Level)
	}

	switch c.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format: %s (must be one of: json, console)", c.Format)
	}

	return nil
}

// GetLogLevel returns the effective log level, defaulting by environment
// when no level is set: production stays quiet, development gets debug.
func (c *Config) GetLogLevel() string {
	if c.Logging.Level == "" {
		if c.IsProduction() {
			return "info"
		}
		return "debug"
	}
	return c.Logging.Level
}
