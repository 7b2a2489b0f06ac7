// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded from a
// `.env` file), loads them into structured Go types, applies documented
// defaults for anything unset, and validates the result so the application
// fails fast on malformed config.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env, if one
	// exists, before anything reads environment variables.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object for the application. It is built
// once at startup and passed by pointer; nothing mutates it afterwards.
//
// Every variable is optional. Defaults() supplies the documented default for
// each field and the environment only overrides what it sets.
type Config struct {
	Env      string         `koanf:"env" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"db" validate:"required"`
	Logging  LoggingConfig  `koanf:"log" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeout values are seconds.
type ServerConfig struct {
	Port         string `koanf:"port" validate:"required"`
	ReadTimeout  int    `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout int    `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout  int    `koanf:"idle_timeout" validate:"min=1"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
//
// The lookup table (`solutions`) is created and populated by an external
// process; this service only ever reads from it.
type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"min=1,max=65535"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode" validate:"required"`
	MaxConns int    `koanf:"max_conns" validate:"min=1"`
}

// Defaults returns the configuration used when no environment is provided.
// The database defaults mirror the deployment this service was written for:
// a local Postgres with a `connections` database.
func Defaults() *Config {
	return &Config{
		Env: "production",
		Server: ServerConfig{
			Port:         "8000",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  60,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "password",
			Name:     "connections",
			SSLMode:  "disable",
			MaxConns: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// envToKey converts an environment variable name into a koanf key path.
//
// The first underscore separates the section from the field:
//
//	DB_HOST             -> db.host
//	SERVER_READ_TIMEOUT -> server.read_timeout
//	ENV                 -> env
func envToKey(s string) string {
	parts := strings.SplitN(strings.ToLower(s), "_", 2)
	return strings.Join(parts, ".")
}

// Load builds the Config: defaults first, then environment overrides,
// then validation.
func Load() (*Config, error) {
	cfg := Defaults()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", envToKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Unmarshal over the pre-filled struct: keys absent from the
	// environment keep their default values.
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}

	return cfg, nil
}

// IsProduction reports whether the application is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
