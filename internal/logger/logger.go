// Package logger configures the application's logging.
//
// It uses zerolog for structured logging and provides the adapter pieces
// the database layer needs to route pgx query tracing through the same
// logger.
package logger

import (
	"os"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/puzzlefeed/connections-api/internal/config"
	"github.com/rs/zerolog"
)

// New builds the application logger from config.
//
// Format "console" writes human-friendly output to stderr for local
// development; "json" writes machine-parseable lines for log pipelines.
func New(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Logging.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", "connections-api").
		Logger()
}

// NewPgxLogger returns a logger dedicated to pgx query tracing, capped at
// the application's log level.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(os.Stderr).Level(level).With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto the pgx tracelog level so
// SQL tracing stays consistent with application verbosity. Query-by-query
// output only appears at debug.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.DebugLevel, zerolog.TraceLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelWarn
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
