// Package database contains the logic for establishing connections to the
// PostgreSQL database.
//
// It handles:
//   - building a DSN from config
//   - creating a pgx connection pool (pgxpool)
//   - wiring query tracing/logging (pgx tracelog via zerolog)
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/puzzlefeed/connections-api/internal/config"
	loggerPkg "github.com/puzzlefeed/connections-api/internal/logger"
	"github.com/rs/zerolog"
)

// Database wraps the pgx connection pool and a logger.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// DatabasePingTimeout is the number of seconds to wait for a ping before
// considering the database unreachable.
const DatabasePingTimeout = 10

// New creates a PostgreSQL connection pool.
//
// The pool connects lazily; New succeeds even when Postgres is down so the
// process can come up and serve /health regardless of database
// reachability. Callers that want a startup connectivity report use Ping.
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	// JoinHostPort handles IPv6 hosts correctly; QueryEscape keeps
	// passwords with reserved characters from breaking the URL.
	hostPort := net.JoinHostPort(cfg.Database.Host, strconv.Itoa(cfg.Database.Port))
	encodedPassword := url.QueryEscape(cfg.Database.Password)

	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Database.User,
		encodedPassword,
		hostPort,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	pgxPoolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	pgxPoolConfig.MaxConns = int32(cfg.Database.MaxConns)

	// Route SQL tracing through zerolog. Query-by-query output only
	// appears when the app log level is debug; see GetPgxTraceLogLevel.
	globalLevel := logger.GetLevel()
	pgxLogger := loggerPkg.NewPgxLogger(globalLevel)
	pgxPoolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   pgxzero.NewLogger(pgxLogger),
		LogLevel: loggerPkg.GetPgxTraceLogLevel(globalLevel),
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	return &Database{
		Pool: pool,
		log:  logger,
	}, nil
}

// Ping verifies database connectivity with a bounded timeout.
func (db *Database) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DatabasePingTimeout*time.Second)
	defer cancel()
	return db.Pool.Ping(ctx)
}

// Close closes the database connection pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
