package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/puzzlefeed/connections-api/internal/middleware"
)

// Game is one row of the `solutions` table: a single day's Connections
// puzzle.
//
// Categories holds the stored JSON document verbatim. The service does not
// validate or reshape its structure; whatever the writer process stored is
// forwarded unchanged.
type Game struct {
	ID         int
	Date       time.Time
	Editor     string
	Categories json.RawMessage
}

// findGameByDateSQL looks up at most one row. game_date is unique; if the
// store ever held duplicates, QueryRow's first-row-wins behavior applies
// and that is a data-integrity bug upstream, not a feature.
const findGameByDateSQL = `
	SELECT game_id, game_date, editor, categories
	FROM solutions
	WHERE game_date = $1
`

// GamesRepository reads daily puzzle records from Postgres.
type GamesRepository struct {
	pool *pgxpool.Pool
}

func NewGamesRepository(pool *pgxpool.Pool) *GamesRepository {
	return &GamesRepository{pool: pool}
}

// FindByDate fetches the puzzle for a calendar date.
//
// The connection is acquired per call and released on every exit path via
// defer. The date is always bound as a query parameter, never interpolated
// into the SQL text. No rows surfaces as a wrapped pgx.ErrNoRows for the
// caller to map; driver failures come back with their diagnostic intact.
func (r *GamesRepository) FindByDate(ctx context.Context, date time.Time) (*Game, error) {
	logger := middleware.LoggerFromContext(ctx)
	logger.Debug().Time("game_date", date).Msg("looking up solution")

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	var game Game
	err = conn.QueryRow(ctx, findGameByDateSQL, date).
		Scan(&game.ID, &game.Date, &game.Editor, &game.Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to query solutions: %w", err)
	}

	return &game, nil
}
