package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/puzzlefeed/connections-api/internal/errs"
	"github.com/puzzlefeed/connections-api/internal/repository"
	"github.com/puzzlefeed/connections-api/internal/server"
	"github.com/puzzlefeed/connections-api/internal/sqlerr"
)

// DateLayout is the only accepted lookup key format. Go's fixed-width
// layout rejects non-padded components and impossible calendar dates
// (2024-02-30, month 13) during parsing.
const DateLayout = "2006-01-02"

// InvalidDateDetail is the client-facing message for a malformed date.
const InvalidDateDetail = "Invalid date format. Expected YYYY-MM-DD"

// ConnectionsGame is the wire entity returned to clients.
//
// Categories is the stored document forwarded byte-for-byte: no
// reordering, no type coercion, no schema enforcement.
type ConnectionsGame struct {
	ID         int             `json:"id"`
	PrintDate  string          `json:"print_date"`
	Editor     string          `json:"editor"`
	Categories json.RawMessage `json:"categories"`
}

// GameFinder is the repository seam the service depends on.
type GameFinder interface {
	FindByDate(ctx context.Context, date time.Time) (*repository.Game, error)
}

// ConnectionsService resolves a calendar date to its stored puzzle.
type ConnectionsService struct {
	server *server.Server
	games  GameFinder
}

func NewConnectionsService(s *server.Server, games GameFinder) *ConnectionsService {
	return &ConnectionsService{
		server: s,
		games:  games,
	}
}

// ParseDate strictly validates a YYYY-MM-DD string. Anything that is not a
// real, zero-padded calendar date comes back as a 400 HTTPError.
func ParseDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, errs.NewBadRequestError(InvalidDateDetail)
	}
	return date, nil
}

// GetGameByDate validates the date and looks up its record.
//
// Outcomes map one-to-one onto the HTTP contract: malformed date -> 400
// (no lookup attempted), no record -> 404 naming the date, backend
// failure -> 500 carrying the driver diagnostic.
func (s *ConnectionsService) GetGameByDate(ctx context.Context, dateStr string) (*ConnectionsGame, error) {
	date, err := ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	game, err := s.games.FindByDate(ctx, date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError(fmt.Sprintf("No game data found for date %s", dateStr))
		}
		return nil, sqlerr.HandleError(err)
	}

	return &ConnectionsGame{
		ID:         game.ID,
		PrintDate:  game.Date.Format(DateLayout),
		Editor:     game.Editor,
		Categories: game.Categories,
	}, nil
}
