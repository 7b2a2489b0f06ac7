package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/puzzlefeed/connections-api/internal/errs"
	"github.com/puzzlefeed/connections-api/internal/server"
	"github.com/puzzlefeed/connections-api/internal/service"
	"github.com/puzzlefeed/connections-api/internal/validation"
)

// GetGameRequest is the payload for the daily puzzle lookup. The date
// arrives as a path parameter and must be a strict YYYY-MM-DD calendar
// date; the datetime tag uses Go's fixed-width layout, which rejects
// non-padded components and impossible dates like 2024-02-30.
type GetGameRequest struct {
	Date string `param:"date" validate:"required,datetime=2006-01-02"`
}

// Validate implements validation.Validatable. Any failure collapses into
// the single client-facing message for a malformed date.
func (r *GetGameRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return errs.NewBadRequestError(service.InvalidDateDetail)
	}
	return nil
}

// ConnectionsHandler serves the daily puzzle lookup.
type ConnectionsHandler struct {
	Handler
	connections *service.ConnectionsService
}

// NewConnectionsHandler constructs a ConnectionsHandler.
func NewConnectionsHandler(s *server.Server, connections *service.ConnectionsService) *ConnectionsHandler {
	return &ConnectionsHandler{
		Handler:     NewHandler(s),
		connections: connections,
	}
}

// GetGame looks up the puzzle for the requested date.
func (h *ConnectionsHandler) GetGame(c echo.Context, req *GetGameRequest) (*service.ConnectionsGame, error) {
	return h.connections.GetGameByDate(c.Request().Context(), req.Date)
}
