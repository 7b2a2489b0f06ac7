package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/puzzlefeed/connections-api/internal/server"
)

// HealthHandler exposes the liveness endpoint external systems use to
// verify the process is alive.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth reports the process as healthy.
//
// It deliberately performs no dependency checks: the contract is "200 if
// the process is alive", independent of database reachability, so a
// Postgres outage never cascades into restarts by liveness probes.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
