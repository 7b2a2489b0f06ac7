package router

import (
	"github.com/labstack/echo/v4"
	"github.com/puzzlefeed/connections-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of business
// logic: the liveness endpoint for monitors/load balancers and the root
// endpoint describing the API surface.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/health", h.Health.CheckHealth)
	r.GET("/", h.Root.Info)
}
