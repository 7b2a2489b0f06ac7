package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/puzzlefeed/connections-api/internal/handler"
)

// registerV1Routes registers the versioned API group.
func registerV1Routes(r *echo.Echo, h *handler.Handlers) {
	v1 := r.Group("/v1")

	v1.GET("/connections/:date", handler.Handle(h.Connections.Handler, h.Connections.GetGame, http.StatusOK))
}
