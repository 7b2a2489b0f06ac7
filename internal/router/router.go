// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups, mapping
// specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/puzzlefeed/connections-api/internal/handler"
	"github.com/puzzlefeed/connections-api/internal/middleware"
	"github.com/puzzlefeed/connections-api/internal/server"
)

// New builds the Echo instance with the full middleware stack and all
// routes registered. The result plugs into server.SetupHTTPServer as an
// http.Handler.
func New(s *server.Server, mws *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	// Order matters: recovery outermost, then request identity so the
	// context logger and request log both carry the correlation id.
	e.Use(mws.Global.Recover())
	e.Use(mws.Global.Secure())
	e.Use(mws.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(mws.ContextEnhancer.EnhanceContext())
	e.Use(mws.Global.RequestLogger())

	registerSystemRoutes(e, h)
	registerV1Routes(e, h)

	return e
}
