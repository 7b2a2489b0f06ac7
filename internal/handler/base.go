package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/puzzlefeed/connections-api/internal/middleware"
	"github.com/puzzlefeed/connections-api/internal/server"
	"github.com/puzzlefeed/connections-api/internal/validation"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to reach config, logger, and
// the database through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returned by value: the struct only
// contains a pointer, so copies are cheap and share the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc represents a typed endpoint function that receives a bound
// and validated request payload and returns a response or an error.
//
// Req is a pointer type in practice, because echo's Bind needs a pointer
// to populate fields.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// handleRequest is the shared execution pipeline for typed endpoints. It
// centralizes request binding + validation, structured logging with
// request correlation, timing, and JSON response writing. Errors are
// returned to echo so the global error handler formats the response.
func handleRequest[Req validation.Validatable, Res any](
	c echo.Context,
	req Req,
	handler HandlerFunc[Req, Res],
	status int,
) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("method", c.Request().Method).
		Str("route", c.Path()).
		Logger()

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")
		return err
	}

	handlerStart := time.Now()
	result, err := handler(c, req)
	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", time.Since(handlerStart)).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	logger.Debug().
		Dur("handler_duration", time.Since(handlerStart)).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return c.JSON(status, result)
}

// Handle wraps a typed handler into an echo.HandlerFunc, constructing a
// fresh request payload per request so concurrent requests never share
// bind targets.
//
// Usage:
//
//	g.GET("/:date", handler.Handle(h.Handler, h.getGame, http.StatusOK))
func Handle[Req any, PReq interface {
	*Req
	validation.Validatable
}, Res any](h Handler, handler HandlerFunc[PReq, Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(c, req, handler, status)
	}
}
