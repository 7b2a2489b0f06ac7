package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/puzzlefeed/connections-api/internal/server"
)

// APIVersion is reported by the service info endpoint.
const APIVersion = "1.0.0"

// ServiceInfo is the static metadata served at the root path, describing
// the available endpoints.
type ServiceInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// RootHandler serves the service discovery endpoint.
type RootHandler struct {
	Handler
}

// NewRootHandler constructs a RootHandler.
func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{
		Handler: NewHandler(s),
	}
}

// Info returns static metadata about the API.
func (h *RootHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, ServiceInfo{
		Message: "NYTimes Connections API",
		Version: APIVersion,
		Endpoints: map[string]string{
			"get_game": "/v1/connections/{date}",
			"health":   "/health",
		},
	})
}
