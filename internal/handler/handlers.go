package handler

import (
	"github.com/puzzlefeed/connections-api/internal/server"
	"github.com/puzzlefeed/connections-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Health      *HealthHandler      // liveness endpoint
	Root        *RootHandler        // service info / endpoint discovery
	Connections *ConnectionsHandler // daily puzzle lookup
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		Root:        NewRootHandler(s),
		Connections: NewConnectionsHandler(s, services.Connections),
	}
}
