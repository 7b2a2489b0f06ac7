package service

import (
	"github.com/puzzlefeed/connections-api/internal/repository"
	"github.com/puzzlefeed/connections-api/internal/server"
)

// Services is a container that groups all service instances.
type Services struct {
	Connections *ConnectionsService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Connections: NewConnectionsService(s, repos.Games),
	}
}
