package repository

import (
	"github.com/puzzlefeed/connections-api/internal/server"
)

// Repositories is a container for all repository instances, so router and
// service wiring passes one object around instead of many.
type Repositories struct {
	Games *GamesRepository
}

// NewRepositories constructs the repository container from the application
// container's shared database pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Games: NewGamesRepository(s.DB.Pool),
	}
}
