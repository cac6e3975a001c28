package repository

import (
	"github.com/lightbnb/backend/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users        *UserRepository
	Properties   *PropertyRepository
	Reservations *ReservationRepository
}

// NewRepositories builds the repositories on the server's shared pool.
func NewRepositories(s *server.Server) *Repositories {
	includeUnreviewed := s.Config.Search.IncludeUnreviewed

	return &Repositories{
		Users:        NewUserRepository(s.DB.Pool, s.Logger),
		Properties:   NewPropertyRepository(s.DB.Pool, includeUnreviewed, s.Logger),
		Reservations: NewReservationRepository(s.DB.Pool, includeUnreviewed, s.Logger),
	}
}
