package service

import (
	"github.com/lightbnb/backend/internal/repository"
	"github.com/lightbnb/backend/internal/server"
)

type Services struct {
	Users        *UserService
	Properties   *PropertyService
	Reservations *ReservationService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	limit := s.Config.Search.DefaultLimit

	return &Services{
		Users:        NewUserService(repos.Users, s.Job, s.Logger),
		Properties:   NewPropertyService(repos.Properties, limit, s.Logger),
		Reservations: NewReservationService(repos.Reservations, limit, s.Logger),
	}
}
