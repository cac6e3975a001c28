package service

import (
	"context"

	"github.com/lightbnb/backend/internal/model"
	"github.com/lightbnb/backend/internal/repository"
	"github.com/rs/zerolog"
)

type ReservationService struct {
	reservations ReservationStore
	defaultLimit int
	logger       *zerolog.Logger
}

func NewReservationService(reservations ReservationStore, defaultLimit int, logger *zerolog.Logger) *ReservationService {
	if defaultLimit <= 0 {
		defaultLimit = repository.DefaultLimit
	}
	return &ReservationService{reservations: reservations, defaultLimit: defaultLimit, logger: logger}
}

// ListForGuest returns a guest's reservations ordered by start date. A
// zero limit means the default limit.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]model.ReservationWithPropertySummary, error) {
	if limit == 0 {
		limit = s.defaultLimit
	}
	return s.reservations.GetAllReservations(ctx, guestID, limit)
}
