// Package service contains the business logic.
//
// It sits between callers (the CLI, an API layer) and the repository
// layer. It validates input, performs business operations, and calls
// repository methods to interact with the data.
package service

import (
	"context"

	"github.com/lightbnb/backend/internal/model"
	"github.com/lightbnb/backend/internal/repository"
)

// UserStore is implemented by *repository.UserRepository.
type UserStore interface {
	GetUserWithEmail(ctx context.Context, email string) (*model.User, error)
	GetUserWithID(ctx context.Context, id int64) (*model.User, error)
	AddUser(ctx context.Context, name, email, password string) (*model.User, error)
}

// PropertyStore is implemented by *repository.PropertyRepository.
type PropertyStore interface {
	Search(ctx context.Context, criteria repository.PropertySearchCriteria, limit int) ([]model.PropertySearchResult, error)
	AddProperty(ctx context.Context, fields map[string]any) (*model.Property, error)
}

// ReservationStore is implemented by *repository.ReservationRepository.
type ReservationStore interface {
	GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.ReservationWithPropertySummary, error)
}

// WelcomeMailer is implemented by *job.JobService.
type WelcomeMailer interface {
	EnqueueWelcomeEmail(ctx context.Context, to, name string) error
}
