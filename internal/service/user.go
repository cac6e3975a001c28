package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lightbnb/backend/internal/errs"
	"github.com/lightbnb/backend/internal/model"
	"github.com/lightbnb/backend/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput is the data needed to create an account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (in RegisterInput) Validate() error {
	return validation.Struct(in)
}

type UserService struct {
	users  UserStore
	mailer WelcomeMailer
	logger *zerolog.Logger
}

func NewUserService(users UserStore, mailer WelcomeMailer, logger *zerolog.Logger) *UserService {
	return &UserService{users: users, mailer: mailer, logger: logger}
}

// Register creates a user with a bcrypt-hashed password and queues the
// welcome email. A queueing failure does not fail the registration.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)

	if err := validation.Check(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.AddUser(ctx, in.Name, in.Email, string(hash))
	if err != nil {
		return nil, err
	}

	if err := s.mailer.EnqueueWelcomeEmail(ctx, user.Email, user.Name); err != nil {
		s.logger.Warn().
			Err(err).
			Int64("user_id", user.ID).
			Msg("failed to enqueue welcome email")
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user registered")

	return user, nil
}

// GetByEmail returns the user with the given email or a 404 HTTPError.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.GetUserWithEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFoundError("user not found", true, nil)
	}
	return user, nil
}

// GetByID returns the user with the given id or a 404 HTTPError.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetUserWithID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFoundError("user not found", true, nil)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
