package service

import (
	"context"

	"github.com/lightbnb/backend/internal/model"
	"github.com/lightbnb/backend/internal/repository"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetUserWithEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) GetUserWithID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) AddUser(ctx context.Context, name, email, password string) (*model.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockPropertyStore struct {
	mock.Mock
}

func (m *MockPropertyStore) Search(ctx context.Context, criteria repository.PropertySearchCriteria, limit int) ([]model.PropertySearchResult, error) {
	args := m.Called(ctx, criteria, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PropertySearchResult), args.Error(1)
}

func (m *MockPropertyStore) AddProperty(ctx context.Context, fields map[string]any) (*model.Property, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

type MockReservationStore struct {
	mock.Mock
}

func (m *MockReservationStore) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.ReservationWithPropertySummary, error) {
	args := m.Called(ctx, guestID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReservationWithPropertySummary), args.Error(1)
}

type MockWelcomeMailer struct {
	mock.Mock
}

func (m *MockWelcomeMailer) EnqueueWelcomeEmail(ctx context.Context, to, name string) error {
	return m.Called(ctx, to, name).Error(0)
}

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}
