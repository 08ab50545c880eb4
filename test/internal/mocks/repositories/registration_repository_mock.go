package repositories

import (
	"context"

	"event-management-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type RegistrationRepositoryMock struct {
	mock.Mock
}

func NewRegistrationRepositoryMock() *RegistrationRepositoryMock {
	return &RegistrationRepositoryMock{}
}

func (m *RegistrationRepositoryMock) CountByEventID(ctx context.Context, eventID int) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *RegistrationRepositoryMock) ListByEventID(ctx context.Context, eventID int) ([]*model.Registration, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Registration), args.Error(1)
}

func (m *RegistrationRepositoryMock) CreateWithCapacity(ctx context.Context, registration *model.Registration, limit int) (*model.Registration, error) {
	args := m.Called(ctx, registration, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Registration), args.Error(1)
}
