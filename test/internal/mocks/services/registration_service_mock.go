package services

import (
	"context"

	"event-management-api/internal/mailer"
	"event-management-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type RegistrationServiceMock struct {
	mock.Mock
}

func NewRegistrationServiceMock() *RegistrationServiceMock {
	return &RegistrationServiceMock{}
}

func (m *RegistrationServiceMock) Register(ctx context.Context, eventID uuid.UUID, name, email string) (*model.Registration, *mailer.Receipt, error) {
	args := m.Called(ctx, eventID, name, email)
	var registration *model.Registration
	if args.Get(0) != nil {
		registration = args.Get(0).(*model.Registration)
	}
	var receipt *mailer.Receipt
	if args.Get(1) != nil {
		receipt = args.Get(1).(*mailer.Receipt)
	}
	return registration, receipt, args.Error(2)
}
