package mailer

import (
	"context"

	"event-management-api/internal/mailer"

	"github.com/stretchr/testify/mock"
)

type MailerMock struct {
	mock.Mock
}

func NewMailerMock() *MailerMock {
	return &MailerMock{}
}

func (m *MailerMock) SendConfirmation(ctx context.Context, msg mailer.Message) (*mailer.Receipt, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mailer.Receipt), args.Error(1)
}
