package service

import (
	"context"
	"testing"
	"time"

	"event-management-api/internal/mailer"
	"event-management-api/internal/model"
	"event-management-api/internal/service"
	apperrors "event-management-api/pkg/app_errors"
	mailerMocks "event-management-api/test/internal/mocks/mailer"
	repoMocks "event-management-api/test/internal/mocks/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRegistrationMocks() (*repoMocks.EventRepositoryMock, *repoMocks.RegistrationRepositoryMock, *mailerMocks.MailerMock) {
	return repoMocks.NewEventRepositoryMock(), repoMocks.NewRegistrationRepositoryMock(), mailerMocks.NewMailerMock()
}

func TestRegistrationService_Register(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	storedEvent := &model.Event{
		ID:      7,
		EventID: eventID,
		Name:    "Tech Conference 2024",
	}

	t.Run("Success", func(t *testing.T) {
		eventRepo, registrationRepo, mockMailer := setupRegistrationMocks()
		registrationService := service.NewRegistrationService(eventRepo, registrationRepo, mockMailer)

		eventRepo.On("FindByEventID", ctx, eventID).Return(storedEvent, nil).Once()
		registrationRepo.On("CreateWithCapacity", ctx, mock.MatchedBy(func(registration *model.Registration) bool {
			return registration.EventID == 7 &&
				registration.RegistrationID != uuid.Nil &&
				registration.Name == "John Doe" &&
				registration.Email == "john.doe@example.com"
		}), service.MaxRegistrationsPerEvent).Return(&model.Registration{
			ID:             1,
			RegistrationID: uuid.New(),
			EventID:        7,
			Name:           "John Doe",
			Email:          "john.doe@example.com",
		}, nil).Once()
		mockMailer.On("SendConfirmation", ctx, mailer.Message{
			To:            "john.doe@example.com",
			RecipientName: "John Doe",
			EventName:     "Tech Conference 2024",
		}).Return(&mailer.Receipt{
			MessageID: uuid.New().String(),
			Accepted:  []string{"john.doe@example.com"},
			SentAt:    time.Now().UTC(),
		}, nil).Once()

		registration, receipt, err := registrationService.Register(ctx, eventID, "John Doe", "john.doe@example.com")

		require.NoError(t, err)
		assert.Equal(t, "John Doe", registration.Name)
		assert.NotNil(t, receipt)
		eventRepo.AssertExpectations(t)
		registrationRepo.AssertExpectations(t)
		mockMailer.AssertExpectations(t)
	})

	t.Run("Failed - EventNotFound", func(t *testing.T) {
		eventRepo, registrationRepo, mockMailer := setupRegistrationMocks()
		registrationService := service.NewRegistrationService(eventRepo, registrationRepo, mockMailer)

		eventRepo.On("FindByEventID", ctx, eventID).Return(nil, apperrors.ErrEventNotFound).Once()

		_, _, err := registrationService.Register(ctx, eventID, "John Doe", "john.doe@example.com")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		registrationRepo.AssertNotCalled(t, "CreateWithCapacity")
		mockMailer.AssertNotCalled(t, "SendConfirmation")
	})

	t.Run("Failed - EventFull", func(t *testing.T) {
		eventRepo, registrationRepo, mockMailer := setupRegistrationMocks()
		registrationService := service.NewRegistrationService(eventRepo, registrationRepo, mockMailer)

		eventRepo.On("FindByEventID", ctx, eventID).Return(storedEvent, nil).Once()
		registrationRepo.On("CreateWithCapacity", ctx, mock.Anything, service.MaxRegistrationsPerEvent).
			Return(nil, apperrors.ErrEventFull).Once()

		_, _, err := registrationService.Register(ctx, eventID, "John Doe", "john.doe@example.com")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventFull)
		mockMailer.AssertNotCalled(t, "SendConfirmation")
	})

	t.Run("Failed - NotificationAfterPersist", func(t *testing.T) {
		eventRepo, registrationRepo, mockMailer := setupRegistrationMocks()
		registrationService := service.NewRegistrationService(eventRepo, registrationRepo, mockMailer)

		eventRepo.On("FindByEventID", ctx, eventID).Return(storedEvent, nil).Once()
		registrationRepo.On("CreateWithCapacity", ctx, mock.Anything, service.MaxRegistrationsPerEvent).
			Return(&model.Registration{ID: 1, EventID: 7}, nil).Once()
		mockMailer.On("SendConfirmation", ctx, mock.Anything).
			Return(nil, apperrors.ErrNotificationFailed).Once()

		_, _, err := registrationService.Register(ctx, eventID, "John Doe", "john.doe@example.com")

		// 報名已寫入，但請求以寄信錯誤告終
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotificationFailed)
		registrationRepo.AssertExpectations(t)
	})
}
