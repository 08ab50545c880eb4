package service

import (
	"context"

	"event-management-api/internal/mailer"
	"event-management-api/internal/model"
	"event-management-api/internal/repository"
	apperrors "event-management-api/pkg/app_errors"
	"event-management-api/pkg/metrics"

	"github.com/google/uuid"
)

// MaxRegistrationsPerEvent 每場活動的報名上限
const MaxRegistrationsPerEvent = 15

type RegistrationService interface {
	// Register 依序執行活動查詢、容量檢查寫入、確認信寄送，任一步失敗即中止
	Register(ctx context.Context, eventID uuid.UUID, name, email string) (*model.Registration, *mailer.Receipt, error)
}

type RegistrationServiceImpl struct {
	eventRepo repository.EventRepository
	repo      repository.RegistrationRepository
	mailer    mailer.Mailer
}

func NewRegistrationService(
	eventRepo repository.EventRepository,
	repo repository.RegistrationRepository,
	m mailer.Mailer,
) RegistrationService {
	return &RegistrationServiceImpl{
		eventRepo: eventRepo,
		repo:      repo,
		mailer:    m,
	}
}

func (s *RegistrationServiceImpl) Register(ctx context.Context, eventID uuid.UUID, name, email string) (*model.Registration, *mailer.Receipt, error) {
	event, err := s.eventRepo.FindByEventID(ctx, eventID)
	if err != nil {
		if err == apperrors.ErrEventNotFound {
			metrics.RegistrationsRejected.WithLabelValues(metrics.ReasonEventNotFound).Inc()
		}
		return nil, nil, err
	}

	registration := &model.Registration{
		RegistrationID: uuid.New(),
		EventID:        event.ID,
		Name:           name,
		Email:          email,
	}

	created, err := s.repo.CreateWithCapacity(ctx, registration, MaxRegistrationsPerEvent)
	if err != nil {
		if err == apperrors.ErrEventFull {
			metrics.RegistrationsRejected.WithLabelValues(metrics.ReasonEventFull).Inc()
		}
		return nil, nil, err
	}
	metrics.RegistrationsAccepted.Inc()

	// 報名已寫入；寄信失敗會讓整個請求失敗，但不回滾報名
	receipt, err := s.mailer.SendConfirmation(ctx, mailer.Message{
		To:            email,
		RecipientName: name,
		EventName:     event.Name,
	})
	if err != nil {
		metrics.ConfirmationMailsFailed.Inc()
		return nil, nil, err
	}
	metrics.ConfirmationMailsSent.Inc()

	return created, receipt, nil
}
