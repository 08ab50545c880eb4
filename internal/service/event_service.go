package service

import (
	"context"
	"time"

	"event-management-api/internal/model"
	"event-management-api/internal/repository"
	apperrors "event-management-api/pkg/app_errors"

	"github.com/google/uuid"
)

const (
	DefaultPageLimit = 10
	// 防止 caller 要求無上限的分頁大小
	MaxPageLimit = 100
)

type EventService interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context, page, limit int) (*model.EventList, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	UpdateByEventID(ctx context.Context, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	DeleteByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
}

type EventServiceImpl struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &EventServiceImpl{repo: repo}
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	// 日期只在建立與更新當下檢查，之後允許活動自然過期
	if !event.Date.After(time.Now()) {
		return nil, apperrors.ErrEventDateNotFuture
	}
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	return s.repo.Create(ctx, event)
}

func (s *EventServiceImpl) List(ctx context.Context, page, limit int) (*model.EventList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &model.EventList{
		TotalEvents: total,
		Page:        page,
		TotalPages:  (total + limit - 1) / limit,
		Events:      events,
	}, nil
}

func (s *EventServiceImpl) GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	return s.repo.FindByEventID(ctx, eventID)
}

func (s *EventServiceImpl) UpdateByEventID(ctx context.Context, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	if params.Date != nil && !params.Date.After(time.Now()) {
		return nil, apperrors.ErrEventDateNotFuture
	}

	event, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, event.ID, params)
}

func (s *EventServiceImpl) DeleteByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	event, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return s.repo.DeleteWithRegistrations(ctx, event.ID)
}
