package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"event-management-api/internal/model"
	"event-management-api/internal/repository"
	apperrors "event-management-api/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_Create(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewEventRepository(testDB)

	date := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	event := &model.Event{
		EventID:     uuid.New(),
		Name:        "Tech Conference 2024",
		Description: "An event to showcase the latest in technology.",
		Date:        date,
		Location:    "San Francisco, CA",
	}

	created, err := repo.Create(ctx, event)

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, event.EventID, created.EventID)
	assert.Equal(t, "Tech Conference 2024", created.Name)
	assert.True(t, created.Date.Equal(date))
	assert.Nil(t, created.ImageURL)
}

func TestEventRepository_FindByEventID(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewEventRepository(testDB)

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.FindByEventID(ctx, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("Found", func(t *testing.T) {
		eventID := uuid.New()
		event, err := repo.Create(ctx, &model.Event{
			EventID:     eventID,
			Name:        "Tech Conference 2024",
			Description: "An event to showcase the latest in technology.",
			Date:        time.Now().Add(48 * time.Hour),
			Location:    "San Francisco, CA",
		})
		require.NoError(t, err)

		found, err := repo.FindByEventID(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, event.ID, found.ID)
	})
}

func TestEventRepository_ListAndCount(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewEventRepository(testDB)

	for i := 0; i < 25; i++ {
		createTestEvent(t, fmt.Sprintf("Event %02d", i))
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, count)

	seen := map[int]bool{}
	for _, offset := range []int{0, 10, 20} {
		events, err := repo.List(ctx, 10, offset)
		require.NoError(t, err)
		if offset == 20 {
			assert.Len(t, events, 5)
		} else {
			assert.Len(t, events, 10)
		}
		for _, event := range events {
			assert.False(t, seen[event.ID], "event %d returned on more than one page", event.ID)
			seen[event.ID] = true
		}
	}
	assert.Len(t, seen, 25)
}

func TestEventRepository_Update(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewEventRepository(testDB)

	id := createTestEvent(t, "Tech Conference 2024")

	t.Run("PartialUpdateKeepsOtherFields", func(t *testing.T) {
		name := "Updated Tech Conference 2024"
		updated, err := repo.Update(ctx, id, model.UpdateEventParams{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "Updated Tech Conference 2024", updated.Name)
		assert.Equal(t, "An event to showcase the latest in technology.", updated.Description)
		assert.Equal(t, "San Francisco, CA", updated.Location)
	})

	t.Run("NoFields", func(t *testing.T) {
		_, err := repo.Update(ctx, id, model.UpdateEventParams{})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("NotFound", func(t *testing.T) {
		name := "Ghost"
		_, err := repo.Update(ctx, 99999, model.UpdateEventParams{Name: &name})
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_DeleteWithRegistrations(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewEventRepository(testDB)

	id := createTestEvent(t, "Tech Conference 2024")
	for i := 0; i < 3; i++ {
		createTestRegistration(t, id, fmt.Sprintf("Attendee %d", i), fmt.Sprintf("attendee%d@example.com", i))
	}

	deleted, err := repo.DeleteWithRegistrations(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, deleted.ID)

	// 活動與其報名一併刪除
	assert.Equal(t, 0, countRows(t, "events"))
	assert.Equal(t, 0, countRows(t, "registrations"))

	_, err = repo.DeleteWithRegistrations(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}
