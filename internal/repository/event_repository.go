package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"event-management-api/internal/model"
	apperrors "event-management-api/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context, limit, offset int) ([]*model.Event, error)
	Count(ctx context.Context) (int, error)
	FindByID(ctx context.Context, id int) (*model.Event, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error)
	// DeleteWithRegistrations 同一交易內先刪除報名再刪除活動
	DeleteWithRegistrations(ctx context.Context, id int) (*model.Event, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = "id, event_id, name, description, date, location, image_url, created_at, updated_at"

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.EventID,
		&event.Name,
		&event.Description,
		&event.Date,
		&event.Location,
		&event.ImageURL,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := fmt.Sprintf(`
		INSERT INTO events (event_id, name, description, date, location, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, eventColumns)

	return scanEvent(r.pool.QueryRow(ctx, query,
		event.EventID, event.Name, event.Description, event.Date, event.Location, event.ImageURL,
	))
}

func (r *EventRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, eventColumns)

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM events").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1
	`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE event_id = $1
	`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}

	if params.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *params.Description)
		argPos++
	}

	if params.Date != nil {
		sets = append(sets, fmt.Sprintf("date = $%d", argPos))
		args = append(args, *params.Date)
		argPos++
	}

	if params.Location != nil {
		sets = append(sets, fmt.Sprintf("location = $%d", argPos))
		args = append(args, *params.Location)
		argPos++
	}

	if params.ImageURL != nil {
		sets = append(sets, fmt.Sprintf("image_url = $%d", argPos))
		args = append(args, *params.ImageURL)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) DeleteWithRegistrations(ctx context.Context, id int) (*model.Event, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, "DELETE FROM registrations WHERE event_id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete registrations: %w", err)
	}

	query := fmt.Sprintf(`
		DELETE FROM events
		WHERE id = $1
		RETURNING %s
	`, eventColumns)

	event, err := scanEvent(tx.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return event, nil
}
