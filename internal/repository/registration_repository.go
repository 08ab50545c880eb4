package repository

import (
	"context"
	"fmt"

	"event-management-api/internal/model"
	apperrors "event-management-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RegistrationRepository interface {
	CountByEventID(ctx context.Context, eventID int) (int, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Registration, error)
	// CreateWithCapacity 在單一交易內鎖定活動列、檢查報名數後寫入，
	// 滿額時回傳 ErrEventFull
	CreateWithCapacity(ctx context.Context, registration *model.Registration, limit int) (*model.Registration, error)
}

type RegistrationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRegistrationRepository(pool *pgxpool.Pool) RegistrationRepository {
	return &RegistrationRepositoryImpl{
		pool: pool,
	}
}

const registrationColumns = "id, registration_id, event_id, name, email, created_at"

func scanRegistration(row pgx.Row) (*model.Registration, error) {
	var registration model.Registration
	err := row.Scan(
		&registration.ID,
		&registration.RegistrationID,
		&registration.EventID,
		&registration.Name,
		&registration.Email,
		&registration.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

func (r *RegistrationRepositoryImpl) CountByEventID(ctx context.Context, eventID int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM registrations WHERE event_id = $1", eventID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RegistrationRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Registration, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM registrations
		WHERE event_id = $1
		ORDER BY id
	`, registrationColumns)

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registrations := make([]*model.Registration, 0)
	for rows.Next() {
		registration, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, registration)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *RegistrationRepositoryImpl) CreateWithCapacity(ctx context.Context, registration *model.Registration, limit int) (*model.Registration, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// 鎖定活動列，避免並發報名同時通過容量檢查
	var eventPK int
	err = tx.QueryRow(ctx,
		"SELECT id FROM events WHERE id = $1 FOR UPDATE", registration.EventID,
	).Scan(&eventPK)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	var count int
	err = tx.QueryRow(ctx,
		"SELECT COUNT(*) FROM registrations WHERE event_id = $1", registration.EventID,
	).Scan(&count)
	if err != nil {
		return nil, err
	}

	if count >= limit {
		return nil, apperrors.ErrEventFull
	}

	query := fmt.Sprintf(`
		INSERT INTO registrations (registration_id, event_id, name, email)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, registrationColumns)

	created, err := scanRegistration(tx.QueryRow(ctx, query,
		registration.RegistrationID, registration.EventID, registration.Name, registration.Email,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}
