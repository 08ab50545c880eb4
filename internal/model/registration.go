package model

import (
	"time"

	"github.com/google/uuid"
)

// Registration 報名紀錄，只會新增，不提供更新或取消
type Registration struct {
	ID             int       `json:"id" db:"id"`
	RegistrationID uuid.UUID `json:"registration_id" db:"registration_id"`
	EventID        int       `json:"event_id" db:"event_id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
