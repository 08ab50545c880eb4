package model

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          int       `json:"id" db:"id"`
	EventID     uuid.UUID `json:"event_id" db:"event_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Date        time.Time `json:"date" db:"date"`
	Location    string    `json:"location" db:"location"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateEventParams struct {
	Name        *string
	Description *string
	Date        *time.Time
	Location    *string
	ImageURL    *string
}

// EventList 分頁查詢結果
type EventList struct {
	TotalEvents int      `json:"totalEvents"`
	Page        int      `json:"page"`
	TotalPages  int      `json:"totalPages"`
	Events      []*Event `json:"events"`
}

// 接受 RFC3339 以及日期簡寫兩種格式
var eventDateLayouts = []string{time.RFC3339, "2006-01-02"}

func ParseEventDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range eventDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
