package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationUpdate представляет запись о переданной геопозиции пользователя.
// Записи только добавляются и упорядочены по Timestamp.
type LocationUpdate struct {
	ID             int64     `json:"id"`
	TripID         uuid.UUID `json:"trip_id"`
	UserID         string    `json:"user_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters *float64  `json:"accuracy_meters,omitempty"`
	BatteryLevel   *int      `json:"battery_level,omitempty"`
	IsManual       bool      `json:"is_manual"`
	Timestamp      time.Time `json:"timestamp"`
	CreatedAt      time.Time `json:"created_at"`
}
