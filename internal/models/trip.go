package models

import (
	"time"

	"github.com/google/uuid"
)

// Trip представляет поездку путешественника с настройками мониторинга
type Trip struct {
	ID                   uuid.UUID `json:"id"`
	UserID               string    `json:"user_id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	IsActive             bool      `json:"is_active"`
	MonitoringEnabled    bool      `json:"monitoring_enabled"`
	DeviationThresholdKm float64   `json:"deviation_threshold_km"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
