package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы оповещений о безопасности
const (
	AlertTypeDeviation  = "deviation"
	AlertTypeStationary = "stationary"
	AlertTypeCheckIn    = "check_in"
	AlertTypeEmergency  = "emergency"
	AlertTypeBattery    = "battery"
	AlertTypeGeofence   = "geofence"
)

// Статусы оповещения. Переходы монотонны: из active оповещение переходит
// в один из терминальных статусов и обратно не возвращается.
const (
	AlertStatusActive        = "active"
	AlertStatusRespondedSafe = "responded_safe"
	AlertStatusRespondedHelp = "responded_help"
	AlertStatusEscalated     = "escalated"
)

// SafetyAlert представляет оповещение об отклонении от маршрута или ручной сигнал.
// Оповещения никогда не удаляются и хранятся как история.
type SafetyAlert struct {
	ID                  uuid.UUID  `json:"id"`
	TripID              uuid.UUID  `json:"trip_id"`
	UserID              string     `json:"user_id"`
	AlertType           string     `json:"alert_type"`
	Status              string     `json:"status"`
	Title               string     `json:"title"`
	Message             string     `json:"message"`
	Latitude            float64    `json:"latitude"`
	Longitude           float64    `json:"longitude"`
	DistanceFromPlanKm  *float64   `json:"distance_from_planned_km,omitempty"`
	TriggeredAt         time.Time  `json:"triggered_at"`
	ResponseDeadline    time.Time  `json:"response_deadline"`
	RespondedAt         *time.Time `json:"responded_at,omitempty"`
	ResponseMessage     string     `json:"response_message,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// IsResolved сообщает, находится ли оповещение в терминальном статусе
func (a *SafetyAlert) IsResolved() bool {
	return a.Status != AlertStatusActive
}
