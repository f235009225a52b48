package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateTripRequest DTO для создания поездки
// @Description DTO для создания поездки
type CreateTripRequest struct {
	UserID               string    `json:"user_id" validate:"required"`
	Name                 string    `json:"name" validate:"required,min=2,max=255"`
	Description          string    `json:"description,omitempty"`
	StartDate            time.Time `json:"start_date" validate:"required"`
	EndDate              time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
	MonitoringEnabled    *bool     `json:"monitoring_enabled,omitempty"`
	DeviationThresholdKm float64   `json:"deviation_threshold_km" validate:"omitempty,gt=0"`
}

// UpdateTripRequest DTO для обновления поездки
// @Description DTO для обновления поездки
type UpdateTripRequest struct {
	Name                 string    `json:"name" validate:"required,min=2,max=255"`
	Description          string    `json:"description,omitempty"`
	StartDate            time.Time `json:"start_date" validate:"required"`
	EndDate              time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
	MonitoringEnabled    *bool     `json:"monitoring_enabled" validate:"required"`
	DeviationThresholdKm float64   `json:"deviation_threshold_km" validate:"required,gt=0"`
}

// TripResponse DTO для ответа с информацией о поездке
// @Description DTO для ответа с информацией о поездке
type TripResponse struct {
	ID                   uuid.UUID `json:"id"`
	UserID               string    `json:"user_id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description,omitempty"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	IsActive             bool      `json:"is_active"`
	MonitoringEnabled    bool      `json:"monitoring_enabled"`
	DeviationThresholdKm float64   `json:"deviation_threshold_km"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// AddPlannedLocationRequest DTO для добавления запланированной точки
// @Description DTO для добавления запланированной точки маршрута
type AddPlannedLocationRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description,omitempty"`
	// Указатели отличают отсутствующую координату от валидного нуля
	// (экватор, нулевой меридиан)
	Latitude        *float64   `json:"latitude" validate:"required,latitude"`
	Longitude       *float64   `json:"longitude" validate:"required,longitude"`
	PlannedArrival  *time.Time `json:"planned_arrival,omitempty"`
	RadiusMeters    int        `json:"radius_meters" validate:"omitempty,gt=0"`
	IsAccommodation bool       `json:"is_accommodation"`
}

// PlannedLocationResponse DTO для ответа с запланированной точкой
// @Description DTO для ответа с запланированной точкой маршрута
type PlannedLocationResponse struct {
	ID              uuid.UUID  `json:"id"`
	TripID          uuid.UUID  `json:"trip_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	PlannedArrival  *time.Time `json:"planned_arrival,omitempty"`
	RadiusMeters    int        `json:"radius_meters"`
	IsAccommodation bool       `json:"is_accommodation"`
	CreatedAt       time.Time  `json:"created_at"`
}

// SubmitLocationRequest DTO для передачи геопозиции
// @Description DTO для передачи геопозиции
type SubmitLocationRequest struct {
	TripID uuid.UUID `json:"trip_id" validate:"required"`
	UserID string    `json:"user_id" validate:"required"`
	// Указатели отличают отсутствующую координату от валидного нуля
	// (экватор, нулевой меридиан)
	Latitude       *float64   `json:"latitude" validate:"required,latitude"`
	Longitude      *float64   `json:"longitude" validate:"required,longitude"`
	AccuracyMeters *float64   `json:"accuracy_meters,omitempty" validate:"omitempty,gte=0"`
	BatteryLevel   *int       `json:"battery_level,omitempty" validate:"omitempty,gte=0,lte=100"`
	IsManual       bool       `json:"is_manual"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
}

// SubmitLocationResponse DTO для ответа на передачу геопозиции
// @Description DTO для ответа на передачу геопозиции
type SubmitLocationResponse struct {
	Message         string                 `json:"message"`
	LocationID      int64                  `json:"location_id"`
	AlertsTriggered []*SafetyAlertResponse `json:"alerts_triggered,omitempty"`
}

// LocationUpdateResponse DTO для ответа с геопозицией
// @Description DTO для ответа с геопозицией
type LocationUpdateResponse struct {
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

// SafetyAlertResponse DTO для ответа с информацией об оповещении
// @Description DTO для ответа с информацией об оповещении
type SafetyAlertResponse struct {
	ID                 uuid.UUID  `json:"id"`
	TripID             uuid.UUID  `json:"trip_id"`
	UserID             string     `json:"user_id"`
	AlertType          string     `json:"alert_type"`
	Status             string     `json:"status"`
	Title              string     `json:"title"`
	Message            string     `json:"message"`
	Latitude           float64    `json:"latitude"`
	Longitude          float64    `json:"longitude"`
	DistanceFromPlanKm *float64   `json:"distance_from_planned_km,omitempty"`
	TriggeredAt        time.Time  `json:"triggered_at"`
	ResponseDeadline   time.Time  `json:"response_deadline"`
	RespondedAt        *time.Time `json:"responded_at,omitempty"`
	ResponseMessage    string     `json:"response_message,omitempty"`
}

// RespondAlertRequest DTO для ответа пользователя на оповещение
// @Description DTO для ответа пользователя на оповещение
type RespondAlertRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Response string `json:"response" validate:"required,oneof=safe help"`
	Message  string `json:"message,omitempty"`
}

// ManualAlertRequest DTO для ручного создания оповещения
// @Description DTO для ручного создания оповещения
type ManualAlertRequest struct {
	TripID    uuid.UUID `json:"trip_id" validate:"required"`
	UserID    string    `json:"user_id" validate:"required"`
	AlertType string    `json:"alert_type" validate:"required,oneof=check_in emergency geofence"`
	Message   string    `json:"message" validate:"required"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount int `json:"user_count"`
}
