package models

import (
	"time"

	"github.com/google/uuid"
)

// PlannedLocation представляет запланированную точку маршрута поездки
type PlannedLocation struct {
	ID              uuid.UUID  `json:"id"`
	TripID          uuid.UUID  `json:"trip_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	PlannedArrival  *time.Time `json:"planned_arrival,omitempty"`
	RadiusMeters    int        `json:"radius_meters"`
	IsAccommodation bool       `json:"is_accommodation"`
	CreatedAt       time.Time  `json:"created_at"`
}
