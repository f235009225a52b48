package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/travel_safety_monitor/internal/models"
	"github.com/shenikar/travel_safety_monitor/internal/service"
)

// tripCacheTTL - срок жизни кэша поездки. Поездка читается на каждом
// обновлении геопозиции, поэтому кэшируется агрессивно.
const tripCacheTTL = 5 * time.Minute

type TripRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewTripRepository(db *pgxpool.Pool, redisClient *redis.Client) service.TripRepository {
	return &TripRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись о поездке в бд
func (r *TripRepository) Create(ctx context.Context, trip *models.Trip) error {
	query := `
		INSERT INTO trips (user_id, name, description, start_date, end_date, is_active, monitoring_enabled, deviation_threshold_km)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		trip.UserID,
		trip.Name,
		trip.Description,
		trip.StartDate,
		trip.EndDate,
		trip.IsActive,
		trip.MonitoringEnabled,
		trip.DeviationThresholdKm,
	).Scan(&trip.ID, &trip.CreatedAt, &trip.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// GetByID возвращает поездку по её UUID
func (r *TripRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	trip := &models.Trip{}
	query := `
		SELECT id, user_id, name, description, start_date, end_date, is_active, monitoring_enabled, deviation_threshold_km, created_at, updated_at
		FROM trips
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&trip.ID,
		&trip.UserID,
		&trip.Name,
		&trip.Description,
		&trip.StartDate,
		&trip.EndDate,
		&trip.IsActive,
		&trip.MonitoringEnabled,
		&trip.DeviationThresholdKm,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("trip with id %s: %w", id, service.ErrTripNotFound)
		}
		return nil, fmt.Errorf("failed to get trip by id: %w", err)
	}
	return trip, nil
}

// ListByUser возвращает поездки пользователя, новые первыми
func (r *TripRepository) ListByUser(ctx context.Context, userID string) ([]*models.Trip, error) {
	query := `
		SELECT id, user_id, name, description, start_date, end_date, is_active, monitoring_enabled, deviation_threshold_km, created_at, updated_at
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	trips := make([]*models.Trip, 0)
	for rows.Next() {
		trip := &models.Trip{}
		err := rows.Scan(
			&trip.ID,
			&trip.UserID,
			&trip.Name,
			&trip.Description,
			&trip.StartDate,
			&trip.EndDate,
			&trip.IsActive,
			&trip.MonitoringEnabled,
			&trip.DeviationThresholdKm,
			&trip.CreatedAt,
			&trip.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return trips, nil
}

// Update обновляет поездку
func (r *TripRepository) Update(ctx context.Context, trip *models.Trip) error {
	query := `
		UPDATE trips SET
			name = $1,
			description = $2,
			start_date = $3,
			end_date = $4,
			monitoring_enabled = $5,
			deviation_threshold_km = $6,
			updated_at = NOW()
		WHERE id = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		trip.Name,
		trip.Description,
		trip.StartDate,
		trip.EndDate,
		trip.MonitoringEnabled,
		trip.DeviationThresholdKm,
		trip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("trip with id %s: %w", trip.ID, service.ErrTripNotFound)
	}
	return nil
}

// Deactivate устанавливает is_active = false для поездки (мягкое удаление)
func (r *TripRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE trips SET
			is_active = false,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate trip: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("trip with id %s: %w", id, service.ErrTripNotFound)
	}
	return nil
}

// AddPlannedLocation добавляет запланированную точку маршрута
func (r *TripRepository) AddPlannedLocation(ctx context.Context, loc *models.PlannedLocation) error {
	query := `
		INSERT INTO planned_locations (trip_id, name, description, latitude, longitude, planned_arrival, radius_meters, is_accommodation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		loc.TripID,
		loc.Name,
		loc.Description,
		loc.Latitude,
		loc.Longitude,
		loc.PlannedArrival,
		loc.RadiusMeters,
		loc.IsAccommodation,
	).Scan(&loc.ID, &loc.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add planned location: %w", err)
	}
	return nil
}

// ListPlannedLocations возвращает запланированные точки поездки в порядке создания
func (r *TripRepository) ListPlannedLocations(ctx context.Context, tripID uuid.UUID) ([]*models.PlannedLocation, error) {
	query := `
		SELECT id, trip_id, name, description, latitude, longitude, planned_arrival, radius_meters, is_accommodation, created_at
		FROM planned_locations
		WHERE trip_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list planned locations: %w", err)
	}
	defer rows.Close()

	locations := make([]*models.PlannedLocation, 0)
	for rows.Next() {
		loc := &models.PlannedLocation{}
		err := rows.Scan(
			&loc.ID,
			&loc.TripID,
			&loc.Name,
			&loc.Description,
			&loc.Latitude,
			&loc.Longitude,
			&loc.PlannedArrival,
			&loc.RadiusMeters,
			&loc.IsAccommodation,
			&loc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan planned location row: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListPlannedLocations: %w", err)
	}
	return locations, nil
}

// GetTripFromCache пытается получить поездку из Redis
func (r *TripRepository) GetTripFromCache(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	key := fmt.Sprintf("trip:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trip from cache: %w", err)
	}

	trip := &models.Trip{}
	if err := json.Unmarshal(val, trip); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trip from cache: %w", err)
	}
	return trip, nil
}

// SetTripCache сохраняет поездку в Redis
func (r *TripRepository) SetTripCache(ctx context.Context, trip *models.Trip) error {
	key := fmt.Sprintf("trip:%s", trip.ID.String())
	val, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("failed to marshal trip for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, tripCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set trip in cache: %w", err)
	}
	return nil
}

// InvalidateTripCache удаляет поездку из Redis кэша
func (r *TripRepository) InvalidateTripCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("trip:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate trip cache: %w", err)
	}
	return nil
}
