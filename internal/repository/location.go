package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/travel_safety_monitor/internal/models"
	"github.com/shenikar/travel_safety_monitor/internal/service"
)

type LocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) service.LocationRepository {
	return &LocationRepository{db: db}
}

// Append сохраняет новую геопозицию. Записи только добавляются.
func (r *LocationRepository) Append(ctx context.Context, update *models.LocationUpdate) error {
	query := `
		INSERT INTO location_updates (trip_id, user_id, latitude, longitude, accuracy_meters, battery_level, is_manual, "timestamp")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		update.TripID,
		update.UserID,
		update.Latitude,
		update.Longitude,
		update.AccuracyMeters,
		update.BatteryLevel,
		update.IsManual,
		update.Timestamp,
	).Scan(&update.ID, &update.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append location update: %w", err)
	}
	return nil
}

// ListRecent возвращает последние геопозиции поездки, новые первыми
func (r *LocationRepository) ListRecent(ctx context.Context, tripID uuid.UUID, limit int) ([]*models.LocationUpdate, error) {
	query := `
		SELECT id, trip_id, user_id, latitude, longitude, accuracy_meters, battery_level, is_manual, "timestamp", created_at
		FROM location_updates
		WHERE trip_id = $1
		ORDER BY "timestamp" DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, tripID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent location updates: %w", err)
	}
	defer rows.Close()

	return scanLocationUpdates(rows)
}

// ListSince возвращает геопозиции поездки начиная с момента since, новые первыми
func (r *LocationRepository) ListSince(ctx context.Context, tripID uuid.UUID, since time.Time) ([]*models.LocationUpdate, error) {
	query := `
		SELECT id, trip_id, user_id, latitude, longitude, accuracy_meters, battery_level, is_manual, "timestamp", created_at
		FROM location_updates
		WHERE trip_id = $1 AND "timestamp" >= $2
		ORDER BY "timestamp" DESC;
	`
	rows, err := r.db.Query(ctx, query, tripID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list location updates since %s: %w", since, err)
	}
	defer rows.Close()

	return scanLocationUpdates(rows)
}

// GetLatest возвращает последнюю известную геопозицию поездки
func (r *LocationRepository) GetLatest(ctx context.Context, tripID uuid.UUID) (*models.LocationUpdate, error) {
	query := `
		SELECT id, trip_id, user_id, latitude, longitude, accuracy_meters, battery_level, is_manual, "timestamp", created_at
		FROM location_updates
		WHERE trip_id = $1
		ORDER BY "timestamp" DESC
		LIMIT 1;
	`
	update := &models.LocationUpdate{}
	err := r.db.QueryRow(ctx, query, tripID).Scan(
		&update.ID,
		&update.TripID,
		&update.UserID,
		&update.Latitude,
		&update.Longitude,
		&update.AccuracyMeters,
		&update.BatteryLevel,
		&update.IsManual,
		&update.Timestamp,
		&update.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("trip %s: %w", tripID, service.ErrNoLocationData)
		}
		return nil, fmt.Errorf("failed to get latest location update: %w", err)
	}
	return update, nil
}

// CountActiveUsers возвращает количество уникальных пользователей,
// передававших геопозицию за последние minutes минут
func (r *LocationRepository) CountActiveUsers(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM location_updates
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return count, nil
}

func scanLocationUpdates(rows pgx.Rows) ([]*models.LocationUpdate, error) {
	updates := make([]*models.LocationUpdate, 0)
	for rows.Next() {
		update := &models.LocationUpdate{}
		err := rows.Scan(
			&update.ID,
			&update.TripID,
			&update.UserID,
			&update.Latitude,
			&update.Longitude,
			&update.AccuracyMeters,
			&update.BatteryLevel,
			&update.IsManual,
			&update.Timestamp,
			&update.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location update row: %w", err)
		}
		updates = append(updates, update)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return updates, nil
}
