package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/travel_safety_monitor/internal/models"
	"github.com/shenikar/travel_safety_monitor/internal/service"
)

const alertColumns = `id, trip_id, user_id, alert_type, status, title, message, latitude, longitude, distance_from_planned_km, triggered_at, response_deadline, responded_at, response_message, created_at, updated_at`

type AlertRepository struct {
	db          *pgxpool.Pool
	lockTimeout time.Duration
}

func NewAlertRepository(db *pgxpool.Pool, lockTimeout time.Duration) service.AlertRepository {
	return &AlertRepository{
		db:          db,
		lockTimeout: lockTimeout,
	}
}

// UpsertActive создает оповещение или обновляет уже активное той же пары
// (trip, type). Вся операция выполняется в одной транзакции под блокировкой
// строки поездки: конкурентные сэмплы одной поездки сериализуются, и во время
// одного эпизода отклонения существует не более одного активного оповещения.
// Если блокировка не получена за lockTimeout, возвращается ErrContention.
func (r *AlertRepository) UpsertActive(ctx context.Context, alert *models.SafetyAlert) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Откат безопасен и после успешного коммита
	defer tx.Rollback(ctx)

	// Ограничиваем ожидание блокировки, чтобы конкуренция возвращалась
	// клиенту как повторяемая ошибка, а не висела бесконечно
	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = %d", r.lockTimeout.Milliseconds())); err != nil {
		return false, fmt.Errorf("failed to set lock timeout: %w", err)
	}

	var tripID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM trips WHERE id = $1 FOR UPDATE;`, alert.TripID).Scan(&tripID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("trip with id %s: %w", alert.TripID, service.ErrTripNotFound)
		}
		if isLockNotAvailable(err) {
			return false, fmt.Errorf("trip %s: %w", alert.TripID, service.ErrContention)
		}
		return false, fmt.Errorf("failed to lock trip row: %w", err)
	}

	var existingID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT id FROM safety_alerts WHERE trip_id = $1 AND alert_type = $2 AND status = 'active';`,
		alert.TripID, alert.AlertType,
	).Scan(&existingID)

	created := false
	switch {
	case err == nil:
		// Эпизод ещё не разрешён: обновляем позицию и расстояние
		// существующего активного оповещения вместо создания второго.
		// Условие status = 'active' страхует от гонки с фоновой эскалацией:
		// её UPDATE берёт только блокировку строки оповещения и может
		// закоммититься между нашим SELECT и этим UPDATE
		query := fmt.Sprintf(`
			UPDATE safety_alerts SET
				latitude = $2,
				longitude = $3,
				distance_from_planned_km = $4,
				message = $5,
				updated_at = NOW()
			WHERE id = $1 AND status = 'active'
			RETURNING %s;`, alertColumns)
		row := tx.QueryRow(ctx, query, existingID, alert.Latitude, alert.Longitude, alert.DistanceFromPlanKm, alert.Message)
		updateErr := scanAlertRow(row, alert)
		switch {
		case updateErr == nil:
		case errors.Is(updateErr, pgx.ErrNoRows):
			// Оповещение разрешилось конкурентно - это уже новый эпизод
			if err := insertAlert(ctx, tx, alert); err != nil {
				return false, err
			}
			created = true
		default:
			return false, fmt.Errorf("failed to update active alert: %w", updateErr)
		}
	case errors.Is(err, pgx.ErrNoRows):
		if err := insertAlert(ctx, tx, alert); err != nil {
			return false, err
		}
		created = true
	default:
		return false, fmt.Errorf("failed to find active alert: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit alert transaction: %w", err)
	}
	return created, nil
}

// insertAlert создает новую запись оповещения в рамках транзакции
func insertAlert(ctx context.Context, tx pgx.Tx, alert *models.SafetyAlert) error {
	query := `
		INSERT INTO safety_alerts (trip_id, user_id, alert_type, status, title, message, latitude, longitude, distance_from_planned_km, triggered_at, response_deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_at, updated_at;
	`
	err := tx.QueryRow(ctx, query,
		alert.TripID,
		alert.UserID,
		alert.AlertType,
		alert.Status,
		alert.Title,
		alert.Message,
		alert.Latitude,
		alert.Longitude,
		alert.DistanceFromPlanKm,
		alert.TriggeredAt,
		alert.ResponseDeadline,
	).Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetByID возвращает оповещение по его UUID
func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SafetyAlert, error) {
	alert := &models.SafetyAlert{}
	query := fmt.Sprintf(`SELECT %s FROM safety_alerts WHERE id = $1;`, alertColumns)
	row := r.db.QueryRow(ctx, query, id)
	if err := scanAlertRow(row, alert); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %s: %w", id, service.ErrAlertNotFound)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// ListByUser возвращает оповещения пользователя, новые первыми
func (r *AlertRepository) ListByUser(ctx context.Context, userID string) ([]*models.SafetyAlert, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM safety_alerts
		WHERE user_id = $1
		ORDER BY triggered_at DESC;`, alertColumns)
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.SafetyAlert, 0)
	for rows.Next() {
		alert := &models.SafetyAlert{}
		if err := scanAlertRow(rows, alert); err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListByUser: %w", err)
	}
	return alerts, nil
}

// Respond переводит активное оповещение в терминальный статус ответа.
// Условие status = 'active' в WHERE гарантирует монотонность переходов:
// эскалированное или уже отвеченное оповещение не изменяется.
func (r *AlertRepository) Respond(ctx context.Context, id uuid.UUID, userID, status, message string) (*models.SafetyAlert, error) {
	alert := &models.SafetyAlert{}
	query := fmt.Sprintf(`
		UPDATE safety_alerts SET
			status = $3,
			response_message = $4,
			responded_at = NOW(),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND status = 'active'
		RETURNING %s;`, alertColumns)
	row := r.db.QueryRow(ctx, query, id, userID, status, message)
	err := scanAlertRow(row, alert)
	if err == nil {
		return alert, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to respond to alert: %w", err)
	}

	// Либо оповещения нет, либо оно уже разрешено - различаем для клиента
	var currentStatus string
	err = r.db.QueryRow(ctx, `SELECT status FROM safety_alerts WHERE id = $1 AND user_id = $2;`, id, userID).Scan(&currentStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %s: %w", id, service.ErrAlertNotFound)
		}
		return nil, fmt.Errorf("failed to check alert status: %w", err)
	}
	return nil, fmt.Errorf("alert %s has status %s: %w", id, currentStatus, service.ErrAlertNotActive)
}

// EscalateOverdue переводит все активные оповещения с истёкшим дедлайном в
// статус escalated. Один UPDATE с условием по статусу выполняет переход
// атомарно и ровно один раз для каждого оповещения.
func (r *AlertRepository) EscalateOverdue(ctx context.Context, now time.Time) ([]*models.SafetyAlert, error) {
	query := fmt.Sprintf(`
		UPDATE safety_alerts SET
			status = 'escalated',
			updated_at = NOW()
		WHERE status = 'active' AND response_deadline <= $1
		RETURNING %s;`, alertColumns)
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to escalate overdue alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.SafetyAlert, 0)
	for rows.Next() {
		alert := &models.SafetyAlert{}
		if err := scanAlertRow(rows, alert); err != nil {
			return nil, fmt.Errorf("failed to scan escalated alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in EscalateOverdue: %w", err)
	}
	return alerts, nil
}

// scanAlertRow сканирует полный набор колонок alertColumns
func scanAlertRow(row pgx.Row, alert *models.SafetyAlert) error {
	return row.Scan(
		&alert.ID,
		&alert.TripID,
		&alert.UserID,
		&alert.AlertType,
		&alert.Status,
		&alert.Title,
		&alert.Message,
		&alert.Latitude,
		&alert.Longitude,
		&alert.DistanceFromPlanKm,
		&alert.TriggeredAt,
		&alert.ResponseDeadline,
		&alert.RespondedAt,
		&alert.ResponseMessage,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
}

func isLockNotAvailable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.LockNotAvailable
}
