package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_safety_monitor/internal/config"
	"github.com/shenikar/travel_safety_monitor/internal/geo"
	"github.com/shenikar/travel_safety_monitor/internal/models"
	"github.com/shenikar/travel_safety_monitor/internal/notification"
	"github.com/sirupsen/logrus"
)

// LocationRepository определяет контракт для работы с бд геопозиций
type LocationRepository interface {
	Append(ctx context.Context, update *models.LocationUpdate) error
	ListRecent(ctx context.Context, tripID uuid.UUID, limit int) ([]*models.LocationUpdate, error)
	ListSince(ctx context.Context, tripID uuid.UUID, since time.Time) ([]*models.LocationUpdate, error)
	GetLatest(ctx context.Context, tripID uuid.UUID) (*models.LocationUpdate, error)
	CountActiveUsers(ctx context.Context, minutes int) (int, error)
}

// AlertRepository определяет контракт для работы с бд оповещений
type AlertRepository interface {
	// UpsertActive создает оповещение либо, если по паре (trip, type) уже
	// есть активное, обновляет его позицию и расстояние. Выполняется под
	// эксклюзивной блокировкой строки поездки.
	UpsertActive(ctx context.Context, alert *models.SafetyAlert) (created bool, err error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.SafetyAlert, error)
	ListByUser(ctx context.Context, userID string) ([]*models.SafetyAlert, error)
	// Respond переводит активное оповещение в терминальный статус ответа.
	// Для уже разрешённого оповещения возвращает ErrAlertNotActive.
	Respond(ctx context.Context, id uuid.UUID, userID, status, message string) (*models.SafetyAlert, error)
	// EscalateOverdue переводит все просроченные активные оповещения в
	// статус escalated и возвращает их
	EscalateOverdue(ctx context.Context, now time.Time) ([]*models.SafetyAlert, error)
}

// SafetyService определяет контракт для логики мониторинга безопасности:
// приём геопозиций, детект отклонений и жизненный цикл оповещений
type SafetyService interface {
	HandleLocationUpdate(ctx context.Context, update *models.LocationUpdate) ([]*models.SafetyAlert, error)
	ListTripLocations(ctx context.Context, tripID uuid.UUID, limit int) ([]*models.LocationUpdate, error)
	RespondToAlert(ctx context.Context, alertID uuid.UUID, userID, response, message string) (*models.SafetyAlert, error)
	TriggerManualAlert(ctx context.Context, tripID uuid.UUID, userID, alertType, message string) (*models.SafetyAlert, error)
	GetAlert(ctx context.Context, id uuid.UUID) (*models.SafetyAlert, error)
	ListAlerts(ctx context.Context, userID string) ([]*models.SafetyAlert, error)
	EscalateOverdueAlerts(ctx context.Context) (int, error)
	GetStats(ctx context.Context) (int, error)
}

type safetyService struct {
	trips     TripRepository
	locations LocationRepository
	alerts    AlertRepository
	publisher notification.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewSafetyService(
	trips TripRepository,
	locations LocationRepository,
	alerts AlertRepository,
	publisher notification.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) SafetyService {
	return &safetyService{
		trips:     trips,
		locations: locations,
		alerts:    alerts,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// HandleLocationUpdate сохраняет геопозицию и синхронно выполняет проверки
// безопасности. Возвращает список созданных или обновлённых оповещений.
func (s *safetyService) HandleLocationUpdate(ctx context.Context, update *models.LocationUpdate) ([]*models.SafetyAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "HandleLocationUpdate",
		"trip_id": update.TripID,
		"user_id": update.UserID,
	})

	trip, err := s.loadTrip(ctx, update.TripID)
	if err != nil {
		log.WithError(err).Warn("Failed to load trip for location update")
		return nil, err
	}
	if trip.UserID != update.UserID {
		return nil, ErrTripNotFound
	}

	if update.Timestamp.IsZero() {
		update.Timestamp = time.Now().UTC()
	}

	if err := s.locations.Append(ctx, update); err != nil {
		log.WithError(err).Error("Failed to append location update")
		return nil, fmt.Errorf("service: could not append location update: %w", err)
	}

	if !trip.MonitoringEnabled || !trip.IsActive {
		log.Debug("Trip monitoring is disabled, skipping safety checks")
		return nil, nil
	}

	planned, err := s.trips.ListPlannedLocations(ctx, trip.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load planned locations")
		return nil, fmt.Errorf("service: could not load planned locations: %w", err)
	}

	var triggered []*models.SafetyAlert
	pos := geo.Position{Latitude: update.Latitude, Longitude: update.Longitude}

	// Проверка отклонения от маршрута
	result := geo.Evaluate(pos, planned, trip.DeviationThresholdKm)
	if result.IsDeviating {
		distance := result.NearestDistanceKm
		alert := &models.SafetyAlert{
			TripID:             trip.ID,
			UserID:             trip.UserID,
			AlertType:          models.AlertTypeDeviation,
			Title:              "Location Deviation Detected",
			Message:            fmt.Sprintf("You are %.1fkm away from your planned route. Are you safe?", distance),
			Latitude:           update.Latitude,
			Longitude:          update.Longitude,
			DistanceFromPlanKm: &distance,
		}
		saved, err := s.upsertAndPublish(ctx, alert)
		if err != nil {
			return nil, err
		}
		triggered = append(triggered, saved)
	}

	// Проверка уровня заряда батареи
	if update.BatteryLevel != nil && *update.BatteryLevel <= s.cfg.BatteryAlertLevel {
		alert := &models.SafetyAlert{
			TripID:    trip.ID,
			UserID:    trip.UserID,
			AlertType: models.AlertTypeBattery,
			Title:     "Low Battery Warning",
			Message:   fmt.Sprintf("Device battery is at %d%%. Location tracking may stop soon.", *update.BatteryLevel),
			Latitude:  update.Latitude,
			Longitude: update.Longitude,
		}
		saved, err := s.upsertAndPublish(ctx, alert)
		if err != nil {
			return nil, err
		}
		triggered = append(triggered, saved)
	}

	// Проверка длительной неподвижности по потоку последних сэмплов
	since := update.Timestamp.Add(-2 * s.cfg.StationaryWindow)
	samples, err := s.locations.ListSince(ctx, trip.ID, since)
	if err != nil {
		log.WithError(err).Error("Failed to load recent location updates")
		return nil, fmt.Errorf("service: could not load recent location updates: %w", err)
	}

	stationary := geo.CheckStationary(samples, planned, s.stationaryOptions())
	if stationary.IsStationary {
		hours := stationary.Duration.Hours()
		alert := &models.SafetyAlert{
			TripID:    trip.ID,
			UserID:    trip.UserID,
			AlertType: models.AlertTypeStationary,
			Title:     "Stationary Alert",
			Message:   fmt.Sprintf("You've been in the same location for %.0f+ hours away from planned locations. Are you safe?", hours),
			Latitude:  update.Latitude,
			Longitude: update.Longitude,
		}
		if stationary.NearestDistanceKm >= 0 {
			d := stationary.NearestDistanceKm
			alert.DistanceFromPlanKm = &d
		}
		saved, err := s.upsertAndPublish(ctx, alert)
		if err != nil {
			return nil, err
		}
		triggered = append(triggered, saved)
	}

	log.WithField("alerts_triggered", len(triggered)).Info("Location update processed")
	return triggered, nil
}

// ListTripLocations возвращает последние геопозиции поездки
func (s *safetyService) ListTripLocations(ctx context.Context, tripID uuid.UUID, limit int) ([]*models.LocationUpdate, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	locations, err := s.locations.ListRecent(ctx, tripID, limit)
	if err != nil {
		s.logger.WithError(err).WithField("trip_id", tripID).Error("Failed to list trip locations")
		return nil, fmt.Errorf("service: could not list trip locations: %w", err)
	}
	return locations, nil
}

// RespondToAlert фиксирует ответ пользователя на активное оповещение.
// Переход терминальный: повторные ответы и ответы после эскалации отклоняются.
func (s *safetyService) RespondToAlert(ctx context.Context, alertID uuid.UUID, userID, response, message string) (*models.SafetyAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "safety",
		"method":   "RespondToAlert",
		"alert_id": alertID,
		"response": response,
	})

	var status, defaultMessage string
	switch response {
	case "safe":
		status = models.AlertStatusRespondedSafe
		defaultMessage = "User confirmed they are safe"
	case "help":
		status = models.AlertStatusRespondedHelp
		defaultMessage = "User requested help"
	default:
		return nil, fmt.Errorf("service: unknown alert response %q", response)
	}
	if message == "" {
		message = defaultMessage
	}

	alert, err := s.alerts.Respond(ctx, alertID, userID, status, message)
	if err != nil {
		log.WithError(err).Warn("Failed to respond to alert")
		return nil, err
	}

	s.publish(ctx, alert, notification.EventAlertResponded)
	log.Info("Alert response recorded")
	return alert, nil
}

// TriggerManualAlert создает оповещение по явному действию пользователя,
// минуя детектор. Привязывается к последней известной позиции поездки.
func (s *safetyService) TriggerManualAlert(ctx context.Context, tripID uuid.UUID, userID, alertType, message string) (*models.SafetyAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "safety",
		"method":     "TriggerManualAlert",
		"trip_id":    tripID,
		"alert_type": alertType,
	})

	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		log.WithError(err).Warn("Failed to load trip for manual alert")
		return nil, err
	}
	if trip.UserID != userID {
		return nil, ErrTripNotFound
	}

	latest, err := s.locations.GetLatest(ctx, tripID)
	if err != nil {
		log.WithError(err).Warn("No location data for manual alert")
		return nil, err
	}

	alert := &models.SafetyAlert{
		TripID:    tripID,
		UserID:    userID,
		AlertType: alertType,
		Title:     "Manual Safety Alert",
		Message:   message,
		Latitude:  latest.Latitude,
		Longitude: latest.Longitude,
	}

	saved, err := s.upsertAndPublish(ctx, alert)
	if err != nil {
		return nil, err
	}
	log.WithField("alert_id", saved.ID).Info("Manual alert created")
	return saved, nil
}

// GetAlert возвращает оповещение по ID
func (s *safetyService) GetAlert(ctx context.Context, id uuid.UUID) (*models.SafetyAlert, error) {
	alert, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("alert_id", id).Warn("Failed to get alert")
		return nil, err
	}
	return alert, nil
}

// ListAlerts возвращает оповещения пользователя, новые первыми
func (s *safetyService) ListAlerts(ctx context.Context, userID string) ([]*models.SafetyAlert, error) {
	alerts, err := s.alerts.ListByUser(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to list alerts")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}

// EscalateOverdueAlerts переводит просроченные активные оповещения в статус
// escalated и публикует события для внешнего уведомления контактов.
// Вызывается фоновым планировщиком.
func (s *safetyService) EscalateOverdueAlerts(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "EscalateOverdueAlerts",
	})

	escalated, err := s.alerts.EscalateOverdue(ctx, time.Now().UTC())
	if err != nil {
		log.WithError(err).Error("Failed to escalate overdue alerts")
		return 0, fmt.Errorf("service: could not escalate overdue alerts: %w", err)
	}

	for _, alert := range escalated {
		s.publish(ctx, alert, notification.EventAlertEscalated)
	}

	if len(escalated) > 0 {
		log.WithField("count", len(escalated)).Info("Overdue alerts escalated")
	}
	return len(escalated), nil
}

// GetStats возвращает число уникальных пользователей, передававших геопозицию
// за настроенное окно времени
func (s *safetyService) GetStats(ctx context.Context) (int, error) {
	count, err := s.locations.CountActiveUsers(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get location update stats")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}

// loadTrip читает поездку через кэш с фолбэком в бд
func (s *safetyService) loadTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	cached, err := s.trips.GetTripFromCache(ctx, id)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read trip from cache")
	}
	if cached != nil {
		return cached, nil
	}

	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.trips.SetTripCache(ctx, trip); err != nil {
		s.logger.WithError(err).Warn("Failed to cache trip")
	}
	return trip, nil
}

// upsertAndPublish применяет дедупликацию оповещений и публикует событие.
// Сбой публикации не откатывает изменение состояния оповещения.
func (s *safetyService) upsertAndPublish(ctx context.Context, alert *models.SafetyAlert) (*models.SafetyAlert, error) {
	alert.Status = models.AlertStatusActive
	alert.TriggeredAt = time.Now().UTC()
	alert.ResponseDeadline = alert.TriggeredAt.Add(s.cfg.AlertResponseDeadline)

	created, err := s.alerts.UpsertActive(ctx, alert)
	if err != nil {
		s.logger.WithError(err).WithField("trip_id", alert.TripID).Error("Failed to upsert alert")
		return nil, err
	}

	kind := notification.EventAlertUpdated
	if created {
		kind = notification.EventAlertCreated
	}
	s.publish(ctx, alert, kind)
	return alert, nil
}

func (s *safetyService) publish(ctx context.Context, alert *models.SafetyAlert, kind string) {
	event := notification.AlertEvent{
		AlertID:    alert.ID,
		TripID:     alert.TripID,
		UserID:     alert.UserID,
		Kind:       kind,
		AlertType:  alert.AlertType,
		Status:     alert.Status,
		Latitude:   alert.Latitude,
		Longitude:  alert.Longitude,
		DistanceKm: alert.DistanceFromPlanKm,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Доставка - ответственность внешнего коллаборатора; состояние
		// оповещения от сбоя публикации не меняется
		s.logger.WithError(err).WithField("alert_id", alert.ID).Error("Failed to publish alert event")
	}
}

func (s *safetyService) stationaryOptions() geo.StationaryOptions {
	return geo.StationaryOptions{
		MinSamples:    s.cfg.StationaryMinSamples,
		Window:        s.cfg.StationaryWindow,
		SpreadKm:      s.cfg.StationarySpreadKm,
		FarFromPlanKm: s.cfg.StationaryFarFromPlanKm,
	}
}
