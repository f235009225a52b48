package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_safety_monitor/internal/config"
	"github.com/shenikar/travel_safety_monitor/internal/models"
	"github.com/shenikar/travel_safety_monitor/internal/notification"
	notification_mocks "github.com/shenikar/travel_safety_monitor/internal/notification/mocks"
	"github.com/shenikar/travel_safety_monitor/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSafetyService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestSafetyService(t *testing.T) (*safetyService, *mocks.MockTripRepository, *mocks.MockLocationRepository, *mocks.MockAlertRepository, *notification_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	tripsMock := mocks.NewMockTripRepository(ctrl)
	locationsMock := mocks.NewMockLocationRepository(ctrl)
	alertsMock := mocks.NewMockAlertRepository(ctrl)
	publisherMock := notification_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultDeviationThresholdKm: 2.0,
		AlertResponseDeadline:       15 * time.Minute,
		BatteryAlertLevel:           15,
		StationaryMinSamples:        3,
		StationaryWindow:            2 * time.Hour,
		StationarySpreadKm:          0.5,
		StationaryFarFromPlanKm:     1.0,
		StatsTimeWindowMinutes:      60,
	}

	service := NewSafetyService(tripsMock, locationsMock, alertsMock, publisherMock, logger, cfg)
	return service.(*safetyService), tripsMock, locationsMock, alertsMock, publisherMock
}

// monitoredTrip возвращает активную поездку с включённым мониторингом
func monitoredTrip(userID string) *models.Trip {
	return &models.Trip{
		ID:                   uuid.New(),
		UserID:               userID,
		Name:                 "Поездка в Париж",
		IsActive:             true,
		MonitoringEnabled:    true,
		DeviationThresholdKm: 2.0,
	}
}

// eiffelTower — единственная запланированная точка в большинстве тестов
func eiffelTower(tripID uuid.UUID) []*models.PlannedLocation {
	return []*models.PlannedLocation{
		{
			ID:        uuid.New(),
			TripID:    tripID,
			Name:      "Eiffel Tower",
			Latitude:  48.8584,
			Longitude: 2.2945,
		},
	}
}

func TestHandleLocationUpdate_DeviationTriggered(t *testing.T) {
	// Подготовка
	service, tripsMock, locationsMock, alertsMock, publisherMock := newTestSafetyService(t)
	ctx := context.Background()
	trip := monitoredTrip("user-1")
	// Точка примерно в 54 км от Эйфелевой башни
	update := &models.LocationUpdate{
		TripID:    trip.ID,
		UserID:    "user-1",
		Latitude:  49.0,
		Longitude: 3.0,
		Timestamp: time.Now().UTC(),
	}

	// Ожидания
	tripsMock.EXPECT().GetTripFromCache(ctx, trip.ID).Return(trip, nil).Times(1)
	locationsMock.EXPECT().Append(ctx, update).Return(nil).Times(1)
	tripsMock.EXPECT().ListPlannedLocations(ctx, trip.ID).Return(eiffelTower(trip.ID), nil).Times(1)

	alertsMock.EXPECT().
		UpsertActive(ctx, gomock.Cond(func(x any) bool {
			alert := x.(*models.SafetyAlert)
			return alert.AlertType == models.AlertTypeDeviation &&
				alert.Status == models.AlertStatusActive &&
				alert.DistanceFromPlanKm != nil && *alert.DistanceFromPlanKm > 2.0
		})).
		Return(true, nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Cond(func(x any) bool {
			event := x.(notification.AlertEvent)
			return event.Kind == notification.EventAlertCreated && event.AlertType == models.AlertTypeDeviation
		})).
		Return(nil).
		Times(1)

	// Одного сэмпла недостаточно для проверки неподвижности
	locationsMock.EXPECT().ListSince(ctx, trip.ID, gomock.Any()).Return([]*models.LocationUpdate{update}, nil).Times(1)

	// Действие
	triggered, err := service.HandleLocationUpdate(ctx, update)

	// Проверки
	require.NoError(t, err)
	require.Len(t, triggered, 1)
	assert.Equal(t, models.AlertTypeDeviation, triggered[0].AlertType)
	assert.Equal(t, "Location Deviation Detected", triggered[0].Title)
	assert.WithinDuration(t, triggered[0].TriggeredAt.Add(15*time.Minute), triggered[0].ResponseDeadline, time.Second)
}

func TestHandleLocationUpdate_SecondDeviatingSampleUpdatesAlert(t *testing.T) {
	// Подготовка
	service, tripsMock, locationsMock, alertsMock, publisherMock := newTestSafetyService(t)
	ctx := context.Background()
	trip := monitoredTrip("user-1")
	update := &models.LocationUpdate{
		TripID:    trip.ID,
		UserID:    "user-1",
		Latitude:  49.0,
		Longitude: 3.0,
		Timestamp: time.Now().UTC(),
	}

	// Ожидания
	tripsMock.EXPECT().GetTripFromCache(ctx, trip.ID).Return(trip, nil).Times(1)
	locationsMock.EXPECT().Append(ctx, update).Return(nil).Times(1)
	tripsMock.EXPECT().ListPlannedLocations(ctx, trip.ID).Return(eiffelTower(trip.ID), nil).Times(1)

	// Эпизод отклонения ещё не разрешён: репозиторий обновляет существующее
	// активное оповещение вместо создания нового
	alertsMock.EXPECT().
		UpsertActive(ctx, gomock.Any()).
		Return(false, nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Cond(func(x any) bool {
			event := x.(notification.AlertEvent)
			return event.Kind == notification.EventAlertUpdated
		})).
		Return(nil).
		Times(1)

	locationsMock.EXPECT().ListSince(ctx, trip.ID, gomock.Any()).Return([]*models.LocationUpdate{update}, nil).Times(1)

	// Действие
	triggered, err := service.HandleLocationUpdate(ctx, update)

	// Проверки
	require.NoError(t, err)
	require.Len(t, triggered, 1)
}

func TestHandleLocationUpdate_DeviationAfterEscalationCreatesNewAlert(t *testing.T) {
	// Подготовка
	service, tripsMock, locationsMock, alertsMock, publisherMock := newTestSafetyService(t)
	ctx := context.Background()
	trip := monitoredTrip("user-1")
	update := &models.LocationUpdate{
		TripID:    trip.ID,
		UserID:    "user-1",
		Latitude:  49.0,
		Longitude: 3.0,
		Timestamp: time.Now().UTC(),
	}

	// Ожидания
	tripsMock.EXPECT().GetTripFromCache(ctx, trip.ID).Return(trip, nil).Times(1)
	locationsMock.EXPECT().Append(ctx, update).Return(nil).Times(1)
	tripsMock.EXPECT().ListPlannedLocations(ctx, trip.ID).Return(eiffelTower(trip.ID), nil).Times(1)

	// Предыдущее оповещение этого типа уже разрешено (например, эскалировано
	// фоновой продувкой): репозиторий создаёт оповещение нового эпизода,
	// а не мутирует разрешённое
	alertsMock.EXPECT().
		UpsertActive(ctx, gomock.Cond(func(x any) bool {
			alert := x.(*models.SafetyAlert)
			return alert.AlertType == models.AlertTypeDeviation && alert.Status == models.AlertStatusActive
		})).
		Return(true, nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Cond(func(x any) bool {
			event := x.(notification.AlertEvent)
			return event.Kind == notification.EventAlertCreated
		})).
		Return(nil).
		Times(1)

	locationsMock.EXPECT().ListSince(ctx, trip.ID, gomock.Any()).Return([]*models.LocationUpdate{update}, nil).Times(1)

	// Действие
	triggered, err := service.HandleLocationUpdate(ctx, update)

	// Проверки
	require.NoError(t, err)
	require.Len(t, triggered, 1)
	assert.Equal(t, models.AlertStatusActive, triggered[0].Status)
}

func TestHandleLocationUpdate_NoPlannedLocations(t *testing.T) {
	// Подготовка
	service, tripsMock, locationsMock, _, _ := newTestSafetyService(t)
	ctx := context.Background()
	trip := monitoredTrip("user-1")
	update := &models.LocationUpdate{
		TripID:    trip.ID,
		UserID:    "user-1",
		Latitude:  49.0,
		Longitude: 3.0,
		Timestamp: time.Now().UTC(),
	}

	// Ожидания
	// Пустой маршрут — отклонение не детектируется
	tripsMock.EXPECT().GetTripFromCache(ctx, trip.ID).Return(trip, nil).Times(1)
	locationsMock.EXPECT().Append(ctx, update).Return(nil).Times(1)
	tripsMock.EXPECT().ListPlannedLocations(ctx, trip.ID).Return([]*models.PlannedLocation{}, nil).Times(1)
	locationsMock.EXPECT().ListSince(ctx, trip.ID, gomock.Any()).Return([]*models.LocationUpdate{update}, nil).Times(1)

	// Действие
	triggered, err := service.HandleLocationUpdate(ctx, update)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, triggered)
}

func TestHandleLocationUpdate_WithinThreshold(t *testing.T) {
	// Подготовка
	service, tripsMock, locationsMock, _, _ := newTestSafetyService(t)
	ctx := context.Background()
	trip := monitoredTrip("user-1")
	// Точка в пределах ~200 метров от запланированной
	update := &models.LocationUpdate{
		TripID:    trip.ID,
		UserID:    "user-1",
		Latitude:  48.8600,
		Longitude: 2.2950,
		Timestamp: time.Now().UTC(),
	}

	// Ожидания
	tripsMock.EXPECT().GetTripFromCache(ctx, trip.ID).Return(trip, nil).Times(1)
	locationsMock.EXPECT().Append(ctx, update).Return(nil).Times(1)
	tripsMock.EXPECT().ListPlannedLocations(ctx, trip.ID).Return(eiffelTower(trip.ID), nil).Times(1)
	locationsMock.EXPECT().ListSince(ctx, trip.ID, gomock.Any()).Return([]*models.LocationUpdate{update}, nil).Times(1)

	// Действие
	triggered, err := service.HandleLocationUpdate(ctx, update)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, triggered)
}

func TestHandleLocationUpdate_MonitoringDisabled(t *testing.T) {
	// Подготовка
	service, tripsMock, locationsMock, _, _ := newTestSafetyService(t)
	ctx := context.Background()
	trip := monitoredTrip("user-1")
	trip.MonitoringEnabled = false
	update := &models.LocationUpdate{
		TripID:    trip.ID,
		UserID:    "user-1",
		Latitude:  49.0,
		Longitude: 3.0,
		Timestamp: time.Now().UTC(),
	}

	// Ожидания
	// Геопозиция сохраняется, но проверки безопасности не выполняются
	tripsMock.EXPECT().GetTripFromCache(ctx, trip.ID).Return(trip, nil).Times(1)
	locationsMock.EXPECT().Append(ctx, update).Return(nil).Times(1)

	// Действие
	triggered, err := service.HandleLocationUpdate(ctx, update)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, triggered)
}

func TestHandleLocationUpdate_WrongUser(t *testing.T) {
	// Подготовка
	service, tripsMock, _, _, _ := newTestSafetyService(t)
	ctx := context.Background()
	trip := monitoredTrip("user-1")
	update := &models.LocationUpdate{
		TripID: trip.ID,
		UserID: "user-2",
	}

	// Ожидания
	// Чужая поездка неотличима от несуществующей
	tripsMock.EXPECT().GetTripFromCache(ctx, trip.ID).Return(trip, nil).Times(1)

	// Действие
	triggered, err := service.HandleLocationUpdate(ctx, update)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTripNotFound)
	assert.Nil(t, triggered)
}

func TestHandleLocationUpdate_LowBattery(t *testing.T) {
	// Подготовка
	service, tripsMock, locationsMock, alertsMock, publisherMock := newTestSafetyService(t)
	ctx := context.Background()
	trip := monitoredTrip("user-1")
	battery := 10
	update := &models.LocationUpdate{
		TripID:       trip.ID,
		UserID:       "user-1",
		Latitude:     48.8600,
		Longitude:    2.2950,
		BatteryLevel: &battery,
		Timestamp:    time.Now().UTC(),
	}

	// Ожидания
	tripsMock.EXPECT().GetTripFromCache(ctx, trip.ID).Return(trip, nil).Times(1)
	locationsMock.EXPECT().Append(ctx, update).Return(nil).Times(1)
	tripsMock.EXPECT().ListPlannedLocations(ctx, trip.ID).Return(eiffelTower(trip.ID), nil).Times(1)

	alertsMock.EXPECT().
		UpsertActive(ctx, gomock.Cond(func(x any) bool {
			alert := x.(*models.SafetyAlert)
			return alert.AlertType == models.AlertTypeBattery
		})).
		Return(true, nil).
		Times(1)

	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	locationsMock.EXPECT().ListSince(ctx, trip.ID, gomock.Any()).Return([]*models.LocationUpdate{update}, nil).Times(1)

	// Действие
	triggered, err := service.HandleLocationUpdate(ctx, update)

	// Проверки
	require.NoError(t, err)
	require.Len(t, triggered, 1)
	assert.Equal(t, models.AlertTypeBattery, triggered[0].AlertType)
}

func TestHandleLocationUpdate_StationaryDetected(t *testing.T) {
	// Подготовка
	service, tripsMock, locationsMock, alertsMock, publisherMock := newTestSafetyService(t)
	ctx := context.Background()
	trip := monitoredTrip("user-1")
	now := time.Now().UTC()
	// Пользователь более двух часов в одной точке в ~2.8 км от маршрута
	update := &models.LocationUpdate{
		TripID:    trip.ID,
		UserID:    "user-1",
		Latitude:  48.8800,
		Longitude: 2.3200,
		Timestamp: now,
	}
	samples := []*models.LocationUpdate{
		update,
		{TripID: trip.ID, Latitude: 48.8801, Longitude: 2.3201, Timestamp: now.Add(-time.Hour)},
		{TripID: trip.ID, Latitude: 48.8800, Longitude: 2.3199, Timestamp: now.Add(-3 * time.Hour)},
	}

	// Ожидания
	tripsMock.EXPECT().GetTripFromCache(ctx, trip.ID).Return(trip, nil).Times(1)
	locationsMock.EXPECT().Append(ctx, update).Return(nil).Times(1)
	tripsMock.EXPECT().ListPlannedLocations(ctx, trip.ID).Return(eiffelTower(trip.ID), nil).Times(1)
	locationsMock.EXPECT().ListSince(ctx, trip.ID, gomock.Any()).Return(samples, nil).Times(1)

	alertsMock.EXPECT().
		UpsertActive(ctx, gomock.Cond(func(x any) bool {
			alert := x.(*models.SafetyAlert)
			return alert.AlertType == models.AlertTypeStationary
		})).
		Return(true, nil).
		Times(1)

	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	triggered, err := service.HandleLocationUpdate(ctx, update)

	// Проверки
	require.NoError(t, err)
	require.Len(t, triggered, 1)
	assert.Equal(t, models.AlertTypeStationary, triggered[0].AlertType)
	assert.Equal(t, "Stationary Alert", triggered[0].Title)
}

func TestRespondToAlert_Safe(t *testing.T) {
	// Подготовка
	service, _, _, alertsMock, publisherMock := newTestSafetyService(t)
	ctx := context.Background()
	alertID := uuid.New()
	resolved := &models.SafetyAlert{
		ID:     alertID,
		UserID: "user-1",
		Status: models.AlertStatusRespondedSafe,
	}

	// Ожидания
	alertsMock.EXPECT().
		Respond(ctx, alertID, "user-1", models.AlertStatusRespondedSafe, "User confirmed they are safe").
		Return(resolved, nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Cond(func(x any) bool {
			event := x.(notification.AlertEvent)
			return event.Kind == notification.EventAlertResponded && event.Status == models.AlertStatusRespondedSafe
		})).
		Return(nil).
		Times(1)

	// Действие
	alert, err := service.RespondToAlert(ctx, alertID, "user-1", "safe", "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, resolved, alert)
}

func TestRespondToAlert_HelpWithMessage(t *testing.T) {
	// Подготовка
	service, _, _, alertsMock, publisherMock := newTestSafetyService(t)
	ctx := context.Background()
	alertID := uuid.New()
	resolved := &models.SafetyAlert{
		ID:     alertID,
		UserID: "user-1",
		Status: models.AlertStatusRespondedHelp,
	}

	// Ожидания
	alertsMock.EXPECT().
		Respond(ctx, alertID, "user-1", models.AlertStatusRespondedHelp, "I broke my leg").
		Return(resolved, nil).
		Times(1)

	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	alert, err := service.RespondToAlert(ctx, alertID, "user-1", "help", "I broke my leg")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, resolved, alert)
}

func TestRespondToAlert_AlreadyResolved(t *testing.T) {
	// Подготовка
	service, _, _, alertsMock, _ := newTestSafetyService(t)
	ctx := context.Background()
	alertID := uuid.New()

	// Ожидания
	// Переходы статусов монотонны: эскалированное оповещение не изменяется
	alertsMock.EXPECT().
		Respond(ctx, alertID, "user-1", models.AlertStatusRespondedSafe, "User confirmed they are safe").
		Return(nil, ErrAlertNotActive).
		Times(1)

	// Действие
	alert, err := service.RespondToAlert(ctx, alertID, "user-1", "safe", "")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlertNotActive)
	assert.Nil(t, alert)
}

func TestRespondToAlert_UnknownResponse(t *testing.T) {
	// Подготовка
	service, _, _, _, _ := newTestSafetyService(t)
	ctx := context.Background()

	// Действие
	alert, err := service.RespondToAlert(ctx, uuid.New(), "user-1", "maybe", "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, alert)
}

func TestTriggerManualAlert_Success(t *testing.T) {
	// Подготовка
	service, tripsMock, locationsMock, alertsMock, publisherMock := newTestSafetyService(t)
	ctx := context.Background()
	trip := monitoredTrip("user-1")
	latest := &models.LocationUpdate{
		TripID:    trip.ID,
		UserID:    "user-1",
		Latitude:  48.8600,
		Longitude: 2.2950,
	}

	// Ожидания
	tripsMock.EXPECT().GetTripFromCache(ctx, trip.ID).Return(trip, nil).Times(1)
	locationsMock.EXPECT().GetLatest(ctx, trip.ID).Return(latest, nil).Times(1)

	alertsMock.EXPECT().
		UpsertActive(ctx, gomock.Cond(func(x any) bool {
			alert := x.(*models.SafetyAlert)
			return alert.AlertType == models.AlertTypeEmergency &&
				alert.Latitude == latest.Latitude &&
				alert.Longitude == latest.Longitude
		})).
		Return(true, nil).
		Times(1)

	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	alert, err := service.TriggerManualAlert(ctx, trip.ID, "user-1", models.AlertTypeEmergency, "Need help now")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Manual Safety Alert", alert.Title)
	assert.Equal(t, "Need help now", alert.Message)
}

func TestTriggerManualAlert_NoLocationData(t *testing.T) {
	// Подготовка
	service, tripsMock, locationsMock, _, _ := newTestSafetyService(t)
	ctx := context.Background()
	trip := monitoredTrip("user-1")

	// Ожидания
	tripsMock.EXPECT().GetTripFromCache(ctx, trip.ID).Return(trip, nil).Times(1)
	locationsMock.EXPECT().GetLatest(ctx, trip.ID).Return(nil, ErrNoLocationData).Times(1)

	// Действие
	alert, err := service.TriggerManualAlert(ctx, trip.ID, "user-1", models.AlertTypeCheckIn, "Checking in")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoLocationData)
	assert.Nil(t, alert)
}

func TestEscalateOverdueAlerts_PublishesEvents(t *testing.T) {
	// Подготовка
	service, _, _, alertsMock, publisherMock := newTestSafetyService(t)
	ctx := context.Background()
	escalated := []*models.SafetyAlert{
		{ID: uuid.New(), Status: models.AlertStatusEscalated},
		{ID: uuid.New(), Status: models.AlertStatusEscalated},
	}

	// Ожидания
	alertsMock.EXPECT().
		EscalateOverdue(ctx, gomock.Any()).
		Return(escalated, nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Cond(func(x any) bool {
			event := x.(notification.AlertEvent)
			return event.Kind == notification.EventAlertEscalated
		})).
		Return(nil).
		Times(2)

	// Действие
	count, err := service.EscalateOverdueAlerts(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestEscalateOverdueAlerts_Empty(t *testing.T) {
	// Подготовка
	service, _, _, alertsMock, _ := newTestSafetyService(t)
	ctx := context.Background()

	// Ожидания
	alertsMock.EXPECT().
		EscalateOverdue(ctx, gomock.Any()).
		Return([]*models.SafetyAlert{}, nil).
		Times(1)

	// Действие
	count, err := service.EscalateOverdueAlerts(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestGetStats_Success(t *testing.T) {
	// Подготовка
	service, _, locationsMock, _, _ := newTestSafetyService(t)
	ctx := context.Background()

	// Ожидания
	locationsMock.EXPECT().
		CountActiveUsers(ctx, 60).
		Return(7, nil).
		Times(1)

	// Действие
	count, err := service.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
