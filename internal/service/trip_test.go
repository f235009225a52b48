package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_safety_monitor/internal/config"
	"github.com/shenikar/travel_safety_monitor/internal/models"
	"github.com/shenikar/travel_safety_monitor/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestTripService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestTripService(t *testing.T) (*tripService, *mocks.MockTripRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockTripRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultDeviationThresholdKm: 2.0,
	}

	service := NewTripService(repoMock, logger, cfg)
	return service.(*tripService), repoMock
}

func TestCreateTrip_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestTripService(t)
	ctx := context.Background()
	trip := &models.Trip{
		UserID:    "user-1",
		Name:      "Поход по Алтаю",
		StartDate: time.Now(),
		EndDate:   time.Now().Add(72 * time.Hour),
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, trip).
		Return(nil).
		Times(1)

	// Действие
	err := service.CreateTrip(ctx, trip)

	// Проверки
	require.NoError(t, err)
	assert.True(t, trip.IsActive)
	// Порог отклонения не задан — подставляется значение из конфигурации
	assert.Equal(t, 2.0, trip.DeviationThresholdKm)
}

func TestCreateTrip_KeepsExplicitThreshold(t *testing.T) {
	// Подготовка
	service, repoMock := newTestTripService(t)
	ctx := context.Background()
	trip := &models.Trip{
		UserID:               "user-1",
		Name:                 "Городской маршрут",
		DeviationThresholdKm: 0.5,
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, trip).
		Return(nil).
		Times(1)

	// Действие
	err := service.CreateTrip(ctx, trip)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0.5, trip.DeviationThresholdKm)
}

func TestGetTrip_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock := newTestTripService(t)
	ctx := context.Background()
	tripID := uuid.New()
	expectedTrip := &models.Trip{
		ID:   tripID,
		Name: "Поездка из кеша",
	}

	// Ожидания
	repoMock.EXPECT().
		GetTripFromCache(ctx, tripID).
		Return(expectedTrip, nil).
		Times(1)

	// Действие
	trip, err := service.GetTrip(ctx, tripID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedTrip, trip)
}

func TestGetTrip_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock := newTestTripService(t)
	ctx := context.Background()
	tripID := uuid.New()
	expectedTrip := &models.Trip{
		ID:   tripID,
		Name: "Поездка из БД",
	}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetTripFromCache(ctx, tripID).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в БД
	repoMock.EXPECT().
		GetByID(ctx, tripID).
		Return(expectedTrip, nil).
		Times(1)

	// 3. Запись в кеш
	repoMock.EXPECT().
		SetTripCache(ctx, expectedTrip).
		Return(nil).
		Times(1)

	// Действие
	trip, err := service.GetTrip(ctx, tripID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedTrip, trip)
}

func TestGetTrip_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestTripService(t)
	ctx := context.Background()
	tripID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetTripFromCache(ctx, tripID).
		Return(nil, nil).
		Times(1)

	repoMock.EXPECT().
		GetByID(ctx, tripID).
		Return(nil, fmt.Errorf("trip with id %s: %w", tripID, ErrTripNotFound)).
		Times(1)

	// Действие
	trip, err := service.GetTrip(ctx, tripID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, trip)
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestUpdateTrip_Success_InvalidatesCache(t *testing.T) {
	// Подготовка
	service, repoMock := newTestTripService(t)
	ctx := context.Background()
	tripID := uuid.New()
	existing := &models.Trip{
		ID:       tripID,
		UserID:   "user-1",
		Name:     "Старое имя",
		IsActive: true,
	}
	update := &models.Trip{
		ID:                   tripID,
		Name:                 "Новое имя",
		MonitoringEnabled:    false,
		DeviationThresholdKm: 3.0,
	}

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, tripID).
		Return(existing, nil).
		Times(1)

	repoMock.EXPECT().
		Update(ctx, gomock.Cond(func(x any) bool {
			trip := x.(*models.Trip)
			return trip.Name == "Новое имя" && !trip.MonitoringEnabled && trip.UserID == "user-1"
		})).
		Return(nil).
		Times(1)

	repoMock.EXPECT().
		InvalidateTripCache(ctx, tripID).
		Return(nil).
		Times(1)

	// Действие
	err := service.UpdateTrip(ctx, update)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateTrip_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestTripService(t)
	ctx := context.Background()
	trip := &models.Trip{ID: uuid.New(), Name: "Несуществующая"}

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, trip.ID).
		Return(nil, ErrTripNotFound).
		Times(1)

	// Действие
	err := service.UpdateTrip(ctx, trip)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestDeactivateTrip_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestTripService(t)
	ctx := context.Background()
	tripID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, tripID).
		Return(&models.Trip{ID: tripID}, nil).
		Times(1)

	repoMock.EXPECT().
		Deactivate(ctx, tripID).
		Return(nil).
		Times(1)

	repoMock.EXPECT().
		InvalidateTripCache(ctx, tripID).
		Return(nil).
		Times(1)

	// Действие
	err := service.DeactivateTrip(ctx, tripID)

	// Проверки
	require.NoError(t, err)
}

func TestAddPlannedLocation_DefaultRadius(t *testing.T) {
	// Подготовка
	service, repoMock := newTestTripService(t)
	ctx := context.Background()
	tripID := uuid.New()
	loc := &models.PlannedLocation{
		TripID:    tripID,
		Name:      "Отель",
		Latitude:  48.8584,
		Longitude: 2.2945,
	}

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, tripID).
		Return(&models.Trip{ID: tripID}, nil).
		Times(1)

	repoMock.EXPECT().
		AddPlannedLocation(ctx, loc).
		Return(nil).
		Times(1)

	// Действие
	err := service.AddPlannedLocation(ctx, loc)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 500, loc.RadiusMeters)
}

func TestAddPlannedLocation_TripNotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestTripService(t)
	ctx := context.Background()
	loc := &models.PlannedLocation{TripID: uuid.New(), Name: "Отель"}

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, loc.TripID).
		Return(nil, ErrTripNotFound).
		Times(1)

	// Действие
	err := service.AddPlannedLocation(ctx, loc)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTripNotFound)
}
