package geo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/travel_safety_monitor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Эйфелева башня - опорная точка из примеров
var eiffelTower = &models.PlannedLocation{
	ID:        uuid.New(),
	Name:      "Eiffel Tower",
	Latitude:  48.8584,
	Longitude: 2.2945,
}

func TestDistance_Symmetry(t *testing.T) {
	d1 := Distance(48.8584, 2.2945, 55.7558, 37.6173)
	d2 := Distance(55.7558, 37.6173, 48.8584, 2.2945)
	assert.Equal(t, d1, d2)
}

func TestDistance_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, Distance(48.8584, 2.2945, 48.8584, 2.2945))
}

func TestEvaluate_FarFromPlan(t *testing.T) {
	// Сэмпл в ~54 км от Эйфелевой башни при пороге 2 км
	pos := Position{Latitude: 49.0, Longitude: 3.0}

	result := Evaluate(pos, []*models.PlannedLocation{eiffelTower}, 2.0)

	assert.True(t, result.IsDeviating)
	assert.InDelta(t, 53.9, result.NearestDistanceKm, 0.5)
	assert.Equal(t, eiffelTower.ID, result.NearestLocationID)
}

func TestEvaluate_InsideZone(t *testing.T) {
	// Сэмпл в ~180 метрах от Эйфелевой башни
	pos := Position{Latitude: 48.8600, Longitude: 2.2950}

	result := Evaluate(pos, []*models.PlannedLocation{eiffelTower}, 2.0)

	assert.False(t, result.IsDeviating)
	assert.InDelta(t, 0.18, result.NearestDistanceKm, 0.02)
}

func TestEvaluate_EmptyPlannedLocations(t *testing.T) {
	// Без опорных точек отклонение не фиксируется для любой позиции
	pos := Position{Latitude: 49.0, Longitude: 3.0}

	result := Evaluate(pos, nil, 2.0)

	assert.False(t, result.IsDeviating)
}

func TestEvaluate_ExactThresholdIsNotDeviation(t *testing.T) {
	// Расстояние, равное порогу, отклонением не считается
	pos := Position{Latitude: 49.0, Longitude: 3.0}
	exact := Distance(pos.Latitude, pos.Longitude, eiffelTower.Latitude, eiffelTower.Longitude)

	result := Evaluate(pos, []*models.PlannedLocation{eiffelTower}, exact)

	assert.False(t, result.IsDeviating)
	assert.Equal(t, exact, result.NearestDistanceKm)
}

func TestEvaluate_PicksNearestLocation(t *testing.T) {
	louvre := &models.PlannedLocation{
		ID:        uuid.New(),
		Name:      "Louvre",
		Latitude:  48.8606,
		Longitude: 2.3376,
	}
	// Позиция рядом с Лувром
	pos := Position{Latitude: 48.8610, Longitude: 2.3380}

	result := Evaluate(pos, []*models.PlannedLocation{eiffelTower, louvre}, 2.0)

	require.False(t, result.IsDeviating)
	assert.Equal(t, louvre.ID, result.NearestLocationID)
}

func TestEvaluate_OrderIndependent(t *testing.T) {
	louvre := &models.PlannedLocation{
		ID:        uuid.New(),
		Name:      "Louvre",
		Latitude:  48.8606,
		Longitude: 2.3376,
	}
	pos := Position{Latitude: 49.5, Longitude: 2.9}

	r1 := Evaluate(pos, []*models.PlannedLocation{eiffelTower, louvre}, 2.0)
	r2 := Evaluate(pos, []*models.PlannedLocation{louvre, eiffelTower}, 2.0)

	assert.Equal(t, r1.IsDeviating, r2.IsDeviating)
	assert.Equal(t, r1.NearestDistanceKm, r2.NearestDistanceKm)
	assert.Equal(t, r1.NearestLocationID, r2.NearestLocationID)
}
