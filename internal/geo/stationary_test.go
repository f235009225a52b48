package geo

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_safety_monitor/internal/models"
	"github.com/stretchr/testify/assert"
)

// makeSamples строит серию сэмплов от новых к старым с шагом step назад во времени
func makeSamples(lat, lon float64, count int, step time.Duration) []*models.LocationUpdate {
	now := time.Now()
	samples := make([]*models.LocationUpdate, 0, count)
	for i := 0; i < count; i++ {
		samples = append(samples, &models.LocationUpdate{
			ID:        int64(count - i),
			Latitude:  lat,
			Longitude: lon,
			Timestamp: now.Add(-time.Duration(i) * step),
		})
	}
	return samples
}

func TestCheckStationary_Flagged(t *testing.T) {
	// Три сэмпла в одной точке за 2 часа, вдали от запланированных точек
	samples := makeSamples(49.0, 3.0, 3, time.Hour)
	planned := []*models.PlannedLocation{
		{ID: uuid.New(), Latitude: 48.8584, Longitude: 2.2945},
	}

	result := CheckStationary(samples, planned, DefaultStationaryOptions())

	assert.True(t, result.IsStationary)
	assert.GreaterOrEqual(t, result.Duration, 2*time.Hour)
	assert.Greater(t, result.NearestDistanceKm, 1.0)
}

func TestCheckStationary_NotEnoughSamples(t *testing.T) {
	samples := makeSamples(49.0, 3.0, 2, time.Hour)

	result := CheckStationary(samples, nil, DefaultStationaryOptions())

	assert.False(t, result.IsStationary)
}

func TestCheckStationary_WindowTooShort(t *testing.T) {
	// Три сэмпла за полчаса - окно неподвижности не набрано
	samples := makeSamples(49.0, 3.0, 3, 15*time.Minute)

	result := CheckStationary(samples, nil, DefaultStationaryOptions())

	assert.False(t, result.IsStationary)
}

func TestCheckStationary_UserMoving(t *testing.T) {
	samples := makeSamples(49.0, 3.0, 3, time.Hour)
	// Старейший сэмпл в ~11 км от остальных
	samples[2].Latitude = 49.1

	result := CheckStationary(samples, nil, DefaultStationaryOptions())

	assert.False(t, result.IsStationary)
}

func TestCheckStationary_NearPlannedLocation(t *testing.T) {
	// Неподвижность рядом с запланированной точкой (отель) - не аномалия
	samples := makeSamples(48.8584, 2.2945, 3, time.Hour)
	planned := []*models.PlannedLocation{
		{ID: uuid.New(), Latitude: 48.8584, Longitude: 2.2945},
	}

	result := CheckStationary(samples, planned, DefaultStationaryOptions())

	assert.False(t, result.IsStationary)
}

func TestCheckStationary_NoPlannedLocations(t *testing.T) {
	// Без опорных точек долгая неподвижность всё равно считается аномалией
	samples := makeSamples(49.0, 3.0, 3, time.Hour)

	result := CheckStationary(samples, nil, DefaultStationaryOptions())

	assert.True(t, result.IsStationary)
	assert.Equal(t, -1.0, result.NearestDistanceKm)
}
