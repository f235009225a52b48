package geo

import (
	"github.com/google/uuid"
	"github.com/shenikar/travel_safety_monitor/internal/models"
)

// Position представляет текущую координату для проверки
type Position struct {
	Latitude  float64
	Longitude float64
}

// DeviationResult - результат проверки отклонения от маршрута
type DeviationResult struct {
	IsDeviating       bool
	NearestDistanceKm float64
	NearestLocationID uuid.UUID
}

// Evaluate проверяет, отклонилась ли текущая позиция от всех запланированных
// точек маршрута дальше порога thresholdKm.
//
// Функция чистая: не имеет побочных эффектов и детерминирована для одинаковых
// входов. Пустой набор запланированных точек - не ошибка: без опорных точек
// отклонение не фиксируется. Расстояние, равное порогу, отклонением не
// считается (граница включается в безопасную зону).
func Evaluate(pos Position, planned []*models.PlannedLocation, thresholdKm float64) DeviationResult {
	if len(planned) == 0 {
		return DeviationResult{IsDeviating: false}
	}

	result := DeviationResult{NearestDistanceKm: -1}
	for _, loc := range planned {
		d := Distance(pos.Latitude, pos.Longitude, loc.Latitude, loc.Longitude)
		if result.NearestDistanceKm < 0 || d < result.NearestDistanceKm {
			result.NearestDistanceKm = d
			result.NearestLocationID = loc.ID
		}
	}

	result.IsDeviating = result.NearestDistanceKm > thresholdKm
	return result
}
