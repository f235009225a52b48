package geo

import (
	"time"

	"github.com/shenikar/travel_safety_monitor/internal/models"
)

// StationaryOptions - параметры проверки длительной неподвижности
type StationaryOptions struct {
	// MinSamples - минимальное число последних сэмплов для анализа
	MinSamples int
	// Window - минимальная длительность неподвижности
	Window time.Duration
	// SpreadKm - радиус, в котором должны лежать все сэмплы
	SpreadKm float64
	// FarFromPlanKm - минимальное расстояние до ближайшей запланированной
	// точки, при котором неподвижность считается аномалией
	FarFromPlanKm float64
}

// DefaultStationaryOptions возвращает параметры проверки по умолчанию
func DefaultStationaryOptions() StationaryOptions {
	return StationaryOptions{
		MinSamples:    3,
		Window:        2 * time.Hour,
		SpreadKm:      0.5,
		FarFromPlanKm: 1.0,
	}
}

// StationaryResult - результат проверки неподвижности
type StationaryResult struct {
	IsStationary      bool
	Duration          time.Duration
	NearestDistanceKm float64
}

// CheckStationary проверяет поток последних геопозиций на признак возможной
// недееспособности: пользователь долго не перемещается и при этом находится
// вдали от запланированных точек маршрута. Проверка независима от геозон и
// выполняется по потоку обновлений, а не по одному сэмплу.
//
// Сэмплы ожидаются отсортированными от новых к старым.
func CheckStationary(samples []*models.LocationUpdate, planned []*models.PlannedLocation, opts StationaryOptions) StationaryResult {
	if len(samples) < opts.MinSamples {
		return StationaryResult{}
	}

	latest := samples[0]
	oldest := samples[len(samples)-1]
	duration := latest.Timestamp.Sub(oldest.Timestamp)
	if duration < opts.Window {
		return StationaryResult{}
	}

	for _, s := range samples[1:] {
		d := Distance(latest.Latitude, latest.Longitude, s.Latitude, s.Longitude)
		if d > opts.SpreadKm {
			return StationaryResult{}
		}
	}

	// Неподвижность рядом с запланированной точкой (например, в отеле) - норма
	nearest := -1.0
	for _, loc := range planned {
		d := Distance(latest.Latitude, latest.Longitude, loc.Latitude, loc.Longitude)
		if nearest < 0 || d < nearest {
			nearest = d
		}
	}
	if nearest >= 0 && nearest <= opts.FarFromPlanKm {
		return StationaryResult{}
	}

	return StationaryResult{
		IsStationary:      true,
		Duration:          duration,
		NearestDistanceKm: nearest,
	}
}
