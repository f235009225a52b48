package v1

import (
	"github.com/google/uuid"
	"github.com/shenikar/travel_safety_monitor/internal/models"
)

// CreateTripRequestToModel преобразует DTO создания поездки в доменную модель
func CreateTripRequestToModel(dto CreateTripRequest) *models.Trip {
	monitoring := true
	if dto.MonitoringEnabled != nil {
		monitoring = *dto.MonitoringEnabled
	}
	return &models.Trip{
		UserID:               dto.UserID,
		Name:                 dto.Name,
		Description:          dto.Description,
		StartDate:            dto.StartDate,
		EndDate:              dto.EndDate,
		MonitoringEnabled:    monitoring,
		DeviationThresholdKm: dto.DeviationThresholdKm,
	}
}

// UpdateTripRequestToModel преобразует DTO обновления поездки в доменную модель
func UpdateTripRequestToModel(dto UpdateTripRequest) *models.Trip {
	return &models.Trip{
		Name:                 dto.Name,
		Description:          dto.Description,
		StartDate:            dto.StartDate,
		EndDate:              dto.EndDate,
		MonitoringEnabled:    *dto.MonitoringEnabled,
		DeviationThresholdKm: dto.DeviationThresholdKm,
	}
}

// ModelToTripResponse преобразует доменную модель поездки в DTO для ответа
func ModelToTripResponse(model *models.Trip) *TripResponse {
	return &TripResponse{
		ID:                   model.ID,
		UserID:               model.UserID,
		Name:                 model.Name,
		Description:          model.Description,
		StartDate:            model.StartDate,
		EndDate:              model.EndDate,
		IsActive:             model.IsActive,
		MonitoringEnabled:    model.MonitoringEnabled,
		DeviationThresholdKm: model.DeviationThresholdKm,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}

// ModelsToTripResponses преобразует слайс моделей поездок в слайс DTO
func ModelsToTripResponses(trips []*models.Trip) []*TripResponse {
	responses := make([]*TripResponse, len(trips))
	for i, trip := range trips {
		responses[i] = ModelToTripResponse(trip)
	}
	return responses
}

// AddPlannedLocationRequestToModel преобразует DTO точки маршрута в доменную модель
func AddPlannedLocationRequestToModel(dto AddPlannedLocationRequest, tripID uuid.UUID) *models.PlannedLocation {
	return &models.PlannedLocation{
		TripID:          tripID,
		Name:            dto.Name,
		Description:     dto.Description,
		Latitude:        *dto.Latitude,
		Longitude:       *dto.Longitude,
		PlannedArrival:  dto.PlannedArrival,
		RadiusMeters:    dto.RadiusMeters,
		IsAccommodation: dto.IsAccommodation,
	}
}

// ModelToPlannedLocationResponse преобразует модель точки маршрута в DTO
func ModelToPlannedLocationResponse(model *models.PlannedLocation) *PlannedLocationResponse {
	return &PlannedLocationResponse{
		ID:              model.ID,
		TripID:          model.TripID,
		Name:            model.Name,
		Description:     model.Description,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		PlannedArrival:  model.PlannedArrival,
		RadiusMeters:    model.RadiusMeters,
		IsAccommodation: model.IsAccommodation,
		CreatedAt:       model.CreatedAt,
	}
}

// ModelsToPlannedLocationResponses преобразует слайс моделей точек в слайс DTO
func ModelsToPlannedLocationResponses(locations []*models.PlannedLocation) []*PlannedLocationResponse {
	responses := make([]*PlannedLocationResponse, len(locations))
	for i, loc := range locations {
		responses[i] = ModelToPlannedLocationResponse(loc)
	}
	return responses
}

// SubmitLocationRequestToModel преобразует DTO геопозиции в доменную модель
func SubmitLocationRequestToModel(dto SubmitLocationRequest) *models.LocationUpdate {
	update := &models.LocationUpdate{
		TripID:         dto.TripID,
		UserID:         dto.UserID,
		Latitude:       *dto.Latitude,
		Longitude:      *dto.Longitude,
		AccuracyMeters: dto.AccuracyMeters,
		BatteryLevel:   dto.BatteryLevel,
		IsManual:       dto.IsManual,
	}
	if dto.Timestamp != nil {
		update.Timestamp = *dto.Timestamp
	}
	return update
}

// ModelToLocationUpdateResponse преобразует модель геопозиции в DTO
func ModelToLocationUpdateResponse(model *models.LocationUpdate) *LocationUpdateResponse {
	return &LocationUpdateResponse{
		ID:             model.ID,
		TripID:         model.TripID,
		UserID:         model.UserID,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		AccuracyMeters: model.AccuracyMeters,
		BatteryLevel:   model.BatteryLevel,
		IsManual:       model.IsManual,
		Timestamp:      model.Timestamp,
		CreatedAt:      model.CreatedAt,
	}
}

// ModelsToLocationUpdateResponses преобразует слайс моделей геопозиций в слайс DTO
func ModelsToLocationUpdateResponses(updates []*models.LocationUpdate) []*LocationUpdateResponse {
	responses := make([]*LocationUpdateResponse, len(updates))
	for i, update := range updates {
		responses[i] = ModelToLocationUpdateResponse(update)
	}
	return responses
}

// ModelToAlertResponse преобразует модель оповещения в DTO для ответа
func ModelToAlertResponse(model *models.SafetyAlert) *SafetyAlertResponse {
	return &SafetyAlertResponse{
		ID:                 model.ID,
		TripID:             model.TripID,
		UserID:             model.UserID,
		AlertType:          model.AlertType,
		Status:             model.Status,
		Title:              model.Title,
		Message:            model.Message,
		Latitude:           model.Latitude,
		Longitude:          model.Longitude,
		DistanceFromPlanKm: model.DistanceFromPlanKm,
		TriggeredAt:        model.TriggeredAt,
		ResponseDeadline:   model.ResponseDeadline,
		RespondedAt:        model.RespondedAt,
		ResponseMessage:    model.ResponseMessage,
	}
}

// ModelsToAlertResponses преобразует слайс моделей оповещений в слайс DTO
func ModelsToAlertResponses(alerts []*models.SafetyAlert) []*SafetyAlertResponse {
	responses := make([]*SafetyAlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = ModelToAlertResponse(alert)
	}
	return responses
}
