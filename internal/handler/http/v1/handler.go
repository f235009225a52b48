package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/travel_safety_monitor/internal/config"
	"github.com/shenikar/travel_safety_monitor/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	tripService   service.TripService
	safetyService service.SafetyService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(tripService service.TripService, safetyService service.SafetyService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		tripService:   tripService,
		safetyService: safetyService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// respondServiceError транслирует ошибки бизнес-логики в HTTP-статусы
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTripNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "trip not found"})
	case errors.Is(err, service.ErrAlertNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
	case errors.Is(err, service.ErrAlertNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": "alert is already resolved"})
	case errors.Is(err, service.ErrContention):
		// Блокировка поездки не получена вовремя - клиент может повторить
		c.JSON(http.StatusConflict, gin.H{"error": "trip is busy, retry the request"})
	case errors.Is(err, service.ErrNoLocationData):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no location data found for this trip"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Create a new trip
// @Description Create a new trip with safety monitoring settings. Requires API key.
// @Tags Trips
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param trip body CreateTripRequest true "Trip creation request"
// @Success 201 {object} TripResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips [post]
func (h *Handler) createTrip(c *gin.Context) {
	var input CreateTripRequest
	log := h.logger.WithField("method", "createTrip")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := CreateTripRequestToModel(input)
	if err := h.tripService.CreateTrip(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create trip in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToTripResponse(model))
}

// @Summary List trips of a user
// @Description Get all trips belonging to a user, newest first. Requires API key.
// @Tags Trips
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string true "User ID"
// @Success 200 {array} TripResponse
// @Failure 400 {object} map[string]string "Missing user_id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips [get]
func (h *Handler) listTrips(c *gin.Context) {
	log := h.logger.WithField("method", "listTrips")

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	trips, err := h.tripService.ListTrips(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list trips from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToTripResponses(trips))
}

// @Summary Get trip by ID
// @Description Get a single trip by its ID. Requires API key.
// @Tags Trips
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} TripResponse
// @Failure 400 {object} map[string]string "Invalid trip ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trip not found"
// @Router /trips/{id} [get]
func (h *Handler) getTrip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip ID"})
		return
	}
	log := h.logger.WithField("method", "getTrip").WithField("id", id)

	trip, err := h.tripService.GetTrip(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get trip from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToTripResponse(trip))
}

// @Summary Update an existing trip
// @Description Update an existing trip by ID. Requires API key.
// @Tags Trips
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Trip ID"
// @Param trip body UpdateTripRequest true "Trip update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid trip ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trip not found"
// @Router /trips/{id} [put]
func (h *Handler) updateTrip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip ID"})
		return
	}
	log := h.logger.WithField("method", "updateTrip").WithField("id", id)

	var input UpdateTripRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := UpdateTripRequestToModel(input)
	model.ID = id

	if err := h.tripService.UpdateTrip(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update trip in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Deactivate a trip
// @Description Deactivate a trip by its ID. This marks the trip as inactive. Requires API key.
// @Tags Trips
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Trip ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid trip ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trip not found"
// @Router /trips/{id} [delete]
func (h *Handler) deleteTrip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip ID"})
		return
	}
	log := h.logger.WithField("method", "deleteTrip").WithField("id", id)

	if err := h.tripService.DeactivateTrip(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to deactivate trip in service")
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add a planned location to a trip
// @Description Add a planned route location to a trip. Requires API key.
// @Tags Trips
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Trip ID"
// @Param location body AddPlannedLocationRequest true "Planned location request"
// @Success 201 {object} PlannedLocationResponse
// @Failure 400 {object} map[string]string "Invalid trip ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trip not found"
// @Router /trips/{id}/planned-locations [post]
func (h *Handler) addPlannedLocation(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip ID"})
		return
	}
	log := h.logger.WithField("method", "addPlannedLocation").WithField("trip_id", tripID)

	var input AddPlannedLocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := AddPlannedLocationRequestToModel(input, tripID)
	if err := h.tripService.AddPlannedLocation(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to add planned location in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToPlannedLocationResponse(model))
}

// @Summary List planned locations of a trip
// @Description Get all planned route locations of a trip. Requires API key.
// @Tags Trips
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Trip ID"
// @Success 200 {array} PlannedLocationResponse
// @Failure 400 {object} map[string]string "Invalid trip ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips/{id}/planned-locations [get]
func (h *Handler) listPlannedLocations(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip ID"})
		return
	}
	log := h.logger.WithField("method", "listPlannedLocations").WithField("trip_id", tripID)

	locations, err := h.tripService.ListPlannedLocations(c.Request.Context(), tripID)
	if err != nil {
		log.WithError(err).Error("Failed to list planned locations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToPlannedLocationResponses(locations))
}

// @Summary Submit a location update
// @Description Submit a GPS position sample for a trip. Runs safety checks synchronously and returns triggered alerts.
// @Tags Location
// @Accept json
// @Produce json
// @Param location body SubmitLocationRequest true "Location update request"
// @Success 200 {object} SubmitLocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 409 {object} map[string]string "Trip is busy, retry the request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [post]
func (h *Handler) submitLocation(c *gin.Context) {
	var input SubmitLocationRequest
	log := h.logger.WithField("method", "submitLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := SubmitLocationRequestToModel(input)
	alerts, err := h.safetyService.HandleLocationUpdate(c.Request.Context(), update)
	if err != nil {
		log.WithError(err).Error("Failed to handle location update in service")
		respondServiceError(c, err)
		return
	}

	response := SubmitLocationResponse{
		Message:    "Location updated successfully",
		LocationID: update.ID,
	}
	if len(alerts) > 0 {
		response.AlertsTriggered = ModelsToAlertResponses(alerts)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List recent location updates of a trip
// @Description Get recent GPS samples of a trip, newest first. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Trip ID"
// @Param limit query int false "Number of samples" default(50)
// @Success 200 {array} LocationUpdateResponse
// @Failure 400 {object} map[string]string "Invalid trip ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips/{id}/locations [get]
func (h *Handler) listTripLocations(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip ID"})
		return
	}
	log := h.logger.WithField("method", "listTripLocations").WithField("trip_id", tripID)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
		return
	}

	locations, err := h.safetyService.ListTripLocations(c.Request.Context(), tripID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list trip locations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToLocationUpdateResponses(locations))
}

// @Summary List alerts of a user
// @Description Get all safety alerts of a user, newest first.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} SafetyAlertResponse
// @Failure 400 {object} map[string]string "Missing user_id"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	alerts, err := h.safetyService.ListAlerts(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Get alert by ID
// @Description Get a single safety alert by its ID.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} SafetyAlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "getAlert").WithField("id", id)

	alert, err := h.safetyService.GetAlert(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get alert from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Respond to an active alert
// @Description Record the user's response to an active alert. The transition is terminal.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Param response body RespondAlertRequest true "Alert response request"
// @Success 200 {object} SafetyAlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert is already resolved"
// @Router /alerts/{id}/respond [post]
func (h *Handler) respondToAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "respondToAlert").WithField("id", id)

	var input RespondAlertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.safetyService.RespondToAlert(c.Request.Context(), id, input.UserID, input.Response, input.Message)
	if err != nil {
		log.WithError(err).Warn("Failed to respond to alert in service")
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Create a manual alert
// @Description Create a manual or emergency alert anchored at the trip's latest known position.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param alert body ManualAlertRequest true "Manual alert request"
// @Success 201 {object} SafetyAlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or no location data"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/manual [post]
func (h *Handler) createManualAlert(c *gin.Context) {
	var input ManualAlertRequest
	log := h.logger.WithField("method", "createManualAlert")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.safetyService.TriggerManualAlert(c.Request.Context(), input.TripID, input.UserID, input.AlertType, input.Message)
	if err != nil {
		log.WithError(err).Warn("Failed to create manual alert in service")
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary Get user statistics
// @Description Get the count of distinct users submitting locations in the configured window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	userCount, err := h.safetyService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{UserCount: userCount})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
