package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/travel_safety_monitor/internal/config"
	"github.com/shenikar/travel_safety_monitor/internal/models"
	"github.com/sirupsen/logrus"
)

// TripRepository определяет контракт для работы с бд поездок
type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Trip, error)
	Update(ctx context.Context, trip *models.Trip) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	AddPlannedLocation(ctx context.Context, loc *models.PlannedLocation) error
	ListPlannedLocations(ctx context.Context, tripID uuid.UUID) ([]*models.PlannedLocation, error)
	GetTripFromCache(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	SetTripCache(ctx context.Context, trip *models.Trip) error
	InvalidateTripCache(ctx context.Context, id uuid.UUID) error
}

// TripService определяет контракт для бизнес-логики управления поездками
type TripService interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ListTrips(ctx context.Context, userID string) ([]*models.Trip, error)
	UpdateTrip(ctx context.Context, trip *models.Trip) error
	DeactivateTrip(ctx context.Context, id uuid.UUID) error
	AddPlannedLocation(ctx context.Context, loc *models.PlannedLocation) error
	ListPlannedLocations(ctx context.Context, tripID uuid.UUID) ([]*models.PlannedLocation, error)
}

type tripService struct {
	repo   TripRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewTripService(repo TripRepository, logger *logrus.Logger, cfg *config.Config) TripService {
	return &tripService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// CreateTrip создает поездку
func (s *tripService) CreateTrip(ctx context.Context, trip *models.Trip) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "CreateTrip",
		"user_id": trip.UserID,
	})
	log.Info("Attempting to create a new trip")

	trip.IsActive = true
	if trip.DeviationThresholdKm <= 0 {
		trip.DeviationThresholdKm = s.cfg.DefaultDeviationThresholdKm
	}

	if err := s.repo.Create(ctx, trip); err != nil {
		log.WithError(err).Error("Failed to create trip in repository")
		return fmt.Errorf("service: could not create trip: %w", err)
	}

	log.WithField("trip_id", trip.ID).Info("Trip created successfully")
	return nil
}

// GetTrip получает поездку по ID, сначала пробуя кэш
func (s *tripService) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "GetTrip",
		"trip_id": id,
	})

	cached, err := s.repo.GetTripFromCache(ctx, id)
	if err != nil {
		// Недоступность кэша не должна ломать чтение
		log.WithError(err).Warn("Failed to read trip from cache")
	}
	if cached != nil {
		return cached, nil
	}

	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get trip from repository")
		return nil, fmt.Errorf("service: could not get trip: %w", err)
	}

	if err := s.repo.SetTripCache(ctx, trip); err != nil {
		log.WithError(err).Warn("Failed to cache trip")
	}
	return trip, nil
}

// ListTrips возвращает поездки пользователя
func (s *tripService) ListTrips(ctx context.Context, userID string) ([]*models.Trip, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "ListTrips",
		"user_id": userID,
	})

	trips, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list trips from repository")
		return nil, fmt.Errorf("service: could not list trips: %w", err)
	}

	log.WithField("count", len(trips)).Info("Trips listed successfully")
	return trips, nil
}

// UpdateTrip обновляет существующую поездку
func (s *tripService) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "UpdateTrip",
		"trip_id": trip.ID,
	})
	log.Info("Attempting to update trip")

	existing, err := s.repo.GetByID(ctx, trip.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent trip")
		return fmt.Errorf("service: trip %s not found for update: %w", trip.ID, err)
	}

	existing.Name = trip.Name
	existing.Description = trip.Description
	existing.StartDate = trip.StartDate
	existing.EndDate = trip.EndDate
	existing.MonitoringEnabled = trip.MonitoringEnabled
	existing.DeviationThresholdKm = trip.DeviationThresholdKm

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update trip in repository")
		return fmt.Errorf("service: could not update trip: %w", err)
	}

	if err := s.repo.InvalidateTripCache(ctx, trip.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate trip cache")
	}
	log.Info("Trip updated successfully")
	return nil
}

// DeactivateTrip деактивирует поездку (мягкое удаление)
func (s *tripService) DeactivateTrip(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "DeactivateTrip",
		"trip_id": id,
	})
	log.Info("Attempting to deactivate trip")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to deactivate a non-existent trip")
		return fmt.Errorf("service: trip %s not found for deactivate: %w", id, err)
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate trip in repository")
		return fmt.Errorf("service: could not deactivate trip: %w", err)
	}

	if err := s.repo.InvalidateTripCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate trip cache")
	}
	log.Info("Trip deactivated successfully")
	return nil
}

// AddPlannedLocation добавляет запланированную точку к поездке
func (s *tripService) AddPlannedLocation(ctx context.Context, loc *models.PlannedLocation) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "AddPlannedLocation",
		"trip_id": loc.TripID,
	})

	if _, err := s.repo.GetByID(ctx, loc.TripID); err != nil {
		log.WithError(err).Warn("Attempted to add location to a non-existent trip")
		return fmt.Errorf("service: trip %s not found: %w", loc.TripID, err)
	}

	if loc.RadiusMeters <= 0 {
		loc.RadiusMeters = 500
	}

	if err := s.repo.AddPlannedLocation(ctx, loc); err != nil {
		log.WithError(err).Error("Failed to add planned location in repository")
		return fmt.Errorf("service: could not add planned location: %w", err)
	}

	log.WithField("location_id", loc.ID).Info("Planned location added successfully")
	return nil
}

// ListPlannedLocations возвращает запланированные точки поездки
func (s *tripService) ListPlannedLocations(ctx context.Context, tripID uuid.UUID) ([]*models.PlannedLocation, error) {
	locations, err := s.repo.ListPlannedLocations(ctx, tripID)
	if err != nil {
		s.logger.WithError(err).WithField("trip_id", tripID).Error("Failed to list planned locations")
		return nil, fmt.Errorf("service: could not list planned locations: %w", err)
	}
	return locations, nil
}
