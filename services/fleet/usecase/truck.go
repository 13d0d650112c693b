package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/an-ant0/digital-waste-management/internal/pkg/logger"
	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
	"github.com/an-ant0/digital-waste-management/internal/utils"
	fleetsvc "github.com/an-ant0/digital-waste-management/services/fleet"
)

// RegisterTruck creates a new truck record with its initial position.
// Registration is the only way a truck enters the registry; duplicates
// are rejected.
func (s *TruckUC) RegisterTruck(ctx context.Context, req *models.RegisterTruckRequest) (*models.Truck, error) {
	if req.TruckID == "" || req.DriverName == "" || req.AccessCode == "" ||
		req.Latitude == nil || req.Longitude == nil {
		return nil, fleetsvc.ErrMissingFields
	}

	if !utils.ValidCoordinates(*req.Latitude, *req.Longitude) {
		return nil, fleetsvc.ErrInvalidCoordinates
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AccessCode), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	truck := &models.Truck{
		ID:             uuid.New(),
		TruckID:        req.TruckID,
		DriverName:     req.DriverName,
		Latitude:       *req.Latitude,
		Longitude:      *req.Longitude,
		Status:         models.TruckStatusActive,
		AccessCodeHash: string(hash),
		CreatedAt:      now,
		LastUpdated:    now,
	}

	if err := s.repo.CreateTruck(ctx, truck); err != nil {
		return nil, err
	}

	// Mirror into the hot state; registry write already succeeded, so a
	// Redis failure only degrades nearby queries until the next report.
	if err := s.locations.StoreLocation(ctx, truck.TruckID, truck.Latitude, truck.Longitude, now); err != nil {
		logger.Warn("Failed to mirror initial truck location",
			logger.String("truck_id", truck.TruckID),
			logger.Err(err))
	}
	if err := s.locations.SetActive(ctx, truck.TruckID, true); err != nil {
		logger.Warn("Failed to mark truck active",
			logger.String("truck_id", truck.TruckID),
			logger.Err(err))
	}

	// The initial position is a location mutation, so viewers get it too
	if err := s.gw.PublishLocationUpdated(ctx, truck.Position()); err != nil {
		logger.Error("Failed to publish registration location event",
			logger.String("truck_id", truck.TruckID),
			logger.Err(err))
	}

	return truck, nil
}

// UpdateLocation overwrites a truck's current position, persists it and then
// broadcasts the change. The broadcast never fires when persistence fails.
func (s *TruckUC) UpdateLocation(ctx context.Context, truckID string, latitude, longitude float64) (*models.Truck, error) {
	if !utils.ValidCoordinates(latitude, longitude) {
		return nil, fleetsvc.ErrInvalidCoordinates
	}

	now := time.Now()
	truck, err := s.repo.UpdateTruckLocation(ctx, truckID, latitude, longitude, now)
	if err != nil {
		return nil, err
	}

	if err := s.locations.StoreLocation(ctx, truckID, latitude, longitude, now); err != nil {
		logger.Warn("Failed to mirror truck location",
			logger.String("truck_id", truckID),
			logger.Err(err))
	}

	if err := s.gw.PublishLocationUpdated(ctx, truck.Position()); err != nil {
		// The record is already persisted; the event is fire-and-forget
		logger.Error("Failed to publish location update event",
			logger.String("truck_id", truckID),
			logger.Err(err))
	}

	return truck, nil
}

// GetTruck returns the registry projection of a single truck
func (s *TruckUC) GetTruck(ctx context.Context, truckID string) (*models.TruckPosition, error) {
	truck, err := s.repo.GetTruckByID(ctx, truckID)
	if err != nil {
		return nil, err
	}

	pos := truck.Position()
	return &pos, nil
}

// ListActiveTrucks returns the positions of all trucks currently active
func (s *TruckUC) ListActiveTrucks(ctx context.Context) ([]models.TruckPosition, error) {
	trucks, err := s.repo.ListTrucksByStatus(ctx, models.TruckStatusActive)
	if err != nil {
		return nil, err
	}

	positions := make([]models.TruckPosition, 0, len(trucks))
	for i := range trucks {
		positions = append(positions, trucks[i].Position())
	}

	return positions, nil
}

// NearbyTrucks returns active trucks within radiusKm of the given point
func (s *TruckUC) NearbyTrucks(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyTruck, error) {
	if !utils.ValidCoordinates(latitude, longitude) {
		return nil, fleetsvc.ErrInvalidCoordinates
	}

	if radiusKm <= 0 {
		radiusKm = s.cfg.Fleet.DefaultNearbyRadiusKm
	}
	if max := s.cfg.Fleet.MaxNearbyRadiusKm; max > 0 && radiusKm > max {
		radiusKm = max
	}

	return s.locations.NearbyActiveTrucks(ctx, latitude, longitude, radiusKm)
}

// UpdateStatus changes a truck's operational status. A truck flipped away
// from active disappears from registry listings but keeps its last
// position; nothing is deleted.
func (s *TruckUC) UpdateStatus(ctx context.Context, truckID string, status models.TruckStatus) (*models.Truck, error) {
	if !models.ValidTruckStatus(status) {
		return nil, fleetsvc.ErrInvalidStatus
	}

	truck, err := s.repo.UpdateTruckStatus(ctx, truckID, status, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.locations.SetActive(ctx, truckID, status == models.TruckStatusActive); err != nil {
		logger.Warn("Failed to update active truck set",
			logger.String("truck_id", truckID),
			logger.Err(err))
	}

	if err := s.gw.PublishStatusChanged(ctx, truck.Position()); err != nil {
		logger.Error("Failed to publish status change event",
			logger.String("truck_id", truckID),
			logger.Err(err))
	}

	return truck, nil
}
