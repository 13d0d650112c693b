package fleet

import (
	"context"
	"time"

	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/an-ant0/digital-waste-management/services/fleet TruckRepo,LocationRepo

// TruckRepo is the durable truck registry, backed by PostgreSQL
type TruckRepo interface {
	CreateTruck(ctx context.Context, truck *models.Truck) error
	GetTruckByID(ctx context.Context, truckID string) (*models.Truck, error)
	UpdateTruckLocation(ctx context.Context, truckID string, latitude, longitude float64, updatedAt time.Time) (*models.Truck, error)
	UpdateTruckStatus(ctx context.Context, truckID string, status models.TruckStatus, updatedAt time.Time) (*models.Truck, error)
	ListTrucksByStatus(ctx context.Context, status models.TruckStatus) ([]models.Truck, error)
}

// LocationRepo is the hot position state, backed by Redis. It mirrors the
// registry's last known positions for cheap geo queries; the registry
// remains the source of truth.
type LocationRepo interface {
	StoreLocation(ctx context.Context, truckID string, latitude, longitude float64, ts time.Time) error
	GetLastLocation(ctx context.Context, truckID string) (latitude, longitude float64, ts time.Time, err error)
	SetActive(ctx context.Context, truckID string, active bool) error
	NearbyActiveTrucks(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyTruck, error)
}
