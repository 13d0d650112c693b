package fleet

import (
	"context"

	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/an-ant0/digital-waste-management/services/fleet TruckUC

// TruckUC represents the fleet tracking usecase interface
type TruckUC interface {
	// registration and driver sessions
	RegisterTruck(ctx context.Context, req *models.RegisterTruckRequest) (*models.Truck, error)
	Authenticate(ctx context.Context, req *models.TruckAuthRequest) (*models.TruckAuthResponse, error)

	// location reporting
	UpdateLocation(ctx context.Context, truckID string, latitude, longitude float64) (*models.Truck, error)

	// registry queries
	GetTruck(ctx context.Context, truckID string) (*models.TruckPosition, error)
	ListActiveTrucks(ctx context.Context) ([]models.TruckPosition, error)
	NearbyTrucks(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyTruck, error)

	// lifecycle
	UpdateStatus(ctx context.Context, truckID string, status models.TruckStatus) (*models.Truck, error)
}
