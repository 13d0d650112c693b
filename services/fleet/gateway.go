package fleet

import (
	"context"

	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/an-ant0/digital-waste-management/services/fleet TruckGW

// TruckGW publishes fleet events onto the broadcast bus. Publication is
// fire-and-forget: there is no delivery guarantee to viewers that are not
// connected when the event is emitted.
type TruckGW interface {
	PublishLocationUpdated(ctx context.Context, event models.TruckPosition) error
	PublishStatusChanged(ctx context.Context, event models.TruckPosition) error
}
