package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/an-ant0/digital-waste-management/internal/pkg/constants"
	"github.com/an-ant0/digital-waste-management/internal/pkg/logger"
	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
	fleetsvc "github.com/an-ant0/digital-waste-management/services/fleet"
)

// publisher is the slice of the NATS client the gateway needs
type publisher interface {
	Publish(subject string, data []byte) error
}

type truckGW struct {
	nc publisher
}

// NewTruckGW creates a new fleet event gateway
func NewTruckGW(nc publisher) fleetsvc.TruckGW {
	return &truckGW{nc: nc}
}

// PublishLocationUpdated publishes a truck position change onto the
// broadcast bus
func (g *truckGW) PublishLocationUpdated(ctx context.Context, event models.TruckPosition) error {
	return g.publish(ctx, constants.SubjectTruckLocationUpdated, event)
}

// PublishStatusChanged publishes a truck status change onto the broadcast bus
func (g *truckGW) PublishStatusChanged(ctx context.Context, event models.TruckPosition) error {
	return g.publish(ctx, constants.SubjectTruckStatusChanged, event)
}

func (g *truckGW) publish(ctx context.Context, subject string, event models.TruckPosition) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal truck event: %w", err)
	}

	if err := g.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish truck event: %w", err)
	}

	logger.Debug("Published truck event",
		logger.String("subject", subject),
		logger.String("truck_id", event.TruckID))
	return nil
}
