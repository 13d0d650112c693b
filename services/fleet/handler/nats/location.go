package nats

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/an-ant0/digital-waste-management/internal/pkg/constants"
	"github.com/an-ant0/digital-waste-management/internal/pkg/logger"
	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
)

func (h *NatsHandler) initLocationConsumer() (*nats.Subscription, error) {
	return h.client.Subscribe(constants.SubjectTruckLocationUpdated, h.handleLocationUpdate)
}

func (h *NatsHandler) initStatusConsumer() (*nats.Subscription, error) {
	return h.client.Subscribe(constants.SubjectTruckStatusChanged, h.handleStatusChange)
}

// handleLocationUpdate relays a persisted position to all viewers
func (h *NatsHandler) handleLocationUpdate(msg *nats.Msg) {
	var position models.TruckPosition
	if err := json.Unmarshal(msg.Data, &position); err != nil {
		logger.Error("Failed to unmarshal location event",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	logger.Debug("Relaying truck location to viewers",
		logger.String("truck_id", position.TruckID))

	h.ws.Broadcast(constants.EventTruckLocationUpdate, position)
}

// handleStatusChange relays a status transition to all viewers
func (h *NatsHandler) handleStatusChange(msg *nats.Msg) {
	var position models.TruckPosition
	if err := json.Unmarshal(msg.Data, &position); err != nil {
		logger.Error("Failed to unmarshal status event",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	h.ws.Broadcast(constants.EventTruckStatusChanged, position)
}
