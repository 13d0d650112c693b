package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"

	natspkg "github.com/an-ant0/digital-waste-management/internal/pkg/nats"
)

// broadcaster pushes an event to every connected websocket viewer
type broadcaster interface {
	Broadcast(event string, data interface{})
}

// NatsHandler consumes fleet events and relays them to websocket viewers
type NatsHandler struct {
	client *natspkg.Client
	ws     broadcaster
	subs   []*nats.Subscription
}

// NewNatsHandler creates a new NATS event consumer
func NewNatsHandler(client *natspkg.Client, ws broadcaster) *NatsHandler {
	return &NatsHandler{
		client: client,
		ws:     ws,
	}
}

// InitNATSConsumers subscribes to all fleet subjects
func (h *NatsHandler) InitNATSConsumers() error {
	if err := h.subscribe(h.initLocationConsumer); err != nil {
		return err
	}
	if err := h.subscribe(h.initStatusConsumer); err != nil {
		return err
	}
	return nil
}

func (h *NatsHandler) subscribe(init func() (*nats.Subscription, error)) error {
	sub, err := init()
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}
	h.subs = append(h.subs, sub)
	return nil
}

// Close drains all active subscriptions
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
	h.subs = nil
}
