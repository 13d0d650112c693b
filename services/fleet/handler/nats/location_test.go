package nats

import (
	"encoding/json"
	"os"
	"sync"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/an-ant0/digital-waste-management/internal/pkg/constants"
	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
	natspkg "github.com/an-ant0/digital-waste-management/internal/pkg/nats"
)

var testNatsURL = "nats://127.0.0.1:8371"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8371
	testNatsServer := natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

// recordingBroadcaster captures broadcast calls for assertions
type recordingBroadcaster struct {
	mu     sync.Mutex
	events chan broadcastCall
}

type broadcastCall struct {
	event string
	data  interface{}
}

func newRecordingBroadcaster() *recordingBroadcaster {
	return &recordingBroadcaster{events: make(chan broadcastCall, 8)}
}

func (b *recordingBroadcaster) Broadcast(event string, data interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events <- broadcastCall{event: event, data: data}
}

func TestLocationEventIsRelayedToViewers(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err)
	defer nc.Close()

	ws := newRecordingBroadcaster()
	handler := NewNatsHandler(nc, ws)
	require.NoError(t, handler.InitNATSConsumers())
	defer handler.Close()

	event := models.TruckPosition{
		TruckID:   "KTM-01",
		Latitude:  27.7,
		Longitude: 85.3,
		Status:    models.TruckStatusActive,
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	require.NoError(t, nc.Publish(constants.SubjectTruckLocationUpdated, data))

	select {
	case call := <-ws.events:
		assert.Equal(t, constants.EventTruckLocationUpdate, call.event)
		position, ok := call.data.(models.TruckPosition)
		require.True(t, ok)
		assert.Equal(t, "KTM-01", position.TruckID)
		assert.Equal(t, 27.7, position.Latitude)
	case <-time.After(2 * time.Second):
		t.Fatal("Broadcast was not invoked")
	}
}

func TestStatusEventIsRelayedToViewers(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err)
	defer nc.Close()

	ws := newRecordingBroadcaster()
	handler := NewNatsHandler(nc, ws)
	require.NoError(t, handler.InitNATSConsumers())
	defer handler.Close()

	event := models.TruckPosition{TruckID: "KTM-02", Status: models.TruckStatusInactive}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	require.NoError(t, nc.Publish(constants.SubjectTruckStatusChanged, data))

	select {
	case call := <-ws.events:
		assert.Equal(t, constants.EventTruckStatusChanged, call.event)
	case <-time.After(2 * time.Second):
		t.Fatal("Broadcast was not invoked")
	}
}

func TestMalformedEventIsDropped(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err)
	defer nc.Close()

	ws := newRecordingBroadcaster()
	handler := NewNatsHandler(nc, ws)
	require.NoError(t, handler.InitNATSConsumers())
	defer handler.Close()

	require.NoError(t, nc.Publish(constants.SubjectTruckLocationUpdated, []byte("not json")))

	select {
	case <-ws.events:
		t.Fatal("Malformed event must not be broadcast")
	case <-time.After(500 * time.Millisecond):
	}
}
