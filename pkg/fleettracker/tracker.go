// Package fleettracker is a Go client for the fleet location feed. It keeps
// an in-memory map of truck positions built from one registry snapshot plus
// the stream of broadcast deltas.
//
// The snapshot fetch and the websocket subscription are not atomic: an update
// broadcast between the two is missed until the next update for that truck
// arrives. Callers that need a fresh view can Stop and start a new Tracker.
package fleettracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/an-ant0/digital-waste-management/internal/pkg/constants"
	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
)

const (
	defaultReconnectAttempts = 5
	defaultReconnectDelay    = 3 * time.Second
)

// ErrConnectionLost is reported by Err after reconnection attempts are
// exhausted. The map keeps its last merged state.
var ErrConnectionLost = errors.New("fleettracker: connection lost, reconnect attempts exhausted")

// Config holds the tracker's connection settings
type Config struct {
	// BaseURL of the fleet service, e.g. "http://localhost:9990"
	BaseURL string
	// Token is the JWT presented on the websocket handshake
	Token string
	// HTTPClient used for the snapshot fetch, http.DefaultClient when nil
	HTTPClient *http.Client
	// ReconnectAttempts bounds websocket redials, default 5
	ReconnectAttempts int
	// ReconnectDelay is the fixed wait between redials, default 3s
	ReconnectDelay time.Duration
}

// Tracker maintains the viewer-side truck map
type Tracker struct {
	cfg    Config
	client *http.Client

	mu      sync.RWMutex
	trucks  map[string]models.TruckPosition
	connErr error
	stopped bool

	conn   *websocket.Conn
	connMu sync.Mutex
	done   chan struct{}
}

// New creates a tracker. Call Start to populate it.
func New(cfg Config) *Tracker {
	if cfg.ReconnectAttempts <= 0 {
		cfg.ReconnectAttempts = defaultReconnectAttempts
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = defaultReconnectDelay
	}
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &Tracker{
		cfg:    cfg,
		client: client,
		trucks: make(map[string]models.TruckPosition),
		done:   make(chan struct{}),
	}
}

// Start fetches the registry snapshot and subscribes to the broadcast feed.
// A snapshot failure leaves the map empty and nothing subscribed.
func (t *Tracker) Start(ctx context.Context) error {
	positions, err := t.fetchSnapshot(ctx)
	if err != nil {
		return err
	}

	t.mu.Lock()
	if t.stopped {
		// Stop won the race with the snapshot response, discard it
		t.mu.Unlock()
		return nil
	}
	t.trucks = make(map[string]models.TruckPosition, len(positions))
	for _, p := range positions {
		t.trucks[p.TruckID] = p
	}
	t.mu.Unlock()

	conn, err := t.dial(ctx)
	if err != nil {
		return fmt.Errorf("fleettracker: websocket dial: %w", err)
	}
	if !t.storeConn(conn) {
		// Stop landed while the dial was in flight
		return nil
	}

	go t.readLoop(ctx)
	return nil
}

// Stop closes the subscription. The tracker cannot be restarted.
func (t *Tracker) Stop() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	t.mu.Unlock()

	close(t.done)

	t.connMu.Lock()
	if t.conn != nil {
		_ = t.conn.Close()
	}
	t.connMu.Unlock()
}

// Snapshot returns a copy of the current truck map
func (t *Tracker) Snapshot() map[string]models.TruckPosition {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]models.TruckPosition, len(t.trucks))
	for id, p := range t.trucks {
		out[id] = p
	}
	return out
}

// Get returns the tracked position for one truck
func (t *Tracker) Get(truckID string) (models.TruckPosition, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	p, ok := t.trucks[truckID]
	return p, ok
}

// Err reports the persistent connection error, nil while the feed is healthy
func (t *Tracker) Err() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.connErr
}

// snapshotEnvelope matches the service's response wrapper
type snapshotEnvelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    []models.TruckPosition `json:"data"`
	Error   string                 `json:"error"`
}

func (t *Tracker) fetchSnapshot(ctx context.Context) ([]models.TruckPosition, error) {
	url := strings.TrimRight(t.cfg.BaseURL, "/") + "/trucks/locations/all"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fleettracker: snapshot request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fleettracker: snapshot fetch: %w", err)
	}
	defer resp.Body.Close()

	var envelope snapshotEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("fleettracker: snapshot decode: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !envelope.Success {
		msg := envelope.Error
		if msg == "" {
			msg = envelope.Message
		}
		return nil, fmt.Errorf("fleettracker: snapshot failed (%d): %s", resp.StatusCode, msg)
	}

	return envelope.Data, nil
}

func (t *Tracker) dial(ctx context.Context) (*websocket.Conn, error) {
	wsURL := strings.TrimRight(t.cfg.BaseURL, "/")
	wsURL = strings.Replace(wsURL, "https://", "wss://", 1)
	wsURL = strings.Replace(wsURL, "http://", "ws://", 1)
	wsURL += "/ws/fleet"

	header := http.Header{}
	if t.cfg.Token != "" {
		header.Set("Authorization", "Bearer "+t.cfg.Token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	return conn, err
}

// storeConn publishes a freshly dialed connection. When Stop already ran the
// connection is closed on the spot and false is returned, so a dial that was
// in flight during teardown never leaks.
func (t *Tracker) storeConn(conn *websocket.Conn) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		_ = conn.Close()
		return false
	}

	t.connMu.Lock()
	t.conn = conn
	t.connMu.Unlock()
	return true
}

func (t *Tracker) readLoop(ctx context.Context) {
	for {
		t.connMu.Lock()
		conn := t.conn
		t.connMu.Unlock()

		_, raw, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-t.done:
				return
			default:
			}

			if !t.reconnect(ctx) {
				t.mu.Lock()
				// A deliberate Stop is not a lost connection
				if !t.stopped {
					t.connErr = ErrConnectionLost
				}
				t.mu.Unlock()
				return
			}
			continue
		}

		t.handleMessage(raw)
	}
}

// reconnect redials with a fixed delay between attempts. It reports whether
// a connection was re-established.
func (t *Tracker) reconnect(ctx context.Context) bool {
	for attempt := 0; attempt < t.cfg.ReconnectAttempts; attempt++ {
		select {
		case <-t.done:
			return false
		case <-ctx.Done():
			return false
		case <-time.After(t.cfg.ReconnectDelay):
		}

		conn, err := t.dial(ctx)
		if err != nil {
			continue
		}
		return t.storeConn(conn)
	}
	return false
}

func (t *Tracker) handleMessage(raw []byte) {
	var msg models.WSMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return
	}

	switch msg.Event {
	case constants.EventTruckLocationUpdate, constants.EventTruckStatusChanged:
		t.merge(msg.Data)
	}
}

// positionDelta distinguishes absent fields from zero values so a partial
// event never clobbers known state
type positionDelta struct {
	TruckID     string              `json:"truck_id"`
	DriverName  *string             `json:"driver_name"`
	Latitude    *float64            `json:"latitude"`
	Longitude   *float64            `json:"longitude"`
	Status      *models.TruckStatus `json:"status"`
	LastUpdated *time.Time          `json:"last_updated"`
}

func (t *Tracker) merge(data json.RawMessage) {
	var delta positionDelta
	if err := json.Unmarshal(data, &delta); err != nil || delta.TruckID == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}

	entry, known := t.trucks[delta.TruckID]
	if !known {
		entry = models.TruckPosition{
			TruckID:     delta.TruckID,
			Status:      models.TruckStatusUnknown,
			LastUpdated: time.Now(),
		}
	}

	if delta.DriverName != nil {
		entry.DriverName = *delta.DriverName
	}
	if delta.Latitude != nil {
		entry.Latitude = *delta.Latitude
	}
	if delta.Longitude != nil {
		entry.Longitude = *delta.Longitude
	}
	if delta.Status != nil {
		entry.Status = *delta.Status
	}
	if delta.LastUpdated != nil {
		entry.LastUpdated = *delta.LastUpdated
	}

	t.trucks[delta.TruckID] = entry
}
