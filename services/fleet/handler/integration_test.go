package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
	natspkg "github.com/an-ant0/digital-waste-management/internal/pkg/nats"
	pkgws "github.com/an-ant0/digital-waste-management/internal/pkg/websocket"
	"github.com/an-ant0/digital-waste-management/internal/utils"
	"github.com/an-ant0/digital-waste-management/pkg/fleettracker"
	fleetsvc "github.com/an-ant0/digital-waste-management/services/fleet"
	"github.com/an-ant0/digital-waste-management/services/fleet/gateway"
	httpapi "github.com/an-ant0/digital-waste-management/services/fleet/handler/http"
	natshandler "github.com/an-ant0/digital-waste-management/services/fleet/handler/nats"
	wshandler "github.com/an-ant0/digital-waste-management/services/fleet/handler/websocket"
	"github.com/an-ant0/digital-waste-management/services/fleet/usecase"
)

var testNatsURL = "nats://127.0.0.1:8372"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8372
	testNatsServer := natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

// memTruckRegistry is an in-memory TruckRepo so the full service can be
// assembled without PostgreSQL
type memTruckRegistry struct {
	mu     sync.Mutex
	trucks map[string]*models.Truck
}

func newMemTruckRegistry() *memTruckRegistry {
	return &memTruckRegistry{trucks: make(map[string]*models.Truck)}
}

func (r *memTruckRegistry) CreateTruck(ctx context.Context, truck *models.Truck) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.trucks[truck.TruckID]; exists {
		return fleetsvc.ErrTruckExists
	}
	stored := *truck
	r.trucks[truck.TruckID] = &stored
	return nil
}

func (r *memTruckRegistry) GetTruckByID(ctx context.Context, truckID string) (*models.Truck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	truck, ok := r.trucks[truckID]
	if !ok {
		return nil, fleetsvc.ErrTruckNotFound
	}
	out := *truck
	return &out, nil
}

func (r *memTruckRegistry) UpdateTruckLocation(ctx context.Context, truckID string, latitude, longitude float64, updatedAt time.Time) (*models.Truck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	truck, ok := r.trucks[truckID]
	if !ok {
		return nil, fleetsvc.ErrTruckNotFound
	}
	truck.Latitude = latitude
	truck.Longitude = longitude
	truck.LastUpdated = updatedAt
	out := *truck
	return &out, nil
}

func (r *memTruckRegistry) UpdateTruckStatus(ctx context.Context, truckID string, status models.TruckStatus, updatedAt time.Time) (*models.Truck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	truck, ok := r.trucks[truckID]
	if !ok {
		return nil, fleetsvc.ErrTruckNotFound
	}
	truck.Status = status
	truck.LastUpdated = updatedAt
	out := *truck
	return &out, nil
}

func (r *memTruckRegistry) ListTrucksByStatus(ctx context.Context, status models.TruckStatus) ([]models.Truck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Truck, 0, len(r.trucks))
	for _, truck := range r.trucks {
		if truck.Status == status {
			out = append(out, *truck)
		}
	}
	return out, nil
}

// memLocationIndex is an in-memory LocationRepo standing in for Redis
type memLocationIndex struct {
	mu        sync.Mutex
	positions map[string]models.TruckPosition
	active    map[string]bool
}

func newMemLocationIndex() *memLocationIndex {
	return &memLocationIndex{
		positions: make(map[string]models.TruckPosition),
		active:    make(map[string]bool),
	}
}

func (l *memLocationIndex) StoreLocation(ctx context.Context, truckID string, latitude, longitude float64, ts time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.positions[truckID] = models.TruckPosition{
		TruckID:     truckID,
		Latitude:    latitude,
		Longitude:   longitude,
		LastUpdated: ts,
	}
	return nil
}

func (l *memLocationIndex) GetLastLocation(ctx context.Context, truckID string) (float64, float64, time.Time, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.positions[truckID]
	if !ok {
		return 0, 0, time.Time{}, fleetsvc.ErrTruckNotFound
	}
	return p.Latitude, p.Longitude, p.LastUpdated, nil
}

func (l *memLocationIndex) SetActive(ctx context.Context, truckID string, active bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.active[truckID] = active
	return nil
}

func (l *memLocationIndex) NearbyActiveTrucks(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyTruck, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	origin := utils.GeoPoint{Latitude: latitude, Longitude: longitude}
	out := make([]models.NearbyTruck, 0, len(l.positions))
	for id, p := range l.positions {
		if !l.active[id] {
			continue
		}
		dist := utils.CalculateDistance(origin, utils.GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude})
		if dist > radiusKm {
			continue
		}
		out = append(out, models.NearbyTruck{TruckPosition: p, DistanceKm: dist})
	}
	return out, nil
}

func waitForCondition(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("Condition not met in time")
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

// TestTruckReportFlowsToViewer assembles the whole service around the real
// broadcast bus and verifies a driver's position report reaches a connected
// viewer without a registry re-query: register, authenticate, subscribe,
// report, observe.
func TestTruckReportFlowsToViewer(t *testing.T) {
	cfg := &models.Config{
		JWT:   models.JWTConfig{Secret: "integration-secret", Expiration: 60, Issuer: "fleet-service"},
		Fleet: models.FleetConfig{DefaultNearbyRadiusKm: 5, MaxNearbyRadiusKm: 25},
	}

	nc, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err)
	defer nc.Close()

	uc := usecase.NewTruckUC(cfg, newMemTruckRegistry(), newMemLocationIndex(), gateway.NewTruckGW(nc))

	manager := pkgws.NewManager(cfg.JWT)
	fleetWS := wshandler.NewWebSocketHandler(manager)
	fleetNats := natshandler.NewNatsHandler(nc, fleetWS)

	h := NewHandler(httpapi.NewTruckHandler(uc), httpapi.NewAuthHandler(uc), fleetWS, fleetNats, cfg)
	require.NoError(t, h.InitNATSConsumers())
	defer fleetNats.Close()

	e := echo.New()
	h.RegisterRoutes(e)
	srv := httptest.NewServer(e)
	defer srv.Close()

	// Register a truck over the public endpoint
	regResp := postJSON(t, srv.URL+"/trucks/register",
		`{"truck_id":"KTM-09","driver_name":"Ravi Kumar","latitude":27.7,"longitude":85.3,"access_code":"road-42"}`)
	require.Equal(t, http.StatusCreated, regResp.StatusCode)
	regResp.Body.Close()

	// Open a driver session
	authResp := postJSON(t, srv.URL+"/trucks/auth",
		`{"truck_id":"KTM-09","access_code":"road-42"}`)
	require.Equal(t, http.StatusOK, authResp.StatusCode)
	var authEnvelope struct {
		Data models.TruckAuthResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(authResp.Body).Decode(&authEnvelope))
	authResp.Body.Close()
	require.NotEmpty(t, authEnvelope.Data.Token)

	// A viewer comes up: snapshot plus websocket subscription
	viewer := fleettracker.New(fleettracker.Config{BaseURL: srv.URL, Token: authEnvelope.Data.Token})
	require.NoError(t, viewer.Start(context.Background()))
	defer viewer.Stop()

	p, ok := viewer.Get("KTM-09")
	require.True(t, ok)
	assert.Equal(t, 27.7, p.Latitude)

	waitForCondition(t, func() bool { return manager.ClientCount() == 1 })

	// The driver reports a new position
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/trucks/KTM-09/location",
		strings.NewReader(`{"latitude":27.75,"longitude":85.35}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+authEnvelope.Data.Token)

	upResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, upResp.StatusCode)
	upResp.Body.Close()

	// The new coordinates reach the viewer through the broadcast alone
	waitForCondition(t, func() bool {
		p, _ := viewer.Get("KTM-09")
		return p.Latitude == 27.75
	})

	p, _ = viewer.Get("KTM-09")
	assert.Equal(t, 85.35, p.Longitude)
	assert.Equal(t, "Ravi Kumar", p.DriverName)
	assert.Equal(t, models.TruckStatusActive, p.Status)
}
