package models

import (
	"time"

	"github.com/google/uuid"
)

// TruckStatus represents the operational state of a collection truck
type TruckStatus string

const (
	TruckStatusActive      TruckStatus = "active"
	TruckStatusInactive    TruckStatus = "inactive"
	TruckStatusMaintenance TruckStatus = "maintenance"
	// TruckStatusUnknown is only ever assigned client-side, for trucks first
	// seen through a broadcast event that carried no status field.
	TruckStatusUnknown TruckStatus = "unknown"
)

// ValidTruckStatus reports whether s is a status the registry accepts
func ValidTruckStatus(s TruckStatus) bool {
	switch s {
	case TruckStatusActive, TruckStatusInactive, TruckStatusMaintenance:
		return true
	}
	return false
}

// Truck represents one physical collection vehicle in the registry
type Truck struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	TruckID        string      `json:"truck_id" db:"truck_id"`
	DriverName     string      `json:"driver_name" db:"driver_name"`
	Latitude       float64     `json:"latitude" db:"latitude"`
	Longitude      float64     `json:"longitude" db:"longitude"`
	Status         TruckStatus `json:"status" db:"status"`
	AccessCodeHash string      `json:"-" db:"access_code_hash"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	LastUpdated    time.Time   `json:"last_updated" db:"last_updated"`
}

// Position returns the registry projection of the truck
func (t *Truck) Position() TruckPosition {
	return TruckPosition{
		TruckID:     t.TruckID,
		DriverName:  t.DriverName,
		Latitude:    t.Latitude,
		Longitude:   t.Longitude,
		Status:      t.Status,
		LastUpdated: t.LastUpdated,
	}
}

// TruckPosition is the projection returned by registry queries and carried
// in broadcast events
type TruckPosition struct {
	TruckID     string      `json:"truck_id"`
	DriverName  string      `json:"driver_name,omitempty"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	Status      TruckStatus `json:"status,omitempty"`
	LastUpdated time.Time   `json:"last_updated"`
}

// RegisterTruckRequest represents a truck registration request
type RegisterTruckRequest struct {
	TruckID    string   `json:"truck_id"`
	DriverName string   `json:"driver_name"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	AccessCode string   `json:"access_code"`
}

// LocationUpdateRequest represents a position report for a named truck.
// Pointers distinguish an absent coordinate from a zero one.
type LocationUpdateRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// StatusUpdateRequest represents a truck status change request
type StatusUpdateRequest struct {
	Status TruckStatus `json:"status"`
}

// TruckAuthRequest represents a driver session authentication request
type TruckAuthRequest struct {
	TruckID    string `json:"truck_id"`
	AccessCode string `json:"access_code"`
}

// TruckAuthResponse carries the JWT issued for a driver session
type TruckAuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NearbyTruck is a registry projection with distance from the query point
type NearbyTruck struct {
	TruckPosition
	DistanceKm float64 `json:"distance_km"`
}
