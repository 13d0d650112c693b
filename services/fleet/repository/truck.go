package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"

	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
	fleetsvc "github.com/an-ant0/digital-waste-management/services/fleet"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations
const pgUniqueViolation = "23505"

const truckColumns = `id, truck_id, driver_name, latitude, longitude, status, access_code_hash, created_at, last_updated`

// CreateTruck inserts a new truck record into the registry
func (r *TruckRepo) CreateTruck(ctx context.Context, truck *models.Truck) error {
	query := `
		INSERT INTO trucks (
			id, truck_id, driver_name, latitude, longitude, status, access_code_hash, created_at, last_updated
		) VALUES (
			:id, :truck_id, :driver_name, :latitude, :longitude, :status, :access_code_hash, :created_at, :last_updated
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, truck)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fleetsvc.ErrTruckExists
		}
		return fmt.Errorf("failed to create truck: %w", err)
	}

	return nil
}

// GetTruckByID retrieves a truck by its stable identifier
func (r *TruckRepo) GetTruckByID(ctx context.Context, truckID string) (*models.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE truck_id = $1`

	var truck models.Truck
	err := r.db.GetContext(ctx, &truck, query, truckID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fleetsvc.ErrTruckNotFound
		}
		return nil, fmt.Errorf("failed to get truck: %w", err)
	}

	return &truck, nil
}

// UpdateTruckLocation overwrites the truck's current location and bumps
// last_updated. Returns the updated record, or ErrTruckNotFound without
// creating anything when the identifier is unknown.
func (r *TruckRepo) UpdateTruckLocation(ctx context.Context, truckID string, latitude, longitude float64, updatedAt time.Time) (*models.Truck, error) {
	query := `
		UPDATE trucks
		SET latitude = $1, longitude = $2, last_updated = $3
		WHERE truck_id = $4
		RETURNING ` + truckColumns

	var truck models.Truck
	err := r.db.GetContext(ctx, &truck, query, latitude, longitude, updatedAt, truckID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fleetsvc.ErrTruckNotFound
		}
		return nil, fmt.Errorf("failed to update truck location: %w", err)
	}

	return &truck, nil
}

// UpdateTruckStatus changes the truck's operational status
func (r *TruckRepo) UpdateTruckStatus(ctx context.Context, truckID string, status models.TruckStatus, updatedAt time.Time) (*models.Truck, error) {
	query := `
		UPDATE trucks
		SET status = $1, last_updated = $2
		WHERE truck_id = $3
		RETURNING ` + truckColumns

	var truck models.Truck
	err := r.db.GetContext(ctx, &truck, query, status, updatedAt, truckID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fleetsvc.ErrTruckNotFound
		}
		return nil, fmt.Errorf("failed to update truck status: %w", err)
	}

	return &truck, nil
}

// ListTrucksByStatus returns all trucks with the given status
func (r *TruckRepo) ListTrucksByStatus(ctx context.Context, status models.TruckStatus) ([]models.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE status = $1 ORDER BY truck_id`

	var trucks []models.Truck
	err := r.db.SelectContext(ctx, &trucks, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}

	return trucks, nil
}
