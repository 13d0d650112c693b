package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/an-ant0/digital-waste-management/internal/pkg/constants"
	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
	"github.com/an-ant0/digital-waste-management/internal/utils"
)

const (
	// LocationTTL is how long a truck's hot position survives without a
	// fresh report. Drivers report every 5-15 seconds while on shift, so a
	// stale entry means the truck stopped reporting.
	LocationTTL = 24 * time.Hour

	// geohashPrecision of 9 characters resolves to roughly 5 meters,
	// enough to tell apart trucks on adjacent streets
	geohashPrecision = 9
)

// StoreLocation mirrors a truck's last known position into Redis
func (r *LocationRepo) StoreLocation(ctx context.Context, truckID string, latitude, longitude float64, ts time.Time) error {
	locationKey := fmt.Sprintf(constants.KeyTruckLocation, truckID)
	point := utils.GeoPoint{Latitude: latitude, Longitude: longitude}
	locationData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(longitude, 'f', -1, 64),
		constants.FieldGeohash:   utils.EncodeLocation(point, geohashPrecision),
		constants.FieldTimestamp: strconv.FormatInt(ts.Unix(), 10),
	}

	err := r.redisClient.HMSet(ctx, locationKey, locationData)
	if err != nil {
		return fmt.Errorf("failed to store truck location: %w", err)
	}

	if err := r.redisClient.Expire(ctx, locationKey, LocationTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	// Keep the GEO set in sync for nearby queries
	if err := r.redisClient.GeoAdd(ctx, constants.KeyTruckGeo, truckID, longitude, latitude); err != nil {
		return fmt.Errorf("failed to update truck geo index: %w", err)
	}

	return nil
}

// GetLastLocation gets the last stored position for a truck
func (r *LocationRepo) GetLastLocation(ctx context.Context, truckID string) (float64, float64, time.Time, error) {
	locationKey := fmt.Sprintf(constants.KeyTruckLocation, truckID)

	values, err := r.redisClient.HMGet(ctx, locationKey,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldTimestamp,
	)
	if err != nil {
		return 0, 0, time.Time{}, fmt.Errorf("failed to get truck location: %w", err)
	}

	hasValue := false
	for _, v := range values {
		if v != "" {
			hasValue = true
			break
		}
	}
	if !hasValue || len(values) != 3 {
		return 0, 0, time.Time{}, fmt.Errorf("no location data found for truck %s", truckID)
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return 0, 0, time.Time{}, fmt.Errorf("invalid latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return 0, 0, time.Time{}, fmt.Errorf("invalid longitude: %w", err)
	}

	ts, err := strconv.ParseInt(values[2], 10, 64)
	if err != nil {
		return 0, 0, time.Time{}, fmt.Errorf("invalid timestamp: %w", err)
	}

	return lat, lng, time.Unix(ts, 0), nil
}

// SetActive records or clears a truck's membership in the active set
func (r *LocationRepo) SetActive(ctx context.Context, truckID string, active bool) error {
	if active {
		if err := r.redisClient.SAdd(ctx, constants.KeyActiveTrucks, truckID); err != nil {
			return fmt.Errorf("failed to mark truck active: %w", err)
		}
		return nil
	}

	if err := r.redisClient.SRem(ctx, constants.KeyActiveTrucks, truckID); err != nil {
		return fmt.Errorf("failed to mark truck inactive: %w", err)
	}
	return nil
}

// NearbyActiveTrucks returns active trucks within radiusKm of the given
// point, closest first, using the Redis GEO index
func (r *LocationRepo) NearbyActiveTrucks(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyTruck, error) {
	locations, err := r.redisClient.GeoSearch(ctx, constants.KeyTruckGeo, longitude, latitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to search truck geo index: %w", err)
	}

	activeIDs, err := r.redisClient.SMembers(ctx, constants.KeyActiveTrucks)
	if err != nil {
		return nil, fmt.Errorf("failed to read active truck set: %w", err)
	}
	active := make(map[string]struct{}, len(activeIDs))
	for _, id := range activeIDs {
		active[id] = struct{}{}
	}

	origin := utils.GeoPoint{Latitude: latitude, Longitude: longitude}
	trucks := make([]models.NearbyTruck, 0, len(locations))
	for _, loc := range locations {
		if _, ok := active[loc.Name]; !ok {
			continue
		}

		// Redis orders the candidates; the reported distance is recomputed
		// with the haversine helper so it is always in kilometers
		truckPoint := utils.GeoPoint{Latitude: loc.Latitude, Longitude: loc.Longitude}
		nearby := models.NearbyTruck{
			TruckPosition: models.TruckPosition{
				TruckID:   loc.Name,
				Latitude:  loc.Latitude,
				Longitude: loc.Longitude,
				Status:    models.TruckStatusActive,
			},
			DistanceKm: utils.CalculateDistance(origin, truckPoint),
		}

		// Best effort: the hash carries the report timestamp
		if _, _, ts, err := r.GetLastLocation(ctx, loc.Name); err == nil {
			nearby.LastUpdated = ts
		}

		trucks = append(trucks, nearby)
	}

	return trucks, nil
}
