package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/an-ant0/digital-waste-management/internal/pkg/database"
	fleetsvc "github.com/an-ant0/digital-waste-management/services/fleet"
)

// TruckRepo implements the durable truck registry on PostgreSQL
type TruckRepo struct {
	db *sqlx.DB
}

// NewTruckRepo creates a new truck registry repository
func NewTruckRepo(db *sqlx.DB) fleetsvc.TruckRepo {
	return &TruckRepo{db: db}
}

// LocationRepo implements the hot position state on Redis
type LocationRepo struct {
	redisClient *database.RedisClient
}

// NewLocationRepo creates a new location repository
func NewLocationRepo(redisClient *database.RedisClient) fleetsvc.LocationRepo {
	return &LocationRepo{redisClient: redisClient}
}
