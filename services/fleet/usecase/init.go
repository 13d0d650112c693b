package usecase

import (
	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
	fleetsvc "github.com/an-ant0/digital-waste-management/services/fleet"
)

// TruckUC implements the fleet.TruckUC interface
type TruckUC struct {
	repo      fleetsvc.TruckRepo
	locations fleetsvc.LocationRepo
	gw        fleetsvc.TruckGW
	cfg       *models.Config
}

// NewTruckUC creates a new fleet tracking use case
func NewTruckUC(cfg *models.Config, repo fleetsvc.TruckRepo, locations fleetsvc.LocationRepo, gw fleetsvc.TruckGW) fleetsvc.TruckUC {
	return &TruckUC{
		repo:      repo,
		locations: locations,
		gw:        gw,
		cfg:       cfg,
	}
}
