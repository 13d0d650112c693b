package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/an-ant0/digital-waste-management/internal/pkg/logger"
	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
	"github.com/an-ant0/digital-waste-management/internal/utils"
	fleetsvc "github.com/an-ant0/digital-waste-management/services/fleet"
)

// TruckHandler handles HTTP requests for truck operations
type TruckHandler struct {
	truckUC fleetsvc.TruckUC
}

// NewTruckHandler creates a new truck handler
func NewTruckHandler(truckUC fleetsvc.TruckUC) *TruckHandler {
	return &TruckHandler{truckUC: truckUC}
}

// RegisterTruck handles truck registration requests
func (h *TruckHandler) RegisterTruck(c echo.Context) error {
	var req models.RegisterTruckRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for truck registration",
			logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	truck, err := h.truckUC.RegisterTruck(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, fleetsvc.ErrMissingFields):
			return utils.BadRequestResponse(c, "truck_id, driver_name, access_code, latitude and longitude are required")
		case errors.Is(err, fleetsvc.ErrInvalidCoordinates):
			return utils.BadRequestResponse(c, "Latitude must be within [-90,90] and longitude within [-180,180]")
		case errors.Is(err, fleetsvc.ErrTruckExists):
			return utils.BadRequestResponse(c, "Truck ID is already registered")
		}
		logger.Error("Failed to register truck",
			logger.String("truck_id", req.TruckID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to register truck")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Truck registered successfully", truck)
}

// UpdateLocation handles a position report for a named truck
func (h *TruckHandler) UpdateLocation(c echo.Context) error {
	truckID := c.Param("truckId")
	if truckID == "" {
		return utils.BadRequestResponse(c, "Invalid truck ID")
	}

	var req models.LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	// Both coordinates must be present; zero is a valid value
	if req.Latitude == nil || req.Longitude == nil {
		return utils.BadRequestResponse(c, "latitude and longitude are required")
	}

	truck, err := h.truckUC.UpdateLocation(c.Request().Context(), truckID, *req.Latitude, *req.Longitude)
	if err != nil {
		switch {
		case errors.Is(err, fleetsvc.ErrInvalidCoordinates):
			return utils.BadRequestResponse(c, "Latitude must be within [-90,90] and longitude within [-180,180]")
		case errors.Is(err, fleetsvc.ErrTruckNotFound):
			return utils.NotFoundResponse(c, "Truck not found")
		}
		logger.Error("Failed to update truck location",
			logger.String("truck_id", truckID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update truck location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", truck)
}

// GetTruckLocation handles single truck retrieval requests
func (h *TruckHandler) GetTruckLocation(c echo.Context) error {
	truckID := c.Param("truckId")
	if truckID == "" {
		return utils.BadRequestResponse(c, "Invalid truck ID")
	}

	position, err := h.truckUC.GetTruck(c.Request().Context(), truckID)
	if err != nil {
		if errors.Is(err, fleetsvc.ErrTruckNotFound) {
			return utils.NotFoundResponse(c, "Truck not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to retrieve truck")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Truck retrieved successfully", position)
}

// ListActiveTrucks returns the positions of all active trucks
func (h *TruckHandler) ListActiveTrucks(c echo.Context) error {
	positions, err := h.truckUC.ListActiveTrucks(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list active trucks", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list active trucks")
	}

	// An empty registry is reported explicitly, distinct from a server error
	if len(positions) == 0 {
		return utils.NotFoundResponse(c, "No active trucks found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active trucks retrieved successfully", positions)
}

// NearbyTrucks returns active trucks within a radius of a point
func (h *TruckHandler) NearbyTrucks(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "latitude query parameter is required")
	}

	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "longitude query parameter is required")
	}

	var radiusKm float64
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "radius_km must be a number")
		}
	}

	trucks, err := h.truckUC.NearbyTrucks(c.Request().Context(), latitude, longitude, radiusKm)
	if err != nil {
		if errors.Is(err, fleetsvc.ErrInvalidCoordinates) {
			return utils.BadRequestResponse(c, "Latitude must be within [-90,90] and longitude within [-180,180]")
		}
		logger.Error("Failed to search nearby trucks", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to search nearby trucks")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby trucks retrieved successfully", trucks)
}

// UpdateStatus handles truck status change requests
func (h *TruckHandler) UpdateStatus(c echo.Context) error {
	truckID := c.Param("truckId")
	if truckID == "" {
		return utils.BadRequestResponse(c, "Invalid truck ID")
	}

	var req models.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	truck, err := h.truckUC.UpdateStatus(c.Request().Context(), truckID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, fleetsvc.ErrInvalidStatus):
			return utils.BadRequestResponse(c, "Status must be one of: active, inactive, maintenance")
		case errors.Is(err, fleetsvc.ErrTruckNotFound):
			return utils.NotFoundResponse(c, "Truck not found")
		}
		logger.Error("Failed to update truck status",
			logger.String("truck_id", truckID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update truck status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", truck)
}
