package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/an-ant0/digital-waste-management/internal/pkg/logger"
	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
	"github.com/an-ant0/digital-waste-management/internal/utils"
	fleetsvc "github.com/an-ant0/digital-waste-management/services/fleet"
)

// AuthHandler handles driver authentication requests
type AuthHandler struct {
	truckUC fleetsvc.TruckUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(truckUC fleetsvc.TruckUC) *AuthHandler {
	return &AuthHandler{truckUC: truckUC}
}

// Authenticate exchanges a truck ID and access code for a session token
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var req models.TruckAuthRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.truckUC.Authenticate(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, fleetsvc.ErrMissingFields):
			return utils.BadRequestResponse(c, "truck_id and access_code are required")
		case errors.Is(err, fleetsvc.ErrTruckNotFound), errors.Is(err, fleetsvc.ErrInvalidAccessCode):
			// Unknown truck and wrong code look the same to the caller
			return utils.UnauthorizedResponse(c, "Invalid truck ID or access code")
		}
		logger.Error("Failed to authenticate truck",
			logger.String("truck_id", req.TruckID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to authenticate truck")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Authentication successful", resp)
}
