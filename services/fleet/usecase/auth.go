package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
	fleetsvc "github.com/an-ant0/digital-waste-management/services/fleet"
)

// Authenticate verifies a driver's access code against the registry and
// issues a session token for location reporting
func (s *TruckUC) Authenticate(ctx context.Context, req *models.TruckAuthRequest) (*models.TruckAuthResponse, error) {
	if req.TruckID == "" || req.AccessCode == "" {
		return nil, fleetsvc.ErrMissingFields
	}

	truck, err := s.repo.GetTruckByID(ctx, req.TruckID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(truck.AccessCodeHash), []byte(req.AccessCode)); err != nil {
		return nil, fleetsvc.ErrInvalidAccessCode
	}

	expiresAt := time.Now().Add(time.Duration(s.cfg.JWT.Expiration) * time.Minute)
	claims := models.WebSocketClaims{
		ClientID: truck.TruckID,
		Role:     "driver",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, err
	}

	return &models.TruckAuthResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}
