package handler

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
	"github.com/an-ant0/digital-waste-management/services/fleet/handler/http"
	"github.com/an-ant0/digital-waste-management/services/fleet/handler/nats"
	"github.com/an-ant0/digital-waste-management/services/fleet/handler/websocket"
)

// Handler coordinates all protocol handlers for the fleet service
type Handler struct {
	truckHandler *http.TruckHandler
	authHandler  *http.AuthHandler
	wsHandler    *websocket.WebSocketHandler
	natsHandler  *nats.NatsHandler
	cfg          *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	truckHandler *http.TruckHandler,
	authHandler *http.AuthHandler,
	wsHandler *websocket.WebSocketHandler,
	natsHandler *nats.NatsHandler,
	cfg *models.Config,
) *Handler {

	return &Handler{
		truckHandler: truckHandler,
		authHandler:  authHandler,
		wsHandler:    wsHandler,
		natsHandler:  natsHandler,
		cfg:          cfg,
	}
}

// InitNATSConsumers starts the event consumers that feed the websocket fan-out
func (h *Handler) InitNATSConsumers() error {
	return h.natsHandler.InitNATSConsumers()
}

// GetJWTMiddleware returns the configured JWT middleware for driver requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(h.cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if truckID, exists := claims["client_id"]; exists {
							c.Set("truck_id", truckID)
						}
						if role, exists := claims["role"]; exists {
							c.Set("role", role)
						}
					}
				}
			}
		},
	})
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	e.POST("/trucks/register", h.truckHandler.RegisterTruck)
	e.POST("/trucks/auth", h.authHandler.Authenticate)

	// Viewer routes: the citizen app polls these without a session
	e.GET("/trucks/locations/all", h.truckHandler.ListActiveTrucks)
	e.GET("/trucks/nearby", h.truckHandler.NearbyTrucks)
	e.GET("/trucks/:truckId/location", h.truckHandler.GetTruckLocation)

	// Driver routes protected with JWT middleware
	protected := e.Group("/trucks", h.GetJWTMiddleware())
	protected.PUT("/:truckId/location", h.truckHandler.UpdateLocation)
	protected.PATCH("/:truckId/status", h.truckHandler.UpdateStatus)

	// WebSocket feed: the connection manager performs its own token check
	// so browser clients can pass the token as a query parameter
	e.GET("/ws/fleet", h.wsHandler.HandleWebSocket)
}
