package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/an-ant0/digital-waste-management/internal/pkg/logger"
	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
)

// client pairs a connected viewer with a write lock. Gorilla connections
// allow at most one concurrent writer, and broadcasts run off the reader
// goroutine.
type client struct {
	info *models.WebSocketClient
	mu   sync.Mutex
}

// Manager manages WebSocket connections and viewer state
type Manager struct {
	sync.RWMutex
	clients  map[string]*client
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*client),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	info, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(info, ws)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		// Browsers cannot set headers on websocket handshakes, so a token
		// query parameter is accepted as well.
		authHeader = "Bearer " + c.QueryParam("token")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization is required")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		ClientID: claims.ClientID,
		Role:     claims.Role,
	}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// AddClient registers a connection and returns its registry key. The key is
// a fresh connection ID, not the JWT client_id: several viewers may share a
// token and each connection must be tracked on its own.
func (m *Manager) AddClient(info *models.WebSocketClient) string {
	connID := uuid.NewString()
	m.Lock()
	defer m.Unlock()
	m.clients[connID] = &client{info: info}
	return connID
}

// RemoveClient deregisters the connection added under connID
func (m *Manager) RemoveClient(connID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, connID)
}

// GetClient returns the client registered under a connection ID
func (m *Manager) GetClient(connID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	cl, exists := m.clients[connID]
	if !exists {
		return nil, false
	}
	return cl.info, true
}

// ClientCount returns the number of connected clients
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// SendMessage sends a message to a WebSocket connection
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // Handle nil connection gracefully for tests
	}

	msg, err := buildMessage(event, data)
	if err != nil {
		return err
	}

	return conn.WriteJSON(msg)
}

// SendErrorMessage sends an error message to a WebSocket connection
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, "error", models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// NotifyClient sends an event to every connection authenticated as clientID
func (m *Manager) NotifyClient(clientID string, event string, data interface{}) {
	m.RLock()
	targets := make([]*client, 0, 1)
	for _, cl := range m.clients {
		if cl.info.ClientID == clientID {
			targets = append(targets, cl)
		}
	}
	m.RUnlock()

	for _, cl := range targets {
		if err := m.writeClient(cl, event, data); err != nil {
			logger.Warn("Error sending message to client",
				logger.String("client_id", clientID),
				logger.Err(err))
		}
	}
}

// Broadcast fans an event out to every connected client. Delivery is
// fire-and-forget: a failed write is logged and does not affect the
// other clients.
func (m *Manager) Broadcast(event string, data interface{}) {
	m.RLock()
	targets := make([]*client, 0, len(m.clients))
	for _, cl := range m.clients {
		targets = append(targets, cl)
	}
	m.RUnlock()

	for _, cl := range targets {
		if err := m.writeClient(cl, event, data); err != nil {
			logger.Warn("Error broadcasting to client",
				logger.String("client_id", cl.info.ClientID),
				logger.String("event", event),
				logger.Err(err))
		}
	}
}

// writeClient serializes writes to one client's connection
func (m *Manager) writeClient(cl *client, event string, data interface{}) error {
	if cl.info.Conn == nil {
		return nil
	}

	msg, err := buildMessage(event, data)
	if err != nil {
		return err
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.info.Conn.WriteJSON(msg)
}

func buildMessage(event string, data interface{}) (*models.WSMessage, error) {
	rawData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshaling message data: %w", err)
	}

	return &models.WSMessage{
		Event: event,
		Data:  rawData,
	}, nil
}
