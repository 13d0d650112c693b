package websocket

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/an-ant0/digital-waste-management/internal/pkg/constants"
	"github.com/an-ant0/digital-waste-management/internal/pkg/logger"
	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
	pkgws "github.com/an-ant0/digital-waste-management/internal/pkg/websocket"
)

// WebSocketHandler manages viewer connections to the fleet feed
type WebSocketHandler struct {
	manager *pkgws.Manager
}

// NewWebSocketHandler creates a new websocket handler backed by a
// connection manager
func NewWebSocketHandler(manager *pkgws.Manager) *WebSocketHandler {
	return &WebSocketHandler{manager: manager}
}

// HandleWebSocket upgrades an HTTP request and keeps the connection
// registered for fleet broadcasts until the client disconnects
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClientConnection)
}

func (h *WebSocketHandler) handleClientConnection(client *models.WebSocketClient, conn *websocket.Conn) error {
	client.Conn = conn
	connID := h.manager.AddClient(client)
	defer h.manager.RemoveClient(connID)

	logger.Info("Fleet viewer connected",
		logger.String("client_id", client.ClientID),
		logger.String("role", client.Role))

	return h.messageLoop(client, conn)
}

// messageLoop drains client messages. The feed is server to client;
// viewers only send keepalive pings.
func (h *WebSocketHandler) messageLoop(client *models.WebSocketClient, conn *websocket.Conn) error {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Unexpected websocket close",
					logger.String("client_id", client.ClientID),
					logger.Err(err))
			}
			return nil
		}

		var msg models.WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "Invalid message format")
			continue
		}

		switch msg.Event {
		case constants.EventPing:
			h.manager.SendMessage(conn, constants.EventPong, nil)
		default:
			h.manager.SendErrorMessage(conn, constants.ErrorUnknownEvent, "Unknown event: "+msg.Event)
		}
	}
}

// Broadcast fans an event out to every connected viewer
func (h *WebSocketHandler) Broadcast(event string, data interface{}) {
	h.manager.Broadcast(event, data)
}
