package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"pdf-presenter/internal/services"
)

// WebSocketHandler upgrades display-surface connections and hands them
// to the sync service.
type WebSocketHandler struct {
	wsService *services.WebSocketService
	upgrader  websocket.Upgrader
}

// NewWebSocketHandler creates a new WebSocket handler.
func NewWebSocketHandler(wsService *services.WebSocketService) *WebSocketHandler {
	return &WebSocketHandler{
		wsService: wsService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The presenter is a local, single-user tool; surfaces may
			// be opened from file:// or another host on the LAN.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleWebSocket upgrades the connection for a display surface.
// GET /ws?view=audience|presenter
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	h.wsService.HandleConnection(conn, r.URL.Query().Get("view"))
}
