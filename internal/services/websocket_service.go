package services

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"pdf-presenter/internal/navigation"
	"pdf-presenter/internal/presenter"
)

// Client is one connected display surface. View is "audience" or
// "presenter" and is informational only: both surfaces feed the same
// global command stream and share one cursor.
type Client struct {
	ID   string
	View string

	conn    *websocket.Conn
	send    chan []byte
	service *WebSocketService
}

// WebSocketService tracks connected clients, forwards their commands
// to the presentation controller, and broadcasts every display update
// to all of them. It implements presenter.Display.
type WebSocketService struct {
	controller *presenter.Controller

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

// NewWebSocketService creates a new WebSocket service.
func NewWebSocketService() *WebSocketService {
	return &WebSocketService{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 8),
	}
}

// SetController attaches the presentation controller that client
// commands are dispatched to.
func (s *WebSocketService) SetController(controller *presenter.Controller) {
	s.controller = controller
}

// commandMessage is the inbound wire format.
type commandMessage struct {
	Type   string            `json:"type"`
	Action navigation.Action `json:"action"`
	Target int               `json:"target,omitempty"`
}

// displayMessage is the outbound wire format.
type displayMessage struct {
	Type string                  `json:"type"`
	Data presenter.DisplayUpdate `json:"data"`
}

// Run processes client registration and broadcasts. It owns the
// clients map; run it in its own goroutine.
func (s *WebSocketService) Run() {
	for {
		select {
		case client := <-s.register:
			s.clients[client] = true
			log.Printf("Client connected: id=%s view=%s", client.ID, client.View)
			// Bring the new surface up to date immediately.
			if s.controller != nil {
				if data, err := marshalDisplay(s.controller.Current()); err == nil {
					client.send <- data
				}
			}

		case client := <-s.unregister:
			if _, ok := s.clients[client]; ok {
				delete(s.clients, client)
				close(client.send)
				log.Printf("Client disconnected: id=%s view=%s", client.ID, client.View)
			}

		case message := <-s.broadcast:
			for client := range s.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer: drop it rather than stall the
					// presentation for everyone else.
					delete(s.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Show broadcasts a display update to every connected surface.
func (s *WebSocketService) Show(update presenter.DisplayUpdate) {
	data, err := marshalDisplay(update)
	if err != nil {
		log.Printf("Failed to marshal display update: %v", err)
		return
	}
	s.broadcast <- data
}

func marshalDisplay(update presenter.DisplayUpdate) ([]byte, error) {
	return json.Marshal(displayMessage{Type: "display", Data: update})
}

// HandleConnection adopts an upgraded WebSocket connection and starts
// its read/write pumps.
func (s *WebSocketService) HandleConnection(conn *websocket.Conn, view string) {
	if view != "audience" && view != "presenter" {
		view = "presenter"
	}
	client := &Client{
		ID:      uuid.New().String(),
		View:    view,
		conn:    conn,
		send:    make(chan []byte, 8),
		service: s,
	}
	s.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump translates inbound messages into navigation commands.
func (c *Client) readPump() {
	defer func() {
		c.service.unregister <- c
		c.conn.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Client %s read error: %v", c.ID, err)
			}
			return
		}

		var msg commandMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("Client %s sent invalid JSON: %v", c.ID, err)
			continue
		}
		if msg.Type != "command" {
			continue
		}
		if c.service.controller != nil {
			c.service.controller.Handle(navigation.Command{Action: msg.Action, Target: msg.Target})
		}
	}
}

// writePump delivers queued messages to the connection.
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	// Hub closed the channel: say goodbye properly.
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
