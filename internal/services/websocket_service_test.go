package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-presenter/internal/presenter"
	"pdf-presenter/internal/slides"
)

func newTestService(t *testing.T) (*WebSocketService, *httptest.Server) {
	t.Helper()

	deck, err := slides.Build(6, nil)
	require.NoError(t, err)

	service := NewWebSocketService()
	controller, err := presenter.New(deck, service)
	require.NoError(t, err)
	service.SetController(controller)
	go service.Run()

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		service.HandleConnection(conn, r.URL.Query().Get("view"))
	}))
	t.Cleanup(server.Close)

	return service, server
}

func dial(t *testing.T, server *httptest.Server, view string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?view=" + view
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readDisplay(t *testing.T, conn *websocket.Conn) presenter.DisplayUpdate {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type string                  `json:"type"`
		Data presenter.DisplayUpdate `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	require.Equal(t, "display", msg.Type)
	return msg.Data
}

func sendCommand(t *testing.T, conn *websocket.Conn, action string, target int) {
	t.Helper()
	msg := map[string]any{"type": "command", "action": action}
	if target != 0 {
		msg["target"] = target
	}
	require.NoError(t, conn.WriteJSON(msg))
}

func TestNewClientReceivesCurrentState(t *testing.T) {
	_, server := newTestService(t)

	conn := dial(t, server, "presenter")
	update := readDisplay(t, conn)
	assert.Equal(t, 1, update.Slide)
	assert.Equal(t, 3, update.SlideCount)
	assert.Equal(t, presenter.RenderTarget{Kind: presenter.TargetPage, Page: 0}, update.Audience)
}

func TestCommandsAreBroadcastToAllSurfaces(t *testing.T) {
	_, server := newTestService(t)

	audience := dial(t, server, "audience")
	notes := dial(t, server, "presenter")
	readDisplay(t, audience) // initial snapshots
	readDisplay(t, notes)

	// Either surface may drive; both see the result.
	sendCommand(t, audience, "next", 0)
	assert.Equal(t, 2, readDisplay(t, audience).Slide)
	assert.Equal(t, 2, readDisplay(t, notes).Slide)

	sendCommand(t, notes, "goto", 3)
	assert.Equal(t, 3, readDisplay(t, audience).Slide)
	assert.Equal(t, 3, readDisplay(t, notes).Slide)
}

func TestBlankRoundTrip(t *testing.T) {
	_, server := newTestService(t)

	conn := dial(t, server, "presenter")
	readDisplay(t, conn)

	sendCommand(t, conn, "blank", 0)
	update := readDisplay(t, conn)
	assert.True(t, update.Blanked)
	assert.Equal(t, presenter.TargetBlank, update.Audience.Kind)
	assert.Equal(t, presenter.TargetPage, update.Notes.Kind)

	sendCommand(t, conn, "blank", 0)
	assert.False(t, readDisplay(t, conn).Blanked)
}

func TestInvalidMessagesAreIgnored(t *testing.T) {
	_, server := newTestService(t)

	conn := dial(t, server, "presenter")
	readDisplay(t, conn)

	// Garbage and unknown message types must not kill the session.
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "other"}))

	sendCommand(t, conn, "next", 0)
	assert.Equal(t, 2, readDisplay(t, conn).Slide)
}
