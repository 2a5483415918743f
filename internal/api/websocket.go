package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/mohamedtouja/multipoles/internal/simulator"
)

// WebSocket message types for the simulator feed
const (
	// Client -> Server messages
	MsgTypePing      = "ping"
	MsgTypeSubscribe = "subscribe"

	// Server -> Client messages
	MsgTypePong  = "pong"
	MsgTypeLoad  = "load"
	MsgTypeError = "error"
)

// WebSocket message structure
type WSMessage struct {
	Type      string          `json:"type"`
	ID        string          `json:"id,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

// Subscribe payload: narrows the feed to one session
type SubscribePayload struct {
	SessionID string `json:"sessionId"`
}

// WebSocketHandler pushes simulator load events to connected clients so the
// viewer can show load progress and warnings without polling
type WebSocketHandler struct {
	manager  *simulator.Manager
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(manager *simulator.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true // Same-origin enforcement happens at the proxy
			},
		},
	}
}

// HandleSimulatorFeed upgrades the connection and streams load events.
// An optional ?sessionId= query narrows the feed to one session.
func (h *WebSocketHandler) HandleSimulatorFeed(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return fmt.Errorf("websocket upgrade failed: %w", err)
	}
	defer conn.Close()

	sessionFilter := c.QueryParam("sessionId")

	events := h.manager.Events().Subscribe()
	defer h.manager.Events().Unsubscribe(events)

	// Reader goroutine: pings and subscribe messages only
	incoming := make(chan WSMessage)
	done := make(chan struct{})
	go func() {
		defer close(incoming)
		for {
			var msg WSMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			select {
			case incoming <- msg:
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if sessionFilter != "" && ev.SessionID != sessionFilter {
				continue
			}
			if err := h.writeEvent(conn, ev); err != nil {
				return nil
			}

		case msg, ok := <-incoming:
			if !ok {
				return nil
			}
			switch msg.Type {
			case MsgTypePing:
				if err := h.writeMessage(conn, WSMessage{Type: MsgTypePong, ID: msg.ID}); err != nil {
					return nil
				}
			case MsgTypeSubscribe:
				var payload SubscribePayload
				if err := json.Unmarshal(msg.Payload, &payload); err != nil {
					h.writeMessage(conn, WSMessage{Type: MsgTypeError, ID: msg.ID})
					continue
				}
				sessionFilter = payload.SessionID
			}
		}
	}
}

func (h *WebSocketHandler) writeEvent(conn *websocket.Conn, ev simulator.LoadEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return h.writeMessage(conn, WSMessage{Type: MsgTypeLoad, Payload: payload})
}

func (h *WebSocketHandler) writeMessage(conn *websocket.Conn, msg WSMessage) error {
	if msg.Timestamp == 0 {
		msg.Timestamp = time.Now().UnixMilli()
	}
	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteJSON(msg)
}
