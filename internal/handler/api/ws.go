package api

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	xlogger "mockshot/pkg/logger"
)

// PreviewEvent is pushed to websocket subscribers whenever a session's
// drafts change, carrying the freshly rendered preview documents.
type PreviewEvent struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId"`
	Chat      string      `json:"chat"`
	Trading   string      `json:"trading"`
	Session   interface{} `json:"session"`
}

// Hub fans preview events out to the websocket subscribers of a session.
type Hub struct {
	log      *xlogger.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[string]map[*websocket.Conn]bool
}

func NewHub(log *xlogger.Logger) *Hub {
	return &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Form clients come from anywhere; the API is already CORS-open.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns: make(map[string]map[*websocket.Conn]bool),
	}
}

// Serve upgrades the request and keeps the connection registered until the
// peer goes away. Inbound frames are drained and ignored.
func (h *Hub) Serve(c echo.Context, sessionID string) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	h.mu.Lock()
	if h.conns[sessionID] == nil {
		h.conns[sessionID] = make(map[*websocket.Conn]bool)
	}
	h.conns[sessionID][conn] = true
	h.mu.Unlock()

	h.log.Debug("ws subscriber connected", xlogger.String("session", sessionID))

	defer func() {
		h.mu.Lock()
		delete(h.conns[sessionID], conn)
		if len(h.conns[sessionID]) == 0 {
			delete(h.conns, sessionID)
		}
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

// Broadcast sends the event to every subscriber of the session. Writes are
// serialized under the hub lock; dead connections are dropped.
func (h *Hub) Broadcast(sessionID string, event PreviewEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns[sessionID] {
		if err := conn.WriteJSON(event); err != nil {
			h.log.Debug("ws write failed, dropping subscriber",
				xlogger.String("session", sessionID), xlogger.Error(err))
			_ = conn.Close()
			delete(h.conns[sessionID], conn)
		}
	}
}

// Close tears down every subscriber connection.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conns := range h.conns {
		for conn := range conns {
			_ = conn.Close()
		}
		delete(h.conns, id)
	}
}
