package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MeKo-Tech/tictoc/pkg/timing"
)

// WebSocket upgrader with reasonable defaults.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The stats stream is read-only; any origin may subscribe.
		return true
	},
}

// ReportMessage is one timer report pushed to WebSocket clients.
type ReportMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Hub fans timer reports out to every connected WebSocket client.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

// Broadcast sends one rendered report to every connected client. Clients
// whose connection fails are dropped.
func (h *Hub) Broadcast(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) == 0 {
		return
	}
	msg := ReportMessage{Type: "report", Text: text}
	for conn := range h.clients {
		if err := conn.WriteJSON(msg); err != nil {
			slog.Debug("Dropping WebSocket client", "error", err)
			_ = conn.Close()
			delete(h.clients, conn)
		}
	}
	reportsBroadcast.Inc()
}

// Sink adapts the hub to the timing.Sink capability.
func (h *Hub) Sink() timing.Sink {
	return h.Broadcast
}

// websocketHandler upgrades the connection and streams timer reports until
// the client goes away.
func (s *Server) websocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade connection to WebSocket", "error", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	websocketConnections.Inc()
	defer websocketConnections.Dec()

	s.hub.add(conn)
	defer s.hub.remove(conn)

	slog.Info("WebSocket connection established", "remote_addr", r.RemoteAddr)

	// Reports flow one way; the read loop only notices disconnects.
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
