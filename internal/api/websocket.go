package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/amterp/paintbox/internal/model"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Message types sent to clients.
const (
	MessageConnected = "connected"
	MessageItems     = "items"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Local tool; the page may be opened from any host alias
	},
}

// WebSocketHub manages WebSocket connections. It is the web frontend's
// renderer: every render is pushed to every connected page.
type WebSocketHub struct {
	log     *zap.Logger
	mu      sync.RWMutex
	clients map[*WebSocketClient]bool
	last    []byte // Most recent items message, replayed to new clients
}

// WebSocketClient represents a connected WebSocket client.
type WebSocketClient struct {
	hub  *WebSocketHub
	conn *websocket.Conn
	send chan []byte
}

// WebSocketMessage is the JSON message sent to clients.
type WebSocketMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ItemsPayload is the data of an items message.
type ItemsPayload struct {
	Items []model.PaintItem `json:"items"`
}

// NewWebSocketHub creates a new WebSocket hub.
func NewWebSocketHub(log *zap.Logger) *WebSocketHub {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebSocketHub{
		log:     log,
		clients: make(map[*WebSocketClient]bool),
	}
}

// Render implements inventory.Renderer by broadcasting the full list.
// Pages replace their list with it, showing the empty message when it has
// no items.
func (h *WebSocketHub) Render(items []model.PaintItem) {
	if items == nil {
		items = []model.PaintItem{}
	}

	data, err := json.Marshal(WebSocketMessage{
		Type: MessageItems,
		Data: ItemsPayload{Items: items},
	})
	if err != nil {
		h.log.Error("failed to marshal items", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.last = data
	h.mu.Unlock()

	h.broadcast(data)
}

// broadcast sends a message to all connected clients.
func (h *WebSocketHub) broadcast(data []byte) {
	h.mu.RLock()
	clients := make([]*WebSocketClient, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		h.trySend(client, data)
	}
}

// trySend attempts to send data to a client, handling the case where
// the client's channel was closed between snapshot and send.
func (h *WebSocketHub) trySend(client *WebSocketClient, data []byte) {
	defer func() {
		// Channel was closed by removeClient; client already cleaned up
		recover()
	}()

	select {
	case client.send <- data:
	default:
		// Client buffer full, drop it; the page reconnects and gets a fresh list
		h.removeClient(client)
	}
}

func (h *WebSocketHub) addClient(client *WebSocketClient) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
}

func (h *WebSocketHub) removeClient(client *WebSocketClient) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	h.mu.Unlock()
}

// greet queues the connected message and the latest list for a new client.
func (h *WebSocketHub) greet(client *WebSocketClient) {
	welcome, err := json.Marshal(WebSocketMessage{
		Type: MessageConnected,
		Data: map[string]any{"message": "Live updates enabled"},
	})
	if err == nil {
		h.trySend(client, welcome)
	}

	h.mu.RLock()
	last := h.last
	h.mu.RUnlock()
	if last != nil {
		h.trySend(client, last)
	}
}

// ServeWS handles WebSocket connection requests.
func (h *WebSocketHub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &WebSocketClient{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 64),
	}

	h.addClient(client)
	h.greet(client)

	go client.writePump()
	go client.readPump()
}

// readPump reads messages from the WebSocket connection.
// Clients don't send anything meaningful, but reading detects disconnects.
func (c *WebSocketClient) readPump() {
	defer func() {
		// Closing send signals writePump to exit; writePump closes the connection
		c.hub.removeClient(c)
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Debug("websocket read error", zap.Error(err))
			}
			return
		}
	}
}

// writePump writes messages to the WebSocket connection.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(30 * time.Second) // Ping interval
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// One frame per message so the page always parses complete JSON
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *WebSocketHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CloseAll disconnects every client.
func (h *WebSocketHub) CloseAll() {
	h.mu.Lock()
	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
	h.mu.Unlock()
}
