package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amterp/paintbox/internal/model"
	"github.com/gorilla/websocket"
)

func newTestClient(hub *WebSocketHub, buffer int) *WebSocketClient {
	return &WebSocketClient{hub: hub, send: make(chan []byte, buffer)}
}

func TestWebSocketHub_AddRemoveClient(t *testing.T) {
	hub := NewWebSocketHub(nil)
	client := newTestClient(hub, 10)

	hub.addClient(client)
	if hub.ClientCount() != 1 {
		t.Errorf("Expected 1 client, got %d", hub.ClientCount())
	}

	hub.removeClient(client)
	if hub.ClientCount() != 0 {
		t.Errorf("Expected 0 clients, got %d", hub.ClientCount())
	}

	// Second remove should not panic on the closed channel
	hub.removeClient(client)
}

func TestWebSocketHub_RenderBroadcasts(t *testing.T) {
	hub := NewWebSocketHub(nil)
	client1 := newTestClient(hub, 10)
	client2 := newTestClient(hub, 10)
	hub.addClient(client1)
	hub.addClient(client2)

	items := []model.PaintItem{{Name: "Red Oxide", Color: "#aa3311"}}
	hub.Render(items)

	for i, client := range []*WebSocketClient{client1, client2} {
		got := receiveItems(t, client)
		if len(got) != 1 || got[0] != items[0] {
			t.Errorf("client %d got %v", i+1, got)
		}
	}
}

func TestWebSocketHub_RenderEmptyIsArray(t *testing.T) {
	hub := NewWebSocketHub(nil)
	client := newTestClient(hub, 10)
	hub.addClient(client)

	hub.Render(nil)

	raw := <-client.send
	if !strings.Contains(string(raw), `"items":[]`) {
		t.Errorf("empty render should send an empty array, got %s", raw)
	}
}

func TestWebSocketHub_BroadcastToRemovedClient(t *testing.T) {
	hub := NewWebSocketHub(nil)
	client := newTestClient(hub, 10)

	hub.addClient(client)
	hub.removeClient(client)

	// This should not panic even though client's channel is closed
	hub.Render([]model.PaintItem{})
}

func TestWebSocketHub_TrySendRecovery(t *testing.T) {
	hub := NewWebSocketHub(nil)
	client := newTestClient(hub, 10)

	close(client.send)

	// trySend should recover from the send on a closed channel
	hub.trySend(client, []byte(`test`))
}

func TestWebSocketHub_BroadcastFullBuffer(t *testing.T) {
	hub := NewWebSocketHub(nil)
	client := newTestClient(hub, 1)
	hub.addClient(client)

	client.send <- []byte("first")
	hub.broadcast([]byte("second"))

	if hub.ClientCount() != 0 {
		t.Errorf("Expected client to be removed due to full buffer, got %d clients", hub.ClientCount())
	}
}

func TestWebSocketHub_GreetReplaysLastRender(t *testing.T) {
	hub := NewWebSocketHub(nil)
	hub.Render([]model.PaintItem{{Name: "Sap Green", Color: "#2e6b3f"}})

	client := newTestClient(hub, 10)
	hub.addClient(client)
	hub.greet(client)

	var welcome WebSocketMessage
	if err := json.Unmarshal(<-client.send, &welcome); err != nil {
		t.Fatalf("Failed to unmarshal welcome: %v", err)
	}
	if welcome.Type != MessageConnected {
		t.Errorf("first message type = %q, want %q", welcome.Type, MessageConnected)
	}

	got := receiveItems(t, client)
	if len(got) != 1 || got[0].Name != "Sap Green" {
		t.Errorf("replayed items = %v", got)
	}
}

func TestWebSocketHub_CloseAll(t *testing.T) {
	hub := NewWebSocketHub(nil)
	client := newTestClient(hub, 10)
	hub.addClient(client)

	hub.CloseAll()

	if hub.ClientCount() != 0 {
		t.Errorf("Expected 0 clients, got %d", hub.ClientCount())
	}
	if _, ok := <-client.send; ok {
		t.Error("send channel should be closed")
	}
}

func TestWebSocketHub_ServeWS(t *testing.T) {
	api := setupTestAPI(t, model.PaintItem{Name: "Red Oxide", Color: "#aa3311"})
	srv := httptest.NewServer(api.mux)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	readMessage := func() WebSocketMessage {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg WebSocketMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("ReadJSON failed: %v", err)
		}
		return msg
	}

	if msg := readMessage(); msg.Type != MessageConnected {
		t.Fatalf("first message type = %q", msg.Type)
	}
	if msg := readMessage(); msg.Type != MessageItems {
		t.Fatalf("second message type = %q", msg.Type)
	}

	api.request("POST", "/api/v1/items", AddItemRequest{Name: "Ultramarine", Color: "#1f4e8c"})

	msg := readMessage()
	if msg.Type != MessageItems {
		t.Fatalf("message type = %q, want %q", msg.Type, MessageItems)
	}
	data, _ := json.Marshal(msg.Data)
	var payload ItemsPayload
	json.Unmarshal(data, &payload)
	if len(payload.Items) != 2 || payload.Items[1].Name != "Ultramarine" {
		t.Errorf("pushed items = %v", payload.Items)
	}
}
