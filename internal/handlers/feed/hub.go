// Package feed pushes combat session changes and notifications to browsers
// over websockets
package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-campaign-api/internal/pkg/clock"
	combatsessions "github.com/KirkDiggler/rpg-campaign-api/internal/repositories/combat_sessions"
	"github.com/KirkDiggler/rpg-campaign-api/internal/services/notification"
)

// Message types
const (
	MessageTypeConnected      = "connected"
	MessageTypeSessionCreated = "session_created"
	MessageTypeSessionUpdated = "session_updated"
	MessageTypeSessionDeleted = "session_deleted"
	MessageTypeNotification   = "notification"
)

const broadcastBuffer = 256

// Message is one frame of the feed
type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"session_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	// Timestamp in unix milliseconds
	Timestamp int64 `json:"timestamp"`
}

// Hub tracks connected clients and fans messages out to them
type Hub struct {
	clock clock.Clock

	mu      sync.RWMutex
	clients map[string]*Client

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

// NewHub creates a hub; a nil clock uses the real clock
func NewHub(c clock.Clock) *Hub {
	if c == nil {
		c = clock.New()
	}
	return &Hub{
		clock:      c,
		clients:    make(map[string]*Client),
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run serves registrations and broadcasts until ctx is done, then
// disconnects every client
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		case data := <-h.broadcast:
			h.broadcastData(data)
		}
	}
}

// Count returns the number of connected clients
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues msg for every client. A full queue drops the message.
func (h *Hub) Broadcast(msg *Message) {
	if msg.Timestamp == 0 {
		msg.Timestamp = h.clock.Now().UnixMilli()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to encode feed message", "type", msg.Type, "error", err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		slog.Warn("feed broadcast queue full, dropping message", "type", msg.Type)
	}
}

// BroadcastNotification pushes a notification to every client
func (h *Hub) BroadcastNotification(n notification.Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		slog.Error("failed to encode notification", "error", err)
		return
	}
	h.Broadcast(&Message{
		Type:      MessageTypeNotification,
		Data:      data,
		Timestamp: n.Timestamp.UnixMilli(),
	})
}

// SubscribeSessionEvents forwards repository change events to the feed. The
// returned function removes the subscriptions.
func (h *Hub) SubscribeSessionEvents(bus events.EventBus) func() error {
	ids := make([]string, 0, len(combatsessions.EventTypes))
	for _, eventType := range combatsessions.EventTypes {
		ids = append(ids, bus.SubscribeFunc(eventType, 10, h.handleSessionEvent))
	}

	return func() error {
		var firstErr error
		for _, id := range ids {
			if err := bus.Unsubscribe(id); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}
}

func (h *Hub) handleSessionEvent(_ context.Context, event events.Event) error {
	session, ok := combatsessions.SessionFromEvent(event)
	if !ok {
		return nil
	}

	msg := &Message{SessionID: session.ID}
	switch event.Type() {
	case combatsessions.EventSessionCreated:
		msg.Type = MessageTypeSessionCreated
	case combatsessions.EventSessionUpdated:
		msg.Type = MessageTypeSessionUpdated
	case combatsessions.EventSessionDeleted:
		msg.Type = MessageTypeSessionDeleted
		h.Broadcast(msg)
		return nil
	default:
		return nil
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	msg.Data = data
	h.Broadcast(msg)
	return nil
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()

	slog.Debug("feed client connected", "client_id", client.ID)

	data, err := json.Marshal(&Message{
		Type:      MessageTypeConnected,
		Data:      json.RawMessage(`{"client_id":"` + client.ID + `"}`),
		Timestamp: h.clock.Now().UnixMilli(),
	})
	if err != nil {
		return
	}
	client.enqueue(data)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client.ID]; ok {
		delete(h.clients, client.ID)
		close(client.send)
	}
	h.mu.Unlock()

	slog.Debug("feed client disconnected", "client_id", client.ID)
}

// broadcastData queues data for every client. A client whose send buffer is
// full is dropped so the browser reconnects and starts from a fresh snapshot.
func (h *Hub) broadcastData(data []byte) {
	var slow []*Client

	h.mu.RLock()
	for _, client := range h.clients {
		if !client.enqueue(data) {
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		slog.Warn("feed client send buffer full, disconnecting", "client_id", client.ID)
		h.unregisterClient(client)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, client := range h.clients {
		close(client.send)
		delete(h.clients, id)
	}
}
