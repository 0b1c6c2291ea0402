package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Event types pushed to clients
const (
	EventNotification = "notification"
)

// Event represents a message pushed to a user over WebSocket
type Event struct {
	// Type of event, e.g. "notification"
	Type string `json:"type"`

	// Payload of the event
	Data interface{} `json:"data"`

	// Timestamp when the event was emitted
	Timestamp time.Time `json:"timestamp"`
}

// Message is one event payload addressed to a user
type Message struct {
	UserID int64
	Data   interface{}
}

type delivery struct {
	userID int64
	data   []byte
}

// Hub maintains the set of active clients and pushes events to every connection of a user
type Hub struct {
	// Registered clients organized by user ID
	clients map[int64]map[*Client]bool

	// Outbound batches, one entry per addressed user
	push chan []delivery

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	done chan struct{}

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		push:       make(chan []delivery, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[int64]map[*Client]bool),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles client registrations and deliveries until ctx is cancelled
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

		case batch := <-h.push:
			for _, d := range batch {
				h.deliver(d)
			}
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]bool)
	}
	h.clients[client.userID][client] = true

	h.logger.Info().
		Int64("userID", client.userID).
		Str("addr", client.remoteAddr()).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	conns, ok := h.clients[client.userID]
	if !ok {
		return
	}
	if _, ok := conns[client]; !ok {
		return
	}

	delete(conns, client)
	close(client.send)
	if len(conns) == 0 {
		delete(h.clients, client.userID)
	}

	h.logger.Info().
		Int64("userID", client.userID).
		Str("addr", client.remoteAddr()).
		Msg("Client unregistered")
}

// deliver sends data to every connection of the user, dropping clients whose buffer is full
func (h *Hub) deliver(d delivery) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.clients[d.userID]
	if !ok {
		h.logger.Debug().Int64("userID", d.userID).Msg("No open connections for user")
		return
	}

	for client := range conns {
		select {
		case client.send <- d.data:
		default:
			h.logger.Warn().Int64("userID", d.userID).Msg("Dropping slow WebSocket client")
			h.removeLocked(client)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, conns := range h.clients {
		for client := range conns {
			h.removeLocked(client)
		}
	}
}

// PushToUser queues an event for every open connection of userID.
// It returns false when the user has no open connection or the event was dropped.
func (h *Hub) PushToUser(userID int64, eventType string, data interface{}) bool {
	return h.PushToUsers(eventType, []Message{{UserID: userID, Data: data}}) == 1
}

// PushToUsers queues one event per message as a single batch and returns how many were queued.
// Messages for users without an open connection are skipped before queueing.
// It never blocks: when the queue is full the batch is dropped.
func (h *Hub) PushToUsers(eventType string, msgs []Message) int {
	h.mu.RLock()
	online := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if len(h.clients[m.UserID]) > 0 {
			online = append(online, m)
		}
	}
	h.mu.RUnlock()

	if len(online) == 0 {
		return 0
	}

	now := time.Now()
	batch := make([]delivery, 0, len(online))
	for _, m := range online {
		payload, err := json.Marshal(Event{Type: eventType, Data: m.Data, Timestamp: now})
		if err != nil {
			h.logger.Error().Err(err).Int64("userID", m.UserID).Msg("Failed to marshal event")
			continue
		}
		batch = append(batch, delivery{userID: m.UserID, data: payload})
	}
	if len(batch) == 0 {
		return 0
	}

	select {
	case h.push <- batch:
		return len(batch)
	default:
		h.logger.Warn().Int("count", len(batch)).Msg("Hub queue full, events dropped")
		return 0
	}
}

// GetClientsCount returns the number of open connections of a user
func (h *Hub) GetClientsCount(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Done is closed once Run has returned
func (h *Hub) Done() <-chan struct{} {
	return h.done
}
