// Package websocket pushes store change events to connected dashboards
// so they re-render without polling. The hub consumes the store's
// change feed and fans each event out to every registered client.
package websocket

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/store"
)

// Hub maintains the set of active dashboard clients and broadcasts
// collection-change events to them.
type Hub struct {
	// Registered clients grouped by role
	clients map[models.RoleType]map[*Client]bool

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Store change feed consumed by Run
	changes <-chan store.ChangeEvent

	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a hub over the given store's change feed
func NewHub(s *store.Store, logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[models.RoleType]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		changes:    s.Changes(),
		logger:     logger,
	}
}

// Run handles client registration and event fan-out. Call in its own
// goroutine; it runs for the life of the process.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.changes:
			h.broadcast(event)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.role]; !ok {
		h.clients[client.role] = make(map[*Client]bool)
	}
	h.clients[client.role][client] = true

	h.logger.Info().
		Str("role", string(client.role)).
		Str("subject", client.subjectID).
		Msg("Dashboard client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.role]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client.send)
			if len(clients) == 0 {
				delete(h.clients, client.role)
			}
		}
	}

	h.logger.Info().
		Str("role", string(client.role)).
		Str("subject", client.subjectID).
		Msg("Dashboard client unregistered")
}

// broadcast serializes the event once and queues it on every client.
// A client with a full send buffer is dropped; the dashboard reconnects
// and reads fresh state.
func (h *Hub) broadcast(event store.ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("collection", event.Collection).Msg("Failed to marshal change event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, clients := range h.clients {
		for client := range clients {
			select {
			case client.send <- payload:
			default:
				h.logger.Warn().
					Str("subject", client.subjectID).
					Msg("Client send buffer full, dropping connection")
				go func(c *Client) { h.unregister <- c }(client)
			}
		}
	}
}
