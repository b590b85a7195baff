package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Message is pushed to every live connection of one user
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

type delivery struct {
	userID  int64
	payload []byte
}

// Hub tracks live connections per user and pushes messages to them
type Hub struct {
	// Registered clients organized by user ID
	clients map[int64]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	deliver    chan delivery
	done       chan struct{}

	// guards counts read outside the Run loop
	mu     sync.RWMutex
	counts map[int64]int

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		deliver:    make(chan delivery, 256),
		done:       make(chan struct{}),
		counts:     make(map[int64]int),
		logger:     logger,
	}
}

// Run serves registrations and deliveries until ctx is cancelled, then closes every client
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for _, clients := range h.clients {
				for client := range clients {
					h.removeClient(client)
				}
			}
			return

		case client := <-h.register:
			h.addClient(client)

		case client := <-h.unregister:
			h.removeClient(client)

		case d := <-h.deliver:
			for client := range h.clients[d.userID] {
				select {
				case client.send <- d.payload:
				default:
					h.logger.Warn().Int64("userID", d.userID).Msg("Dropping slow websocket client")
					h.removeClient(client)
				}
			}
		}
	}
}

func (h *Hub) addClient(client *Client) {
	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]bool)
	}
	h.clients[client.userID][client] = true
	h.setCount(client.userID, len(h.clients[client.userID]))

	h.logger.Debug().Int64("userID", client.userID).Msg("Client registered")
}

func (h *Hub) removeClient(client *Client) {
	clients, ok := h.clients[client.userID]
	if !ok || !clients[client] {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.userID)
	}
	h.setCount(client.userID, len(clients))

	h.logger.Debug().Int64("userID", client.userID).Msg("Client unregistered")
}

func (h *Hub) setCount(userID int64, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n == 0 {
		delete(h.counts, userID)
		return
	}
	h.counts[userID] = n
}

// Register adds a client. It reports false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// SendToUser queues msg for the user's live connections without blocking.
// It returns false when the message was dropped.
func (h *Hub) SendToUser(userID int64, msg *Message) bool {
	if h.ClientCount(userID) == 0 {
		return false
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to marshal websocket message")
		return false
	}

	select {
	case h.deliver <- delivery{userID: userID, payload: payload}:
		return true
	case <-h.done:
		return false
	default:
		h.logger.Warn().Int64("userID", userID).Msg("Websocket delivery queue full")
		return false
	}
}

// ClientCount returns the number of live connections for a user
func (h *Hub) ClientCount(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.counts[userID]
}
