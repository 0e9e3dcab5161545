package websocket

import (
	"sync"

	"ai-chatdesk-be/internal/pkg/logger"

	"github.com/google/uuid"
)

type Hub struct {
	// Registered clients map: ChatSessionID -> List of Clients (a session
	// can be open in more than one window)
	clients map[uuid.UUID][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"chat_session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"chat_session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send delivers a serialized frame to every client watching the session.
// The read lock is held across the channel sends: Run closes client
// channels under the write lock, so a send can never hit a closed channel.
func (h *Hub) Send(sessionID uuid.UUID, data []byte) {
	var full []*Client

	h.mu.RLock()
	for _, client := range h.clients[sessionID] {
		select {
		case client.Send <- data:
		default:
			full = append(full, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range full {
		h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"chat_session_id": sessionID})
		h.unregister <- client
	}
}

// Broadcast delivers a frame to every connected client regardless of
// session, used for document index updates.
func (h *Hub) Broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}

// CloseSession drops every client attached to a deleted session.
func (h *Hub) CloseSession(sessionID uuid.UUID) {
	h.mu.RLock()
	clients := make([]*Client, len(h.clients[sessionID]))
	copy(clients, h.clients[sessionID])
	h.mu.RUnlock()

	for _, client := range clients {
		h.unregister <- client
	}
}
