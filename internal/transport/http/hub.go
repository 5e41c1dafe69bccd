package http

import (
	"sync"
)

// Envelope is the wire frame for every real-time message, inbound and out.
type Envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type clientRole int

const (
	roleHost clientRole = iota
	roleTeam
)

// Hub tracks connected clients per session and fans broadcasts out to the
// right scope: the whole session or the host side only.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*client]struct{})}
}

// Register adds a bound client to its session's room.
func (h *Hub) Register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[c.joinCode] == nil {
		h.rooms[c.joinCode] = make(map[*client]struct{})
	}
	h.rooms[c.joinCode][c] = struct{}{}
}

// Unregister drops a client from its room, removing the room when empty.
func (h *Hub) Unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[c.joinCode]
	if !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, c.joinCode)
	}
}

// BroadcastToSession sends an event to every client in the session.
func (h *Hub) BroadcastToSession(joinCode string, event Envelope) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[joinCode] {
		c.trySend(event)
	}
}

// SendToHost sends an event only to the session's host-side clients.
func (h *Hub) SendToHost(joinCode string, event Envelope) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[joinCode] {
		if c.role == roleHost {
			c.trySend(event)
		}
	}
}
