// Package ws serves live roadmap sessions over WebSocket. Every connection
// owns one live.View; the Hub groups connections by creator so a change to
// a roadmap makes every open view of it refetch.
package ws

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Hub tracks connected clients per creator room.
type Hub struct {
	mu     sync.Mutex
	rooms  map[uuid.UUID]map[*client]struct{}
	closed bool
	log    *slog.Logger
}

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms: make(map[uuid.UUID]map[*client]struct{}),
		log:   logger.With("component", "ws_hub"),
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	room, ok := h.rooms[c.creatorID]
	if !ok {
		room = make(map[*client]struct{})
		h.rooms[c.creatorID] = room
	}
	room[c] = struct{}{}
	h.log.Debug("client connected",
		slog.String("creator_id", c.creatorID.String()),
		slog.Int("room_size", len(room)),
	)
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[c.creatorID]
	if !ok {
		return
	}
	if _, ok := room[c]; !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, c.creatorID)
	}
	h.log.Debug("client disconnected", slog.String("creator_id", c.creatorID.String()))
}

// Changed marks every view of the creator's roadmap stale.
func (h *Hub) Changed(creatorID uuid.UUID) {
	h.changed(creatorID, nil)
}

// changed marks views stale, skipping the client that made the change; its
// session already refetched.
func (h *Hub) changed(creatorID uuid.UUID, except *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.rooms[creatorID] {
		if c != except {
			c.markStale()
		}
	}
}

// Connections returns the number of connected clients.
func (h *Hub) Connections() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, room := range h.rooms {
		n += len(room)
	}
	return n
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, room := range h.rooms {
		for c := range room {
			c.disconnect()
		}
		delete(h.rooms, id)
	}
}
