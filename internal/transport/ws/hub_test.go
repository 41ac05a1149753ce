package ws

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func stale(c *client) bool {
	select {
	case <-c.stale:
		return true
	default:
		return false
	}
}

func TestHub_ChangedMarksRoomOnly(t *testing.T) {
	hub := testHub()
	roomA, roomB := uuid.New(), uuid.New()
	a1 := newClient(hub, roomA, testWSConfig, hub.log)
	a2 := newClient(hub, roomA, testWSConfig, hub.log)
	b := newClient(hub, roomB, testWSConfig, hub.log)
	for _, c := range []*client{a1, a2, b} {
		require.True(t, hub.register(c))
	}

	hub.Changed(roomA)

	assert.True(t, stale(a1))
	assert.True(t, stale(a2))
	assert.False(t, stale(b))
}

func TestHub_ChangedSkipsOrigin(t *testing.T) {
	hub := testHub()
	room := uuid.New()
	origin := newClient(hub, room, testWSConfig, hub.log)
	other := newClient(hub, room, testWSConfig, hub.log)
	hub.register(origin)
	hub.register(other)

	hub.changed(room, origin)

	assert.False(t, stale(origin))
	assert.True(t, stale(other))
}

func TestHub_StaleCoalesces(t *testing.T) {
	hub := testHub()
	room := uuid.New()
	c := newClient(hub, room, testWSConfig, hub.log)
	hub.register(c)

	hub.Changed(room)
	hub.Changed(room)
	hub.Changed(room)

	assert.True(t, stale(c))
	assert.False(t, stale(c), "pending refreshes collapse into one")
}

func TestHub_UnregisterAndClose(t *testing.T) {
	hub := testHub()
	room := uuid.New()
	c := newClient(hub, room, testWSConfig, hub.log)
	hub.register(c)
	require.Equal(t, 1, hub.Connections())

	hub.unregister(c)
	hub.unregister(c)
	assert.Equal(t, 0, hub.Connections())

	hub.Close()
	assert.False(t, hub.register(newClient(hub, room, testWSConfig, hub.log)))
}
