package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/heartmarshall/storefront-backend/internal/config"
	"github.com/heartmarshall/storefront-backend/internal/layout"
	"github.com/heartmarshall/storefront-backend/internal/live"
	"github.com/heartmarshall/storefront-backend/internal/notify"
)

// Message types exchanged with the browser.
const (
	typeAction = "action"
	typePing   = "ping"
	typeRender = "render"
	typeToast  = "toast"
	typePong   = "pong"
	typeError  = "error"
)

type inMessage struct {
	Type  string       `json:"type"`
	Event layout.Event `json:"event"`
}

type outMessage struct {
	Type    string `json:"type"`
	HTML    string `json:"html,omitempty"`
	State   string `json:"state,omitempty"`
	Level   string `json:"level,omitempty"`
	Message string `json:"message,omitempty"`
}

// client is one live connection. The read pump feeds inbox, run owns the
// view and is the only writer to send, the write pump drains send.
type client struct {
	hub       *Hub
	conn      *websocket.Conn
	creatorID uuid.UUID
	view      *live.View
	cfg       config.WebSocketConfig
	log       *slog.Logger

	inbox chan inMessage
	send  chan []byte
	stale chan struct{}

	toasts    int // toasts emitted by the current dispatch; run goroutine only
	closeOnce sync.Once
}

func newClient(hub *Hub, creatorID uuid.UUID, cfg config.WebSocketConfig, log *slog.Logger) *client {
	return &client{
		hub:       hub,
		creatorID: creatorID,
		cfg:       cfg,
		log:       log,
		inbox:     make(chan inMessage),
		send:      make(chan []byte, cfg.SendBuffer),
		stale:     make(chan struct{}, 1),
	}
}

// notifier turns session notifications into toast messages. It is only
// called from within run.
func (c *client) notifier() notify.Notifier {
	return notify.Func(func(_ context.Context, level notify.Level, msg string) {
		c.toasts++
		c.push(outMessage{Type: typeToast, Level: string(level), Message: msg})
	})
}

func (c *client) markStale() {
	select {
	case c.stale <- struct{}{}:
	default:
	}
}

func (c *client) disconnect() {
	if c.conn == nil {
		return
	}
	c.closeOnce.Do(func() { c.conn.Close() })
}

// push queues a message. A client that cannot keep up is dropped.
func (c *client) push(m outMessage) {
	data, err := json.Marshal(m)
	if err != nil {
		c.log.Error("marshal message", slog.String("error", err.Error()))
		return
	}
	select {
	case c.send <- data:
	default:
		c.log.Warn("send buffer full, dropping client", slog.String("creator_id", c.creatorID.String()))
		c.disconnect()
	}
}

func (c *client) pushRender() {
	c.push(outMessage{
		Type:  typeRender,
		HTML:  layout.HTML(c.view.Render()),
		State: c.view.State().Encode(),
	})
}

// run applies inbound events and refreshes to the view until the inbox
// closes or ctx ends.
func (c *client) run(ctx context.Context) {
	defer close(c.send)

	c.pushRender()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.inbox:
			if !ok {
				return
			}
			c.handle(ctx, msg)
		case <-c.stale:
			c.view.Refresh(ctx)
			c.pushRender()
		}
	}
}

func (c *client) handle(ctx context.Context, msg inMessage) {
	switch msg.Type {
	case typePing:
		c.push(outMessage{Type: typePong})
	case typeAction:
		c.toasts = 0
		err := c.view.Dispatch(ctx, msg.Event)
		if err == nil && live.Mutates(msg.Event.Op) {
			c.hub.changed(c.creatorID, c)
		}
		if err != nil && c.toasts == 0 {
			c.push(outMessage{Type: typeError, Message: notify.FailureMessage(err)})
		}
		c.pushRender()
	default:
		c.push(outMessage{Type: typeError, Message: "unknown message type"})
	}
}

// readPump decodes inbound messages into the inbox. It returns when the
// connection fails or ctx ends, closing the inbox.
func (c *client) readPump(ctx context.Context) {
	defer close(c.inbox)

	c.conn.SetReadLimit(c.cfg.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait())) //nolint:errcheck
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait()))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) &&
				!errors.Is(err, websocket.ErrCloseSent) {
				c.log.Debug("read", slog.String("error", err.Error()))
			}
			return
		}

		var msg inMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			msg = inMessage{Type: "invalid"}
		}

		select {
		case c.inbox <- msg:
		case <-ctx.Done():
			return
		}
	}
}

// writePump writes queued messages, batching whatever is pending into one
// frame separated by newlines, and pings the peer.
func (c *client) writePump() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		c.disconnect()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout)) //nolint:errcheck
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, //nolint:errcheck
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(msg) //nolint:errcheck

			n := len(c.send)
			for range n {
				w.Write([]byte{'\n'}) //nolint:errcheck
				w.Write(<-c.send)     //nolint:errcheck
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout)) //nolint:errcheck
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
