package ws

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/heartmarshall/storefront-backend/internal/config"
	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/internal/live"
	"github.com/heartmarshall/storefront-backend/pkg/ctxutil"
)

// Handler upgrades GET /s/{creatorID}/roadmap/live to a live session.
type Handler struct {
	hub      *Hub
	svcs     live.Services
	cfg      config.WebSocketConfig
	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewHandler creates a Handler. Cross-origin upgrades are accepted from the
// same origins CORS allows.
func NewHandler(hub *Hub, svcs live.Services, cfg config.WebSocketConfig, cors config.CORSConfig, logger *slog.Logger) *Handler {
	return &Handler{
		hub:  hub,
		svcs: svcs,
		cfg:  cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(cors.AllowedOrigins),
		},
		log: logger.With("handler", "live"),
	}
}

// ServeHTTP opens the view before upgrading, so a bad request still gets
// a plain HTTP error, then blocks in the read pump until the peer leaves.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	creatorID, err := uuid.Parse(chi.URLParam(r, "creatorID"))
	if err != nil {
		http.Error(w, "invalid creatorID", http.StatusBadRequest)
		return
	}
	var productID *uuid.UUID
	if raw := r.URL.Query().Get("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid product_id", http.StatusBadRequest)
			return
		}
		productID = &id
	}
	viewerID, _ := ctxutil.UserIDFromCtx(r.Context())

	log := h.log.With(slog.String("creator_id", creatorID.String()))
	c := newClient(h.hub, creatorID, h.cfg, log)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	view, err := live.Open(ctx, h.svcs, c.notifier(), live.Config{
		CreatorID: creatorID,
		ViewerID:  viewerID,
		ProductID: productID,
		State:     stateFromQuery(r.URL.Query()),
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.ErrorContext(ctx, "open live view", slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	c.view = view

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already answered the request.
		log.DebugContext(ctx, "upgrade failed", slog.String("error", err.Error()))
		return
	}
	c.conn = conn

	if !h.hub.register(c) {
		conn.WriteMessage(websocket.CloseMessage, //nolint:errcheck
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return
	}
	defer h.hub.unregister(c)

	done := make(chan struct{})
	go c.writePump()
	go func() {
		defer close(done)
		c.run(ctx)
	}()

	c.readPump(ctx)
	cancel()
	<-done
}

// stateFromQuery keeps only the view-state keys, dropping transport
// parameters such as the access token.
func stateFromQuery(q url.Values) url.Values {
	state := make(url.Values, len(q))
	for k, v := range q {
		if k == "access_token" || k == "product_id" {
			continue
		}
		state[k] = v
	}
	return state
}

func originChecker(allowed string) func(*http.Request) bool {
	var origins []string
	for _, o := range strings.Split(allowed, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range origins {
			if o == "*" || strings.EqualFold(o, origin) {
				return true
			}
		}
		u, err := url.Parse(origin)
		return err == nil && strings.EqualFold(u.Host, r.Host)
	}
}
