package rest

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/layout"
	"github.com/heartmarshall/storefront-backend/internal/live"
	"github.com/heartmarshall/storefront-backend/internal/notify"
	"github.com/heartmarshall/storefront-backend/pkg/ctxutil"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/roadmap.html"))

// changeNotifier tells connected live sessions that a roadmap changed.
type changeNotifier interface {
	Changed(creatorID uuid.UUID)
}

// PageHandler serves the server-rendered roadmap section: a full HTML page
// for browsers and a stateless action endpoint for hosts that cannot keep
// a WebSocket open.
type PageHandler struct {
	svcs    live.Services
	changes changeNotifier
	log     *slog.Logger
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(svcs live.Services, changes changeNotifier, logger *slog.Logger) *PageHandler {
	return &PageHandler{svcs: svcs, changes: changes, log: logger.With("handler", "page")}
}

type pageData struct {
	Title      string
	Section    template.HTML
	State      string
	LiveURL    string
	ActionsURL string
}

type actionRequest struct {
	Event layout.Event `json:"event"`
	State string       `json:"state"`
}

type toastResponse struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type actionResponse struct {
	HTML   string          `json:"html"`
	State  string          `json:"state"`
	Toasts []toastResponse `json:"toasts"`
	Error  string          `json:"error,omitempty"`
}

// Page handles GET /s/{creatorID}/roadmap. The query string carries the
// encoded view state and an optional product_id filter.
func (h *PageHandler) Page(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := uuidParam(w, r, "creatorID")
	if !ok {
		return
	}
	productID, ok := optionalUUIDQuery(w, r, "product_id")
	if !ok {
		return
	}

	v, err := h.open(r.Context(), notify.NewLog(h.log), creatorID, productID, r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	base := "/s/" + creatorID.String() + "/roadmap"
	data := pageData{
		Title:      v.Settings().Heading(),
		Section:    template.HTML(layout.HTML(v.Render())), //nolint:gosec // the layout escapes all text
		State:      v.State().Encode(),
		LiveURL:    base + "/live",
		ActionsURL: base + "/actions",
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		h.log.ErrorContext(r.Context(), "render page", slog.String("error", err.Error()))
	}
}

// Action handles POST /s/{creatorID}/roadmap/actions: it restores the view
// from the posted state, applies one event and answers with the
// re-rendered section, the new state and any notifications.
func (h *PageHandler) Action(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := uuidParam(w, r, "creatorID")
	if !ok {
		return
	}
	var req actionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	state, err := url.ParseQuery(req.State)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid state")
		return
	}
	productID, ok := optionalUUIDQuery(w, r, "product_id")
	if !ok {
		return
	}

	var (
		mu     sync.Mutex
		toasts = []toastResponse{}
	)
	collect := notify.Func(func(_ context.Context, level notify.Level, msg string) {
		mu.Lock()
		toasts = append(toasts, toastResponse{Level: string(level), Message: msg})
		mu.Unlock()
	})

	v, err := h.open(r.Context(), collect, creatorID, productID, state)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	dispatchErr := v.Dispatch(r.Context(), req.Event)
	if dispatchErr == nil && live.Mutates(req.Event.Op) && h.changes != nil {
		h.changes.Changed(creatorID)
	}

	resp := actionResponse{
		HTML:  layout.HTML(v.Render()),
		State: v.State().Encode(),
	}
	mu.Lock()
	resp.Toasts = toasts
	mu.Unlock()
	// Mutations already reported their failure as a toast.
	if dispatchErr != nil && len(resp.Toasts) == 0 {
		resp.Error = notify.FailureMessage(dispatchErr)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PageHandler) open(ctx context.Context, n notify.Notifier, creatorID uuid.UUID, productID *uuid.UUID, state url.Values) (*live.View, error) {
	viewerID, _ := ctxutil.UserIDFromCtx(ctx)
	return live.Open(ctx, h.svcs, n, live.Config{
		CreatorID: creatorID,
		ViewerID:  viewerID,
		ProductID: productID,
		State:     state,
	})
}
