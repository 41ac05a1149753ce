// Package live composes a viewer's roadmap session and suggestion board
// into one renderable storefront section. The HTML endpoints build a View
// per request from encoded view state; the WebSocket hub keeps one View
// per connection.
package live

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/internal/layout"
	"github.com/heartmarshall/storefront-backend/internal/notify"
	"github.com/heartmarshall/storefront-backend/internal/service/forum"
	"github.com/heartmarshall/storefront-backend/internal/service/roadmap"
)

// querySort carries the suggestion sort mode next to the encoded ViewState.
const querySort = "sort"

type settingsSource interface {
	RoadmapSettings(ctx context.Context, creatorID uuid.UUID) (domain.RoadmapSettings, error)
}

// Services are the collaborators a View drives.
type Services struct {
	Roadmap *roadmap.Service
	Forum   *forum.Service
	Pages   settingsSource
	Log     *slog.Logger
}

// Config identifies the viewer and the roadmap being viewed.
type Config struct {
	CreatorID uuid.UUID
	ViewerID  uuid.UUID
	ProductID *uuid.UUID
	State     url.Values // encoded view state; nil starts fresh
}

// View is one viewer's live roadmap section.
type View struct {
	creatorID uuid.UUID
	settings  domain.RoadmapSettings
	roadmap   *roadmap.Session
	board     *forum.Board // nil when the section hides suggestions
}

// Open loads the section settings, restores the encoded view state and
// performs the first fetch.
func Open(ctx context.Context, svcs Services, notifier notify.Notifier, cfg Config) (*View, error) {
	if cfg.CreatorID == uuid.Nil {
		return nil, domain.NewValidationError("creator_id", "required")
	}

	settings, err := svcs.Pages.RoadmapSettings(ctx, cfg.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("load roadmap settings: %w", err)
	}

	v := &View{
		creatorID: cfg.CreatorID,
		settings:  settings,
		roadmap: roadmap.NewSession(svcs.Roadmap, notifier, svcs.Log, roadmap.SessionConfig{
			CreatorID: cfg.CreatorID,
			ViewerID:  cfg.ViewerID,
			ProductID: cfg.ProductID,
			Settings:  settings,
			View:      layout.DecodeViewState(cfg.State, settings.ExpandedByDefault()),
		}),
	}
	if settings.SuggestionsShown() {
		v.board = forum.NewBoard(svcs.Forum, notifier, svcs.Log, forum.BoardConfig{
			CreatorID: cfg.CreatorID,
			ViewerID:  cfg.ViewerID,
			Sort:      domain.SuggestionSort(cfg.State.Get(querySort)),
		})
	}

	v.Refresh(ctx)
	return v, nil
}

// CreatorID returns the creator whose roadmap is shown.
func (v *View) CreatorID() uuid.UUID { return v.creatorID }

// Settings returns the section settings the view was opened with.
func (v *View) Settings() domain.RoadmapSettings { return v.settings }

// Loading reports whether the roadmap has not been fetched yet.
func (v *View) Loading() bool { return v.roadmap.Loading() }

// Refresh refetches the roadmap and, when shown, the suggestion board.
func (v *View) Refresh(ctx context.Context) {
	v.roadmap.Refresh(ctx)
	if v.board != nil {
		v.board.Refresh(ctx)
	}
}

// Dispatch routes a client event to the roadmap session or the board.
func (v *View) Dispatch(ctx context.Context, ev layout.Event) error {
	switch {
	case v.roadmap.Handles(ev.Op):
		return v.roadmap.Dispatch(ctx, ev)
	case v.board != nil && v.board.Handles(ev.Op):
		return v.board.Dispatch(ctx, ev)
	}
	return domain.NewValidationError("op", "unknown action "+strconv.Quote(string(ev.Op)))
}

// Props snapshots everything the layout renders.
func (v *View) Props() layout.Props {
	p := v.roadmap.Props()
	if v.board != nil {
		p.Board = v.board.View()
	}
	return p
}

// Render renders the whole section.
func (v *View) Render() *layout.Node {
	return layout.RenderSection(v.Props())
}

// State encodes the presentation state so a stateless client can send it
// back with its next request. Open threads and reply drafts are not
// carried; they only live in connected sessions.
func (v *View) State() url.Values {
	q := v.roadmap.View().Encode()
	if v.board != nil {
		if s := v.board.View().Sort; s != domain.SuggestionSortUpvotes {
			q.Set(querySort, string(s))
		}
	}
	return q
}

var localOps = map[layout.Op]bool{
	layout.OpToggle: true, layout.OpBeginEdit: true, layout.OpDraftTitle: true,
	layout.OpDraftDescription: true, layout.OpCancelEdit: true,
	layout.OpSpotlightPrev: true, layout.OpSpotlightNext: true, layout.OpSpotlightGoto: true,
	layout.OpOrbitSelect: true, layout.OpOpenThread: true, layout.OpCloseThread: true,
	layout.OpSortSuggestions: true, layout.OpReplyDraft: true,
}

// Mutates reports whether an op writes shared data, so other viewers of
// the same roadmap should refetch once it succeeds.
func Mutates(op layout.Op) bool { return !localOps[op] }
