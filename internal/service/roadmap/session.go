package roadmap

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/internal/layout"
	"github.com/heartmarshall/storefront-backend/internal/notify"
	"github.com/heartmarshall/storefront-backend/internal/theme"
	"github.com/heartmarshall/storefront-backend/pkg/ctxutil"
)

// SessionConfig describes one viewer looking at one creator's roadmap.
type SessionConfig struct {
	CreatorID uuid.UUID
	ViewerID  uuid.UUID // uuid.Nil for anonymous visitors
	ProductID *uuid.UUID
	Settings  domain.RoadmapSettings
	View      *layout.ViewState // nil starts from the settings default
}

// Session is a viewer's live roadmap: the last fetched snapshot plus the
// presentation state. Every mutation writes, then refetches everything;
// nothing is patched locally. Fetches are sequenced so a slow response
// can never overwrite a newer one.
type Session struct {
	svc      *Service
	notifier notify.Notifier
	log      *slog.Logger
	cfg      SessionConfig

	issued atomic.Uint64

	mu        sync.Mutex
	applied   uint64
	loaded    bool
	discarded int
	versions  []domain.Version
	view      *layout.ViewState
}

// NewSession creates a session. Call Refresh to perform the first fetch.
func NewSession(svc *Service, notifier notify.Notifier, log *slog.Logger, cfg SessionConfig) *Session {
	view := cfg.View
	if view == nil {
		view = layout.NewViewState(cfg.Settings.ExpandedByDefault())
	}
	return &Session{
		svc:      svc,
		notifier: notifier,
		log:      log.With("component", "roadmap_session", "creator_id", cfg.CreatorID.String()),
		cfg:      cfg,
		view:     view,
	}
}

// Owner reports whether the viewer owns the roadmap.
func (s *Session) Owner() bool {
	return s.cfg.ViewerID != uuid.Nil && s.cfg.ViewerID == s.cfg.CreatorID
}

// Loading is true until the first fetch has completed.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.loaded
}

// Discarded returns how many stale fetch responses were dropped.
func (s *Session) Discarded() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discarded
}

// Versions returns a copy of the current snapshot.
func (s *Session) Versions() []domain.Version {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.versions)
}

// View returns a copy of the presentation state.
func (s *Session) View() *layout.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Clone()
}

// Refresh refetches the whole roadmap. Failures are logged and the last
// snapshot is kept. A response that completes after a newer one has been
// applied is discarded.
func (s *Session) Refresh(ctx context.Context) {
	seq := s.issued.Add(1)

	versions, err := s.svc.Load(s.viewerCtx(ctx), LoadInput{
		CreatorID:   s.cfg.CreatorID,
		ProductID:   s.cfg.ProductID,
		SortByVotes: s.cfg.Settings.SortByVotes,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true

	if err != nil {
		s.log.WarnContext(ctx, "roadmap fetch failed", slog.Uint64("seq", seq), slog.String("error", err.Error()))
		return
	}
	if seq <= s.applied {
		s.discarded++
		s.log.DebugContext(ctx, "stale roadmap fetch discarded",
			slog.Uint64("seq", seq),
			slog.Uint64("applied", s.applied),
		)
		return
	}
	s.applied = seq
	s.versions = versions
}

// Props snapshots everything a layout needs to render.
func (s *Session) Props() layout.Props {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.cfg.Settings
	return layout.Props{
		Versions:      slices.Clone(s.versions),
		Style:         theme.Resolve(st),
		View:          s.view.Clone(),
		Owner:         s.Owner(),
		SignedIn:      s.cfg.ViewerID != uuid.Nil,
		VotingEnabled: st.VotingOn(),
		Heading:       st.Heading(),
		Subtitle:      st.Subtitle,
	}
}

var sessionOps = map[layout.Op]bool{
	layout.OpToggle: true, layout.OpBeginEdit: true, layout.OpDraftTitle: true,
	layout.OpDraftDescription: true, layout.OpCancelEdit: true, layout.OpSaveEdit: true,
	layout.OpSetVersionStatus: true, layout.OpSetItemStatus: true,
	layout.OpDeleteVersion: true, layout.OpDeleteItem: true, layout.OpVote: true,
	layout.OpAddVersion: true, layout.OpAddItem: true, layout.OpEditVersionDescription: true,
	layout.OpSpotlightPrev: true, layout.OpSpotlightNext: true, layout.OpSpotlightGoto: true,
	layout.OpOrbitSelect: true,
}

// Handles reports whether Dispatch understands the op.
func (s *Session) Handles(op layout.Op) bool { return sessionOps[op] }

// Dispatch applies a client event. Presentation-only ops change the view
// state; everything else is a mutation followed by a full refresh.
func (s *Session) Dispatch(ctx context.Context, ev layout.Event) error {
	switch ev.Op {
	case layout.OpToggle:
		id, err := parseTarget(ev)
		if err != nil {
			return err
		}
		s.withView(func(v *layout.ViewState) { v.Toggle(id) })
		return nil

	case layout.OpSpotlightPrev, layout.OpSpotlightNext, layout.OpSpotlightGoto:
		s.mu.Lock()
		defer s.mu.Unlock()
		n := len(s.versions)
		switch ev.Op {
		case layout.OpSpotlightPrev:
			s.view.SpotlightPrev(n)
		case layout.OpSpotlightNext:
			s.view.SpotlightNext(n)
		default:
			i, err := strconv.Atoi(ev.Value)
			if err != nil {
				return domain.NewValidationError("value", "must be an index")
			}
			s.view.SpotlightGoto(i, n)
		}
		return nil

	case layout.OpOrbitSelect:
		id, err := parseTarget(ev)
		if err != nil {
			return err
		}
		s.withView(func(v *layout.ViewState) { v.SelectOrbit(id) })
		return nil

	case layout.OpBeginEdit:
		if !s.Owner() {
			return s.fail(ctx, domain.ErrForbidden)
		}
		id, err := parseTarget(ev)
		if err != nil {
			return err
		}
		it, ok := s.findItem(id)
		if !ok {
			return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
		}
		s.withView(func(v *layout.ViewState) { v.BeginEdit(it) })
		return nil

	case layout.OpDraftTitle:
		s.withView(func(v *layout.ViewState) { v.SetDraftTitle(ev.Input("title")) })
		return nil

	case layout.OpDraftDescription:
		s.withView(func(v *layout.ViewState) { v.SetDraftDescription(ev.Input("description")) })
		return nil

	case layout.OpCancelEdit:
		s.withView(func(v *layout.ViewState) { v.CancelEdit() })
		return nil
	}

	if !s.Handles(ev.Op) {
		return domain.NewValidationError("op", "unknown action "+strconv.Quote(string(ev.Op)))
	}
	return s.mutate(ctx, ev)
}

func (s *Session) mutate(ctx context.Context, ev layout.Event) error {
	if ev.Op != layout.OpVote && !s.Owner() {
		return s.fail(ctx, domain.ErrForbidden)
	}
	vctx := s.viewerCtx(ctx)

	var (
		success string
		err     error
	)
	switch ev.Op {
	case layout.OpAddVersion:
		success = "Version added"
		_, err = s.svc.AddVersion(vctx, AddVersionInput{Name: ev.Input("name"), ProductID: s.cfg.ProductID})

	case layout.OpAddItem:
		success = "Task added"
		err = withTarget(ev, func(id uuid.UUID) error {
			_, err := s.svc.AddItem(vctx, AddItemInput{VersionID: id, Title: ev.Input("title")})
			return err
		})

	case layout.OpSetVersionStatus, layout.OpSetItemStatus:
		success = "Status updated"
		kind := domain.EntityKindVersion
		if ev.Op == layout.OpSetItemStatus {
			kind = domain.EntityKindItem
		}
		err = withTarget(ev, func(id uuid.UUID) error {
			return s.svc.UpdateStatus(vctx, UpdateStatusInput{Kind: kind, ID: id, Status: ev.Input("status")})
		})

	case layout.OpDeleteVersion:
		success = "Version deleted"
		err = withTarget(ev, func(id uuid.UUID) error {
			return s.svc.DeleteVersion(vctx, DeleteVersionInput{VersionID: id, Confirmed: ev.Confirmed})
		})

	case layout.OpDeleteItem:
		success = "Task deleted"
		err = withTarget(ev, func(id uuid.UUID) error {
			return s.svc.DeleteItem(vctx, DeleteItemInput{ItemID: id})
		})

	case layout.OpEditVersionDescription:
		success = "Description updated"
		err = withTarget(ev, func(id uuid.UUID) error {
			_, err := s.svc.UpdateVersionDescription(vctx, UpdateVersionDescriptionInput{
				VersionID:   id,
				Description: ev.Input("description"),
			})
			return err
		})

	case layout.OpSaveEdit:
		success = "Task updated"
		err = s.saveEdit(vctx, ev)

	case layout.OpVote:
		voted := ev.Value == "1"
		success = "Vote recorded"
		if voted {
			success = "Vote removed"
		}
		err = withTarget(ev, func(id uuid.UUID) error {
			return s.svc.ToggleItemVote(vctx, ToggleItemVoteInput{
				CreatorID:      s.cfg.CreatorID,
				ItemID:         id,
				CurrentlyVoted: voted,
				SectionVoting:  s.cfg.Settings.VotingOn(),
			})
		})
	}

	if err != nil {
		return s.fail(ctx, err)
	}
	s.notifier.Success(ctx, success)
	s.Refresh(ctx)
	return nil
}

func (s *Session) saveEdit(ctx context.Context, ev layout.Event) error {
	s.mu.Lock()
	if t, ok := ev.Fields["title"]; ok {
		s.view.SetDraftTitle(t)
	}
	if d, ok := ev.Fields["description"]; ok {
		s.view.SetDraftDescription(d)
	}
	id, editing := s.view.Editing()
	title, desc := s.view.Draft()
	canSave := s.view.CanSave()
	s.mu.Unlock()

	if !editing {
		return domain.NewValidationError("item_id", "no item is being edited")
	}
	if !canSave {
		return domain.NewValidationError("title", "required")
	}

	if _, err := s.svc.UpdateTask(ctx, UpdateTaskInput{ItemID: id, Title: title, Description: desc}); err != nil {
		return err
	}
	s.withView(func(v *layout.ViewState) { v.CancelEdit() })
	return nil
}

func (s *Session) fail(ctx context.Context, err error) error {
	s.notifier.Failure(ctx, notify.FailureMessage(err))
	return err
}

func (s *Session) withView(fn func(v *layout.ViewState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.view)
}

func (s *Session) findItem(id uuid.UUID) (domain.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.versions {
		for _, it := range v.Items {
			if it.ID == id {
				return it, true
			}
		}
	}
	return domain.Item{}, false
}

func (s *Session) viewerCtx(ctx context.Context) context.Context {
	if s.cfg.ViewerID == uuid.Nil {
		return ctx
	}
	return ctxutil.WithUserID(ctx, s.cfg.ViewerID)
}

func parseTarget(ev layout.Event) (uuid.UUID, error) {
	id, err := uuid.Parse(ev.Target)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("target", "must be a uuid")
	}
	return id, nil
}

func withTarget(ev layout.Event, fn func(id uuid.UUID) error) error {
	id, err := parseTarget(ev)
	if err != nil {
		return err
	}
	return fn(id)
}
