package forum

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
	"github.com/heartmarshall/storefront-backend/pkg/ctxutil"
)

// BoardConfig describes one viewer looking at one creator's board.
type BoardConfig struct {
	CreatorID uuid.UUID
	ViewerID  uuid.UUID // uuid.Nil for anonymous visitors
	Sort      domain.SuggestionSort
}

// Board is a viewer's live suggestion board: the fetched list, the sort
// mode and at most one open thread with its reply draft.
type Board struct {
	svc      *Service
	notifier notify.Notifier
	log      *slog.Logger
	cfg      BoardConfig

	issued atomic.Uint64

	mu          sync.Mutex
	applied     uint64
	suggestions []domain.Suggestion
	sort        domain.SuggestionSort
	open        *domain.Suggestion
	replies     []domain.Reply
	draft       string
	submitting  bool
}

// NewBoard creates a board. Call Refresh to perform the first fetch.
func NewBoard(svc *Service, notifier notify.Notifier, log *slog.Logger, cfg BoardConfig) *Board {
	sort := cfg.Sort
	if !sort.IsValid() {
		sort = domain.SuggestionSortUpvotes
	}
	return &Board{
		svc:      svc,
		notifier: notifier,
		log:      log.With("component", "forum_board", "creator_id", cfg.CreatorID.String()),
		cfg:      cfg,
		sort:     sort,
	}
}

// Owner reports whether the viewer owns the board.
func (b *Board) Owner() bool {
	return b.cfg.ViewerID != uuid.Nil && b.cfg.ViewerID == b.cfg.CreatorID
}

// View snapshots the board for rendering, sorted by the current mode.
func (b *Board) View() *layout.BoardView {
	b.mu.Lock()
	defer b.mu.Unlock()

	v := &layout.BoardView{
		Suggestions: SortSuggestions(b.suggestions, b.sort),
		Sort:        b.sort,
		Replies:     slices.Clone(b.replies),
		Draft:       b.draft,
		Submitting:  b.submitting,
	}
	if b.open != nil {
		open := *b.open
		v.Open = &open
	}
	return v
}

// Refresh refetches the suggestion list. Failures are logged and the last
// list is kept; out-of-order responses are discarded.
func (b *Board) Refresh(ctx context.Context) {
	seq := b.issued.Add(1)

	list, err := b.svc.ListSuggestions(b.viewerCtx(ctx), ListSuggestionsInput{CreatorID: b.cfg.CreatorID})

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.log.WarnContext(ctx, "suggestion fetch failed", slog.Uint64("seq", seq), slog.String("error", err.Error()))
		return
	}
	if seq <= b.applied {
		b.log.DebugContext(ctx, "stale suggestion fetch discarded", slog.Uint64("seq", seq))
		return
	}
	b.applied = seq
	b.suggestions = list
}

var boardOps = map[layout.Op]bool{
	layout.OpOpenThread: true, layout.OpCloseThread: true, layout.OpSortSuggestions: true,
	layout.OpUpvote: true, layout.OpReplyDraft: true, layout.OpSubmitReply: true,
	layout.OpSubmitSuggestion: true, layout.OpSuggestionStatus: true, layout.OpDeleteSuggestion: true,
}

// Handles reports whether Dispatch understands the op.
func (b *Board) Handles(op layout.Op) bool { return boardOps[op] }

// Dispatch applies a client event to the board.
func (b *Board) Dispatch(ctx context.Context, ev layout.Event) error {
	switch ev.Op {
	case layout.OpSortSuggestions:
		mode := domain.SuggestionSort(ev.Value)
		if !mode.IsValid() {
			return domain.NewValidationError("sort", "must be upvotes, newest or discussed")
		}
		b.mu.Lock()
		b.sort = mode
		b.mu.Unlock()
		return nil

	case layout.OpOpenThread:
		return b.openThread(ctx, ev)

	case layout.OpCloseThread:
		b.mu.Lock()
		b.closeThread()
		b.mu.Unlock()
		return nil

	case layout.OpReplyDraft:
		b.mu.Lock()
		b.draft = ev.Input("content")
		b.mu.Unlock()
		return nil

	case layout.OpSubmitReply:
		return b.submitReply(ctx, ev)

	case layout.OpSubmitSuggestion:
		return b.submitSuggestion(ctx, ev)

	case layout.OpUpvote:
		id, err := parseTarget(ev)
		if err != nil {
			return err
		}
		upvoted := ev.Value == "1"
		err = b.svc.ToggleUpvote(b.viewerCtx(ctx), ToggleUpvoteInput{SuggestionID: id, CurrentlyUpvoted: upvoted})
		if err != nil {
			return b.fail(ctx, err)
		}
		b.Refresh(ctx)
		return nil

	case layout.OpSuggestionStatus:
		return b.updateStatus(ctx, ev)

	case layout.OpDeleteSuggestion:
		return b.deleteSuggestion(ctx, ev)
	}

	return domain.NewValidationError("op", "unknown action "+strconv.Quote(string(ev.Op)))
}

// openThread opens a suggestion's drawer and fetches its replies.
// Switching to another suggestion discards the reply draft.
func (b *Board) openThread(ctx context.Context, ev layout.Event) error {
	id, err := parseTarget(ev)
	if err != nil {
		return err
	}

	b.mu.Lock()
	idx := slices.IndexFunc(b.suggestions, func(s domain.Suggestion) bool { return s.ID == id })
	if idx < 0 {
		b.mu.Unlock()
		return b.fail(ctx, fmt.Errorf("suggestion %s: %w", id, domain.ErrNotFound))
	}
	if b.open == nil || b.open.ID != id {
		b.draft = ""
		b.replies = nil
	}
	open := b.suggestions[idx]
	b.open = &open
	b.mu.Unlock()

	return b.loadReplies(ctx, id)
}

func (b *Board) loadReplies(ctx context.Context, id uuid.UUID) error {
	replies, err := b.svc.ListReplies(b.viewerCtx(ctx), id)
	if err != nil {
		return b.fail(ctx, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.open != nil && b.open.ID == id {
		b.replies = replies
	}
	return nil
}

func (b *Board) submitReply(ctx context.Context, ev layout.Event) error {
	b.mu.Lock()
	if b.open == nil {
		b.mu.Unlock()
		return b.fail(ctx, domain.NewValidationError("suggestion_id", "no thread is open"))
	}
	if b.submitting {
		b.mu.Unlock()
		return nil
	}
	if c, ok := ev.Fields["content"]; ok {
		b.draft = c
	}
	id, content := b.open.ID, b.draft
	b.submitting = true
	b.mu.Unlock()

	_, err := b.svc.SubmitReply(b.viewerCtx(ctx), SubmitReplyInput{SuggestionID: id, Content: content})

	b.mu.Lock()
	b.submitting = false
	if err == nil {
		b.draft = ""
	}
	b.mu.Unlock()

	if err != nil {
		return b.fail(ctx, err)
	}
	b.notifier.Success(ctx, "Reply posted")
	b.Refresh(ctx)
	return b.loadReplies(ctx, id)
}

func (b *Board) submitSuggestion(ctx context.Context, ev layout.Event) error {
	b.mu.Lock()
	if b.submitting {
		b.mu.Unlock()
		return nil
	}
	b.submitting = true
	b.mu.Unlock()

	input := SubmitSuggestionInput{CreatorID: b.cfg.CreatorID, Title: ev.Input("title")}
	if d, ok := ev.Fields["description"]; ok {
		input.Description = &d
	}
	_, err := b.svc.SubmitSuggestion(b.viewerCtx(ctx), input)

	b.mu.Lock()
	b.submitting = false
	b.mu.Unlock()

	if err != nil {
		return b.fail(ctx, err)
	}
	b.notifier.Success(ctx, "Suggestion submitted")
	b.Refresh(ctx)
	return nil
}

// updateStatus patches the open copy right away, then refetches the list.
func (b *Board) updateStatus(ctx context.Context, ev layout.Event) error {
	id, err := parseTarget(ev)
	if err != nil {
		return err
	}
	if !b.Owner() {
		return b.fail(ctx, domain.ErrForbidden)
	}

	updated, err := b.svc.UpdateSuggestionStatus(b.viewerCtx(ctx), UpdateSuggestionStatusInput{
		SuggestionID: id,
		Status:       domain.ForumStatus(ev.Input("status")),
	})
	if err != nil {
		return b.fail(ctx, err)
	}

	b.mu.Lock()
	if b.open != nil && b.open.ID == id {
		b.open.Status = updated.Status
		b.open.StatusChangedAt = updated.StatusChangedAt
	}
	b.mu.Unlock()

	b.notifier.Success(ctx, "Status updated")
	b.Refresh(ctx)
	return nil
}

// deleteSuggestion closes the drawer when the open suggestion is removed.
func (b *Board) deleteSuggestion(ctx context.Context, ev layout.Event) error {
	id, err := parseTarget(ev)
	if err != nil {
		return err
	}
	if !b.Owner() {
		return b.fail(ctx, domain.ErrForbidden)
	}

	if err := b.svc.DeleteSuggestion(b.viewerCtx(ctx), DeleteSuggestionInput{SuggestionID: id}); err != nil {
		return b.fail(ctx, err)
	}

	b.mu.Lock()
	if b.open != nil && b.open.ID == id {
		b.closeThread()
	}
	b.mu.Unlock()

	b.notifier.Success(ctx, "Suggestion deleted")
	b.Refresh(ctx)
	return nil
}

// closeThread must be called with b.mu held.
func (b *Board) closeThread() {
	b.open = nil
	b.replies = nil
	b.draft = ""
}

func (b *Board) fail(ctx context.Context, err error) error {
	b.notifier.Failure(ctx, notify.FailureMessage(err))
	return err
}

func (b *Board) viewerCtx(ctx context.Context) context.Context {
	if b.cfg.ViewerID == uuid.Nil {
		return ctx
	}
	return ctxutil.WithUserID(ctx, b.cfg.ViewerID)
}

func parseTarget(ev layout.Event) (uuid.UUID, error) {
	id, err := uuid.Parse(ev.Target)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("target", "must be a uuid")
	}
	return id, nil
}
