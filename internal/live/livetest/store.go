// Package livetest provides an in-memory store behind the real roadmap,
// forum and storefront services, for transport-level tests that do not
// need PostgreSQL.
package livetest

import (
	"cmp"
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/internal/live"
	"github.com/heartmarshall/storefront-backend/internal/service/forum"
	"github.com/heartmarshall/storefront-backend/internal/service/roadmap"
	"github.com/heartmarshall/storefront-backend/internal/service/storefront"
)

type pair struct{ a, b uuid.UUID }

// Store keeps every table in maps. Timestamps come from a clock that
// advances one second per write, so orderings are deterministic.
type Store struct {
	mu    sync.Mutex
	clock time.Time

	versions    map[uuid.UUID]domain.Version
	items       map[uuid.UUID]domain.Item
	votes       map[pair]bool
	suggestions map[uuid.UUID]domain.Suggestion
	replies     map[uuid.UUID]domain.Reply
	upvotes     map[pair]bool
	profiles    map[uuid.UUID]domain.Profile
	pages       map[uuid.UUID]domain.PageConfig

	// Fail, when set, is returned by every read.
	Fail error
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		clock:       time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
		versions:    make(map[uuid.UUID]domain.Version),
		items:       make(map[uuid.UUID]domain.Item),
		votes:       make(map[pair]bool),
		suggestions: make(map[uuid.UUID]domain.Suggestion),
		replies:     make(map[uuid.UUID]domain.Reply),
		upvotes:     make(map[pair]bool),
		profiles:    make(map[uuid.UUID]domain.Profile),
		pages:       make(map[uuid.UUID]domain.PageConfig),
	}
}

func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

// Services wires the real services to the store.
func (s *Store) Services(log *slog.Logger) live.Services {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	tx := TxManager{}
	return live.Services{
		Roadmap: roadmap.NewService(log, VersionRepo{s}, ItemRepo{s}, VoteRepo{s}, SuggestionRepo{s}, tx),
		Forum:   forum.NewService(log, SuggestionRepo{s}, ReplyRepo{s}, UpvoteRepo{s}, ProfileRepo{s}, tx),
		Pages:   storefront.NewService(log, PageRepo{s}, storefront.Defaults{Theme: "midnight", CardOpacity: 80, Expanded: true}),
		Log:     log,
	}
}

// ---------------------------------------------------------------------------
// Seeding
// ---------------------------------------------------------------------------

// AddVersion inserts a version at the given sort order.
func (s *Store) AddVersion(creatorID uuid.UUID, name string, sortOrder int) domain.Version {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := domain.Version{
		ID: uuid.New(), CreatorID: creatorID, Name: name,
		Status: domain.StatusBacklog, SortOrder: sortOrder, CreatedAt: s.tick(),
	}
	s.versions[v.ID] = v
	return v
}

// AddItem inserts an item.
func (s *Store) AddItem(versionID uuid.UUID, title string, status domain.Status, sortOrder int) domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := domain.Item{
		ID: uuid.New(), VersionID: versionID, Title: title,
		Status: status, SortOrder: sortOrder, CreatedAt: s.tick(),
	}
	s.items[it.ID] = it
	return it
}

// AddSuggestion inserts an open suggestion.
func (s *Store) AddSuggestion(creatorID, userID uuid.UUID, title string) domain.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	sg := domain.Suggestion{
		ID: uuid.New(), CreatorID: creatorID, UserID: userID, Title: title,
		Status: domain.ForumStatusOpen, CreatedAt: s.tick(),
	}
	s.suggestions[sg.ID] = sg
	return sg
}

// SetProfile stores a display name.
func (s *Store) SetProfile(userID uuid.UUID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = domain.Profile{UserID: userID, DisplayName: &name}
}

// SetPage stores a page configuration.
func (s *Store) SetPage(page domain.PageConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[page.CreatorID] = page
}

// Version returns a stored version.
func (s *Store) Version(id uuid.UUID) (domain.Version, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.versions[id]
	return v, ok
}

// Item returns a stored item.
func (s *Store) Item(id uuid.UUID) (domain.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	return it, ok
}

// Suggestion returns a stored suggestion.
func (s *Store) Suggestion(id uuid.UUID) (domain.Suggestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sg, ok := s.suggestions[id]
	return sg, ok
}

// VersionCount returns how many versions a creator has.
func (s *Store) VersionCount(creatorID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, v := range s.versions {
		if v.CreatorID == creatorID {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// Repositories
// ---------------------------------------------------------------------------

// TxManager runs fn directly; the store has no rollback.
type TxManager struct{}

func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type VersionRepo struct{ s *Store }

func (r VersionRepo) ListByCreator(_ context.Context, creatorID uuid.UUID, productID *uuid.UUID) ([]domain.Version, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	out := []domain.Version{}
	for _, v := range r.s.versions {
		if v.CreatorID != creatorID {
			continue
		}
		if productID != nil && (v.ProductID == nil || *v.ProductID != *productID) {
			continue
		}
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b domain.Version) int {
		return cmp.Or(cmp.Compare(a.SortOrder, b.SortOrder), a.CreatedAt.Compare(b.CreatedAt))
	})
	return out, nil
}

func (r VersionRepo) GetByID(_ context.Context, versionID uuid.UUID) (*domain.Version, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.versions[versionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (r VersionRepo) ShiftSortOrder(_ context.Context, creatorID uuid.UUID, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, v := range r.s.versions {
		if v.CreatorID == creatorID {
			v.SortOrder += delta
			r.s.versions[id] = v
		}
	}
	return nil
}

func (r VersionRepo) Create(_ context.Context, v *domain.Version) (*domain.Version, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := *v
	if out.ID == uuid.Nil {
		out.ID = uuid.New()
	}
	if out.Status == "" {
		out.Status = domain.StatusBacklog
	}
	out.CreatedAt = r.s.tick()
	r.s.versions[out.ID] = out
	return &out, nil
}

func (r VersionRepo) Update(_ context.Context, versionID uuid.UUID, p domain.VersionUpdateParams) (*domain.Version, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.versions[versionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Description != nil {
		v.Description = emptyToNil(*p.Description)
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	r.s.versions[versionID] = v
	return &v, nil
}

func (r VersionRepo) Delete(_ context.Context, versionID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.versions[versionID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.versions, versionID)
	for id, it := range r.s.items {
		if it.VersionID == versionID {
			delete(r.s.items, id)
			for k := range r.s.votes {
				if k.a == id {
					delete(r.s.votes, k)
				}
			}
		}
	}
	return nil
}

type ItemRepo struct{ s *Store }

func (r ItemRepo) ListByVersionIDs(_ context.Context, versionIDs []uuid.UUID) ([]domain.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	out := []domain.Item{}
	for _, it := range r.s.items {
		if slices.Contains(versionIDs, it.VersionID) {
			out = append(out, it)
		}
	}
	slices.SortFunc(out, func(a, b domain.Item) int {
		return cmp.Or(cmp.Compare(a.SortOrder, b.SortOrder), a.CreatedAt.Compare(b.CreatedAt))
	})
	return out, nil
}

func (r ItemRepo) GetByID(_ context.Context, itemID uuid.UUID) (*domain.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[itemID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &it, nil
}

func (r ItemRepo) CountByVersion(_ context.Context, versionID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, it := range r.s.items {
		if it.VersionID == versionID {
			n++
		}
	}
	return n, nil
}

func (r ItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.versions[item.VersionID]; !ok {
		return nil, domain.ErrNotFound
	}
	out := *item
	if out.ID == uuid.Nil {
		out.ID = uuid.New()
	}
	if out.Status == "" {
		out.Status = domain.StatusBacklog
	}
	out.CreatedAt = r.s.tick()
	r.s.items[out.ID] = out
	return &out, nil
}

func (r ItemRepo) Update(_ context.Context, itemID uuid.UUID, p domain.ItemUpdateParams) (*domain.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[itemID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Title != nil {
		it.Title = *p.Title
	}
	if p.Description != nil {
		it.Description = emptyToNil(*p.Description)
	}
	if p.Status != nil {
		it.Status = *p.Status
	}
	r.s.items[itemID] = it
	return &it, nil
}

func (r ItemRepo) Delete(_ context.Context, itemID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[itemID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.items, itemID)
	return nil
}

type VoteRepo struct{ s *Store }

func (r VoteRepo) Tally(_ context.Context, itemIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]domain.VoteTally, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[uuid.UUID]domain.VoteTally)
	for k := range r.s.votes {
		if !slices.Contains(itemIDs, k.a) {
			continue
		}
		t := out[k.a]
		t.ItemID = k.a
		t.Count++
		t.UserHasVoted = t.UserHasVoted || k.b == userID
		out[k.a] = t
	}
	return out, nil
}

func (r VoteRepo) Add(_ context.Context, itemID, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[itemID]; !ok {
		return domain.ErrNotFound
	}
	r.s.votes[pair{itemID, userID}] = true
	return nil
}

func (r VoteRepo) Remove(_ context.Context, itemID, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.votes, pair{itemID, userID})
	return nil
}

type SuggestionRepo struct{ s *Store }

func (r SuggestionRepo) ListByCreator(_ context.Context, creatorID uuid.UUID) ([]domain.Suggestion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	out := []domain.Suggestion{}
	for _, sg := range r.s.suggestions {
		if sg.CreatorID == creatorID {
			sg.Author = domain.Profile{UserID: sg.UserID}
			out = append(out, sg)
		}
	}
	slices.SortFunc(out, func(a, b domain.Suggestion) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (r SuggestionRepo) GetByID(_ context.Context, suggestionID uuid.UUID) (*domain.Suggestion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sg, ok := r.s.suggestions[suggestionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &sg, nil
}

func (r SuggestionRepo) Tally(_ context.Context, ids []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]domain.SuggestionTally, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[uuid.UUID]domain.SuggestionTally, len(ids))
	for _, id := range ids {
		t := domain.SuggestionTally{SuggestionID: id}
		for k := range r.s.upvotes {
			if k.a == id {
				t.Upvotes++
				t.UserUpvoted = t.UserUpvoted || k.b == userID
			}
		}
		for _, rp := range r.s.replies {
			if rp.SuggestionID == id {
				t.ReplyCount++
			}
		}
		out[id] = t
	}
	return out, nil
}

func (r SuggestionRepo) Create(_ context.Context, sg *domain.Suggestion) (*domain.Suggestion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := *sg
	if out.ID == uuid.Nil {
		out.ID = uuid.New()
	}
	if out.Status == "" {
		out.Status = domain.ForumStatusOpen
	}
	out.CreatedAt = r.s.tick()
	r.s.suggestions[out.ID] = out
	return &out, nil
}

func (r SuggestionRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.ForumStatus, changedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sg, ok := r.s.suggestions[id]
	if !ok {
		return domain.ErrNotFound
	}
	sg.Status = status
	sg.StatusChangedAt = &changedAt
	r.s.suggestions[id] = sg
	return nil
}

func (r SuggestionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suggestions[id]; !ok {
		return domain.ErrNotFound
	}
	for _, rp := range r.s.replies {
		if rp.SuggestionID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.suggestions, id)
	return nil
}

type ReplyRepo struct{ s *Store }

func (r ReplyRepo) ListBySuggestion(_ context.Context, id uuid.UUID) ([]domain.Reply, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Reply{}
	for _, rp := range r.s.replies {
		if rp.SuggestionID == id {
			rp.Author = domain.Profile{UserID: rp.UserID}
			out = append(out, rp)
		}
	}
	slices.SortFunc(out, func(a, b domain.Reply) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}

func (r ReplyRepo) Create(_ context.Context, rp *domain.Reply) (*domain.Reply, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suggestions[rp.SuggestionID]; !ok {
		return nil, domain.ErrNotFound
	}
	out := *rp
	if out.ID == uuid.Nil {
		out.ID = uuid.New()
	}
	out.CreatedAt = r.s.tick()
	out.UpdatedAt = out.CreatedAt
	r.s.replies[out.ID] = out
	return &out, nil
}

func (r ReplyRepo) DeleteBySuggestion(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for rid, rp := range r.s.replies {
		if rp.SuggestionID == id {
			delete(r.s.replies, rid)
		}
	}
	return nil
}

type UpvoteRepo struct{ s *Store }

func (r UpvoteRepo) Add(_ context.Context, suggestionID, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suggestions[suggestionID]; !ok {
		return domain.ErrNotFound
	}
	r.s.upvotes[pair{suggestionID, userID}] = true
	return nil
}

func (r UpvoteRepo) Remove(_ context.Context, suggestionID, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.upvotes, pair{suggestionID, userID})
	return nil
}

func (r UpvoteRepo) DeleteBySuggestion(_ context.Context, suggestionID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for k := range r.s.upvotes {
		if k.a == suggestionID {
			delete(r.s.upvotes, k)
		}
	}
	return nil
}

type ProfileRepo struct{ s *Store }

func (r ProfileRepo) GetByUserIDs(_ context.Context, userIDs []uuid.UUID) ([]domain.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Profile{}
	for _, id := range userIDs {
		if p, ok := r.s.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type PageRepo struct{ s *Store }

func (r PageRepo) GetByCreator(_ context.Context, creatorID uuid.UUID) (*domain.PageConfig, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pages[creatorID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r PageRepo) Upsert(_ context.Context, page *domain.PageConfig) (*domain.PageConfig, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := *page
	out.UpdatedAt = r.s.tick()
	r.s.pages[out.CreatorID] = out
	return &out, nil
}

func emptyToNil(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
