package layout

import (
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

// ViewState is the per-viewer presentation state shared by every strategy.
// It is not safe for concurrent use; sessions guard it with their own lock.
type ViewState struct {
	DefaultExpanded bool

	// expanded holds only versions whose state differs from DefaultExpanded.
	expanded map[uuid.UUID]bool

	editing   uuid.UUID
	draftText string
	draftDesc string

	spotlight int
	orbit     uuid.UUID
}

// NewViewState returns an empty state.
func NewViewState(defaultExpanded bool) *ViewState {
	return &ViewState{
		DefaultExpanded: defaultExpanded,
		expanded:        make(map[uuid.UUID]bool),
	}
}

// Clone returns an independent copy.
func (s *ViewState) Clone() *ViewState {
	c := *s
	c.expanded = maps.Clone(s.expanded)
	if c.expanded == nil {
		c.expanded = make(map[uuid.UUID]bool)
	}
	return &c
}

// ---------------------------------------------------------------------------
// Expansion
// ---------------------------------------------------------------------------

// IsExpanded reports whether the version is expanded.
func (s *ViewState) IsExpanded(versionID uuid.UUID) bool {
	if v, ok := s.expanded[versionID]; ok {
		return v
	}
	return s.DefaultExpanded
}

// Toggle flips one version. Toggling twice restores the exact prior state.
func (s *ViewState) Toggle(versionID uuid.UUID) {
	next := !s.IsExpanded(versionID)
	if next == s.DefaultExpanded {
		delete(s.expanded, versionID)
		return
	}
	if s.expanded == nil {
		s.expanded = make(map[uuid.UUID]bool)
	}
	s.expanded[versionID] = next
}

// Overrides returns the number of versions deviating from the default.
func (s *ViewState) Overrides() int {
	return len(s.expanded)
}

// ---------------------------------------------------------------------------
// Inline edit
// ---------------------------------------------------------------------------

// BeginEdit opens the inline form for an item, seeding drafts from it.
func (s *ViewState) BeginEdit(item domain.Item) {
	s.editing = item.ID
	s.draftText = item.Title
	s.draftDesc = ""
	if item.Description != nil {
		s.draftDesc = *item.Description
	}
}

// SetDraft updates the drafts of the item being edited.
func (s *ViewState) SetDraft(title, description string) {
	s.draftText = title
	s.draftDesc = description
}

// SetDraftTitle updates only the title draft.
func (s *ViewState) SetDraftTitle(title string) { s.draftText = title }

// SetDraftDescription updates only the description draft.
func (s *ViewState) SetDraftDescription(desc string) { s.draftDesc = desc }

// CancelEdit closes the form and drops the drafts.
func (s *ViewState) CancelEdit() {
	s.editing = uuid.Nil
	s.draftText = ""
	s.draftDesc = ""
}

// Editing returns the id of the item being edited.
func (s *ViewState) Editing() (uuid.UUID, bool) {
	return s.editing, s.editing != uuid.Nil
}

// IsEditing reports whether the item is being edited.
func (s *ViewState) IsEditing(itemID uuid.UUID) bool {
	return s.editing != uuid.Nil && s.editing == itemID
}

// Draft returns the title and description drafts.
func (s *ViewState) Draft() (title, description string) {
	return s.draftText, s.draftDesc
}

// CanSave reports whether the title draft is non-blank.
func (s *ViewState) CanSave() bool {
	return strings.TrimSpace(s.draftText) != ""
}

// ---------------------------------------------------------------------------
// Spotlight and orbit
// ---------------------------------------------------------------------------

// SpotlightIndex returns the active index clamped to [0, n-1].
func (s *ViewState) SpotlightIndex(n int) int {
	return clampIndex(s.spotlight, n)
}

// SpotlightNext advances, stopping at the last version.
func (s *ViewState) SpotlightNext(n int) {
	s.spotlight = clampIndex(s.SpotlightIndex(n)+1, n)
}

// SpotlightPrev goes back, stopping at the first version.
func (s *ViewState) SpotlightPrev(n int) {
	s.spotlight = clampIndex(s.SpotlightIndex(n)-1, n)
}

// SpotlightGoto jumps to index i.
func (s *ViewState) SpotlightGoto(i, n int) {
	s.spotlight = clampIndex(i, n)
}

// SelectOrbit makes a version the active orbit node.
func (s *ViewState) SelectOrbit(versionID uuid.UUID) {
	s.orbit = versionID
}

// ActiveOrbit returns the index of the active orbit node. Unknown or unset
// selections resolve to the first version. Returns -1 for no versions.
func (s *ViewState) ActiveOrbit(versions []domain.Version) int {
	if len(versions) == 0 {
		return -1
	}
	for i, v := range versions {
		if v.ID == s.orbit {
			return i
		}
	}
	return 0
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// ---------------------------------------------------------------------------
// URL encoding
// ---------------------------------------------------------------------------

const (
	queryExpanded  = "x"
	queryEditing   = "edit"
	queryDraft     = "et"
	queryDraftDesc = "ed"
	querySpotlight = "sp"
	queryOrbit     = "orb"
)

// Encode writes the state into query values for stateless HTML rendering.
func (s *ViewState) Encode() url.Values {
	q := url.Values{}
	if len(s.expanded) > 0 {
		parts := make([]string, 0, len(s.expanded))
		for id, open := range s.expanded {
			flag := "0"
			if open {
				flag = "1"
			}
			parts = append(parts, id.String()+":"+flag)
		}
		slices.Sort(parts)
		q.Set(queryExpanded, strings.Join(parts, ","))
	}
	if s.editing != uuid.Nil {
		q.Set(queryEditing, s.editing.String())
		q.Set(queryDraft, s.draftText)
		if s.draftDesc != "" {
			q.Set(queryDraftDesc, s.draftDesc)
		}
	}
	if s.spotlight > 0 {
		q.Set(querySpotlight, strconv.Itoa(s.spotlight))
	}
	if s.orbit != uuid.Nil {
		q.Set(queryOrbit, s.orbit.String())
	}
	return q
}

// DecodeViewState reads state written by Encode. Malformed parts are ignored.
func DecodeViewState(q url.Values, defaultExpanded bool) *ViewState {
	s := NewViewState(defaultExpanded)

	if raw := q.Get(queryExpanded); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			idStr, flag, ok := strings.Cut(part, ":")
			if !ok {
				continue
			}
			id, err := uuid.Parse(idStr)
			if err != nil {
				continue
			}
			open := flag == "1"
			if open != defaultExpanded {
				s.expanded[id] = open
			}
		}
	}
	if id, err := uuid.Parse(q.Get(queryEditing)); err == nil {
		s.editing = id
		s.draftText = q.Get(queryDraft)
		s.draftDesc = q.Get(queryDraftDesc)
	}
	if i, err := strconv.Atoi(q.Get(querySpotlight)); err == nil && i > 0 {
		s.spotlight = i
	}
	if id, err := uuid.Parse(q.Get(queryOrbit)); err == nil {
		s.orbit = id
	}
	return s
}
