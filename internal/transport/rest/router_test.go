package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/internal/layout"
	"github.com/heartmarshall/storefront-backend/internal/live/livetest"
	"github.com/heartmarshall/storefront-backend/internal/service/storefront"
	"github.com/heartmarshall/storefront-backend/pkg/ctxutil"
)

const testUserHeader = "X-Test-User"

type changeRecorder struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (c *changeRecorder) Changed(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = append(c.ids, id)
}

func (c *changeRecorder) all() []uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]uuid.UUID(nil), c.ids...)
}

type harness struct {
	store   *livetest.Store
	changes *changeRecorder
	server  *httptest.Server
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	store := livetest.NewStore()
	log := discardLogger()
	svcs := store.Services(log)
	pages, ok := svcs.Pages.(*storefront.Service)
	require.True(t, ok)

	changes := &changeRecorder{}
	router := NewRouter(RouterDeps{
		Health:     NewHealthHandler(&dbPingerMock{}, "test"),
		Roadmap:    NewRoadmapHandler(svcs.Roadmap, pages, log),
		Forum:      NewForumHandler(svcs.Forum, log),
		Storefront: NewStorefrontHandler(pages, log),
		Page:       NewPageHandler(svcs, changes, log),
		Changes:    changes,
	})

	// Stands in for the JWT middleware.
	auth := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get(testUserHeader); raw != "" {
			r = r.WithContext(ctxutil.WithUserID(r.Context(), uuid.MustParse(raw)))
		}
		router.ServeHTTP(w, r)
	})

	srv := httptest.NewServer(auth)
	t.Cleanup(srv.Close)
	return &harness{store: store, changes: changes, server: srv}
}

func (h *harness) do(t *testing.T, method, path string, user uuid.UUID, body string) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, h.server.URL+path, rd)
	require.NoError(t, err)
	if user != uuid.Nil {
		req.Header.Set(testUserHeader, user.String())
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// ---------------------------------------------------------------------------
// Roadmap
// ---------------------------------------------------------------------------

func TestRoadmap_GetAggregatesItems(t *testing.T) {
	h := newHarness(t)
	creator := uuid.New()
	ver := h.store.AddVersion(creator, "Launch", 0)
	h.store.AddItem(ver.ID, "Checkout", domain.StatusCompleted, 0)
	h.store.AddItem(ver.ID, "Search", domain.StatusInProgress, 1)

	resp := h.do(t, http.MethodGet, "/api/creators/"+creator.String()+"/roadmap", uuid.Nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	versions := decodeBody[[]versionResponse](t, resp)
	require.Len(t, versions, 1)
	assert.Equal(t, "Launch", versions[0].Name)
	assert.Equal(t, 1, versions[0].Completed)
	assert.Equal(t, 2, versions[0].Total)
	require.Len(t, versions[0].Items, 2)
	assert.Equal(t, "Checkout", versions[0].Items[0].Title)
}

func TestRoadmap_GetBadCreatorID(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, http.MethodGet, "/api/creators/not-a-uuid/roadmap", uuid.Nil, "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRoadmap_AddVersion(t *testing.T) {
	h := newHarness(t)
	owner := uuid.New()

	resp := h.do(t, http.MethodPost, "/api/roadmap/versions", owner, `{"name":"  v2.0  "}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decodeBody[versionResponse](t, resp)
	assert.Equal(t, "v2.0", created.Name)
	assert.Equal(t, "backlog", created.Status)
	assert.Equal(t, 1, h.store.VersionCount(owner))
	assert.Equal(t, []uuid.UUID{owner}, h.changes.all())
}

func TestRoadmap_AddVersionRejected(t *testing.T) {
	tests := []struct {
		name     string
		user     uuid.UUID
		body     string
		wantCode int
	}{
		{"anonymous", uuid.Nil, `{"name":"v1"}`, http.StatusUnauthorized},
		{"blank name", uuid.New(), `{"name":"   "}`, http.StatusBadRequest},
		{"unknown field", uuid.New(), `{"name":"v1","color":"red"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			resp := h.do(t, http.MethodPost, "/api/roadmap/versions", tt.user, tt.body)

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Empty(t, h.changes.all(), "failed requests notify nobody")
		})
	}
}

func TestRoadmap_DeleteVersionNeedsConfirmation(t *testing.T) {
	h := newHarness(t)
	owner := uuid.New()
	ver := h.store.AddVersion(owner, "Launch", 0)
	path := "/api/roadmap/versions/" + ver.ID.String()

	resp := h.do(t, http.MethodDelete, path, owner, "")
	require.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
	assert.Equal(t, 1, h.store.VersionCount(owner))

	resp = h.do(t, http.MethodDelete, path+"?confirm=true", owner, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, h.store.VersionCount(owner))
}

func TestRoadmap_DeleteVersionForeignOwner(t *testing.T) {
	h := newHarness(t)
	ver := h.store.AddVersion(uuid.New(), "Launch", 0)

	resp := h.do(t, http.MethodDelete, "/api/roadmap/versions/"+ver.ID.String()+"?confirm=1", uuid.New(), "")

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRoadmap_SetItemStatus(t *testing.T) {
	h := newHarness(t)
	owner := uuid.New()
	ver := h.store.AddVersion(owner, "Launch", 0)
	it := h.store.AddItem(ver.ID, "Checkout", domain.StatusBacklog, 0)
	path := "/api/roadmap/items/" + it.ID.String() + "/status"

	resp := h.do(t, http.MethodPut, path, owner, `{"status":"qa"}`)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	got, _ := h.store.Item(it.ID)
	assert.Equal(t, domain.StatusQA, got.Status)

	resp = h.do(t, http.MethodPut, path, owner, `{"status":"shipped"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRoadmap_Vote(t *testing.T) {
	h := newHarness(t)
	creator, voter := uuid.New(), uuid.New()
	ver := h.store.AddVersion(creator, "Launch", 0)
	it := h.store.AddItem(ver.ID, "Checkout", domain.StatusBacklog, 0)
	path := "/api/creators/" + creator.String() + "/roadmap/items/" + it.ID.String() + "/vote"

	resp := h.do(t, http.MethodPut, path, voter, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, []uuid.UUID{creator}, h.changes.all())

	resp = h.do(t, http.MethodGet, "/api/creators/"+creator.String()+"/roadmap", voter, "")
	versions := decodeBody[[]versionResponse](t, resp)
	require.Len(t, versions[0].Items, 1)
	assert.Equal(t, 1, versions[0].Items[0].VoteCount)
	assert.True(t, versions[0].Items[0].UserHasVoted)

	resp = h.do(t, http.MethodDelete, path, voter, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRoadmap_VoteDisabledBySection(t *testing.T) {
	h := newHarness(t)
	creator := uuid.New()
	ver := h.store.AddVersion(creator, "Launch", 0)
	it := h.store.AddItem(ver.ID, "Checkout", domain.StatusBacklog, 0)
	page := domain.DefaultPageConfig(creator)
	page.Sections[2].Settings = json.RawMessage(`{"votingEnabled":false}`)
	h.store.SetPage(page)

	resp := h.do(t, http.MethodPut,
		"/api/creators/"+creator.String()+"/roadmap/items/"+it.ID.String()+"/vote", uuid.New(), "")

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "voting disabled", decodeBody[errorResponse](t, resp).Error)
}

func TestRoadmap_VoteUnderOtherCreatorPath(t *testing.T) {
	h := newHarness(t)
	creator, other, voter := uuid.New(), uuid.New(), uuid.New()
	ver := h.store.AddVersion(creator, "Launch", 0)
	it := h.store.AddItem(ver.ID, "Checkout", domain.StatusBacklog, 0)
	page := domain.DefaultPageConfig(creator)
	page.Sections[2].Settings = json.RawMessage(`{"votingEnabled":false}`)
	h.store.SetPage(page)

	resp := h.do(t, http.MethodPut,
		"/api/creators/"+other.String()+"/roadmap/items/"+it.ID.String()+"/vote", voter, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, h.changes.all())

	resp = h.do(t, http.MethodGet, "/api/creators/"+creator.String()+"/roadmap", voter, "")
	versions := decodeBody[[]versionResponse](t, resp)
	require.Len(t, versions[0].Items, 1)
	assert.Zero(t, versions[0].Items[0].VoteCount)
	assert.False(t, versions[0].Items[0].UserHasVoted)
}

// ---------------------------------------------------------------------------
// Forum
// ---------------------------------------------------------------------------

func TestForum_SubmitAndList(t *testing.T) {
	h := newHarness(t)
	creator, author := uuid.New(), uuid.New()
	h.store.SetProfile(author, "Dana")
	path := "/api/creators/" + creator.String() + "/suggestions"

	resp := h.do(t, http.MethodPost, path, author, `{"title":"Dark mode"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[suggestionResponse](t, resp)
	assert.Equal(t, "open", created.Status)

	resp = h.do(t, http.MethodGet, path+"?sort=newest", uuid.Nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]suggestionResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Dark mode", list[0].Title)
	assert.Equal(t, "Dana", list[0].Author.Name)
}

func TestForum_SubmitAnonymous(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, http.MethodPost, "/api/creators/"+uuid.NewString()+"/suggestions", uuid.Nil, `{"title":"Dark mode"}`)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestForum_UpvoteAndReply(t *testing.T) {
	h := newHarness(t)
	creator, visitor := uuid.New(), uuid.New()
	sg := h.store.AddSuggestion(creator, uuid.New(), "Dark mode")
	base := "/api/suggestions/" + sg.ID.String()

	resp := h.do(t, http.MethodPut, base+"/upvote", visitor, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = h.do(t, http.MethodPost, base+"/replies", creator, `{"content":"On it"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, decodeBody[replyResponse](t, resp).IsCreator)

	resp = h.do(t, http.MethodGet, base+"/replies", uuid.Nil, "")
	replies := decodeBody[[]replyResponse](t, resp)
	require.Len(t, replies, 1)
	assert.Equal(t, "On it", replies[0].Content)
}

func TestForum_OwnerModerates(t *testing.T) {
	h := newHarness(t)
	creator := uuid.New()
	sg := h.store.AddSuggestion(creator, uuid.New(), "Dark mode")
	base := "/api/suggestions/" + sg.ID.String()

	resp := h.do(t, http.MethodPut, base+"/status", uuid.New(), `{"status":"planned"}`)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = h.do(t, http.MethodPut, base+"/status", creator, `{"status":"planned"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[suggestionResponse](t, resp)
	assert.Equal(t, "planned", updated.Status)
	assert.NotNil(t, updated.StatusChangedAt)

	resp = h.do(t, http.MethodDelete, base, creator, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	_, ok := h.store.Suggestion(sg.ID)
	assert.False(t, ok)
}

// ---------------------------------------------------------------------------
// Storefront
// ---------------------------------------------------------------------------

func TestStorefront_Themes(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, http.MethodGet, "/api/themes", uuid.Nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	themes := decodeBody[[]themeResponse](t, resp)
	require.NotEmpty(t, themes)
	for _, th := range themes {
		assert.NotEmpty(t, th.ID)
		assert.NotEmpty(t, th.Background)
	}
}

func TestStorefront_SaveAndStyle(t *testing.T) {
	h := newHarness(t)
	owner := uuid.New()

	resp := h.do(t, http.MethodPut, "/api/page", owner,
		`{"sections":[{"id":"roadmap","type":"roadmap","visible":true,"settings":{"theme":"midnight","layout":"list","unknown":1}}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = h.do(t, http.MethodGet, "/api/creators/"+owner.String()+"/page", uuid.Nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decodeBody[domain.PageConfig](t, resp)
	require.Len(t, page.Sections, 1)
	assert.NotContains(t, string(page.Sections[0].Settings), "unknown")

	resp = h.do(t, http.MethodGet, "/api/creators/"+owner.String()+"/roadmap/style", uuid.Nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	style := decodeBody[roadmapStyleResponse](t, resp)
	assert.Equal(t, "midnight", style.Style.ThemeID)
	assert.Equal(t, "list", style.Style.Layout)
	assert.NotEmpty(t, style.Style.Status)
}

func TestStorefront_SavePageAnonymous(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, http.MethodPut, "/api/page", uuid.Nil, `{"sections":[]}`)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ---------------------------------------------------------------------------
// Server-rendered page
// ---------------------------------------------------------------------------

func TestPage_RendersSection(t *testing.T) {
	h := newHarness(t)
	creator := uuid.New()
	h.store.AddVersion(creator, "Launch <beta>", 0)

	resp := h.do(t, http.MethodGet, "/s/"+creator.String()+"/roadmap", uuid.Nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	html := string(body)
	assert.Contains(t, html, "Launch &lt;beta&gt;")
	assert.NotContains(t, html, "Launch <beta>")
	assert.Contains(t, html, "/s/"+creator.String()+"/roadmap/live")
}

func TestPage_ActionTogglesAndCarriesState(t *testing.T) {
	h := newHarness(t)
	creator := uuid.New()
	ver := h.store.AddVersion(creator, "Launch", 0)

	reqBody, err := json.Marshal(actionRequest{
		Event: layout.Event{Action: layout.Action{Op: layout.OpToggle, Target: ver.ID.String()}},
	})
	require.NoError(t, err)

	resp := h.do(t, http.MethodPost, "/s/"+creator.String()+"/roadmap/actions", uuid.Nil, string(reqBody))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[actionResponse](t, resp)
	assert.Contains(t, out.HTML, "Launch")
	assert.Empty(t, out.Error)
	assert.NotEmpty(t, out.State)
	_, err = url.ParseQuery(out.State)
	assert.NoError(t, err)
	assert.Empty(t, h.changes.all(), "view-local actions notify nobody")
}

func TestPage_ActionMutationNotifies(t *testing.T) {
	h := newHarness(t)
	creator := uuid.New()

	reqBody, err := json.Marshal(actionRequest{
		Event: layout.Event{Action: layout.Action{Op: layout.OpAddVersion}, Fields: map[string]string{"name": "v3"}},
	})
	require.NoError(t, err)

	resp := h.do(t, http.MethodPost, "/s/"+creator.String()+"/roadmap/actions", creator, string(reqBody))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[actionResponse](t, resp)
	assert.Contains(t, out.HTML, "v3")
	require.NotEmpty(t, out.Toasts)
	assert.Equal(t, "success", out.Toasts[0].Level)
	assert.Equal(t, []uuid.UUID{creator}, h.changes.all())
	assert.Equal(t, 1, h.store.VersionCount(creator))
}

func TestPage_ActionFailureReportsToast(t *testing.T) {
	h := newHarness(t)
	creator := uuid.New()

	reqBody, err := json.Marshal(actionRequest{
		Event: layout.Event{Action: layout.Action{Op: layout.OpAddVersion}, Fields: map[string]string{"name": "v3"}},
	})
	require.NoError(t, err)

	resp := h.do(t, http.MethodPost, "/s/"+creator.String()+"/roadmap/actions", uuid.New(), string(reqBody))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[actionResponse](t, resp)
	assert.Zero(t, h.store.VersionCount(creator))
	assert.Empty(t, h.changes.all())
	assert.True(t, len(out.Toasts) > 0 || out.Error != "")
}
