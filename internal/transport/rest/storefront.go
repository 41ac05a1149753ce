package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/internal/theme"
)

type storefrontService interface {
	GetPage(ctx context.Context, creatorID uuid.UUID) (*domain.PageConfig, error)
	SavePage(ctx context.Context, page domain.PageConfig) (*domain.PageConfig, error)
	RoadmapSettings(ctx context.Context, creatorID uuid.UUID) (domain.RoadmapSettings, error)
}

// StorefrontHandler serves page-builder configuration and theme lookups.
type StorefrontHandler struct {
	svc storefrontService
	log *slog.Logger
}

// NewStorefrontHandler creates a StorefrontHandler.
func NewStorefrontHandler(svc storefrontService, logger *slog.Logger) *StorefrontHandler {
	return &StorefrontHandler{svc: svc, log: logger.With("handler", "storefront")}
}

type statusStyleResponse struct {
	Background string `json:"background"`
	Border     string `json:"border"`
	Text       string `json:"text"`
}

type styleResponse struct {
	ThemeID       string                         `json:"themeId"`
	Accent        string                         `json:"accent"`
	Background    string                         `json:"background"`
	Card          string                         `json:"card"`
	Border        string                         `json:"border"`
	TextPrimary   string                         `json:"textPrimary"`
	TextSecondary string                         `json:"textSecondary"`
	Font          string                         `json:"font"`
	Layout        string                         `json:"layout"`
	Gap           int                            `json:"gap"`
	Padding       int                            `json:"padding"`
	Radius        int                            `json:"radius"`
	Status        map[string]statusStyleResponse `json:"status"`
}

type roadmapStyleResponse struct {
	Settings domain.RoadmapSettings `json:"settings"`
	Style    styleResponse          `json:"style"`
}

// Themes handles GET /api/themes.
func (h *StorefrontHandler) Themes(w http.ResponseWriter, r *http.Request) {
	themes := theme.List()
	resp := make([]themeResponse, len(themes))
	for i, t := range themes {
		resp[i] = toThemeResponse(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetPage handles GET /api/creators/{creatorID}/page.
func (h *StorefrontHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := uuidParam(w, r, "creatorID")
	if !ok {
		return
	}

	page, err := h.svc.GetPage(r.Context(), creatorID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// SavePage handles PUT /api/page. The page always belongs to the caller.
func (h *StorefrontHandler) SavePage(w http.ResponseWriter, r *http.Request) {
	var req domain.PageConfig
	if !decodeJSON(w, r, &req) {
		return
	}

	page, err := h.svc.SavePage(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// RoadmapStyle handles GET /api/creators/{creatorID}/roadmap/style: the
// effective section settings and the style resolved from them.
func (h *StorefrontHandler) RoadmapStyle(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := uuidParam(w, r, "creatorID")
	if !ok {
		return
	}

	settings, err := h.svc.RoadmapSettings(r.Context(), creatorID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, roadmapStyleResponse{
		Settings: settings,
		Style:    toStyleResponse(theme.Resolve(settings)),
	})
}

func toStyleResponse(st theme.ResolvedStyle) styleResponse {
	resp := styleResponse{
		ThemeID:       st.ThemeID,
		Accent:        st.Accent,
		Background:    st.Background.CSS(),
		Card:          st.Card,
		Border:        st.Border,
		TextPrimary:   st.TextPrimary,
		TextSecondary: st.TextSecondary,
		Font:          st.Font,
		Layout:        st.Layout.String(),
		Gap:           st.Spacing.Gap,
		Padding:       st.Spacing.Padding,
		Radius:        st.Radius,
		Status:        make(map[string]statusStyleResponse, len(st.Status)),
	}
	for s, ss := range st.Status {
		resp.Status[s.String()] = statusStyleResponse{Background: ss.Background, Border: ss.Border, Text: ss.Text}
	}
	return resp
}
