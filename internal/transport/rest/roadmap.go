package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/internal/service/roadmap"
)

type roadmapService interface {
	Load(ctx context.Context, input roadmap.LoadInput) ([]domain.Version, error)
	AddVersion(ctx context.Context, input roadmap.AddVersionInput) (*domain.Version, error)
	UpdateVersionDescription(ctx context.Context, input roadmap.UpdateVersionDescriptionInput) (*domain.Version, error)
	DeleteVersion(ctx context.Context, input roadmap.DeleteVersionInput) error
	AddItem(ctx context.Context, input roadmap.AddItemInput) (*domain.Item, error)
	UpdateTask(ctx context.Context, input roadmap.UpdateTaskInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, input roadmap.DeleteItemInput) error
	UpdateStatus(ctx context.Context, input roadmap.UpdateStatusInput) error
	ToggleItemVote(ctx context.Context, input roadmap.ToggleItemVoteInput) error
}

type settingsSource interface {
	RoadmapSettings(ctx context.Context, creatorID uuid.UUID) (domain.RoadmapSettings, error)
}

// RoadmapHandler serves the roadmap JSON API.
type RoadmapHandler struct {
	svc      roadmapService
	settings settingsSource
	log      *slog.Logger
}

// NewRoadmapHandler creates a RoadmapHandler.
func NewRoadmapHandler(svc roadmapService, settings settingsSource, logger *slog.Logger) *RoadmapHandler {
	return &RoadmapHandler{svc: svc, settings: settings, log: logger.With("handler", "roadmap")}
}

type addVersionRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	ProductID   *uuid.UUID `json:"productId"`
}

type descriptionRequest struct {
	Description string `json:"description"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type addItemRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type updateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Get returns a creator's roadmap with votes aggregated for the caller.
// GET /api/creators/{creatorID}/roadmap?product_id=
func (h *RoadmapHandler) Get(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := uuidParam(w, r, "creatorID")
	if !ok {
		return
	}
	productID, ok := optionalUUIDQuery(w, r, "product_id")
	if !ok {
		return
	}

	settings, err := h.settings.RoadmapSettings(r.Context(), creatorID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	versions, err := h.svc.Load(r.Context(), roadmap.LoadInput{
		CreatorID:   creatorID,
		ProductID:   productID,
		SortByVotes: settings.SortByVotes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]versionResponse, len(versions))
	for i, v := range versions {
		resp[i] = toVersionResponse(v)
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddVersion handles POST /api/roadmap/versions.
func (h *RoadmapHandler) AddVersion(w http.ResponseWriter, r *http.Request) {
	var req addVersionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v, err := h.svc.AddVersion(r.Context(), roadmap.AddVersionInput{
		Name:        req.Name,
		Description: req.Description,
		ProductID:   req.ProductID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toVersionResponse(*v))
}

// UpdateVersionDescription handles PATCH /api/roadmap/versions/{versionID}.
func (h *RoadmapHandler) UpdateVersionDescription(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "versionID")
	if !ok {
		return
	}
	var req descriptionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v, err := h.svc.UpdateVersionDescription(r.Context(), roadmap.UpdateVersionDescriptionInput{
		VersionID:   id,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVersionResponse(*v))
}

// SetVersionStatus handles PUT /api/roadmap/versions/{versionID}/status.
func (h *RoadmapHandler) SetVersionStatus(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, domain.EntityKindVersion, "versionID")
}

// SetItemStatus handles PUT /api/roadmap/items/{itemID}/status.
func (h *RoadmapHandler) SetItemStatus(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, domain.EntityKindItem, "itemID")
}

func (h *RoadmapHandler) setStatus(w http.ResponseWriter, r *http.Request, kind domain.EntityKind, param string) {
	id, ok := uuidParam(w, r, param)
	if !ok {
		return
	}
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.UpdateStatus(r.Context(), roadmap.UpdateStatusInput{Kind: kind, ID: id, Status: req.Status})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteVersion handles DELETE /api/roadmap/versions/{versionID}?confirm=true.
// Without confirmation it answers 428 and deletes nothing.
func (h *RoadmapHandler) DeleteVersion(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "versionID")
	if !ok {
		return
	}

	err := h.svc.DeleteVersion(r.Context(), roadmap.DeleteVersionInput{VersionID: id, Confirmed: confirmed(r)})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /api/roadmap/versions/{versionID}/items.
func (h *RoadmapHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	versionID, ok := uuidParam(w, r, "versionID")
	if !ok {
		return
	}
	var req addItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	it, err := h.svc.AddItem(r.Context(), roadmap.AddItemInput{
		VersionID:   versionID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(*it))
}

// UpdateTask handles PATCH /api/roadmap/items/{itemID}.
func (h *RoadmapHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "itemID")
	if !ok {
		return
	}
	var req updateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	it, err := h.svc.UpdateTask(r.Context(), roadmap.UpdateTaskInput{
		ItemID:      id,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(*it))
}

// DeleteItem handles DELETE /api/roadmap/items/{itemID}.
func (h *RoadmapHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "itemID")
	if !ok {
		return
	}

	if err := h.svc.DeleteItem(r.Context(), roadmap.DeleteItemInput{ItemID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Vote handles PUT (vote) and DELETE (unvote) on
// /api/creators/{creatorID}/roadmap/items/{itemID}/vote. The section-level
// voting switch comes from the creator's roadmap settings; items of other
// creators are not found.
func (h *RoadmapHandler) Vote(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := uuidParam(w, r, "creatorID")
	if !ok {
		return
	}
	itemID, ok := uuidParam(w, r, "itemID")
	if !ok {
		return
	}

	settings, err := h.settings.RoadmapSettings(r.Context(), creatorID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	err = h.svc.ToggleItemVote(r.Context(), roadmap.ToggleItemVoteInput{
		CreatorID:      creatorID,
		ItemID:         itemID,
		CurrentlyVoted: r.Method == http.MethodDelete,
		SectionVoting:  settings.VotingOn(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
