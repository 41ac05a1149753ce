package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/internal/service/forum"
)

type forumService interface {
	ListSuggestions(ctx context.Context, input forum.ListSuggestionsInput) ([]domain.Suggestion, error)
	SubmitSuggestion(ctx context.Context, input forum.SubmitSuggestionInput) (*domain.Suggestion, error)
	ToggleUpvote(ctx context.Context, input forum.ToggleUpvoteInput) error
	UpdateSuggestionStatus(ctx context.Context, input forum.UpdateSuggestionStatusInput) (*domain.Suggestion, error)
	DeleteSuggestion(ctx context.Context, input forum.DeleteSuggestionInput) error
	ListReplies(ctx context.Context, suggestionID uuid.UUID) ([]domain.Reply, error)
	SubmitReply(ctx context.Context, input forum.SubmitReplyInput) (*domain.Reply, error)
}

// ForumHandler serves the suggestion board JSON API.
type ForumHandler struct {
	svc forumService
	log *slog.Logger
}

// NewForumHandler creates a ForumHandler.
func NewForumHandler(svc forumService, logger *slog.Logger) *ForumHandler {
	return &ForumHandler{svc: svc, log: logger.With("handler", "forum")}
}

type submitSuggestionRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type submitReplyRequest struct {
	Content string `json:"content"`
}

// List handles GET /api/creators/{creatorID}/suggestions?sort=upvotes|newest|discussed.
func (h *ForumHandler) List(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := uuidParam(w, r, "creatorID")
	if !ok {
		return
	}

	list, err := h.svc.ListSuggestions(r.Context(), forum.ListSuggestionsInput{
		CreatorID: creatorID,
		Sort:      domain.SuggestionSort(r.URL.Query().Get("sort")),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]suggestionResponse, len(list))
	for i, s := range list {
		resp[i] = toSuggestionResponse(s)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Submit handles POST /api/creators/{creatorID}/suggestions.
func (h *ForumHandler) Submit(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := uuidParam(w, r, "creatorID")
	if !ok {
		return
	}
	var req submitSuggestionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s, err := h.svc.SubmitSuggestion(r.Context(), forum.SubmitSuggestionInput{
		CreatorID:   creatorID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSuggestionResponse(*s))
}

// Upvote handles PUT (upvote) and DELETE (withdraw) on
// /api/suggestions/{suggestionID}/upvote.
func (h *ForumHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "suggestionID")
	if !ok {
		return
	}

	err := h.svc.ToggleUpvote(r.Context(), forum.ToggleUpvoteInput{
		SuggestionID:     id,
		CurrentlyUpvoted: r.Method == http.MethodDelete,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetStatus handles PUT /api/suggestions/{suggestionID}/status.
func (h *ForumHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "suggestionID")
	if !ok {
		return
	}
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s, err := h.svc.UpdateSuggestionStatus(r.Context(), forum.UpdateSuggestionStatusInput{
		SuggestionID: id,
		Status:       domain.ForumStatus(req.Status),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSuggestionResponse(*s))
}

// Delete handles DELETE /api/suggestions/{suggestionID}.
func (h *ForumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "suggestionID")
	if !ok {
		return
	}

	if err := h.svc.DeleteSuggestion(r.Context(), forum.DeleteSuggestionInput{SuggestionID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Replies handles GET /api/suggestions/{suggestionID}/replies.
func (h *ForumHandler) Replies(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "suggestionID")
	if !ok {
		return
	}

	replies, err := h.svc.ListReplies(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]replyResponse, len(replies))
	for i, rp := range replies {
		resp[i] = toReplyResponse(rp)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Reply handles POST /api/suggestions/{suggestionID}/replies.
func (h *ForumHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "suggestionID")
	if !ok {
		return
	}
	var req submitReplyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rp, err := h.svc.SubmitReply(r.Context(), forum.SubmitReplyInput{SuggestionID: id, Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReplyResponse(*rp))
}
