package forum

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/pkg/ctxutil"
)

// ListReplies returns a thread oldest first with authors resolved.
// IsCreator marks replies written by the board owner.
func (s *Service) ListReplies(ctx context.Context, suggestionID uuid.UUID) ([]domain.Reply, error) {
	if suggestionID == uuid.Nil {
		return nil, domain.NewValidationError("suggestion_id", "required")
	}

	sg, err := s.suggestions.GetByID(ctx, suggestionID)
	if err != nil {
		return nil, fmt.Errorf("get suggestion: %w", err)
	}

	replies, err := s.replies.ListBySuggestion(ctx, suggestionID)
	if err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	if len(replies) == 0 {
		return []domain.Reply{}, nil
	}
	slices.SortStableFunc(replies, func(a, b domain.Reply) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	authors := make([]uuid.UUID, len(replies))
	for i, r := range replies {
		authors[i] = r.UserID
	}
	profiles, err := s.loaders(ctx).Profiles(ctx, authors)
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}

	for i := range replies {
		replies[i].Author = profiles[replies[i].UserID]
		replies[i].IsCreator = replies[i].UserID == sg.CreatorID
	}
	return replies, nil
}

// SubmitReply appends a reply to a suggestion thread.
func (s *Service) SubmitReply(ctx context.Context, input SubmitReplyInput) (*domain.Reply, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.suggestions.GetByID(ctx, input.SuggestionID); err != nil {
		return nil, fmt.Errorf("get suggestion: %w", err)
	}

	created, err := s.replies.Create(ctx, &domain.Reply{
		SuggestionID: input.SuggestionID,
		UserID:       userID,
		Content:      strings.TrimSpace(input.Content),
	})
	if err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}

	s.log.InfoContext(ctx, "reply submitted",
		slog.String("user_id", userID.String()),
		slog.String("suggestion_id", input.SuggestionID.String()),
		slog.String("reply_id", created.ID.String()),
	)

	return created, nil
}
