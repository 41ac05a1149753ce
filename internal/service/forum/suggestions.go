package forum

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/pkg/ctxutil"
)

// ListSuggestions returns a creator's board with upvote counts, the
// caller's own upvotes, reply counts and authors resolved.
func (s *Service) ListSuggestions(ctx context.Context, input ListSuggestionsInput) ([]domain.Suggestion, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	viewerID, _ := ctxutil.UserIDFromCtx(ctx)

	list, err := s.suggestions.ListByCreator(ctx, input.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	if len(list) == 0 {
		return []domain.Suggestion{}, nil
	}

	ids := make([]uuid.UUID, len(list))
	authors := make([]uuid.UUID, len(list))
	for i, sg := range list {
		ids[i] = sg.ID
		authors[i] = sg.UserID
	}

	tallies, err := s.suggestions.Tally(ctx, ids, viewerID)
	if err != nil {
		return nil, fmt.Errorf("tally suggestions: %w", err)
	}
	profiles, err := s.loaders(ctx).Profiles(ctx, authors)
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}

	for i := range list {
		if t, ok := tallies[list[i].ID]; ok {
			list[i].Upvotes = t.Upvotes
			list[i].UserUpvoted = t.UserUpvoted
			list[i].ReplyCount = t.ReplyCount
		}
		list[i].Author = profiles[list[i].UserID]
	}

	sort := input.Sort
	if sort == "" {
		sort = domain.SuggestionSortUpvotes
	}
	return SortSuggestions(list, sort), nil
}

// SortSuggestions returns a re-sorted copy. Upvotes and discussed order by
// their count, newest by creation time; ties fall back to newest first.
func SortSuggestions(list []domain.Suggestion, mode domain.SuggestionSort) []domain.Suggestion {
	out := slices.Clone(list)
	newest := func(a, b domain.Suggestion) int { return b.CreatedAt.Compare(a.CreatedAt) }

	var by func(a, b domain.Suggestion) int
	switch mode {
	case domain.SuggestionSortNewest:
		by = newest
	case domain.SuggestionSortDiscussed:
		by = func(a, b domain.Suggestion) int {
			return cmp.Or(cmp.Compare(b.ReplyCount, a.ReplyCount), newest(a, b))
		}
	default:
		by = func(a, b domain.Suggestion) int {
			return cmp.Or(cmp.Compare(b.Upvotes, a.Upvotes), newest(a, b))
		}
	}
	slices.SortStableFunc(out, by)
	return out
}

// SubmitSuggestion posts a new suggestion with status open.
func (s *Service) SubmitSuggestion(ctx context.Context, input SubmitSuggestionInput) (*domain.Suggestion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var desc *string
	if input.Description != nil {
		if d := strings.TrimSpace(*input.Description); d != "" {
			desc = &d
		}
	}

	created, err := s.suggestions.Create(ctx, &domain.Suggestion{
		CreatorID:   input.CreatorID,
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: desc,
		Status:      domain.ForumStatusOpen,
	})
	if err != nil {
		return nil, fmt.Errorf("create suggestion: %w", err)
	}

	s.log.InfoContext(ctx, "suggestion submitted",
		slog.String("user_id", userID.String()),
		slog.String("creator_id", input.CreatorID.String()),
		slog.String("suggestion_id", created.ID.String()),
	)

	return created, nil
}

// ToggleUpvote removes the caller's upvote if present, otherwise adds one.
func (s *Service) ToggleUpvote(ctx context.Context, input ToggleUpvoteInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	var err error
	if input.CurrentlyUpvoted {
		err = s.upvotes.Remove(ctx, input.SuggestionID, userID)
	} else {
		err = s.upvotes.Add(ctx, input.SuggestionID, userID)
	}
	if err != nil {
		return fmt.Errorf("toggle upvote: %w", err)
	}

	s.log.InfoContext(ctx, "suggestion upvote toggled",
		slog.String("user_id", userID.String()),
		slog.String("suggestion_id", input.SuggestionID.String()),
		slog.Bool("upvoted", !input.CurrentlyUpvoted),
	)

	return nil
}

// UpdateSuggestionStatus sets the status and stamps status_changed_at.
// It returns the suggestion as it now reads.
func (s *Service) UpdateSuggestionStatus(ctx context.Context, input UpdateSuggestionStatusInput) (*domain.Suggestion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	sg, err := s.ownedSuggestion(ctx, userID, input.SuggestionID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.suggestions.UpdateStatus(ctx, input.SuggestionID, input.Status, now); err != nil {
		return nil, fmt.Errorf("update suggestion status: %w", err)
	}
	sg.Status = input.Status
	sg.StatusChangedAt = &now

	s.log.InfoContext(ctx, "suggestion status updated",
		slog.String("user_id", userID.String()),
		slog.String("suggestion_id", input.SuggestionID.String()),
		slog.String("status", input.Status.String()),
	)

	return sg, nil
}

// DeleteSuggestion removes a suggestion with its replies and upvotes.
func (s *Service) DeleteSuggestion(ctx context.Context, input DeleteSuggestionInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.ownedSuggestion(ctx, userID, input.SuggestionID); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.replies.DeleteBySuggestion(txCtx, input.SuggestionID); err != nil {
			return fmt.Errorf("delete replies: %w", err)
		}
		if err := s.upvotes.DeleteBySuggestion(txCtx, input.SuggestionID); err != nil {
			return fmt.Errorf("delete upvotes: %w", err)
		}
		if err := s.suggestions.Delete(txCtx, input.SuggestionID); err != nil {
			return fmt.Errorf("delete suggestion: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "suggestion deleted",
		slog.String("user_id", userID.String()),
		slog.String("suggestion_id", input.SuggestionID.String()),
	)

	return nil
}
