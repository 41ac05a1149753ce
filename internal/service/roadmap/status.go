package roadmap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/pkg/ctxutil"
)

// UpdateStatus changes the status of one version, item or suggestion.
// Versions and items change only the status column; suggestions also get
// status_changed_at stamped to now.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	switch input.Kind {
	case domain.EntityKindVersion:
		if _, err := s.ownedVersion(ctx, userID, input.ID); err != nil {
			return err
		}
		st := domain.Status(input.Status)
		if _, err := s.versions.Update(ctx, input.ID, domain.VersionUpdateParams{Status: &st}); err != nil {
			return fmt.Errorf("update version status: %w", err)
		}

	case domain.EntityKindItem:
		if _, err := s.ownedItem(ctx, userID, input.ID); err != nil {
			return err
		}
		st := domain.Status(input.Status)
		if _, err := s.items.Update(ctx, input.ID, domain.ItemUpdateParams{Status: &st}); err != nil {
			return fmt.Errorf("update item status: %w", err)
		}

	case domain.EntityKindSuggestion:
		sg, err := s.suggestions.GetByID(ctx, input.ID)
		if err != nil {
			return fmt.Errorf("get suggestion: %w", err)
		}
		if sg.CreatorID != userID {
			return domain.ErrForbidden
		}
		if err := s.suggestions.UpdateStatus(ctx, input.ID, domain.ForumStatus(input.Status), s.now()); err != nil {
			return fmt.Errorf("update suggestion status: %w", err)
		}
	}

	s.log.InfoContext(ctx, "status updated",
		slog.String("user_id", userID.String()),
		slog.String("kind", input.Kind.String()),
		slog.String("id", input.ID.String()),
		slog.String("status", input.Status),
	)

	return nil
}
