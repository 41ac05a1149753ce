package roadmap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/pkg/ctxutil"
)

// AddItem appends an item to a version. Its sort order is the number of
// items the version already has.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*domain.Item, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedVersion(ctx, userID, input.VersionID); err != nil {
		return nil, err
	}

	var created *domain.Item
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		count, err := s.items.CountByVersion(txCtx, input.VersionID)
		if err != nil {
			return fmt.Errorf("count items: %w", err)
		}

		created, err = s.items.Create(txCtx, &domain.Item{
			VersionID:   input.VersionID,
			Title:       strings.TrimSpace(input.Title),
			Description: normalizeDescription(input.Description),
			Status:      domain.StatusBacklog,
			SortOrder:   count,
		})
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item created",
		slog.String("user_id", userID.String()),
		slog.String("version_id", input.VersionID.String()),
		slog.String("item_id", created.ID.String()),
		slog.Int("sort_order", created.SortOrder),
	)

	return created, nil
}

// UpdateTask saves the inline edit form: title and description.
func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput) (*domain.Item, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedItem(ctx, userID, input.ItemID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	desc := ""
	if d := normalizeDescription(&input.Description); d != nil {
		desc = *d
	}
	updated, err := s.items.Update(ctx, input.ItemID, domain.ItemUpdateParams{
		Title:       &title,
		Description: &desc,
	})
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.log.InfoContext(ctx, "item updated",
		slog.String("user_id", userID.String()),
		slog.String("item_id", input.ItemID.String()),
	)

	return updated, nil
}

// DeleteItem removes an item. No confirmation is required.
func (s *Service) DeleteItem(ctx context.Context, input DeleteItemInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.ownedItem(ctx, userID, input.ItemID); err != nil {
		return err
	}

	if err := s.items.Delete(ctx, input.ItemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("user_id", userID.String()),
		slog.String("item_id", input.ItemID.String()),
	)

	return nil
}

// ToggleItemVote removes the caller's vote if they have voted, otherwise
// adds it. Any signed-in visitor may vote while the section and the item
// both allow voting. An item outside the creator's roadmap is not found.
func (s *Service) ToggleItemVote(ctx context.Context, input ToggleItemVoteInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}
	if !input.SectionVoting {
		return domain.ErrVotingDisabled
	}

	it, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}
	v, err := s.versions.GetByID(ctx, it.VersionID)
	if err != nil {
		return fmt.Errorf("get version: %w", err)
	}
	if v.CreatorID != input.CreatorID {
		return fmt.Errorf("item %s: %w", input.ItemID, domain.ErrNotFound)
	}
	if !it.VotingAllowed() {
		return domain.ErrVotingDisabled
	}

	if input.CurrentlyVoted {
		err = s.votes.Remove(ctx, input.ItemID, userID)
	} else {
		err = s.votes.Add(ctx, input.ItemID, userID)
	}
	if err != nil {
		return fmt.Errorf("toggle vote: %w", err)
	}

	s.log.InfoContext(ctx, "item vote toggled",
		slog.String("user_id", userID.String()),
		slog.String("item_id", input.ItemID.String()),
		slog.Bool("voted", !input.CurrentlyVoted),
	)

	return nil
}
