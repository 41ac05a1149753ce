package roadmap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/pkg/ctxutil"
)

// AddVersion inserts a version at the top of the caller's roadmap.
// Every existing version moves down one position in the same transaction.
func (s *Service) AddVersion(ctx context.Context, input AddVersionInput) (*domain.Version, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Version
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.versions.ShiftSortOrder(txCtx, userID, 1); err != nil {
			return fmt.Errorf("shift versions: %w", err)
		}

		var err error
		created, err = s.versions.Create(txCtx, &domain.Version{
			CreatorID:   userID,
			ProductID:   input.ProductID,
			Name:        strings.TrimSpace(input.Name),
			Description: normalizeDescription(input.Description),
			Status:      domain.StatusBacklog,
			SortOrder:   0,
		})
		if err != nil {
			return fmt.Errorf("create version: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "version created",
		slog.String("user_id", userID.String()),
		slog.String("version_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// DeleteVersion removes a version and, by cascade, its items. The owner
// must have confirmed the deletion.
func (s *Service) DeleteVersion(ctx context.Context, input DeleteVersionInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	v, err := s.ownedVersion(ctx, userID, input.VersionID)
	if err != nil {
		return err
	}
	if !input.Confirmed {
		return domain.ErrConfirmationRequired
	}

	if err := s.versions.Delete(ctx, input.VersionID); err != nil {
		return fmt.Errorf("delete version: %w", err)
	}

	s.log.InfoContext(ctx, "version deleted",
		slog.String("user_id", userID.String()),
		slog.String("version_id", input.VersionID.String()),
		slog.String("name", v.Name),
	)

	return nil
}

// UpdateVersionDescription replaces the description; blank text clears it.
func (s *Service) UpdateVersionDescription(ctx context.Context, input UpdateVersionDescriptionInput) (*domain.Version, error) {
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

	desc := ""
	if d := normalizeDescription(&input.Description); d != nil {
		desc = *d
	}
	updated, err := s.versions.Update(ctx, input.VersionID, domain.VersionUpdateParams{Description: &desc})
	if err != nil {
		return nil, fmt.Errorf("update version: %w", err)
	}

	s.log.InfoContext(ctx, "version description updated",
		slog.String("user_id", userID.String()),
		slog.String("version_id", input.VersionID.String()),
		slog.Bool("cleared", desc == ""),
	)

	return updated, nil
}
