package roadmap

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/pkg/ctxutil"
)

// Load fetches a creator's versions with their items nested, in sort order.
// Vote counts and the caller's own votes are aggregated here. With
// SortByVotes, items within each version are reordered by vote count
// (descending, stable) once, so every layout sees the same order.
func (s *Service) Load(ctx context.Context, input LoadInput) ([]domain.Version, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	viewerID, _ := ctxutil.UserIDFromCtx(ctx)

	versions, err := s.versions.ListByCreator(ctx, input.CreatorID, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	if len(versions) == 0 {
		return versions, nil
	}

	versionIDs := make([]uuid.UUID, len(versions))
	for i, v := range versions {
		versionIDs[i] = v.ID
	}
	items, err := s.items.ListByVersionIDs(ctx, versionIDs)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	if len(items) > 0 {
		itemIDs := make([]uuid.UUID, len(items))
		for i, it := range items {
			itemIDs[i] = it.ID
		}
		tallies, err := s.votes.Tally(ctx, itemIDs, viewerID)
		if err != nil {
			return nil, fmt.Errorf("tally votes: %w", err)
		}
		for i := range items {
			if t, ok := tallies[items[i].ID]; ok {
				items[i].VoteCount = t.Count
				items[i].UserHasVoted = t.UserHasVoted
			}
		}
	}

	byVersion := make(map[uuid.UUID][]domain.Item, len(versions))
	for _, it := range items {
		byVersion[it.VersionID] = append(byVersion[it.VersionID], it)
	}
	for i := range versions {
		nested := byVersion[versions[i].ID]
		if nested == nil {
			nested = []domain.Item{}
		}
		if input.SortByVotes {
			SortByVotes(nested)
		}
		versions[i].Items = nested
	}

	return versions, nil
}

// SortByVotes orders items by vote count, highest first. Ties keep their
// existing (sort order) position.
func SortByVotes(items []domain.Item) {
	slices.SortStableFunc(items, func(a, b domain.Item) int {
		return cmp.Compare(b.VoteCount, a.VoteCount)
	})
}
