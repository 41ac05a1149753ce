package loader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

// newProfilesBatchFn resolves profiles by user id. Users without a profile
// row get an empty profile, which displays as anonymous.
func newProfilesBatchFn(repo profileRepo) dataloader.BatchFunc[uuid.UUID, domain.Profile] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.Profile] {
		profiles, err := repo.GetByUserIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.Profile](len(keys), err)
		}

		byID := make(map[uuid.UUID]domain.Profile, len(profiles))
		for _, p := range profiles {
			byID[p.UserID] = p
		}

		results := make([]*dataloader.Result[domain.Profile], len(keys))
		for i, key := range keys {
			p, ok := byID[key]
			if !ok {
				p = domain.Profile{UserID: key}
			}
			results[i] = &dataloader.Result[domain.Profile]{Data: p}
		}
		return results
	}
}

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
