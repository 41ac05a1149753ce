// Package loader provides DataLoaders that batch author profile lookups
// into single SQL calls. A set of loaders is scoped to one request (or one
// board fetch) and caches every profile it has resolved.
package loader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type profileRepo interface {
	GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.Profile, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Profile profileRepo
}

// Loaders contains the DataLoader instances of one scope.
type Loaders struct {
	ProfileByUserID *dataloader.Loader[uuid.UUID, domain.Profile]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		ProfileByUserID: newLoader(newProfilesBatchFn(repos.Profile)),
	}
}

// Profiles resolves every id through the profile loader. Ids appearing more
// than once are fetched once.
func (l *Loaders) Profiles(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]domain.Profile, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]domain.Profile{}, nil
	}
	profiles, errs := l.ProfileByUserID.LoadMany(ctx, userIDs)()
	out := make(map[uuid.UUID]domain.Profile, len(userIDs))
	for i, id := range userIDs {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		out[id] = profiles[i]
	}
	return out, nil
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "loaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context. Live sessions run outside
// the HTTP middleware, so absence is not an error.
func FromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}
