// Package profile implements the public profile repository using PostgreSQL.
package profile

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/storefront-backend/internal/adapter/postgres"
	"github.com/heartmarshall/storefront-backend/internal/domain"
)

const table = "profiles"

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByUserIDs returns the profiles that exist for the given users, in no
// particular order. Used by the profile data loader.
func (r *Repo) GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.Profile, error) {
	if len(userIDs) == 0 {
		return []domain.Profile{}, nil
	}

	sql, args, err := postgres.Builder().
		Select("user_id", "display_name", "avatar_url").
		From(table).
		Where(squirrel.Eq{"user_id": userIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get profiles: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get profiles: %w", err)
	}
	profiles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Profile, error) {
		var p domain.Profile
		err := row.Scan(&p.UserID, &p.DisplayName, &p.AvatarURL)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan profiles: %w", err)
	}
	return profiles, nil
}

// Upsert creates or replaces a profile.
func (r *Repo) Upsert(ctx context.Context, p domain.Profile) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "display_name", "avatar_url").
		Values(p.UserID, p.DisplayName, p.AvatarURL).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET display_name = EXCLUDED.display_name, " +
			"avatar_url = EXCLUDED.avatar_url, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert profile: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "profile", p.UserID)
	}
	return nil
}
