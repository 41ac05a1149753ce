// Package vote implements the item vote repository using PostgreSQL.
// Vote counts are never stored; they are aggregated from item_votes at read
// time.
package vote

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/storefront-backend/internal/adapter/postgres"
	"github.com/heartmarshall/storefront-backend/internal/domain"
)

const table = "item_votes"

// Repo provides item vote persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Tally counts votes for the given items in a single query and marks the
// ones userID has voted for. Items without votes are absent from the map.
// A uuid.Nil userID never matches.
func (r *Repo) Tally(ctx context.Context, itemIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]domain.VoteTally, error) {
	out := make(map[uuid.UUID]domain.VoteTally, len(itemIDs))
	if len(itemIDs) == 0 {
		return out, nil
	}

	sql, args, err := postgres.Builder().
		Select("item_id", "count(*)").
		Column("bool_or(user_id = ?)", userID).
		From(table).
		Where(squirrel.Eq{"item_id": itemIDs}).
		GroupBy("item_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tally votes: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("tally votes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.VoteTally
		if err := rows.Scan(&t.ItemID, &t.Count, &t.UserHasVoted); err != nil {
			return nil, fmt.Errorf("scan vote tally: %w", err)
		}
		out[t.ItemID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tally votes: %w", err)
	}
	return out, nil
}

// Add records userID's vote. Voting twice is a no-op.
func (r *Repo) Add(ctx context.Context, itemID, userID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("item_id", "user_id").
		Values(itemID, userID).
		Suffix("ON CONFLICT (item_id, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build add vote: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "item", itemID)
	}
	return nil
}

// Remove withdraws userID's vote. Removing a missing vote is a no-op.
func (r *Repo) Remove(ctx context.Context, itemID, userID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"item_id": itemID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove vote: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "item", itemID)
	}
	return nil
}
