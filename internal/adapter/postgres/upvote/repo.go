// Package upvote implements the suggestion upvote repository using
// PostgreSQL.
package upvote

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/storefront-backend/internal/adapter/postgres"
)

const table = "suggestion_upvotes"

// Repo provides upvote persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new upvote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Add records userID's upvote. Upvoting twice is a no-op.
func (r *Repo) Add(ctx context.Context, suggestionID, userID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("suggestion_id", "user_id").
		Values(suggestionID, userID).
		Suffix("ON CONFLICT (suggestion_id, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build add upvote: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "suggestion", suggestionID)
	}
	return nil
}

// Remove withdraws userID's upvote.
func (r *Repo) Remove(ctx context.Context, suggestionID, userID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"suggestion_id": suggestionID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove upvote: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "suggestion", suggestionID)
	}
	return nil
}

// DeleteBySuggestion removes every upvote of a suggestion.
func (r *Repo) DeleteBySuggestion(ctx context.Context, suggestionID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"suggestion_id": suggestionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete upvotes: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete upvotes: %w", err)
	}
	return nil
}
