// Package reply implements the suggestion reply repository using PostgreSQL.
package reply

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

const table = "suggestion_replies"

// Repo provides reply persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reply repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListBySuggestion returns a thread oldest first.
func (r *Repo) ListBySuggestion(ctx context.Context, suggestionID uuid.UUID) ([]domain.Reply, error) {
	sql, args, err := postgres.Builder().
		Select("id", "suggestion_id", "user_id", "content", "created_at", "updated_at").
		From(table).
		Where(squirrel.Eq{"suggestion_id": suggestionID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list replies: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	replies, err := pgx.CollectRows(rows, scanReply)
	if err != nil {
		return nil, fmt.Errorf("scan replies: %w", err)
	}
	return replies, nil
}

// Create inserts a reply. An unknown suggestion maps to domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, reply *domain.Reply) (*domain.Reply, error) {
	id := reply.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "suggestion_id", "user_id", "content").
		Values(id, reply.SuggestionID, reply.UserID, reply.Content).
		Suffix("RETURNING id, suggestion_id, user_id, content, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create reply: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "suggestion", reply.SuggestionID)
	}
	created, err := pgx.CollectExactlyOneRow(rows, scanReply)
	if err != nil {
		return nil, postgres.MapError(err, "suggestion", reply.SuggestionID)
	}
	return &created, nil
}

// DeleteBySuggestion removes a whole thread.
func (r *Repo) DeleteBySuggestion(ctx context.Context, suggestionID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"suggestion_id": suggestionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete replies: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete replies: %w", err)
	}
	return nil
}

func scanReply(row pgx.CollectableRow) (domain.Reply, error) {
	var rp domain.Reply
	err := row.Scan(&rp.ID, &rp.SuggestionID, &rp.UserID, &rp.Content, &rp.CreatedAt, &rp.UpdatedAt)
	rp.Author = domain.Profile{UserID: rp.UserID}
	return rp, err
}
