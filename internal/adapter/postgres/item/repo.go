// Package item implements the roadmap item repository using PostgreSQL.
package item

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/storefront-backend/internal/adapter/postgres"
	"github.com/heartmarshall/storefront-backend/internal/domain"
)

const table = "roadmap_items"

var columns = []string{
	"id", "version_id", "title", "description", "status",
	"sort_order", "voting_enabled", "created_at",
}

// Repo provides roadmap item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByVersionIDs returns the items of all given versions in one query,
// ordered by sort_order. Vote counts are left zero.
func (r *Repo) ListByVersionIDs(ctx context.Context, versionIDs []uuid.UUID) ([]domain.Item, error) {
	if len(versionIDs) == 0 {
		return []domain.Item{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"version_id": versionIDs}).
		OrderBy("sort_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	items, err := pgx.CollectRows(rows, scanItem)
	if err != nil {
		return nil, fmt.Errorf("scan items: %w", err)
	}
	return items, nil
}

// GetByID returns an item by primary key.
func (r *Repo) GetByID(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": itemID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item: %w", err)
	}
	return r.queryOne(ctx, itemID, sql, args)
}

// CountByVersion returns how many items the version holds.
func (r *Repo) CountByVersion(ctx context.Context, versionID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"version_id": versionID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count items: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

// Create inserts an item. A zero ID is replaced with a fresh one. An
// unknown version maps to domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	id := it.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "version_id", "title", "description", "status", "sort_order", "voting_enabled").
		Values(id, it.VersionID, it.Title, it.Description, string(it.Status), it.SortOrder, it.VotingEnabled).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create item: %w", err)
	}
	return r.queryOne(ctx, id, sql, args)
}

// Update applies the non-nil fields of params. An empty description is
// stored as NULL.
func (r *Repo) Update(ctx context.Context, itemID uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error) {
	q := postgres.Builder().Update(table).Where(squirrel.Eq{"id": itemID})
	changed := false
	if params.Title != nil {
		q = q.Set("title", *params.Title)
		changed = true
	}
	if params.Description != nil {
		var desc *string
		if *params.Description != "" {
			desc = params.Description
		}
		q = q.Set("description", desc)
		changed = true
	}
	if params.Status != nil {
		q = q.Set("status", string(*params.Status))
		changed = true
	}
	if !changed {
		return r.GetByID(ctx, itemID)
	}

	sql, args, err := q.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update item: %w", err)
	}
	return r.queryOne(ctx, itemID, sql, args)
}

// Delete removes an item and, by cascade, its votes.
func (r *Repo) Delete(ctx context.Context, itemID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": itemID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete item: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "item", itemID)
	}
	return postgres.ExpectAffected(tag, "item", itemID)
}

func (r *Repo) queryOne(ctx context.Context, id uuid.UUID, sql string, args []any) (*domain.Item, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}
	it, err := pgx.CollectExactlyOneRow(rows, scanItem)
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}
	return &it, nil
}

func scanItem(row pgx.CollectableRow) (domain.Item, error) {
	var (
		it     domain.Item
		status string
	)
	err := row.Scan(
		&it.ID, &it.VersionID, &it.Title, &it.Description, &status,
		&it.SortOrder, &it.VotingEnabled, &it.CreatedAt,
	)
	it.Status = domain.Status(status)
	return it, err
}
