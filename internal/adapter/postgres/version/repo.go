// Package version implements the roadmap version repository using PostgreSQL.
package version

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

const table = "roadmap_versions"

var columns = []string{
	"id", "creator_id", "product_id", "name", "description",
	"status", "sort_order", "status_changed_at", "created_at",
}

// Repo provides roadmap version persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new version repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByCreator returns the creator's versions ordered by sort_order. When
// productID is set only versions of that product are returned. Items are
// not loaded.
func (r *Repo) ListByCreator(ctx context.Context, creatorID uuid.UUID, productID *uuid.UUID) ([]domain.Version, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"creator_id": creatorID}).
		OrderBy("sort_order ASC", "created_at ASC")
	if productID != nil {
		q = q.Where(squirrel.Eq{"product_id": *productID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list versions: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}

	versions, err := pgx.CollectRows(rows, scanVersion)
	if err != nil {
		return nil, fmt.Errorf("scan versions: %w", err)
	}
	return versions, nil
}

// GetByID returns a version by primary key.
func (r *Repo) GetByID(ctx context.Context, versionID uuid.UUID) (*domain.Version, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": versionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get version: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "version", versionID)
	}
	v, err := pgx.CollectExactlyOneRow(rows, scanVersion)
	if err != nil {
		return nil, postgres.MapError(err, "version", versionID)
	}
	return &v, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// ShiftSortOrder adds delta to the sort_order of every version the creator
// owns.
func (r *Repo) ShiftSortOrder(ctx context.Context, creatorID uuid.UUID, delta int) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("sort_order", squirrel.Expr("sort_order + ?", delta)).
		Where(squirrel.Eq{"creator_id": creatorID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build shift versions: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("shift versions: %w", err)
	}
	return nil
}

// Create inserts a version. A zero ID is replaced with a fresh one.
func (r *Repo) Create(ctx context.Context, v *domain.Version) (*domain.Version, error) {
	id := v.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "creator_id", "product_id", "name", "description", "status", "sort_order", "status_changed_at").
		Values(id, v.CreatorID, v.ProductID, v.Name, v.Description, string(v.Status), v.SortOrder, v.StatusChangedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create version: %w", err)
	}

	return r.queryOne(ctx, id, sql, args)
}

// Update applies the non-nil fields of params. An empty description is
// stored as NULL.
func (r *Repo) Update(ctx context.Context, versionID uuid.UUID, params domain.VersionUpdateParams) (*domain.Version, error) {
	q := postgres.Builder().Update(table).Where(squirrel.Eq{"id": versionID})
	changed := false
	if params.Name != nil {
		q = q.Set("name", *params.Name)
		changed = true
	}
	if params.Description != nil {
		q = q.Set("description", nullable(*params.Description))
		changed = true
	}
	if params.Status != nil {
		q = q.Set("status", string(*params.Status))
		changed = true
	}
	if !changed {
		return r.GetByID(ctx, versionID)
	}

	sql, args, err := q.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update version: %w", err)
	}

	return r.queryOne(ctx, versionID, sql, args)
}

// Delete removes a version. Its items and their votes go with it by cascade.
func (r *Repo) Delete(ctx context.Context, versionID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": versionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete version: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "version", versionID)
	}
	return postgres.ExpectAffected(tag, "version", versionID)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) queryOne(ctx context.Context, id uuid.UUID, sql string, args []any) (*domain.Version, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "version", id)
	}
	v, err := pgx.CollectExactlyOneRow(rows, scanVersion)
	if err != nil {
		return nil, postgres.MapError(err, "version", id)
	}
	return &v, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanVersion(row pgx.CollectableRow) (domain.Version, error) {
	var (
		v      domain.Version
		status string
	)
	err := row.Scan(
		&v.ID, &v.CreatorID, &v.ProductID, &v.Name, &v.Description,
		&status, &v.SortOrder, &v.StatusChangedAt, &v.CreatedAt,
	)
	v.Status = domain.Status(status)
	return v, err
}
