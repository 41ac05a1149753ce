// Package page implements the storefront page-config repository using
// PostgreSQL. Sections are stored as a single jsonb document per creator.
package page

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/storefront-backend/internal/adapter/postgres"
	"github.com/heartmarshall/storefront-backend/internal/domain"
)

const table = "storefront_pages"

// Repo provides page-config persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new page repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByCreator returns the stored page. Returns domain.ErrNotFound when the
// creator has never saved one.
func (r *Repo) GetByCreator(ctx context.Context, creatorID uuid.UUID) (*domain.PageConfig, error) {
	sql, args, err := postgres.Builder().
		Select("sections", "updated_at").
		From(table).
		Where(squirrel.Eq{"creator_id": creatorID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get page: %w", err)
	}

	page := domain.PageConfig{CreatorID: creatorID}
	var raw []byte
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&raw, &page.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "page", creatorID)
	}
	if err := json.Unmarshal(raw, &page.Sections); err != nil {
		return nil, fmt.Errorf("decode page sections: %w", err)
	}
	return &page, nil
}

// Upsert stores the page, replacing any previous version.
func (r *Repo) Upsert(ctx context.Context, page *domain.PageConfig) (*domain.PageConfig, error) {
	sections := page.Sections
	if sections == nil {
		sections = []domain.Section{}
	}
	raw, err := json.Marshal(sections)
	if err != nil {
		return nil, fmt.Errorf("encode page sections: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("creator_id", "sections", "updated_at").
		Values(page.CreatorID, string(raw), squirrel.Expr("now()")).
		Suffix("ON CONFLICT (creator_id) DO UPDATE SET sections = EXCLUDED.sections, updated_at = now() " +
			"RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert page: %w", err)
	}

	saved := domain.PageConfig{CreatorID: page.CreatorID, Sections: sections}
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&saved.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "page", page.CreatorID)
	}
	return &saved, nil
}
