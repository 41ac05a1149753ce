// Package suggestion implements the suggestion board repository using
// PostgreSQL.
package suggestion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/storefront-backend/internal/adapter/postgres"
	"github.com/heartmarshall/storefront-backend/internal/domain"
)

const table = "suggestions"

var columns = []string{
	"id", "creator_id", "user_id", "title", "description",
	"status", "status_changed_at", "created_at",
}

// Repo provides suggestion persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new suggestion repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByCreator returns the suggestions posted on the creator's board,
// newest first. Tallies and authors are not loaded.
func (r *Repo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Suggestion, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"creator_id": creatorID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list suggestions: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	list, err := pgx.CollectRows(rows, scanSuggestion)
	if err != nil {
		return nil, fmt.Errorf("scan suggestions: %w", err)
	}
	return list, nil
}

// GetByID returns a suggestion by primary key.
func (r *Repo) GetByID(ctx context.Context, suggestionID uuid.UUID) (*domain.Suggestion, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": suggestionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get suggestion: %w", err)
	}
	return r.queryOne(ctx, suggestionID, sql, args)
}

// Tally aggregates upvotes and replies for the given suggestions in one
// query. Every existing suggestion gets an entry, zero-valued when nobody
// has engaged with it yet.
func (r *Repo) Tally(ctx context.Context, suggestionIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]domain.SuggestionTally, error) {
	out := make(map[uuid.UUID]domain.SuggestionTally, len(suggestionIDs))
	if len(suggestionIDs) == 0 {
		return out, nil
	}

	sql, args, err := postgres.Builder().
		Select("s.id").
		Column("(SELECT count(*) FROM suggestion_upvotes u WHERE u.suggestion_id = s.id)").
		Column("EXISTS (SELECT 1 FROM suggestion_upvotes u WHERE u.suggestion_id = s.id AND u.user_id = ?)", userID).
		Column("(SELECT count(*) FROM suggestion_replies rp WHERE rp.suggestion_id = s.id)").
		From(table + " s").
		Where(squirrel.Eq{"s.id": suggestionIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tally suggestions: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("tally suggestions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.SuggestionTally
		if err := rows.Scan(&t.SuggestionID, &t.Upvotes, &t.UserUpvoted, &t.ReplyCount); err != nil {
			return nil, fmt.Errorf("scan suggestion tally: %w", err)
		}
		out[t.SuggestionID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tally suggestions: %w", err)
	}
	return out, nil
}

// Create inserts a suggestion. A zero ID is replaced with a fresh one.
func (r *Repo) Create(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error) {
	id := s.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	status := s.Status
	if status == "" {
		status = domain.ForumStatusOpen
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "creator_id", "user_id", "title", "description", "status").
		Values(id, s.CreatorID, s.UserID, s.Title, s.Description, string(status)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create suggestion: %w", err)
	}
	return r.queryOne(ctx, id, sql, args)
}

// UpdateStatus sets the workflow status and stamps status_changed_at.
func (r *Repo) UpdateStatus(ctx context.Context, suggestionID uuid.UUID, status domain.ForumStatus, changedAt time.Time) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("status_changed_at", changedAt).
		Where(squirrel.Eq{"id": suggestionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update suggestion status: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "suggestion", suggestionID)
	}
	return postgres.ExpectAffected(tag, "suggestion", suggestionID)
}

// Delete removes the suggestion row. Replies and upvotes must be removed
// first or the foreign keys reject the delete.
func (r *Repo) Delete(ctx context.Context, suggestionID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": suggestionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete suggestion: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "suggestion", suggestionID)
	}
	return postgres.ExpectAffected(tag, "suggestion", suggestionID)
}

func (r *Repo) queryOne(ctx context.Context, id uuid.UUID, sql string, args []any) (*domain.Suggestion, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "suggestion", id)
	}
	s, err := pgx.CollectExactlyOneRow(rows, scanSuggestion)
	if err != nil {
		return nil, postgres.MapError(err, "suggestion", id)
	}
	return &s, nil
}

func scanSuggestion(row pgx.CollectableRow) (domain.Suggestion, error) {
	var (
		s      domain.Suggestion
		status string
	)
	err := row.Scan(
		&s.ID, &s.CreatorID, &s.UserID, &s.Title, &s.Description,
		&status, &s.StatusChangedAt, &s.CreatedAt,
	)
	s.Status = domain.ForumStatus(status)
	s.Author = domain.Profile{UserID: s.UserID}
	return s, err
}
