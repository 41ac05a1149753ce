package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile creates a profile with a generated display name.
func SeedProfile(t *testing.T, pool *pgxpool.Pool) domain.Profile {
	t.Helper()

	name := "Maker " + uniqueSuffix()
	p := domain.Profile{UserID: uuid.New(), DisplayName: &name}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO profiles (user_id, display_name) VALUES ($1, $2)`,
		p.UserID, p.DisplayName,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}
	return p
}

// SeedVersion creates a backlog version for creatorID at the given position.
func SeedVersion(t *testing.T, pool *pgxpool.Pool, creatorID uuid.UUID, name string, sortOrder int) domain.Version {
	t.Helper()

	v := domain.Version{
		ID:        uuid.New(),
		CreatorID: creatorID,
		Name:      name,
		Status:    domain.StatusBacklog,
		SortOrder: sortOrder,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO roadmap_versions (id, creator_id, name, status, sort_order)
		 VALUES ($1, $2, $3, $4, $5) RETURNING created_at`,
		v.ID, v.CreatorID, v.Name, string(v.Status), v.SortOrder,
	).Scan(&v.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedVersion: %v", err)
	}
	return v
}

// SeedItem creates a backlog item under versionID at the given position.
func SeedItem(t *testing.T, pool *pgxpool.Pool, versionID uuid.UUID, title string, sortOrder int) domain.Item {
	t.Helper()

	it := domain.Item{
		ID:        uuid.New(),
		VersionID: versionID,
		Title:     title,
		Status:    domain.StatusBacklog,
		SortOrder: sortOrder,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO roadmap_items (id, version_id, title, status, sort_order)
		 VALUES ($1, $2, $3, $4, $5) RETURNING created_at`,
		it.ID, it.VersionID, it.Title, string(it.Status), it.SortOrder,
	).Scan(&it.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}
	return it
}

// SeedVote records userID's vote on itemID.
func SeedVote(t *testing.T, pool *pgxpool.Pool, itemID, userID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO item_votes (item_id, user_id) VALUES ($1, $2)`, itemID, userID)
	if err != nil {
		t.Fatalf("testhelper: SeedVote: %v", err)
	}
}

// SeedSuggestion creates an open suggestion by userID on creatorID's board.
func SeedSuggestion(t *testing.T, pool *pgxpool.Pool, creatorID, userID uuid.UUID, title string) domain.Suggestion {
	t.Helper()

	s := domain.Suggestion{
		ID:        uuid.New(),
		CreatorID: creatorID,
		UserID:    userID,
		Title:     title,
		Status:    domain.ForumStatusOpen,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO suggestions (id, creator_id, user_id, title, status)
		 VALUES ($1, $2, $3, $4, $5) RETURNING created_at`,
		s.ID, s.CreatorID, s.UserID, s.Title, string(s.Status),
	).Scan(&s.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSuggestion: %v", err)
	}
	return s
}

// SeedReply adds a reply by userID to suggestionID.
func SeedReply(t *testing.T, pool *pgxpool.Pool, suggestionID, userID uuid.UUID, content string) domain.Reply {
	t.Helper()

	r := domain.Reply{ID: uuid.New(), SuggestionID: suggestionID, UserID: userID, Content: content}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO suggestion_replies (id, suggestion_id, user_id, content)
		 VALUES ($1, $2, $3, $4) RETURNING created_at, updated_at`,
		r.ID, r.SuggestionID, r.UserID, r.Content,
	).Scan(&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedReply: %v", err)
	}
	return r
}

// SeedUpvote records userID's upvote on suggestionID.
func SeedUpvote(t *testing.T, pool *pgxpool.Pool, suggestionID, userID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO suggestion_upvotes (suggestion_id, user_id) VALUES ($1, $2)`, suggestionID, userID)
	if err != nil {
		t.Fatalf("testhelper: SeedUpvote: %v", err)
	}
}
