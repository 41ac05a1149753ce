package roadmap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

type versionRepo interface {
	ListByCreator(ctx context.Context, creatorID uuid.UUID, productID *uuid.UUID) ([]domain.Version, error)
	GetByID(ctx context.Context, versionID uuid.UUID) (*domain.Version, error)
	ShiftSortOrder(ctx context.Context, creatorID uuid.UUID, delta int) error
	Create(ctx context.Context, v *domain.Version) (*domain.Version, error)
	Update(ctx context.Context, versionID uuid.UUID, params domain.VersionUpdateParams) (*domain.Version, error)
	Delete(ctx context.Context, versionID uuid.UUID) error
}

type itemRepo interface {
	ListByVersionIDs(ctx context.Context, versionIDs []uuid.UUID) ([]domain.Item, error)
	GetByID(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	CountByVersion(ctx context.Context, versionID uuid.UUID) (int, error)
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Update(ctx context.Context, itemID uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
}

type voteRepo interface {
	Tally(ctx context.Context, itemIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]domain.VoteTally, error)
	Add(ctx context.Context, itemID, userID uuid.UUID) error
	Remove(ctx context.Context, itemID, userID uuid.UUID) error
}

type suggestionRepo interface {
	GetByID(ctx context.Context, suggestionID uuid.UUID) (*domain.Suggestion, error)
	UpdateStatus(ctx context.Context, suggestionID uuid.UUID, status domain.ForumStatus, changedAt time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the roadmap interaction contract: reads aggregate
// votes at fetch time and every mutation is owner-checked.
type Service struct {
	versions    versionRepo
	items       itemRepo
	votes       voteRepo
	suggestions suggestionRepo
	tx          txManager
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new roadmap service.
func NewService(
	log *slog.Logger,
	versions versionRepo,
	items itemRepo,
	votes voteRepo,
	suggestions suggestionRepo,
	tx txManager,
) *Service {
	return &Service{
		versions:    versions,
		items:       items,
		votes:       votes,
		suggestions: suggestions,
		tx:          tx,
		log:         log.With("service", "roadmap"),
		now:         time.Now,
	}
}

// ownedVersion loads a version and checks the caller created it.
func (s *Service) ownedVersion(ctx context.Context, userID, versionID uuid.UUID) (*domain.Version, error) {
	v, err := s.versions.GetByID(ctx, versionID)
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}
	if v.CreatorID != userID {
		return nil, domain.ErrForbidden
	}
	return v, nil
}

// ownedItem loads an item and checks the caller created its version.
func (s *Service) ownedItem(ctx context.Context, userID, itemID uuid.UUID) (*domain.Item, error) {
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if _, err := s.ownedVersion(ctx, userID, it.VersionID); err != nil {
		return nil, err
	}
	return it, nil
}

// normalizeDescription maps blank text to nil (no description).
func normalizeDescription(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
