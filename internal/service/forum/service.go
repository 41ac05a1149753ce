package forum

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/internal/loader"
)

type suggestionRepo interface {
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Suggestion, error)
	GetByID(ctx context.Context, suggestionID uuid.UUID) (*domain.Suggestion, error)
	Tally(ctx context.Context, suggestionIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]domain.SuggestionTally, error)
	Create(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error)
	UpdateStatus(ctx context.Context, suggestionID uuid.UUID, status domain.ForumStatus, changedAt time.Time) error
	Delete(ctx context.Context, suggestionID uuid.UUID) error
}

type replyRepo interface {
	ListBySuggestion(ctx context.Context, suggestionID uuid.UUID) ([]domain.Reply, error)
	Create(ctx context.Context, r *domain.Reply) (*domain.Reply, error)
	DeleteBySuggestion(ctx context.Context, suggestionID uuid.UUID) error
}

type upvoteRepo interface {
	Add(ctx context.Context, suggestionID, userID uuid.UUID) error
	Remove(ctx context.Context, suggestionID, userID uuid.UUID) error
	DeleteBySuggestion(ctx context.Context, suggestionID uuid.UUID) error
}

type profileRepo interface {
	GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.Profile, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the suggestion board: visitor feature requests with
// upvotes and reply threads on a creator's roadmap.
type Service struct {
	suggestions suggestionRepo
	replies     replyRepo
	upvotes     upvoteRepo
	loaderRepos *loader.Repos
	tx          txManager
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new forum service.
func NewService(
	log *slog.Logger,
	suggestions suggestionRepo,
	replies replyRepo,
	upvotes upvoteRepo,
	profiles profileRepo,
	tx txManager,
) *Service {
	return &Service{
		suggestions: suggestions,
		replies:     replies,
		upvotes:     upvotes,
		loaderRepos: &loader.Repos{Profile: profiles},
		tx:          tx,
		log:         log.With("service", "forum"),
		now:         time.Now,
	}
}

// loaders returns the request-scoped loaders, or a fresh set scoped to
// this call when none are attached to ctx.
func (s *Service) loaders(ctx context.Context) *loader.Loaders {
	if l, ok := loader.FromContext(ctx); ok {
		return l
	}
	return loader.NewLoaders(s.loaderRepos)
}

// ownedSuggestion loads a suggestion and checks the caller owns the board
// it was posted on.
func (s *Service) ownedSuggestion(ctx context.Context, userID, suggestionID uuid.UUID) (*domain.Suggestion, error) {
	sg, err := s.suggestions.GetByID(ctx, suggestionID)
	if err != nil {
		return nil, fmt.Errorf("get suggestion: %w", err)
	}
	if sg.CreatorID != userID {
		return nil, domain.ErrForbidden
	}
	return sg, nil
}
