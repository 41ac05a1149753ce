package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/pkg/ctxutil"
)

const maxSections = 30

type pageRepo interface {
	GetByCreator(ctx context.Context, creatorID uuid.UUID) (*domain.PageConfig, error)
	Upsert(ctx context.Context, page *domain.PageConfig) (*domain.PageConfig, error)
}

// Defaults fill roadmap settings the store owner left unset.
type Defaults struct {
	Theme       string
	CardOpacity int
	Expanded    bool
}

// Service manages storefront page configurations.
type Service struct {
	pages    pageRepo
	defaults Defaults
	log      *slog.Logger
}

// NewService creates a new storefront service.
func NewService(log *slog.Logger, pages pageRepo, defaults Defaults) *Service {
	return &Service{
		pages:    pages,
		defaults: defaults,
		log:      log.With("service", "storefront"),
	}
}

// GetPage returns the creator's page, or the default page when none was saved.
func (s *Service) GetPage(ctx context.Context, creatorID uuid.UUID) (*domain.PageConfig, error) {
	page, err := s.pages.GetByCreator(ctx, creatorID)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultPageConfig(creatorID)
		return &def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	return page, nil
}

// SavePage validates and stores the caller's own page. Roadmap section
// settings are re-encoded, so unknown keys are dropped.
func (s *Service) SavePage(ctx context.Context, page domain.PageConfig) (*domain.PageConfig, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sections, err := normalizeSections(page.Sections)
	if err != nil {
		return nil, err
	}

	saved, err := s.pages.Upsert(ctx, &domain.PageConfig{CreatorID: userID, Sections: sections})
	if err != nil {
		return nil, fmt.Errorf("save page: %w", err)
	}

	s.log.InfoContext(ctx, "page saved",
		slog.String("user_id", userID.String()),
		slog.Int("sections", len(sections)),
	)

	return saved, nil
}

// RoadmapSettings returns the settings of the creator's first roadmap
// section with configured defaults applied.
func (s *Service) RoadmapSettings(ctx context.Context, creatorID uuid.UUID) (domain.RoadmapSettings, error) {
	page, err := s.GetPage(ctx, creatorID)
	if err != nil {
		return domain.RoadmapSettings{}, err
	}

	var settings domain.RoadmapSettings
	if sec, ok := page.RoadmapSection(); ok && len(sec.Settings) > 0 {
		if err := json.Unmarshal(sec.Settings, &settings); err != nil {
			return domain.RoadmapSettings{}, fmt.Errorf("decode roadmap settings: %w", err)
		}
	}
	return s.applyDefaults(settings), nil
}

func (s *Service) applyDefaults(st domain.RoadmapSettings) domain.RoadmapSettings {
	if st.Theme == "" {
		st.Theme = s.defaults.Theme
	}
	if st.CardOpacity == nil && s.defaults.CardOpacity > 0 {
		v := s.defaults.CardOpacity
		st.CardOpacity = &v
	}
	if st.DefaultExpanded == nil {
		v := s.defaults.Expanded
		st.DefaultExpanded = &v
	}
	return st
}

func normalizeSections(in []domain.Section) ([]domain.Section, error) {
	var errs []domain.FieldError

	if len(in) > maxSections {
		errs = append(errs, domain.FieldError{Field: "sections", Message: "max " + strconv.Itoa(maxSections) + " sections"})
	}

	seen := make(map[string]bool, len(in))
	out := make([]domain.Section, 0, len(in))
	for i, sec := range in {
		prefix := "sections[" + strconv.Itoa(i) + "]"

		if sec.ID == "" {
			errs = append(errs, domain.FieldError{Field: prefix + ".id", Message: "required"})
		} else if seen[sec.ID] {
			errs = append(errs, domain.FieldError{Field: prefix + ".id", Message: "duplicate section id"})
		}
		seen[sec.ID] = true

		if !sec.Type.IsValid() {
			errs = append(errs, domain.FieldError{Field: prefix + ".type", Message: "unknown section type"})
			continue
		}

		if sec.Type == domain.SectionRoadmap {
			var settings domain.RoadmapSettings
			if len(sec.Settings) > 0 {
				if err := json.Unmarshal(sec.Settings, &settings); err != nil {
					errs = append(errs, domain.FieldError{Field: prefix + ".settings", Message: "invalid JSON"})
					continue
				}
			}
			if fe := validateSettings(prefix+".settings", settings); len(fe) > 0 {
				errs = append(errs, fe...)
				continue
			}
			raw, err := json.Marshal(settings)
			if err != nil {
				return nil, fmt.Errorf("encode roadmap settings: %w", err)
			}
			sec.Settings = raw
		}

		out = append(out, sec)
	}

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	return out, nil
}
