package roadmap

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

const (
	maxNameLength        = 120
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// LoadInput selects whose roadmap to fetch.
type LoadInput struct {
	CreatorID   uuid.UUID
	ProductID   *uuid.UUID
	SortByVotes bool
}

func (i LoadInput) Validate() error {
	if i.CreatorID == uuid.Nil {
		return domain.NewValidationError("creator_id", "required")
	}
	return nil
}

// AddVersionInput holds the parameters for creating a version.
type AddVersionInput struct {
	Name        string
	Description *string
	ProductID   *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AddVersionInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 120 characters"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddItemInput holds the parameters for creating an item.
type AddItemInput struct {
	VersionID   uuid.UUID
	Title       string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError

	if i.VersionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "version_id", Message: "required"})
	}
	errs = append(errs, validateTitle(i.Title)...)
	if i.Description != nil && len(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateStatusInput targets one version, item or suggestion.
type UpdateStatusInput struct {
	Kind   domain.EntityKind
	ID     uuid.UUID
	Status string
}

// Validate checks the status against the closed set for the entity kind.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be version, item or suggestion"})
	}
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	switch i.Kind {
	case domain.EntityKindSuggestion:
		if !domain.ForumStatus(i.Status).IsValid() {
			errs = append(errs, domain.FieldError{Field: "status", Message: "invalid suggestion status"})
		}
	case domain.EntityKindVersion, domain.EntityKindItem:
		if !domain.Status(i.Status).IsValid() {
			errs = append(errs, domain.FieldError{Field: "status", Message: "must be backlog, in_progress, qa or completed"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteVersionInput requires an explicit confirmation.
type DeleteVersionInput struct {
	VersionID uuid.UUID
	Confirmed bool
}

func (i DeleteVersionInput) Validate() error {
	if i.VersionID == uuid.Nil {
		return domain.NewValidationError("version_id", "required")
	}
	return nil
}

// DeleteItemInput holds the parameters for deleting an item.
type DeleteItemInput struct {
	ItemID uuid.UUID
}

func (i DeleteItemInput) Validate() error {
	if i.ItemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}
	return nil
}

// UpdateVersionDescriptionInput replaces a version's description.
// A blank description clears it.
type UpdateVersionDescriptionInput struct {
	VersionID   uuid.UUID
	Description string
}

// Validate checks all fields and collects all errors.
func (i UpdateVersionDescriptionInput) Validate() error {
	var errs []domain.FieldError

	if i.VersionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "version_id", Message: "required"})
	}
	if len(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTaskInput replaces an item's title and description.
// A blank description clears it.
type UpdateTaskInput struct {
	ItemID      uuid.UUID
	Title       string
	Description string
}

// Validate checks all fields and collects all errors.
func (i UpdateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	errs = append(errs, validateTitle(i.Title)...)
	if len(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ToggleItemVoteInput flips the caller's vote on an item.
type ToggleItemVoteInput struct {
	// CreatorID owns the roadmap whose settings supplied SectionVoting. The
	// item must belong to it.
	CreatorID      uuid.UUID
	ItemID         uuid.UUID
	CurrentlyVoted bool
	// SectionVoting is the section-level switch from the roadmap settings.
	SectionVoting bool
}

func (i ToggleItemVoteInput) Validate() error {
	var errs []domain.FieldError
	if i.CreatorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "creator_id", Message: "required"})
	}
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateTitle(title string) []domain.FieldError {
	t := strings.TrimSpace(title)
	if t == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if len(t) > maxTitleLength {
		return []domain.FieldError{{Field: "title", Message: "max 200 characters"}}
	}
	return nil
}
