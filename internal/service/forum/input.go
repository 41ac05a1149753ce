package forum

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
	maxReplyLength       = 5000
)

// ListSuggestionsInput selects a creator's board and its ordering.
type ListSuggestionsInput struct {
	CreatorID uuid.UUID
	Sort      domain.SuggestionSort // empty means upvotes
}

// Validate checks all fields and collects all errors.
func (i ListSuggestionsInput) Validate() error {
	var errs []domain.FieldError

	if i.CreatorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "creator_id", Message: "required"})
	}
	if i.Sort != "" && !i.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be upvotes, newest or discussed"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SubmitSuggestionInput holds a new visitor suggestion.
type SubmitSuggestionInput struct {
	CreatorID   uuid.UUID
	Title       string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i SubmitSuggestionInput) Validate() error {
	var errs []domain.FieldError

	if i.CreatorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "creator_id", Message: "required"})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ToggleUpvoteInput flips the caller's upvote on a suggestion.
type ToggleUpvoteInput struct {
	SuggestionID     uuid.UUID
	CurrentlyUpvoted bool
}

func (i ToggleUpvoteInput) Validate() error {
	if i.SuggestionID == uuid.Nil {
		return domain.NewValidationError("suggestion_id", "required")
	}
	return nil
}

// SubmitReplyInput holds a reply to the open suggestion.
type SubmitReplyInput struct {
	SuggestionID uuid.UUID
	Content      string
}

// Validate checks all fields and collects all errors.
func (i SubmitReplyInput) Validate() error {
	var errs []domain.FieldError

	if i.SuggestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "suggestion_id", Message: "required"})
	}
	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(content) > maxReplyLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSuggestionStatusInput moves a suggestion through the workflow.
type UpdateSuggestionStatusInput struct {
	SuggestionID uuid.UUID
	Status       domain.ForumStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateSuggestionStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.SuggestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "suggestion_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid suggestion status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteSuggestionInput holds the parameters for deleting a suggestion.
type DeleteSuggestionInput struct {
	SuggestionID uuid.UUID
}

func (i DeleteSuggestionInput) Validate() error {
	if i.SuggestionID == uuid.Nil {
		return domain.NewValidationError("suggestion_id", "required")
	}
	return nil
}
