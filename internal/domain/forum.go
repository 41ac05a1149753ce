package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousName is shown for authors without a display name.
const AnonymousName = "Anonymous"

// Profile is the public identity of a user.
type Profile struct {
	UserID      uuid.UUID
	DisplayName *string
	AvatarURL   *string
}

// Name returns the display name, falling back to AnonymousName.
func (p Profile) Name() string {
	if p.DisplayName == nil || *p.DisplayName == "" {
		return AnonymousName
	}
	return *p.DisplayName
}

// Suggestion is a visitor feature request on a creator's roadmap board.
type Suggestion struct {
	ID              uuid.UUID
	CreatorID       uuid.UUID
	UserID          uuid.UUID
	Title           string
	Description     *string
	Status          ForumStatus
	StatusChangedAt *time.Time
	CreatedAt       time.Time

	// Derived at read time.
	Upvotes     int
	UserUpvoted bool
	ReplyCount  int
	Author      Profile
}

// SuggestionTally is the read-time aggregation of upvotes and replies.
type SuggestionTally struct {
	SuggestionID uuid.UUID
	Upvotes      int
	UserUpvoted  bool
	ReplyCount   int
}

// Reply is a message in a suggestion thread.
type Reply struct {
	ID           uuid.UUID
	SuggestionID uuid.UUID
	UserID       uuid.UUID
	Content      string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Derived at read time.
	Author Profile
	// IsCreator is true when the reply was written by the roadmap's
	// creator (the store owner), compared against Suggestion.CreatorID.
	// It does not mark the author of the suggestion itself.
	IsCreator bool
}
