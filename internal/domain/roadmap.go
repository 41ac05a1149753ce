package domain

import (
	"time"

	"github.com/google/uuid"
)

// Version is a roadmap milestone owned by a store creator.
type Version struct {
	ID              uuid.UUID
	CreatorID       uuid.UUID
	ProductID       *uuid.UUID
	Name            string
	Description     *string
	Status          Status
	SortOrder       int
	StatusChangedAt *time.Time
	CreatedAt       time.Time

	// Items is populated by the fetch step, ordered by sort order
	// (or by vote count when the section sorts by votes).
	Items []Item
}

// Progress returns the number of completed items and the total item count.
func (v Version) Progress() (done, total int) {
	for _, it := range v.Items {
		if it.Status == StatusCompleted {
			done++
		}
	}
	return done, len(v.Items)
}

// ProgressPercent returns completed/total as a whole percentage (0 for no items).
func (v Version) ProgressPercent() int {
	done, total := v.Progress()
	if total == 0 {
		return 0
	}
	return done * 100 / total
}

// Item is a roadmap task under a version.
type Item struct {
	ID            uuid.UUID
	VersionID     uuid.UUID
	Title         string
	Description   *string
	Status        Status
	SortOrder     int
	VotingEnabled *bool // nil means enabled
	CreatedAt     time.Time

	// Derived at read time from item_votes.
	VoteCount    int
	UserHasVoted bool
}

// VotingAllowed reports whether the item accepts votes.
func (i Item) VotingAllowed() bool {
	return i.VotingEnabled == nil || *i.VotingEnabled
}

// ItemUpdateParams holds optional fields for a partial item update.
type ItemUpdateParams struct {
	Title       *string
	Description *string // ptr("") clears the description
	Status      *Status
}

// VersionUpdateParams holds optional fields for a partial version update.
type VersionUpdateParams struct {
	Name        *string
	Description *string // ptr("") clears the description
	Status      *Status
}

// VoteTally is the read-time aggregation of item_votes for one item.
type VoteTally struct {
	ItemID       uuid.UUID
	Count        int
	UserHasVoted bool
}
