package domain

// Status is the delivery state shared by roadmap versions and their items.
type Status string

const (
	StatusBacklog    Status = "backlog"
	StatusInProgress Status = "in_progress"
	StatusQA         Status = "qa"
	StatusCompleted  Status = "completed"
)

// AllStatuses returns the four statuses in board order.
func AllStatuses() []Status {
	return []Status{StatusBacklog, StatusInProgress, StatusQA, StatusCompleted}
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusBacklog, StatusInProgress, StatusQA, StatusCompleted:
		return true
	}
	return false
}

// Label returns the human-readable column/selector label.
func (s Status) Label() string {
	switch s {
	case StatusBacklog:
		return "Backlog"
	case StatusInProgress:
		return "In Progress"
	case StatusQA:
		return "QA"
	case StatusCompleted:
		return "Done"
	}
	return string(s)
}

// ForumStatus is the workflow state of a visitor suggestion.
// It is deliberately disjoint from Status.
type ForumStatus string

const (
	ForumStatusOpen       ForumStatus = "open"
	ForumStatusPlanned    ForumStatus = "planned"
	ForumStatusInProgress ForumStatus = "in_progress"
	ForumStatusCompleted  ForumStatus = "completed"
	ForumStatusDeclined   ForumStatus = "declined"
)

// AllForumStatuses returns the suggestion workflow states in display order.
func AllForumStatuses() []ForumStatus {
	return []ForumStatus{
		ForumStatusOpen, ForumStatusPlanned, ForumStatusInProgress,
		ForumStatusCompleted, ForumStatusDeclined,
	}
}

func (s ForumStatus) String() string { return string(s) }

func (s ForumStatus) IsValid() bool {
	switch s {
	case ForumStatusOpen, ForumStatusPlanned, ForumStatusInProgress,
		ForumStatusCompleted, ForumStatusDeclined:
		return true
	}
	return false
}

// EntityKind identifies which entity a status update targets.
type EntityKind string

const (
	EntityKindVersion    EntityKind = "version"
	EntityKindItem       EntityKind = "item"
	EntityKindSuggestion EntityKind = "suggestion"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindVersion, EntityKindItem, EntityKindSuggestion:
		return true
	}
	return false
}

// SuggestionSort selects the ordering of the suggestion list.
type SuggestionSort string

const (
	SuggestionSortUpvotes   SuggestionSort = "upvotes"
	SuggestionSortNewest    SuggestionSort = "newest"
	SuggestionSortDiscussed SuggestionSort = "discussed"
)

func (s SuggestionSort) String() string { return string(s) }

func (s SuggestionSort) IsValid() bool {
	switch s {
	case SuggestionSortUpvotes, SuggestionSortNewest, SuggestionSortDiscussed:
		return true
	}
	return false
}

// LayoutVariant selects one of the roadmap rendering strategies.
type LayoutVariant string

const (
	LayoutList      LayoutVariant = "list"
	LayoutGhost     LayoutVariant = "ghost"
	LayoutKanban    LayoutVariant = "kanban"
	LayoutTimeline  LayoutVariant = "timeline"
	LayoutTerminal  LayoutVariant = "terminal"
	LayoutSpotlight LayoutVariant = "spotlight"
	LayoutBento     LayoutVariant = "bento"
	LayoutGlass     LayoutVariant = "glass"
	LayoutBrutalist LayoutVariant = "brutalist"
	LayoutAccordion LayoutVariant = "accordion"
	LayoutOrbit     LayoutVariant = "orbit"
	LayoutGrid      LayoutVariant = "grid"
	LayoutMagazine  LayoutVariant = "magazine"
	LayoutStacked   LayoutVariant = "stacked"
)

// AllLayoutVariants returns every supported layout variant.
func AllLayoutVariants() []LayoutVariant {
	return []LayoutVariant{
		LayoutList, LayoutGhost, LayoutKanban, LayoutTimeline, LayoutTerminal,
		LayoutSpotlight, LayoutBento, LayoutGlass, LayoutBrutalist,
		LayoutAccordion, LayoutOrbit, LayoutGrid, LayoutMagazine, LayoutStacked,
	}
}

func (v LayoutVariant) String() string { return string(v) }

func (v LayoutVariant) IsValid() bool {
	switch v {
	case LayoutList, LayoutGhost, LayoutKanban, LayoutTimeline, LayoutTerminal,
		LayoutSpotlight, LayoutBento, LayoutGlass, LayoutBrutalist,
		LayoutAccordion, LayoutOrbit, LayoutGrid, LayoutMagazine, LayoutStacked:
		return true
	}
	return false
}

// SectionType is one entry of the fixed storefront section catalog.
type SectionType string

const (
	SectionHeader      SectionType = "header"
	SectionHero        SectionType = "hero"
	SectionProductGrid SectionType = "product_grid"
	SectionRoadmap     SectionType = "roadmap"
	SectionAbout       SectionType = "about"
	SectionTOS         SectionType = "tos"
)

func (t SectionType) String() string { return string(t) }

func (t SectionType) IsValid() bool {
	switch t {
	case SectionHeader, SectionHero, SectionProductGrid, SectionRoadmap, SectionAbout, SectionTOS:
		return true
	}
	return false
}
