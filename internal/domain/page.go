package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Section is one block of a storefront page. Settings hold the section's
// JSON configuration; for roadmap sections it decodes into RoadmapSettings.
type Section struct {
	ID       string          `json:"id"`
	Type     SectionType     `json:"type"`
	Visible  bool            `json:"visible"`
	Settings json.RawMessage `json:"settings,omitempty"`
}

// PageConfig is the page-builder configuration of a storefront.
type PageConfig struct {
	CreatorID uuid.UUID `json:"-"`
	Sections  []Section `json:"sections"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultPageConfig returns the page a new store starts with.
func DefaultPageConfig(creatorID uuid.UUID) PageConfig {
	return PageConfig{
		CreatorID: creatorID,
		Sections: []Section{
			{ID: "header", Type: SectionHeader, Visible: true},
			{ID: "hero", Type: SectionHero, Visible: true},
			{ID: "roadmap", Type: SectionRoadmap, Visible: true, Settings: json.RawMessage(`{}`)},
		},
	}
}

// RoadmapSection returns the first roadmap section, if any.
func (p PageConfig) RoadmapSection() (Section, bool) {
	for _, s := range p.Sections {
		if s.Type == SectionRoadmap {
			return s, true
		}
	}
	return Section{}, false
}
