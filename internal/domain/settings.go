package domain

// Defaults applied when a roadmap section leaves a knob unset.
const (
	DefaultCardOpacity  = 80
	DefaultBorderRadius = 12
	DefaultOverlayAlpha = 40
	DefaultSpacing      = "normal"
	DefaultSectionTitle = "Roadmap"
	MaxBorderRadius     = 48
	MaxCardOpacity      = 100
)

// Background kinds accepted by RoadmapSettings.CustomBgType.
const (
	BgSolid    = "solid"
	BgGradient = "gradient"
	BgImage    = "image"
)

// RoadmapSettings is the stored configuration of one roadmap section.
// It is an immutable input: the style resolver and the layouts read it
// and never write back.
type RoadmapSettings struct {
	Title    string        `json:"title,omitempty"    validate:"max=120"`
	Subtitle string        `json:"subtitle,omitempty" validate:"max=300"`
	Theme    string        `json:"theme,omitempty"    validate:"omitempty,theme"`
	Layout   LayoutVariant `json:"layout,omitempty"   validate:"omitempty,layout"`

	UseCustomColors       bool              `json:"useCustomColors"`
	CustomAccentColor     string            `json:"customAccentColor,omitempty"     validate:"omitempty,hex6"`
	CustomBgType          string            `json:"customBgType,omitempty"          validate:"omitempty,oneof=solid gradient image"`
	CustomBgColor         string            `json:"customBgColor,omitempty"         validate:"omitempty,hex6"`
	CustomBgGradientStart string            `json:"customBgGradientStart,omitempty" validate:"omitempty,hex6"`
	CustomBgGradientEnd   string            `json:"customBgGradientEnd,omitempty"   validate:"omitempty,hex6"`
	CustomTextPrimary     string            `json:"customTextPrimary,omitempty"     validate:"omitempty,hex6"`
	CustomTextSecondary   string            `json:"customTextSecondary,omitempty"   validate:"omitempty,hex6"`
	CustomCardColor       string            `json:"customCardColor,omitempty"       validate:"omitempty,hex6"`
	CustomCardBorder      string            `json:"customCardBorder,omitempty"      validate:"omitempty,hex6"`
	CustomStatusColors    map[Status]string `json:"customStatusColors,omitempty"    validate:"omitempty,dive,keys,status,endkeys,omitempty,hex6"`

	BackgroundImage          string `json:"backgroundImage,omitempty"          validate:"omitempty,url"`
	BackgroundOverlayOpacity *int   `json:"backgroundOverlayOpacity,omitempty" validate:"omitempty,min=0,max=100"`

	CardOpacity  *int   `json:"cardOpacity,omitempty"  validate:"omitempty,min=0,max=100"`
	Spacing      string `json:"spacing,omitempty"      validate:"omitempty,oneof=compact normal relaxed"`
	BorderRadius *int   `json:"borderRadius,omitempty" validate:"omitempty,min=0,max=48"`
	FontFamily   string `json:"fontFamily,omitempty"   validate:"max=200,fontfamily"`

	DefaultExpanded *bool `json:"defaultExpanded,omitempty"`
	SortByVotes     bool  `json:"sortByVotes"`
	VotingEnabled   *bool `json:"votingEnabled,omitempty"`
	ShowSuggestions *bool `json:"showSuggestions,omitempty"`
}

// CardOpacityPercent returns the configured card opacity, defaulting to 80.
func (s RoadmapSettings) CardOpacityPercent() int {
	if s.CardOpacity == nil {
		return DefaultCardOpacity
	}
	return clamp(*s.CardOpacity, 0, MaxCardOpacity)
}

// OverlayOpacityPercent returns the background image overlay opacity.
func (s RoadmapSettings) OverlayOpacityPercent() int {
	if s.BackgroundOverlayOpacity == nil {
		return DefaultOverlayAlpha
	}
	return clamp(*s.BackgroundOverlayOpacity, 0, 100)
}

// Radius returns the card border radius in pixels.
func (s RoadmapSettings) Radius() int {
	if s.BorderRadius == nil {
		return DefaultBorderRadius
	}
	return clamp(*s.BorderRadius, 0, MaxBorderRadius)
}

// ExpandedByDefault reports whether versions start expanded.
func (s RoadmapSettings) ExpandedByDefault() bool {
	return s.DefaultExpanded == nil || *s.DefaultExpanded
}

// VotingOn reports whether item voting is enabled for the section.
func (s RoadmapSettings) VotingOn() bool {
	return s.VotingEnabled == nil || *s.VotingEnabled
}

// SuggestionsShown reports whether the suggestion board is rendered.
func (s RoadmapSettings) SuggestionsShown() bool {
	return s.ShowSuggestions == nil || *s.ShowSuggestions
}

// Heading returns the section title with its default.
func (s RoadmapSettings) Heading() string {
	if s.Title == "" {
		return DefaultSectionTitle
	}
	return s.Title
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
