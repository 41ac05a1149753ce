package theme

import (
	"fmt"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

// StatusTintOpacity is the alpha of a status badge background relative to
// its border/text colour.
const StatusTintOpacity = 0.2

// StatusStyle is the display triple for one status. Background is always a
// low-alpha tint of the same base colour as Border and Text.
type StatusStyle struct {
	Background string
	Border     string
	Text       string
}

// Background is the resolved page background.
type Background struct {
	Kind     string // solid, gradient or image
	Color    string
	Start    string
	End      string
	ImageURL string
	Overlay  string // rgba overlay drawn on top of an image
}

// CSS returns the value for a CSS background declaration.
func (b Background) CSS() string {
	switch b.Kind {
	case domain.BgGradient:
		return fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", b.Start, b.End)
	case domain.BgImage:
		return fmt.Sprintf("linear-gradient(%s, %s), url(%q) center / cover no-repeat", b.Overlay, b.Overlay, b.ImageURL)
	default:
		return b.Color
	}
}

// Spacing is the gap/padding scale in pixels.
type Spacing struct {
	Name    string
	Gap     int
	Padding int
}

var spacingScale = map[string]Spacing{
	"compact": {Name: "compact", Gap: 8, Padding: 12},
	"normal":  {Name: "normal", Gap: 16, Padding: 20},
	"relaxed": {Name: "relaxed", Gap: 24, Padding: 28},
}

// ResolvedStyle is the complete visual style consumed by the layouts.
// It is derived from (theme, settings) on every render and never stored.
type ResolvedStyle struct {
	ThemeID       string
	Accent        string
	Background    Background
	Status        map[domain.Status]StatusStyle
	CardBase      string // surface colour before opacity
	Card          string // surface colour with card opacity applied
	Border        string
	TextPrimary   string
	TextSecondary string
	Font          string
	Layout        domain.LayoutVariant
	Spacing       Spacing
	Radius        int
}

// StatusStyleFor returns the triple for a status, falling back to neutral
// gray for values outside the closed set.
func (r ResolvedStyle) StatusStyleFor(s domain.Status) StatusStyle {
	if st, ok := r.Status[s]; ok {
		return st
	}
	return statusStyle("")
}

// Resolve merges the selected theme with the section overrides.
// An override wins only when UseCustomColors is set and that particular
// field is non-empty; every other field keeps the theme value.
func Resolve(settings domain.RoadmapSettings) ResolvedStyle {
	return ResolveWith(Get(settings.Theme), settings)
}

// ResolveWith is Resolve against an explicit theme.
func ResolveWith(t Theme, s domain.RoadmapSettings) ResolvedStyle {
	pick := func(custom, base string) string {
		if s.UseCustomColors && custom != "" {
			return custom
		}
		return base
	}

	surface := pick(s.CustomCardColor, t.Surface)

	style := ResolvedStyle{
		ThemeID:       t.ID,
		Accent:        pick(s.CustomAccentColor, t.Accent),
		Background:    resolveBackground(t, s),
		Status:        make(map[domain.Status]StatusStyle, 4),
		CardBase:      surface,
		Card:          WithOpacity(surface, float64(s.CardOpacityPercent())/100),
		Border:        pick(s.CustomCardBorder, t.Border),
		TextPrimary:   pick(s.CustomTextPrimary, t.TextPrimary),
		TextSecondary: pick(s.CustomTextSecondary, t.TextSecondary),
		Font:          t.Font,
		Layout:        t.Layout,
		Spacing:       spacingScale[domain.DefaultSpacing],
		Radius:        s.Radius(),
	}

	for _, st := range domain.AllStatuses() {
		style.Status[st] = statusStyle(pick(s.CustomStatusColors[st], t.StatusColors[st]))
	}
	if s.FontFamily != "" && IsFontFamily(s.FontFamily) {
		style.Font = s.FontFamily
	}
	if s.Layout.IsValid() {
		style.Layout = s.Layout
	}
	if sp, ok := spacingScale[s.Spacing]; ok {
		style.Spacing = sp
	}

	return style
}

func statusStyle(base string) StatusStyle {
	if base == "" {
		base = "#808080"
	}
	return StatusStyle{
		Background: WithOpacity(base, StatusTintOpacity),
		Border:     base,
		Text:       base,
	}
}

func resolveBackground(t Theme, s domain.RoadmapSettings) Background {
	bg := Background{Kind: t.Background.Type}
	switch t.Background.Type {
	case domain.BgGradient:
		bg.Start, bg.End = t.Background.Start, t.Background.End
		bg.Color = t.Background.Start
	default:
		bg.Color = t.Background.Color
		bg.Start, bg.End = t.Background.Color, t.Background.Color
	}

	if !s.UseCustomColors {
		return bg
	}

	switch s.CustomBgType {
	case domain.BgSolid:
		bg.Kind = domain.BgSolid
	case domain.BgGradient:
		bg.Kind = domain.BgGradient
	case domain.BgImage:
		if s.BackgroundImage != "" {
			bg.Kind = domain.BgImage
			bg.ImageURL = s.BackgroundImage
			bg.Overlay = HexToRGBA("#000000", float64(s.OverlayOpacityPercent())/100)
		}
	}
	if s.CustomBgColor != "" {
		bg.Color = s.CustomBgColor
	}
	if s.CustomBgGradientStart != "" {
		bg.Start = s.CustomBgGradientStart
	}
	if s.CustomBgGradientEnd != "" {
		bg.End = s.CustomBgGradientEnd
	}
	return bg
}
