// Package theme holds the built-in roadmap theme catalog and resolves a
// theme plus per-section overrides into a ResolvedStyle.
package theme

import (
	_ "embed"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

// DefaultThemeID is used when settings name no theme or an unknown one.
const DefaultThemeID = "midnight"

//go:embed themes.yaml
var catalogYAML []byte

// BackgroundSpec is a theme's page background: a solid colour or a
// two-stop gradient.
type BackgroundSpec struct {
	Type  string `yaml:"type"`
	Color string `yaml:"color"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Theme is an immutable catalog entry.
type Theme struct {
	ID            string                   `yaml:"id"`
	Name          string                   `yaml:"name"`
	Accent        string                   `yaml:"accent"`
	Background    BackgroundSpec           `yaml:"background"`
	Surface       string                   `yaml:"surface"`
	Border        string                   `yaml:"border"`
	TextPrimary   string                   `yaml:"text_primary"`
	TextSecondary string                   `yaml:"text_secondary"`
	Font          string                   `yaml:"font"`
	Layout        domain.LayoutVariant     `yaml:"layout"`
	StatusColors  map[domain.Status]string `yaml:"status"`
}

// clone returns a copy that shares no mutable state with the catalog.
func (t Theme) clone() Theme {
	t.StatusColors = maps.Clone(t.StatusColors)
	return t
}

var catalog = mustParseCatalog(catalogYAML)

// List returns copies of all built-in themes in catalog order.
func List() []Theme {
	out := make([]Theme, len(catalog))
	for i, t := range catalog {
		out[i] = t.clone()
	}
	return out
}

// Lookup returns the theme with the given id.
func Lookup(id string) (Theme, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t.clone(), true
		}
	}
	return Theme{}, false
}

// Get returns the theme with the given id, or the default theme.
func Get(id string) Theme {
	if t, ok := Lookup(id); ok {
		return t
	}
	t, _ := Lookup(DefaultThemeID)
	return t
}

func mustParseCatalog(data []byte) []Theme {
	themes, err := parseCatalog(data)
	if err != nil {
		panic(fmt.Sprintf("theme: embedded catalog: %v", err))
	}
	return themes
}

func parseCatalog(data []byte) ([]Theme, error) {
	var themes []Theme
	if err := yaml.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	seen := make(map[string]bool, len(themes))
	for _, t := range themes {
		if err := validateTheme(t); err != nil {
			return nil, fmt.Errorf("theme %q: %w", t.ID, err)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("theme %q: duplicate id", t.ID)
		}
		seen[t.ID] = true
	}
	if !seen[DefaultThemeID] {
		return nil, fmt.Errorf("default theme %q missing", DefaultThemeID)
	}
	return themes, nil
}

func validateTheme(t Theme) error {
	if t.ID == "" {
		return fmt.Errorf("id required")
	}
	if !t.Layout.IsValid() {
		return fmt.Errorf("unknown layout %q", t.Layout)
	}

	colors := map[string]string{
		"accent":         t.Accent,
		"surface":        t.Surface,
		"border":         t.Border,
		"text_primary":   t.TextPrimary,
		"text_secondary": t.TextSecondary,
	}
	switch t.Background.Type {
	case domain.BgSolid:
		colors["background.color"] = t.Background.Color
	case domain.BgGradient:
		colors["background.start"] = t.Background.Start
		colors["background.end"] = t.Background.End
	default:
		return fmt.Errorf("unknown background type %q", t.Background.Type)
	}
	for _, s := range domain.AllStatuses() {
		colors["status."+s.String()] = t.StatusColors[s]
	}

	for field, c := range colors {
		if BaseHex(c) == "" {
			return fmt.Errorf("%s: %q is not a #rrggbb colour", field, c)
		}
	}
	return nil
}
