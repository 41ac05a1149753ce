package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

func TestCatalog_EmbeddedIsValid(t *testing.T) {
	t.Parallel()

	themes, err := parseCatalog(catalogYAML)
	require.NoError(t, err)
	require.NotEmpty(t, themes)

	for _, th := range themes {
		assert.Len(t, th.StatusColors, 4, "theme %s", th.ID)
		assert.True(t, th.Layout.IsValid(), "theme %s", th.ID)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	th, ok := Lookup("terminal")
	require.True(t, ok)
	assert.Equal(t, domain.LayoutTerminal, th.Layout)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestGet_ReturnsCopies(t *testing.T) {
	t.Parallel()

	a := Get("paper")
	a.StatusColors[domain.StatusQA] = "#000000"
	a.Accent = "#000000"

	b := Get("paper")
	assert.NotEqual(t, "#000000", b.StatusColors[domain.StatusQA])
	assert.NotEqual(t, "#000000", b.Accent)
}

func TestParseCatalog_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml list", "id: x"},
		{"missing default", `
- id: other
  accent: "#000000"
  background: { type: solid, color: "#000000" }
  surface: "#000000"
  border: "#000000"
  text_primary: "#000000"
  text_secondary: "#000000"
  layout: list
  status: { backlog: "#000000", in_progress: "#000000", qa: "#000000", completed: "#000000" }
`},
		{"bad colour", `
- id: midnight
  accent: "purple"
  background: { type: solid, color: "#000000" }
  surface: "#000000"
  border: "#000000"
  text_primary: "#000000"
  text_secondary: "#000000"
  layout: list
  status: { backlog: "#000000", in_progress: "#000000", qa: "#000000", completed: "#000000" }
`},
		{"bad layout", `
- id: midnight
  accent: "#000000"
  background: { type: solid, color: "#000000" }
  surface: "#000000"
  border: "#000000"
  text_primary: "#000000"
  text_secondary: "#000000"
  layout: carousel
  status: { backlog: "#000000", in_progress: "#000000", qa: "#000000", completed: "#000000" }
`},
		{"missing status", `
- id: midnight
  accent: "#000000"
  background: { type: solid, color: "#000000" }
  surface: "#000000"
  border: "#000000"
  text_primary: "#000000"
  text_secondary: "#000000"
  layout: list
  status: { backlog: "#000000" }
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parseCatalog([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
