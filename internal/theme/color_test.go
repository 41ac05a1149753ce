package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexToRGBA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		hex     string
		opacity float64
		want    string
	}{
		{"valid", "#336699", 0.5, "rgba(51, 102, 153, 0.5)"},
		{"uppercase", "#FFAA00", 1, "rgba(255, 170, 0, 1)"},
		{"black zero", "#000000", 0, "rgba(0, 0, 0, 0)"},
		{"named colour", "blue", 0.5, "rgba(128,128,128,0.5)"},
		{"short hex", "#fff", 0.5, "rgba(128,128,128,0.5)"},
		{"missing hash", "336699", 0.5, "rgba(128,128,128,0.5)"},
		{"non hex digits", "#33zz99", 0.3, "rgba(128,128,128,0.3)"},
		{"empty", "", 0.8, "rgba(128,128,128,0.8)"},
		{"opacity clamped high", "#336699", 1.7, "rgba(51, 102, 153, 1)"},
		{"opacity clamped low", "#336699", -0.2, "rgba(51, 102, 153, 0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, HexToRGBA(tt.hex, tt.opacity))
		})
	}
}

func TestWithOpacity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		color   string
		opacity float64
		want    string
	}{
		{"rgba alpha replaced", "rgba(10,20,30,0.9)", 0.2, "rgba(10, 20, 30, 0.2)"},
		{"rgba with spaces", "rgba( 10 , 20 , 30 , 1 )", 0.5, "rgba(10, 20, 30, 0.5)"},
		{"rgb gets alpha", "rgb(1, 2, 3)", 0.25, "rgba(1, 2, 3, 0.25)"},
		{"hex delegates", "#336699", 0.5, "rgba(51, 102, 153, 0.5)"},
		{"malformed hex falls back", "#abc", 0.4, "rgba(128,128,128,0.4)"},
		{"named passes through", "red", 0.5, "red"},
		{"gradient passes through", "linear-gradient(#000, #fff)", 0.5, "linear-gradient(#000, #fff)"},
		{"css var passes through", "var(--accent)", 0.5, "var(--accent)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, WithOpacity(tt.color, tt.opacity))
		})
	}
}

func TestBaseHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#336699", BaseHex("#336699"))
	assert.Equal(t, "#aabbcc", BaseHex("#AABBCC"))
	assert.Equal(t, "", BaseHex("#abc"))
	assert.Equal(t, "", BaseHex("rgba(1,2,3,1)"))
}
