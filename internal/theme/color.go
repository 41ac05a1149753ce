package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// fallbackRGB is used for any colour that cannot be parsed.
const fallbackRGB = "128,128,128"

var rgbaPattern = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([0-9]*\.?[0-9]+)\s*)?\)$`)

// HexToRGBA converts a #rrggbb colour into an rgba() string with the given
// opacity. Malformed input never fails: it yields neutral gray at the
// requested opacity.
func HexToRGBA(hex string, opacity float64) string {
	alpha := formatAlpha(opacity)

	r, g, b, ok := parseHex(hex)
	if !ok {
		return "rgba(" + fallbackRGB + "," + alpha + ")"
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, alpha)
}

// WithOpacity applies an opacity to a colour. Hex colours are converted via
// HexToRGBA; rgb()/rgba() colours keep their channels and get a new alpha.
// Anything else (named colours, gradients, var() references) is returned
// unchanged.
func WithOpacity(color string, opacity float64) string {
	c := strings.TrimSpace(color)
	if strings.HasPrefix(c, "#") {
		return HexToRGBA(c, opacity)
	}

	m := rgbaPattern.FindStringSubmatch(strings.ToLower(c))
	if m == nil {
		return color
	}
	return fmt.Sprintf("rgba(%s, %s, %s, %s)", m[1], m[2], m[3], formatAlpha(opacity))
}

// BaseHex returns the lowercase #rrggbb form of a hex colour, or "" if the
// input is not a six-digit hex colour.
func BaseHex(color string) string {
	r, g, b, ok := parseHex(color)
	if !ok {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func parseHex(hex string) (r, g, b int64, ok bool) {
	hex = strings.TrimSpace(hex)
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}

	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int64(v >> 16 & 0xff), int64(v >> 8 & 0xff), int64(v & 0xff), true
}

func formatAlpha(opacity float64) string {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return strconv.FormatFloat(opacity, 'f', -1, 64)
}
