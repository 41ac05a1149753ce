package theme

import "regexp"

var fontFamilyPattern = regexp.MustCompile(`^[\p{L}\p{N} ,'"._-]*$`)

// IsFontFamily reports whether s is a plain CSS font-family list: names,
// quotes and commas only. Anything that could close the declaration is
// rejected.
func IsFontFamily(s string) bool {
	return fontFamilyPattern.MatchString(s)
}
