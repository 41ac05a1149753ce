package layout

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
)

// md renders CommonMark. Raw HTML in the source is omitted, not passed through.
var md = goldmark.New()

// Markdown renders a description into a node. Nil or blank input yields nil.
func Markdown(src *string, classes ...string) *Node {
	if src == nil || strings.TrimSpace(*src) == "" {
		return nil
	}

	n := El("div", append([]string{"markdown"}, classes...)...)
	var buf bytes.Buffer
	if err := md.Convert([]byte(*src), &buf); err != nil {
		n.Raw = html.EscapeString(*src)
		return n
	}
	n.Raw = buf.String()
	return n
}
