package layout

import (
	"bufio"
	"html"
	"io"
	"sort"
	"strings"
)

var voidElements = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "meta": true, "link": true,
}

// WriteHTML serialises the tree. Output is deterministic: attributes and
// style properties are written in sorted order.
func WriteHTML(w io.Writer, n *Node) error {
	bw := bufio.NewWriter(w)
	writeNode(bw, n)
	return bw.Flush()
}

// HTML returns the serialised tree as a string.
func HTML(n *Node) string {
	var b strings.Builder
	_ = WriteHTML(&b, n)
	return b.String()
}

func writeNode(w *bufio.Writer, n *Node) {
	if n == nil {
		return
	}
	if n.Tag == "" {
		w.WriteString(html.EscapeString(n.Text))
		w.WriteString(n.Raw)
		for _, c := range n.Children {
			writeNode(w, c)
		}
		return
	}

	w.WriteByte('<')
	w.WriteString(n.Tag)
	for _, kv := range attributes(n) {
		w.WriteByte(' ')
		w.WriteString(kv[0])
		if kv[1] != "" || kv[0] == "value" {
			w.WriteString(`="`)
			w.WriteString(html.EscapeString(kv[1]))
			w.WriteByte('"')
		}
	}
	w.WriteByte('>')
	if voidElements[n.Tag] {
		return
	}

	w.WriteString(html.EscapeString(n.Text))
	w.WriteString(n.Raw)
	for _, c := range n.Children {
		writeNode(w, c)
	}
	w.WriteString("</")
	w.WriteString(n.Tag)
	w.WriteByte('>')
}

func attributes(n *Node) [][2]string {
	attrs := make(map[string]string, len(n.Attrs)+6)
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	if len(n.Classes) > 0 {
		attrs["class"] = strings.Join(n.Classes, " ")
	}
	if len(n.Style) > 0 {
		props := make([]string, 0, len(n.Style))
		for k, v := range n.Style {
			props = append(props, k+": "+v)
		}
		sort.Strings(props)
		attrs["style"] = strings.Join(props, "; ")
	}
	if n.Action != nil {
		attrs["data-action"] = string(n.Action.Op)
		if n.Action.Target != "" {
			attrs["data-target"] = n.Action.Target
		}
		if n.Action.Value != "" {
			attrs["data-value"] = n.Action.Value
		}
		if n.Action.Confirm != "" {
			attrs["data-confirm"] = n.Action.Confirm
		}
	}
	if n.Disabled {
		attrs["disabled"] = ""
	}

	out := make([][2]string, 0, len(attrs))
	for k, v := range attrs {
		out = append(out, [2]string{k, v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
