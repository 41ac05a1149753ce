package layout

import (
	"fmt"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

var terminalMarks = map[domain.Status]string{
	domain.StatusBacklog:    "[ ]",
	domain.StatusInProgress: "[~]",
	domain.StatusQA:         "[?]",
	domain.StatusCompleted:  "[x]",
}

// terminal renders the roadmap as a console session.
type terminal struct{}

func (terminal) Variant() domain.LayoutVariant { return domain.LayoutTerminal }

func (terminal) Render(p Props) *Node {
	con := El("div", "roadmap-body", "terminal").Role("console").
		CSS("font-family", "ui-monospace, SFMono-Regular, Menlo, monospace").
		CSS("background", "#0c0c0c").
		CSS("color", p.Style.Accent).
		CSS("border-radius", px(p.Style.Radius)).
		CSS("padding", px(p.Style.Spacing.Padding))

	con.Add(El("div", "terminal-line", "prompt").
		SetText(fmt.Sprintf("$ roadmap ls --versions  # %d total", len(p.Versions))))

	for _, v := range p.Versions {
		done, total := v.Progress()
		ss := p.Style.StatusStyleFor(v.Status)

		block := El("div", "terminal-version").Role("version").Attr("data-id", v.ID.String())
		block.Add(El("div", "terminal-line", "version-line").Add(
			toggleButton(p, v),
			Text(fmt.Sprintf("%s ", v.Name), "version-name").Role("version-name"),
			Text(fmt.Sprintf("[%s]", v.Status), "terminal-status").CSS("color", ss.Text),
			Text(fmt.Sprintf(" %d/%d", done, total), "progress-ratio").Role("ratio"),
			statusSelect(p, OpSetVersionStatus, v.ID, v.Status),
			deleteVersionButton(p, v),
		))

		if p.View.IsExpanded(v.ID) {
			block.Add(versionDescription(p, v))
			list := El("ul", "items", "terminal-items")
			for _, it := range v.Items {
				row := itemView(p, it, "terminal-line")
				if !p.View.IsEditing(it.ID) || !p.Owner {
					row.Children = append([]*Node{Text(terminalMarks[it.Status]+" ", "terminal-mark")}, row.Children...)
				}
				list.Add(row)
			}
			block.Add(list, addItemForm(p, v))
		}
		con.Add(block)
	}

	con.Add(El("div", "terminal-line", "cursor").SetText("$ _"))
	return con
}
