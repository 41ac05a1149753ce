package layout

import (
	"strconv"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

// kanban flattens the items of every version into four fixed status
// columns. Each card carries its version's name. The board has no
// per-version grouping, so version controls render in a strip below it.
type kanban struct{}

func (kanban) Variant() domain.LayoutVariant { return domain.LayoutKanban }

type kanbanCard struct {
	item    domain.Item
	version domain.Version
}

func (kanban) Render(p Props) *Node {
	columns := make(map[domain.Status][]kanbanCard, 4)
	for _, v := range p.Versions {
		for _, it := range v.Items {
			columns[it.Status] = append(columns[it.Status], kanbanCard{item: it, version: v})
		}
	}

	board := El("div", "kanban-board").Role("board").
		CSS("display", "grid").
		CSS("grid-template-columns", "repeat(4, minmax(0, 1fr))").
		CSS("gap", px(p.Style.Spacing.Gap))

	for _, s := range domain.AllStatuses() {
		cards := columns[s]
		col := El("div", "kanban-column").Role("column").Attr("data-status", s.String()).Add(
			El("header", "kanban-column-header").Add(
				statusBadge(p.Style, s),
				Text(strconv.Itoa(len(cards)), "kanban-count").Role("count"),
			),
		)
		for _, c := range cards {
			col.Add(kanbanItem(p, c))
		}
		board.Add(col)
	}

	return El("div", "roadmap-body", "kanban").Add(board, kanbanVersions(p))
}

func kanbanItem(p Props, c kanbanCard) *Node {
	n := card(p.Style, "kanban-card").Role("card").
		Attr("data-id", c.item.ID.String()).
		Attr("data-version", c.version.ID.String())
	n.Add(
		Text(c.version.Name, "version-label").Role("version-label").
			CSS("color", p.Style.Accent),
	)
	n.Add(El("ul", "items").Add(itemView(p, c.item)))
	return n
}

// kanbanVersions is the per-version strip below the board.
func kanbanVersions(p Props) *Node {
	strip := El("div", "kanban-versions").Role("versions").
		CSS("display", "flex").
		CSS("flex-wrap", "wrap").
		CSS("gap", px(p.Style.Spacing.Gap)).
		CSS("margin-top", px(p.Style.Spacing.Gap))
	for _, v := range p.Versions {
		block := card(p.Style, "version", "kanban-version").Role("version").
			Attr("data-id", v.ID.String()).
			Add(versionHeader(p, v))
		if p.View.IsExpanded(v.ID) {
			block.Add(versionDescription(p, v), progressBar(p.Style, v), addItemForm(p, v))
		}
		strip.Add(block)
	}
	return strip
}
