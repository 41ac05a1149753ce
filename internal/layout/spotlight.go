package layout

import (
	"fmt"
	"strconv"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

// spotlight shows exactly one version at a time.
type spotlight struct{}

func (spotlight) Variant() domain.LayoutVariant { return domain.LayoutSpotlight }

func (spotlight) Render(p Props) *Node {
	n := len(p.Versions)
	idx := p.View.SpotlightIndex(n)
	v := p.Versions[idx]
	done, total := v.Progress()

	prev := El("button", "spotlight-prev").Role("prev").SetText("‹").
		On(Action{Op: OpSpotlightPrev})
	prev.Disabled = idx == 0
	next := El("button", "spotlight-next").Role("next").SetText("›").
		On(Action{Op: OpSpotlightNext})
	next.Disabled = idx == n-1

	dots := El("div", "spotlight-dots").Role("dots")
	for i := range p.Versions {
		dot := El("button", "dot").
			Attr("aria-label", p.Versions[i].Name).
			On(Action{Op: OpSpotlightGoto, Value: strconv.Itoa(i)})
		if i == idx {
			dot.Class("active").CSS("background", p.Style.Accent)
		}
		dots.Add(dot)
	}

	stage := card(p.Style, "spotlight-stage").Role("version").
		Attr("data-id", v.ID.String()).
		Attr("data-index", strconv.Itoa(idx)).
		Add(
			versionHeader(p, v),
			El("div", "spotlight-stats").Add(
				Text(fmt.Sprintf("%d/%d", done, total), "spotlight-ratio").Role("spotlight-ratio"),
				Text(fmt.Sprintf("%d%%", v.ProgressPercent()), "spotlight-percent").Role("percent"),
				progressBar(p.Style, v),
			),
		)
	if p.View.IsExpanded(v.ID) {
		stage.Add(versionDescription(p, v), itemList(p, v), addItemForm(p, v))
	}

	return El("div", "roadmap-body", "spotlight").Add(
		El("nav", "spotlight-nav").Add(prev, dots, next),
		stage,
	)
}
