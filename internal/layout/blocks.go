package layout

import (
	"strconv"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

// blocks renders one block per version. The variants differ only in the
// chrome their decorate func applies to each block and to the container.
type blocks struct {
	variant  domain.LayoutVariant
	decorate func(p Props, i int, block *Node)
}

func (b blocks) Variant() domain.LayoutVariant { return b.variant }

func (b blocks) Render(p Props) *Node {
	body := El("div", "roadmap-body", "blocks", "blocks-"+string(b.variant)).
		CSS("display", "flex").
		CSS("flex-direction", "column").
		CSS("gap", px(p.Style.Spacing.Gap))
	for i, v := range p.Versions {
		block := versionBlock(p, v)
		b.decorate(p, i, block)
		body.Add(block)
	}
	return body
}

func decorateList(_ Props, _ int, block *Node) {
	block.Class("plain")
}

func decorateGhost(p Props, _ int, block *Node) {
	block.Class("ghost").
		CSS("background", "transparent").
		CSS("border", "1px dashed "+p.Style.Border)
}

func decorateStacked(_ Props, i int, block *Node) {
	block.Class("stacked").
		CSS("box-shadow", "0 6px 0 -2px var(--border), 0 12px 0 -4px var(--border)").
		CSS("z-index", strconv.Itoa(100-i))
}

func decorateTimeline(p Props, i int, block *Node) {
	block.Class("timeline-entry").
		CSS("margin-left", "32px").
		CSS("position", "relative")
	dot := El("span", "timeline-dot").
		CSS("position", "absolute").
		CSS("left", "-26px").
		CSS("top", "20px").
		CSS("width", "12px").
		CSS("height", "12px").
		CSS("border-radius", "50%").
		CSS("background", p.Style.StatusStyleFor(statusOf(p, i)).Border)
	line := El("span", "timeline-line").
		CSS("position", "absolute").
		CSS("left", "-21px").
		CSS("top", "0").
		CSS("bottom", "0").
		CSS("width", "2px").
		CSS("background", p.Style.Border)
	block.Children = append([]*Node{line, dot}, block.Children...)
}

func decorateAccordion(_ Props, _ int, block *Node) {
	block.Class("accordion-panel").
		CSS("border-radius", "0").
		CSS("border-left", "none").
		CSS("border-right", "none")
}

// decorateMagazine gives the first version a feature treatment.
func decorateMagazine(_ Props, i int, block *Node) {
	block.Class("magazine-article").CSS("font-family", "Georgia, 'Times New Roman', serif")
	if i == 0 {
		block.Class("feature").CSS("font-size", "1.15em")
	}
}

func decorateGlass(_ Props, _ int, block *Node) {
	block.Class("glass").
		CSS("backdrop-filter", "blur(12px)").
		CSS("-webkit-backdrop-filter", "blur(12px)")
}

func decorateBrutalist(p Props, _ int, block *Node) {
	block.Class("brutalist").
		CSS("border", "3px solid "+p.Style.TextPrimary).
		CSS("border-radius", "0").
		CSS("box-shadow", "6px 6px 0 "+p.Style.TextPrimary).
		CSS("font-weight", "800")
}

func statusOf(p Props, i int) domain.Status {
	if i < 0 || i >= len(p.Versions) {
		return domain.StatusBacklog
	}
	return p.Versions[i].Status
}
