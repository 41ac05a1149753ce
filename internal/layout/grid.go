package layout

import (
	"github.com/heartmarshall/storefront-backend/internal/domain"
)

// bento is a mosaic where every third tile, starting with the first,
// spans two columns regardless of content.
type bento struct{}

func (bento) Variant() domain.LayoutVariant { return domain.LayoutBento }

func (bento) Render(p Props) *Node {
	g := El("div", "roadmap-body", "bento").
		CSS("display", "grid").
		CSS("grid-template-columns", "repeat(3, minmax(0, 1fr))").
		CSS("gap", px(p.Style.Spacing.Gap))
	for i, v := range p.Versions {
		tile := versionBlock(p, v, "bento-tile")
		if BentoWide(i) {
			tile.Class("wide").CSS("grid-column", "span 2")
		}
		g.Add(tile)
	}
	return g
}

// BentoWide reports whether tile i spans two columns.
func BentoWide(i int) bool { return i%3 == 0 }

// grid is a uniform card grid.
type grid struct{}

func (grid) Variant() domain.LayoutVariant { return domain.LayoutGrid }

func (grid) Render(p Props) *Node {
	g := El("div", "roadmap-body", "grid").
		CSS("display", "grid").
		CSS("grid-template-columns", "repeat(auto-fill, minmax(260px, 1fr))").
		CSS("gap", px(p.Style.Spacing.Gap))
	for _, v := range p.Versions {
		g.Add(versionBlock(p, v, "grid-card"))
	}
	return g
}
