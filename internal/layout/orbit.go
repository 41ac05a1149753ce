package layout

import (
	"fmt"
	"math"
	"strconv"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

// OrbitRadius is the distance of version nodes from the hub, in pixels.
const OrbitRadius = 140

// OrbitAngle returns the angle in radians of node i of n. Node 0 sits at
// the top of the circle.
func OrbitAngle(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return 2*math.Pi*float64(i)/float64(n) - math.Pi/2
}

// orbit arranges versions around a hub. One node is active and its detail
// renders below the selector.
type orbit struct{}

func (orbit) Variant() domain.LayoutVariant { return domain.LayoutOrbit }

func (orbit) Render(p Props) *Node {
	n := len(p.Versions)
	active := p.View.ActiveOrbit(p.Versions)
	size := 2*OrbitRadius + 120

	ring := El("div", "orbit-ring").Role("orbit").
		CSS("position", "relative").
		CSS("width", px(size)).
		CSS("height", px(size)).
		CSS("margin", "0 auto").
		Add(
			El("div", "orbit-hub").
				CSS("position", "absolute").
				CSS("left", "50%").
				CSS("top", "50%").
				CSS("transform", "translate(-50%, -50%)").
				CSS("background", p.Style.Accent).
				Add(Text(strconv.Itoa(n), "orbit-count")),
		)

	for i, v := range p.Versions {
		a := OrbitAngle(i, n)
		x := OrbitRadius * math.Cos(a)
		y := OrbitRadius * math.Sin(a)
		ss := p.Style.StatusStyleFor(v.Status)

		node := El("button", "orbit-node").Role("orbit-node").
			Attr("data-id", v.ID.String()).
			Attr("data-angle", strconv.FormatFloat(a, 'f', 4, 64)).
			CSS("position", "absolute").
			CSS("left", fmt.Sprintf("calc(50%% + %.1fpx)", x)).
			CSS("top", fmt.Sprintf("calc(50%% + %.1fpx)", y)).
			CSS("transform", "translate(-50%, -50%)").
			CSS("border", "2px solid "+ss.Border).
			SetText(v.Name).
			On(Action{Op: OpOrbitSelect, Target: v.ID.String()})
		if i == active {
			node.Class("active").Attr("aria-current", "true").CSS("background", ss.Background)
		}
		ring.Add(node)
	}

	body := El("div", "roadmap-body", "orbit").Add(ring)
	if active >= 0 {
		body.Add(versionBlock(p, p.Versions[active], "orbit-detail"))
	}
	return body
}
