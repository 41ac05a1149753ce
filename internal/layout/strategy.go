package layout

import (
	"fmt"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/internal/theme"
)

// Props is everything a strategy renders from. Versions arrive already
// ordered (and vote-sorted when the section asks for it).
type Props struct {
	Versions      []domain.Version
	Style         theme.ResolvedStyle
	View          *ViewState
	Owner         bool
	SignedIn      bool
	VotingEnabled bool // section-level switch; items may still opt out

	Heading  string
	Subtitle string
	Board    *BoardView // nil hides the suggestion board
}

// BoardView is a snapshot of a viewer's suggestion board.
type BoardView struct {
	Suggestions []domain.Suggestion
	Sort        domain.SuggestionSort
	Open        *domain.Suggestion
	Replies     []domain.Reply
	Draft       string
	Submitting  bool
}

// Strategy renders the roadmap body for one layout variant.
type Strategy interface {
	Variant() domain.LayoutVariant
	Render(p Props) *Node
}

var strategies = func() map[domain.LayoutVariant]Strategy {
	all := []Strategy{
		blocks{variant: domain.LayoutList, decorate: decorateList},
		blocks{variant: domain.LayoutGhost, decorate: decorateGhost},
		blocks{variant: domain.LayoutStacked, decorate: decorateStacked},
		blocks{variant: domain.LayoutTimeline, decorate: decorateTimeline},
		blocks{variant: domain.LayoutAccordion, decorate: decorateAccordion},
		blocks{variant: domain.LayoutMagazine, decorate: decorateMagazine},
		blocks{variant: domain.LayoutGlass, decorate: decorateGlass},
		blocks{variant: domain.LayoutBrutalist, decorate: decorateBrutalist},
		kanban{},
		spotlight{},
		orbit{},
		bento{},
		grid{},
		terminal{},
	}
	m := make(map[domain.LayoutVariant]Strategy, len(all))
	for _, s := range all {
		m[s.Variant()] = guarded{s}
	}
	for _, v := range domain.AllLayoutVariants() {
		if _, ok := m[v]; !ok {
			panic(fmt.Sprintf("layout: no strategy for variant %q", v))
		}
	}
	return m
}()

// guarded lets every strategy assume a view state and at least one version.
type guarded struct{ Strategy }

func (g guarded) Render(p Props) *Node {
	if p.View == nil {
		p.View = NewViewState(true)
	}
	if len(p.Versions) == 0 {
		return emptyBody(p.Style)
	}
	return g.Strategy.Render(p)
}

func emptyBody(st theme.ResolvedStyle) *Node {
	return El("p", "roadmap-empty").Role("empty").SetText("Nothing on the roadmap yet.").
		CSS("color", st.TextSecondary)
}

// For returns the strategy for a variant, falling back to the list layout.
func For(v domain.LayoutVariant) Strategy {
	if s, ok := strategies[v]; ok {
		return s
	}
	return strategies[domain.LayoutList]
}

// RenderSection renders the complete roadmap section: themed container,
// heading, owner controls, the strategy body and the suggestion board.
func RenderSection(p Props) *Node {
	if p.View == nil {
		p.View = NewViewState(true)
	}
	st := p.Style
	strategy := For(st.Layout)

	root := El("section", "roadmap", "layout-"+string(strategy.Variant()), "theme-"+st.ThemeID).
		Attr("data-layout", string(strategy.Variant())).
		Attr("data-theme", st.ThemeID).
		CSS("background", st.Background.CSS()).
		CSS("color", st.TextPrimary).
		CSS("font-family", st.Font).
		CSS("padding", px(st.Spacing.Padding)).
		CSS("--accent", st.Accent).
		CSS("--card", st.Card).
		CSS("--border", st.Border).
		CSS("--text-secondary", st.TextSecondary).
		CSS("--radius", px(st.Radius)).
		CSS("--gap", px(st.Spacing.Gap))

	head := El("header", "roadmap-header").Add(
		El("h2", "roadmap-title").SetText(p.Heading),
	)
	if p.Subtitle != "" {
		head.Add(El("p", "roadmap-subtitle").SetText(p.Subtitle).CSS("color", st.TextSecondary))
	}
	root.Add(head, addVersionForm(p))

	root.Add(strategy.Render(p))

	if p.Board != nil {
		root.Add(suggestionBoard(p))
	}
	return root
}

func px(v int) string { return fmt.Sprintf("%dpx", v) }
