package main

import (
	"fmt"
	"html"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/internal/layout"
	"github.com/heartmarshall/storefront-backend/internal/theme"
)

type previewOptions struct {
	theme     string
	layout    string
	out       string
	owner     bool
	collapsed bool
	board     bool
}

func newPreviewCmd() *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a demo roadmap to a standalone HTML file",
		Long: "Render a demo roadmap with the given theme and layout. Useful for\n" +
			"checking a theme or layout change without a database.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", theme.DefaultThemeID, "Theme id, see roadmapctl themes")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "Layout variant; empty uses the theme's layout")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "-", "Output file, - for stdout")
	cmd.Flags().BoolVar(&opts.owner, "owner", false, "Render the owner's editing controls")
	cmd.Flags().BoolVar(&opts.collapsed, "collapsed", false, "Start with versions collapsed")
	cmd.Flags().BoolVar(&opts.board, "board", true, "Include the suggestion board")

	return cmd
}

func runPreview(cmd *cobra.Command, opts *previewOptions) error {
	if _, ok := theme.Lookup(opts.theme); !ok {
		return fmt.Errorf("unknown theme %q", opts.theme)
	}
	settings := domain.RoadmapSettings{Theme: opts.theme, Title: "Roadmap preview"}
	if opts.layout != "" {
		lv := domain.LayoutVariant(opts.layout)
		if !lv.IsValid() {
			return fmt.Errorf("unknown layout %q", opts.layout)
		}
		settings.Layout = lv
	}

	props := layout.Props{
		Versions:      demoVersions(),
		Style:         theme.Resolve(settings),
		View:          layout.NewViewState(!opts.collapsed),
		Owner:         opts.owner,
		SignedIn:      true,
		VotingEnabled: true,
		Heading:       settings.Heading(),
		Subtitle:      "Demo data rendered by roadmapctl",
	}
	if opts.board {
		props.Board = &layout.BoardView{Suggestions: demoSuggestions(), Sort: domain.SuggestionSortUpvotes}
	}

	w := cmd.OutOrStdout()
	if opts.out != "-" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := writePreview(w, settings.Heading(), layout.RenderSection(props)); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	if opts.out != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", opts.out)
	}
	return nil
}

func writePreview(w io.Writer, title string, section *layout.Node) error {
	if _, err := fmt.Fprintf(w, "<!doctype html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n",
		html.EscapeString(title)); err != nil {
		return err
	}
	if err := layout.WriteHTML(w, section); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n</body>\n</html>\n")
	return err
}

func demoVersions() []domain.Version {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	creator := uuid.New()
	desc := func(s string) *string { return &s }

	type demoItem struct {
		title  string
		status domain.Status
		votes  int
	}
	specs := []struct {
		name   string
		status domain.Status
		desc   string
		items  []demoItem
	}{
		{"v2.0 Summer drop", domain.StatusInProgress, "New **checkout** and gift cards.", []demoItem{
			{"One-page checkout", domain.StatusCompleted, 42},
			{"Gift cards", domain.StatusQA, 17},
			{"Saved carts", domain.StatusInProgress, 9},
		}},
		{"v2.1 Loyalty", domain.StatusBacklog, "Points, tiers and a [rewards page](https://example.com/rewards).", []demoItem{
			{"Points ledger", domain.StatusBacklog, 31},
			{"Member tiers", domain.StatusBacklog, 5},
		}},
		{"v1.9 Polish", domain.StatusCompleted, "", []demoItem{
			{"Faster image loading", domain.StatusCompleted, 12},
		}},
	}

	versions := make([]domain.Version, len(specs))
	for i, s := range specs {
		v := domain.Version{
			ID:        uuid.New(),
			CreatorID: creator,
			Name:      s.name,
			Status:    s.status,
			SortOrder: i,
			CreatedAt: base.Add(time.Duration(i) * 24 * time.Hour),
		}
		if s.desc != "" {
			v.Description = desc(s.desc)
		}
		for j, it := range s.items {
			v.Items = append(v.Items, domain.Item{
				ID:        uuid.New(),
				VersionID: v.ID,
				Title:     it.title,
				Status:    it.status,
				SortOrder: j,
				VoteCount: it.votes,
				CreatedAt: v.CreatedAt,
			})
		}
		versions[i] = v
	}
	return versions
}

func demoSuggestions() []domain.Suggestion {
	base := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	name := func(s string) *string { return &s }
	return []domain.Suggestion{
		{
			ID: uuid.New(), Title: "Dark mode for the storefront", Status: domain.ForumStatusPlanned,
			CreatedAt: base, Upvotes: 24, ReplyCount: 2,
			Author: domain.Profile{DisplayName: name("Robin")},
		},
		{
			ID: uuid.New(), Title: "Pay with bank transfer", Status: domain.ForumStatusOpen,
			CreatedAt: base.Add(time.Hour), Upvotes: 8,
			Author: domain.Profile{DisplayName: name("Sam")},
		},
	}
}
