package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/internal/theme"
)

type themeRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Layout     string `json:"layout"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Font       string `json:"font"`
}

func newThemesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the built-in theme catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			themes := theme.List()
			rows := make([]themeRow, len(themes))
			for i, t := range themes {
				st := theme.Resolve(domain.RoadmapSettings{Theme: t.ID})
				rows[i] = themeRow{
					ID:         t.ID,
					Name:       t.Name,
					Layout:     t.Layout.String(),
					Accent:     t.Accent,
					Background: st.Background.CSS(),
					Font:       t.Font,
				}
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tLAYOUT\tACCENT")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Layout, r.Accent)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
