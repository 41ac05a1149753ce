package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "roadmapctl",
		Short:         "Operate the storefront roadmap service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newTokenCmd())

	return cmd
}
