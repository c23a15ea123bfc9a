package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vammodtools/varcleaner/version"
)

// NewVersionCmd creates and returns the version subcommand for the varcleaner CLI.
// It prints detailed version and build metadata.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show detailed version information",
		Long: `Show the varcleaner version together with the git commit and build
date recorded at compile time, falling back to Go build info for
development builds.`,
		Run: func(cmd *cobra.Command, args []string) {
			version.PrintVersion("varcleaner")
		},
	}
}
