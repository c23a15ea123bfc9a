package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vammodtools/varcleaner/version"
)

// NewRootCmd creates and returns the root cobra command for the varcleaner CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "varcleaner",
		Short: "varcleaner - merge duplicate .var packages into single archives",
		Long: `varcleaner deduplicates a VaM AddonPackages tree.

Content distribution tends to leave several copies of the same .var package
at different sub-paths. varcleaner groups packages by filename, extracts
every copy, keeps the largest version of each internal file, repackages the
winners into one merged archive, and moves the originals to a backup folder.

Use subcommands to perform different operations:
  - clean: Merge every duplicate package group and back up the originals
  - scan:  Report duplicate package groups without changing anything
  - seed:  Generate a synthetic package tree for testing`,
		Version: version.GetFullVersion(),
	}

	groupMerge := "merge"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupMerge,
		Title: "Merge Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	cleanCmd := NewCleanCmd()
	scanCmd := NewScanCmd()
	seedCmd := NewSeedCmd()
	versionCmd := NewVersionCmd()

	cleanCmd.GroupID = groupMerge
	scanCmd.GroupID = groupMerge
	seedCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
