package cmd

import (
	"fmt"
	"log"
	"sort"

	"github.com/spf13/cobra"
	"github.com/vammodtools/varcleaner/vpk"
)

// NewScanCmd creates and returns the scan subcommand for the varcleaner CLI.
// It reports duplicate package groups without modifying anything.
func NewScanCmd() *cobra.Command {
	var (
		root    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "scan [PATH]",
		Short: "Report duplicate .var package groups",
		Long: `Scan a directory tree for .var packages and report every group of
packages sharing the same filename. This is a dry run: nothing is
extracted, merged, or moved.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				root = args[0]
			}
			runScan(root, verbose)
		},
	}

	cmd.Flags().StringVarP(&root, "path", "p", "AddonPackages", "Path to scan for packages")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every member path per group")

	return cmd
}

func runScan(root string, verbose bool) {
	groups, skipped, err := vpk.DiscoverGroups(root)
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}

	names := make([]string, 0, len(groups))
	for name, members := range groups {
		if len(members) > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Println(formatGroupLine(name, len(groups[name])))
		if verbose {
			for _, member := range groups[name] {
				fmt.Printf("  %s\n", member)
			}
		}
	}
	fmt.Printf("Found %d duplicate groups among %d packages", len(names), countMembers(groups))
	if skipped > 0 {
		fmt.Printf(" (%d unreadable subtrees skipped)", skipped)
	}
	fmt.Println()
}

// formatGroupLine renders the one-line report for a duplicate group.
func formatGroupLine(name string, count int) string {
	return fmt.Sprintf("%s: %d copies", name, count)
}

func countMembers(groups map[string][]string) int {
	total := 0
	for _, members := range groups {
		total += len(members)
	}
	return total
}
