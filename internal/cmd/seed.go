package cmd

import (
	"archive/zip"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"
)

// NewSeedCmd creates and returns the seed subcommand for the varcleaner CLI.
// It generates a synthetic tree of duplicate .var packages for testing.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		packages   int
		copies     int
		buckets    int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a synthetic .var package tree for testing",
		Long: `Generate a tree of duplicate .var packages for exercising varcleaner.

Each generated package name appears several times at different sub-paths,
with overlapping member sets whose sizes differ per copy, so a merge run
has real reconciliation work to do. Packages are sharded into numbered
bucket directories derived from a hash of the package name.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, packages, copies, buckets, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&packages, "packages", "n", 20, "Number of distinct package names to generate")
	cmd.Flags().IntVarP(&copies, "copies", "c", 3, "Number of copies per package name")
	cmd.Flags().IntVarP(&buckets, "buckets", "b", 16, "Number of bucket directories to shard packages into")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, packages, copies, buckets int, verbose bool) {
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	if copies < 1 {
		copies = 1
	}
	if buckets < 1 {
		buckets = 1
	}

	created := 0
	for i := range packages {
		name := fmt.Sprintf("Seed.Pack%03d.1.var", i)
		bucket := strconv.Itoa(colorhash.HashString(name) % buckets)

		for c := range copies {
			// Copy 0 sits directly in its bucket; later copies nest one
			// level deeper so discovery exercises varied sub-paths.
			dir := filepath.Join(outputPath, bucket)
			if c > 0 {
				dir = filepath.Join(dir, fmt.Sprintf("rev%d", c))
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Printf("Warning: Failed to create directory %s: %v", dir, err)
				continue
			}

			if err := writeSeedPackage(filepath.Join(dir, name), c); err != nil {
				log.Printf("Warning: Failed to write package %s: %v", name, err)
				continue
			}
			created++
		}

		if verbose && (i+1)%10 == 0 {
			fmt.Printf("Generated %d/%d package names...\n", i+1, packages)
		}
	}

	if verbose {
		fmt.Printf("Successfully created %d package files across %d names\n", created, packages)
	}
}

// writeSeedPackage writes one synthetic .var copy. Member sizes grow with
// the copy index so a later revision wins size-based reconciliation, and
// each copy carries one member the others lack.
func writeSeedPackage(path string, copyIdx int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := zip.NewWriter(f)
	members := map[string]string{
		"meta.json": fmt.Sprintf(`{"licenseType":"CC BY","revision":%d,"id":%q}`,
			copyIdx, uuid.New().String()),
		"Custom/shared.txt": strings.Repeat(uuid.New().String()+"\n", copyIdx+1),
		fmt.Sprintf("Custom/only-rev%d.txt", copyIdx): uuid.New().String(),
	}
	for name, content := range members {
		ew, err := w.Create(name)
		if err != nil {
			return err
		}
		if _, err := ew.Write([]byte(content)); err != nil {
			return err
		}
	}
	return w.Close()
}
