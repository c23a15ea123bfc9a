package cmd

import (
	"archive/zip"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/vammodtools/varcleaner/internal/config"
	"github.com/vammodtools/varcleaner/vpk"
)

// consoleNotifier prints terminal status lines. It stands in for the modal
// dialog the Windows build shows, so the pipeline itself never touches
// platform UI.
type consoleNotifier struct{}

func (consoleNotifier) Notify(title, message string) {
	fmt.Printf("[%s] %s\n", title, message)
}

// NewCleanCmd creates and returns the clean subcommand for the varcleaner CLI.
// It runs the full merge pipeline over the configured scan root.
func NewCleanCmd() *cobra.Command {
	var (
		configPath string
		scanRoot   string
		mergedDir  string
		backupDir  string
		tmpDir     string
		marker     string
		workers    int
		deflate    bool
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Merge duplicate .var packages and back up the originals",
		Long: `Merge every group of .var packages that share a filename.

For each duplicate group, clean extracts all copies, keeps the largest
version of every internal file, writes one merged archive under the merged
directory, and moves the originals to the backup directory mirroring their
original sub-paths. Single-copy packages are left untouched.

clean refuses to run unless the marker file (VaM.exe by default) exists in
the current directory, so it cannot be launched against the wrong folder by
accident. Settings come from varcleaner.toml when present; flags override.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.LoadIfPresent(configPath)
			if err != nil {
				log.Fatalf("Failed to load config: %v", err)
			}
			if cmd.Flags().Changed("scan-root") {
				cfg.Paths.ScanRoot = scanRoot
			}
			if cmd.Flags().Changed("merged") {
				cfg.Paths.MergedDir = mergedDir
			}
			if cmd.Flags().Changed("backup") {
				cfg.Paths.BackupDir = backupDir
			}
			if cmd.Flags().Changed("tmp") {
				cfg.Paths.TmpDir = tmpDir
			}
			if cmd.Flags().Changed("marker") {
				cfg.Paths.MarkerFile = marker
			}
			if cmd.Flags().Changed("workers") {
				cfg.Concurrency.GroupWorkers = workers
			}
			runClean(cmd, cfg, deflate)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultFile, "Path to TOML config file")
	cmd.Flags().StringVar(&scanRoot, "scan-root", "", "Directory to scan for .var packages")
	cmd.Flags().StringVar(&mergedDir, "merged", "", "Directory for merged output archives")
	cmd.Flags().StringVar(&backupDir, "backup", "", "Directory for relocated originals")
	cmd.Flags().StringVar(&tmpDir, "tmp", "", "Directory for temporary extraction workspaces")
	cmd.Flags().StringVar(&marker, "marker", "", "Marker file that must exist in the working directory")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Maximum number of groups processed concurrently")
	cmd.Flags().BoolVar(&deflate, "deflate", false, "Deflate-compress merged output instead of storing")

	return cmd
}

func runClean(cmd *cobra.Command, cfg config.Config, deflate bool) {
	notifier := consoleNotifier{}

	if _, err := os.Stat(cfg.Paths.MarkerFile); err != nil {
		notifier.Notify("varcleaner",
			fmt.Sprintf("Please run varcleaner from the folder that contains %s", cfg.Paths.MarkerFile))
		os.Exit(1)
	}

	fmt.Printf("varcleaner will put merged duplicated var to %s, and backup original var at %s\n",
		cfg.Paths.MergedDir, cfg.Paths.BackupDir)

	method := uint16(zip.Store)
	if deflate {
		method = zip.Deflate
	}

	m := &vpk.Merger{
		ScanRoot:     cfg.Paths.ScanRoot,
		MergedDir:    cfg.Paths.MergedDir,
		BackupDir:    cfg.Paths.BackupDir,
		TmpRoot:      cfg.Paths.TmpDir,
		GroupWorkers: cfg.Concurrency.GroupWorkers,
		Method:       method,
		Notifier:     notifier,
	}

	sum, err := m.Run(cmd.Context())
	if err != nil {
		log.Fatalf("Merge run failed: %v", err)
	}
	if sum.Warnings > 0 {
		fmt.Printf("Completed with %d warnings; check the log output above.\n", sum.Warnings)
	}
}
