// Package config loads optional varcleaner.toml settings.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the config filename looked up next to the marker file.
const DefaultFile = "varcleaner.toml"

type PathsConfig struct {
	ScanRoot   string `toml:"scan_root"`
	MergedDir  string `toml:"merged_dir"`
	BackupDir  string `toml:"backup_dir"`
	TmpDir     string `toml:"tmp_dir"`
	MarkerFile string `toml:"marker_file"`
}

type ConcurrencyConfig struct {
	GroupWorkers int `toml:"group_workers"`
}

type Config struct {
	Paths       PathsConfig       `toml:"paths"`
	Concurrency ConcurrencyConfig `toml:"concurrency"`
}

// Default returns the conventional VaM layout: packages under
// AddonPackages, merged output beside them, backups and scratch space under
// a VarCleaner directory next to the marker executable.
func Default() Config {
	return Config{
		Paths: PathsConfig{
			ScanRoot:   "AddonPackages",
			MergedDir:  "AddonPackages/merged",
			BackupDir:  "VarCleaner/Backup",
			TmpDir:     "VarCleaner/Tmp",
			MarkerFile: "VaM.exe",
		},
		Concurrency: ConcurrencyConfig{
			GroupWorkers: 12,
		},
	}
}

// Load reads a TOML config file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return cfg, nil
}

// LoadIfPresent loads path when it exists and falls back to defaults when
// it does not. Only a file that exists but cannot be parsed is an error.
func LoadIfPresent(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
