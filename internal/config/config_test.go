package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Paths.ScanRoot != "AddonPackages" {
		t.Errorf("ScanRoot = %q, want AddonPackages", cfg.Paths.ScanRoot)
	}
	if cfg.Paths.MarkerFile != "VaM.exe" {
		t.Errorf("MarkerFile = %q, want VaM.exe", cfg.Paths.MarkerFile)
	}
	if cfg.Concurrency.GroupWorkers != 12 {
		t.Errorf("GroupWorkers = %d, want 12", cfg.Concurrency.GroupWorkers)
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "varcleaner.toml")
	content := `
[paths]
scan_root = "Mods/Packages"

[concurrency]
group_workers = 4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Paths.ScanRoot != "Mods/Packages" {
		t.Errorf("ScanRoot = %q, want the override", cfg.Paths.ScanRoot)
	}
	if cfg.Concurrency.GroupWorkers != 4 {
		t.Errorf("GroupWorkers = %d, want 4", cfg.Concurrency.GroupWorkers)
	}
	// Unset fields keep their defaults.
	if cfg.Paths.BackupDir != "VarCleaner/Backup" {
		t.Errorf("BackupDir = %q, want the default", cfg.Paths.BackupDir)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "varcleaner.toml")
	os.WriteFile(path, []byte("[paths\nbroken"), 0o644)

	if _, err := Load(path); err == nil {
		t.Error("Expected parse error for invalid TOML")
	}
}

func TestLoadIfPresent_MissingFile(t *testing.T) {
	cfg, err := LoadIfPresent(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadIfPresent failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Missing file should yield defaults, got %+v", cfg)
	}
}
