package vpk

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractAndBackup(t *testing.T) {
	m, scanRoot := mergeFixture(t)
	src := filepath.Join(scanRoot, "sub", "pkg.var")
	writeTestArchive(t, src, map[string]string{"meta.json": "content"})

	groupTmp := filepath.Join(m.TmpRoot, "pkg.var")
	m.extractAndBackup(src, groupTmp, 0)

	extracted := filepath.Join(groupTmp, "0", "meta.json")
	data, err := os.ReadFile(extracted)
	if err != nil {
		t.Fatalf("Expected extracted member at %s: %v", extracted, err)
	}
	if string(data) != "content" {
		t.Errorf("Extracted member = %q, want %q", data, "content")
	}

	backup := filepath.Join(m.BackupDir, "sub", "pkg.var")
	if _, err := os.Stat(backup); err != nil {
		t.Errorf("Expected original relocated to %s: %v", backup, err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("Original should no longer exist at its source location")
	}
	if m.warnings.Load() != 0 {
		t.Errorf("Expected no warnings, got %d", m.warnings.Load())
	}
}

func TestRelocate_SourceVanished(t *testing.T) {
	m, _ := mergeFixture(t)
	src := filepath.Join(m.ScanRoot, "gone.var")

	err := m.relocate(src, filepath.Join(m.BackupDir, "gone.var"))
	if err != nil {
		t.Errorf("Vanished source must not fail relocation: %v", err)
	}
	if m.warnings.Load() != 1 {
		t.Errorf("Expected 1 warning for the vanished source, got %d", m.warnings.Load())
	}
}
