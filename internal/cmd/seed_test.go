package cmd

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteSeedPackage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Seed.Pack000.1.var")
	if err := writeSeedPackage(path, 1); err != nil {
		t.Fatalf("writeSeedPackage failed: %v", err)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("Seed package is not a readable zip: %v", err)
	}
	defer r.Close()

	found := make(map[string]bool)
	for _, f := range r.File {
		found[f.Name] = true
	}
	for _, want := range []string{"meta.json", "Custom/shared.txt", "Custom/only-rev1.txt"} {
		if !found[want] {
			t.Errorf("Expected member %q in seed package, got: %v", want, found)
		}
	}
}

func TestRunSeed_CreatesDuplicateCopies(t *testing.T) {
	out := t.TempDir()
	runSeed(out, 2, 3, 4, false)

	counts := make(map[string]int)
	err := filepath.WalkDir(out, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(d.Name()) == ".var" {
			counts[d.Name()]++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk seed output: %v", err)
	}

	if len(counts) != 2 {
		t.Fatalf("Expected 2 package names, got %d: %v", len(counts), counts)
	}
	for name, n := range counts {
		if n != 3 {
			t.Errorf("Package %s has %d copies, expected 3", name, n)
		}
	}
}
