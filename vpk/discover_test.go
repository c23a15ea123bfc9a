package vpk

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverGroups_GroupsByBasename(t *testing.T) {
	root := t.TempDir()
	paths := []string{
		"Author.Pack.1.var",
		"old/Author.Pack.1.var",
		"old/deep/nested/Author.Pack.1.var",
		"other/Solo.Thing.2.var",
		"notes.txt",
		"old/readme.md",
	}
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		os.MkdirAll(filepath.Dir(full), 0o755)
		os.WriteFile(full, []byte("x"), 0o644)
	}

	groups, skipped, err := DiscoverGroups(root)
	if err != nil {
		t.Fatalf("DiscoverGroups failed: %v", err)
	}
	if skipped != 0 {
		t.Errorf("Expected 0 skipped subtrees, got %d", skipped)
	}
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d: %v", len(groups), groups)
	}
	if got := len(groups["Author.Pack.1.var"]); got != 3 {
		t.Errorf("Expected 3 members for Author.Pack.1.var, got %d", got)
	}
	if got := len(groups["Solo.Thing.2.var"]); got != 1 {
		t.Errorf("Expected 1 member for Solo.Thing.2.var, got %d", got)
	}
	for _, members := range groups {
		for _, p := range members {
			if !filepath.IsAbs(p) {
				t.Errorf("Expected absolute member path, got %q", p)
			}
			if _, err := os.Stat(p); err != nil {
				t.Errorf("Member path %q does not resolve: %v", p, err)
			}
		}
	}
}

func TestDiscoverGroups_EmptyRoot(t *testing.T) {
	groups, skipped, err := DiscoverGroups(t.TempDir())
	if err != nil {
		t.Fatalf("DiscoverGroups failed: %v", err)
	}
	if len(groups) != 0 || skipped != 0 {
		t.Errorf("Expected no groups for an empty root, got %v (skipped %d)", groups, skipped)
	}
}

func TestDiscoverGroups_MissingRoot(t *testing.T) {
	_, _, err := DiscoverGroups(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("Expected error for unreadable root, got nil")
	}
}

func TestDiscoverGroups_IgnoresDirectoriesNamedVar(t *testing.T) {
	root := t.TempDir()
	// A directory whose name carries the extension must not join a group.
	os.MkdirAll(filepath.Join(root, "Author.Pack.1.var"), 0o755)
	os.WriteFile(filepath.Join(root, "Author.Pack.1.var", "stray.var"), []byte("x"), 0o644)

	groups, _, err := DiscoverGroups(root)
	if err != nil {
		t.Fatalf("DiscoverGroups failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d: %v", len(groups), groups)
	}
	if _, ok := groups["stray.var"]; !ok {
		t.Errorf("Expected the regular file group only, got %v", groups)
	}
}
