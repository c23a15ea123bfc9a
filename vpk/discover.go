package vpk

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
)

// DiscoverGroups walks root recursively and groups every regular .var file
// by basename. Order within a group is traversal order. Unreadable subtrees
// are skipped with a warning so one bad directory does not hide the other
// ten thousand packages; only a root that cannot be enumerated at all is
// fatal. The number of skipped subtrees is returned alongside the groups.
func DiscoverGroups(root string) (map[string][]string, int, error) {
	groups := make(map[string][]string)
	skipped := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			log.Printf("warning: skipping %s: %v", path, walkErr)
			skipped++
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if filepath.Ext(d.Name()) != VarExt {
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		groups[d.Name()] = append(groups[d.Name()], abs)
		return nil
	})
	if err != nil {
		return nil, skipped, fmt.Errorf("cannot scan %s: %w", root, err)
	}
	return groups, skipped, nil
}
