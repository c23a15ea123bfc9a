package vpk

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// candidate is the currently-best occurrence of one relative member path.
type candidate struct {
	path string
	size int64
}

// reconcileGroup scans the indexed extraction subtrees groupTmp/<0..n> and
// stages, for every relative member path seen anywhere, the occurrence with
// the strictly largest size into groupTmp/working. Ties keep the first
// occurrence seen. Subtrees are visited in ascending index order and
// WalkDir visits entries in lexical order within a subtree, so the
// tie-break does not depend on extraction completion order or on the
// platform's raw directory order.
//
// Winning files are renamed, not copied; the index subtrees are about to be
// discarded anyway. Returns the working directory and the number of staged
// members; zero members means every extraction failed and the group is
// abandoned.
func (m *Merger) reconcileGroup(groupTmp string, n int) (string, int, error) {
	best := make(map[string]candidate)
	for i := range n {
		idxRoot := filepath.Join(groupTmp, strconv.Itoa(i))
		if _, err := os.Stat(idxRoot); os.IsNotExist(err) {
			// This member never extracted anything.
			continue
		}
		err := filepath.WalkDir(idxRoot, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(idxRoot, path)
			if err != nil {
				return err
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			cur, seen := best[rel]
			if !seen || info.Size() > cur.size {
				best[rel] = candidate{path: path, size: info.Size()}
			}
			return nil
		})
		if err != nil {
			return "", 0, err
		}
	}
	if len(best) == 0 {
		return "", 0, nil
	}

	workDir := filepath.Join(groupTmp, "working")
	for rel, c := range best {
		dst := filepath.Join(workDir, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return "", 0, err
		}
		if err := os.Rename(c.path, dst); err != nil {
			return "", 0, err
		}
	}
	return workDir, len(best), nil
}
