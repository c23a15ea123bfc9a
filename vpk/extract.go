package vpk

import (
	"os"
	"path/filepath"
	"strconv"
)

// extractAndBackup unpacks one source archive into the indexed workspace
// groupTmp/<idx> and then relocates the original under the backup root,
// mirroring its path relative to the scan root. The relocation runs even
// when extraction failed: a corrupt package still gets moved out of the
// scan tree so the merged tree does not shadow it. Failures are contained
// to this source; siblings in the group keep going and reconciliation runs
// over whatever was extracted.
func (m *Merger) extractAndBackup(src, groupTmp string, idx int) {
	dest := filepath.Join(groupTmp, strconv.Itoa(idx))
	skipped, err := ExtractArchive(src, dest)
	m.warnings.Add(int64(skipped))
	if err != nil {
		m.warnf("extract %s: %v", src, err)
	}

	rel, err := filepath.Rel(m.ScanRoot, src)
	if err != nil {
		m.warnf("backup %s: %v", src, err)
		return
	}
	if err := m.relocate(src, filepath.Join(m.BackupDir, rel)); err != nil {
		m.warnf("backup %s: %v", src, err)
	}
}

// relocate moves src to dst, creating dst's parent directories. A source
// that has already disappeared (moved by a concurrent run or an external
// change) is logged and ignored.
func (m *Merger) relocate(src, dst string) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		m.warnf("relocate: %s no longer exists, skipping", src)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.Rename(src, dst)
}
