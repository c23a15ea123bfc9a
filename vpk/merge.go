package vpk

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultGroupWorkers bounds how many duplicate groups are processed at
// once. Extraction buffers whole archives through the page cache, so this
// also bounds peak I/O and memory pressure.
const DefaultGroupWorkers = 12

// Notifier delivers terminal status to the user. The merge run calls it at
// most once, on completion; command-level precondition failures use it once
// more before any processing begins.
type Notifier interface {
	Notify(title, message string)
}

// Summary reports what a merge run did. Warnings counts every contained
// failure that was logged and skipped, so a caller can tell a clean run
// from one that silently dropped members.
type Summary struct {
	Groups   int   // duplicate groups with two or more members
	Merged   int   // groups that produced a merged archive
	Skipped  int   // single-member basenames left untouched
	Warnings int64 // contained failures logged during the run
}

func (s Summary) String() string {
	return fmt.Sprintf("merged %d of %d duplicate groups (%d unique packages untouched, %d warnings)",
		s.Merged, s.Groups, s.Skipped, s.Warnings)
}

// Merger coordinates the merge pipeline over a scan root: duplicate-group
// discovery, per-group concurrent extraction into indexed workspaces,
// size-based reconciliation, repackaging, and relocation of originals to
// the backup tree.
//
// The backup and merged directories are shared append-only targets across
// groups, but distinct basenames never collide on a relative path, so no
// locking is needed. Each group's temporary subtree under TmpRoot is owned
// exclusively by that group's task.
type Merger struct {
	ScanRoot  string
	MergedDir string
	BackupDir string
	TmpRoot   string

	// GroupWorkers caps how many groups run concurrently. Zero or negative
	// means DefaultGroupWorkers.
	GroupWorkers int

	// Method is the zip compression method for merged output, zip.Store by
	// default.
	Method uint16

	// Notifier, when set, receives the completion message.
	Notifier Notifier

	warnings atomic.Int64
}

// warnf logs a contained failure and counts it toward the run summary.
func (m *Merger) warnf(format string, args ...any) {
	m.warnings.Add(1)
	log.Printf("warning: "+format, args...)
}

// Run executes the merge over every duplicate group found under ScanRoot.
// Only discovery failure is fatal; every narrower failure is contained at
// the member or group scope and surfaces in Summary.Warnings.
func (m *Merger) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	scanRoot, err := filepath.Abs(m.ScanRoot)
	if err != nil {
		return sum, err
	}
	m.ScanRoot = scanRoot

	groups, skipped, err := DiscoverGroups(m.ScanRoot)
	if err != nil {
		return sum, err
	}
	m.warnings.Add(int64(skipped))

	workers := m.GroupWorkers
	if workers <= 0 {
		workers = DefaultGroupWorkers
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var merged atomic.Int64
	for name, members := range groups {
		if len(members) < 2 {
			sum.Skipped++
			continue
		}
		sum.Groups++
		g.Go(func() error {
			produced, err := m.mergeGroup(ctx, name, members)
			if err != nil {
				m.warnf("group %s: %v", name, err)
				return nil
			}
			if produced {
				merged.Add(1)
			}
			return nil
		})
	}
	// Group tasks never return errors; Wait is the barrier for the run.
	g.Wait()

	// Groups that finished cleanly removed their own subtrees, so the tmp
	// root is empty on a fully clean run. A plain Remove keeps any group
	// tree that was retained after a repackaging failure available for
	// manual recovery.
	if _, err := os.Stat(m.TmpRoot); err == nil {
		if err := os.Remove(m.TmpRoot); err != nil {
			m.warnf("tmp root %s retained: %v", m.TmpRoot, err)
		}
	}

	sum.Merged = int(merged.Load())
	sum.Warnings = m.warnings.Load()
	if m.Notifier != nil {
		m.Notifier.Notify("varcleaner", sum.String())
	}
	return sum, nil
}

// mergeGroup runs one group's pipeline: extract every member behind a
// barrier, reconcile by size, repackage, clean up. It reports whether a
// merged archive was produced. A repackaging or reconciliation failure
// leaves the group's temporary tree in place so an operator can recover the
// extracted data by hand; originals already moved to backup stay in backup.
func (m *Merger) mergeGroup(ctx context.Context, name string, members []string) (bool, error) {
	fmt.Printf("Process file %s Count %d\n", name, len(members))
	groupTmp := filepath.Join(m.TmpRoot, name)

	// Inner pool: one extraction task per member. Failures are contained
	// per member inside extractAndBackup; the only job of this group is
	// the completion barrier before reconciliation reads the workspace.
	eg, _ := errgroup.WithContext(ctx)
	for i, src := range members {
		eg.Go(func() error {
			m.extractAndBackup(src, groupTmp, i)
			return nil
		})
	}
	eg.Wait()

	if _, err := os.Stat(groupTmp); os.IsNotExist(err) {
		// No member wrote anything; nothing to merge or clean.
		return false, nil
	}

	workDir, kept, err := m.reconcileGroup(groupTmp, len(members))
	if err != nil {
		return false, err
	}
	if kept == 0 {
		return false, os.RemoveAll(groupTmp)
	}
	if err := m.repackage(workDir, filepath.Join(m.MergedDir, name)); err != nil {
		return false, err
	}
	return true, os.RemoveAll(groupTmp)
}

// repackage feeds the reconciled working tree to the codec.
func (m *Merger) repackage(workDir, outPath string) error {
	return PackDirectory(workDir, outPath, m.Method)
}
