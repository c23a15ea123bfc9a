package vpk

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
)

// VarExt is the package file extension tracked by discovery.
const VarExt = ".var"

// entryTargetPath resolves an archive entry name against destDir. Absolute
// names and names that climb out of destDir with ".." are rejected so a
// hostile container cannot write outside its workspace.
func entryTargetPath(destDir, name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleaned) || cleaned == ".." ||
		strings.HasPrefix(cleaned, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %q", ErrUnsafeEntryPath, name)
	}
	return filepath.Join(destDir, cleaned), nil
}

// ExtractArchive unpacks every member of the zip container at src into
// destDir. A container that cannot be opened at all returns an error
// wrapping ErrCorruptContainer. A member that cannot be read, or whose name
// is unsafe, is skipped with a warning rather than failing the archive; the
// number of skipped members is returned.
func ExtractArchive(src, destDir string) (skipped int, err error) {
	zr, err := zip.OpenReader(src)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrCorruptContainer, src, err)
	}
	defer zr.Close()

	for _, entry := range zr.File {
		target, err := entryTargetPath(destDir, entry.Name)
		if err != nil {
			log.Printf("skipping entry %q in %s: %v", entry.Name, src, err)
			skipped++
			continue
		}
		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return skipped, err
			}
			continue
		}
		if err := extractEntry(entry, target); err != nil {
			log.Printf("skipping entry %q in %s: %v", entry.Name, src, err)
			skipped++
		}
	}
	return skipped, nil
}

func extractEntry(entry *zip.File, target string) error {
	rc, err := entry.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, rc)
	return err
}

// PackDirectory builds a zip container at destFile from the tree rooted at
// srcDir. Every entry is named by its forward-slash path relative to srcDir
// so the container reads the same on any platform; the root itself gets no
// entry because some unzip tools warn on it. Directory entries are written
// explicitly since not every extraction tool recreates intermediate
// directories from file paths alone.
//
// method selects the compression method for file entries. Merged output
// defaults to zip.Store: member content is typically compressed already and
// stored entries keep repackaging fast and reproducible. zip.Deflate swaps
// in the klauspost flate encoder.
func PackDirectory(srcDir, destFile string, method uint16) error {
	info, err := os.Stat(srcDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPackFailed, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s: %v", ErrPackFailed, srcDir, ErrExpectedDirectory)
	}
	if err := os.MkdirAll(filepath.Dir(destFile), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrPackFailed, err)
	}
	out, err := os.Create(destFile)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPackFailed, err)
	}
	defer out.Close()

	w := zip.NewWriter(out)
	if method == zip.Deflate {
		w.RegisterCompressor(zip.Deflate, func(dst io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(dst, flate.BestSpeed)
		})
	}

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		name := filepath.ToSlash(rel)
		if d.IsDir() {
			hdr := &zip.FileHeader{Name: name + "/"}
			hdr.SetMode(0o755 | os.ModeDir)
			_, err := w.CreateHeader(hdr)
			return err
		}
		hdr := &zip.FileHeader{Name: name, Method: method}
		hdr.SetMode(0o755)
		ew, err := w.CreateHeader(hdr)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(ew, f)
		return err
	})
	if err != nil {
		w.Close()
		return fmt.Errorf("%w: %v", ErrPackFailed, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrPackFailed, err)
	}
	return nil
}
