// Package adapter contains the filesystem adapters the ratunit workflow reads
// report files through.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	m "github.com/rupert648/ratunit/internal/model"
)

// DefaultPattern is the file name glob used when discovering reports in a
// directory.
const DefaultPattern = "*.xml"

// ErrNoPaths is returned by Discover when it is called without any path.
var ErrNoPaths = errors.New("no report paths given")

// ReportSourceAdapter hides filesystem access from the workflow so discovery
// and loading can be tested without touching the disk.
type ReportSourceAdapter interface {
	// Discover expands paths into the sorted, de-duplicated list of report
	// files to load. A file argument is always kept. A directory contributes
	// the files whose base name matches pattern; subdirectories are only
	// descended into when recursive is set.
	Discover(paths []m.Path, recursive bool, pattern string) ([]m.Path, error)

	// ReadFile loads a report file and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalReportSourceAdapter reads reports from the local filesystem.
type LocalReportSourceAdapter struct{}

// NewLocalReportSourceAdapter constructs a LocalReportSourceAdapter.
func NewLocalReportSourceAdapter() *LocalReportSourceAdapter {
	return &LocalReportSourceAdapter{}
}

// Discover implements ReportSourceAdapter.
func (a *LocalReportSourceAdapter) Discover(paths []m.Path, recursive bool, pattern string) ([]m.Path, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	if pattern == "" {
		pattern = DefaultPattern
	}

	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}

	var found []m.Path

	for _, path := range paths {
		info, err := a.FileInfo(path)
		if err != nil {
			return nil, fmt.Errorf("report path: %w", err)
		}

		if !info.IsDir() {
			found = append(found, m.Path(filepath.Clean(string(path))))
			continue
		}

		err = a.walk(path, recursive, func(file string) {
			if ok, _ := filepath.Match(pattern, filepath.Base(file)); ok {
				found = append(found, m.Path(file))
			}
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}

	slices.Sort(found)

	return slices.Compact(found), nil
}

// walk calls fn for every regular file under root, including symlinks to
// regular files. Symlinked directories are not descended into. When recursive
// is false the walk stays in root itself.
func (a *LocalReportSourceAdapter) walk(root m.Path, recursive bool, fn func(path string)) error {
	rootStr := filepath.Clean(string(root))

	return filepath.WalkDir(rootStr, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if !recursive && path != rootStr {
				return filepath.SkipDir
			}

			return nil
		}

		mode := entry.Type()
		if mode&fs.ModeSymlink != 0 {
			info, err := a.FileInfo(m.Path(path))
			if err != nil {
				// Dangling link: let loading report it.
				fn(path)
				return nil
			}

			mode = info.Mode()
		}

		if mode.IsRegular() {
			fn(path)
		}

		return nil
	})
}

// ReadFile loads file contents from disk.
func (a *LocalReportSourceAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user supplied report paths is the point
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalReportSourceAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
