package organizer

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"tidy/internal/apperr"
	"tidy/internal/fileutil"
)

// ScanEntry is one top-level entry of the target directory.
type ScanEntry struct {
	Path string
	Name string
	// Ext is the lower-cased extension with its leading dot, or empty.
	Ext string
}

// Scan lists dir once and returns its top-level entries in name order.
// Directories, including symlinks to directories, are left out so category
// directories from earlier runs are never reprocessed. A missing or
// non-directory target fails with apperr.ErrDirectoryNotFound; any other
// listing failure with apperr.ErrScan.
func Scan(fsys fileutil.FS, dir string) (iter.Seq[ScanEntry], error) {
	info, err := fsys.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.Wrap(apperr.ErrDirectoryNotFound, "organizer", "scan", fmt.Sprintf("target %s does not exist", dir), err)
		}
		return nil, apperr.Wrap(apperr.ErrScan, "organizer", "scan", fmt.Sprintf("stat %s", dir), err)
	}
	if !info.IsDir() {
		return nil, apperr.Wrap(apperr.ErrDirectoryNotFound, "organizer", "scan", fmt.Sprintf("target %s is not a directory", dir), nil)
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrScan, "organizer", "scan", fmt.Sprintf("list %s", dir), err)
	}
	entries = slices.Clone(entries)
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return func(yield func(ScanEntry) bool) {
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if isDirectory(fsys, entry, path) {
				continue
			}
			ext := Extension(entry.Name())
			if ext != "" {
				ext = "." + ext
			}
			if !yield(ScanEntry{Path: path, Name: entry.Name(), Ext: ext}) {
				return
			}
		}
	}, nil
}

func isDirectory(fsys fileutil.FS, entry fs.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	target, err := fsys.Stat(path)
	return err == nil && target.IsDir()
}
