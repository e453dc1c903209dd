package fileutil

import (
	"io/fs"
	"os"
)

// FS is the set of filesystem operations the organizer depends on.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error
	// MoveNoClobber moves src to dst and fails with an error matching
	// fs.ErrExist when dst is already present.
	MoveNoClobber(src, dst string) error
	Remove(name string) error
}

// OS implements FS on top of the host filesystem.
type OS struct{}

func (OS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (OS) Lstat(name string) (fs.FileInfo, error) { return os.Lstat(name) }

func (OS) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }

func (OS) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

func (OS) MoveNoClobber(src, dst string) error { return MoveNoClobber(src, dst) }

func (OS) Remove(name string) error { return os.Remove(name) }
