package organizer_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sync"

	"tidy/internal/fileutil"
)

// recordingFS wraps the host filesystem, counts mutating calls, and fails
// moves for selected base names.
type recordingFS struct {
	fileutil.OS

	mu        sync.Mutex
	mutations []string
	failMove  map[string]error
	readDir   error
}

func (r *recordingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if r.readDir != nil {
		return nil, r.readDir
	}
	return r.OS.ReadDir(name)
}

func (r *recordingFS) MkdirAll(path string, perm fs.FileMode) error {
	r.record("mkdir " + path)
	return r.OS.MkdirAll(path, perm)
}

func (r *recordingFS) MoveNoClobber(src, dst string) error {
	r.record("move " + src + " -> " + dst)
	if err, ok := r.failMove[filepath.Base(src)]; ok {
		return err
	}
	return r.OS.MoveNoClobber(src, dst)
}

func (r *recordingFS) Remove(name string) error {
	r.record("remove " + name)
	return r.OS.Remove(name)
}

func (r *recordingFS) record(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mutations = append(r.mutations, op)
}

func (r *recordingFS) Mutations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.mutations...)
}

var errDiskFull = errors.New("no space left on device")
