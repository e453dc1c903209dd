package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// MoveNoClobber renames src to dst without ever replacing dst. The returned
// error matches fs.ErrExist when dst is occupied.
func MoveNoClobber(src, dst string) error {
	err := renameNoReplace(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		return copyThenRemove(src, dst)
	}
	return err
}

// renameIfAbsent is the portable no-clobber rename. It is only race-free
// while a single process owns the destination directory, which the run lock
// guarantees.
func renameIfAbsent(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: fs.ErrExist}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.Rename(src, dst)
}

func copyThenRemove(src, dst string) error {
	if err := CopyFileVerified(src, dst); err != nil {
		return fmt.Errorf("cross-device copy: %w", err)
	}
	if err := os.Remove(src); err != nil {
		// Keep exactly one copy of the file.
		_ = os.Remove(dst)
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}
