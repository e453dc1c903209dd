package runlock_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"tidy/internal/apperr"
	"tidy/internal/runlock"
)

func TestAcquireIsExclusivePerTarget(t *testing.T) {
	lockDir := filepath.Join(t.TempDir(), "locks")
	target := t.TempDir()

	first, err := runlock.Acquire(lockDir, target)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if !strings.HasPrefix(first.Path(), lockDir) || strings.HasPrefix(first.Path(), target) {
		t.Fatalf("lock file %q must live in the lock dir", first.Path())
	}

	if _, err := runlock.Acquire(lockDir, target+"/."); !errors.Is(err, apperr.ErrLocked) {
		t.Fatalf("expected ErrLocked for the same target, got %v", err)
	}

	other, err := runlock.Acquire(lockDir, t.TempDir())
	if err != nil {
		t.Fatalf("a different target must not be blocked: %v", err)
	}
	defer other.Release()

	if err := first.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	again, err := runlock.Acquire(lockDir, target)
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	if err := again.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
}

func TestPathForIsStable(t *testing.T) {
	dir := t.TempDir()
	a, err := runlock.PathFor("/locks", dir)
	if err != nil {
		t.Fatalf("PathFor: %v", err)
	}
	b, err := runlock.PathFor("/locks", dir+"/sub/..")
	if err != nil {
		t.Fatalf("PathFor: %v", err)
	}
	if a != b {
		t.Fatalf("expected equivalent paths to share a lock: %q vs %q", a, b)
	}
	if base := filepath.Base(a); len(base) != len("0123456789abcdef.lock") {
		t.Fatalf("unexpected lock file name %q", base)
	}
}

func TestReleaseNil(t *testing.T) {
	var l *runlock.Lock
	if err := l.Release(); err != nil {
		t.Fatalf("Release on nil lock: %v", err)
	}
}
