package apperr_test

import (
	"errors"
	"strings"
	"testing"

	"tidy/internal/apperr"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := apperr.Wrap(apperr.ErrMoveFailed, "organizer", "move", "rename failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, apperr.ErrMoveFailed) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"organizer", "move", "rename failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := apperr.Wrap(apperr.ErrDirectoryNotFound, "", "", "", nil)
	if !errors.Is(err, apperr.ErrDirectoryNotFound) {
		t.Fatalf("expected marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "operation failed") {
		t.Fatalf("expected default detail, got %q", err.Error())
	}
}

func TestIsFatal(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"move", apperr.Wrap(apperr.ErrMoveFailed, "organizer", "move", "denied", nil), false},
		{"directory", apperr.Wrap(apperr.ErrDirectoryNotFound, "organizer", "scan", "missing", nil), true},
		{"locked", apperr.ErrLocked, true},
		{"plain", errors.New("other"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := apperr.IsFatal(tc.err); got != tc.want {
				t.Fatalf("IsFatal(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
