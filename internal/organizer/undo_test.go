package organizer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"tidy/internal/apperr"
	"tidy/internal/organizer"
	"tidy/internal/testsupport"
)

func reversalsFrom(summary organizer.Summary, dir string) []organizer.Reversal {
	var out []organizer.Reversal
	for i, rec := range summary.Records {
		if !rec.Outcome.Kind.Relocated() {
			continue
		}
		out = append(out, organizer.Reversal{
			Seq:      i,
			Original: filepath.Join(dir, rec.Name),
			Current:  rec.Outcome.Destination,
		})
	}
	return out
}

func TestUndoRestoresOriginalLayout(t *testing.T) {
	dir := testsupport.NewTargetDir(t, "photo.jpg", "notes.txt", "Documents/existing.pdf")
	before := testsupport.Tree(t, dir)
	org := newTestOrganizer(&recordingFS{}, nil)

	summary, err := org.Run(context.Background(), organizer.RunConfig{Dir: dir})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	results, err := org.Undo(context.Background(), reversalsFrom(summary, dir))
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected two results, got %d", len(results))
	}
	for _, res := range results {
		if res.Err != nil {
			t.Fatalf("unexpected undo error for %s: %v", res.Current, res.Err)
		}
	}
	if results[0].Seq != 1 {
		t.Fatalf("expected last move to be reversed first, got seq %d", results[0].Seq)
	}
	if got := testsupport.Tree(t, dir); !slices.Equal(got, before) {
		t.Fatalf("undo did not restore layout:\n got %v\nwant %v", got, before)
	}
}

func TestUndoKeepsOccupiedOriginal(t *testing.T) {
	dir := testsupport.NewTargetDir(t, "a.txt")
	org := newTestOrganizer(&recordingFS{}, nil)
	summary, err := org.Run(context.Background(), organizer.RunConfig{Dir: dir})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("newer"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	results, err := org.Undo(context.Background(), reversalsFrom(summary, dir))
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if len(results) != 1 || !errors.Is(results[0].Err, apperr.ErrMoveFailed) {
		t.Fatalf("expected occupied original to fail, got %+v", results)
	}
	if data, _ := os.ReadFile(filepath.Join(dir, "a.txt")); string(data) != "newer" {
		t.Fatalf("occupied original was overwritten: %q", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "Documents", "a.txt")); err != nil {
		t.Fatalf("moved file should stay in place: %v", err)
	}
}

func TestUndoMissingFile(t *testing.T) {
	dir := t.TempDir()
	org := newTestOrganizer(&recordingFS{}, nil)
	results, err := org.Undo(context.Background(), []organizer.Reversal{{
		Seq:      0,
		Original: filepath.Join(dir, "gone.txt"),
		Current:  filepath.Join(dir, "Documents", "gone.txt"),
	}})
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if len(results) != 1 || results[0].Err == nil {
		t.Fatalf("expected failure for missing file, got %+v", results)
	}
}
