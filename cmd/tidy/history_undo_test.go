package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"tidy/internal/testsupport"
)

func TestHistoryWithoutRuns(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, stdout, "No runs recorded yet.")
	requireNotExists(t, env.stateDir)
}

func TestHistoryAndUndoRestoreOriginalLayout(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := testsupport.NewTargetDir(t, "photo.jpg", "notes.txt", "keep.md")
	before := testsupport.Tree(t, dir)

	if _, _, err := runCLI(t, []string{dir}, env.configPath); err != nil {
		t.Fatalf("organize: %v", err)
	}

	stdout, _, err := runCLI(t, []string{"history", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	var runs []struct {
		ID    string `json:"id"`
		Dir   string `json:"dir"`
		Moved int    `json:"moved"`
	}
	if err := json.Unmarshal([]byte(stdout), &runs); err != nil {
		t.Fatalf("decode history: %v\n%s", err, stdout)
	}
	if len(runs) != 1 || runs[0].Moved != 3 || runs[0].Dir != dir {
		t.Fatalf("unexpected history: %+v", runs)
	}

	stdout, _, err = runCLI(t, []string{"undo", runs[0].ID[:8]}, env.configPath)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	requireContains(t, stdout, "Restored 3 of 3 files")
	if got := testsupport.Tree(t, dir); !slices.Equal(got, before) {
		t.Fatalf("undo did not restore the layout:\n got %v\nwant %v", got, before)
	}

	stdout, _, err = runCLI(t, []string{"undo"}, env.configPath)
	if err != nil {
		t.Fatalf("second undo: %v", err)
	}
	requireContains(t, stdout, "Nothing to undo")

	stdout, _, err = runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history table: %v", err)
	}
	requireContains(t, stdout, runs[0].ID[:8])
	requireContains(t, stdout, "undone")
}

func TestUndoLeavesOccupiedOriginalsInPlace(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := testsupport.NewTargetDir(t, "photo.jpg", "notes.txt")

	if _, _, err := runCLI(t, []string{dir}, env.configPath); err != nil {
		t.Fatalf("organize: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("new"), 0o644); err != nil {
		t.Fatalf("reoccupy: %v", err)
	}

	stdout, _, err := runCLI(t, []string{"undo"}, env.configPath)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	requireContains(t, stdout, "Restored 1 of 2 files")
	requireContains(t, stdout, "occupied")
	data, err := os.ReadFile(filepath.Join(dir, "photo.jpg"))
	if err != nil || string(data) != "new" {
		t.Fatalf("occupied original must not be overwritten, got %q err=%v", data, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Images", "photo.jpg")); err != nil {
		t.Fatalf("unreversed file must stay in its category: %v", err)
	}
	requireNotExists(t, filepath.Join(dir, "Documents"))
}

func TestUndoUnknownRun(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := testsupport.NewTargetDir(t, "photo.jpg")
	if _, _, err := runCLI(t, []string{dir}, env.configPath); err != nil {
		t.Fatalf("organize: %v", err)
	}
	if _, _, err := runCLI(t, []string{"undo", "zzzzzzzz"}, env.configPath); err == nil {
		t.Fatal("expected an error for an unknown run")
	}
}
