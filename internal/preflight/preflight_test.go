package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tidy/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDirectoryAccess_ReadOnly(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o500); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })
	result := CheckDirectoryAccess("test", dir)
	if result.Passed {
		t.Fatal("expected failure for read-only dir")
	}
}

func TestCheckFreeSpace(t *testing.T) {
	dir := t.TempDir()
	if result := CheckFreeSpace("space", dir, 1); !result.Passed {
		t.Fatalf("expected pass, got %s", result.Detail)
	}
	if result := CheckFreeSpace("space", dir, ^uint64(0)); result.Passed {
		t.Fatal("expected failure for impossible requirement")
	}
	if result := CheckFreeSpace("space", filepath.Join(dir, "missing"), 1); result.Passed {
		t.Fatal("expected failure for missing path")
	}
}

func TestRunAll(t *testing.T) {
	target := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(t.TempDir(), "missing-state")

	results := RunAll(&cfg, target)
	if len(results) != 3 {
		t.Fatalf("expected three checks, got %d", len(results))
	}
	failed := Failed(results)
	if len(failed) != 2 || failed[0].Name != "State directory" {
		t.Fatalf("expected the state checks to fail, got %+v", failed)
	}

	cfg.Journal.Enabled = false
	if results := RunAll(&cfg, target); len(results) != 1 || !results[0].Passed {
		t.Fatalf("expected only the target check, got %+v", results)
	}
}
