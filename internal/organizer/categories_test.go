package organizer_test

import (
	"strings"
	"testing"

	"tidy/internal/config"
	"tidy/internal/organizer"
)

func TestClassifyDefaultTable(t *testing.T) {
	rules := organizer.DefaultRules()
	for label, exts := range config.DefaultCategories() {
		for _, ext := range exts {
			name := "file" + ext
			if got := rules.Classify(name); got != label {
				t.Fatalf("Classify(%q) = %q, want %q", name, got, label)
			}
			upper := "FILE" + strings.ToUpper(ext)
			if got := rules.Classify(upper); got != label {
				t.Fatalf("Classify(%q) = %q, want %q", upper, got, label)
			}
		}
	}
}

func TestClassifyFallback(t *testing.T) {
	rules := organizer.DefaultRules()
	cases := map[string]string{
		"unknown.xyz":     "Other",
		"Makefile":        "Other",
		"trailing.":       "Other",
		".bashrc":         "Other",
		"archive.tar.gz":  "Archives",
		"photo.backup":    "Other",
		"notes.TXT":       "Documents",
		"song.mp3.part":   "Other",
		"movie.final.MP4": "Videos",
	}
	for name, want := range cases {
		if got := rules.Classify(name); got != want {
			t.Fatalf("Classify(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestNewRulesRejectsDuplicateExtension(t *testing.T) {
	_, err := organizer.NewRules(map[string][]string{
		"Images":  {".svg"},
		"Vectors": {"SVG"},
	}, "Other")
	if err == nil {
		t.Fatal("expected duplicate extension error")
	}
	if !strings.Contains(err.Error(), ".svg") {
		t.Fatalf("expected error to name extension, got %v", err)
	}
}

func TestNewRulesCustomFallback(t *testing.T) {
	rules, err := organizer.NewRules(map[string][]string{"Text": {"txt", ".MD"}}, "Misc")
	if err != nil {
		t.Fatalf("NewRules: %v", err)
	}
	if got := rules.Classify("readme.md"); got != "Text" {
		t.Fatalf("expected Text, got %q", got)
	}
	if got := rules.Classify("a.bin"); got != "Misc" {
		t.Fatalf("expected Misc, got %q", got)
	}
	cats := rules.Categories()
	if len(cats) != 2 || cats[0] != "Text" || cats[1] != "Misc" {
		t.Fatalf("unexpected categories %v", cats)
	}
	exts := rules.Extensions("Text")
	if len(exts) != 2 || exts[0] != ".txt" || exts[1] != ".md" {
		t.Fatalf("unexpected extensions %v", exts)
	}
}

func TestExtension(t *testing.T) {
	cases := map[string]string{
		"a.JPG":   "jpg",
		"noext":   "",
		"dot.":    "",
		"a.b.c":   "c",
		".hidden": "hidden",
		"":        "",
	}
	for name, want := range cases {
		if got := organizer.Extension(name); got != want {
			t.Fatalf("Extension(%q) = %q, want %q", name, got, want)
		}
	}
}
