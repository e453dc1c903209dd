package config

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOrganize()
	c.normalizeCategories()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("TIDY_STATE_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.StateDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	var err error
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOrganize() {
	c.Organize.FallbackCategory = CanonicalLabel(c.Organize.FallbackCategory)
	if c.Organize.FallbackCategory == "" {
		c.Organize.FallbackCategory = defaultFallbackCategory
	}
	c.Organize.ReportFile = strings.TrimSpace(c.Organize.ReportFile)
	if c.Organize.ReportFile == "" {
		c.Organize.ReportFile = defaultReportFile
	}
	c.Organize.IgnoredFiles = compactStrings(append(c.Organize.IgnoredFiles, c.Organize.ReportFile))
	c.Organize.IgnorePatterns = compactStrings(c.Organize.IgnorePatterns)
}

func (c *Config) normalizeCategories() {
	if len(c.Categories) == 0 {
		c.Categories = DefaultCategories()
		return
	}
	normalized := make(map[string][]string, len(c.Categories))
	for label, exts := range c.Categories {
		key := CanonicalLabel(label)
		for _, ext := range exts {
			if value := CanonicalExtension(ext); value != "" {
				normalized[key] = append(normalized[key], "."+value)
			}
		}
		if _, ok := normalized[key]; !ok {
			normalized[key] = nil
		}
	}
	c.Categories = normalized
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("TIDY_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// CanonicalLabel trims a category label and title-cases labels written
// entirely in lower case ("images" -> "Images"). Mixed-case labels such as
// "PDFs" are kept verbatim.
func CanonicalLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" || label != strings.ToLower(label) {
		return label
	}
	return cases.Title(language.Und).String(label)
}

// CanonicalExtension lower-cases an extension and strips its leading dot.
func CanonicalExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

func compactStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
