package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCategories(); err != nil {
		return err
	}
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCategories() error {
	if len(c.Categories) == 0 {
		return errors.New("categories: at least one category is required")
	}
	labels := make([]string, 0, len(c.Categories))
	for label := range c.Categories {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	owner := make(map[string]string)
	for _, label := range labels {
		if err := validateLabel(label); err != nil {
			return fmt.Errorf("categories.%s: %w", label, err)
		}
		if strings.EqualFold(label, c.Organize.FallbackCategory) {
			return fmt.Errorf("categories.%s: label is reserved for the fallback category", label)
		}
		for _, ext := range c.Categories[label] {
			key := CanonicalExtension(ext)
			if key == "" {
				return fmt.Errorf("categories.%s: empty extension", label)
			}
			if prev, ok := owner[key]; ok && prev != label {
				return fmt.Errorf("categories: extension %q is listed under both %s and %s", "."+key, prev, label)
			}
			owner[key] = label
		}
	}
	return nil
}

func (c *Config) validateOrganize() error {
	if err := validateLabel(c.Organize.FallbackCategory); err != nil {
		return fmt.Errorf("organize.fallback_category: %w", err)
	}
	if strings.ContainsAny(c.Organize.ReportFile, `/\`) {
		return errors.New("organize.report_file must be a bare file name")
	}
	for _, pattern := range c.Organize.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("organize.ignore_patterns: invalid pattern %q", pattern)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

// validateLabel rejects labels that cannot be used as a single directory name.
func validateLabel(label string) error {
	switch {
	case strings.TrimSpace(label) == "":
		return errors.New("label must not be empty")
	case label == "." || label == "..":
		return fmt.Errorf("label %q is not a valid directory name", label)
	case strings.ContainsAny(label, `/\`) || label != filepath.Base(label):
		return fmt.Errorf("label %q must not contain path separators", label)
	}
	return nil
}
