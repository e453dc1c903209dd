package organizer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"tidy/internal/config"
)

// Rules maps file extensions to category labels. It is immutable once built.
type Rules struct {
	byExt    map[string]string
	table    map[string][]string
	labels   []string
	fallback string
}

// NewRules builds a rule set from a label -> extensions table. Extensions are
// matched case-insensitively with or without their leading dot. An extension
// listed under two labels is rejected.
func NewRules(table map[string][]string, fallback string) (*Rules, error) {
	fallback = strings.TrimSpace(fallback)
	if fallback == "" {
		return nil, errors.New("fallback category must not be empty")
	}
	r := &Rules{
		byExt:    make(map[string]string),
		table:    make(map[string][]string, len(table)),
		fallback: fallback,
	}
	for label := range table {
		r.labels = append(r.labels, label)
	}
	sort.Strings(r.labels)
	for _, label := range r.labels {
		if strings.TrimSpace(label) == "" {
			return nil, errors.New("category label must not be empty")
		}
		for _, ext := range table[label] {
			key := config.CanonicalExtension(ext)
			if key == "" {
				continue
			}
			if prev, ok := r.byExt[key]; ok && prev != label {
				return nil, fmt.Errorf("extension %q is listed under both %s and %s", "."+key, prev, label)
			}
			if _, ok := r.byExt[key]; !ok {
				r.table[label] = append(r.table[label], "."+key)
			}
			r.byExt[key] = label
		}
	}
	return r, nil
}

// DefaultRules returns the built-in category table with "Other" as fallback.
func DefaultRules() *Rules {
	rules, err := NewRules(config.DefaultCategories(), "Other")
	if err != nil {
		panic(err)
	}
	return rules
}

// Classify returns the category for name. Unknown and missing extensions map
// to the fallback category.
func (r *Rules) Classify(name string) string {
	if label, ok := r.byExt[Extension(name)]; ok {
		return label
	}
	return r.fallback
}

// Categories lists the configured labels in sorted order followed by the
// fallback label.
func (r *Rules) Categories() []string {
	out := make([]string, 0, len(r.labels)+1)
	out = append(out, r.labels...)
	return append(out, r.fallback)
}

// Extensions returns the dotted extensions mapped to label.
func (r *Rules) Extensions(label string) []string {
	return append([]string(nil), r.table[label]...)
}

// Fallback returns the label used for unmatched extensions.
func (r *Rules) Fallback() string {
	return r.fallback
}

// Extension returns the lower-cased text after the last dot of name, or the
// empty string when name has no dot or ends with one.
func Extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
