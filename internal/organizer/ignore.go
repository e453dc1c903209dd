package organizer

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher decides which entries stay where they are.
type Matcher struct {
	names      map[string]struct{}
	patterns   []string
	skipHidden bool
}

// NewMatcher returns a matcher for exact file names, doublestar patterns
// matched against the base name, and optionally dot files.
func NewMatcher(names, patterns []string, skipHidden bool) *Matcher {
	m := &Matcher{
		names:      make(map[string]struct{}, len(names)),
		patterns:   append([]string(nil), patterns...),
		skipHidden: skipHidden,
	}
	for _, name := range names {
		m.names[name] = struct{}{}
	}
	return m
}

// Match reports whether name must be left in place. A nil matcher ignores
// nothing.
func (m *Matcher) Match(name string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.names[name]; ok {
		return true
	}
	if m.skipHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, pattern := range m.patterns {
		// Patterns are validated when the config loads.
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
