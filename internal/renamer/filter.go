package renamer

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// EntryFilter decides whether an entry takes part in a run.
type EntryFilter interface {
	// Excluded reports whether the entry (base name plus slash-separated path
	// relative to the root) must be left untouched and not descended into.
	Excluded(name, relativePath string) bool
}

// ExcludeFilter implements EntryFilter using doublestar glob patterns.
// A pattern without a slash matches the base name at any depth; a pattern with
// a slash matches the path relative to the root.
type ExcludeFilter struct {
	patterns []string
}

// NewExcludeFilter validates the patterns and returns a filter. No patterns excludes nothing.
func NewExcludeFilter(patterns []string) (*ExcludeFilter, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	return &ExcludeFilter{patterns: append([]string(nil), patterns...)}, nil
}

// Excluded reports whether any pattern matches the entry.
func (f *ExcludeFilter) Excluded(name, relativePath string) bool {
	for _, pattern := range f.patterns {
		subject := name
		if strings.Contains(pattern, "/") {
			subject = path.Clean(relativePath)
		}

		// Patterns were validated, so Match cannot fail
		if matched, _ := doublestar.Match(pattern, subject); matched {
			return true
		}
	}

	return false
}
