package errors

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"
)

// PatternMatcher matches errors to categories.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
	MatchError(err error) ErrorCategory
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
// Patterns are checked in order, so more specific messages come first.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		patterns: []categoryPatterns{
			{CategoryReadOnly, []string{"read-only file system", "read only file system"}},
			{CategoryCrossDevice, []string{"invalid cross-device link", "cross-device"}},
			{CategoryExists, []string{"file exists", "already exists", "directory not empty"}},
			{CategoryBusy, []string{"device or resource busy", "text file busy", "being used by another process"}},
			{CategoryPermission, []string{"permission denied", "access denied", "operation not permitted"}},
			{CategoryPath, []string{"no such file or directory", "file not found", "not a directory", "does not exist"}},
		},
		errnos: []categoryErrno{
			{CategoryReadOnly, syscall.EROFS},
			{CategoryCrossDevice, syscall.EXDEV},
			{CategoryBusy, syscall.EBUSY},
			{CategoryExists, syscall.ENOTEMPTY},
		},
	}
}

type categoryPatterns struct {
	category ErrorCategory
	patterns []string
}

type categoryErrno struct {
	category ErrorCategory
	errno    syscall.Errno
}

// patternMatcher is the concrete implementation of PatternMatcher.
type patternMatcher struct {
	patterns []categoryPatterns
	errnos   []categoryErrno
}

// Match returns the error category based on pattern matching.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for _, group := range m.patterns {
		for _, pattern := range group.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return group.category
			}
		}
	}

	return CategoryUnknown
}

// MatchError inspects the error chain before falling back to the message.
func (m *patternMatcher) MatchError(err error) ErrorCategory {
	for _, entry := range m.errnos {
		if errors.Is(err, entry.errno) {
			return entry.category
		}
	}

	switch {
	case errors.Is(err, fs.ErrExist):
		return CategoryExists
	case errors.Is(err, fs.ErrPermission):
		return CategoryPermission
	case errors.Is(err, fs.ErrNotExist):
		return CategoryPath
	}

	return m.Match(err.Error())
}
