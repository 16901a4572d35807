// Package errors provides actionable error handling with context-aware suggestions.
//
// A failed rename usually has a mundane cause (no write permission on the
// parent directory, a name that is already taken, a read-only mount). This
// package categorises such failures and attaches suggestions the user can act
// on:
//
//	enricher := errors.NewEnricher()
//	if err := os.Rename(oldPath, newPath); err != nil {
//	    actionable := enricher.Enrich(err, oldPath)
//	    fmt.Println(actionable.Error())
//	    fmt.Println(errors.FormatSuggestions(actionable))
//	}
//
// When no path is given, the enricher extracts one from the message
// ("rename /a/b /a/new_b: permission denied").
package errors

import "strings"

// Exported constants.
const (
	CategoryBusy        ErrorCategory = "busy"
	CategoryCrossDevice ErrorCategory = "cross_device"
	CategoryExists      ErrorCategory = "exists"
	CategoryPath        ErrorCategory = "path"
	CategoryPermission  ErrorCategory = "permission"
	CategoryReadOnly    ErrorCategory = "read_only"
	CategoryUnknown     ErrorCategory = "unknown"
)

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	OriginalError() string
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError with the given details.
func NewActionableError(
	originalError string,
	category ErrorCategory,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		originalError: originalError,
		category:      category,
		suggestions:   suggestions,
		affectedPath:  affectedPath,
	}
}

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// FormatSuggestions formats the suggestions from an ActionableError as a bulleted list.
// Returns empty string if the error is nil or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError)
	if !ok {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, suggestion := range suggestions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
type actionableError struct {
	originalError string
	category      ErrorCategory
	suggestions   []string
	affectedPath  string
}

// AffectedPath returns the file path affected by this error.
func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// Category returns the error category.
func (e *actionableError) Category() ErrorCategory {
	return e.category
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.originalError
}

// OriginalError returns the original error message.
func (e *actionableError) OriginalError() string {
	return e.originalError
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}
