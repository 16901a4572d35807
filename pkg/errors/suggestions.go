package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryPermission:
		return g.generatePermissionSuggestions(affectedPath)
	case CategoryExists:
		return g.generateExistsSuggestions(affectedPath)
	case CategoryPath:
		return g.generatePathSuggestions(affectedPath)
	case CategoryReadOnly:
		return g.generateReadOnlySuggestions(affectedPath)
	case CategoryCrossDevice:
		return g.generateCrossDeviceSuggestions()
	case CategoryBusy:
		return g.generateBusySuggestions(affectedPath)
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedPath)
	default:
		return g.generateUnknownSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generateBusySuggestions(path string) []string {
	suggestions := []string{
		"Close programs that have the entry open and run again",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Find the process holding it with 'lsof %s'", path))
	}

	return suggestions
}

func (g *suggestionGenerator) generateCrossDeviceSuggestions() []string {
	return []string{
		"The entry lives on a different mount than its parent directory",
		"Run pref on the mounted directory itself, or exclude the mount point with -x",
	}
}

func (g *suggestionGenerator) generateExistsSuggestions(path string) []string {
	suggestions := []string{
		"An entry with the prefixed name already exists; pref never overwrites it",
	}

	if path != "" {
		suggestions = append(suggestions, "Rename or remove the existing entry next to "+path)
	}

	suggestions = append(suggestions,
		"Use --dry-run to preview the new names before renaming",
		"Use --keep-going to rename everything else and report the clashes")

	return suggestions
}

func (g *suggestionGenerator) generatePathSuggestions(path string) []string {
	suggestions := []string{
		"The entry disappeared while pref was running; check whether another program moved it",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the path exists: "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Renaming needs write permission on the directory that contains the entry",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -ld %s'", path))
	} else {
		suggestions = append(suggestions, "Check permissions with 'ls -ld' on the parent directory")
	}

	suggestions = append(suggestions, "Try running with appropriate permissions or as a privileged user")

	return suggestions
}

func (g *suggestionGenerator) generateReadOnlySuggestions(path string) []string {
	suggestions := []string{
		"The filesystem is mounted read-only",
	}

	if path != "" {
		suggestions = append(suggestions, "Check the mount options with 'findmnt -T "+path+"'")
	}

	return suggestions
}

func (g *suggestionGenerator) generateUnknownSuggestions(path string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Verify directory permissions",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is accessible: "+path)
	}

	return suggestions
}
