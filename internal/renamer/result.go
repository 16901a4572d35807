package renamer

// SkipReason explains why an entry was left untouched.
type SkipReason string

// Exported constants.
const (
	// SkipDirectory marks a directory left alone because directories are not rename targets.
	SkipDirectory SkipReason = "directory"
	// SkipExcluded marks an entry matched by an exclude pattern.
	SkipExcluded SkipReason = "excluded"
)

// Rename records one rename, done or planned.
type Rename struct {
	From  string
	To    string
	IsDir bool
}

// Result describes what a traversal did.
type Result struct {
	Root    string
	Renamed []Rename
	Skipped []string
	// Failed holds the errors recorded in keep-going mode.
	Failed []error
	// Pending lists entries that were listed but not yet visited when the run aborted.
	Pending []string
}

// Files returns the number of renamed non-directories.
func (r *Result) Files() int {
	count := 0
	for _, rename := range r.Renamed {
		if !rename.IsDir {
			count++
		}
	}
	return count
}

// Dirs returns the number of renamed directories.
func (r *Result) Dirs() int {
	return len(r.Renamed) - r.Files()
}
