package renamer

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joe/pref/pkg/filesystem"
)

// Exported variables.
var (
	ErrTargetExists = errors.New("target already exists")
)

// RenameError reports a failed single-entry rename.
type RenameError struct {
	Path    string
	NewPath string
	Err     error
}

// Error implements the error interface.
func (e *RenameError) Error() string {
	return fmt.Sprintf("cannot rename %s to %s: %v", e.Path, e.NewPath, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *RenameError) Unwrap() error {
	return e.Err
}

// ListError reports a directory that could not be listed during traversal.
type ListError struct {
	Dir string
	Err error
}

// Error implements the error interface.
func (e *ListError) Error() string {
	return fmt.Sprintf("cannot list %s: %v", e.Dir, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ListError) Unwrap() error {
	return e.Err
}

// PrefixedPath returns the path entryPath would have after prefixing its base name.
func PrefixedPath(fsys filesystem.FileSystem, entryPath, prefix string) string {
	dir, name := fsys.Split(entryPath)
	return fsys.Join(dir, prefix+name)
}

// RenameEntry prepends prefix to the base name of entryPath and returns the new path.
// An existing entry at the new path is never replaced.
func RenameEntry(fsys filesystem.FileSystem, entryPath, prefix string, logger *slog.Logger) (string, error) {
	newPath := PrefixedPath(fsys, entryPath, prefix)

	_, err := fsys.Lstat(newPath)
	if err == nil {
		return "", &RenameError{Path: entryPath, NewPath: newPath, Err: ErrTargetExists}
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", &RenameError{Path: entryPath, NewPath: newPath, Err: err}
	}

	logger.Debug("renaming", "from", entryPath, "to", newPath)

	if err := fsys.Rename(entryPath, newPath); err != nil {
		return "", &RenameError{Path: entryPath, NewPath: newPath, Err: err}
	}

	return newPath, nil
}
