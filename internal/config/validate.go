package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joe/pref/pkg/filesystem"
)

// Validated fields.
const (
	FieldDirectory = "directory"
	FieldPrefix    = "prefix"
)

// Exported variables.
var (
	ErrNotDirectory    = errors.New("not a directory")
	ErrEmptyPrefix     = errors.New("prefix may not be empty")
	ErrPrefixSeparator = errors.New("prefix may not contain `/` or `\\`")
)

// ValidationError reports a positional argument that parsed but cannot be used.
type ValidationError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the underlying cause.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for the failed field.
func (e *ValidationError) ExitCode() int {
	if e.Field == FieldPrefix {
		return ExitBadPrefix
	}
	return ExitNotDirectory
}

// Stater is the part of a filesystem needed to check the target directory.
type Stater interface {
	Stat(path string) (os.FileInfo, error)
}

// ValidateDirectory checks that path names an existing directory, following symlinks.
func ValidateDirectory(fsys Stater, path string) error {
	info, err := fsys.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &ValidationError{Field: FieldDirectory, Err: fmt.Errorf("%s is %w", path, ErrNotDirectory)}
	case err != nil:
		return &ValidationError{Field: FieldDirectory, Err: fmt.Errorf("cannot access %s: %w", path, err)}
	case !info.IsDir():
		return &ValidationError{Field: FieldDirectory, Err: fmt.Errorf("%s is %w", path, ErrNotDirectory)}
	}

	return nil
}

// ValidatePrefix checks that prefix is non-empty and has no path separator of either kind.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return &ValidationError{Field: FieldPrefix, Err: ErrEmptyPrefix}
	}
	if strings.ContainsAny(prefix, `/\`) {
		return &ValidationError{Field: FieldPrefix, Err: ErrPrefixSeparator}
	}

	return nil
}

// OpenDirectory resolves the directory argument to a filesystem and a base
// path, and checks that it is a directory. The returned closer is never nil.
func OpenDirectory(dir string) (filesystem.FileSystem, string, func(), error) {
	fsys, base, closer, err := filesystem.CreateFileSystem(dir)
	if err != nil {
		return nil, "", nil, &ValidationError{Field: FieldDirectory, Err: err}
	}
	if closer == nil {
		closer = func() {}
	}

	if err := ValidateDirectory(fsys, base); err != nil {
		closer()
		return nil, "", nil, err
	}

	return fsys, base, closer, nil
}
