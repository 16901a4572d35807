// Package filesystem provides an abstraction layer for filesystem operations
// to enable dependency injection and testing without actual filesystem I/O.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileSystem is an interface that abstracts the filesystem operations a rename
// run needs. Local, SFTP and in-memory implementations satisfy it, and it is a
// superset of kr/fs.FileSystem so any implementation can be walked.
type FileSystem interface {
	// ReadDir lists the entries of a directory sorted by name.
	// Entries carry lstat information: symlinks are never reported as directories.
	ReadDir(path string) ([]os.FileInfo, error)

	// Lstat returns file information without following a final symlink.
	Lstat(path string) (os.FileInfo, error)

	// Stat returns file information, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// Rename moves oldpath to newpath within the same filesystem.
	Rename(oldpath, newpath string) error

	// Join joins path elements using the filesystem's separator.
	Join(elem ...string) string

	// Split splits a path into its parent directory and base name.
	Split(path string) (dir, name string)
}

// RealFileSystem implements FileSystem using actual os/filepath functions.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// Join joins path elements with the OS separator.
func (fs *RealFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Lstat returns file information without following symlinks.
func (fs *RealFileSystem) Lstat(path string) (os.FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat %s: %w", path, err)
	}

	return info, nil
}

// ReadDir lists a directory. os.ReadDir already sorts by file name.
func (fs *RealFileSystem) ReadDir(path string) ([]os.FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", filepath.Join(path, entry.Name()), err)
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// Rename renames a file or directory.
func (fs *RealFileSystem) Rename(oldpath, newpath string) error {
	err := os.Rename(oldpath, newpath)
	if err != nil {
		return fmt.Errorf("failed to rename %s: %w", oldpath, err)
	}

	return nil
}

// Split returns the parent directory and base name of path.
func (fs *RealFileSystem) Split(path string) (string, string) {
	return filepath.Dir(path), filepath.Base(path)
}

// Stat returns file information.
func (fs *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info, nil
}

// sortByName orders directory entries the way os.ReadDir does.
func sortByName(infos []os.FileInfo) {
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})
}
