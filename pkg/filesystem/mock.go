package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Exported variables.
var (
	ErrNotDirectory = errors.New("not a directory")
)

// MockFileSystem is an in-memory filesystem implementation for testing.
// Paths are cleaned with filepath.Clean; a path is a directory only if it was
// added as one (parents are created implicitly).
type MockFileSystem struct {
	mu          sync.RWMutex
	files       map[string]*mockFile
	renameFails map[string]error
	renames     []string
}

// mockFile represents a file or directory in the mock filesystem.
type mockFile struct {
	data    []byte
	modTime time.Time
	mode    os.FileMode
}

// mockFileInfo implements os.FileInfo for mock files.
type mockFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	mode    os.FileMode
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) Mode() os.FileMode  { return fi.mode }
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi *mockFileInfo) Sys() interface{}   { return nil }

// NewMockFileSystem creates a new in-memory filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:       make(map[string]*mockFile),
		renameFails: make(map[string]error),
	}
}

// Join joins path elements.
func (m *MockFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Lstat returns file information. Symlinks added with AddSymlink are reported as such.
func (m *MockFileSystem) Lstat(path string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.statLocked("lstat", path)
}

// ReadDir lists the immediate children of a directory, sorted by name.
func (m *MockFileSystem) ReadDir(path string) ([]os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path = filepath.Clean(path)

	dir, exists := m.files[path]
	if !exists {
		return nil, &fs.PathError{Op: "readdirent", Path: path, Err: fs.ErrNotExist}
	}
	if !dir.mode.IsDir() {
		return nil, &fs.PathError{Op: "readdirent", Path: path, Err: ErrNotDirectory}
	}

	infos := make([]os.FileInfo, 0)
	for p, file := range m.files {
		if filepath.Dir(p) != path || p == path {
			continue
		}
		infos = append(infos, file.info(filepath.Base(p)))
	}
	sortByName(infos)

	return infos, nil
}

// Rename moves a file, or a directory together with everything beneath it.
// Unlike rename(2) it refuses to replace an existing entry.
func (m *MockFileSystem) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldpath = filepath.Clean(oldpath)
	newpath = filepath.Clean(newpath)

	if err, ok := m.renameFails[oldpath]; ok {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}
	if _, exists := m.files[oldpath]; !exists {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrNotExist}
	}
	if _, exists := m.files[newpath]; exists {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrExist}
	}
	parent, exists := m.files[filepath.Dir(newpath)]
	if !exists || !parent.mode.IsDir() {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrNotExist}
	}

	moved := make(map[string]*mockFile)
	for p, file := range m.files {
		if p == oldpath {
			moved[newpath] = file
			delete(m.files, p)
			continue
		}
		if strings.HasPrefix(p, oldpath+string(filepath.Separator)) {
			moved[newpath+strings.TrimPrefix(p, oldpath)] = file
			delete(m.files, p)
		}
	}
	for p, file := range moved {
		m.files[p] = file
	}
	m.renames = append(m.renames, oldpath+" -> "+newpath)

	return nil
}

// Split returns the parent directory and base name of path.
func (m *MockFileSystem) Split(path string) (string, string) {
	return filepath.Dir(path), filepath.Base(path)
}

// Stat returns file information. Symlinks are not resolved by the mock.
func (m *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.statLocked("stat", path)
}

func (m *MockFileSystem) statLocked(op, path string) (os.FileInfo, error) {
	path = filepath.Clean(path)

	file, exists := m.files[path]
	if !exists {
		return nil, &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
	}

	return file.info(filepath.Base(path)), nil
}

func (f *mockFile) info(name string) *mockFileInfo {
	return &mockFileInfo{
		name:    name,
		size:    int64(len(f.data)),
		modTime: f.modTime,
		mode:    f.mode,
	}
}

// mkdirAllLocked creates path and its parents; the lock must be held.
func (m *MockFileSystem) mkdirAllLocked(path string) {
	if path == "." || path == "/" {
		if _, exists := m.files[path]; !exists {
			m.files[path] = &mockFile{modTime: time.Now(), mode: os.ModeDir | 0o755}
		}
		return
	}

	m.mkdirAllLocked(filepath.Dir(path))

	if _, exists := m.files[path]; !exists {
		m.files[path] = &mockFile{modTime: time.Now(), mode: os.ModeDir | 0o755}
	}
}

// Helper methods for testing

// AddFile adds a regular file, creating parent directories as needed.
func (m *MockFileSystem) AddFile(path string, content []byte) {
	m.add(path, &mockFile{
		data:    append([]byte(nil), content...),
		modTime: time.Now(),
		mode:    0o644,
	})
}

// AddDir adds a directory, creating parent directories as needed.
func (m *MockFileSystem) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mkdirAllLocked(filepath.Clean(path))
}

// AddSymlink adds a symbolic link entry pointing at target.
func (m *MockFileSystem) AddSymlink(path, target string) {
	m.add(path, &mockFile{
		data:    []byte(target),
		modTime: time.Now(),
		mode:    os.ModeSymlink | 0o777,
	})
}

func (m *MockFileSystem) add(path string, file *mockFile) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	m.mkdirAllLocked(filepath.Dir(path))
	m.files[path] = file
}

// FailRename makes every later Rename of path fail with err.
func (m *MockFileSystem) FailRename(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.renameFails[filepath.Clean(path)] = err
}

// Exists checks if a path exists in the mock filesystem.
func (m *MockFileSystem) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.files[filepath.Clean(path)]
	return exists
}

// ListFiles returns all paths in the mock filesystem, sorted.
func (m *MockFileSystem) ListFiles() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Renames returns the successful renames in the order they happened, as "old -> new".
func (m *MockFileSystem) Renames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]string(nil), m.renames...)
}
