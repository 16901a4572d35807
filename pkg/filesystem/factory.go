package filesystem

import (
	"fmt"
	"path/filepath"
)

// CreateFileSystem creates a FileSystem for the given path.
// Returns (filesystem, basePath, closer, error).
// - filesystem: The FileSystem to use for operations
// - basePath: The path to use with the filesystem (absolute for local paths, stripped of URL prefix for SFTP)
// - closer: A function to call when done (closes SFTP connections), or nil for local
func CreateFileSystem(pathStr string) (FileSystem, string, func(), error) {
	parsed, err := ParsePath(pathStr)
	if err != nil {
		return nil, "", nil, err
	}

	if !parsed.IsRemote {
		absPath, err := filepath.Abs(parsed.LocalPath)
		if err != nil {
			return nil, "", nil, fmt.Errorf("failed to resolve %s: %w", parsed.LocalPath, err)
		}

		return NewRealFileSystem(), absPath, nil, nil
	}

	conn, err := Connect(parsed.Host, parsed.Port, parsed.User)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to %s@%s:%d: %w",
			parsed.User, parsed.Host, parsed.Port, err)
	}

	closer := func() {
		_ = conn.Close()
	}

	return NewSFTPFileSystem(conn), parsed.Path, closer, nil
}
