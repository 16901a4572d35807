package filesystem

import (
	"fmt"
	"os"
	"path"

	"github.com/pkg/sftp"
)

// sftpClient is the subset of *sftp.Client used by SFTPFileSystem.
type sftpClient interface {
	ReadDir(p string) ([]os.FileInfo, error)
	Lstat(p string) (os.FileInfo, error)
	Stat(p string) (os.FileInfo, error)
	Rename(oldname, newname string) error
}

// SFTPFileSystem implements FileSystem for SFTP connections.
// A rename run is sequential, so a single client serves every operation.
type SFTPFileSystem struct {
	client sftpClient
}

var _ sftpClient = (*sftp.Client)(nil)

// NewSFTPFileSystem creates a new SFTP filesystem using an established connection.
func NewSFTPFileSystem(conn *SFTPConnection) *SFTPFileSystem {
	return &SFTPFileSystem{client: conn.Client()}
}

// Join joins remote path elements. SFTP always uses forward slashes.
func (fs *SFTPFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

// Lstat returns file information for a remote entry without following symlinks.
func (fs *SFTPFileSystem) Lstat(p string) (os.FileInfo, error) {
	info, err := fs.client.Lstat(p)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat remote path %s: %w", p, err)
	}

	return info, nil
}

// ReadDir lists a remote directory sorted by name.
func (fs *SFTPFileSystem) ReadDir(p string) ([]os.FileInfo, error) {
	infos, err := fs.client.ReadDir(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote directory %s: %w", p, err)
	}

	sortByName(infos)

	return infos, nil
}

// Rename renames a remote entry. SFTP rename fails if newpath already exists.
func (fs *SFTPFileSystem) Rename(oldpath, newpath string) error {
	err := fs.client.Rename(oldpath, newpath)
	if err != nil {
		return fmt.Errorf("failed to rename remote path %s: %w", oldpath, err)
	}

	return nil
}

// Split returns the parent directory and base name of a remote path.
func (fs *SFTPFileSystem) Split(p string) (string, string) {
	return path.Dir(p), path.Base(p)
}

// Stat returns file information for a remote entry.
func (fs *SFTPFileSystem) Stat(p string) (os.FileInfo, error) {
	info, err := fs.client.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("failed to stat remote path %s: %w", p, err)
	}

	return info, nil
}
