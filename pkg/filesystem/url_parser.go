package filesystem

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Exported constants.
const (
	// DefaultSSHPort is used when an sftp:// URL names no port.
	DefaultSSHPort = 22
	// SFTPScheme is the URL prefix that selects the SFTP filesystem.
	SFTPScheme = "sftp://"
)

// Exported variables.
var (
	ErrMissingHost = errors.New("SFTP URL must include host")
	ErrMissingUser = errors.New("SFTP URL must include username (sftp://user@host/path)")
)

// ParsedPath represents either a local path or an SFTP URL.
type ParsedPath struct {
	IsRemote bool

	// For local paths
	LocalPath string

	// For SFTP paths
	Host string
	Port int
	User string
	Path string // Remote path
}

// String renders the path the way the user would type it.
func (p *ParsedPath) String() string {
	if !p.IsRemote {
		return p.LocalPath
	}

	return fmt.Sprintf("%s%s@%s:%d/%s", SFTPScheme, p.User, p.Host, p.Port, p.Path)
}

// ParsePath detects whether a target directory argument is a local path or an SFTP URL.
// SFTP URLs have the format sftp://user@host[:port]/path, for example:
//   - sftp://joe@myserver.com/photos      (photos under the home directory)
//   - sftp://joe@myserver.com:2222//srv/a (absolute path /srv/a)
//   - ./photos                            (local path)
func ParsePath(path string) (*ParsedPath, error) {
	if strings.HasPrefix(path, SFTPScheme) {
		return parseSFTPURL(path)
	}

	return &ParsedPath{
		IsRemote:  false,
		LocalPath: path,
	}, nil
}

// parseSFTPURL parses an SFTP URL into its components.
func parseSFTPURL(sftpURL string) (*ParsedPath, error) {
	u, err := url.Parse(sftpURL) //nolint:varnamelen // u is idiomatic for URL
	if err != nil {
		return nil, fmt.Errorf("invalid SFTP URL: %w", err)
	}

	if u.User == nil || u.User.Username() == "" {
		return nil, ErrMissingUser
	}

	host := u.Hostname()
	if host == "" {
		return nil, ErrMissingHost
	}

	port := DefaultSSHPort
	if portStr := u.Port(); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid port number: %w", err)
		}
		port = p
	}

	return &ParsedPath{
		IsRemote: true,
		Host:     host,
		Port:     port,
		User:     u.User.Username(),
		Path:     remotePath(u.Path),
	}, nil
}

// remotePath maps the URL path onto the server:
//
//	sftp://user@host/path  → path relative to the home directory
//	sftp://user@host//path → absolute /path
//	sftp://user@host       → home directory (.)
func remotePath(urlPath string) string {
	switch {
	case urlPath == "" || urlPath == "/":
		return "."
	case strings.HasPrefix(urlPath, "//"):
		return urlPath[1:]
	default:
		return strings.TrimPrefix(urlPath, "/")
	}
}
