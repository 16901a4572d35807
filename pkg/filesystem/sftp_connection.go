package filesystem

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// Exported variables.
var (
	ErrNoSSHAuth = errors.New("no SSH authentication available (set SSH_AUTH_SOCK or add an unencrypted key under ~/.ssh)")
)

// SFTPConnection is one SSH connection carrying one SFTP session.
type SFTPConnection struct {
	sshClient  *ssh.Client
	sftpClient *sftp.Client
	host       string
	port       int
	user       string
}

// Connect dials host, authenticates as user with the SSH agent or the
// default key files, and checks the host key against ~/.ssh/known_hosts.
func Connect(host string, port int, user string) (*SFTPConnection, error) {
	auth := authMethods()
	if len(auth) == 0 {
		return nil, ErrNoSSHAuth
	}

	hostKeys, err := knownHostsCallback()
	if err != nil {
		return nil, fmt.Errorf("failed to load known hosts: %w", err)
	}

	sshClient, err := ssh.Dial("tcp", net.JoinHostPort(host, strconv.Itoa(port)), &ssh.ClientConfig{
		User:            user,
		Auth:            auth,
		HostKeyCallback: hostKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", host, err)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		return nil, fmt.Errorf("failed to start sftp on %s: %w", host, err)
	}

	return &SFTPConnection{
		sshClient:  sshClient,
		sftpClient: sftpClient,
		host:       host,
		port:       port,
		user:       user,
	}, nil
}

// Client returns the SFTP session.
func (c *SFTPConnection) Client() *sftp.Client {
	return c.sftpClient
}

// Close ends the SFTP session and then the SSH connection, returning the first error.
func (c *SFTPConnection) Close() error {
	var sftpErr, sshErr error

	if c.sftpClient != nil {
		sftpErr = c.sftpClient.Close()
	}
	if c.sshClient != nil {
		sshErr = c.sshClient.Close()
	}

	if sftpErr != nil {
		return sftpErr
	}
	return sshErr
}

// String identifies the connection as user@host:port.
func (c *SFTPConnection) String() string {
	return fmt.Sprintf("%s@%s:%d", c.user, c.host, c.port)
}

// authMethods lists the agent first, then any readable default keys.
func authMethods() []ssh.AuthMethod {
	var methods []ssh.AuthMethod

	if auth := agentAuth(); auth != nil {
		methods = append(methods, auth)
	}

	return append(methods, keyFileAuths()...)
}

func knownHostsCallback() (ssh.HostKeyCallback, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return knownhosts.New(filepath.Join(home, ".ssh", "known_hosts"))
}

func agentAuth() ssh.AuthMethod {
	socket := os.Getenv("SSH_AUTH_SOCK")
	if socket == "" {
		return nil
	}

	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil
	}

	return ssh.PublicKeysCallback(agent.NewClient(conn).Signers)
}

// keyFileAuths loads id_ed25519, id_rsa and id_ecdsa from ~/.ssh.
// Missing and passphrase-protected keys are skipped.
func keyFileAuths() []ssh.AuthMethod {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	var methods []ssh.AuthMethod

	for _, name := range []string{"id_ed25519", "id_rsa", "id_ecdsa"} {
		data, err := os.ReadFile(filepath.Join(home, ".ssh", name))
		if err != nil {
			continue
		}

		signer, err := ssh.ParsePrivateKey(data)
		if err != nil {
			continue
		}

		methods = append(methods, ssh.PublicKeys(signer))
	}

	return methods
}
