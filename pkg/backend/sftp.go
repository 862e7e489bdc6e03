package backend

import (
	"fmt"
	"net"
	"os"
	"time"

	"fcount/pkg/util"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// DefaultDialTimeout bounds the initial SSH dial. Individual listing calls
// are not bounded here; callers cancel via the scan context instead.
const DefaultDialTimeout = 30 * time.Second

// SFTP traverses a remote filesystem over an SSH session with an SFTP
// channel on top. One SFTP handle serves exactly one scan.
type SFTP struct {
	Host     string
	Port     string
	Username string
	Password string
	KeyPath  string

	client *ssh.Client
	sftp   *sftp.Client
}

func NewSFTP(host, port, username, password, keyPath string) *SFTP {
	if port == "" {
		port = "22"
	}
	return &SFTP{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		KeyPath:  keyPath,
	}
}

// Connect dials the SSH server and opens the SFTP channel. Authentication
// and network failures are terminal; no retry is attempted. A partially
// established session is torn down before returning.
func (s *SFTP) Connect() error {
	var auth []ssh.AuthMethod

	if s.KeyPath != "" {
		keyPath, err := util.ExpandTilde(s.KeyPath)
		if err != nil {
			return fmt.Errorf("%w: resolving key path: %v", ErrConnection, err)
		}
		keyBytes, err := os.ReadFile(keyPath)
		if err != nil {
			return fmt.Errorf("%w: reading SSH key: %v", ErrConnection, err)
		}
		signer, err := ssh.ParsePrivateKey(keyBytes)
		if err != nil {
			return fmt.Errorf("%w: parsing SSH key: %v", ErrConnection, err)
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}
	if s.Password != "" {
		auth = append(auth, ssh.Password(s.Password))
	}
	if len(auth) == 0 {
		return fmt.Errorf("%w: no authentication method available", ErrConnection)
	}

	config := &ssh.ClientConfig{
		User:            s.Username,
		Auth:            auth,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         DefaultDialTimeout,
	}

	addr := net.JoinHostPort(s.Host, s.Port)
	client, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConnection, addr, err)
	}

	sftpClient, err := sftp.NewClient(client)
	if err != nil {
		client.Close()
		return fmt.Errorf("%w: opening SFTP channel: %v", ErrConnection, err)
	}

	s.client = client
	s.sftp = sftpClient
	return nil
}

// ListDir lists one remote directory with attributes. The directory bit
// comes from the mode bits already present in the listing reply.
func (s *SFTP) ListDir(path string) ([]DirEntry, error) {
	if s.sftp == nil {
		return nil, ErrNotConnected
	}

	infos, err := s.sftp.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}

	entries := make([]DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, DirEntry{
			Name:  info.Name(),
			IsDir: info.Mode().IsDir(),
		})
	}
	return entries, nil
}

func (s *SFTP) Join(parent, name string) string {
	return util.JoinSlash(parent, name)
}

// Close shuts the SFTP channel then the SSH session. Idempotent: safe when
// never connected and safe to call twice.
func (s *SFTP) Close() error {
	var firstErr error
	if s.sftp != nil {
		firstErr = s.sftp.Close()
		s.sftp = nil
	}
	if s.client != nil {
		if err := s.client.Close(); firstErr == nil {
			firstErr = err
		}
		s.client = nil
	}
	return firstErr
}
