// Package config loads and validates the scan configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidConfig marks malformed or incomplete configuration. It is
// fatal and always surfaces before any connection attempt.
var ErrInvalidConfig = errors.New("invalid config")

// ScanConfig is the parsed configuration for one scan. Once credential
// resolution finishes it is immutable: the engine and backends only read it.
type ScanConfig struct {
	ConnectionType string   `json:"connection_type"`
	Directory      string   `json:"directory"`
	Extensions     []string `json:"extensions"`

	// Remote connection fields, required iff ConnectionType is "ssh".
	Host     string `json:"host,omitempty"`
	Hostname string `json:"hostname,omitempty"` // accepted alias for host
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	SSHKey   string `json:"ssh_key,omitempty"`
	Port     int    `json:"port,omitempty"`

	// Profile names a section in ~/.fcount/credentials to resolve the
	// username/password from, keeping secrets out of this file.
	Profile string `json:"profile,omitempty"`

	// CollectPaths records the full path of every matched file.
	CollectPaths bool `json:"collect_paths,omitempty"`
}

// Load reads and validates a config file.
func Load(path string) (*ScanConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg ScanConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}

	if cfg.Host == "" {
		cfg.Host = cfg.Hostname
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultSSHPort
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the required-field invariants. Remote fields are
// required exactly when the connection type is "ssh".
func (c *ScanConfig) Validate() error {
	switch c.ConnectionType {
	case ConnectionLocal, ConnectionSSH:
	case "":
		return fmt.Errorf("%w: missing required key: connection_type", ErrInvalidConfig)
	default:
		return fmt.Errorf("%w: connection_type must be %q or %q, got %q",
			ErrInvalidConfig, ConnectionLocal, ConnectionSSH, c.ConnectionType)
	}

	if c.Directory == "" {
		return fmt.Errorf("%w: missing required key: directory", ErrInvalidConfig)
	}
	if c.Extensions == nil {
		return fmt.Errorf("%w: missing required key: extensions", ErrInvalidConfig)
	}

	if c.ConnectionType == ConnectionSSH {
		if c.Host == "" {
			return fmt.Errorf("%w: ssh connection requires host", ErrInvalidConfig)
		}
		if c.Username == "" && c.Profile == "" {
			return fmt.Errorf("%w: ssh connection requires username", ErrInvalidConfig)
		}
		if c.Port < 1 || c.Port > 65535 {
			return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
		}
	}

	return nil
}

// IsRemote reports whether the scan targets a remote host.
func (c *ScanConfig) IsRemote() bool {
	return c.ConnectionType == ConnectionSSH
}

// HasAuth reports whether any SSH authentication material is configured.
func (c *ScanConfig) HasAuth() bool {
	return c.Password != "" || c.SSHKey != ""
}
