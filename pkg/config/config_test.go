package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("loads a valid local config", func(t *testing.T) {
		path := writeConfig(t, `{
			"connection_type": "local",
			"directory": "/var/log",
			"extensions": [".log", ".txt"]
		}`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.ConnectionType != ConnectionLocal {
			t.Errorf("Expected connection type local, got %s", cfg.ConnectionType)
		}
		if len(cfg.Extensions) != 2 {
			t.Errorf("Expected 2 extensions, got %d", len(cfg.Extensions))
		}
		if cfg.IsRemote() {
			t.Error("Expected local config not to be remote")
		}
	})

	t.Run("loads a valid ssh config with default port", func(t *testing.T) {
		path := writeConfig(t, `{
			"connection_type": "ssh",
			"directory": "/srv",
			"extensions": [],
			"host": "example.com",
			"username": "deploy",
			"password": "secret"
		}`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Port != DefaultSSHPort {
			t.Errorf("Expected default port %d, got %d", DefaultSSHPort, cfg.Port)
		}
		if !cfg.IsRemote() || !cfg.HasAuth() {
			t.Error("Expected remote config with auth")
		}
	})

	t.Run("accepts hostname as an alias for host", func(t *testing.T) {
		path := writeConfig(t, `{
			"connection_type": "ssh",
			"directory": "/srv",
			"extensions": [],
			"hostname": "example.com",
			"username": "deploy",
			"password": "secret"
		}`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Host != "example.com" {
			t.Errorf("Expected hostname alias to populate Host, got %q", cfg.Host)
		}
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("Expected an error for a missing file")
		}
	})

	t.Run("fails with ErrInvalidConfig on malformed JSON", func(t *testing.T) {
		path := writeConfig(t, `{not json`)
		if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *ScanConfig {
		return &ScanConfig{
			ConnectionType: ConnectionSSH,
			Directory:      "/srv",
			Extensions:     []string{},
			Host:           "example.com",
			Username:       "deploy",
			Password:       "secret",
			Port:           22,
		}
	}

	t.Run("accepts a complete ssh config", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("Expected valid config, got %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*ScanConfig)
	}{
		{"missing connection_type", func(c *ScanConfig) { c.ConnectionType = "" }},
		{"unknown connection_type", func(c *ScanConfig) { c.ConnectionType = "ftp" }},
		{"missing directory", func(c *ScanConfig) { c.Directory = "" }},
		{"missing extensions", func(c *ScanConfig) { c.Extensions = nil }},
		{"ssh without host", func(c *ScanConfig) { c.Host = "" }},
		{"ssh without username or profile", func(c *ScanConfig) { c.Username = "" }},
		{"port out of range", func(c *ScanConfig) { c.Port = 70000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	t.Run("remote fields not required for local scans", func(t *testing.T) {
		cfg := &ScanConfig{
			ConnectionType: ConnectionLocal,
			Directory:      "/var/log",
			Extensions:     []string{".log"},
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Expected valid local config, got %v", err)
		}
	})

	t.Run("profile satisfies the username requirement", func(t *testing.T) {
		cfg := valid()
		cfg.Username = ""
		cfg.Profile = "backup-host"
		if err := cfg.Validate(); err != nil {
			t.Errorf("Expected profile to stand in for username, got %v", err)
		}
	})
}
