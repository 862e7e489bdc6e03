package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJoinSlash(t *testing.T) {
	tests := []struct {
		name     string
		parent   string
		child    string
		expected string
	}{
		{"simple join", "/var/log", "nginx", "/var/log/nginx"},
		{"trailing slash on parent", "/var/log/", "nginx", "/var/log/nginx"},
		{"multiple trailing slashes", "/var/log//", "nginx", "/var/log/nginx"},
		{"root parent", "/", "etc", "/etc"},
		{"empty parent", "", "etc", "/etc"},
		{"leading slash on child", "/var", "/log", "/var/log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JoinSlash(tt.parent, tt.child)
			if got != tt.expected {
				t.Errorf("JoinSlash(%q, %q) = %q, expected %q", tt.parent, tt.child, got, tt.expected)
			}
		})
	}
}

func TestExpandTilde(t *testing.T) {
	t.Run("expands home prefix", func(t *testing.T) {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skipf("no home directory: %v", err)
		}

		got, err := ExpandTilde("~/.ssh/id_ed25519")
		if err != nil {
			t.Fatalf("ExpandTilde failed: %v", err)
		}

		expected := filepath.Join(home, ".ssh/id_ed25519")
		if got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	})

	t.Run("leaves absolute paths alone", func(t *testing.T) {
		got, err := ExpandTilde("/etc/ssh/key")
		if err != nil {
			t.Fatalf("ExpandTilde failed: %v", err)
		}
		if got != "/etc/ssh/key" {
			t.Errorf("Expected path unchanged, got %q", got)
		}
	})
}
