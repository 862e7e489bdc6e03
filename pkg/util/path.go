package util

import (
	"os"
	"path/filepath"
	"strings"
)

// JoinSlash joins a parent path and a child name with exactly one forward
// slash, regardless of trailing separators on the parent. Remote paths are
// always slash-separated, independent of the local OS.
func JoinSlash(parent, name string) string {
	parent = strings.TrimRight(parent, "/")
	name = strings.TrimLeft(name, "/")
	if parent == "" {
		return "/" + name
	}
	return parent + "/" + name
}

// ExpandTilde resolves a leading "~/" against the user's home directory.
// Paths without the prefix are returned unchanged.
func ExpandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}
