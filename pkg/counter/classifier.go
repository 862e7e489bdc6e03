package counter

import (
	"path"
	"strings"
)

// Ext returns the filename's suffix including the leading dot, lowercased.
// Files without a suffix return "". Dotfiles (".bashrc") and names ending
// in a bare dot ("noise.") have no suffix.
func Ext(filename string) string {
	ext := path.Ext(filename)
	if ext == "." || ext == path.Base(filename) {
		return ""
	}
	return strings.ToLower(ext)
}

// NormalizeExtensions canonicalizes a configured extension list into a set:
// lowercase with exactly one leading dot, duplicates collapsed, blanks
// dropped. "TXT", "txt" and ".txt" all normalize to ".txt".
func NormalizeExtensions(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		ext = strings.TrimLeft(ext, ".")
		if ext == "" {
			continue
		}
		set["."+ext] = struct{}{}
	}
	return set
}

// Matches reports whether a filename's suffix is in the extension set. An
// empty set matches every filename. Pure: no side effects, no errors.
func Matches(filename string, exts map[string]struct{}) bool {
	if len(exts) == 0 {
		return true
	}
	_, ok := exts[Ext(filename)]
	return ok
}
