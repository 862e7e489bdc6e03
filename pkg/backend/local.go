package backend

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Local traverses the host filesystem.
type Local struct {
	root string
}

func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Connect validates that the root exists and is a directory. There is no
// session to establish for the local filesystem.
func (l *Local) Connect() error {
	info, err := os.Stat(l.root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, l.root)
		}
		return fmt.Errorf("cannot access %s: %w", l.root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrPathNotFound, l.root)
	}
	return nil
}

func (l *Local) ListDir(path string) ([]DirEntry, error) {
	children, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]DirEntry, 0, len(children))
	for _, child := range children {
		// Symlinks are reported as files: the engine never follows them.
		entries = append(entries, DirEntry{
			Name:  child.Name(),
			IsDir: child.Type().IsDir(),
		})
	}
	return entries, nil
}

func (l *Local) Join(parent, name string) string {
	return filepath.Join(parent, name)
}

// Close is a no-op; safe to call any number of times.
func (l *Local) Close() error {
	return nil
}

// CountDirs walks the tree once counting directories, for bounded progress
// rendering. Unreadable subtrees are ignored; the count is best-effort.
// Cancellation abandons the walk and returns the partial count.
func (l *Local) CountDirs(ctx context.Context, root string) int {
	count := 0
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return filepath.SkipAll
		}
		if err != nil {
			return fs.SkipDir
		}
		if d.IsDir() {
			count++
		}
		return nil
	})
	return count
}
