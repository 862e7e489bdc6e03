// Package backend abstracts directory listing over local and remote
// filesystems so the traversal engine can be written once and tested with
// injected fakes.
package backend

import (
	"context"
	"errors"
)

var (
	// ErrConnection indicates an authentication or network failure while
	// establishing a session. It is terminal: the scan aborts with no
	// partial result.
	ErrConnection = errors.New("connection failed")

	// ErrPathNotFound indicates the configured root path does not exist.
	ErrPathNotFound = errors.New("path not found")

	// ErrNotConnected indicates a listing was attempted before Connect.
	ErrNotConnected = errors.New("not connected")
)

// DirEntry is a single child returned by ListDir. The directory bit is
// captured from metadata already present in the listing, so classifying an
// entry never costs a second round trip.
type DirEntry struct {
	Name  string
	IsDir bool
}

// Backend is the uniform traversal surface over a filesystem. A backend
// handle is owned by exactly one scan: Connect before traversal, Close on
// every exit path. Close is idempotent and safe when never connected.
type Backend interface {
	Connect() error
	ListDir(path string) ([]DirEntry, error)
	// Join builds a child path from a parent and an entry name with exactly
	// one separator between them.
	Join(parent, name string) string
	Close() error
}

// DirCounter is an optional capability. Backends that can cheaply pre-count
// directories implement it so callers can render a bounded progress bar.
// The remote backend deliberately does not: a pre-pass would double every
// round trip on the wire. Cancelling the context stops the pre-pass early;
// the partial count is returned.
type DirCounter interface {
	CountDirs(ctx context.Context, root string) int
}
