// Package counter implements the traversal-and-counting engine: a
// depth-first walk over any Backend that filters files by extension,
// accumulates counts, reports progress, and contains per-directory
// failures without aborting the whole scan.
package counter

import (
	"context"

	"fcount/pkg/backend"
)

// Progress is one traversal event, emitted after each directory's listing
// attempt. Total is 0 when the backend could not pre-count directories.
type Progress struct {
	Visited int
	Path    string
	Total   int
}

// Options tunes a single scan.
type Options struct {
	// CollectPaths appends every matched file's full path to the result.
	CollectPaths bool

	// KnownTotal is the pre-counted directory total, when the caller
	// obtained one from a backend.DirCounter. 0 means unknown.
	KnownTotal int

	// Progress, when non-nil, receives one event per visited directory.
	// Sends never block: events are dropped when the consumer lags, so
	// reporting can never stall traversal.
	Progress chan<- Progress

	// OnSkip, when non-nil, is called for each directory whose listing
	// failed and for each entry that could not be classified.
	OnSkip func(path string, err error)
}

// Result is the outcome of a scan. Total equals the sum of PerExtension at
// every observation point, including partial results after cancellation.
type Result struct {
	PerExtension map[string]int `json:"per_extension"`
	Total        int            `json:"total"`
	MatchedPaths []string       `json:"matched_paths,omitempty"`
	SkippedDirs  []string       `json:"skipped_dirs,omitempty"`
}

// Scan walks the tree rooted at root through the given backend, counting
// files whose suffix is in exts (empty set = count everything).
//
// Connection failures abort with no partial result. Listing failures are
// local to one subtree: recorded in SkippedDirs and skipped. Cancellation
// via ctx is observed before each directory and returns the partial result
// accumulated so far together with ctx.Err(). The backend is closed on
// every exit path.
func Scan(ctx context.Context, b backend.Backend, root string, exts map[string]struct{}, opts Options) (*Result, error) {
	if err := b.Connect(); err != nil {
		b.Close()
		return nil, err
	}
	defer b.Close()

	agg := newAggregator(exts)
	var skipped []string
	visited := 0

	// Explicit work stack instead of call-stack recursion: bounds stack
	// depth on deep trees and gives cancellation a natural check point
	// between directories. Depth-first, pre-order; sibling order follows
	// whatever the backend returns.
	stack := []string{root}
	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return agg.snapshot(skipped), ctx.Err()
		default:
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := b.ListDir(dir)
		visited++
		if err != nil {
			skipped = append(skipped, dir)
			if opts.OnSkip != nil {
				opts.OnSkip(dir, err)
			}
			emit(opts, visited, dir)
			continue
		}

		for _, entry := range entries {
			child := b.Join(dir, entry.Name)
			if entry.IsDir {
				stack = append(stack, child)
				continue
			}
			if Matches(entry.Name, exts) {
				agg.increment(Ext(entry.Name))
				if opts.CollectPaths {
					agg.addPath(child)
				}
			}
		}
		emit(opts, visited, dir)
	}

	return agg.snapshot(skipped), nil
}

func emit(opts Options, visited int, label string) {
	if opts.Progress == nil {
		return
	}
	select {
	case opts.Progress <- Progress{Visited: visited, Path: label, Total: opts.KnownTotal}:
	default:
	}
}
