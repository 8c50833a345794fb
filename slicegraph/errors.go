// Package slicegraph stores diagrams and rewrites as a directed graph and
// implements explosion: rewriting that graph one dimension down into the
// graph of every node's boundary, regular and singular slices, with
// traceability maps back to the originals. See SPEC_FULL.md §4.6.
package slicegraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for the slicegraph package.
var (
	// ErrDimension indicates a node or edge did not carry the dimension-N
	// diagram or rewrite that Explode requires.
	ErrDimension = errors.New("slicegraph: dimension mismatch")

	// ErrNotFound indicates a node or edge ID did not resolve to an entry
	// in the graph.
	ErrNotFound = errors.New("slicegraph: not found")
)

func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
