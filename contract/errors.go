// Package contract implements the contraction engine: given a sequence of
// diagrams of uniform dimension, user-supplied biases, and spans between
// them, Contract computes a colimit (target diagram plus rewrites into it)
// or fails with an explicit ambiguity signal. See SPEC_FULL.md §4.5.
package contract

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension indicates the diagrams passed to Contract do not share
	// a uniform dimension, or a span's apex does not match it.
	ErrDimension = errors.New("contract: dimension mismatch")

	// ErrNoDiagrams indicates Contract was called with an empty diagram
	// sequence; a colimit needs at least one diagram to contract.
	ErrNoDiagrams = errors.New("contract: no diagrams supplied")

	// ErrAmbiguousContraction indicates the inputs do not admit a unique
	// biased colimit: either two maximum-dimension components at d=0, or
	// two SCCs comparing equal under (depth, bias) at d>=1.
	ErrAmbiguousContraction = errors.New("contract: ambiguous contraction")

	// ErrRecursiveContraction wraps a failure contracting the diagrams
	// making up one strongly-connected component one dimension down.
	ErrRecursiveContraction = errors.New("contract: recursive contraction failed")
)

func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
