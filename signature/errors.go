// Package signature is the thin surface-API facade over package diagram: a
// named, insertion-ordered collection of generators together with the
// diagrams that define them, a fluent builder for assembling one, and a
// typecheck that confirms a diagram only uses generators the signature
// knows about.
package signature

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName is returned by Builder.Build when two generators
	// share a display name.
	ErrDuplicateName = errors.New("signature: duplicate generator name")

	// ErrUnknownGenerator names the case of a diagram or rewrite mentioning
	// a generator absent from the signature. No function in this package
	// returns it: Typecheck reports that case by returning false.
	ErrUnknownGenerator = errors.New("signature: unknown generator")

	// ErrDimensionMismatch is returned by Builder.Build when
	// diagram.FromGeneratorN rejected a GeneratorN call's boundary
	// diagrams.
	ErrDimensionMismatch = errors.New("signature: dimension mismatch")
)

func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
