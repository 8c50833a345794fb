// Package diagram implements the inductive diagram/rewrite model: Diagram0/
// DiagramN, Rewrite0/RewriteN, Cospan and Cone, together with the algebra
// over them (slicing, attachment, rewrite application, composition,
// equivalence). See SPEC_FULL.md §3-§4.1 for the data model this realises.
package diagram

import (
	"errors"
	"fmt"
)

// Sentinel errors for the diagram package. Callers branch with errors.Is;
// context is attached with fmt.Errorf("%w: ...") at the call site, mirroring
// the teacher's builder/errors.go sentinel-and-wrap convention.
var (
	// ErrDimension indicates an operation was given operands of the wrong or
	// mismatched dimension.
	ErrDimension = errors.New("diagram: dimension mismatch")

	// ErrNewDiagram indicates DiagramN construction failed because a cospan's
	// rewrite dimensions or boundary slices did not align with the source.
	ErrNewDiagram = errors.New("diagram: malformed diagram construction")

	// ErrComposition indicates Compose was given rewrites whose target/source
	// boundary did not match, or a nested slice composition failed.
	ErrComposition = errors.New("diagram: composition failed")

	// ErrIncompatibleRewrite indicates a rewrite does not apply at the slice
	// it was asked to act on (the splice it describes doesn't match the
	// diagram's actual cospans at that position).
	ErrIncompatibleRewrite = errors.New("diagram: rewrite incompatible with slice")

	// ErrNotFound indicates a query (Slice, cone lookup, ...) referenced a
	// position outside the diagram/rewrite's extent.
	ErrNotFound = errors.New("diagram: index out of range")
)

func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
