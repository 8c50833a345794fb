package slicegraph

import "github.com/globular-io/globular/common"

// RewriteOriginKind distinguishes the six ways an edge in an exploded
// graph can arise.
type RewriteOriginKind int

const (
	// OriginBoundary is a padded identity running along a diagram's own
	// source or target boundary.
	OriginBoundary RewriteOriginKind = iota
	// OriginInternal is one of a diagram's own cospan legs.
	OriginInternal
	// OriginSparse is the identity edge into a target regular height from
	// the source regular height corresponding to it.
	OriginSparse
	// OriginUnitSlice is a regular-slice edge into a target singular
	// height from the first regular height of its non-empty singular
	// preimage, or the closing edge from the regular height just past it.
	OriginUnitSlice
	// OriginRegularSlice is any other regular-slice edge into a target
	// singular height, including the closing edge of an empty preimage.
	OriginRegularSlice
	// OriginSingularSlice is one of a cone's singular slices.
	OriginSingularSlice
)

// RewriteOrigin tags where an edge produced by Explode came from, so a
// caller's edge-map callbacks can decide what key (if any) the edge
// should carry in the exploded graph.
type RewriteOrigin struct {
	Kind      RewriteOriginKind
	Boundary  common.Boundary  // meaningful iff Kind == OriginBoundary
	Height    int              // meaningful iff Kind is Internal, Sparse or SingularSlice
	Direction common.Direction // meaningful iff Kind == OriginInternal
}

// BoundaryOrigin builds an OriginBoundary tag.
func BoundaryOrigin(b common.Boundary) RewriteOrigin {
	return RewriteOrigin{Kind: OriginBoundary, Boundary: b}
}

// InternalOrigin builds an OriginInternal tag for the given singular
// height and leg direction.
func InternalOrigin(height int, dir common.Direction) RewriteOrigin {
	return RewriteOrigin{Kind: OriginInternal, Height: height, Direction: dir}
}

// SparseOrigin builds an OriginSparse tag for the given target regular
// height.
func SparseOrigin(height int) RewriteOrigin {
	return RewriteOrigin{Kind: OriginSparse, Height: height}
}

// UnitSliceOrigin builds an OriginUnitSlice tag.
func UnitSliceOrigin() RewriteOrigin { return RewriteOrigin{Kind: OriginUnitSlice} }

// RegularSliceOrigin builds an OriginRegularSlice tag.
func RegularSliceOrigin() RewriteOrigin { return RewriteOrigin{Kind: OriginRegularSlice} }

// SingularSliceOrigin builds an OriginSingularSlice tag for the given
// source singular height.
func SingularSliceOrigin(height int) RewriteOrigin {
	return RewriteOrigin{Kind: OriginSingularSlice, Height: height}
}

func (ro RewriteOrigin) String() string {
	switch ro.Kind {
	case OriginBoundary:
		return "Boundary(" + ro.Boundary.String() + ")"
	case OriginInternal:
		return "Internal"
	case OriginSparse:
		return "Sparse"
	case OriginUnitSlice:
		return "UnitSlice"
	case OriginRegularSlice:
		return "RegularSlice"
	default:
		return "SingularSlice"
	}
}
