// Package common holds the shared vocabulary every other package in this
// module builds on: generators, boundaries, directions, heights, slice
// indices, boundary paths and orientations. None of these types reference
// Diagram or Rewrite — that dependency runs the other way, from package
// diagram down into here.
package common

import "fmt"

// Generator is an atomic, dimension-tagged identifier. Two generators are
// equal exactly when their (ID, Dimension) pairs match.
type Generator struct {
	ID        int
	Dimension int
}

// NewGenerator constructs a Generator with the given id and dimension.
func NewGenerator(id, dimension int) Generator {
	return Generator{ID: id, Dimension: dimension}
}

// String renders a Generator as "id:dimension", matching the teacher's
// compact Debug convention for small value types.
func (g Generator) String() string {
	return fmt.Sprintf("%d:%d", g.ID, g.Dimension)
}

// Boundary distinguishes the two ends of a 1-dimensional extent.
type Boundary int

const (
	Source Boundary = iota
	Target
)

// Flip swaps Source and Target.
func (b Boundary) Flip() Boundary {
	if b == Source {
		return Target
	}
	return Source
}

func (b Boundary) String() string {
	if b == Source {
		return "Source"
	}
	return "Target"
}

// Direction is the orientation a traversal moves in along a sequence of
// slices.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Forward {
		return "Forward"
	}
	return "Backward"
}

// HeightKind distinguishes regular and singular heights within Height.
type HeightKind int

const (
	Regular HeightKind = iota
	Singular
)

// Height is a regular or singular slice position within a diagram. A
// diagram of size n has heights whose embedding into the naturals (via
// Index) ranges over 0..=2n.
type Height struct {
	Kind  HeightKind
	Value int
}

// NewRegular builds a Regular(i) height.
func NewRegular(i int) Height { return Height{Kind: Regular, Value: i} }

// NewSingular builds a Singular(i) height.
func NewSingular(i int) Height { return Height{Kind: Singular, Value: i} }

// Index embeds a Height into the naturals: Regular(i) -> 2i, Singular(i) ->
// 2i+1.
func (h Height) Index() int {
	if h.Kind == Regular {
		return h.Value * 2
	}
	return h.Value*2 + 1
}

// HeightFromIndex is the inverse of Index.
func HeightFromIndex(n int) Height {
	if n%2 == 0 {
		return NewRegular(n / 2)
	}
	return NewSingular((n - 1) / 2)
}

// Less orders heights by their natural-number embedding.
func (h Height) Less(other Height) bool {
	return h.Index() < other.Index()
}

func (h Height) String() string {
	if h.Kind == Regular {
		return fmt.Sprintf("Regular(%d)", h.Value)
	}
	return fmt.Sprintf("Singular(%d)", h.Value)
}

// HeightsForSize returns every height, in ascending order, that occurs in a
// diagram of the given size: 2*size+1 heights, alternating Regular/
// Singular/Regular/....
func HeightsForSize(size int) []Height {
	out := make([]Height, 0, 2*size+1)
	for i := 0; i <= 2*size; i++ {
		out = append(out, HeightFromIndex(i))
	}
	return out
}

// SliceIndexKind distinguishes a boundary slice index from an interior one.
type SliceIndexKind int

const (
	AtBoundary SliceIndexKind = iota
	AtInterior
)

// SliceIndex addresses any slice of a diagram: either boundary (Source or
// Target) or an interior height. SliceIndex is totally ordered:
// Source < every interior index < Target, and interior indices compare by
// height.
type SliceIndex struct {
	Kind     SliceIndexKind
	Boundary Boundary // meaningful iff Kind == AtBoundary
	Height   Height   // meaningful iff Kind == AtInterior
}

// FromBoundary builds a boundary SliceIndex.
func FromBoundary(b Boundary) SliceIndex {
	return SliceIndex{Kind: AtBoundary, Boundary: b}
}

// FromHeight builds an interior SliceIndex.
func FromHeight(h Height) SliceIndex {
	return SliceIndex{Kind: AtInterior, Height: h}
}

// SliceIndicesForSize returns every slice index of a diagram of the given
// size, in ascending order: Source, then the 2*size+1 interior heights,
// then Target.
func SliceIndicesForSize(size int) []SliceIndex {
	out := make([]SliceIndex, 0, size*2+3)
	out = append(out, FromBoundary(Source))
	for _, h := range HeightsForSize(size) {
		out = append(out, FromHeight(h))
	}
	out = append(out, FromBoundary(Target))
	return out
}

// Compare orders two slice indices: Source < interior < Target, interior
// indices compare by height.
func (s SliceIndex) Compare(other SliceIndex) int {
	rank := func(si SliceIndex) int {
		switch {
		case si.Kind == AtBoundary && si.Boundary == Source:
			return -1
		case si.Kind == AtBoundary && si.Boundary == Target:
			return 1
		default:
			return 0
		}
	}
	rs, ro := rank(s), rank(other)
	if rs != ro {
		if rs < ro {
			return -1
		}
		return 1
	}
	if rs != 0 {
		// both boundary and of the same kind (both Source, or both Target)
		return 0
	}
	// both interior: compare by height
	si, oi := s.Height.Index(), other.Height.Index()
	switch {
	case si < oi:
		return -1
	case si > oi:
		return 1
	default:
		return 0
	}
}

// Next returns the slice index immediately after s in a diagram of the
// given size, or (zero, false) if s is the last one (Target).
func (s SliceIndex) Next(size int) (SliceIndex, bool) {
	switch {
	case s.Kind == AtBoundary && s.Boundary == Source:
		return FromHeight(NewRegular(0)), true
	case s.Kind == AtInterior && s.Height.Kind == Regular && s.Height.Value == size:
		return FromBoundary(Target), true
	case s.Kind == AtInterior && s.Height.Kind == Regular:
		return FromHeight(NewSingular(s.Height.Value)), true
	case s.Kind == AtInterior && s.Height.Kind == Singular:
		return FromHeight(NewRegular(s.Height.Value + 1)), true
	default: // Target
		return SliceIndex{}, false
	}
}

// Prev returns the slice index immediately before s in a diagram of the
// given size, or (zero, false) if s is the first one (Source).
func (s SliceIndex) Prev(size int) (SliceIndex, bool) {
	switch {
	case s.Kind == AtBoundary && s.Boundary == Source:
		return SliceIndex{}, false
	case s.Kind == AtInterior && s.Height.Kind == Regular && s.Height.Value == 0:
		return FromBoundary(Source), true
	case s.Kind == AtInterior && s.Height.Kind == Regular:
		return FromHeight(NewSingular(s.Height.Value - 1)), true
	case s.Kind == AtInterior && s.Height.Kind == Singular:
		return FromHeight(NewRegular(s.Height.Value)), true
	default: // Target
		return FromHeight(NewRegular(size)), true
	}
}

// Step moves one slice in the given direction.
func (s SliceIndex) Step(size int, dir Direction) (SliceIndex, bool) {
	if dir == Forward {
		return s.Next(size)
	}
	return s.Prev(size)
}

func (s SliceIndex) String() string {
	if s.Kind == AtBoundary {
		return s.Boundary.String()
	}
	return s.Height.String()
}

// BoundaryPath names a boundary reached by descending `Depth` levels of
// interior slices before reaching a final Boundary step.
type BoundaryPath struct {
	Boundary Boundary
	Depth    int
}

// SplitBoundaryPath scans a slice-index path from the right: the last
// non-interior element, if any, fixes the boundary; every step scanned
// after it (to its left) adds one to Depth; interior steps to the right of
// the boundary marker are returned as the residual interior path, in
// original (left-to-right) order.
func SplitBoundaryPath(path []SliceIndex) (*BoundaryPath, []Height) {
	var bp *BoundaryPath
	var interior []Height

	for i := len(path) - 1; i >= 0; i-- {
		si := path[i]
		switch {
		case bp != nil:
			bp.Depth++
		case si.Kind == AtBoundary:
			bp = &BoundaryPath{Boundary: si.Boundary, Depth: 0}
		default:
			interior = append([]Height{si.Height}, interior...)
		}
	}

	return bp, interior
}

// Orientation is a sign with a Zero-absorbing, Positive-identity
// multiplication.
type Orientation int

const (
	Negative Orientation = iota - 1
	Zero
	Positive
)

// Mul multiplies two orientations: Zero absorbs, Positive is the identity,
// Negative*Negative = Positive.
func (o Orientation) Mul(other Orientation) Orientation {
	switch {
	case o == Zero || other == Zero:
		return Zero
	case o == Positive:
		return other
	case other == Positive:
		return o
	default: // both Negative
		return Positive
	}
}

func (o Orientation) String() string {
	switch o {
	case Negative:
		return "-"
	case Zero:
		return "0"
	default:
		return "+"
	}
}

// Mode controls whether checking/equality recurses into children (Deep) or
// stops at the current level (Shallow).
type Mode int

const (
	Deep Mode = iota
	Shallow
)

// Label is opaque metadata carried by a Rewrite0 for diagnostics. It plays
// no role in any equivalence or equality computed by this module.
type Label = any

// DimensionError reports a dimension mismatch between operands that were
// required to agree.
type DimensionError struct {
	Expected, Actual int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("common: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
