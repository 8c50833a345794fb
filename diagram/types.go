package diagram

import (
	"github.com/globular-io/globular/common"
)

// Diagram is the sealed union of Diagram0 and DiagramN. It plays the role
// the teacher's core.Graph interface plays for graphs: a stable surface
// that hides which concrete shape a value has, queried with Dimension and
// narrowed with a type switch at the call site.
type Diagram interface {
	// Dimension returns the dimension of the diagram: 0 for a generator,
	// or one more than its source's dimension for a DiagramN.
	Dimension() int
	isDiagram()
}

// Rewrite is the sealed union of Rewrite0 and RewriteN.
type Rewrite interface {
	// Dimension returns the dimension of the rewrite: the dimension of the
	// diagrams it maps between.
	Dimension() int
	isRewrite()
}

// Diagram0 is a 0-dimensional diagram: a single generator.
type Diagram0 struct {
	Generator common.Generator
}

func (Diagram0) isDiagram()        {}
func (d Diagram0) Dimension() int  { return 0 }
func (d Diagram0) String() string  { return d.Generator.String() }

// NewDiagram0 wraps a generator as a 0-diagram.
func NewDiagram0(g common.Generator) Diagram0 { return Diagram0{Generator: g} }

// Cospan is the elementary building block of a DiagramN: a pair of rewrites
// sharing a target, describing how one singular slice's regular
// neighbours both map into it.
type Cospan struct {
	Forward, Backward Rewrite
}

// Dimension returns the dimension of the cospan's rewrites.
func (c Cospan) Dimension() int { return c.Forward.Dimension() }

// DiagramN is an (n>0)-dimensional diagram: a source diagram of dimension
// n-1 together with the sequence of cospans that rewrite it, slice by
// slice, to its target.
//
// DiagramN wraps its fields in a pointer-shared internal struct, mirroring
// how the teacher's core.Graph shares adjacency maps across copies instead
// of deep-copying on every pass-by-value: a DiagramN value is cheap to
// copy and two copies of the same value compare equal.
type DiagramN struct {
	inner *diagramNData
}

type diagramNData struct {
	source  Diagram
	cospans []Cospan
}

func (DiagramN) isDiagram() {}

// Dimension returns one more than the source's dimension.
func (d DiagramN) Dimension() int { return d.inner.source.Dimension() + 1 }

// Source returns the diagram's source (the slice at Source boundary).
func (d DiagramN) Source() Diagram { return d.inner.source }

// Cospans returns the diagram's cospans. The returned slice must not be
// mutated by the caller.
func (d DiagramN) Cospans() []Cospan { return d.inner.cospans }

// Size returns the number of cospans (equivalently, the number of
// singular slices).
func (d DiagramN) Size() int { return len(d.inner.cospans) }

// CacheKey returns a value usable as a map key to identify this DiagramN
// by identity (not structural equality), for memoisation.
func (d DiagramN) CacheKey() any { return d.inner }

// NewDiagramNUnsafe builds a DiagramN from a source and cospans without
// validating well-formedness. Used internally once a caller has already
// established the invariants hold (e.g. contraction, factorisation), and
// by NewDiagramN after a successful check.
func NewDiagramNUnsafe(source Diagram, cospans []Cospan) DiagramN {
	cp := make([]Cospan, len(cospans))
	copy(cp, cospans)
	return DiagramN{inner: &diagramNData{source: source, cospans: cp}}
}

// Rewrite0 is a 0-dimensional rewrite: either the distinguished
// no-generator rewrite (used as the identity placeholder at dimension 0,
// since there is no generator for identity(0) to name), or a labelled
// rewrite from one generator to another.
type Rewrite0 struct {
	pair *rewrite0Pair
}

type rewrite0Pair struct {
	Source, Target common.Generator
	Label          common.Label
}

func (Rewrite0) isRewrite()       {}
func (Rewrite0) Dimension() int   { return 0 }

// IdentityRewrite0 returns the no-generator placeholder rewrite used as
// identity(0).
func IdentityRewrite0() Rewrite0 { return Rewrite0{} }

// NewRewrite0 builds a labelled rewrite between two generators.
func NewRewrite0(source, target common.Generator, label common.Label) Rewrite0 {
	return Rewrite0{pair: &rewrite0Pair{Source: source, Target: target, Label: label}}
}

// Endpoints reports the (source, target) pair of a labelled Rewrite0, and
// false if r is the no-generator placeholder.
func (r Rewrite0) Endpoints() (source, target common.Generator, ok bool) {
	if r.pair == nil {
		return common.Generator{}, common.Generator{}, false
	}
	return r.pair.Source, r.pair.Target, true
}

// Label returns the rewrite's attached label, or nil if r has no pair.
func (r Rewrite0) Label() common.Label {
	if r.pair == nil {
		return nil
	}
	return r.pair.Label
}

// Cone is the atomic unit of a RewriteN: a contiguous run of `len(Source)`
// singular slices in the rewrite's source, collapsed to a single singular
// slice (Target) in the rewrite's target, together with the (n-1)-
// dimensional slices bridging the two.
//
// Invariants (checked by package check, assumed by everything here):
//  1. RegularSlices[0] is equivalent to Target.Forward and
//     RegularSlices[len(RegularSlices)-1] to Target.Backward.
//  2. len(RegularSlices) == len(Source)+1 and len(SingularSlices) ==
//     len(Source).
//  3. for each j, Source[j].Forward composed with SingularSlices[j] is
//     equivalent to RegularSlices[j], and Source[j].Backward composed with
//     SingularSlices[j] is equivalent to RegularSlices[j+1].
type Cone struct {
	// Index is the first singular height (in the rewrite's source) this
	// cone consumes.
	Index int

	Source         []Cospan
	Target         Cospan
	RegularSlices  []Rewrite
	SingularSlices []Rewrite
}

// Width is the number of source singular slices this cone consumes.
func (c Cone) Width() int { return len(c.Source) }

// RewriteN is an (n>0)-dimensional rewrite: an ordered, disjoint sequence
// of cones acting on the singular slices of a source DiagramN.
//
// Like DiagramN, RewriteN shares its data through a pointer: two RewriteN
// values built from the same NewRewriteNUnsafe call compare equal as map
// keys, which package check relies on to memoise well-formedness checks
// across a diagram's shared substructure.
type RewriteN struct {
	inner *rewriteNData
}

type rewriteNData struct {
	dimension int
	cones     []Cone
}

func (RewriteN) isRewrite() {}

// Dimension returns the rewrite's dimension.
func (r RewriteN) Dimension() int { return r.inner.dimension }

// Cones returns the rewrite's cones, in ascending Index order. The
// returned slice must not be mutated by the caller.
func (r RewriteN) Cones() []Cone { return r.inner.cones }

// CacheKey returns a value usable as a map key to identify this RewriteN
// by identity (not structural equality), for memoisation.
func (r RewriteN) CacheKey() any { return r.inner }

// IdentityRewriteN returns the cone-less identity rewrite of the given
// dimension.
func IdentityRewriteN(dimension int) RewriteN {
	return RewriteN{inner: &rewriteNData{dimension: dimension}}
}

// IdentityRewrite returns the identity rewrite of the given dimension,
// dispatching to the Rewrite0 placeholder at dimension 0.
func IdentityRewrite(dimension int) Rewrite {
	if dimension == 0 {
		return IdentityRewrite0()
	}
	return IdentityRewriteN(dimension)
}

// NewRewriteNUnsafe builds a RewriteN from cones without validating
// disjointness or ordering. The cones are sorted by Index as a
// convenience; no other invariant is checked.
func NewRewriteNUnsafe(dimension int, cones []Cone) RewriteN {
	cp := make([]Cone, len(cones))
	copy(cp, cones)
	sortConesByIndex(cp)
	return RewriteN{inner: &rewriteNData{dimension: dimension, cones: cp}}
}

// IsIdentity reports whether r has no cones (so acts as the identity,
// though it may still carry a nonzero dimension).
func (r RewriteN) IsIdentity() bool { return len(r.inner.cones) == 0 }

func sortConesByIndex(cones []Cone) {
	// insertion sort: cone counts are small (bounded by diagram size) and
	// this keeps the package free of a sort.Slice closure allocation on
	// every construction.
	for i := 1; i < len(cones); i++ {
		for j := i; j > 0 && cones[j-1].Index > cones[j].Index; j-- {
			cones[j-1], cones[j] = cones[j], cones[j-1]
		}
	}
}

// Range is a half-open integer interval [Start, End) of singular or
// regular heights, returned by the preimage queries.
type Range struct {
	Start, End int
}

// Len returns End-Start.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether i falls in [Start, End).
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }
