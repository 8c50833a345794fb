// Package factor implements the factorisation engine: given rewrites f, g
// sharing a target and dimension, Factorize lazily enumerates every h
// with f ≡ g ∘ h. The enumeration walks target singular heights, guesses
// a monotone assignment of each relevant cone's source slices onto the
// matching cone of g, and recursively factorises one dimension down;
// nothing is buffered beyond what the caller actually consumes.
package factor

import (
	"sort"

	"github.com/globular-io/globular/diagram"
	"github.com/globular-io/globular/monotone"
)

// Factorize returns every h with f ≡ g ∘ h, in no specified order, under
// the precondition that f and g share a target and dimension.
func Factorize(f, g diagram.Rewrite) Seq[diagram.Rewrite] {
	switch fv := f.(type) {
	case diagram.Rewrite0:
		gv, ok := g.(diagram.Rewrite0)
		if !ok {
			return none[diagram.Rewrite]()
		}
		return factorize0(fv, gv)
	case diagram.RewriteN:
		gv, ok := g.(diagram.RewriteN)
		if !ok || fv.Dimension() != gv.Dimension() {
			return none[diagram.Rewrite]()
		}
		return factorizeN(fv, gv)
	default:
		return none[diagram.Rewrite]()
	}
}

// factorize0 is the dimension-0 base case: a labelled rewrite is
// determined entirely by its (source, target) pair, so there is at most
// one factorisation.
func factorize0(f, g diagram.Rewrite0) Seq[diagram.Rewrite] {
	gs, _, gok := g.Endpoints()
	if !gok {
		// g is the identity: f itself is the unique h with f = id ∘ h.
		return one[diagram.Rewrite](f)
	}
	fs, _, fok := f.Endpoints()
	if !fok || fs.Dimension > gs.Dimension {
		return none[diagram.Rewrite]()
	}
	return one[diagram.Rewrite](diagram.NewRewrite0(fs, gs, nil))
}

func factorizeN(f, g diagram.RewriteN) Seq[diagram.Rewrite] {
	if g.IsIdentity() {
		return one[diagram.Rewrite](f)
	}
	if diagram.RewriteEquivalent(f, g) {
		return one[diagram.Rewrite](diagram.IdentityRewriteN(f.Dimension()))
	}

	heights := targetHeights(f, g)
	factories := make([]func() Seq[[]diagram.Cone], len(heights))
	for idx, h := range heights {
		h := h
		factories[idx] = func() Seq[[]diagram.Cone] { return heightSeq(f, g, h) }
	}

	dim := f.Dimension()
	return mapFilter(product(factories), func(groups [][]diagram.Cone) (diagram.Rewrite, bool) {
		var cones []diagram.Cone
		for _, grp := range groups {
			cones = append(cones, grp...)
		}
		return diagram.NewRewriteNUnsafe(dim, cones), true
	})
}

// targetHeights returns the sorted, deduplicated set of target singular
// heights at which f or g has a cone.
func targetHeights(f, g diagram.RewriteN) []int {
	seen := make(map[int]bool)
	for _, h := range coneTargets(f) {
		seen[h] = true
	}
	for _, h := range coneTargets(g) {
		seen[h] = true
	}
	out := make([]int, 0, len(seen))
	for h := range seen {
		out = append(out, h)
	}
	sort.Ints(out)
	return out
}

func coneTargets(r diagram.RewriteN) []int {
	offset := 0
	out := make([]int, 0, len(r.Cones()))
	for _, c := range r.Cones() {
		out = append(out, c.Index+offset)
		offset += 1 - c.Width()
	}
	return out
}

// heightSeq enumerates, for one target singular height, the alternative
// groups of h-cones that could produce it: one group per (monotone
// assignment, recursive-slice-choice) combination, or a single
// already-determined group when no guessing is needed.
func heightSeq(f, g diagram.RewriteN, height int) Seq[[]diagram.Cone] {
	fCone, fPass := diagram.ConeOverTarget(f, height)
	offset := fPass
	if fCone != nil {
		offset = fCone.Index
	}

	gCone, _ := diagram.ConeOverTarget(g, height)
	if gCone == nil {
		// g passes straight through: so must h, carrying over whatever
		// cone (if any) f already has here.
		if fCone != nil {
			return one[[]diagram.Cone]([]diagram.Cone{*fCone})
		}
		return one[[]diagram.Cone](nil)
	}

	if fCone != nil && conesMatch(*fCone, *gCone) {
		// f already agrees with g here: no h-cone needed.
		return one[[]diagram.Cone](nil)
	}

	fLen := 1
	if fCone != nil {
		fLen = fCone.Width()
	}
	constraints := make([]monotone.Constraint, fLen)
	for i := range constraints {
		constraints[i] = monotone.Constraint{Start: 0, End: gCone.Width()}
	}
	mono := monotone.New(false, constraints)

	return &monotoneHeightSeq{
		fCone:  fCone,
		gCone:  *gCone,
		offset: offset,
		mono:   mono,
	}
}

// monotoneHeightSeq flattens the enumeration across monotone assignments:
// for each assignment it builds the product of per-split cone choices,
// drains it, then pulls the next assignment.
type monotoneHeightSeq struct {
	fCone  *diagram.Cone
	gCone  diagram.Cone
	offset int
	mono   *monotone.Iterator
	cur    Seq[[]diagram.Cone]
}

func (m *monotoneHeightSeq) Next() ([]diagram.Cone, bool) {
	for {
		if m.cur == nil {
			seq := m.mono.Next()
			if seq == nil {
				return nil, false
			}
			m.cur = splitProduct(m.fCone, m.gCone, m.offset, seq)
		}
		if v, ok := m.cur.Next(); ok {
			return v, true
		}
		m.cur = nil
	}
}

// splitProduct builds the Cartesian product, across the contiguous runs
// a monotone assignment groups f's source slices into, of that run's
// candidate h-cones.
func splitProduct(fCone *diagram.Cone, gCone diagram.Cone, offset int, assignment monotone.Sequence) Seq[[]diagram.Cone] {
	n := gCone.Width()
	factories := make([]func() Seq[diagram.Cone], n)
	start := 0
	for t := 0; t < n; t++ {
		end := start
		for end < len(assignment) && assignment[end] == t {
			end++
		}
		s, e := start, end
		factories[t] = func() Seq[diagram.Cone] { return coneIterator(fCone, gCone, offset, s, e, t) }
		start = end
	}
	return product(factories)
}

// coneIterator enumerates candidate h-cones for one (source range, target
// index) split: every combination of recursive factorisations of the
// range's regular/singular slices against g's chosen slice, filtered to
// those that pass a shallow shape check.
func coneIterator(fCone *diagram.Cone, gCone diagram.Cone, offset, start, end, target int) Seq[diagram.Cone] {
	gSlice := gCone.SingularSlices[target]

	height := func(h int) diagram.Rewrite {
		if fCone == nil {
			return diagram.IdentityRewrite(gSlice.Dimension())
		}
		if h%2 == 0 {
			return fCone.RegularSlices[h/2]
		}
		return fCone.SingularSlices[h/2]
	}

	n := 2*(end-start) + 1
	factories := make([]func() Seq[diagram.Rewrite], n)
	for k := 0; k < n; k++ {
		h := 2*start + k
		factories[k] = func() Seq[diagram.Rewrite] { return Factorize(height(h), gSlice) }
	}

	index := offset + start
	var source []diagram.Cospan
	if end > start {
		if fCone != nil {
			source = append(source, fCone.Source[start:end]...)
		} else {
			source = []diagram.Cospan{gCone.Target}
		}
	}
	targetCospan := gCone.Source[target]

	return mapFilter(product(factories), func(slices []diagram.Rewrite) (diagram.Cone, bool) {
		regular := make([]diagram.Rewrite, 0, len(slices)/2+1)
		singular := make([]diagram.Rewrite, 0, len(slices)/2)
		for i, s := range slices {
			if i%2 == 0 {
				regular = append(regular, s)
			} else {
				singular = append(singular, s)
			}
		}
		cone := diagram.Cone{
			Index:          index,
			Source:         source,
			Target:         targetCospan,
			RegularSlices:  regular,
			SingularSlices: singular,
		}
		return cone, shapeOK(cone)
	})
}

// shapeOK is the shallow structural check factorisation applies before
// emitting a candidate cone: full well-formedness (commutativity) is left
// to package check.
func shapeOK(c diagram.Cone) bool {
	return len(c.RegularSlices) == len(c.Source)+1 && len(c.SingularSlices) == len(c.Source)
}

// conesMatch reports whether two cones (from different rewrites, so
// their own Index fields are not comparable) describe the same
// transformation: equivalent source and target cospans and equivalent
// slices, modulo labels.
func conesMatch(a, b diagram.Cone) bool {
	if len(a.Source) != len(b.Source) {
		return false
	}
	if !cospansEquivalent(a.Target, b.Target) {
		return false
	}
	for i := range a.Source {
		if !cospansEquivalent(a.Source[i], b.Source[i]) {
			return false
		}
	}
	if len(a.RegularSlices) != len(b.RegularSlices) || len(a.SingularSlices) != len(b.SingularSlices) {
		return false
	}
	for i := range a.RegularSlices {
		if !diagram.RewriteEquivalent(a.RegularSlices[i], b.RegularSlices[i]) {
			return false
		}
	}
	for i := range a.SingularSlices {
		if !diagram.RewriteEquivalent(a.SingularSlices[i], b.SingularSlices[i]) {
			return false
		}
	}
	return true
}

func cospansEquivalent(a, b diagram.Cospan) bool {
	return diagram.RewriteEquivalent(a.Forward, b.Forward) && diagram.RewriteEquivalent(a.Backward, b.Backward)
}
