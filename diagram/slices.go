package diagram

import "github.com/globular-io/globular/common"

// Apply is the dimension-generic rewrite application: at dimension 0 it
// checks and swaps a generator, at dimension n>0 it dispatches to
// RewriteForward. Target and Slices use it to walk a DiagramN's own
// cospans one dimension down from d itself; package check and package
// factor call it directly for the same recursion.
func Apply(d Diagram, r Rewrite) (Diagram, error) {
	if d.Dimension() != r.Dimension() {
		return nil, wrapf(ErrDimension, "apply: diagram dim %d, rewrite dim %d", d.Dimension(), r.Dimension())
	}
	if d.Dimension() == 0 {
		d0 := d.(Diagram0)
		r0 := r.(Rewrite0)
		src, tgt, ok := r0.Endpoints()
		if !ok {
			return d0, nil
		}
		if d0.Generator != src {
			return nil, wrapf(ErrIncompatibleRewrite, "apply: generator %s does not match rewrite source %s", d0.Generator, src)
		}
		return Diagram0{Generator: tgt}, nil
	}
	return RewriteForward(d.(DiagramN), r.(RewriteN))
}

// ApplyBackward is the inverse of Apply: given the diagram r's
// forward application would have produced, recover the diagram it was
// produced from.
func ApplyBackward(d Diagram, r Rewrite) (Diagram, error) {
	if d.Dimension() != r.Dimension() {
		return nil, wrapf(ErrDimension, "apply_backward: diagram dim %d, rewrite dim %d", d.Dimension(), r.Dimension())
	}
	if d.Dimension() == 0 {
		d0 := d.(Diagram0)
		r0 := r.(Rewrite0)
		src, tgt, ok := r0.Endpoints()
		if !ok {
			return d0, nil
		}
		if d0.Generator != tgt {
			return nil, wrapf(ErrIncompatibleRewrite, "apply_backward: generator %s does not match rewrite target %s", d0.Generator, tgt)
		}
		return Diagram0{Generator: src}, nil
	}
	return RewriteBackward(d.(DiagramN), r.(RewriteN))
}

// Target returns d's target: the regular slice reached after walking
// every cospan, applying forward then backward from the source.
func Target(d DiagramN) (Diagram, error) {
	r := d.Source()
	for i, c := range d.Cospans() {
		s, err := Apply(r, c.Forward)
		if err != nil {
			return nil, wrapf(ErrNewDiagram, "target: cospan %d forward: %v", i, err)
		}
		r, err = ApplyBackward(s, c.Backward)
		if err != nil {
			return nil, wrapf(ErrNewDiagram, "target: cospan %d backward: %v", i, err)
		}
	}
	return r, nil
}

// Slices returns every regular and singular slice of d, in ascending
// order: source, singular(0), regular(1), singular(1), ..., target. The
// length is always 2*Size()+1.
func Slices(d DiagramN) ([]Diagram, error) {
	out := make([]Diagram, 0, 2*d.Size()+1)
	r := d.Source()
	out = append(out, r)
	for i, c := range d.Cospans() {
		s, err := Apply(r, c.Forward)
		if err != nil {
			return nil, wrapf(ErrNewDiagram, "slices: cospan %d forward: %v", i, err)
		}
		out = append(out, s)
		r, err = ApplyBackward(s, c.Backward)
		if err != nil {
			return nil, wrapf(ErrNewDiagram, "slices: cospan %d backward: %v", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// Slice returns the single slice of d at the given index: Source and
// Target resolve directly, an interior index looks it up in Slices.
func Slice(d DiagramN, at common.SliceIndex) (Diagram, error) {
	if at.Kind == common.AtBoundary {
		if at.Boundary == common.Source {
			return d.Source(), nil
		}
		return Target(d)
	}
	all, err := Slices(d)
	if err != nil {
		return nil, err
	}
	i := at.Height.Index()
	if i < 0 || i >= len(all) {
		return nil, wrapf(ErrNotFound, "slice: height %s out of range for size %d", at.Height, d.Size())
	}
	return all[i], nil
}

// Identity returns the (dim+1)-dimensional diagram whose sole slice,
// source and target, is d.
func Identity(d Diagram) DiagramN {
	return NewDiagramNUnsafe(d, nil)
}

// FromGenerator builds the diagram consisting of exactly one generator.
func FromGenerator(g common.Generator) Diagram0 { return NewDiagram0(g) }
