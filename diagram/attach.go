package diagram

import "github.com/globular-io/globular/common"

// Embeds reports whether sub occurs within d at the position named by
// embedding: a per-dimension list of cospan offsets, outermost dimension
// first. At dimension 0 it is generator equality; at dimension n it
// requires the embedding to place sub's cospan range inside d's, with
// sub's own source embedding (via the remaining offsets) into d's source.
func Embeds(d, sub Diagram, embedding []int) bool {
	if d.Dimension() != sub.Dimension() {
		return false
	}
	if d.Dimension() == 0 {
		return Equivalent(d, sub)
	}
	dn, ok1 := d.(DiagramN)
	sn, ok2 := sub.(DiagramN)
	if !ok1 || !ok2 || len(embedding) == 0 {
		return false
	}
	offset := embedding[0]
	if offset < 0 || offset+sn.Size() > dn.Size() {
		return false
	}
	if !Embeds(dn.Source(), sn.Source(), embedding[1:]) {
		return false
	}
	for i, c := range sn.Cospans() {
		if !cospanEquivalent(c, dn.Cospans()[offset+i]) {
			return false
		}
	}
	return true
}

// Attach grafts sub onto d's Source or Target boundary: sub's cospans are
// prepended (Source) or appended (Target) to d's own. Attachment is at the
// top level of that boundary only: the embedding argument is accepted but
// not read, and the only validation is that d and sub have the same
// dimension.
func Attach(d, sub DiagramN, boundary common.Boundary, embedding []int) (DiagramN, error) {
	_ = embedding
	if d.Dimension() != sub.Dimension() {
		return DiagramN{}, wrapf(ErrDimension, "attach: diagram dim %d, sub dim %d", d.Dimension(), sub.Dimension())
	}
	if boundary == common.Source {
		cospans := make([]Cospan, 0, sub.Size()+d.Size())
		cospans = append(cospans, sub.Cospans()...)
		cospans = append(cospans, d.Cospans()...)
		return NewDiagramNUnsafe(sub.Source(), cospans), nil
	}
	cospans := make([]Cospan, 0, d.Size()+sub.Size())
	cospans = append(cospans, d.Cospans()...)
	cospans = append(cospans, sub.Cospans()...)
	return NewDiagramNUnsafe(d.Source(), cospans), nil
}

// newDiagramNChecked is NewDiagramNUnsafe with an explicit
// dimension check, used by constructors that have a target dimension in
// hand before they have decided whether cospans are well-formed.
func newDiagramNChecked(source Diagram, cospans []Cospan) (DiagramN, error) {
	for i, c := range cospans {
		if c.Dimension() != source.Dimension() {
			return DiagramN{}, wrapf(ErrNewDiagram, "cospan %d has dimension %d, source has dimension %d", i, c.Dimension(), source.Dimension())
		}
	}
	return NewDiagramNUnsafe(source, cospans), nil
}

// NewDiagramN builds a DiagramN from a source and cospans, validating
// that every cospan's rewrites share the source's dimension. It does not
// perform the deeper commutativity checks package check does; callers
// that need those should follow construction with check.CheckDiagram.
func NewDiagramN(source Diagram, cospans []Cospan) (DiagramN, error) {
	return newDiagramNChecked(source, cospans)
}

// FromGeneratorN builds the atomic 1-dimensional diagram for generator g:
// a single cospan whose singular slice is Diagram0(g), with source and
// target (0-dimensional) rewriting into it. Returns ErrDimension if
// source or target is not one dimension below g.
func FromGeneratorN(g common.Generator, source, target Diagram0) (DiagramN, error) {
	if source.Dimension()+1 != g.Dimension || target.Dimension()+1 != g.Dimension {
		return DiagramN{}, wrapf(ErrDimension, "from_generator: generator dim %d, source/target dim %d/%d", g.Dimension, source.Dimension(), target.Dimension())
	}
	cospan := Cospan{
		Forward:  NewRewrite0(source.Generator, g, nil),
		Backward: NewRewrite0(target.Generator, g, nil),
	}
	return newDiagramNChecked(source, []Cospan{cospan})
}
