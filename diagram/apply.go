package diagram

// RewriteForward applies r to d, splicing each cone's source range of
// cospans down to its single target cospan. Returns ErrIncompatibleRewrite
// if a cone's declared source does not match d's cospans at that range.
func RewriteForward(d DiagramN, r RewriteN) (DiagramN, error) {
	if d.Dimension() != r.Dimension() {
		return DiagramN{}, wrapf(ErrDimension, "rewrite_forward: diagram dim %d, rewrite dim %d", d.Dimension(), r.Dimension())
	}

	cospans := d.Cospans()
	out := make([]Cospan, 0, len(cospans))
	pos := 0
	for _, cone := range r.Cones() {
		if cone.Index > len(cospans) || cone.Index < pos {
			return DiagramN{}, wrapf(ErrNotFound, "rewrite_forward: cone index %d out of order/range", cone.Index)
		}
		out = append(out, cospans[pos:cone.Index]...)
		end := cone.Index + cone.Width()
		if end > len(cospans) {
			return DiagramN{}, wrapf(ErrNotFound, "rewrite_forward: cone at %d exceeds diagram size %d", cone.Index, len(cospans))
		}
		for k, c := range cospans[cone.Index:end] {
			if !cospanEquivalent(c, cone.Source[k]) {
				return DiagramN{}, wrapf(ErrIncompatibleRewrite, "rewrite_forward: cone at %d does not match diagram at height %d", cone.Index, cone.Index+k)
			}
		}
		out = append(out, cone.Target)
		pos = end
	}
	out = append(out, cospans[pos:]...)

	return NewDiagramNUnsafe(d.Source(), out), nil
}

// RewriteBackward applies r in reverse to d, expanding each cone's single
// target cospan back into its source range. d is expected to already hold
// the collapsed (post-forward) cospans; ErrIncompatibleRewrite is
// returned if a cone's target does not match.
func RewriteBackward(d DiagramN, r RewriteN) (DiagramN, error) {
	if d.Dimension() != r.Dimension() {
		return DiagramN{}, wrapf(ErrDimension, "rewrite_backward: diagram dim %d, rewrite dim %d", d.Dimension(), r.Dimension())
	}

	cospans := d.Cospans()
	out := make([]Cospan, 0, len(cospans))
	offset := 0
	pos := 0
	for _, cone := range r.Cones() {
		target := cone.Index + offset
		if target > len(cospans) || target < pos {
			return DiagramN{}, wrapf(ErrNotFound, "rewrite_backward: cone index %d out of order/range", cone.Index)
		}
		out = append(out, cospans[pos:target]...)
		if target >= len(cospans) || !cospanEquivalent(cospans[target], cone.Target) {
			return DiagramN{}, wrapf(ErrIncompatibleRewrite, "rewrite_backward: cone at %d does not match target cospan at height %d", cone.Index, target)
		}
		out = append(out, cone.Source...)
		offset += 1 - cone.Width()
		pos = target + 1
	}
	out = append(out, cospans[pos:]...)

	return NewDiagramNUnsafe(d.Source(), out), nil
}
