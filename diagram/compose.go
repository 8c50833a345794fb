package diagram

// Compose returns g after f (first apply f, then g), i.e. the rewrite
// g∘f. Dimension 0 composes by chaining the (source, target) pair when
// both operands carry one, and falls back to whichever operand is the
// no-generator placeholder. Dimension n>0 composes cone-by-cone: each
// g-cone absorbs whichever f-cones land inside the singular-height range
// it collapses, splicing their source cospans into its own and composing
// their slices with its own slice at that position; f-cones entirely
// outside every g-cone's range (i.e. where g passes through unchanged)
// carry over as-is.
func Compose(f, g Rewrite) (Rewrite, error) {
	if f.Dimension() != g.Dimension() {
		return nil, wrapf(ErrDimension, "compose: dims %d and %d", f.Dimension(), g.Dimension())
	}
	if f.Dimension() == 0 {
		return compose0(f.(Rewrite0), g.(Rewrite0)), nil
	}
	return composeN(f.(RewriteN), g.(RewriteN))
}

func compose0(f, g Rewrite0) Rewrite0 {
	fs, _, fok := f.Endpoints()
	gs, gt, gok := g.Endpoints()
	switch {
	case fok && gok:
		return NewRewrite0(fs, gt, g.Label())
	case fok && !gok:
		return f
	case !fok && gok:
		return NewRewrite0(gs, gt, g.Label())
	default:
		return IdentityRewrite0()
	}
}

func composeN(f, g RewriteN) (RewriteN, error) {
	dim := f.Dimension()

	absorbed := make([]bool, len(f.Cones()))
	var cones []Cone

	for _, gc := range g.Cones() {
		gs := gc.Index
		ge := gc.Index + gc.Width()

		for fi, fc := range f.Cones() {
			t := SingularImage(f, fc.Index)
			if t >= gs && t < ge {
				absorbed[fi] = true
			}
		}

		built, err := composeIntoCone(f, dim, gs, ge, gc)
		if err != nil {
			return RewriteN{}, err
		}
		cones = append(cones, built)
	}

	for fi, fc := range f.Cones() {
		if !absorbed[fi] {
			cones = append(cones, fc)
		}
	}

	return NewRewriteNUnsafe(dim, cones), nil
}

// composeIntoCone builds the cone of g∘f collapsing source singular
// heights that rewrite (via f) into g's target range [gs, ge).
func composeIntoCone(f RewriteN, dim, gs, ge int, gc Cone) (Cone, error) {
	aStart := SingularPreimage(f, gs).Start

	var source []Cospan
	var singular []Rewrite
	var regular []Rewrite

	for lp := 0; lp < ge-gs; lp++ {
		b := gs + lp
		fc, _ := ConeOverTarget(f, b)

		var localSource []Cospan
		var localSingular []Rewrite
		var localRegular []Rewrite
		if fc != nil {
			localSource = fc.Source
			localSingular = fc.SingularSlices
			localRegular = fc.RegularSlices
		} else {
			id := IdentityRewrite(dim - 1)
			localSource = []Cospan{gc.Source[lp]}
			localSingular = []Rewrite{id}
			localRegular = []Rewrite{id, id}
		}

		if lp == 0 {
			first, err := Compose(localRegular[0], gc.RegularSlices[0])
			if err != nil {
				return Cone{}, wrapf(ErrComposition, "cone at g-height %d: %v", gs, err)
			}
			regular = append(regular, first)
		}
		if len(localRegular) > 2 {
			regular = append(regular, localRegular[1:len(localRegular)-1]...)
		}
		last, err := Compose(localRegular[len(localRegular)-1], gc.RegularSlices[lp+1])
		if err != nil {
			return Cone{}, wrapf(ErrComposition, "cone at g-height %d: %v", gs, err)
		}
		regular = append(regular, last)

		source = append(source, localSource...)
		for _, s := range localSingular {
			composed, err := Compose(s, gc.SingularSlices[lp])
			if err != nil {
				return Cone{}, wrapf(ErrComposition, "cone at g-height %d: %v", gs, err)
			}
			singular = append(singular, composed)
		}
	}

	return Cone{
		Index:          aStart,
		Source:         source,
		Target:         gc.Target,
		RegularSlices:  regular,
		SingularSlices: singular,
	}, nil
}
