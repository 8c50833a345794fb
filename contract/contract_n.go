package contract

import "github.com/globular-io/globular/diagram"

// contractN is the recursive case (dim >= 1): build the auxiliary
// multigraph over singular heights, find its SCCs, recursively contract
// each one dimension down, linearise the SCCs into the target's height
// order, then assemble the target diagram and per-input rewrites.
func contractN(dim int, diagrams []diagram.Diagram, biases []int, spans []Span) (Result, error) {
	dn := make([]diagram.DiagramN, len(diagrams))
	sizes := make([]int, len(diagrams))
	slices := make([][]diagram.Diagram, len(diagrams))
	for i, d := range diagrams {
		v, ok := d.(diagram.DiagramN)
		if !ok {
			return Result{}, wrapf(ErrDimension, "contractN: diagram %d is not dimension %d", i, dim)
		}
		dn[i] = v
		sizes[i] = v.Size()
		ss, err := diagram.Slices(v)
		if err != nil {
			return Result{}, wrapf(ErrDimension, "contractN: diagram %d: %v", i, err)
		}
		slices[i] = ss
	}

	g := newAuxGraph(sizes)

	for i, v := range dn {
		cospans := v.Cospans()
		for h := 0; h+1 < sizes[i]; h++ {
			sp := Span{
				I: g.id(i, h), J: g.id(i, h+1),
				B: cospans[h].Backward,
				M: slices[i][2*h+2],
				F: cospans[h+1].Forward,
			}
			g.addSpanEdge(sp)
			g.addConnEdge(sp.I, sp.J)
			g.addConnEdge(sp.J, sp.I)
		}
	}

	for _, usp := range spans {
		mn, ok := usp.M.(diagram.DiagramN)
		if !ok {
			continue
		}
		b, bok := usp.B.(diagram.RewriteN)
		f, fok := usp.F.(diagram.RewriteN)
		if !bok || !fok {
			continue
		}
		mSlices, err := diagram.Slices(mn)
		if err != nil {
			return Result{}, wrapf(ErrDimension, "contractN: span (%d,%d) apex: %v", usp.I, usp.J, err)
		}
		for h := 0; h < mn.Size(); h++ {
			hi := diagram.SingularImage(b, h)
			hj := diagram.SingularImage(f, h)
			sp := Span{
				I: g.id(usp.I, hi), J: g.id(usp.J, hj),
				B: diagram.RewriteSlice(b, h),
				M: mSlices[2*h+1],
				F: diagram.RewriteSlice(f, h),
			}
			g.addSpanEdge(sp)
			g.addConnEdge(sp.I, sp.J)
			g.addConnEdge(sp.J, sp.I)
		}
	}

	sccs, order, err := linearise(g, biases)
	if err != nil {
		return Result{}, err
	}

	nodeRewrite := make([]diagram.Rewrite, g.n)
	for c, nodes := range sccs {
		inSCC := make(map[int]int, len(nodes))
		for local, v := range nodes {
			inSCC[v] = local
		}

		sub := make([]diagram.Diagram, len(nodes))
		subBias := make([]int, len(nodes))
		for local, v := range nodes {
			sub[local] = slices[g.owner[v]][2*g.height[v]+1]
			subBias[local] = 0
		}

		var subSpans []Span
		for _, sp := range g.spans {
			li, iok := inSCC[sp.I]
			lj, jok := inSCC[sp.J]
			if !iok || !jok {
				continue
			}
			subSpans = append(subSpans, Span{I: li, J: lj, B: sp.B, M: sp.M, F: sp.F})
		}

		res, err := Contract(sub, subBias, subSpans)
		if err != nil {
			return Result{}, wrapf(ErrRecursiveContraction, "component %d: %v", c, err)
		}
		for local, v := range nodes {
			nodeRewrite[v] = res.Rewrites[local]
		}
	}

	return assemble(dim, dn, sizes, slices, g, sccs, order, nodeRewrite)
}
