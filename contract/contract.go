package contract

import (
	"github.com/globular-io/globular/common"
	"github.com/globular-io/globular/diagram"
)

// Span connects the I'th and J'th diagrams passed to Contract through an
// apex M: B rewrites M to diagrams[I], F rewrites M to diagrams[J].
type Span struct {
	I, J int
	B    diagram.Rewrite
	M    diagram.Diagram
	F    diagram.Rewrite
}

// Result is a successful contraction: the colimit diagram, and one
// rewrite per input diagram into it, in input order.
type Result struct {
	Target   diagram.Diagram
	Rewrites []diagram.Rewrite
}

// Contract computes the colimit of diagrams under spans, honouring
// biases (lower wins ties). All diagrams must share one dimension, and
// every span's B, M, F must sit at that same dimension.
func Contract(diagrams []diagram.Diagram, biases []int, spans []Span) (Result, error) {
	if len(diagrams) == 0 {
		return Result{}, ErrNoDiagrams
	}
	if len(biases) != len(diagrams) {
		return Result{}, wrapf(ErrDimension, "contract: %d biases for %d diagrams", len(biases), len(diagrams))
	}
	dim := diagrams[0].Dimension()
	for i, d := range diagrams {
		if d.Dimension() != dim {
			return Result{}, wrapf(ErrDimension, "contract: diagram %d has dimension %d, want %d", i, d.Dimension(), dim)
		}
	}
	for _, sp := range spans {
		if sp.M.Dimension() != dim {
			return Result{}, wrapf(ErrDimension, "contract: span (%d,%d) apex has dimension %d, want %d", sp.I, sp.J, sp.M.Dimension(), dim)
		}
	}
	if dim == 0 {
		return contract0(diagrams, spans)
	}
	return contractN(dim, diagrams, biases, spans)
}

// contract0 is the union-find base case: diagrams whose generator agrees
// with a span's apex and both endpoints are merged, and the target is the
// unique maximum-dimension generator among the surviving components.
func contract0(diagrams []diagram.Diagram, spans []Span) (Result, error) {
	gens := make([]common.Generator, len(diagrams))
	for i, d := range diagrams {
		d0, ok := d.(diagram.Diagram0)
		if !ok {
			return Result{}, wrapf(ErrDimension, "contract0: diagram %d is not dimension 0", i)
		}
		gens[i] = d0.Generator
	}

	uf := newUnionFind(len(diagrams))
	for _, sp := range spans {
		m0, ok := sp.M.(diagram.Diagram0)
		if !ok {
			continue
		}
		if m0.Generator == gens[sp.I] && m0.Generator == gens[sp.J] {
			uf.union(sp.I, sp.J)
		}
	}

	maxDim := gens[0].Dimension
	for _, g := range gens[1:] {
		if g.Dimension > maxDim {
			maxDim = g.Dimension
		}
	}

	roots := make(map[int]int)
	for i, g := range gens {
		if g.Dimension != maxDim {
			continue
		}
		r := uf.find(i)
		if _, seen := roots[r]; !seen {
			roots[r] = i
		}
	}
	if len(roots) > 1 {
		return Result{}, wrapf(ErrAmbiguousContraction, "%d distinct maximum-dimension components", len(roots))
	}

	var rep int
	for _, i := range roots {
		rep = i
	}
	target := gens[rep]

	rewrites := make([]diagram.Rewrite, len(diagrams))
	for i, g := range gens {
		rewrites[i] = diagram.NewRewrite0(g, target, nil)
	}
	return Result{Target: diagram.FromGenerator(target), Rewrites: rewrites}, nil
}
