package contract

import (
	"sort"

	"github.com/globular-io/globular/diagram"
)

// assemble builds the target diagram and per-input rewrites from a
// linearised SCC list: each SCC contributes one cospan to the target,
// built from its first and last node (sorted by diagram index then
// height) composed with the rewrite the recursive contraction produced
// for that node; each input diagram then distributes its own
// height-level rewrites across the resulting target positions.
//
func assemble(
	dim int,
	dn []diagram.DiagramN,
	sizes []int,
	slices [][]diagram.Diagram,
	g *auxGraph,
	sccs [][]int,
	order []int,
	nodeRewrite []diagram.Rewrite,
) (Result, error) {
	posOf := make([]int, len(sccs))
	for p, c := range order {
		posOf[c] = p
	}
	nodeSCC := make([]int, g.n)
	for c, nodes := range sccs {
		for _, v := range nodes {
			nodeSCC[v] = c
		}
	}

	cospans := make([]diagram.Cospan, len(order))
	var targetSource diagram.Diagram
	for p, c := range order {
		nodes := append([]int(nil), sccs[c]...)
		sort.Slice(nodes, func(i, j int) bool {
			oi, oj := g.owner[nodes[i]], g.owner[nodes[j]]
			if oi != oj {
				return oi < oj
			}
			return g.height[nodes[i]] < g.height[nodes[j]]
		})
		first, last := nodes[0], nodes[len(nodes)-1]

		fc := dn[g.owner[first]].Cospans()[g.height[first]]
		lc := dn[g.owner[last]].Cospans()[g.height[last]]

		composedF, err := diagram.Compose(fc.Forward, nodeRewrite[first])
		if err != nil {
			return Result{}, wrapf(ErrRecursiveContraction, "target cospan %d forward: %v", p, err)
		}
		composedB, err := diagram.Compose(lc.Backward, nodeRewrite[last])
		if err != nil {
			return Result{}, wrapf(ErrRecursiveContraction, "target cospan %d backward: %v", p, err)
		}
		cospans[p] = diagram.Cospan{Forward: composedF, Backward: composedB}

		if p == 0 {
			targetSource = slices[g.owner[first]][2*g.height[first]]
		}
	}
	target := diagram.NewDiagramNUnsafe(targetSource, cospans)

	idm1 := diagram.IdentityRewrite(dim - 1)
	rewrites := make([]diagram.Rewrite, len(dn))
	for i, v := range dn {
		cospansI := v.Cospans()
		var cones []diagram.Cone
		h := 0
		for h < sizes[i] {
			pos := posOf[nodeSCC[g.id(i, h)]]
			end := h + 1
			for end < sizes[i] && posOf[nodeSCC[g.id(i, end)]] == pos {
				end++
			}

			width := end - h
			source := cospansI[h:end]
			singular := make([]diagram.Rewrite, width)
			for k := h; k < end; k++ {
				singular[k-h] = nodeRewrite[g.id(i, k)]
			}

			// Regular boundaries are built the same way package diagram's
			// own compose does when folding a run of source slices into
			// one target cone: RegularSlices[j] = Source[j].Forward ∘
			// SingularSlices[j], except the final boundary which closes
			// with Source[width-1].Backward. The interior values this
			// produces agree with the alternative Backward-based formula
			// at the previous index precisely because the recursive
			// contraction that produced SingularSlices already satisfies
			// the commutation property between adjacent same-component
			// heights.
			regular := make([]diagram.Rewrite, width+1)
			for k := 0; k < width; k++ {
				rk, err := diagram.Compose(source[k].Forward, singular[k])
				if err != nil {
					return Result{}, wrapf(ErrRecursiveContraction, "diagram %d cone at %d: regular %d: %v", i, h, k, err)
				}
				regular[k] = rk
			}
			last, err := diagram.Compose(source[width-1].Backward, singular[width-1])
			if err != nil {
				return Result{}, wrapf(ErrRecursiveContraction, "diagram %d cone at %d: closing regular: %v", i, h, err)
			}
			regular[width] = last

			cone := diagram.Cone{
				Index:          h,
				Source:         source,
				Target:         cospans[pos],
				RegularSlices:  regular,
				SingularSlices: singular,
			}
			if !(width == 1 && diagram.RewriteEquivalent(singular[0], idm1)) {
				cones = append(cones, cone)
			}
			h = end
		}
		rewrites[i] = diagram.NewRewriteNUnsafe(dim, cones)
	}

	return Result{Target: target, Rewrites: rewrites}, nil
}
