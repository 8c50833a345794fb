package contract

import "sort"

// linearise turns the auxiliary graph's SCCs into a deterministic target
// order: components are collapsed to a DAG via the forward span edges,
// each given a (depth, bias) priority, and sorted lexicographically.
// Depth is the longest path from any root into the component; bias is
// the minimum input bias among the diagrams contributing a node to it.
// Two adjacent components comparing equal is reported as ambiguous.
func linearise(g *auxGraph, biases []int) (sccs [][]int, order []int, err error) {
	raw := g.tarjanSCCs()
	sccs = make([][]int, len(raw))
	for i, c := range raw {
		sccs[len(raw)-1-i] = c
	}

	nodeSCC := make([]int, g.n)
	for c, nodes := range sccs {
		for _, v := range nodes {
			nodeSCC[v] = c
		}
	}

	preds := make([][]int, len(sccs))
	seenEdge := make(map[[2]int]bool)
	for _, sp := range g.spans {
		from, to := nodeSCC[sp.I], nodeSCC[sp.J]
		if from == to {
			continue
		}
		key := [2]int{from, to}
		if seenEdge[key] {
			continue
		}
		seenEdge[key] = true
		preds[to] = append(preds[to], from)
	}

	depth := make([]int, len(sccs))
	bias := make([]int, len(sccs))
	for c, nodes := range sccs {
		best := depth[c]
		for _, p := range preds[c] {
			if depth[p]+1 > best {
				best = depth[p] + 1
			}
		}
		depth[c] = best

		b := biases[g.owner[nodes[0]]]
		for _, v := range nodes[1:] {
			if biases[g.owner[v]] < b {
				b = biases[g.owner[v]]
			}
		}
		bias[c] = b
	}

	order = make([]int, len(sccs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if depth[a] != depth[b] {
			return depth[a] < depth[b]
		}
		return bias[a] < bias[b]
	})
	for i := 1; i < len(order); i++ {
		a, b := order[i-1], order[i]
		if depth[a] == depth[b] && bias[a] == bias[b] {
			return nil, nil, wrapf(ErrAmbiguousContraction, "components %d and %d tie at depth %d, bias %d", a, b, depth[a], bias[a])
		}
	}
	return sccs, order, nil
}
