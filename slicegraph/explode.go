package slicegraph

import (
	"github.com/globular-io/globular/common"
	"github.com/globular-io/globular/diagram"
)

// ExplosionOutput is the result of Explode: the one-dimension-lower graph,
// plus the maps from every node/edge of the original graph to whatever it
// produced in the output (a node may produce zero nodes if every node_map
// call for its slices returned false; an edge likewise may produce many
// edges, since a single rewrite can act on several source slices at once).
type ExplosionOutput[V2, E2 any] struct {
	Output      *Graph[V2, E2]
	NodeToNodes map[NodeID][]NodeID
	NodeToEdges map[NodeID][]EdgeID
	EdgeToEdges map[EdgeID][]EdgeID
}

// sliceIndexPos maps a SliceIndex of a diagram of the given size to its
// offset in the node array Explode builds for that diagram: Source at 0,
// each interior height at Height.Index()+1, Target at the last slot.
func sliceIndexPos(si common.SliceIndex, size int) int {
	if si.Kind == common.AtBoundary {
		if si.Boundary == common.Source {
			return 0
		}
		return 2*size + 2
	}
	return si.Height.Index() + 1
}

// Explode rewrites g one dimension down: every node's DiagramN is expanded
// into a node per boundary/regular/singular slice, connected by the
// identity/cospan edges internal to that diagram, and every edge's
// RewriteN is expanded into the boundary/sparse/unit/regular/singular
// edges its cones and identities induce between the two diagrams'
// exploded slices.
//
// node_map, internal_edge_map and external_edge_map each decide, per
// candidate node or edge, whether it should exist in the output at all
// (returning false drops it, and every edge touching a dropped node is
// dropped too) and if so what key it carries.
func Explode[V, E, V2, E2 any](
	g *Graph[V, E],
	nodeMap func(NodeID, V, common.SliceIndex) (V2, bool),
	internalEdgeMap func(NodeID, V, RewriteOrigin) (E2, bool),
	externalEdgeMap func(EdgeID, E, RewriteOrigin) (E2, bool),
) (*ExplosionOutput[V2, E2], error) {
	out := New[V2, E2]()

	nodeToNodes := make(map[NodeID][]NodeID)
	nodeToEdges := make(map[NodeID][]EdgeID)
	edgeToEdges := make(map[EdgeID][]EdgeID)

	// sliceNodes[n] holds, for every slice index of n's diagram (in the
	// order sliceIndexPos addresses), the new node it produced, or nil if
	// node_map dropped that slice.
	sliceNodes := make(map[NodeID][]*NodeID)
	sliceSize := make(map[NodeID]int)

	for _, n := range g.Nodes() {
		key, d, _ := g.Node(n)
		dn, ok := d.(diagram.DiagramN)
		if !ok {
			return nil, wrapf(ErrDimension, "node %d does not carry a dimension-N diagram", n)
		}
		size := dn.Size()
		sliceSize[n] = size
		sis := common.SliceIndicesForSize(size)

		arr := make([]*NodeID, len(sis))
		for idx, si := range sis {
			slice, err := diagram.Slice(dn, si)
			if err != nil {
				return nil, wrapf(ErrDimension, "node %d: slice %s: %v", n, si, err)
			}
			newKey, keep := nodeMap(n, key, si)
			if !keep {
				continue
			}
			nid := out.AddNode(newKey, slice)
			arr[idx] = &nid
			nodeToNodes[n] = append(nodeToNodes[n], nid)
		}
		sliceNodes[n] = arr

		addInternal := func(si, ti common.SliceIndex, ro RewriteOrigin, r diagram.Rewrite) error {
			a := arr[sliceIndexPos(si, size)]
			b := arr[sliceIndexPos(ti, size)]
			if a == nil || b == nil {
				return nil
			}
			newKey, keep := internalEdgeMap(n, key, ro)
			if !keep {
				return nil
			}
			eid := out.AddEdge(*a, *b, newKey, r)
			nodeToEdges[n] = append(nodeToEdges[n], eid)
			return nil
		}

		idDim := dn.Dimension() - 1

		if err := addInternal(
			common.FromBoundary(common.Source), common.FromHeight(common.NewRegular(0)),
			BoundaryOrigin(common.Source), diagram.IdentityRewrite(idDim),
		); err != nil {
			return nil, err
		}

		for i, c := range dn.Cospans() {
			if err := addInternal(
				common.FromHeight(common.NewRegular(i)), common.FromHeight(common.NewSingular(i)),
				InternalOrigin(i, common.Forward), c.Forward,
			); err != nil {
				return nil, err
			}
			if err := addInternal(
				common.FromHeight(common.NewRegular(i+1)), common.FromHeight(common.NewSingular(i)),
				InternalOrigin(i, common.Backward), c.Backward,
			); err != nil {
				return nil, err
			}
		}

		if err := addInternal(
			common.FromBoundary(common.Target), common.FromHeight(common.NewRegular(size)),
			BoundaryOrigin(common.Target), diagram.IdentityRewrite(idDim),
		); err != nil {
			return nil, err
		}
	}

	for _, e := range g.Edges() {
		key, r, s, t, _ := g.Edge(e)
		rn, ok := r.(diagram.RewriteN)
		if !ok {
			return nil, wrapf(ErrDimension, "edge %d does not carry a dimension-N rewrite", e)
		}
		_, sd, _ := g.Node(s)
		_, td, _ := g.Node(t)
		sdn, sok := sd.(diagram.DiagramN)
		tdn, tok := td.(diagram.DiagramN)
		if !sok || !tok {
			return nil, wrapf(ErrDimension, "edge %d endpoints do not carry dimension-N diagrams", e)
		}

		sArr, tArr := sliceNodes[s], sliceNodes[t]
		sSize, tSize := sliceSize[s], sliceSize[t]

		addExternal := func(si, ti common.SliceIndex, ro RewriteOrigin, rw diagram.Rewrite) error {
			a := sArr[sliceIndexPos(si, sSize)]
			b := tArr[sliceIndexPos(ti, tSize)]
			if a == nil || b == nil {
				return nil
			}
			newKey, keep := externalEdgeMap(e, key, ro)
			if !keep {
				return nil
			}
			eid := out.AddEdge(*a, *b, newKey, rw)
			edgeToEdges[e] = append(edgeToEdges[e], eid)
			return nil
		}

		idDim := rn.Dimension() - 1

		for _, ti := range common.SliceIndicesForSize(tSize) {
			switch {
			case ti.Kind == common.AtBoundary:
				if err := addExternal(ti, ti, BoundaryOrigin(ti.Boundary), diagram.IdentityRewrite(idDim)); err != nil {
					return nil, err
				}

			case ti.Height.Kind == common.Regular:
				targetHeight := ti.Height.Value
				sourceHeight := diagram.RegularPreimage(rn, targetHeight).Start
				si := common.FromHeight(common.NewRegular(sourceHeight))
				if err := addExternal(si, ti, SparseOrigin(targetHeight), diagram.IdentityRewrite(idDim)); err != nil {
					return nil, err
				}

			default: // singular
				targetHeight := ti.Height.Value
				rng := diagram.SingularPreimage(rn, targetHeight)

				for sh := rng.Start; sh < rng.End; sh++ {
					singularSlice := diagram.RewriteSlice(rn, sh)

					ro := RegularSliceOrigin()
					if sh == rng.Start {
						ro = UnitSliceOrigin()
					}
					composed, err := diagram.Compose(sdn.Cospans()[sh].Forward, singularSlice)
					if err != nil {
						return nil, wrapf(ErrDimension, "edge %d: source height %d: %v", e, sh, err)
					}
					if err := addExternal(common.FromHeight(common.NewRegular(sh)), ti, ro, composed); err != nil {
						return nil, err
					}
					if err := addExternal(common.FromHeight(common.NewSingular(sh)), ti, SingularSliceOrigin(sh), singularSlice); err != nil {
						return nil, err
					}
				}

				ro := RegularSliceOrigin()
				if rng.Start < rng.End {
					ro = UnitSliceOrigin()
				}
				closing := tdn.Cospans()[targetHeight].Backward
				if err := addExternal(common.FromHeight(common.NewRegular(rng.End)), ti, ro, closing); err != nil {
					return nil, err
				}
			}
		}
	}

	return &ExplosionOutput[V2, E2]{
		Output:      out,
		NodeToNodes: nodeToNodes,
		NodeToEdges: nodeToEdges,
		EdgeToEdges: edgeToEdges,
	}, nil
}
