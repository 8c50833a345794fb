package slicegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globular-io/globular/common"
	"github.com/globular-io/globular/diagram"
	"github.com/globular-io/globular/slicegraph"
)

var (
	genX = common.NewGenerator(0, 0)
	genY = common.NewGenerator(1, 0)
	genF = common.NewGenerator(2, 1)
)

func keepAllNodes(_ slicegraph.NodeID, key string, si common.SliceIndex) (common.SliceIndex, bool) {
	_ = key
	return si, true
}

func keepAllInternal(_ slicegraph.NodeID, _ string, ro slicegraph.RewriteOrigin) (slicegraph.RewriteOrigin, bool) {
	return ro, true
}

func keepAllExternal(_ slicegraph.EdgeID, _ string, ro slicegraph.RewriteOrigin) (slicegraph.RewriteOrigin, bool) {
	return ro, true
}

func singleCospanDiagram(t *testing.T) diagram.DiagramN {
	t.Helper()
	d, err := diagram.FromGeneratorN(genF, diagram.NewDiagram0(genX), diagram.NewDiagram0(genY))
	require.NoError(t, err)
	return d
}

func TestExplodeSingleNodeProducesFiveSlicesAndFourInternalEdges(t *testing.T) {
	d := singleCospanDiagram(t)

	g := slicegraph.New[string, string]()
	n := g.AddNode("f", d)

	out, err := slicegraph.Explode[string, string, common.SliceIndex, slicegraph.RewriteOrigin](
		g, keepAllNodes, keepAllInternal, keepAllExternal,
	)
	require.NoError(t, err)

	assert.Equal(t, 5, out.Output.NodeCount())
	assert.Equal(t, 4, out.Output.EdgeCount())
	assert.Len(t, out.NodeToNodes[n], 5)
	assert.Len(t, out.NodeToEdges[n], 4)
}

func TestExplodeDroppedBoundarySlicesDropTheirEdges(t *testing.T) {
	d := singleCospanDiagram(t)

	g := slicegraph.New[string, string]()
	n := g.AddNode("f", d)

	keepInterior := func(_ slicegraph.NodeID, _ string, si common.SliceIndex) (common.SliceIndex, bool) {
		return si, si.Kind == common.AtInterior
	}

	out, err := slicegraph.Explode[string, string, common.SliceIndex, slicegraph.RewriteOrigin](
		g, keepInterior, keepAllInternal, keepAllExternal,
	)
	require.NoError(t, err)

	assert.Equal(t, 3, out.Output.NodeCount())
	// both boundary identity edges touch a dropped node and are skipped;
	// only the two cospan-leg edges between interior slices survive.
	assert.Equal(t, 2, out.Output.EdgeCount())
	assert.Len(t, out.NodeToNodes[n], 3)
}

func TestExplodeIdentityEdgeBetweenEquivalentDiagrams(t *testing.T) {
	d1 := singleCospanDiagram(t)
	d2 := singleCospanDiagram(t)

	g := slicegraph.New[string, string]()
	s := g.AddNode("source", d1)
	tt := g.AddNode("target", d2)
	e := g.AddEdge(s, tt, "id", diagram.IdentityRewrite(1))

	out, err := slicegraph.Explode[string, string, common.SliceIndex, slicegraph.RewriteOrigin](
		g, keepAllNodes, keepAllInternal, keepAllExternal,
	)
	require.NoError(t, err)

	assert.Len(t, out.EdgeToEdges[e], 7)
	assert.Equal(t, 4+4+7, out.Output.EdgeCount())
}

func TestExplodeRejectsDimensionZeroNode(t *testing.T) {
	g := slicegraph.New[string, string]()
	g.AddNode("x", diagram.NewDiagram0(genX))

	_, err := slicegraph.Explode[string, string, common.SliceIndex, slicegraph.RewriteOrigin](
		g, keepAllNodes, keepAllInternal, keepAllExternal,
	)
	assert.ErrorIs(t, err, slicegraph.ErrDimension)
}
