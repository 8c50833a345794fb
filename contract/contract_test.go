package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globular-io/globular/common"
	"github.com/globular-io/globular/contract"
	"github.com/globular-io/globular/diagram"
)

var (
	genX = common.NewGenerator(0, 0)
	genY = common.NewGenerator(1, 0)
	genF = common.NewGenerator(2, 1)
)

func TestContractDimZeroUnifiesSpannedDiagrams(t *testing.T) {
	x := diagram.NewDiagram0(genX)
	diagrams := []diagram.Diagram{x, x}
	spans := []contract.Span{
		{I: 0, J: 1, B: diagram.NewRewrite0(genX, genX, nil), M: x, F: diagram.NewRewrite0(genX, genX, nil)},
	}

	res, err := contract.Contract(diagrams, []int{0, 0}, spans)
	require.NoError(t, err)
	assert.True(t, diagram.Equivalent(res.Target, x))
	require.Len(t, res.Rewrites, 2)
	want := diagram.NewRewrite0(genX, genX, nil)
	assert.True(t, diagram.RewriteEquivalent(res.Rewrites[0], want))
	assert.True(t, diagram.RewriteEquivalent(res.Rewrites[1], want))
}

func TestContractDimZeroAmbiguousAcrossUnspannedMaxima(t *testing.T) {
	x := diagram.NewDiagram0(genX)
	y := diagram.NewDiagram0(genY)

	_, err := contract.Contract([]diagram.Diagram{x, y}, []int{0, 0}, nil)
	assert.ErrorIs(t, err, contract.ErrAmbiguousContraction)
}

func TestContractDimZeroPicksUniqueMaximumDimensionGenerator(t *testing.T) {
	lo := diagram.NewDiagram0(genX)
	hi := diagram.NewDiagram0(genF)

	res, err := contract.Contract([]diagram.Diagram{lo, hi}, []int{0, 0}, nil)
	require.NoError(t, err)
	assert.True(t, diagram.Equivalent(res.Target, hi))
}

func TestContractDimOneSingleHeightDiagramReproducesItself(t *testing.T) {
	d, err := diagram.FromGeneratorN(genF, diagram.NewDiagram0(genX), diagram.NewDiagram0(genY))
	require.NoError(t, err)

	res, err := contract.Contract([]diagram.Diagram{d}, []int{0}, nil)
	require.NoError(t, err)
	assert.True(t, diagram.Equivalent(res.Target, d))
	require.Len(t, res.Rewrites, 1)
}

func TestContractRejectsMismatchedDimensions(t *testing.T) {
	x := diagram.NewDiagram0(genX)
	dn, err := diagram.FromGeneratorN(genF, diagram.NewDiagram0(genX), diagram.NewDiagram0(genY))
	require.NoError(t, err)

	_, err = contract.Contract([]diagram.Diagram{x, dn}, []int{0, 0}, nil)
	assert.ErrorIs(t, err, contract.ErrDimension)
}

func TestContractRejectsBiasLengthMismatch(t *testing.T) {
	x := diagram.NewDiagram0(genX)
	_, err := contract.Contract([]diagram.Diagram{x, x}, []int{0}, nil)
	assert.ErrorIs(t, err, contract.ErrDimension)
}
