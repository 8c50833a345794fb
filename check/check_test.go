package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globular-io/globular/check"
	"github.com/globular-io/globular/common"
	"github.com/globular-io/globular/diagram"
)

var (
	genX = common.NewGenerator(0, 0)
	genY = common.NewGenerator(1, 0)
	genF = common.NewGenerator(2, 1)
)

func wellFormedCone() diagram.Cone {
	slice := diagram.NewRewrite0(genX, genX, nil)
	return diagram.Cone{
		Index:          0,
		Source:         []diagram.Cospan{{Forward: slice, Backward: slice}, {Forward: slice, Backward: slice}},
		Target:         diagram.Cospan{Forward: slice, Backward: slice},
		RegularSlices:  []diagram.Rewrite{slice, slice, slice},
		SingularSlices: []diagram.Rewrite{slice, slice},
	}
}

func TestCheckDiagramWellFormed(t *testing.T) {
	d, err := diagram.FromGeneratorN(genF, diagram.NewDiagram0(genX), diagram.NewDiagram0(genY))
	require.NoError(t, err)
	assert.Empty(t, check.CheckDiagram(d, true))
}

func TestCheckDiagram0AlwaysWellFormed(t *testing.T) {
	assert.Empty(t, check.CheckDiagram(diagram.NewDiagram0(genX), true))
}

func TestCheckRewriteWellFormedCone(t *testing.T) {
	r := diagram.NewRewriteNUnsafe(1, []diagram.Cone{wellFormedCone()})
	assert.Empty(t, check.CheckRewrite(r, true))
}

func TestCheckRewriteNotCommutative(t *testing.T) {
	cone := wellFormedCone()
	cone.Target.Forward = diagram.NewRewrite0(genX, genY, nil) // breaks invariant 1
	r := diagram.NewRewriteNUnsafe(1, []diagram.Cone{cone})

	errs := check.CheckRewrite(r, true)
	require.Len(t, errs, 1)
	coneErr, ok := errs[0].(check.ConeMalformed)
	require.True(t, ok)
	require.NotEmpty(t, coneErr.Errors)

	found := false
	for _, e := range coneErr.Errors {
		if nc, ok := e.(check.NotCommutativeMalformed); ok && nc.Height == 0 {
			found = true
		}
	}
	assert.True(t, found, "expected a NotCommutativeMalformed at height 0, got %v", coneErr.Errors)
}

func TestCheckRewriteTrivialCone(t *testing.T) {
	slice := diagram.NewRewrite0(genX, genX, nil)
	trivial := diagram.Cone{
		Index:          0,
		Source:         []diagram.Cospan{{Forward: slice, Backward: slice}},
		Target:         diagram.Cospan{Forward: slice, Backward: slice},
		RegularSlices:  []diagram.Rewrite{slice, slice},
		SingularSlices: []diagram.Rewrite{slice},
	}
	r := diagram.NewRewriteNUnsafe(1, []diagram.Cone{trivial})

	errs := check.CheckRewrite(r, true)
	var sawTrivial bool
	for _, e := range errs {
		if _, ok := e.(check.TrivialConeMalformed); ok {
			sawTrivial = true
		}
	}
	assert.True(t, sawTrivial, "expected TrivialConeMalformed, got %v", errs)
}

func TestCheckDiagramIncompatibleRewrite(t *testing.T) {
	wrong := diagram.NewRewrite0(genY, genX, nil)
	d := diagram.NewDiagramNUnsafe(diagram.NewDiagram0(genX), []diagram.Cospan{
		{Forward: wrong, Backward: wrong},
	})

	errs := check.CheckDiagram(d, true)
	require.Len(t, errs, 1)
	_, ok := errs[0].(check.IncompatibleMalformed)
	assert.True(t, ok, "expected IncompatibleMalformed, got %T", errs[0])
}
