package signature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globular-io/globular/common"
	"github.com/globular-io/globular/diagram"
	"github.com/globular-io/globular/signature"
)

func TestBuilderAssignsIDsInInsertionOrder(t *testing.T) {
	b := signature.NewBuilder()
	x, b := b.Generator0("x")
	y, b := b.Generator0("y")
	_, b = b.GeneratorN("f", x, y)

	sig, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 3, sig.Len())

	entries := sig.Entries()
	assert.Equal(t, "x", entries[0].Name)
	assert.Equal(t, "y", entries[1].Name)
	assert.Equal(t, "f", entries[2].Name)
	assert.Equal(t, 0, entries[0].Generator.ID)
	assert.Equal(t, 1, entries[1].Generator.ID)
	assert.Equal(t, 2, entries[2].Generator.ID)
}

func TestBuilderRejectsDuplicateName(t *testing.T) {
	b := signature.NewBuilder()
	_, b = b.Generator0("x")
	_, b = b.Generator0("x")

	_, err := b.Build()
	assert.ErrorIs(t, err, signature.ErrDuplicateName)
}

func TestLookupByNameAndGenerator(t *testing.T) {
	b := signature.NewBuilder()
	x, b := b.Generator0("x")

	sig, err := b.Build()
	require.NoError(t, err)

	byName, ok := sig.LookupName("x")
	require.True(t, ok)
	assert.Equal(t, x.Generator, byName.Generator)

	byGen, ok := sig.Lookup(x.Generator)
	require.True(t, ok)
	assert.Equal(t, "x", byGen.Name)
}

func TestTypecheckAcceptsKnownGenerators(t *testing.T) {
	b := signature.NewBuilder()
	x, b := b.Generator0("x")
	y, b := b.Generator0("y")
	f, b := b.GeneratorN("f", x, y)

	sig, err := b.Build()
	require.NoError(t, err)
	assert.True(t, signature.Typecheck(sig, f))
	assert.True(t, signature.Typecheck(sig, x))
}

func TestTypecheckRejectsUnknownGenerator(t *testing.T) {
	b := signature.NewBuilder()
	_, b = b.Generator0("x")
	sig, err := b.Build()
	require.NoError(t, err)

	stray := diagram.NewDiagram0(common.NewGenerator(99, 0))
	assert.False(t, signature.Typecheck(sig, stray))
}
