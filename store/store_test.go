package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globular-io/globular/common"
	"github.com/globular-io/globular/diagram"
	"github.com/globular-io/globular/store"
)

var (
	genX = common.NewGenerator(0, 0)
	genY = common.NewGenerator(1, 0)
	genF = common.NewGenerator(2, 1)
)

func TestPackUnpackDiagram0RoundTrips(t *testing.T) {
	s := store.New()
	x := diagram.NewDiagram0(genX)

	key, err := s.PackDiagram(x)
	require.NoError(t, err)

	got, err := s.UnpackDiagram(key)
	require.NoError(t, err)
	assert.True(t, diagram.Equivalent(got, x))
}

func TestPackUnpackDiagramNRoundTrips(t *testing.T) {
	d, err := diagram.FromGeneratorN(genF, diagram.NewDiagram0(genX), diagram.NewDiagram0(genY))
	require.NoError(t, err)

	s := store.New()
	key, err := s.PackDiagram(d)
	require.NoError(t, err)

	got, err := s.UnpackDiagram(key)
	require.NoError(t, err)
	assert.True(t, diagram.Equivalent(got, d))
}

func TestPackDiagramIsIdempotentByContent(t *testing.T) {
	s := store.New()
	x1 := diagram.NewDiagram0(genX)
	x2 := diagram.NewDiagram0(genX)

	k1, err := s.PackDiagram(x1)
	require.NoError(t, err)
	k2, err := s.PackDiagram(x2)
	require.NoError(t, err)

	assert.Equal(t, k1, k2)
	assert.Len(t, s.Diagrams, 1)
}

func TestPackUnpackRewriteRoundTrips(t *testing.T) {
	s := store.New()
	r := diagram.NewRewrite0(genX, genY, nil)

	key, err := s.PackRewrite(r)
	require.NoError(t, err)

	got, err := s.UnpackRewrite(key)
	require.NoError(t, err)
	assert.True(t, diagram.RewriteEquivalent(got, r))
}

func TestUnpackMissingKeyFails(t *testing.T) {
	s := store.New()
	_, err := s.UnpackDiagram(store.Key[store.DiagramTag]{Hi: 1, Lo: 2})
	assert.ErrorIs(t, err, store.ErrMissingKey)
}

func TestDocumentMarshalUnmarshalRoundTrips(t *testing.T) {
	d, err := diagram.FromGeneratorN(genF, diagram.NewDiagram0(genX), diagram.NewDiagram0(genY))
	require.NoError(t, err)

	doc := store.NewDocument()
	key, err := doc.Store.PackDiagram(d)
	require.NoError(t, err)
	doc.Signature = []store.GeneratorEntry{{Generator: genF, Name: "f", Diagram: key}}
	doc.Workspace = &store.Workspace{Diagram: key}
	doc.Metadata = store.Metadata{"author": "test"}

	data, err := store.Marshal(doc)
	require.NoError(t, err)

	round, err := store.Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, store.CurrentVersion, round.Version)
	assert.Equal(t, "test", round.Metadata["author"])
	require.Len(t, round.Signature, 1)
	assert.Equal(t, "f", round.Signature[0].Name)

	got, err := round.Store.UnpackDiagram(round.Signature[0].Diagram)
	require.NoError(t, err)
	assert.True(t, diagram.Equivalent(got, d))
}

func TestMigrateBringsOldVersionForward(t *testing.T) {
	doc := &store.Document{Version: "0.1.0", Store: store.New()}
	require.NoError(t, store.Migrate(doc))
	assert.Equal(t, store.CurrentVersion, doc.Version)
	assert.NotNil(t, doc.Metadata)
}

func TestMigrateRejectsUnknownVersion(t *testing.T) {
	doc := &store.Document{Version: "ancient", Store: store.New()}
	err := store.Migrate(doc)
	assert.ErrorIs(t, err, store.ErrLegacyImportRequired)
}
