package store_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/globular-io/globular/common"
	"github.com/globular-io/globular/diagram"
	"github.com/globular-io/globular/store"
)

// randomChain builds a DiagramN of the given size: a run of distinct
// 0-cells joined by distinct bead generators, the same shape
// diagram/rewrite_property_test.go's own randomChain assembles for the apply-to-source
// property.
func randomChain(size int) diagram.DiagramN {
	points := make([]common.Generator, size+1)
	for i := range points {
		points[i] = common.NewGenerator(3000+i, 0)
	}
	cospans := make([]diagram.Cospan, size)
	for i := 0; i < size; i++ {
		bead := common.NewGenerator(4000+i, 1)
		cospans[i] = diagram.Cospan{
			Forward:  diagram.NewRewrite0(points[i], bead, nil),
			Backward: diagram.NewRewrite0(points[i+1], bead, nil),
		}
	}
	return diagram.NewDiagramNUnsafe(diagram.NewDiagram0(points[0]), cospans)
}

// TestPackUnpackDiagramRoundTripProperty is the generative counterpart of
// TestPackUnpackDiagram0RoundTrips/TestPackUnpackDiagramNRoundTrips: for
// diagrams of random size, unpack(pack(d)) is equivalent to d.
func TestPackUnpackDiagramRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.IntRange(0, 12).Draw(t, "size")
		d := randomChain(size)

		s := store.New()
		key, err := s.PackDiagram(d)
		if err != nil {
			t.Fatalf("pack_diagram: %v", err)
		}
		got, err := s.UnpackDiagram(key)
		if err != nil {
			t.Fatalf("unpack_diagram: %v", err)
		}
		if !diagram.Equivalent(got, d) {
			t.Fatalf("unpack(pack(d)) != d for size %d", size)
		}
	})
}

// TestPackUnpackRewriteRoundTripProperty is the generative counterpart of
// TestPackUnpackRewriteRoundTrips: for a random-size chain's rewrite from
// source to target (built by composing its cospans' forward legs),
// unpack(pack(r)) is equivalent to r.
func TestPackUnpackRewriteRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.IntRange(1, 12).Draw(t, "size")
		d := randomChain(size)

		r := d.Cospans()[0].Forward
		for _, c := range d.Cospans()[1:] {
			composed, err := diagram.Compose(r, c.Forward)
			if err != nil {
				t.Fatalf("compose: %v", err)
			}
			r = composed
		}

		s := store.New()
		key, err := s.PackRewrite(r)
		if err != nil {
			t.Fatalf("pack_rewrite: %v", err)
		}
		got, err := s.UnpackRewrite(key)
		if err != nil {
			t.Fatalf("unpack_rewrite: %v", err)
		}
		if !diagram.RewriteEquivalent(got, r) {
			t.Fatalf("unpack(pack(r)) != r for size %d", size)
		}
	})
}
