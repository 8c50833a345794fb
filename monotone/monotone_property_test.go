package monotone_test

import (
	"sort"
	"testing"

	"pgregory.net/rapid"

	"github.com/globular-io/globular/monotone"
)

// bruteForce enumerates every (strictly) monotone sequence satisfying
// constraints directly, independent of Iterator's tightening/cursor
// machinery, as the reference the property test checks Iterator against.
func bruteForce(strict bool, constraints []monotone.Constraint) []monotone.Sequence {
	var out []monotone.Sequence
	seq := make(monotone.Sequence, len(constraints))
	var rec func(i, lowerBound int)
	rec = func(i, lowerBound int) {
		if i == len(constraints) {
			row := append(monotone.Sequence(nil), seq...)
			out = append(out, row)
			return
		}
		c := constraints[i]
		start := c.Start
		if start < lowerBound {
			start = lowerBound
		}
		for v := start; v < c.End; v++ {
			seq[i] = v
			next := v
			if strict {
				next = v + 1
			}
			rec(i+1, next)
		}
	}
	rec(0, constraints[0].Start)
	return out
}

// TestMonotoneEnumerationCompleteness is the generative counterpart of
// TestMonotoneSequencesTwoByTwo/ThreeByFour: for small random constraint
// sets, Iterator.Next (drained via Collect) enumerates exactly the
// (strictly) monotone sequences a direct search finds, in ascending
// lexicographic order, and NextBack enumerates the same set descending.
func TestMonotoneEnumerationCompleteness(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 3).Draw(t, "n")
		strict := rapid.Bool().Draw(t, "strict")

		constraints := make([]monotone.Constraint, n)
		for i := range constraints {
			start := rapid.IntRange(0, 4).Draw(t, "start")
			length := rapid.IntRange(0, 4).Draw(t, "length")
			constraints[i] = monotone.Constraint{Start: start, End: start + length}
		}

		want := bruteForce(strict, constraints)

		got := monotone.Collect(monotone.New(strict, constraints))
		if len(want) != len(got) {
			t.Fatalf("got %d sequences, want %d (constraints=%v strict=%v)", len(got), len(want), constraints, strict)
		}
		for i := range want {
			if !seqEqual(want[i], got[i]) {
				t.Fatalf("sequence %d: got %v, want %v", i, got[i], want[i])
			}
		}
		if !sort.SliceIsSorted(got, func(i, j int) bool { return lexLess(got[i], got[j]) }) {
			t.Fatalf("Collect(New) is not in ascending lexicographic order: %v", got)
		}

		backIt := monotone.New(strict, constraints)
		var gotBack []monotone.Sequence
		for {
			seq := backIt.NextBack()
			if seq == nil {
				break
			}
			gotBack = append(gotBack, seq)
		}
		if len(gotBack) != len(want) {
			t.Fatalf("NextBack produced %d sequences, want %d", len(gotBack), len(want))
		}
		for i := range gotBack {
			if !seqEqual(gotBack[i], want[len(want)-1-i]) {
				t.Fatalf("NextBack[%d] = %v, want %v (descending order)", i, gotBack[i], want[len(want)-1-i])
			}
		}
	})
}

func seqEqual(a, b monotone.Sequence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func lexLess(a, b monotone.Sequence) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
