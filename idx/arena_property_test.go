package idx_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/globular-io/globular/idx"
)

// TestIdxVec_ContainsMatchesPushedRange is the property test resolving
// spec.md's open question about idx.IdxVec.Contains: for an arena that has
// had n values pushed, Contains(k) must hold exactly for 0 <= k < n, and
// must fail for every other probed index — including the negative ones and
// every k > n, where the original's inverted comparison would have
// incorrectly reported true.
func TestIdxVec_ContainsMatchesPushedRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 64).Draw(t, "n")
		probe := rapid.IntRange(-8, 128).Draw(t, "probe")

		v := idx.NewIdxVec[idx.BasicIdx, int](mkBasic, n)
		for i := 0; i < n; i++ {
			v.Push(i)
		}

		want := probe >= 0 && probe < n
		got := v.Contains(idx.BasicIdx(probe))
		if got != want {
			t.Fatalf("Contains(%d) with n=%d: got %v, want %v", probe, n, got, want)
		}
	})
}
