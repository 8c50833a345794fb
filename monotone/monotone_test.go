package monotone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/globular-io/globular/monotone"
)

func cs(pairs ...[2]int) []monotone.Constraint {
	out := make([]monotone.Constraint, len(pairs))
	for i, p := range pairs {
		out[i] = monotone.Constraint{Start: p[0], End: p[1]}
	}
	return out
}

func seqs(rows ...[]int) []monotone.Sequence {
	out := make([]monotone.Sequence, len(rows))
	for i, r := range rows {
		out[i] = monotone.Sequence(r)
	}
	return out
}

func TestMonotoneSequencesTwoByTwo(t *testing.T) {
	it := monotone.New(false, cs([2]int{0, 2}, [2]int{0, 2}))
	assert.Equal(t, seqs([]int{0, 0}, []int{0, 1}, []int{1, 1}), monotone.Collect(it))

	strict := monotone.New(true, cs([2]int{0, 2}, [2]int{0, 2}))
	assert.Equal(t, seqs([]int{0, 1}), monotone.Collect(strict))
}

func TestMonotoneSequencesThreeByFour(t *testing.T) {
	it := monotone.New(false, cs([2]int{0, 4}, [2]int{0, 4}, [2]int{0, 4}))
	assert.Equal(t, seqs(
		[]int{0, 0, 0}, []int{0, 0, 1}, []int{0, 0, 2}, []int{0, 0, 3},
		[]int{0, 1, 1}, []int{0, 1, 2}, []int{0, 1, 3},
		[]int{0, 2, 2}, []int{0, 2, 3}, []int{0, 3, 3},
		[]int{1, 1, 1}, []int{1, 1, 2}, []int{1, 1, 3},
		[]int{1, 2, 2}, []int{1, 2, 3}, []int{1, 3, 3},
		[]int{2, 2, 2}, []int{2, 2, 3}, []int{2, 3, 3},
		[]int{3, 3, 3},
	), monotone.Collect(it))

	strict := monotone.New(true, cs([2]int{0, 4}, [2]int{0, 4}, [2]int{0, 4}))
	assert.Equal(t, seqs(
		[]int{0, 1, 2}, []int{0, 1, 3}, []int{0, 2, 3}, []int{1, 2, 3},
	), monotone.Collect(strict))
}

func TestMonotoneSequencesWithNonZeroFloor(t *testing.T) {
	it := monotone.New(false, cs([2]int{1, 4}, [2]int{0, 4}, [2]int{1, 4}))
	assert.Equal(t, seqs(
		[]int{1, 1, 1}, []int{1, 1, 2}, []int{1, 1, 3},
		[]int{1, 2, 2}, []int{1, 2, 3}, []int{1, 3, 3},
		[]int{2, 2, 2}, []int{2, 2, 3}, []int{2, 3, 3},
		[]int{3, 3, 3},
	), monotone.Collect(it))

	strict := monotone.New(true, cs([2]int{1, 4}, [2]int{0, 4}, [2]int{1, 4}))
	assert.Equal(t, seqs([]int{1, 2, 3}), monotone.Collect(strict))
}

func TestMonotoneSequencesUnsatisfiable(t *testing.T) {
	it := monotone.New(false, cs([2]int{1, 2}, [2]int{0, 1}))
	assert.Empty(t, monotone.Collect(it))
}

func TestMonotoneNextBackMirrorsNext(t *testing.T) {
	forward := monotone.Collect(monotone.New(false, cs([2]int{0, 4}, [2]int{0, 4}, [2]int{0, 4})))

	it := monotone.New(false, cs([2]int{0, 4}, [2]int{0, 4}, [2]int{0, 4}))
	var backward []monotone.Sequence
	for {
		seq := it.NextBack()
		if seq == nil {
			break
		}
		backward = append(backward, seq)
	}

	a := assert.New(t)
	a.Equal(len(forward), len(backward))
	for i, seq := range backward {
		a.Equal(forward[len(forward)-1-i], seq)
	}
}

func TestMonotoneLenReportsConstraintCount(t *testing.T) {
	it := monotone.New(false, cs([2]int{0, 4}, [2]int{0, 4}, [2]int{0, 4}))
	assert.Equal(t, 3, it.Len())
}
