// Package monotone enumerates monotone (or strictly monotone) integer
// sequences subject to per-element range constraints, without ever
// materialising the whole sequence space. Iterator walks the space in
// lexicographic order, forwards via Next and backwards via NextBack,
// which is what the factorisation engine needs to try candidate height
// assignments lazily instead of paying for a combinatorial blow-up up
// front.
package monotone

import "fmt"

// Constraint bounds one element of a sequence to [Start, End).
type Constraint struct {
	Start, End int
}

// Len reports how many integers satisfy the constraint.
func (c Constraint) Len() int { return c.End - c.Start }

// Empty reports whether no integer satisfies the constraint.
func (c Constraint) Empty() bool { return c.End <= c.Start }

func (c Constraint) String() string { return fmt.Sprintf("[%d,%d)", c.Start, c.End) }

// Sequence is one point in the enumeration: Sequence[i] satisfies
// Constraints[i] and, for Strict, is strictly increasing; for non-strict,
// non-decreasing.
type Sequence []int

// Iterator walks monotone sequences satisfying a fixed set of range
// constraints. Next and NextBack share a single cursor: each steps from
// the sequence the previous call of either returned, so mixing the two on
// one Iterator moves back and forth along the same lexicographic order
// rather than closing in from both ends. Once either runs past its end of
// the space, both return nil.
type Iterator struct {
	strict      bool
	constraints []Constraint

	cur    Sequence
	curSet bool
	done   bool
}

// New builds an Iterator over sequences of len(constraints) elements. When
// strict is true, consecutive elements must strictly increase; otherwise
// they may repeat. The supplied constraints need not already be tight —
// New tightens them first, propagating each element's bound inward from
// both ends, exactly as a monotone sequence's neighbours constrain it.
func New(strict bool, constraints []Constraint) *Iterator {
	tight := make([]Constraint, len(constraints))
	copy(tight, constraints)

	if n := len(tight); n > 1 {
		min := tight[0].Start
		max := tight[n-1].End
		for i := 1; i < n; i++ {
			if strict {
				min = maxInt(min+1, tight[i].Start)
				max = minInt(max-1, tight[n-i-1].End)
			} else {
				min = maxInt(min, tight[i].Start)
				max = minInt(max, tight[n-i-1].End)
			}
			tight[i].Start = min
			tight[n-i-1].End = max
		}
	}

	return &Iterator{strict: strict, constraints: tight}
}

// Len reports the number of elements in each emitted sequence.
func (it *Iterator) Len() int { return len(it.constraints) }

// Next returns the next sequence in ascending lexicographic order, or nil
// once the space is exhausted.
func (it *Iterator) Next() Sequence {
	if it.done {
		return nil
	}
	if !it.curSet {
		seq := make(Sequence, it.Len())
		for i, c := range it.constraints {
			if c.Empty() {
				it.done = true
				return nil
			}
			seq[i] = c.Start
		}
		it.cur, it.curSet = seq, true
		return append(Sequence(nil), it.cur...)
	}

	seq := append(Sequence(nil), it.cur...)

	end := len(seq)
	for end > 0 && seq[end-1] == it.constraints[end-1].End-1 {
		end--
	}
	if end == 0 {
		it.done = true
		return nil
	}

	seq[end-1]++
	min := seq[end-1]
	for i := end; i < len(seq); i++ {
		if it.strict {
			min = maxInt(min+1, it.constraints[i].Start)
		} else {
			min = maxInt(min, it.constraints[i].Start)
		}
		seq[i] = min
	}

	it.cur = seq
	return append(Sequence(nil), it.cur...)
}

// NextBack returns the next sequence in descending lexicographic order,
// or nil once the space is exhausted. It shares its cursor with Next (see
// Iterator).
func (it *Iterator) NextBack() Sequence {
	if it.done {
		return nil
	}
	if !it.curSet {
		seq := make(Sequence, it.Len())
		for i, c := range it.constraints {
			if c.Empty() {
				it.done = true
				return nil
			}
			seq[i] = c.End - 1
		}
		it.cur, it.curSet = seq, true
		return append(Sequence(nil), it.cur...)
	}

	seq := append(Sequence(nil), it.cur...)

	start := len(seq) - 1
	for ; start >= 0; start-- {
		lo := it.constraints[start].Start
		if start > 0 && it.strict {
			lo = maxInt(lo, seq[start-1]+1)
		} else if start > 0 {
			lo = maxInt(lo, seq[start-1])
		}
		if seq[start] > lo {
			break
		}
	}
	if start < 0 {
		it.done = true
		return nil
	}

	seq[start]--
	for i := start + 1; i < len(seq); i++ {
		seq[i] = it.constraints[i].End - 1
	}

	it.cur = seq
	return append(Sequence(nil), it.cur...)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Collect drains it via Next into a slice, for tests and small call sites
// that want the whole enumeration at once.
func Collect(it *Iterator) []Sequence {
	var out []Sequence
	for {
		seq := it.Next()
		if seq == nil {
			break
		}
		out = append(out, seq)
	}
	return out
}
