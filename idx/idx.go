// Package idx provides typed integer indices and a dense, index-keyed arena
// on top of them.
//
// A consumer declares its own index type (a plain `type NodeIndex int` with
// an Index method, see BasicIdx below) so that, for example, a NodeIndex can
// never be passed where an EdgeIndex is expected, while the underlying
// storage stays a plain slice. The other packages of this module index by
// plain ints and do not import idx.
package idx

import "fmt"

// Idx is implemented by small newtypes wrapping an int, letting IdxVec store
// values keyed by a type-safe handle instead of a bare int.
type Idx interface {
	comparable
	Index() int
}

// BasicIdx is a ready-made Idx for packages that don't need a distinct named
// handle type of their own.
type BasicIdx int

// Index implements Idx.
func (i BasicIdx) Index() int { return int(i) }

// IdxVec is a dense, append-only arena keyed by I. Construct with NewIdxVec,
// supplying the constructor for I (e.g. `func(n int) NodeIndex { return
// NodeIndex(n) }`); this stands in for the associated "Idx::new" constructor
// the original source relies on, since Go generics have no way to derive one
// automatically from I alone.
//
// Complexity: Push/Get/Set are O(1); Contains is O(1).
type IdxVec[I Idx, T any] struct {
	raw   []T
	mkIdx func(int) I
}

// NewIdxVec returns an empty arena with the given capacity hint.
func NewIdxVec[I Idx, T any](mkIdx func(int) I, capacity int) *IdxVec[I, T] {
	return &IdxVec[I, T]{raw: make([]T, 0, capacity), mkIdx: mkIdx}
}

// Push appends a value and returns the index it was stored at.
func (v *IdxVec[I, T]) Push(val T) I {
	n := len(v.raw)
	v.raw = append(v.raw, val)
	return v.mkIdx(n)
}

// Len returns the number of elements stored.
func (v *IdxVec[I, T]) Len() int {
	return len(v.raw)
}

// Contains reports whether i was produced by a Push on this arena, i.e.
// whether i.Index() < v.Len().
//
// NOTE: the original Rust implementation this arena is modelled on compared
// `self.raw.len() < index.index()`, which is inverted (it is true for
// almost every out-of-range index and false for in-range ones). This is the
// corrected, intended comparison.
func (v *IdxVec[I, T]) Contains(i I) bool {
	return i.Index() >= 0 && i.Index() < len(v.raw)
}

// Get returns the value at i and whether it was present.
func (v *IdxVec[I, T]) Get(i I) (T, bool) {
	if !v.Contains(i) {
		var zero T
		return zero, false
	}
	return v.raw[i.Index()], true
}

// MustGet returns the value at i, panicking if i is out of range. Reserved
// for call sites that have already validated i (e.g. iterating Keys()).
func (v *IdxVec[I, T]) MustGet(i I) T {
	val, ok := v.Get(i)
	if !ok {
		panic(fmt.Sprintf("idx: index %d out of range (len %d)", i.Index(), len(v.raw)))
	}
	return val
}

// Set overwrites the value at i. i must already be in range.
func (v *IdxVec[I, T]) Set(i I, val T) {
	if !v.Contains(i) {
		panic(fmt.Sprintf("idx: index %d out of range (len %d)", i.Index(), len(v.raw)))
	}
	v.raw[i.Index()] = val
}

// Keys returns every index currently stored, in ascending order.
func (v *IdxVec[I, T]) Keys() []I {
	keys := make([]I, len(v.raw))
	for i := range v.raw {
		keys[i] = v.mkIdx(i)
	}
	return keys
}

// Values returns a copy of the underlying storage, in index order.
func (v *IdxVec[I, T]) Values() []T {
	out := make([]T, len(v.raw))
	copy(out, v.raw)
	return out
}

// Map returns a new IdxVec of the same length, indexed the same way, with f
// applied to every stored value. The target arena reuses the same index
// constructor since I is unchanged.
func (v *IdxVec[I, T]) Map(f func(T) T) *IdxVec[I, T] {
	out := NewIdxVec[I, T](v.mkIdx, len(v.raw))
	for _, val := range v.raw {
		out.Push(f(val))
	}
	return out
}
