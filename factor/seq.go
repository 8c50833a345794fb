package factor

// Seq is a pull-based, single-pass lazy sequence: each Next call produces
// the next item (and ok=true) or signals exhaustion (ok=false). Nothing
// buffers the full enumeration — a caller that only ever calls Next once
// pays for exactly one item's worth of work.
type Seq[T any] interface {
	Next() (T, bool)
}

// onceSeq yields a single value, or nothing when empty is true.
type onceSeq[T any] struct {
	val   T
	empty bool
	done  bool
}

func one[T any](v T) Seq[T] { return &onceSeq[T]{val: v} }
func none[T any]() Seq[T]   { return &onceSeq[T]{empty: true} }

func (o *onceSeq[T]) Next() (T, bool) {
	if o.done || o.empty {
		var zero T
		return zero, false
	}
	o.done = true
	return o.val, true
}

// mapSeq lazily transforms src's items through f, skipping any item f
// rejects (returns ok=false for).
type mapSeq[A, B any] struct {
	src Seq[A]
	f   func(A) (B, bool)
}

func mapFilter[A, B any](src Seq[A], f func(A) (B, bool)) Seq[B] {
	return &mapSeq[A, B]{src: src, f: f}
}

func (m *mapSeq[A, B]) Next() (B, bool) {
	for {
		a, ok := m.src.Next()
		if !ok {
			var zero B
			return zero, false
		}
		if b, ok := m.f(a); ok {
			return b, true
		}
	}
}

// flatSeq concatenates a finite list of sub-sequences, each produced
// lazily by its own factory, exhausting one before starting the next.
type flatSeq[T any] struct {
	factories []func() Seq[T]
	i         int
	cur       Seq[T]
}

func concat[T any](factories ...func() Seq[T]) Seq[T] {
	return &flatSeq[T]{factories: factories}
}

func (f *flatSeq[T]) Next() (T, bool) {
	for {
		if f.cur == nil {
			if f.i >= len(f.factories) {
				var zero T
				return zero, false
			}
			f.cur = f.factories[f.i]()
			f.i++
		}
		if v, ok := f.cur.Next(); ok {
			return v, true
		}
		f.cur = nil
	}
}

// productSeq walks the Cartesian product of the sequences its factories
// produce, rightmost factor varying fastest, like nested loops. A factor
// is "reset" by calling its factory again rather than buffering what it
// already emitted, mirroring how the original's MultiProduct restarts an
// exhausted factor from a stored clone instead of replaying a cache.
type productSeq[T any] struct {
	factories []func() Seq[T]
	iters     []Seq[T]
	cur       []T
	started   bool
	done      bool
}

func product[T any](factories []func() Seq[T]) Seq[[]T] {
	return &productSeq[T]{factories: factories}
}

func (p *productSeq[T]) Next() ([]T, bool) {
	if p.done {
		return nil, false
	}
	n := len(p.factories)
	if n == 0 {
		if p.started {
			p.done = true
			return nil, false
		}
		p.started = true
		return []T{}, true
	}

	if !p.started {
		p.iters = make([]Seq[T], n)
		p.cur = make([]T, n)
		for i := 0; i < n; i++ {
			p.iters[i] = p.factories[i]()
			v, ok := p.iters[i].Next()
			if !ok {
				p.done = true
				return nil, false
			}
			p.cur[i] = v
		}
		p.started = true
		return p.snapshot(), true
	}

	for i := n - 1; i >= 0; i-- {
		v, ok := p.iters[i].Next()
		if !ok {
			continue
		}
		p.cur[i] = v
		for j := i + 1; j < n; j++ {
			p.iters[j] = p.factories[j]()
			v2, ok2 := p.iters[j].Next()
			if !ok2 {
				p.done = true
				return nil, false
			}
			p.cur[j] = v2
		}
		return p.snapshot(), true
	}

	p.done = true
	return nil, false
}

func (p *productSeq[T]) snapshot() []T {
	out := make([]T, len(p.cur))
	copy(out, p.cur)
	return out
}

// Collect drains seq via Next into a slice. Factorize always produces a
// finite sequence (the underlying diagrams are finite), so this never
// blocks.
func Collect[T any](seq Seq[T]) []T {
	var out []T
	for {
		v, ok := seq.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
