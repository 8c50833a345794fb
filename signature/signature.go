package signature

import (
	"github.com/globular-io/globular/common"
	"github.com/globular-io/globular/diagram"
)

// Entry names one generator in a Signature: its identity, its display
// name, and the diagram that defines it (a Diagram0 for a 0-generator, a
// DiagramN of dimension-1 boundary diagrams for a higher generator).
type Entry struct {
	Generator common.Generator
	Name      string
	Diagram   diagram.Diagram
}

// Signature is an ordered, named collection of generators. Iteration order
// follows insertion order, matching the teacher's vertices-plus-order-slice
// idiom for deterministic traversal rather than Go's randomized map order.
type Signature struct {
	order   []common.Generator
	entries map[common.Generator]Entry
	byName  map[string]common.Generator
}

// New returns an empty Signature.
func New() Signature {
	return Signature{
		entries: make(map[common.Generator]Entry),
		byName:  make(map[string]common.Generator),
	}
}

// Len reports the number of generators in sig.
func (sig Signature) Len() int { return len(sig.order) }

// Lookup returns the entry for g, if present.
func (sig Signature) Lookup(g common.Generator) (Entry, bool) {
	e, ok := sig.entries[g]
	return e, ok
}

// LookupName returns the entry named name, if present.
func (sig Signature) LookupName(name string) (Entry, bool) {
	g, ok := sig.byName[name]
	if !ok {
		return Entry{}, false
	}
	return sig.entries[g], true
}

// Entries returns every entry in insertion order.
func (sig Signature) Entries() []Entry {
	out := make([]Entry, len(sig.order))
	for i, g := range sig.order {
		out[i] = sig.entries[g]
	}
	return out
}

func (sig *Signature) insert(e Entry) {
	sig.order = append(sig.order, e.Generator)
	sig.entries[e.Generator] = e
	sig.byName[e.Name] = e.Generator
}
