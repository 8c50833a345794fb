package signature

import (
	"errors"

	"github.com/globular-io/globular/common"
	"github.com/globular-io/globular/diagram"
)

// Builder assembles a Signature one generator at a time, in the order the
// generators are declared. It never panics; validation errors are
// accumulated and surfaced together by Build, mirroring the teacher's
// BuildGraph convention of a single error-wrapping entry point rather than
// failing each step individually.
type Builder struct {
	nextID int
	sig    Signature
	errs   []error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{sig: New()}
}

func (b *Builder) fail(err error) *Builder {
	b.errs = append(b.errs, err)
	return b
}

func (b *Builder) assignID() int {
	id := b.nextID
	b.nextID++
	return id
}

// Generator0 declares a 0-dimensional generator named name and returns its
// diagram, so callers can use it as a source or target for GeneratorN.
func (b *Builder) Generator0(name string) (diagram.Diagram0, *Builder) {
	if _, ok := b.sig.LookupName(name); ok {
		b.fail(wrapf(ErrDuplicateName, "%q", name))
		return diagram.Diagram0{}, b
	}
	g := common.NewGenerator(b.assignID(), 0)
	d := diagram.NewDiagram0(g)
	b.sig.insert(Entry{Generator: g, Name: name, Diagram: d})
	return d, b
}

// GeneratorN declares a generator of dimension source.Dimension()+1 named
// name, with source and target as its boundary diagrams, and returns its
// diagram.
func (b *Builder) GeneratorN(name string, source, target diagram.Diagram0) (diagram.DiagramN, *Builder) {
	if _, ok := b.sig.LookupName(name); ok {
		b.fail(wrapf(ErrDuplicateName, "%q", name))
		return diagram.DiagramN{}, b
	}
	g := common.NewGenerator(b.assignID(), 1)
	d, err := diagram.FromGeneratorN(g, source, target)
	if err != nil {
		b.fail(wrapf(ErrDimensionMismatch, "generator %q: %v", name, err))
		return diagram.DiagramN{}, b
	}
	b.sig.insert(Entry{Generator: g, Name: name, Diagram: d})
	return d, b
}

// Build finalizes the Signature, returning every validation error
// accumulated by prior calls joined via errors.Join so callers can still
// errors.Is against ErrDuplicateName or ErrDimensionMismatch individually.
func (b *Builder) Build() (Signature, error) {
	if len(b.errs) > 0 {
		return Signature{}, errors.Join(b.errs...)
	}
	return b.sig, nil
}
