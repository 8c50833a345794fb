package check

import (
	"github.com/globular-io/globular/common"
	"github.com/globular-io/globular/diagram"
)

// checker threads a pair of memoisation caches through one top-level
// check call, keyed by the pointer identity package diagram exposes via
// CacheKey. A checker is created fresh per call to CheckDiagram/
// CheckRewrite and discarded when it returns, so there is no global
// cache to clear and no cross-goroutine interference.
type checker struct {
	diagrams map[any][]MalformedDiagram
	rewrites map[any][]MalformedRewrite
}

func newChecker() *checker {
	return &checker{
		diagrams: make(map[any][]MalformedDiagram),
		rewrites: make(map[any][]MalformedRewrite),
	}
}

// CheckDiagram verifies d is well-formed, returning nil if it is. When
// recursive is true, every slice and rewrite d is built from is checked
// too; when false, only that each of d's cospan legs applies to the slice
// it meets is verified.
func CheckDiagram(d diagram.Diagram, recursive bool) []MalformedDiagram {
	return newChecker().checkDiagram(d, recursive)
}

// CheckRewrite verifies r is well-formed, returning nil if it is.
func CheckRewrite(r diagram.Rewrite, recursive bool) []MalformedRewrite {
	return newChecker().checkRewrite(r, recursive)
}

func (c *checker) checkDiagram(d diagram.Diagram, recursive bool) []MalformedDiagram {
	dn, ok := d.(diagram.DiagramN)
	if !ok {
		return nil
	}
	return c.checkDiagramN(dn, recursive)
}

func (c *checker) checkDiagramN(d diagram.DiagramN, recursive bool) []MalformedDiagram {
	key := d.CacheKey()
	if cached, ok := c.diagrams[key]; ok {
		return cached
	}

	var errs []MalformedDiagram
	slice := d.Source()

	if recursive {
		if e := c.checkDiagram(slice, recursive); len(e) > 0 {
			errs = append(errs, SliceMalformed{Height: common.NewRegular(0), Errors: e})
		}
	}

	for i, cospan := range d.Cospans() {
		if recursive {
			if e := c.checkRewrite(cospan.Forward, recursive); len(e) > 0 {
				errs = append(errs, RewriteMalformed{Index: i, Direction: common.Forward, Errors: e})
			}
		}

		next, err := diagram.Apply(slice, cospan.Forward)
		if err != nil {
			errs = append(errs, IncompatibleMalformed{Index: i, Direction: common.Forward, Err: err})
			break
		}
		slice = next

		if recursive {
			if e := c.checkDiagram(slice, recursive); len(e) > 0 {
				errs = append(errs, SliceMalformed{Height: common.NewSingular(i), Errors: e})
			}
			if e := c.checkRewrite(cospan.Backward, recursive); len(e) > 0 {
				errs = append(errs, RewriteMalformed{Index: i, Direction: common.Backward, Errors: e})
			}
		}

		prev, err := diagram.ApplyBackward(slice, cospan.Backward)
		if err != nil {
			errs = append(errs, IncompatibleMalformed{Index: i, Direction: common.Backward, Err: err})
			break
		}
		slice = prev

		if recursive {
			if e := c.checkDiagram(slice, recursive); len(e) > 0 {
				errs = append(errs, SliceMalformed{Height: common.NewRegular(i + 1), Errors: e})
			}
		}
	}

	c.diagrams[key] = errs
	return errs
}

func (c *checker) checkRewrite(r diagram.Rewrite, recursive bool) []MalformedRewrite {
	rn, ok := r.(diagram.RewriteN)
	if !ok {
		return nil
	}
	return c.checkRewriteN(rn, recursive)
}

func (c *checker) checkRewriteN(r diagram.RewriteN, recursive bool) []MalformedRewrite {
	key := r.CacheKey()
	if cached, ok := c.rewrites[key]; ok {
		return cached
	}

	var errs []MalformedRewrite
	cones := r.Cones()
	for i, cone := range cones {
		if ce := c.checkCone(cone, recursive); len(ce) > 0 {
			errs = append(errs, ConeMalformed{Index: i, Errors: ce})
		}
		if coneIsIdentity(cone) {
			errs = append(errs, TrivialConeMalformed{Index: i})
		}
	}

	for i := 1; i < len(cones); i++ {
		if cones[i-1].Index > cones[i].Index {
			errs = append(errs, NotOrderedMalformed{})
			break
		}
	}

	c.rewrites[key] = errs
	return errs
}

func (c *checker) checkCone(cone diagram.Cone, recursive bool) []MalformedCone {
	var errs []MalformedCone

	if recursive {
		for i, cs := range cone.Source {
			if e := c.checkRewrite(cs.Forward, recursive); len(e) > 0 {
				errs = append(errs, SourceMalformed{Index: i, Errors: e})
			}
			if e := c.checkRewrite(cs.Backward, recursive); len(e) > 0 {
				errs = append(errs, SourceMalformed{Index: i, Errors: e})
			}
		}
		if e := c.checkRewrite(cone.Target.Forward, recursive); len(e) > 0 {
			errs = append(errs, TargetMalformed{Errors: e})
		}
		if e := c.checkRewrite(cone.Target.Backward, recursive); len(e) > 0 {
			errs = append(errs, TargetMalformed{Errors: e})
		}
		for i, s := range cone.RegularSlices {
			if e := c.checkRewrite(s, recursive); len(e) > 0 {
				errs = append(errs, RegularSliceMalformed{Index: i, Errors: e})
			}
		}
		for i, s := range cone.SingularSlices {
			if e := c.checkRewrite(s, recursive); len(e) > 0 {
				errs = append(errs, SingularSliceMalformed{Index: i, Errors: e})
			}
		}
	}

	if len(cone.RegularSlices) == 0 {
		return errs
	}

	if !diagram.RewriteEquivalent(cone.RegularSlices[0], cone.Target.Forward) {
		errs = append(errs, NotCommutativeMalformed{Height: 0})
	}

	for i := range cone.Source {
		if fwd, err := diagram.Compose(cone.Source[i].Forward, cone.SingularSlices[i]); err != nil {
			errs = append(errs, CompositionMalformed{Err: err})
		} else if !diagram.RewriteEquivalent(fwd, cone.RegularSlices[i]) {
			errs = append(errs, NotCommutativeMalformed{Height: i})
		}

		if bwd, err := diagram.Compose(cone.Source[i].Backward, cone.SingularSlices[i]); err != nil {
			errs = append(errs, CompositionMalformed{Err: err})
		} else if !diagram.RewriteEquivalent(bwd, cone.RegularSlices[i+1]) {
			errs = append(errs, NotCommutativeMalformed{Height: i + 1})
		}
	}

	if !diagram.RewriteEquivalent(cone.RegularSlices[len(cone.RegularSlices)-1], cone.Target.Backward) {
		errs = append(errs, NotCommutativeMalformed{Height: cone.Width()})
	}

	return errs
}

func coneIsIdentity(cone diagram.Cone) bool {
	if cone.Width() != 1 {
		return false
	}
	only := cone.Source[0]
	return diagram.RewriteEquivalent(only.Forward, cone.Target.Forward) &&
		diagram.RewriteEquivalent(only.Backward, cone.Target.Backward)
}
