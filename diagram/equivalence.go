package diagram

// Equivalent reports whether two diagrams denote the same value up to the
// identification equivalence: equal generators at dimension 0, or equal
// dimension, equal source (recursively) and pairwise equivalent cospans
// at dimension n>0. Unlike Go's == this recurses through DiagramN's
// pointer-shared internals rather than comparing them.
func Equivalent(a, b Diagram) bool {
	if a.Dimension() != b.Dimension() {
		return false
	}
	switch av := a.(type) {
	case Diagram0:
		bv := b.(Diagram0)
		return av.Generator == bv.Generator
	case DiagramN:
		bv := b.(DiagramN)
		if len(av.Cospans()) != len(bv.Cospans()) {
			return false
		}
		if !Equivalent(av.Source(), bv.Source()) {
			return false
		}
		for i, ac := range av.Cospans() {
			if !cospanEquivalent(ac, bv.Cospans()[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func cospanEquivalent(a, b Cospan) bool {
	return RewriteEquivalent(a.Forward, b.Forward) && RewriteEquivalent(a.Backward, b.Backward)
}

// RewriteEquivalent reports whether two rewrites describe the same
// transformation: equal (source, target) generator pair (or both the
// no-generator placeholder) at dimension 0, or equal dimension and
// pairwise equivalent cones at dimension n>0.
func RewriteEquivalent(a, b Rewrite) bool {
	if a.Dimension() != b.Dimension() {
		return false
	}
	switch av := a.(type) {
	case Rewrite0:
		bv := b.(Rewrite0)
		as, at, aok := av.Endpoints()
		bs, bt, bok := bv.Endpoints()
		if aok != bok {
			return false
		}
		if !aok {
			return true
		}
		return as == bs && at == bt
	case RewriteN:
		bv := b.(RewriteN)
		if len(av.Cones()) != len(bv.Cones()) {
			return false
		}
		for i, ac := range av.Cones() {
			if !coneEquivalent(ac, bv.Cones()[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func coneEquivalent(a, b Cone) bool {
	if a.Index != b.Index || len(a.Source) != len(b.Source) {
		return false
	}
	if !cospanEquivalent(a.Target, b.Target) {
		return false
	}
	for i := range a.Source {
		if !cospanEquivalent(a.Source[i], b.Source[i]) {
			return false
		}
	}
	for i := range a.SingularSlices {
		if !RewriteEquivalent(a.SingularSlices[i], b.SingularSlices[i]) {
			return false
		}
	}
	for i := range a.RegularSlices {
		if !RewriteEquivalent(a.RegularSlices[i], b.RegularSlices[i]) {
			return false
		}
	}
	return true
}
