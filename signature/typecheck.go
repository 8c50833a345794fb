package signature

import (
	"github.com/globular-io/globular/common"
	"github.com/globular-io/globular/diagram"
)

// Typecheck reports whether every generator occurring anywhere inside d is
// present in sig at the same dimension it was declared at: every
// Diagram0's generator, and every Rewrite0 endpoint reached while walking
// d's cospans and cones.
func Typecheck(sig Signature, d diagram.Diagram) bool {
	return checkDiagram(sig, d)
}

func checkDiagram(sig Signature, d diagram.Diagram) bool {
	switch v := d.(type) {
	case diagram.Diagram0:
		return checkGenerator(sig, v.Generator)
	case diagram.DiagramN:
		if !checkDiagram(sig, v.Source()) {
			return false
		}
		for _, c := range v.Cospans() {
			if !checkRewrite(sig, c.Forward) || !checkRewrite(sig, c.Backward) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func checkRewrite(sig Signature, r diagram.Rewrite) bool {
	switch v := r.(type) {
	case diagram.Rewrite0:
		source, target, ok := v.Endpoints()
		if !ok {
			return true
		}
		return checkGenerator(sig, source) && checkGenerator(sig, target)
	case diagram.RewriteN:
		for _, c := range v.Cones() {
			for _, cs := range c.Source {
				if !checkRewrite(sig, cs.Forward) || !checkRewrite(sig, cs.Backward) {
					return false
				}
			}
			if !checkRewrite(sig, c.Target.Forward) || !checkRewrite(sig, c.Target.Backward) {
				return false
			}
			for _, s := range c.SingularSlices {
				if !checkRewrite(sig, s) {
					return false
				}
			}
		}
		return true
	default:
		return false
	}
}

func checkGenerator(sig Signature, g common.Generator) bool {
	e, ok := sig.Lookup(g)
	return ok && e.Generator.Dimension == g.Dimension
}
