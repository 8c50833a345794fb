package diagram

// SingularImage returns the singular height in r's target that source
// singular height i rewrites to.
func SingularImage(r RewriteN, i int) int {
	offset := 0
	for _, cone := range r.Cones() {
		if i < cone.Index {
			break
		}
		if i < cone.Index+cone.Width() {
			return cone.Index + offset
		}
		offset += 1 - cone.Width()
	}
	return i + offset
}

// SingularPreimage returns the range of source singular heights that
// rewrite to target singular height j: either the full source range of
// the cone that produced j, or the single pass-through height that maps
// straight through unchanged.
func SingularPreimage(r RewriteN, j int) Range {
	offset := 0
	for _, cone := range r.Cones() {
		target := cone.Index + offset
		if j < target {
			break
		}
		if j == target {
			return Range{Start: cone.Index, End: cone.Index + cone.Width()}
		}
		offset += 1 - cone.Width()
	}
	return Range{Start: j - offset, End: j - offset + 1}
}

// RegularImage returns the regular height in r's target that source
// regular height i maps to. A regular height strictly interior to a
// cone's source range has no single well-defined image; by convention
// RegularImage reports the regular height immediately preceding the
// cone's produced singular slice.
func RegularImage(r RewriteN, i int) int {
	offset := 0
	for _, cone := range r.Cones() {
		start := cone.Index
		end := cone.Index + cone.Width()
		if i < start {
			break
		}
		switch {
		case i == start:
			return start + offset
		case i == end:
			return start + offset + 1
		case i < end:
			return start + offset
		}
		offset += 1 - cone.Width()
	}
	return i + offset
}

// RegularPreimage returns the (always singleton) range of source regular
// heights that map to target regular height j.
func RegularPreimage(r RewriteN, j int) Range {
	offset := 0
	for _, cone := range r.Cones() {
		start := cone.Index
		end := cone.Index + cone.Width()
		tStart := start + offset
		tEnd := tStart + 1
		if j < tStart {
			break
		}
		switch j {
		case tStart:
			return Range{Start: start, End: start + 1}
		case tEnd:
			return Range{Start: end, End: end + 1}
		}
		offset += 1 - cone.Width()
	}
	return Range{Start: j - offset, End: j - offset + 1}
}

// ConeOverTarget reports the cone of r whose collapse produced target
// singular height j, or (nil, passThrough) with passThrough the source
// singular height that passes straight through to j when no cone did.
func ConeOverTarget(r RewriteN, j int) (cone *Cone, passThrough int) {
	offset := 0
	for i := range r.Cones() {
		c := &r.Cones()[i]
		target := c.Index + offset
		if j < target {
			break
		}
		if j == target {
			return c, 0
		}
		offset += 1 - c.Width()
	}
	return nil, j - offset
}

// RewriteSlice returns the (n-1)-dimensional rewrite r acts with at
// source singular height i: the cone's slice at that offset if i falls
// inside a cone, or the identity otherwise.
func RewriteSlice(r RewriteN, i int) Rewrite {
	for _, cone := range r.Cones() {
		if i < cone.Index {
			break
		}
		if i < cone.Index+cone.Width() {
			return cone.SingularSlices[i-cone.Index]
		}
	}
	return IdentityRewrite(r.Dimension() - 1)
}

// TargetSize returns the size r's target diagram has, given the size of
// its source.
func TargetSize(r RewriteN, sourceSize int) int {
	size := sourceSize
	for _, cone := range r.Cones() {
		size -= cone.Width() - 1
	}
	return size
}
