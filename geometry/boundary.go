package geometry

import "github.com/sksmith/brep/geom"

// CurveBoundary is a pair of curve parameters delimiting a half-edge, in
// directed order. It compares by value and can serve as a map key.
type CurveBoundary struct {
	Inner [2]geom.Point1
}

// Boundary constructs a CurveBoundary from two parameter values.
func Boundary(start, end float64) CurveBoundary {
	return CurveBoundary{Inner: [2]geom.Point1{geom.Pt1(start), geom.Pt1(end)}}
}

// IsNormalized reports whether the bounding elements are in ascending
// order.
func (b CurveBoundary) IsNormalized() bool {
	return !b.Inner[1].Less(b.Inner[0])
}

// Reverse returns the boundary with its direction flipped.
func (b CurveBoundary) Reverse() CurveBoundary {
	return CurveBoundary{Inner: [2]geom.Point1{b.Inner[1], b.Inner[0]}}
}

// Normalize returns the boundary with its elements in ascending order,
// for direction-insensitive comparison.
func (b CurveBoundary) Normalize() CurveBoundary {
	if b.IsNormalized() {
		return b
	}

	return b.Reverse()
}

// IsEmpty reports whether the boundary spans no parameters.
func (b CurveBoundary) IsEmpty() bool {
	min, max := b.Normalize().Inner[0], b.Normalize().Inner[1]

	return !min.Less(max)
}

// Contains reports whether the given parameter lies strictly inside the
// boundary.
func (b CurveBoundary) Contains(point geom.Point1) bool {
	n := b.Normalize()
	min, max := n.Inner[0], n.Inner[1]

	return min.Less(point) && point.Less(max)
}

// Overlaps reports whether the two boundaries overlap, disregarding
// direction. Touching boundaries count as overlapping.
func (b CurveBoundary) Overlaps(other CurveBoundary) bool {
	a := b.Normalize()
	o := other.Normalize()

	return a.Inner[0].T.LessEq(o.Inner[1].T) &&
		o.Inner[0].T.LessEq(a.Inner[1].T)
}

// Intersection returns the normalized intersection of the two boundaries.
// If they do not overlap, the result is empty.
func (b CurveBoundary) Intersection(other CurveBoundary) CurveBoundary {
	a := b.Normalize()
	o := other.Normalize()

	start := a.Inner[0].T.Max(o.Inner[0].T)
	end := a.Inner[1].T.Min(o.Inner[1].T)
	if end.Less(start) {
		end = start
	}

	return CurveBoundary{Inner: [2]geom.Point1{{T: start}, {T: end}}}
}

// Union returns the normalized union of the two boundaries. It panics if
// the boundaries do not at least touch, since the union would not be a
// contiguous interval.
func (b CurveBoundary) Union(other CurveBoundary) CurveBoundary {
	if !b.Overlaps(other) {
		panic("can't merge boundaries that don't at least touch")
	}

	a := b.Normalize()
	o := other.Normalize()

	return CurveBoundary{Inner: [2]geom.Point1{
		{T: a.Inner[0].T.Min(o.Inner[0].T)},
		{T: a.Inner[1].T.Max(o.Inner[1].T)},
	}}
}

// Difference returns the normalized parts of b not covered by other:
// zero, one, or two boundaries.
func (b CurveBoundary) Difference(other CurveBoundary) []CurveBoundary {
	sMin, sMax := b.Normalize().Inner[0], b.Normalize().Inner[1]
	oMin, oMax := other.Normalize().Inner[0], other.Normalize().Inner[1]

	switch {
	case !sMax.Less(oMin) && sMin.Less(oMin) && oMax.Less(sMax):
		// other splits b in two
		return []CurveBoundary{
			{Inner: [2]geom.Point1{sMin, oMin}},
			{Inner: [2]geom.Point1{oMax, sMax}},
		}
	case sMax.T.LessEq(oMin.T) || oMax.T.LessEq(sMin.T):
		// disjoint or touching, b survives whole
		return []CurveBoundary{{Inner: [2]geom.Point1{sMin, sMax}}}
	case !sMin.Less(oMin) && !oMax.Less(sMax):
		// other covers b entirely
		return nil
	case sMin.Less(oMin):
		// other cuts off b's right part
		return []CurveBoundary{{Inner: [2]geom.Point1{sMin, oMin}}}
	default:
		// other cuts off b's left part
		return []CurveBoundary{{Inner: [2]geom.Point1{oMax, sMax}}}
	}
}
