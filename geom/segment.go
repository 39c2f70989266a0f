package geom

// LineSegment2 is a directed segment between two 2D points. It compares by
// value, so segments can be matched against polygon edges directly.
type LineSegment2 struct {
	A, B Point2
}

// Center returns the segment's midpoint.
func (s LineSegment2) Center() Point2 {
	return Point2{
		U: s.A.U.Add(s.B.U).Div(S(2)),
		V: s.A.V.Add(s.B.V).Div(S(2)),
	}
}

// Reverse returns the segment with its direction flipped.
func (s LineSegment2) Reverse() LineSegment2 {
	return LineSegment2{A: s.B, B: s.A}
}

// Length returns the Euclidean length of the segment.
func (s LineSegment2) Length() Scalar {
	return s.A.DistanceTo(s.B)
}
