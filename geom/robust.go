package geom

import "gonum.org/v1/gonum/mat"

// Orient3D classifies the position of point d relative to the plane
// through a, b, and c. It returns +1 if d lies below the plane (the plane
// appears counter-clockwise seen from above d), -1 if above, and 0 if the
// four points are coplanar.
//
// Callers treat this as a black-box predicate with exact-sign semantics.
// The current implementation evaluates the 3x3 determinant in floating
// point; swapping in an adaptive-precision implementation does not change
// the interface.
func Orient3D(a, b, c, d Point3) int {
	m := mat.NewDense(3, 3, []float64{
		a.X.Sub(d.X).F64(), a.Y.Sub(d.Y).F64(), a.Z.Sub(d.Z).F64(),
		b.X.Sub(d.X).F64(), b.Y.Sub(d.Y).F64(), b.Z.Sub(d.Z).F64(),
		c.X.Sub(d.X).F64(), c.Y.Sub(d.Y).F64(), c.Z.Sub(d.Z).F64(),
	})

	return S(mat.Det(m)).Sign()
}

// Orient2D classifies the position of point c relative to the directed
// line through a and b: +1 for left, -1 for right, 0 for collinear.
func Orient2D(a, b, c Point2) int {
	return b.Sub(a).Cross(c.Sub(a)).Sign()
}
