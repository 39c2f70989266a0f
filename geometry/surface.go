package geometry

import "github.com/sksmith/brep/geom"

// SweptCurve is a surface formed by sweeping a 3D path (the u-curve) along
// a vector (the v-direction). A line swept along a line is a plane; a
// circle swept along a line is a cylinder. Those are the only admissible
// combinations.
type SweptCurve struct {
	U Path3
	V geom.Vector3
}

// PlaneFromPoints constructs the plane through three points, with surface
// coordinates such that a maps to (0, 0), b to (1, 0), and c to (0, 1).
func PlaneFromPoints(a, b, c geom.Point3) SweptCurve {
	return SweptCurve{
		U: LinePath3(geom.Line3FromPoints(a, b)),
		V: c.Sub(a),
	}
}

// PointFromSurfaceCoords maps surface-local (u, v) coordinates to a global
// 3D point: the u-curve evaluated at u, offset along v.
func (s SweptCurve) PointFromSurfaceCoords(p geom.Point2) geom.Point3 {
	onCurve := s.U.PointFromPathCoords(geom.Point1{T: p.U})

	return onCurve.Add(s.V.Scale(p.V))
}

// SurfaceCoordsFromPoint projects a global 3D point into surface-local
// (u, v) coordinates.
func (s SweptCurve) SurfaceCoordsFromPoint(p geom.Point3) geom.Point2 {
	if circle, ok := s.U.Circle(); ok {
		v := p.Sub(circle.Center).Dot(s.V).Div(s.V.Dot(s.V))
		onCircle := p.Add(s.V.Scale(v.Neg()))
		u := circle.CircleCoordsFromPoint(onCircle)

		return geom.Point2{U: u.T, V: v}
	}

	line, _ := s.U.Line()

	// Solve p - origin = u*d1 + v*d2 in the least-squares sense. For
	// points on the plane this is exact.
	d1 := line.Direction
	d2 := s.V
	rhs := p.Sub(line.Origin)

	a11 := d1.Dot(d1)
	a12 := d1.Dot(d2)
	a22 := d2.Dot(d2)
	b1 := rhs.Dot(d1)
	b2 := rhs.Dot(d2)

	det := a11.Mul(a22).Sub(a12.Mul(a12))
	u := b1.Mul(a22).Sub(b2.Mul(a12)).Div(det)
	v := b2.Mul(a11).Sub(b1.Mul(a12)).Div(det)

	return geom.Point2{U: u, V: v}
}
