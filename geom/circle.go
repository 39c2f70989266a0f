package geom

import "math"

// Circle2 is a circle in 2D space. Center is the circle's center; A and B
// are two perpendicular radius vectors of equal length. A points at the
// parameter-zero position, and the angle parameter sweeps from A towards B.
type Circle2 struct {
	Center Point2
	A, B   Vector2
}

// Circle2FromCenterAndRadius constructs an axis-aligned circle with the
// given radius.
func Circle2FromCenterAndRadius(center Point2, radius float64) Circle2 {
	return Circle2{
		Center: center,
		A:      Vec2(radius, 0),
		B:      Vec2(0, radius),
	}
}

// Radius returns the circle's radius.
func (c Circle2) Radius() Scalar {
	return c.A.Length()
}

// PointFromCircleCoords maps an angle parameter (radians) to a 2D point.
func (c Circle2) PointFromCircleCoords(angle Point1) Point2 {
	return c.Center.
		Add(c.A.Scale(angle.T.Cos())).
		Add(c.B.Scale(angle.T.Sin()))
}

// CircleCoordsFromPoint projects a 2D point onto the circle, returning the
// angle parameter in [0, 2*pi).
func (c Circle2) CircleCoordsFromPoint(p Point2) Point1 {
	d := p.Sub(c.Center)
	u := d.Dot(c.A).Div(c.A.Dot(c.A))
	v := d.Dot(c.B).Div(c.B.Dot(c.B))

	return Point1{T: normalizedAngle(u, v)}
}

// Reverse returns the circle with its sweep direction flipped.
func (c Circle2) Reverse() Circle2 {
	return Circle2{Center: c.Center, A: c.A, B: c.B.Scale(S(-1))}
}

// Circle3 is a circle in 3D space, defined like Circle2 but embedded in an
// arbitrary plane spanned by the radius vectors A and B.
type Circle3 struct {
	Center Point3
	A, B   Vector3
}

// Circle3FromCenterAndRadius constructs a circle of the given radius in
// the xy-plane.
func Circle3FromCenterAndRadius(center Point3, radius float64) Circle3 {
	return Circle3{
		Center: center,
		A:      Vec3(radius, 0, 0),
		B:      Vec3(0, radius, 0),
	}
}

// Radius returns the circle's radius.
func (c Circle3) Radius() Scalar {
	return c.A.Length()
}

// PointFromCircleCoords maps an angle parameter (radians) to a 3D point.
func (c Circle3) PointFromCircleCoords(angle Point1) Point3 {
	return c.Center.
		Add(c.A.Scale(angle.T.Cos())).
		Add(c.B.Scale(angle.T.Sin()))
}

// CircleCoordsFromPoint projects a 3D point onto the circle's plane,
// returning the angle parameter in [0, 2*pi).
func (c Circle3) CircleCoordsFromPoint(p Point3) Point1 {
	d := p.Sub(c.Center)
	u := d.Dot(c.A).Div(c.A.Dot(c.A))
	v := d.Dot(c.B).Div(c.B.Dot(c.B))

	return Point1{T: normalizedAngle(u, v)}
}

// Reverse returns the circle with its sweep direction flipped.
func (c Circle3) Reverse() Circle3 {
	return Circle3{Center: c.Center, A: c.A, B: c.B.Scale(S(-1))}
}

func normalizedAngle(u, v Scalar) Scalar {
	angle := math.Atan2(v.F64(), u.F64())
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return S(angle)
}
