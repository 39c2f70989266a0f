package geom

// Line2 is an infinite line in 2D space, parameterized by origin and
// direction: a parameter t maps to origin + direction*t.
type Line2 struct {
	Origin    Point2
	Direction Vector2
}

// Line2FromPoints constructs a line through a and b, with a at parameter 0
// and b at parameter 1.
func Line2FromPoints(a, b Point2) Line2 {
	return Line2{Origin: a, Direction: b.Sub(a)}
}

// PointFromLineCoords maps a line parameter to a 2D point.
func (l Line2) PointFromLineCoords(t Point1) Point2 {
	return l.Origin.Add(l.Direction.Scale(t.T))
}

// LineCoordsFromPoint projects a 2D point onto the line, returning its
// parameter.
func (l Line2) LineCoordsFromPoint(p Point2) Point1 {
	return Point1{
		T: p.Sub(l.Origin).Dot(l.Direction).Div(l.Direction.Dot(l.Direction)),
	}
}

// Reverse returns the line with its direction flipped.
func (l Line2) Reverse() Line2 {
	return Line2{Origin: l.Origin, Direction: l.Direction.Scale(S(-1))}
}

// Line3 is an infinite line in 3D space, parameterized by origin and
// direction.
type Line3 struct {
	Origin    Point3
	Direction Vector3
}

// Line3FromPoints constructs a line through a and b, with a at parameter 0
// and b at parameter 1.
func Line3FromPoints(a, b Point3) Line3 {
	return Line3{Origin: a, Direction: b.Sub(a)}
}

// PointFromLineCoords maps a line parameter to a 3D point.
func (l Line3) PointFromLineCoords(t Point1) Point3 {
	return l.Origin.Add(l.Direction.Scale(t.T))
}

// LineCoordsFromPoint projects a 3D point onto the line, returning its
// parameter.
func (l Line3) LineCoordsFromPoint(p Point3) Point1 {
	return Point1{
		T: p.Sub(l.Origin).Dot(l.Direction).Div(l.Direction.Dot(l.Direction)),
	}
}

// Reverse returns the line with its direction flipped.
func (l Line3) Reverse() Line3 {
	return Line3{Origin: l.Origin, Direction: l.Direction.Scale(S(-1))}
}
