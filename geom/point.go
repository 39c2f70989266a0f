package geom

// Point1 is a point in 1-dimensional space, typically a parameter on a
// curve.
type Point1 struct {
	T Scalar
}

// Pt1 constructs a Point1 from a float64 coordinate.
func Pt1(t float64) Point1 {
	return Point1{T: S(t)}
}

// Add returns the point translated by the given 1D offset.
func (p Point1) Add(offset Scalar) Point1 {
	return Point1{T: p.T.Add(offset)}
}

// Sub returns the offset from other to p.
func (p Point1) Sub(other Point1) Scalar {
	return p.T.Sub(other.T)
}

// Less reports whether p orders before other.
func (p Point1) Less(other Point1) bool {
	return p.T.Less(other.T)
}

// Cmp compares p and other, returning -1, 0, or +1.
func (p Point1) Cmp(other Point1) int {
	return p.T.Cmp(other.T)
}

// Point2 is a point in 2-dimensional space, typically surface-local (u, v)
// coordinates.
type Point2 struct {
	U, V Scalar
}

// Pt2 constructs a Point2 from float64 coordinates.
func Pt2(u, v float64) Point2 {
	return Point2{U: S(u), V: S(v)}
}

// Add returns the point translated by the given vector.
func (p Point2) Add(v Vector2) Point2 {
	return Point2{U: p.U.Add(v.U), V: p.V.Add(v.V)}
}

// Sub returns the vector from other to p.
func (p Point2) Sub(other Point2) Vector2 {
	return Vector2{U: p.U.Sub(other.U), V: p.V.Sub(other.V)}
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point2) DistanceTo(other Point2) Scalar {
	return p.Sub(other).Length()
}

// Point3 is a point in 3-dimensional global space.
type Point3 struct {
	X, Y, Z Scalar
}

// Pt3 constructs a Point3 from float64 coordinates.
func Pt3(x, y, z float64) Point3 {
	return Point3{X: S(x), Y: S(y), Z: S(z)}
}

// Add returns the point translated by the given vector.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{X: p.X.Add(v.X), Y: p.Y.Add(v.Y), Z: p.Z.Add(v.Z)}
}

// Sub returns the vector from other to p.
func (p Point3) Sub(other Point3) Vector3 {
	return Vector3{
		X: p.X.Sub(other.X),
		Y: p.Y.Sub(other.Y),
		Z: p.Z.Sub(other.Z),
	}
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point3) DistanceTo(other Point3) Scalar {
	return p.Sub(other).Length()
}
