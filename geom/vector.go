package geom

// Vector2 is a displacement in 2-dimensional space.
type Vector2 struct {
	U, V Scalar
}

// Vec2 constructs a Vector2 from float64 components.
func Vec2(u, v float64) Vector2 {
	return Vector2{U: S(u), V: S(v)}
}

// Add returns the vector sum of v and other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{U: v.U.Add(other.U), V: v.V.Add(other.V)}
}

// Sub returns the vector difference of v and other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{U: v.U.Sub(other.U), V: v.V.Sub(other.V)}
}

// Scale returns the vector v scaled by scalar s.
func (v Vector2) Scale(s Scalar) Vector2 {
	return Vector2{U: v.U.Mul(s), V: v.V.Mul(s)}
}

// Dot returns the dot product of v and other.
func (v Vector2) Dot(other Vector2) Scalar {
	return v.U.Mul(other.U).Add(v.V.Mul(other.V))
}

// Cross returns the scalar cross product of v and other, the signed area
// of the parallelogram they span.
func (v Vector2) Cross(other Vector2) Scalar {
	return v.U.Mul(other.V).Sub(v.V.Mul(other.U))
}

// Length returns the Euclidean length of the vector.
func (v Vector2) Length() Scalar {
	return v.Dot(v).Sqrt()
}

// Vector3 is a displacement in 3-dimensional space.
type Vector3 struct {
	X, Y, Z Scalar
}

// Vec3 constructs a Vector3 from float64 components.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: S(x), Y: S(y), Z: S(z)}
}

// Add returns the vector sum of v and other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X.Add(other.X),
		Y: v.Y.Add(other.Y),
		Z: v.Z.Add(other.Z),
	}
}

// Sub returns the vector difference of v and other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X.Sub(other.X),
		Y: v.Y.Sub(other.Y),
		Z: v.Z.Sub(other.Z),
	}
}

// Scale returns the vector v scaled by scalar s.
func (v Vector3) Scale(s Scalar) Vector3 {
	return Vector3{X: v.X.Mul(s), Y: v.Y.Mul(s), Z: v.Z.Mul(s)}
}

// Dot returns the dot product of v and other.
func (v Vector3) Dot(other Vector3) Scalar {
	return v.X.Mul(other.X).Add(v.Y.Mul(other.Y)).Add(v.Z.Mul(other.Z))
}

// Cross returns the cross product of v and other. The result is
// perpendicular to both input vectors.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y.Mul(other.Z).Sub(v.Z.Mul(other.Y)),
		Y: v.Z.Mul(other.X).Sub(v.X.Mul(other.Z)),
		Z: v.X.Mul(other.Y).Sub(v.Y.Mul(other.X)),
	}
}

// Length returns the Euclidean length of the vector.
func (v Vector3) Length() Scalar {
	return v.Dot(v).Sqrt()
}

// Normalize returns a unit vector in the same direction as v. A
// zero-length vector is returned unchanged.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l.Sign() == 0 {
		return v
	}

	return v.Scale(S(1).Div(l))
}
