package geometry

import "github.com/sksmith/brep/geom"

// Tolerance is the maximum allowed deviation between exact geometry and
// its polyline approximation, measured as the maximum point-to-segment
// distance. It is always positive.
type Tolerance struct {
	inner geom.Scalar
}

// NewTolerance constructs a Tolerance. A non-positive value is a
// programming error and panics.
func NewTolerance(value geom.Scalar) Tolerance {
	if value.Sign() <= 0 {
		panic("tolerance must be positive")
	}

	return Tolerance{inner: value}
}

// ToleranceFromF64 constructs a Tolerance from a float64.
func ToleranceFromF64(value float64) Tolerance {
	return NewTolerance(geom.S(value))
}

// Scalar returns the tolerance value.
func (t Tolerance) Scalar() geom.Scalar {
	return t.inner
}
