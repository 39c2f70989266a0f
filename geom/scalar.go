// Package geom provides the math primitives the kernel is built on:
// an exact-equality Scalar, fixed-dimensional points and vectors, lines,
// circles, segments, triangles, and axis-aligned bounding boxes.
//
// Every numeric comparison in the kernel routes through Scalar, which
// rejects NaN and infinities on construction and therefore supports total
// ordering and use as a map key.
package geom

import "math"

// Scalar wraps a finite 64-bit float. Construction panics on NaN or
// infinity, so two Scalars can always be compared and hashed.
type Scalar struct {
	inner float64
}

// S constructs a Scalar from a float64. It panics if the value is NaN or
// infinite; feeding non-finite values into the kernel is a programming
// error, not a recoverable condition.
func S(value float64) Scalar {
	if math.IsNaN(value) {
		panic("scalar must not be NaN")
	}
	if math.IsInf(value, 0) {
		panic("scalar must be finite")
	}

	return Scalar{inner: value}
}

// F64 returns the wrapped float64.
func (s Scalar) F64() float64 {
	return s.inner
}

// Add returns s + other.
func (s Scalar) Add(other Scalar) Scalar {
	return S(s.inner + other.inner)
}

// Sub returns s - other.
func (s Scalar) Sub(other Scalar) Scalar {
	return S(s.inner - other.inner)
}

// Mul returns s * other.
func (s Scalar) Mul(other Scalar) Scalar {
	return S(s.inner * other.inner)
}

// Div returns s / other.
func (s Scalar) Div(other Scalar) Scalar {
	return S(s.inner / other.inner)
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	return S(-s.inner)
}

// Abs returns the absolute value of s.
func (s Scalar) Abs() Scalar {
	return S(math.Abs(s.inner))
}

// Sqrt returns the square root of s.
func (s Scalar) Sqrt() Scalar {
	return S(math.Sqrt(s.inner))
}

// Floor returns the largest integer value <= s.
func (s Scalar) Floor() Scalar {
	return S(math.Floor(s.inner))
}

// Ceil returns the smallest integer value >= s.
func (s Scalar) Ceil() Scalar {
	return S(math.Ceil(s.inner))
}

// Sin returns the sine of s, interpreted as an angle in radians.
func (s Scalar) Sin() Scalar {
	return S(math.Sin(s.inner))
}

// Cos returns the cosine of s, interpreted as an angle in radians.
func (s Scalar) Cos() Scalar {
	return S(math.Cos(s.inner))
}

// Acos returns the arc cosine of s.
func (s Scalar) Acos() Scalar {
	return S(math.Acos(s.inner))
}

// Sign returns -1, 0, or +1 depending on the sign of s.
func (s Scalar) Sign() int {
	switch {
	case s.inner < 0:
		return -1
	case s.inner > 0:
		return +1
	default:
		return 0
	}
}

// Less reports whether s < other.
func (s Scalar) Less(other Scalar) bool {
	return s.inner < other.inner
}

// LessEq reports whether s <= other.
func (s Scalar) LessEq(other Scalar) bool {
	return s.inner <= other.inner
}

// Cmp compares s and other, returning -1, 0, or +1.
func (s Scalar) Cmp(other Scalar) int {
	switch {
	case s.inner < other.inner:
		return -1
	case s.inner > other.inner:
		return +1
	default:
		return 0
	}
}

// Min returns the smaller of s and other.
func (s Scalar) Min(other Scalar) Scalar {
	if other.inner < s.inner {
		return other
	}

	return s
}

// Max returns the larger of s and other.
func (s Scalar) Max(other Scalar) Scalar {
	if other.inner > s.inner {
		return other
	}

	return s
}
