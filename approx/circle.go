// Package approx converts exact parametric geometry into polylines and
// point clouds at a caller-chosen tolerance. Curve approximations are
// cached per (curve, boundary) so the two half-edges sharing a curve
// receive the same interior samples, which keeps adjacent faces
// topologically consistent when they are meshed.
package approx

import (
	"math"

	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/geometry"
)

// ApproxPoint is one sample of a curve approximation: the curve parameter
// it was taken at and the global 3D point it maps to.
type ApproxPoint struct {
	PointCurve  geom.Point1
	PointGlobal geom.Point3
}

// CircleApproxParams determines the sampling step for approximating a
// circle at a given tolerance.
type CircleApproxParams struct {
	increment geom.Scalar
}

// NewCircleApproxParams computes sampling parameters for a circle of the
// given radius. The number of points for a full turn is chosen so that
// the sagitta of every chord stays within the tolerance, and never drops
// below 3.
func NewCircleApproxParams(
	tolerance geometry.Tolerance,
	radius geom.Scalar,
) CircleApproxParams {
	numFullTurn := 3.0
	if tolerance.Scalar().Less(radius) {
		ratio := tolerance.Scalar().Div(radius)
		n := math.Ceil(math.Pi / math.Acos(1-ratio.F64()))
		if n > numFullTurn {
			numFullTurn = n
		}
	}

	return CircleApproxParams{
		increment: geom.S(2 * math.Pi / numFullTurn),
	}
}

// Increment returns the angular step between samples.
func (p CircleApproxParams) Increment() geom.Scalar {
	return p.increment
}

// PointsInBoundary returns the sampled parameters strictly inside the
// boundary: the integer multiples of the increment between the boundary
// endpoints, ordered in boundary direction. Boundaries spanning more than
// a full turn simply produce more samples; the circle evaluation wraps.
func (p CircleApproxParams) PointsInBoundary(
	boundary geometry.CurveBoundary,
) []geom.Point1 {
	n := boundary.Normalize()
	min, max := n.Inner[0].T, n.Inner[1].T

	first := int(min.Div(p.increment).Floor().F64()) + 1
	last := int(max.Div(p.increment).Ceil().F64()) - 1

	var points []geom.Point1
	for i := first; i <= last; i++ {
		point := geom.Point1{T: p.increment.Mul(geom.S(float64(i)))}

		// Guard against rounding placing a sample on the boundary
		// itself; boundary points are supplied at half-edge level.
		if !boundary.Contains(point) {
			continue
		}

		points = append(points, point)
	}

	if !boundary.IsNormalized() {
		reverse(points)
	}

	return points
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// ApproxCircle2 samples a 2D circle within the boundary at the given
// tolerance, returning curve parameters paired with points on the circle.
func ApproxCircle2(
	circle geom.Circle2,
	boundary geometry.CurveBoundary,
	tolerance geometry.Tolerance,
) []ApproxPointOnCircle2 {
	params := NewCircleApproxParams(tolerance, circle.Radius())

	var points []ApproxPointOnCircle2
	for _, pointCurve := range params.PointsInBoundary(boundary) {
		points = append(points, ApproxPointOnCircle2{
			PointCurve:  pointCurve,
			PointCircle: circle.PointFromCircleCoords(pointCurve),
		})
	}

	return points
}

// ApproxPointOnCircle2 is one sample of a 2D circle approximation.
type ApproxPointOnCircle2 struct {
	PointCurve  geom.Point1
	PointCircle geom.Point2
}
