package approx

import (
	"errors"

	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/geometry"
)

// ErrCircleOnCurvedSurface is returned when a circular path lies on a
// surface whose u-curve is itself a circle. Approximating that
// combination is not supported.
var ErrCircleOnCurvedSurface = errors.New(
	"approximating a circle on a curved surface is not supported",
)

// CurveApprox is the approximation of a curve within a boundary. It
// contains only the points strictly inside the boundary; the boundary
// points themselves are part of half-edge approximation.
type CurveApprox struct {
	Points []ApproxPoint
}

// Reverse returns the approximation with its point order flipped.
func (a CurveApprox) Reverse() CurveApprox {
	points := make([]ApproxPoint, len(a.Points))
	for i, p := range a.Points {
		points[len(points)-1-i] = p
	}

	return CurveApprox{Points: points}
}

// ApproxCurve approximates a curve, defined by its local path on a
// surface, within the given boundary.
func ApproxCurve(
	path geometry.Path2,
	surface geometry.SweptCurve,
	boundary geometry.CurveBoundary,
	tolerance geometry.Tolerance,
) (CurveApprox, error) {
	if circle, ok := path.Circle(); ok {
		if _, uIsCircle := surface.U.Circle(); uIsCircle {
			return CurveApprox{}, ErrCircleOnCurvedSurface
		}

		return approxCircleOnStraightSurface(
			circle, boundary, surface, tolerance,
		), nil
	}

	line, _ := path.Line()

	return approxLineOnAnySurface(line, boundary, surface, tolerance), nil
}

func approxCircleOnStraightSurface(
	circle geom.Circle2,
	boundary geometry.CurveBoundary,
	surface geometry.SweptCurve,
	tolerance geometry.Tolerance,
) CurveApprox {
	var points []ApproxPoint
	for _, sample := range ApproxCircle2(circle, boundary, tolerance) {
		points = append(points, ApproxPoint{
			PointCurve:  sample.PointCurve,
			PointGlobal: surface.PointFromSurfaceCoords(sample.PointCircle),
		})
	}

	return CurveApprox{Points: points}
}

func approxLineOnAnySurface(
	line geom.Line2,
	boundary geometry.CurveBoundary,
	surface geometry.SweptCurve,
	tolerance geometry.Tolerance,
) CurveApprox {
	uCircle, uIsCircle := surface.U.Circle()
	if !uIsCircle {
		// The surface is planar; line segments on it are exact.
		return CurveApprox{}
	}

	// Map the boundary through the line into u-coordinates, sample the
	// surface's u-circle there, and map each sampled u back to a line
	// parameter. A line transverse to u produces an empty u-range and
	// therefore no samples.
	rangeU := geometry.CurveBoundary{Inner: [2]geom.Point1{
		{T: line.PointFromLineCoords(boundary.Inner[0]).U},
		{T: line.PointFromLineCoords(boundary.Inner[1]).U},
	}}

	params := NewCircleApproxParams(tolerance, uCircle.Radius())

	var points []ApproxPoint
	for _, u := range params.PointsInBoundary(rangeU) {
		t := geom.Point1{T: u.T.Sub(line.Origin.U).Div(line.Direction.U)}
		pointSurface := line.PointFromLineCoords(t)
		points = append(points, ApproxPoint{
			PointCurve:  t,
			PointGlobal: surface.PointFromSurfaceCoords(pointSurface),
		})
	}

	return CurveApprox{Points: points}
}
