package approx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/geometry"
)

func TestCircleApproxParamsFullTurnCount(t *testing.T) {
	tests := []struct {
		name      string
		tolerance float64
		radius    float64
		expected  float64
	}{
		{"ToleranceEqualsRadius", 1, 1, 3},
		{"ToleranceAboveRadius", 2, 1, 3},
		{"HalfRadius", 0.5, 1, math.Ceil(math.Pi / math.Acos(0.5))},
		{"FineTolerance", 0.01, 1, math.Ceil(math.Pi / math.Acos(0.99))},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params := NewCircleApproxParams(
				geometry.ToleranceFromF64(test.tolerance),
				geom.S(test.radius),
			)

			expectedIncrement := 2 * math.Pi / test.expected
			assert.InDelta(
				t, expectedIncrement, params.Increment().F64(), 1e-12,
			)
		})
	}
}

func TestPointsInBoundaryAreStrictlyInside(t *testing.T) {
	params := NewCircleApproxParams(
		geometry.ToleranceFromF64(1), geom.S(1),
	)
	boundary := geometry.Boundary(0, 2*math.Pi)

	points := params.PointsInBoundary(boundary)
	require.Len(t, points, 2)

	for _, p := range points {
		assert.True(t, boundary.Contains(p))
	}
}

func TestPointsInBoundaryReversed(t *testing.T) {
	params := NewCircleApproxParams(
		geometry.ToleranceFromF64(0.1), geom.S(1),
	)

	forward := params.PointsInBoundary(geometry.Boundary(0, 2*math.Pi))
	backward := params.PointsInBoundary(geometry.Boundary(2*math.Pi, 0))

	require.Equal(t, len(forward), len(backward))
	for i, p := range forward {
		assert.Equal(t, p, backward[len(backward)-1-i])
	}
}

func TestApproxMonotonicity(t *testing.T) {
	// Coarser tolerances must never produce more samples than finer
	// ones.
	boundary := geometry.Boundary(0, 2*math.Pi)

	previousCount := -1
	for _, tolerance := range []float64{1, 0.5, 0.1, 0.05, 0.01, 0.001} {
		params := NewCircleApproxParams(
			geometry.ToleranceFromF64(tolerance), geom.S(1),
		)
		count := len(params.PointsInBoundary(boundary))

		assert.GreaterOrEqual(t, count, previousCount)
		previousCount = count
	}
}

func TestChordSagittaBound(t *testing.T) {
	// For every chord between adjacent samples (including the boundary
	// endpoints), the chord midpoint's distance to the arc must stay
	// within the tolerance.
	tests := []struct {
		name      string
		tolerance float64
		radius    float64
	}{
		{"Coarse", 1, 1},
		{"Medium", 0.1, 1},
		{"Fine", 0.001, 1},
		{"LargeRadius", 0.01, 10},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			circle := geom.Circle2FromCenterAndRadius(
				geom.Pt2(0, 0), test.radius,
			)
			boundary := geometry.Boundary(0, 2*math.Pi)
			tolerance := geometry.ToleranceFromF64(test.tolerance)

			var params []geom.Point1
			params = append(params, boundary.Inner[0])
			for _, p := range ApproxCircle2(circle, boundary, tolerance) {
				params = append(params, p.PointCurve)
			}
			params = append(params, boundary.Inner[1])

			for i := 0; i+1 < len(params); i++ {
				a := circle.PointFromCircleCoords(params[i])
				b := circle.PointFromCircleCoords(params[i+1])
				mid := geom.LineSegment2{A: a, B: b}.Center()

				sagitta := test.radius - mid.DistanceTo(geom.Pt2(0, 0)).F64()
				assert.LessOrEqual(t, sagitta, test.tolerance)
			}
		})
	}
}

func TestWholeTurnWraparound(t *testing.T) {
	// A boundary spanning more than a full turn keeps sampling; the
	// circle evaluation wraps around.
	params := NewCircleApproxParams(
		geometry.ToleranceFromF64(1), geom.S(1),
	)

	oneTurn := params.PointsInBoundary(geometry.Boundary(0, 2*math.Pi))
	twoTurns := params.PointsInBoundary(geometry.Boundary(0, 4*math.Pi))

	assert.Greater(t, len(twoTurns), len(oneTurn))
}
