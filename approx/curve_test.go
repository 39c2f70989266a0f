package approx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/geometry"
)

func xzPlane() geometry.SweptCurve {
	return geometry.SweptCurve{
		U: geometry.LinePath3(geom.Line3{
			Origin:    geom.Pt3(0, 0, 0),
			Direction: geom.Vec3(1, 0, 0),
		}),
		V: geom.Vec3(0, 0, 1),
	}
}

func unitCylinder() geometry.SweptCurve {
	return geometry.SweptCurve{
		U: geometry.CirclePath3(
			geom.Circle3FromCenterAndRadius(geom.Pt3(0, 0, 0), 1),
		),
		V: geom.Vec3(0, 0, 1),
	}
}

func TestApproxLineOnFlatSurface(t *testing.T) {
	path := geometry.LinePath2(
		geom.Line2FromPoints(geom.Pt2(1, 1), geom.Pt2(2, 1)),
	)
	boundary := geometry.Boundary(0, 1)

	approx, err := ApproxCurve(
		path, xzPlane(), boundary, geometry.ToleranceFromF64(1),
	)

	require.NoError(t, err)
	assert.Empty(t, approx.Points)
}

func TestApproxLineOnCurvedSurfaceButNotAlongCurve(t *testing.T) {
	path := geometry.LinePath2(
		geom.Line2FromPoints(geom.Pt2(1, 1), geom.Pt2(2, 1)),
	)
	boundary := geometry.Boundary(0, 1)

	approx, err := ApproxCurve(
		path, unitCylinder(), boundary, geometry.ToleranceFromF64(1),
	)

	require.NoError(t, err)
	assert.Empty(t, approx.Points)
}

func TestApproxLineOnCurvedSurfaceAlongCurve(t *testing.T) {
	// The path maps its parameter u to surface coordinates (u, 1), so
	// it runs along the cylinder's u-circle at height one.
	surface := unitCylinder()
	path := geometry.LinePath2(geom.Line2{
		Origin:    geom.Pt2(0, 1),
		Direction: geom.Vec2(1, 0),
	})
	boundary := geometry.Boundary(0, 2*math.Pi)
	tolerance := geometry.ToleranceFromF64(1)

	approx, err := ApproxCurve(path, surface, boundary, tolerance)
	require.NoError(t, err)

	circle, ok := surface.U.Circle()
	require.True(t, ok)

	var expected []ApproxPoint
	for _, sample := range ApproxCircle2(
		geom.Circle2FromCenterAndRadius(geom.Pt2(0, 0), circle.Radius().F64()),
		boundary, tolerance,
	) {
		pointSurface := path.PointFromPathCoords(sample.PointCurve)
		expected = append(expected, ApproxPoint{
			PointCurve:  sample.PointCurve,
			PointGlobal: surface.PointFromSurfaceCoords(pointSurface),
		})
	}

	assert.Equal(t, expected, approx.Points)
}

func TestApproxCircleOnFlatSurface(t *testing.T) {
	surface := xzPlane()
	circle := geom.Circle2FromCenterAndRadius(geom.Pt2(0, 0), 1)
	path := geometry.CirclePath2(circle)
	boundary := geometry.Boundary(0, 2*math.Pi)
	tolerance := geometry.ToleranceFromF64(1)

	approx, err := ApproxCurve(path, surface, boundary, tolerance)
	require.NoError(t, err)

	var expected []ApproxPoint
	for _, sample := range ApproxCircle2(circle, boundary, tolerance) {
		expected = append(expected, ApproxPoint{
			PointCurve:  sample.PointCurve,
			PointGlobal: surface.PointFromSurfaceCoords(sample.PointCircle),
		})
	}

	require.NotEmpty(t, expected)
	assert.Equal(t, expected, approx.Points)

	for _, p := range approx.Points {
		assert.True(t, boundary.Contains(p.PointCurve))
	}
}

func TestApproxCircleOnCurvedSurfaceFails(t *testing.T) {
	path := geometry.CirclePath2(
		geom.Circle2FromCenterAndRadius(geom.Pt2(0, 0), 1),
	)
	boundary := geometry.Boundary(0, 2*math.Pi)

	_, err := ApproxCurve(
		path, unitCylinder(), boundary, geometry.ToleranceFromF64(1),
	)

	assert.ErrorIs(t, err, ErrCircleOnCurvedSurface)
}
