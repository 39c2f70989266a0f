package approx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

func TestCacheHitOnExactBoundary(t *testing.T) {
	cache := NewCurveApproxCache()
	curves := storage.NewStore[topology.Curve]()
	curve := curves.Insert(topology.NewCurve())
	boundary := geometry.Boundary(0, 1)

	approx := CurveApprox{Points: []ApproxPoint{
		{PointCurve: geom.Pt1(0.5), PointGlobal: geom.Pt3(0.5, 0, 0)},
	}}
	cache.Insert(curve, boundary, approx)

	hit, ok := cache.Get(curve, boundary)
	require.True(t, ok)
	assert.Equal(t, approx, hit)
}

func TestCacheHitOnReversedBoundary(t *testing.T) {
	cache := NewCurveApproxCache()
	curves := storage.NewStore[topology.Curve]()
	curve := curves.Insert(topology.NewCurve())

	approx := CurveApprox{Points: []ApproxPoint{
		{PointCurve: geom.Pt1(0.25), PointGlobal: geom.Pt3(0.25, 0, 0)},
		{PointCurve: geom.Pt1(0.75), PointGlobal: geom.Pt3(0.75, 0, 0)},
	}}
	cache.Insert(curve, geometry.Boundary(0, 1), approx)

	hit, ok := cache.Get(curve, geometry.Boundary(1, 0))
	require.True(t, ok)
	assert.Equal(t, approx.Reverse(), hit)
}

func TestCacheMissOnDifferentCurve(t *testing.T) {
	cache := NewCurveApproxCache()
	curves := storage.NewStore[topology.Curve]()
	curveA := curves.Insert(topology.NewCurve())
	curveB := curves.Insert(topology.NewCurve())
	boundary := geometry.Boundary(0, 1)

	cache.Insert(curveA, boundary, CurveApprox{})

	_, ok := cache.Get(curveB, boundary)
	assert.False(t, ok)
}

func TestApproxCurveWithCacheSymmetry(t *testing.T) {
	// The cache guarantees approx(curve, boundary) ==
	// reverse(approx(curve, boundary.reverse())), which keeps the two
	// sibling half-edges of a shared curve sampled identically.
	cache := NewCurveApproxCache()
	curves := storage.NewStore[topology.Curve]()
	surfaces := storage.NewStore[topology.Surface]()
	sideTable := geometry.New()

	curve := curves.Insert(topology.NewCurve())
	surface := surfaces.Insert(topology.NewSurface())

	sideTable.DefineSurface(surface, geometry.SweptCurve{
		U: geometry.LinePath3(geom.Line3{
			Origin:    geom.Pt3(0, 0, 0),
			Direction: geom.Vec3(1, 0, 0),
		}),
		V: geom.Vec3(0, 0, 1),
	})
	sideTable.DefineCurve(curve, surface, geometry.LocalCurveGeom{
		Path: geometry.CirclePath2(
			geom.Circle2FromCenterAndRadius(geom.Pt2(0, 0), 1),
		),
	})

	boundary := geometry.Boundary(0, 2*math.Pi)
	tolerance := geometry.ToleranceFromF64(0.1)

	forward, err := ApproxCurveWithCache(
		curve, surface, boundary, tolerance, cache, sideTable,
	)
	require.NoError(t, err)
	require.NotEmpty(t, forward.Points)

	backward, err := ApproxCurveWithCache(
		curve, surface, boundary.Reverse(), tolerance, cache, sideTable,
	)
	require.NoError(t, err)

	assert.Equal(t, forward, backward.Reverse())
}

func TestApproxCurveWithCacheMissingGeometry(t *testing.T) {
	cache := NewCurveApproxCache()
	curves := storage.NewStore[topology.Curve]()
	surfaces := storage.NewStore[topology.Surface]()

	curve := curves.Insert(topology.NewCurve())
	surface := surfaces.Insert(topology.NewSurface())

	_, err := ApproxCurveWithCache(
		curve, surface, geometry.Boundary(0, 1),
		geometry.ToleranceFromF64(1), cache, geometry.New(),
	)

	assert.Error(t, err)
}
