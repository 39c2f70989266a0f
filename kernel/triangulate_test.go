package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sksmith/brep/approx"
	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/mesh"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

func tetrahedronSolid(t *testing.T, core *Core) storage.Handle[topology.Solid] {
	t.Helper()

	tetrahedron := buildValidTetrahedron(t, core)
	solid, err := InsertSolid(
		core, []storage.Handle[topology.Shell]{tetrahedron.Shell},
	)
	require.NoError(t, err)

	return solid
}

func TestTriangulateTetrahedron(t *testing.T) {
	core := New()
	solid := tetrahedronSolid(t, core)

	m, err := TriangulateSolid(core, solid, geometry.ToleranceFromF64(0.001))
	require.NoError(t, err)

	// Four planar triangular faces, one triangle each, over four shared
	// vertices.
	assert.Equal(t, 4, m.TriangleCount())
	assert.Len(t, m.Vertices(), 4)

	for _, point := range tetrahedronPoints {
		assert.Contains(t, m.Vertices(), point)
	}
}

func TestAutoTolerance(t *testing.T) {
	core := New()
	solid := tetrahedronSolid(t, core)

	tolerance := AutoTolerance(core, solid)

	// The tetrahedron's bounding box is the unit cube; the shortest
	// extent is 1.
	assert.InDelta(t, 0.001, tolerance.Scalar().F64(), 1e-15)
}

func TestSolidAabb(t *testing.T) {
	core := New()
	solid := tetrahedronSolid(t, core)

	aabb := SolidAabb(core, solid)
	assert.Equal(t, geom.Pt3(0, 0, 0), aabb.Min)
	assert.Equal(t, geom.Pt3(1, 1, 1), aabb.Max)
}

func TestTriangulateTriangleFace(t *testing.T) {
	core := New()

	face, err := TriangleFace(core, [3]geom.Point3{
		geom.Pt3(0, 0, 0), geom.Pt3(2, 0, 0), geom.Pt3(0, 2, 0),
	})
	require.NoError(t, err)

	m, err := TriangulateFace(core, face, geometry.ToleranceFromF64(0.01))
	require.NoError(t, err)

	assert.Equal(t, 1, m.TriangleCount())
	assert.True(t, m.ContainsTriangle([3]geom.Point3{
		geom.Pt3(0, 0, 0), geom.Pt3(2, 0, 0), geom.Pt3(0, 2, 0),
	}))
}

func TestTriangulateFaceWithHole(t *testing.T) {
	core := New()

	surface := core.NewSurface(geometry.PlaneFromPoints(
		geom.Pt3(0, 0, 0), geom.Pt3(1, 0, 0), geom.Pt3(0, 1, 0),
	))

	exterior, err := PolygonCycle(core, surface, []geom.Point2{
		geom.Pt2(0, 0), geom.Pt2(4, 0), geom.Pt2(4, 4), geom.Pt2(0, 4),
	})
	require.NoError(t, err)

	hole, err := PolygonCycle(core, surface, []geom.Point2{
		geom.Pt2(1, 1), geom.Pt2(1, 2), geom.Pt2(3, 3), geom.Pt2(3, 1),
	})
	require.NoError(t, err)

	region := InsertRegion(core, exterior, []storage.Handle[topology.Cycle]{
		hole,
	})
	face, err := InsertFace(core, surface, region)
	require.NoError(t, err)

	m, err := TriangulateFace(core, face, geometry.ToleranceFromF64(0.01))
	require.NoError(t, err)
	require.NotZero(t, m.TriangleCount())

	// No triangle may consist of the hole's corners only.
	holeCorners := map[geom.Point3]struct{}{
		geom.Pt3(1, 1, 0): {},
		geom.Pt3(1, 2, 0): {},
		geom.Pt3(3, 3, 0): {},
		geom.Pt3(3, 1, 0): {},
	}
	for i := 0; i < m.TriangleCount(); i++ {
		points := m.TrianglePoints(i)

		allInHole := true
		for _, p := range points {
			if _, ok := holeCorners[p]; !ok {
				allInHole = false

				break
			}
		}
		assert.False(t, allInHole)
	}
}

func TestRegionColorIsEmitted(t *testing.T) {
	core := New()

	face, err := TriangleFace(core, [3]geom.Point3{
		geom.Pt3(0, 0, 0), geom.Pt3(1, 0, 0), geom.Pt3(0, 1, 0),
	})
	require.NoError(t, err)

	blue := mesh.Color{0, 0, 255, 255}
	coloredRegion := SetRegionColor(core, face.Get().Region(), blue)
	coloredFace := UpdateFaceRegion(
		core, face,
		func(storage.Handle[topology.Region]) storage.Handle[topology.Region] {
			return coloredRegion
		},
	)

	m, err := TriangulateFace(
		core, coloredFace, geometry.ToleranceFromF64(0.01),
	)
	require.NoError(t, err)
	require.Equal(t, 1, m.TriangleCount())
	assert.Equal(t, blue, m.Triangles()[0].Color)
}

func TestTriangulationIsDeterministic(t *testing.T) {
	run := func() *mesh.Mesh {
		core := New()
		solid := tetrahedronSolid(t, core)

		m, err := TriangulateSolid(
			core, solid, geometry.ToleranceFromF64(0.001),
		)
		require.NoError(t, err)

		return m
	}

	first := run()
	second := run()

	require.Equal(t, first.TriangleCount(), second.TriangleCount())
	assert.Equal(t, first.Vertices(), second.Vertices())
	for i := 0; i < first.TriangleCount(); i++ {
		assert.Equal(t, first.TrianglePoints(i), second.TrianglePoints(i))
	}
}

func TestFaceApproxSharesCurveSamples(t *testing.T) {
	// The two faces adjacent to each tetrahedron edge must sample the
	// shared curve identically, so the mesh is watertight. For straight
	// edges there are no interior samples, making the check exact: the
	// boundary points of sibling half-edges coincide.
	core := New()
	tetrahedron := buildValidTetrahedron(t, core)

	cache := approx.NewCurveApproxCache()
	tolerance := geometry.ToleranceFromF64(0.001)

	positions := make(map[geom.Point3]int)
	for _, face := range tetrahedron.Shell.Get().Faces() {
		faceApprox, err := approx.ApproxFace(
			face, tolerance, cache, core.Geometry,
		)
		require.NoError(t, err)
		require.Len(t, faceApprox.Exterior.Points, 3)

		for _, p := range faceApprox.Exterior.Points {
			positions[p.PointGlobal]++
		}
	}

	// Four corners, each used by three faces.
	require.Len(t, positions, 4)
	for _, count := range positions {
		assert.Equal(t, 3, count)
	}
}
