package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/kernel"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
	"github.com/sksmith/brep/validate"
)

var tetrahedronPoints = [4]geom.Point3{
	geom.Pt3(0, 0, 0),
	geom.Pt3(0, 1, 0),
	geom.Pt3(1, 0, 0),
	geom.Pt3(0, 0, 1),
}

func buildTetrahedron(t *testing.T, core *kernel.Core) kernel.Tetrahedron {
	t.Helper()

	tetrahedron, err := kernel.BuildTetrahedron(core, tetrahedronPoints)
	require.NoError(t, err)

	return tetrahedron
}

func containsError[T error](errs validate.Errors) bool {
	for _, err := range errs.All() {
		if _, ok := err.(T); ok {
			return true
		}
	}

	return false
}

func TestCurveGeometryMismatchIsDetected(t *testing.T) {
	core := kernel.New()
	tetrahedron := buildTetrahedron(t, core)

	require.NoError(
		t,
		validate.CheckShell(tetrahedron.Shell, core.Geometry, core.Config).Err(),
	)

	// Redefine one shared curve's geometry on one of its two surfaces
	// with the reversed path. The curve then runs b-to-a on that surface
	// while still running a-to-b on the other, so sampling the two local
	// definitions at the same parameters diverges in 3D.
	h := topology.ShellHalfEdges(tetrahedron.Shell.Get())[0]
	curve := h.HalfEdge.Get().Curve()

	local, ok := core.Geometry.OfCurve(curve, h.Surface)
	require.True(t, ok)
	line, ok := local.Path.Line()
	require.True(t, ok)

	reversed := geometry.LinePath2(geom.Line2FromPoints(
		line.PointFromLineCoords(geom.Pt1(1)),
		line.PointFromLineCoords(geom.Pt1(0)),
	))
	core.Geometry.DefineCurve(curve, h.Surface, geometry.LocalCurveGeom{
		Path: reversed,
	})

	errs := validate.CheckShell(tetrahedron.Shell, core.Geometry, core.Config)
	require.Error(t, errs.Err())
	assert.True(t, containsError[*validate.CurveGeometryMismatch](errs))

	// The reversed definition still traces the same segment in 3D, so
	// the sibling pair remains coincident.
	assert.False(t, containsError[*validate.IdenticalEdgesNotCoincident](errs))
}

func TestIdenticalEdgesNotCoincidentIsDetected(t *testing.T) {
	core := kernel.New()
	tetrahedron := buildTetrahedron(t, core)

	// Redefine one shared curve's geometry on one surface with a path
	// towards an unrelated point. The two half-edges are still siblings
	// structurally, but no longer coincide in 3D in either orientation.
	h := topology.ShellHalfEdges(tetrahedron.Shell.Get())[0]
	curve := h.HalfEdge.Get().Curve()

	local, ok := core.Geometry.OfCurve(curve, h.Surface)
	require.True(t, ok)
	line, ok := local.Path.Line()
	require.True(t, ok)

	start := line.PointFromLineCoords(geom.Pt1(0))
	skewed := geometry.LinePath2(geom.Line2FromPoints(
		start, start.Add(geom.Vec2(0.37, 0.41)),
	))
	core.Geometry.DefineCurve(curve, h.Surface, geometry.LocalCurveGeom{
		Path: skewed,
	})

	errs := validate.CheckShell(tetrahedron.Shell, core.Geometry, core.Config)
	require.Error(t, errs.Err())
	assert.True(t, containsError[*validate.IdenticalEdgesNotCoincident](errs))
	assert.True(t, containsError[*validate.CurveGeometryMismatch](errs))
}

func TestIdenticalVerticesNotCoincidentIsDetected(t *testing.T) {
	core := kernel.New()
	tetrahedron := buildTetrahedron(t, core)

	solid, err := kernel.InsertSolid(
		core, []storage.Handle[topology.Shell]{tetrahedron.Shell},
	)
	require.NoError(t, err)

	// Shrink one half-edge's boundary so its start position slides to
	// the middle of the edge. Its start vertex still bounds two other
	// half-edges at the original corner, so the same vertex now shows
	// up at two positions.
	h := topology.ShellHalfEdges(tetrahedron.Shell.Get())[0]
	halfEdgeGeom, ok := core.Geometry.OfHalfEdge(h.HalfEdge)
	require.True(t, ok)

	start, end := halfEdgeGeom.Boundary.Inner[0], halfEdgeGeom.Boundary.Inner[1]
	middle := start.Add(end.Sub(start).Div(geom.S(2)))
	core.Geometry.DefineHalfEdge(h.HalfEdge, geometry.HalfEdgeGeom{
		Boundary: geometry.CurveBoundary{Inner: [2]geom.Point1{middle, end}},
	})

	errs := validate.CheckSolid(solid, core.Geometry, core.Config)
	require.Error(t, errs.Err())
	assert.True(t, containsError[*validate.IdenticalVerticesNotCoincident](errs))
}

func TestVerticesAreCoincidentIsDetected(t *testing.T) {
	core := kernel.New()
	surface := core.NewSurface(geometry.PlaneFromPoints(
		geom.Pt3(0, 0, 0), geom.Pt3(1, 0, 0), geom.Pt3(0, 1, 0),
	))

	// The boundary parameters are distinct, but the segment is so short
	// that its bounding positions coincide in 3D.
	halfEdge, err := kernel.LineSegmentHalfEdge(
		core, surface,
		[2]geom.Point2{geom.Pt2(0, 0), geom.Pt2(1e-12, 0)},
		geometry.Boundary(0, 1),
	)
	require.NoError(t, err)

	errs := validate.CheckHalfEdge(
		topology.HalfEdgeWithContext{HalfEdge: halfEdge, Surface: surface},
		core.Geometry, core.Config,
	)
	require.Error(t, errs.Err())
	assert.True(t, containsError[*validate.VerticesAreCoincident](errs))
	assert.False(t, containsError[*validate.ZeroLengthBoundary](errs))
}

func TestCurveMismatchIsDetected(t *testing.T) {
	core := kernel.New()

	face, err := kernel.TriangleFace(core, [3]geom.Point3{
		geom.Pt3(0, 0, 0), geom.Pt3(1, 0, 0), geom.Pt3(0, 1, 0),
	})
	require.NoError(t, err)

	// Swap one half-edge's curve for a bare one that carries no local
	// geometry on the face's surface.
	region := face.Get().Region()
	cycle := region.Get().Exterior()

	newCycle := kernel.UpdateCycleHalfEdge(
		core, cycle, 0,
		func(h storage.Handle[topology.HalfEdge]) storage.Handle[topology.HalfEdge] {
			bare := core.NewCurve()
			replacement := core.Topology.HalfEdges.Insert(
				topology.NewHalfEdge(bare, h.Get().StartVertex()),
			)
			oldGeom, ok := core.Geometry.OfHalfEdge(h)
			require.True(t, ok)
			core.Geometry.DefineHalfEdge(replacement, oldGeom)

			return replacement
		},
	)
	newRegion := kernel.UpdateRegionExterior(
		core, region,
		func(storage.Handle[topology.Cycle]) storage.Handle[topology.Cycle] {
			return newCycle
		},
	)
	newFace := kernel.UpdateFaceRegion(
		core, face,
		func(storage.Handle[topology.Region]) storage.Handle[topology.Region] {
			return newRegion
		},
	)

	errs := validate.CheckFace(newFace, core.Geometry, core.Config)
	require.Error(t, errs.Err())
	assert.True(t, containsError[*validate.CurveMismatch](errs))
}

func TestGlobalVertexMismatchIsDetected(t *testing.T) {
	core := kernel.New()

	face, err := kernel.TriangleFace(core, [3]geom.Point3{
		geom.Pt3(0, 0, 0), geom.Pt3(1, 0, 0), geom.Pt3(0, 1, 0),
	})
	require.NoError(t, err)

	require.NoError(
		t, validate.CheckFace(face, core.Geometry, core.Config).Err(),
	)

	// Truncate the first half-edge's boundary. It now ends halfway
	// along its segment, away from where the next half-edge starts.
	halfEdge := face.Get().Region().Get().Exterior().Get().HalfEdges()[0]
	core.Geometry.DefineHalfEdge(halfEdge, geometry.HalfEdgeGeom{
		Boundary: geometry.Boundary(0, 0.5),
	})

	errs := validate.CheckFace(face, core.Geometry, core.Config)
	require.Error(t, errs.Err())
	assert.True(t, containsError[*validate.GlobalVertexMismatch](errs))
	assert.False(t, containsError[*validate.VerticesAreCoincident](errs))
}
