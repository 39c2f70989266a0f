package kernel

import (
	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
	"github.com/sksmith/brep/validate"
)

// LineSegmentHalfEdge builds a half-edge along the straight segment
// between two surface-local points, over a fresh curve with the given
// boundary. The half-edge's start vertex sits at the boundary's start
// parameter.
func LineSegmentHalfEdge(
	c *Core,
	surface storage.Handle[topology.Surface],
	points [2]geom.Point2,
	boundary geometry.CurveBoundary,
) (storage.Handle[topology.HalfEdge], error) {
	curve := c.NewCurve()
	c.Geometry.DefineCurve(curve, surface, geometry.LocalCurveGeom{
		Path: geometry.LinePath2(geom.Line2FromPoints(points[0], points[1])),
	})

	vertex := c.NewVertex()
	c.Geometry.DefineVertex(vertex, curve, geometry.LocalVertexGeom{
		Position: boundary.Inner[0],
	})

	return insertHalfEdge(c, curve, vertex, boundary)
}

func insertHalfEdge(
	c *Core,
	curve storage.Handle[topology.Curve],
	startVertex storage.Handle[topology.Vertex],
	boundary geometry.CurveBoundary,
) (storage.Handle[topology.HalfEdge], error) {
	halfEdge := c.Topology.HalfEdges.Insert(
		topology.NewHalfEdge(curve, startVertex),
	)
	c.Geometry.DefineHalfEdge(halfEdge, geometry.HalfEdgeGeom{
		Boundary: boundary,
	})

	if boundary.Inner[0] == boundary.Inner[1] {
		return halfEdge, validate.Errors{&validate.ZeroLengthBoundary{
			HalfEdge: halfEdge,
			Boundary: boundary,
		}}
	}

	return halfEdge, nil
}

// PolygonCycle builds a closed cycle of line-segment half-edges through
// the given surface-local points. Each segment gets its own curve with
// boundary [0, 1]; consecutive half-edges share their vertices.
func PolygonCycle(
	c *Core,
	surface storage.Handle[topology.Surface],
	points []geom.Point2,
) (storage.Handle[topology.Cycle], error) {
	vertices := make([]storage.Handle[topology.Vertex], len(points))
	for i := range points {
		vertices[i] = c.NewVertex()
	}

	halfEdges := make([]storage.Handle[topology.HalfEdge], 0, len(points))
	for i, point := range points {
		next := points[(i+1)%len(points)]

		curve := c.NewCurve()
		c.Geometry.DefineCurve(curve, surface, geometry.LocalCurveGeom{
			Path: geometry.LinePath2(geom.Line2FromPoints(point, next)),
		})

		boundary := geometry.Boundary(0, 1)
		c.Geometry.DefineVertex(vertices[i], curve, geometry.LocalVertexGeom{
			Position: boundary.Inner[0],
		})
		c.Geometry.DefineVertex(
			vertices[(i+1)%len(points)], curve,
			geometry.LocalVertexGeom{Position: boundary.Inner[1]},
		)

		halfEdge, err := insertHalfEdge(c, curve, vertices[i], boundary)
		if err != nil {
			return storage.Handle[topology.Cycle]{}, err
		}
		halfEdges = append(halfEdges, halfEdge)
	}

	return c.Topology.Cycles.Insert(topology.NewCycle(halfEdges)), nil
}

// InsertRegion builds a region from an exterior cycle and interior
// cycles.
func InsertRegion(
	c *Core,
	exterior storage.Handle[topology.Cycle],
	interiors []storage.Handle[topology.Cycle],
) storage.Handle[topology.Region] {
	return c.Topology.Regions.Insert(topology.NewRegion(exterior, interiors))
}

// InsertFace builds a face from a surface and a region, validating its
// cycles.
func InsertFace(
	c *Core,
	surface storage.Handle[topology.Surface],
	region storage.Handle[topology.Region],
) (storage.Handle[topology.Face], error) {
	face := c.Topology.Faces.Insert(topology.NewFace(surface, region))

	if errs := validate.CheckFace(face, c.Geometry, c.Config); len(errs) > 0 {
		return face, errs
	}

	return face, nil
}

// TriangleFace builds a standalone face over the plane through three
// global points, with surface coordinates a=(0,0), b=(1,0), c=(0,1).
func TriangleFace(
	c *Core,
	points [3]geom.Point3,
) (storage.Handle[topology.Face], error) {
	surface := c.NewSurface(geometry.PlaneFromPoints(
		points[0], points[1], points[2],
	))

	cycle, err := PolygonCycle(c, surface, []geom.Point2{
		geom.Pt2(0, 0), geom.Pt2(1, 0), geom.Pt2(0, 1),
	})
	if err != nil {
		return storage.Handle[topology.Face]{}, err
	}

	region := InsertRegion(c, cycle, nil)

	return InsertFace(c, surface, region)
}

// InsertShell builds a shell from faces and validates it.
func InsertShell(
	c *Core,
	faces []storage.Handle[topology.Face],
) (storage.Handle[topology.Shell], error) {
	shell := c.Topology.Shells.Insert(topology.NewShell(faces))

	if errs := c.ValidateShell(shell); len(errs) > 0 {
		return shell, errs
	}

	return shell, nil
}

// InsertSolid builds a solid from shells and validates it.
func InsertSolid(
	c *Core,
	shells []storage.Handle[topology.Shell],
) (storage.Handle[topology.Solid], error) {
	solid := c.Topology.Solids.Insert(topology.NewSolid(shells))

	if errs := c.ValidateSolid(solid); len(errs) > 0 {
		return solid, errs
	}

	return solid, nil
}
