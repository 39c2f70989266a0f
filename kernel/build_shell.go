package kernel

import (
	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// faceLocals are the surface coordinates assigned to a triangular face's
// corners: the plane through the corners maps them to (0,0), (1,0), and
// (0,1).
var faceLocals = [3]geom.Point2{
	geom.Pt2(0, 0), geom.Pt2(1, 0), geom.Pt2(0, 1),
}

type vertexPair struct {
	a, b storage.ObjectId
}

// sharedCurve tracks a curve created for a directed vertex pair, so the
// reverse use on the neighboring face reuses the same curve with the
// reversed boundary.
type sharedCurve struct {
	curve storage.Handle[topology.Curve]
}

// ShellFromVerticesAndIndices builds a closed shell from triangle soup:
// global vertex positions plus index triples. Triangles must be
// consistently oriented, so every undirected edge appears once in each
// direction; the two uses then share one curve with reversed boundaries,
// which makes the shell watertight. The result is validated.
func ShellFromVerticesAndIndices(
	c *Core,
	positions []geom.Point3,
	indices [][3]int,
) (storage.Handle[topology.Shell], error) {
	vertices := make([]storage.Handle[topology.Vertex], len(positions))
	for i := range positions {
		vertices[i] = c.NewVertex()
	}

	curves := make(map[vertexPair]sharedCurve)

	var faces []storage.Handle[topology.Face]
	for _, triangle := range indices {
		surface := c.NewSurface(geometry.PlaneFromPoints(
			positions[triangle[0]],
			positions[triangle[1]],
			positions[triangle[2]],
		))

		halfEdges := make([]storage.Handle[topology.HalfEdge], 0, 3)
		for i := 0; i < 3; i++ {
			startIndex := triangle[i]
			endIndex := triangle[(i+1)%3]
			startLocal := faceLocals[i]
			endLocal := faceLocals[(i+1)%3]

			start := vertices[startIndex]
			end := vertices[endIndex]

			var curve storage.Handle[topology.Curve]
			var boundary geometry.CurveBoundary

			if shared, ok := curves[vertexPair{a: end.ID(), b: start.ID()}]; ok {
				// The neighboring face created this curve for the
				// reverse direction: curve parameter 0 maps to this
				// half-edge's end vertex. Define the local path in
				// that original direction and traverse it backwards.
				curve = shared.curve
				boundary = geometry.Boundary(1, 0)
				c.Geometry.DefineCurve(curve, surface, geometry.LocalCurveGeom{
					Path: geometry.LinePath2(
						geom.Line2FromPoints(endLocal, startLocal),
					),
				})
			} else {
				curve = c.NewCurve()
				boundary = geometry.Boundary(0, 1)
				c.Geometry.DefineCurve(curve, surface, geometry.LocalCurveGeom{
					Path: geometry.LinePath2(
						geom.Line2FromPoints(startLocal, endLocal),
					),
				})
				c.Geometry.DefineVertex(start, curve, geometry.LocalVertexGeom{
					Position: boundary.Inner[0],
				})
				c.Geometry.DefineVertex(end, curve, geometry.LocalVertexGeom{
					Position: boundary.Inner[1],
				})
				curves[vertexPair{a: start.ID(), b: end.ID()}] = sharedCurve{
					curve: curve,
				}
			}

			halfEdge, err := insertHalfEdge(c, curve, start, boundary)
			if err != nil {
				return storage.Handle[topology.Shell]{}, err
			}
			halfEdges = append(halfEdges, halfEdge)
		}

		cycle := c.Topology.Cycles.Insert(topology.NewCycle(halfEdges))
		region := InsertRegion(c, cycle, nil)
		face, err := InsertFace(c, surface, region)
		if err != nil {
			return storage.Handle[topology.Shell]{}, err
		}
		faces = append(faces, face)
	}

	return InsertShell(c, faces)
}

// Tetrahedron is a tetrahedral shell together with its four faces.
type Tetrahedron struct {
	Shell storage.Handle[topology.Shell]
	Faces [4]storage.Handle[topology.Face]
}

// tetrahedronIndices orients the four triangles consistently, so every
// edge is used once in each direction.
var tetrahedronIndices = [][3]int{
	{0, 1, 2},
	{0, 2, 3},
	{0, 3, 1},
	{1, 3, 2},
}

// BuildTetrahedron builds a validated tetrahedral shell from four points.
func BuildTetrahedron(
	c *Core,
	points [4]geom.Point3,
) (Tetrahedron, error) {
	shell, err := ShellFromVerticesAndIndices(
		c, points[:], tetrahedronIndices,
	)

	tetrahedron := Tetrahedron{Shell: shell}
	if !shell.IsZero() {
		for i, face := range shell.Get().Faces() {
			tetrahedron.Faces[i] = face
		}
	}

	return tetrahedron, err
}
