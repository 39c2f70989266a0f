package geometry

import (
	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// LocalCurveGeom is a curve's definition in the coordinates of one
// surface. The same curve may carry one local definition per surface it
// lies on.
type LocalCurveGeom struct {
	Path Path2
}

// LocalVertexGeom is a vertex's position on one curve it lies on.
type LocalVertexGeom struct {
	Position geom.Point1
}

// HalfEdgeGeom is a half-edge's boundary on its curve, in directed order.
type HalfEdgeGeom struct {
	Boundary CurveBoundary
}

type curveSurfaceKey struct {
	curve   storage.Handle[topology.Curve]
	surface storage.Handle[topology.Surface]
}

type vertexCurveKey struct {
	vertex storage.Handle[topology.Vertex]
	curve  storage.Handle[topology.Curve]
}

// Geometry is the side-table that attaches geometric definitions to the
// topology layer's identity tokens. Entries are inserted or overwritten by
// the define methods; no reference counting is performed, and orphan
// entries are harmless.
type Geometry struct {
	curves    map[curveSurfaceKey]LocalCurveGeom
	vertices  map[vertexCurveKey]LocalVertexGeom
	surfaces  map[storage.Handle[topology.Surface]]SweptCurve
	halfEdges map[storage.Handle[topology.HalfEdge]]HalfEdgeGeom

	// surfacesOfCurve keeps, per curve, the surfaces it has local
	// definitions on, in definition order. Maps alone would make
	// cross-surface iteration non-deterministic.
	surfacesOfCurve map[storage.Handle[topology.Curve]][]storage.Handle[topology.Surface]
}

// New creates an empty geometry side-table.
func New() *Geometry {
	return &Geometry{
		curves:          make(map[curveSurfaceKey]LocalCurveGeom),
		vertices:        make(map[vertexCurveKey]LocalVertexGeom),
		surfaces:        make(map[storage.Handle[topology.Surface]]SweptCurve),
		halfEdges:       make(map[storage.Handle[topology.HalfEdge]]HalfEdgeGeom),
		surfacesOfCurve: make(map[storage.Handle[topology.Curve]][]storage.Handle[topology.Surface]),
	}
}

// DefineCurve inserts or overwrites a curve's local definition on a
// surface.
func (g *Geometry) DefineCurve(
	curve storage.Handle[topology.Curve],
	surface storage.Handle[topology.Surface],
	local LocalCurveGeom,
) {
	key := curveSurfaceKey{curve: curve, surface: surface}
	if _, exists := g.curves[key]; !exists {
		g.surfacesOfCurve[curve] = append(g.surfacesOfCurve[curve], surface)
	}
	g.curves[key] = local
}

// OfCurve returns a curve's local definition on a surface.
func (g *Geometry) OfCurve(
	curve storage.Handle[topology.Curve],
	surface storage.Handle[topology.Surface],
) (LocalCurveGeom, bool) {
	local, ok := g.curves[curveSurfaceKey{curve: curve, surface: surface}]

	return local, ok
}

// SurfacesOfCurve returns the surfaces a curve has local definitions on,
// in definition order.
func (g *Geometry) SurfacesOfCurve(
	curve storage.Handle[topology.Curve],
) []storage.Handle[topology.Surface] {
	return g.surfacesOfCurve[curve]
}

// DefineVertex inserts or overwrites a vertex's position on a curve.
func (g *Geometry) DefineVertex(
	vertex storage.Handle[topology.Vertex],
	curve storage.Handle[topology.Curve],
	local LocalVertexGeom,
) {
	g.vertices[vertexCurveKey{vertex: vertex, curve: curve}] = local
}

// OfVertex returns a vertex's position on a curve.
func (g *Geometry) OfVertex(
	vertex storage.Handle[topology.Vertex],
	curve storage.Handle[topology.Curve],
) (LocalVertexGeom, bool) {
	local, ok := g.vertices[vertexCurveKey{vertex: vertex, curve: curve}]

	return local, ok
}

// DefineSurface inserts or overwrites a surface's swept-curve geometry.
func (g *Geometry) DefineSurface(
	surface storage.Handle[topology.Surface],
	geometry SweptCurve,
) {
	g.surfaces[surface] = geometry
}

// OfSurface returns a surface's swept-curve geometry.
func (g *Geometry) OfSurface(
	surface storage.Handle[topology.Surface],
) (SweptCurve, bool) {
	geometry, ok := g.surfaces[surface]

	return geometry, ok
}

// DefineHalfEdge inserts or overwrites a half-edge's boundary.
func (g *Geometry) DefineHalfEdge(
	halfEdge storage.Handle[topology.HalfEdge],
	geometry HalfEdgeGeom,
) {
	g.halfEdges[halfEdge] = geometry
}

// OfHalfEdge returns a half-edge's boundary.
func (g *Geometry) OfHalfEdge(
	halfEdge storage.Handle[topology.HalfEdge],
) (HalfEdgeGeom, bool) {
	geometry, ok := g.halfEdges[halfEdge]

	return geometry, ok
}

// CopyCurveGeometry copies every local definition of the source curve to
// the target curve. The target ends up with the same geometry on the same
// surfaces.
func (g *Geometry) CopyCurveGeometry(
	from, to storage.Handle[topology.Curve],
) {
	for _, surface := range g.surfacesOfCurve[from] {
		local := g.curves[curveSurfaceKey{curve: from, surface: surface}]
		g.DefineCurve(to, surface, local)
	}
}
