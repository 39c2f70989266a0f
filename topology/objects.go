// Package topology defines the b-rep object graph: vertices, curves,
// half-edges, cycles, regions, faces, shells, and solids. Objects here are
// pure topology; all geometry lives in the geometry package's side-tables,
// keyed by the handles defined here.
//
// The graph is a DAG: Solid -> Shell -> Face -> Region -> Cycle ->
// HalfEdge -> (Curve, Vertex). Objects are immutable once inserted;
// mutation happens by cloning with edits and inserting the new version.
package topology

import (
	"github.com/sksmith/brep/mesh"
	"github.com/sksmith/brep/storage"
)

// Curve is an identity token for the curve underlying one or more
// half-edges. It has no intrinsic geometry; local definitions per surface
// are kept in the geometry side-table.
type Curve struct{}

// NewCurve creates a curve token.
func NewCurve() Curve {
	return Curve{}
}

// Vertex is an identity token for a 0-cell. Its position on each curve it
// lies on is kept in the geometry side-table.
type Vertex struct{}

// NewVertex creates a vertex token.
func NewVertex() Vertex {
	return Vertex{}
}

// Surface is an identity token for a surface. Its swept-curve geometry is
// kept in the geometry side-table.
type Surface struct{}

// NewSurface creates a surface token.
func NewSurface() Surface {
	return Surface{}
}

// HalfEdge is an oriented use of a curve, starting at a vertex. Its end
// vertex is the start vertex of the next half-edge in its cycle; its
// boundary on the curve is kept in the geometry side-table.
type HalfEdge struct {
	curve       storage.Handle[Curve]
	startVertex storage.Handle[Vertex]
}

// NewHalfEdge creates a half-edge over the given curve, starting at the
// given vertex.
func NewHalfEdge(
	curve storage.Handle[Curve],
	startVertex storage.Handle[Vertex],
) HalfEdge {
	return HalfEdge{curve: curve, startVertex: startVertex}
}

// Curve returns the curve the half-edge lies on.
func (h *HalfEdge) Curve() storage.Handle[Curve] {
	return h.curve
}

// StartVertex returns the vertex the half-edge starts at.
func (h *HalfEdge) StartVertex() storage.Handle[Vertex] {
	return h.startVertex
}

// Cycle is an ordered, closed chain of half-edges. Each half-edge ends
// where the next one starts; the last half-edge ends at the first one's
// start vertex.
type Cycle struct {
	halfEdges []storage.Handle[HalfEdge]
}

// NewCycle creates a cycle from the given half-edges.
func NewCycle(halfEdges []storage.Handle[HalfEdge]) Cycle {
	return Cycle{halfEdges: halfEdges}
}

// HalfEdges returns the cycle's half-edges, in order.
func (c *Cycle) HalfEdges() []storage.Handle[HalfEdge] {
	return c.halfEdges
}

// IndexOf returns the position of the given half-edge within the cycle,
// or -1 if the cycle does not contain it.
func (c *Cycle) IndexOf(halfEdge storage.Handle[HalfEdge]) int {
	for i, h := range c.halfEdges {
		if h == halfEdge {
			return i
		}
	}

	return -1
}

// EndVertexOf returns the end vertex of the half-edge at the given index:
// the start vertex of the next half-edge, wrapping around.
func (c *Cycle) EndVertexOf(index int) storage.Handle[Vertex] {
	next := c.halfEdges[(index+1)%len(c.halfEdges)]

	return next.Get().StartVertex()
}

// BoundingVerticesOf returns the start and end vertices of the half-edge
// at the given index.
func (c *Cycle) BoundingVerticesOf(index int) [2]storage.Handle[Vertex] {
	return [2]storage.Handle[Vertex]{
		c.halfEdges[index].Get().StartVertex(),
		c.EndVertexOf(index),
	}
}

// Region is a face's 2D extent on its surface: one exterior cycle plus
// zero or more interior cycles bounding holes, optionally colored.
type Region struct {
	exterior  storage.Handle[Cycle]
	interiors []storage.Handle[Cycle]
	color     *mesh.Color
}

// NewRegion creates a region from an exterior cycle and interior cycles.
func NewRegion(
	exterior storage.Handle[Cycle],
	interiors []storage.Handle[Cycle],
) Region {
	return Region{exterior: exterior, interiors: interiors}
}

// Exterior returns the region's exterior cycle.
func (r *Region) Exterior() storage.Handle[Cycle] {
	return r.exterior
}

// Interiors returns the region's interior cycles.
func (r *Region) Interiors() []storage.Handle[Cycle] {
	return r.interiors
}

// AllCycles returns the exterior cycle followed by the interiors.
func (r *Region) AllCycles() []storage.Handle[Cycle] {
	cycles := make([]storage.Handle[Cycle], 0, 1+len(r.interiors))
	cycles = append(cycles, r.exterior)
	cycles = append(cycles, r.interiors...)

	return cycles
}

// Color returns the region's color, or nil if none was set.
func (r *Region) Color() *mesh.Color {
	return r.color
}

// WithColor returns a copy of the region with the given color.
func (r Region) WithColor(color mesh.Color) Region {
	r.color = &color

	return r
}

// Face is a region attached to a surface.
type Face struct {
	surface storage.Handle[Surface]
	region  storage.Handle[Region]
}

// NewFace creates a face from a surface and a region.
func NewFace(
	surface storage.Handle[Surface],
	region storage.Handle[Region],
) Face {
	return Face{surface: surface, region: region}
}

// Surface returns the face's surface.
func (f *Face) Surface() storage.Handle[Surface] {
	return f.surface
}

// Region returns the face's region.
func (f *Face) Region() storage.Handle[Region] {
	return f.region
}

// Shell is a set of faces forming a closed 2-manifold. Watertightness is
// not enforced structurally; it is a validation check.
type Shell struct {
	faces []storage.Handle[Face]
}

// NewShell creates a shell from the given faces.
func NewShell(faces []storage.Handle[Face]) Shell {
	return Shell{faces: faces}
}

// Faces returns the shell's faces.
func (s *Shell) Faces() []storage.Handle[Face] {
	return s.faces
}

// Solid is a set of shells: an outer boundary plus optional inner voids.
type Solid struct {
	shells []storage.Handle[Shell]
}

// NewSolid creates a solid from the given shells.
func NewSolid(shells []storage.Handle[Shell]) Solid {
	return Solid{shells: shells}
}

// Shells returns the solid's shells.
func (s *Solid) Shells() []storage.Handle[Shell] {
	return s.shells
}
