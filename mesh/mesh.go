// Package mesh provides the kernel's output type: a flat indexed triangle
// mesh with deduplicated vertices and a per-triangle color, suitable for
// display or STL-style export.
package mesh

import "github.com/sksmith/brep/geom"

// Color is an RGBA color with 8 bits per channel.
type Color [4]uint8

// DefaultColor is used for regions that carry no explicit color.
var DefaultColor = Color{255, 0, 0, 255}

// Index addresses a vertex within a mesh.
type Index uint32

// Triangle is a triangle within a mesh, referring to its vertices by
// index.
type Triangle struct {
	Indices [3]Index
	Color   Color
}

// Mesh is an indexed triangle mesh. Vertices are deduplicated by exact
// position, so triangles sharing a corner share the index.
type Mesh struct {
	vertices      []geom.Point3
	indexByVertex map[geom.Point3]Index
	triangles     []Triangle
}

// New creates an empty mesh.
func New() *Mesh {
	return &Mesh{
		indexByVertex: make(map[geom.Point3]Index),
	}
}

// PushTriangle adds a triangle to the mesh, interning its vertices.
func (m *Mesh) PushTriangle(points [3]geom.Point3, color Color) {
	var indices [3]Index
	for i, point := range points {
		indices[i] = m.pushVertex(point)
	}

	m.triangles = append(m.triangles, Triangle{Indices: indices, Color: color})
}

func (m *Mesh) pushVertex(point geom.Point3) Index {
	if index, ok := m.indexByVertex[point]; ok {
		return index
	}

	index := Index(len(m.vertices))
	m.vertices = append(m.vertices, point)
	m.indexByVertex[point] = index

	return index
}

// Vertices returns the deduplicated vertices, in insertion order.
func (m *Mesh) Vertices() []geom.Point3 {
	return m.vertices
}

// Triangles returns the mesh's triangles, in insertion order.
func (m *Mesh) Triangles() []Triangle {
	return m.triangles
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// TrianglePoints returns the corner positions of the i-th triangle.
func (m *Mesh) TrianglePoints(i int) [3]geom.Point3 {
	t := m.triangles[i]

	return [3]geom.Point3{
		m.vertices[t.Indices[0]],
		m.vertices[t.Indices[1]],
		m.vertices[t.Indices[2]],
	}
}

// ContainsTriangle reports whether the mesh contains a triangle with the
// given corners, in any same-winding rotation.
func (m *Mesh) ContainsTriangle(points [3]geom.Point3) bool {
	rotations := [3][3]geom.Point3{
		{points[0], points[1], points[2]},
		{points[1], points[2], points[0]},
		{points[2], points[0], points[1]},
	}

	for i := range m.triangles {
		actual := m.TrianglePoints(i)
		for _, rotation := range rotations {
			if actual == rotation {
				return true
			}
		}
	}

	return false
}
