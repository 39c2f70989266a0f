// Package brep is a boundary-representation geometric kernel: it
// maintains validated b-rep models of 3D solids, approximates their
// curved boundaries to a controllable tolerance, and triangulates faces
// into an indexed 3D mesh suitable for display and STL-style export.
//
// The kernel is organized in layers, leaves first:
//
//   - geom: exact-equality scalars, points, vectors, lines, circles,
//     segments, triangles, and bounding boxes
//   - storage: arena-allocated objects with stable identity and shared
//     handles
//   - topology: the b-rep object graph, from Vertex up to Solid
//   - geometry: parametric paths, swept-curve surfaces, and the
//     side-tables attaching geometry to topology
//   - validate: watertightness, sibling coincidence, and curve-geometry
//     agreement checks
//   - approx: curve and face approximation with a cache that keeps shared
//     edges consistent
//   - triangulate: constrained Delaunay triangulation filtered against
//     the face polygon
//   - kernel: the facade tying it all together, from builders to
//     Solid-to-Mesh orchestration
//
// # Basic Usage
//
//	core := kernel.New()
//
//	tetrahedron, err := kernel.BuildTetrahedron(core, [4]geom.Point3{
//		geom.Pt3(0, 0, 0), geom.Pt3(0, 1, 0),
//		geom.Pt3(1, 0, 0), geom.Pt3(0, 0, 1),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	solid, err := kernel.InsertSolid(core, []storage.Handle[topology.Shell]{
//		tetrahedron.Shell,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	m, err := kernel.TriangulateSolidAuto(core, solid)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d triangles\n", m.TriangleCount())
//
// The kernel is single-threaded and fully synchronous. Callers wanting
// parallelism run multiple kernels on distinct solids.
package brep
