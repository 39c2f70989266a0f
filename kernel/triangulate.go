package kernel

import (
	"github.com/sksmith/brep/approx"
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/mesh"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
	"github.com/sksmith/brep/triangulate"
)

// TriangulateSolid approximates and triangulates every face of a solid at
// the given tolerance, producing an indexed triangle mesh. A single curve
// approximation cache is shared across the whole run, so the two sides of
// every shared edge sample identically and the mesh comes out watertight.
func TriangulateSolid(
	c *Core,
	solid storage.Handle[topology.Solid],
	tolerance geometry.Tolerance,
) (*mesh.Mesh, error) {
	m := mesh.New()
	cache := approx.NewCurveApproxCache()

	for _, shell := range solid.Get().Shells() {
		if err := triangulateShellInto(c, shell, tolerance, cache, m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// TriangulateSolidAuto triangulates a solid at the automatically selected
// tolerance.
func TriangulateSolidAuto(
	c *Core,
	solid storage.Handle[topology.Solid],
) (*mesh.Mesh, error) {
	return TriangulateSolid(c, solid, AutoTolerance(c, solid))
}

// TriangulateShell triangulates a single shell at the given tolerance.
func TriangulateShell(
	c *Core,
	shell storage.Handle[topology.Shell],
	tolerance geometry.Tolerance,
) (*mesh.Mesh, error) {
	m := mesh.New()
	cache := approx.NewCurveApproxCache()

	if err := triangulateShellInto(c, shell, tolerance, cache, m); err != nil {
		return nil, err
	}

	return m, nil
}

// TriangulateFace triangulates a single face at the given tolerance.
func TriangulateFace(
	c *Core,
	face storage.Handle[topology.Face],
	tolerance geometry.Tolerance,
) (*mesh.Mesh, error) {
	m := mesh.New()
	cache := approx.NewCurveApproxCache()

	faceApprox, err := approx.ApproxFace(face, tolerance, cache, c.Geometry)
	if err != nil {
		return nil, err
	}
	triangulate.TriangulateFaceApprox(faceApprox, m)

	return m, nil
}

func triangulateShellInto(
	c *Core,
	shell storage.Handle[topology.Shell],
	tolerance geometry.Tolerance,
	cache *approx.CurveApproxCache,
	m *mesh.Mesh,
) error {
	for _, face := range shell.Get().Faces() {
		faceApprox, err := approx.ApproxFace(face, tolerance, cache, c.Geometry)
		if err != nil {
			return err
		}
		triangulate.TriangulateFaceApprox(faceApprox, m)
	}

	return nil
}
