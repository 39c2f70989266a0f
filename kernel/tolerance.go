package kernel

import (
	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
	"github.com/sksmith/brep/validate"
)

const (
	// toleranceDivisor scales the model's shortest extent down to the
	// approximation tolerance.
	toleranceDivisor = 1000.0

	// toleranceFloor bounds the auto-selected tolerance from below, so
	// degenerate models don't produce absurd sample counts.
	toleranceFloor = 1e-9
)

// SolidAabb computes the bounding box of a solid from the 3D positions of
// its half-edge boundary points.
func SolidAabb(c *Core, solid storage.Handle[topology.Solid]) geom.Aabb3 {
	var points []geom.Point3

	for _, shell := range solid.Get().Shells() {
		for _, h := range topology.ShellHalfEdges(shell.Get()) {
			position, ok := validate.SampleHalfEdge(h, 0, c.Geometry)
			if !ok {
				continue
			}
			points = append(points, position)
		}
	}

	return geom.Aabb3FromPoints(points)
}

// AutoTolerance selects the approximation tolerance for a solid: a
// fraction of the bounding box's shortest positive extent, with a floor.
// The same tolerance is used for every face in one run, which keeps
// shared edges consistent.
func AutoTolerance(c *Core, solid storage.Handle[topology.Solid]) geometry.Tolerance {
	extent := SolidAabb(c, solid).SmallestPositiveExtent()

	tolerance := extent.F64() / toleranceDivisor
	if tolerance < toleranceFloor {
		tolerance = toleranceFloor
	}

	return geometry.ToleranceFromF64(tolerance)
}
