package validate

import (
	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// siblingSampleCount is the number of samples taken along each half-edge
// when comparing it against another in 3D. Three samples (start, middle,
// end) are enough to distinguish lines and circles; more complicated
// curves would need more.
const siblingSampleCount = 3

// curveGeometrySampleCount is the number of parameters sampled along a
// half-edge when comparing a curve's local definitions across surfaces.
const curveGeometrySampleCount = 4

// CheckShell runs all shell-level checks: watertightness, sibling
// coincidence, and curve-geometry agreement across surfaces.
func CheckShell(
	shell storage.Handle[topology.Shell],
	geometrySideTable *geometry.Geometry,
	config *Config,
) Errors {
	var errs Errors

	halfEdges := topology.ShellHalfEdges(shell.Get())

	errs = append(errs, checkWatertight(halfEdges)...)
	errs = append(errs, checkCoincidence(halfEdges, geometrySideTable, config)...)
	errs = append(errs, checkCurveGeometry(halfEdges, geometrySideTable, config)...)

	return errs
}

// checkWatertight verifies that every curve in the shell is used by
// exactly two half-edges.
func checkWatertight(halfEdges []topology.HalfEdgeWithContext) Errors {
	counts := make(map[storage.Handle[topology.Curve]]int)
	var order []storage.Handle[topology.Curve]

	for _, h := range halfEdges {
		curve := h.HalfEdge.Get().Curve()
		if _, seen := counts[curve]; !seen {
			order = append(order, curve)
		}
		counts[curve]++
	}

	var errs Errors
	for _, curve := range order {
		if counts[curve] != 2 {
			errs = append(errs, &NotWatertight{
				Curve:         curve,
				HalfEdgeCount: counts[curve],
			})
		}
	}

	return errs
}

// checkCoincidence verifies, for every pair of half-edges, that the pair
// is either geometrically distinct or a proper sibling pair, and that
// sibling pairs actually coincide.
func checkCoincidence(
	halfEdges []topology.HalfEdgeWithContext,
	geometrySideTable *geometry.Geometry,
	config *Config,
) Errors {
	var errs Errors

	// O(N^2), but a map would not survive float inaccuracies in the
	// sampled positions.
	for i, a := range halfEdges {
		for _, b := range halfEdges[i+1:] {
			aligned, reversed, ok := sampleDistances(a, b, geometrySideTable)
			if !ok {
				continue
			}

			if AreSiblings(a, b, geometrySideTable) {
				max := maxScalar(aligned).Min(maxScalar(reversed))
				if config.IdenticalMaxDistance.Less(max) {
					errs = append(errs, &IdenticalEdgesNotCoincident{
						HalfEdgeA: a.HalfEdge,
						HalfEdgeB: b.HalfEdge,
						Distance:  max,
					})
				}

				continue
			}

			allCoincident := allLess(aligned, config.DistinctMinDistance) ||
				allLess(reversed, config.DistinctMinDistance)

			if allCoincident {
				boundaryA, _ := geometrySideTable.OfHalfEdge(a.HalfEdge)
				boundaryB, _ := geometrySideTable.OfHalfEdge(b.HalfEdge)
				errs = append(errs, &CoincidentHalfEdgesAreNotSiblings{
					Boundaries: [2]geometry.CurveBoundary{
						boundaryA.Boundary, boundaryB.Boundary,
					},
					Curves: [2]storage.Handle[topology.Curve]{
						a.HalfEdge.Get().Curve(), b.HalfEdge.Get().Curve(),
					},
					HalfEdgeA: a.HalfEdge,
					HalfEdgeB: b.HalfEdge,
				})
			}
		}
	}

	return errs
}

// AreSiblings reports whether two half-edge uses are siblings: same
// curve, reversed boundaries, and reversed bounding vertices.
func AreSiblings(
	a, b topology.HalfEdgeWithContext,
	geometrySideTable *geometry.Geometry,
) bool {
	if a.HalfEdge.Get().Curve() != b.HalfEdge.Get().Curve() {
		return false
	}

	geomA, okA := geometrySideTable.OfHalfEdge(a.HalfEdge)
	geomB, okB := geometrySideTable.OfHalfEdge(b.HalfEdge)
	if !okA || !okB {
		return false
	}
	if geomA.Boundary != geomB.Boundary.Reverse() {
		return false
	}

	verticesA := a.BoundingVertices()
	verticesB := b.BoundingVertices()

	return verticesA[0] == verticesB[1] && verticesA[1] == verticesB[0]
}

// sampleDistances samples both half-edges at fractions {0, 1/2, 1} of
// their boundaries, under both relative orientations, and returns the
// pairwise 3D distances for each.
func sampleDistances(
	a, b topology.HalfEdgeWithContext,
	geometrySideTable *geometry.Geometry,
) (aligned, reversed []geom.Scalar, ok bool) {
	step := 1.0 / (siblingSampleCount - 1)

	for i := 0; i < siblingSampleCount; i++ {
		fraction := float64(i) * step

		sampleA, okA := SampleHalfEdge(a, fraction, geometrySideTable)
		sampleSame, okS := SampleHalfEdge(b, fraction, geometrySideTable)
		sampleOpposite, okO := SampleHalfEdge(b, 1-fraction, geometrySideTable)
		if !okA || !okS || !okO {
			return nil, nil, false
		}

		aligned = append(aligned, sampleA.DistanceTo(sampleSame))
		reversed = append(reversed, sampleA.DistanceTo(sampleOpposite))
	}

	return aligned, reversed, true
}

func allLess(values []geom.Scalar, threshold geom.Scalar) bool {
	for _, v := range values {
		if !v.Less(threshold) {
			return false
		}
	}

	return true
}

// SampleHalfEdge evaluates a half-edge in 3D at the given fraction of its
// boundary.
func SampleHalfEdge(
	h topology.HalfEdgeWithContext,
	fraction float64,
	geometrySideTable *geometry.Geometry,
) (geom.Point3, bool) {
	halfEdgeGeom, ok := geometrySideTable.OfHalfEdge(h.HalfEdge)
	if !ok {
		return geom.Point3{}, false
	}
	local, ok := geometrySideTable.OfCurve(h.HalfEdge.Get().Curve(), h.Surface)
	if !ok {
		return geom.Point3{}, false
	}
	surfaceGeom, ok := geometrySideTable.OfSurface(h.Surface)
	if !ok {
		return geom.Point3{}, false
	}

	start, end := halfEdgeGeom.Boundary.Inner[0], halfEdgeGeom.Boundary.Inner[1]
	param := start.Add(end.Sub(start).Mul(geom.S(fraction)))
	surfaceCoords := local.Path.PointFromPathCoords(param)

	return surfaceGeom.PointFromSurfaceCoords(surfaceCoords), true
}

// checkCurveGeometry verifies that a curve defined on multiple surfaces
// agrees in 3D at sample parameters along each half-edge using it.
func checkCurveGeometry(
	halfEdges []topology.HalfEdgeWithContext,
	geometrySideTable *geometry.Geometry,
	config *Config,
) Errors {
	var errs Errors

	for _, h := range halfEdges {
		curve := h.HalfEdge.Get().Curve()
		surfaces := geometrySideTable.SurfacesOfCurve(curve)
		if len(surfaces) < 2 {
			continue
		}

		halfEdgeGeom, ok := geometrySideTable.OfHalfEdge(h.HalfEdge)
		if !ok {
			continue
		}
		boundary := halfEdgeGeom.Boundary

		for i, surfaceA := range surfaces {
			for _, surfaceB := range surfaces[i+1:] {
				if err := compareCurveOnSurfaces(
					curve, surfaceA, surfaceB, boundary,
					geometrySideTable, config,
				); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}

	return errs
}

func compareCurveOnSurfaces(
	curve storage.Handle[topology.Curve],
	surfaceA, surfaceB storage.Handle[topology.Surface],
	boundary geometry.CurveBoundary,
	geometrySideTable *geometry.Geometry,
	config *Config,
) error {
	localA, okA := geometrySideTable.OfCurve(curve, surfaceA)
	localB, okB := geometrySideTable.OfCurve(curve, surfaceB)
	geomA, okSA := geometrySideTable.OfSurface(surfaceA)
	geomB, okSB := geometrySideTable.OfSurface(surfaceB)
	if !okA || !okB || !okSA || !okSB {
		return nil
	}

	start, end := boundary.Inner[0], boundary.Inner[1]
	step := 1.0 / (curveGeometrySampleCount - 1)

	for i := 0; i < curveGeometrySampleCount; i++ {
		fraction := geom.S(float64(i) * step)
		param := start.Add(end.Sub(start).Mul(fraction))

		pointA := geomA.PointFromSurfaceCoords(
			localA.Path.PointFromPathCoords(param),
		)
		pointB := geomB.PointFromSurfaceCoords(
			localB.Path.PointFromPathCoords(param),
		)

		distance := pointA.DistanceTo(pointB)
		if config.IdenticalMaxDistance.Less(distance) {
			return &CurveGeometryMismatch{
				Curve:    curve,
				SurfaceA: surfaceA,
				SurfaceB: surfaceB,
				Point:    param,
				Distance: distance,
			}
		}
	}

	return nil
}

func maxScalar(values []geom.Scalar) geom.Scalar {
	max := values[0]
	for _, v := range values[1:] {
		max = max.Max(v)
	}

	return max
}
