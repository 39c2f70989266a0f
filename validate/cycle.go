package validate

import (
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// CheckHalfEdge runs half-edge-level checks: the boundary parameters must
// be distinct, and the bounding positions must be separated in 3D.
func CheckHalfEdge(
	h topology.HalfEdgeWithContext,
	geometrySideTable *geometry.Geometry,
	config *Config,
) Errors {
	var errs Errors

	halfEdgeGeom, ok := geometrySideTable.OfHalfEdge(h.HalfEdge)
	if !ok {
		return errs
	}

	boundary := halfEdgeGeom.Boundary
	if boundary.Inner[0] == boundary.Inner[1] {
		errs = append(errs, &ZeroLengthBoundary{
			HalfEdge: h.HalfEdge,
			Boundary: boundary,
		})
	}

	start, okS := SampleHalfEdge(h, 0, geometrySideTable)
	end, okE := SampleHalfEdge(h, 1, geometrySideTable)
	if okS && okE {
		distance := start.DistanceTo(end)
		if distance.Less(config.DistinctMinDistance) {
			errs = append(errs, &VerticesAreCoincident{
				HalfEdge: h.HalfEdge,
				Distance: distance,
			})
		}
	}

	return errs
}

// CheckCycle runs cycle-level checks on a cycle used by a face on the
// given surface: each half-edge's curve must carry geometry on that
// surface, each half-edge must be non-degenerate, and consecutive
// half-edges must connect in 3D.
func CheckCycle(
	cycle storage.Handle[topology.Cycle],
	face storage.Handle[topology.Face],
	geometrySideTable *geometry.Geometry,
	config *Config,
) Errors {
	var errs Errors

	surface := face.Get().Surface()
	halfEdges := cycle.Get().HalfEdges()

	for i, halfEdge := range halfEdges {
		h := topology.HalfEdgeWithContext{
			HalfEdge: halfEdge,
			Cycle:    cycle,
			Index:    i,
			Face:     face,
			Surface:  surface,
		}

		if _, ok := geometrySideTable.OfCurve(
			halfEdge.Get().Curve(), surface,
		); !ok {
			errs = append(errs, &CurveMismatch{
				HalfEdge: halfEdge,
				Curve:    halfEdge.Get().Curve(),
				Surface:  surface,
			})

			continue
		}

		errs = append(errs, CheckHalfEdge(h, geometrySideTable, config)...)

		next := halfEdges[(i+1)%len(halfEdges)]
		nextCtx := topology.HalfEdgeWithContext{
			HalfEdge: next,
			Cycle:    cycle,
			Index:    (i + 1) % len(halfEdges),
			Face:     face,
			Surface:  surface,
		}

		end, okE := SampleHalfEdge(h, 1, geometrySideTable)
		nextStart, okN := SampleHalfEdge(nextCtx, 0, geometrySideTable)
		if okE && okN {
			distance := end.DistanceTo(nextStart)
			if config.IdenticalMaxDistance.Less(distance) {
				errs = append(errs, &GlobalVertexMismatch{
					HalfEdge: halfEdge,
					Next:     next,
					Distance: distance,
				})
			}
		}
	}

	return errs
}

// CheckFace runs cycle checks over a face's exterior and interiors.
func CheckFace(
	face storage.Handle[topology.Face],
	geometrySideTable *geometry.Geometry,
	config *Config,
) Errors {
	var errs Errors

	for _, cycle := range face.Get().Region().Get().AllCycles() {
		errs = append(errs, CheckCycle(cycle, face, geometrySideTable, config)...)
	}

	return errs
}
