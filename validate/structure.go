package validate

import (
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// CheckShellStructure verifies that every object a shell references was
// inserted into the expected arena.
func CheckShellStructure(
	shell storage.Handle[topology.Shell],
	stores *topology.Stores,
) Errors {
	var errs Errors

	report := func(kind ReferencedObjectKind, id storage.ObjectId) {
		errs = append(errs, &StructuralError{Kind: kind, Object: id})
	}

	for _, face := range shell.Get().Faces() {
		if !stores.Faces.Contains(face) {
			report(KindFace, face.ID())

			continue
		}

		if !stores.Surfaces.Contains(face.Get().Surface()) {
			report(KindSurface, face.Get().Surface().ID())
		}

		region := face.Get().Region()
		if !stores.Regions.Contains(region) {
			report(KindRegion, region.ID())

			continue
		}

		for _, cycle := range region.Get().AllCycles() {
			if !stores.Cycles.Contains(cycle) {
				report(KindCycle, cycle.ID())

				continue
			}

			for _, halfEdge := range cycle.Get().HalfEdges() {
				if !stores.HalfEdges.Contains(halfEdge) {
					report(KindHalfEdge, halfEdge.ID())

					continue
				}

				if !stores.Curves.Contains(halfEdge.Get().Curve()) {
					report(KindCurve, halfEdge.Get().Curve().ID())
				}
				if !stores.Vertices.Contains(halfEdge.Get().StartVertex()) {
					report(KindVertex, halfEdge.Get().StartVertex().ID())
				}
			}
		}
	}

	return errs
}

// CheckSolidStructure verifies that every shell of a solid was inserted
// into its arena. The shells' own structure is covered by
// CheckShellStructure.
func CheckSolidStructure(
	solid storage.Handle[topology.Solid],
	stores *topology.Stores,
) Errors {
	var errs Errors

	for _, shell := range solid.Get().Shells() {
		if !stores.Shells.Contains(shell) {
			errs = append(errs, &StructuralError{
				Kind: KindShell, Object: shell.ID(),
			})
		}
	}

	return errs
}
