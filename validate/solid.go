package validate

import (
	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// CheckSolid runs all solid-level checks: vertex coincidence and
// uniqueness of object references across shells.
func CheckSolid(
	solid storage.Handle[topology.Solid],
	geometrySideTable *geometry.Geometry,
	config *Config,
) Errors {
	var errs Errors

	errs = append(errs, checkVertices(solid, geometrySideTable, config)...)
	errs = append(errs, checkObjectReferences(solid)...)

	return errs
}

type vertexSample struct {
	vertex   storage.Handle[topology.Vertex]
	position geom.Point3
}

// checkVertices verifies that identical vertices coincide in 3D and that
// distinct vertices are separated.
func checkVertices(
	solid storage.Handle[topology.Solid],
	geometrySideTable *geometry.Geometry,
	config *Config,
) Errors {
	var samples []vertexSample

	for _, shell := range solid.Get().Shells() {
		for _, h := range topology.ShellHalfEdges(shell.Get()) {
			position, ok := SampleHalfEdge(h, 0, geometrySideTable)
			if !ok {
				continue
			}
			samples = append(samples, vertexSample{
				vertex:   h.HalfEdge.Get().StartVertex(),
				position: position,
			})
		}
	}

	var errs Errors

	// O(N^2), but a map would not survive float inaccuracies in the
	// sampled positions.
	for i, a := range samples {
		for _, b := range samples[i+1:] {
			distance := a.position.DistanceTo(b.position)

			if a.vertex == b.vertex {
				if config.IdenticalMaxDistance.Less(distance) {
					errs = append(errs, &IdenticalVerticesNotCoincident{
						Vertex:    a.vertex,
						PositionA: a.position,
						PositionB: b.position,
					})
				}

				continue
			}

			if distance.Less(config.DistinctMinDistance) {
				errs = append(errs, &DistinctVerticesCoincide{
					VertexA:   a.vertex,
					VertexB:   b.vertex,
					PositionA: a.position,
					PositionB: b.position,
				})
			}
		}
	}

	return errs
}

// checkObjectReferences verifies that no region, face, cycle, or
// half-edge is referenced more than once across the solid's shells.
func checkObjectReferences(solid storage.Handle[topology.Solid]) Errors {
	regions := newReferenceCounter(KindRegion)
	faces := newReferenceCounter(KindFace)
	cycles := newReferenceCounter(KindCycle)
	halfEdges := newReferenceCounter(KindHalfEdge)

	for _, shell := range solid.Get().Shells() {
		for _, face := range shell.Get().Faces() {
			faces.count(face.ID())

			region := face.Get().Region()
			regions.count(region.ID())

			for _, cycle := range region.Get().AllCycles() {
				cycles.count(cycle.ID())

				for _, halfEdge := range cycle.Get().HalfEdges() {
					halfEdges.count(halfEdge.ID())
				}
			}
		}
	}

	var errs Errors
	for _, counter := range []*referenceCounter{
		regions, faces, cycles, halfEdges,
	} {
		errs = append(errs, counter.errors()...)
	}

	return errs
}

type referenceCounter struct {
	kind   ReferencedObjectKind
	counts map[storage.ObjectId]int
	order  []storage.ObjectId
}

func newReferenceCounter(kind ReferencedObjectKind) *referenceCounter {
	return &referenceCounter{
		kind:   kind,
		counts: make(map[storage.ObjectId]int),
	}
}

func (c *referenceCounter) count(id storage.ObjectId) {
	if _, seen := c.counts[id]; !seen {
		c.order = append(c.order, id)
	}
	c.counts[id]++
}

func (c *referenceCounter) errors() Errors {
	var errs Errors
	for _, id := range c.order {
		if c.counts[id] > 1 {
			errs = append(errs, &MultipleReferences{
				Kind:   c.kind,
				Object: id,
				Count:  c.counts[id],
			})
		}
	}

	return errs
}
