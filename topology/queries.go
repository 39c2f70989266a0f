package topology

import "github.com/sksmith/brep/storage"

// HalfEdgeWithContext is a half-edge together with the cycle and face it
// was found in while traversing a shell.
type HalfEdgeWithContext struct {
	HalfEdge storage.Handle[HalfEdge]
	Cycle    storage.Handle[Cycle]
	Index    int
	Face     storage.Handle[Face]
	Surface  storage.Handle[Surface]
}

// ShellHalfEdges traverses a shell and returns every half-edge use with
// its surrounding context, in deterministic face/cycle/position order.
func ShellHalfEdges(shell *Shell) []HalfEdgeWithContext {
	var result []HalfEdgeWithContext

	for _, face := range shell.Faces() {
		region := face.Get().Region().Get()
		for _, cycle := range region.AllCycles() {
			for i, halfEdge := range cycle.Get().HalfEdges() {
				result = append(result, HalfEdgeWithContext{
					HalfEdge: halfEdge,
					Cycle:    cycle,
					Index:    i,
					Face:     face,
					Surface:  face.Get().Surface(),
				})
			}
		}
	}

	return result
}

// BoundingVertices returns the start and end vertices of a half-edge use.
func (h HalfEdgeWithContext) BoundingVertices() [2]storage.Handle[Vertex] {
	return h.Cycle.Get().BoundingVerticesOf(h.Index)
}
