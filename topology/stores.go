package topology

import "github.com/sksmith/brep/storage"

// Stores holds one arena per object kind. A single Stores instance is
// owned by the kernel's Core and threaded through every builder.
type Stores struct {
	Curves    *storage.Store[Curve]
	Vertices  *storage.Store[Vertex]
	Surfaces  *storage.Store[Surface]
	HalfEdges *storage.Store[HalfEdge]
	Cycles    *storage.Store[Cycle]
	Regions   *storage.Store[Region]
	Faces     *storage.Store[Face]
	Shells    *storage.Store[Shell]
	Solids    *storage.Store[Solid]
}

// NewStores creates a set of empty arenas.
func NewStores() *Stores {
	return &Stores{
		Curves:    storage.NewStore[Curve](),
		Vertices:  storage.NewStore[Vertex](),
		Surfaces:  storage.NewStore[Surface](),
		HalfEdges: storage.NewStore[HalfEdge](),
		Cycles:    storage.NewStore[Cycle](),
		Regions:   storage.NewStore[Region](),
		Faces:     storage.NewStore[Face](),
		Shells:    storage.NewStore[Shell](),
		Solids:    storage.NewStore[Solid](),
	}
}
