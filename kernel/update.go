package kernel

import (
	"github.com/sksmith/brep/mesh"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// The update primitives below mutate by cloning-with-edits: they build a
// new object with the edit applied, insert it, and return the new handle.
// The old object stays in its arena; arenas never remove objects.
// Updates perform no validation; callers re-validate the containing shell
// or solid when the edit is complete.

// UpdateCycleHalfEdge replaces the half-edge at the given index of a
// cycle, returning the new cycle.
func UpdateCycleHalfEdge(
	c *Core,
	cycle storage.Handle[topology.Cycle],
	index int,
	update func(storage.Handle[topology.HalfEdge]) storage.Handle[topology.HalfEdge],
) storage.Handle[topology.Cycle] {
	old := cycle.Get().HalfEdges()
	halfEdges := make([]storage.Handle[topology.HalfEdge], len(old))
	copy(halfEdges, old)
	halfEdges[index] = update(halfEdges[index])

	return c.Topology.Cycles.Insert(topology.NewCycle(halfEdges))
}

// UpdateRegionExterior replaces a region's exterior cycle, returning the
// new region.
func UpdateRegionExterior(
	c *Core,
	region storage.Handle[topology.Region],
	update func(storage.Handle[topology.Cycle]) storage.Handle[topology.Cycle],
) storage.Handle[topology.Region] {
	old := region.Get()
	updated := topology.NewRegion(update(old.Exterior()), old.Interiors())
	if old.Color() != nil {
		updated = updated.WithColor(*old.Color())
	}

	return c.Topology.Regions.Insert(updated)
}

// AddRegionInteriors adds interior cycles to a region, returning the new
// region.
func AddRegionInteriors(
	c *Core,
	region storage.Handle[topology.Region],
	interiors ...storage.Handle[topology.Cycle],
) storage.Handle[topology.Region] {
	old := region.Get()
	combined := make(
		[]storage.Handle[topology.Cycle], 0,
		len(old.Interiors())+len(interiors),
	)
	combined = append(combined, old.Interiors()...)
	combined = append(combined, interiors...)

	updated := topology.NewRegion(old.Exterior(), combined)
	if old.Color() != nil {
		updated = updated.WithColor(*old.Color())
	}

	return c.Topology.Regions.Insert(updated)
}

// UpdateFaceRegion replaces a face's region, returning the new face.
func UpdateFaceRegion(
	c *Core,
	face storage.Handle[topology.Face],
	update func(storage.Handle[topology.Region]) storage.Handle[topology.Region],
) storage.Handle[topology.Face] {
	old := face.Get()

	return c.Topology.Faces.Insert(
		topology.NewFace(old.Surface(), update(old.Region())),
	)
}

// UpdateShellFace replaces one face of a shell with the faces returned by
// the update function, returning the new shell.
func UpdateShellFace(
	c *Core,
	shell storage.Handle[topology.Shell],
	face storage.Handle[topology.Face],
	update func(storage.Handle[topology.Face]) []storage.Handle[topology.Face],
) storage.Handle[topology.Shell] {
	var faces []storage.Handle[topology.Face]
	for _, f := range shell.Get().Faces() {
		if f == face {
			faces = append(faces, update(f)...)

			continue
		}
		faces = append(faces, f)
	}

	return c.Topology.Shells.Insert(topology.NewShell(faces))
}

// RemoveShellFace removes one face from a shell, returning the new shell.
func RemoveShellFace(
	c *Core,
	shell storage.Handle[topology.Shell],
	face storage.Handle[topology.Face],
) storage.Handle[topology.Shell] {
	return UpdateShellFace(
		c, shell, face,
		func(storage.Handle[topology.Face]) []storage.Handle[topology.Face] {
			return nil
		},
	)
}

// SetRegionColor replaces a region's color, returning the new region.
func SetRegionColor(
	c *Core,
	region storage.Handle[topology.Region],
	color mesh.Color,
) storage.Handle[topology.Region] {
	old := region.Get()
	updated := topology.NewRegion(old.Exterior(), old.Interiors()).
		WithColor(color)

	return c.Topology.Regions.Insert(updated)
}
