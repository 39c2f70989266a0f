// Package kernel is the facade over the b-rep core: it owns the arenas
// and the geometry side-table, provides the builders that construct
// validated topology, and orchestrates the pipeline from a solid down to
// a triangle mesh.
package kernel

import (
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
	"github.com/sksmith/brep/validate"
)

// Core owns all shared state of one kernel instance: the object arenas,
// the geometry side-table, and the validation configuration. The kernel
// is single-threaded and fully synchronous; mutation requires unique
// access to the Core.
type Core struct {
	Topology *topology.Stores
	Geometry *geometry.Geometry
	Config   *validate.Config
}

// New creates a Core with empty arenas and the default validation
// configuration.
func New() *Core {
	return &Core{
		Topology: topology.NewStores(),
		Geometry: geometry.New(),
		Config:   validate.DefaultConfig(),
	}
}

// NewCurve inserts a fresh curve token.
func (c *Core) NewCurve() storage.Handle[topology.Curve] {
	return c.Topology.Curves.Insert(topology.NewCurve())
}

// NewVertex inserts a fresh vertex token.
func (c *Core) NewVertex() storage.Handle[topology.Vertex] {
	return c.Topology.Vertices.Insert(topology.NewVertex())
}

// NewSurface inserts a surface with the given swept-curve geometry.
func (c *Core) NewSurface(
	geom geometry.SweptCurve,
) storage.Handle[topology.Surface] {
	surface := c.Topology.Surfaces.Insert(topology.NewSurface())
	c.Geometry.DefineSurface(surface, geom)

	return surface
}

// ValidateShell runs all shell-level validation checks.
func (c *Core) ValidateShell(
	shell storage.Handle[topology.Shell],
) validate.Errors {
	var errs validate.Errors

	errs = append(errs, validate.CheckShellStructure(shell, c.Topology)...)
	for _, face := range shell.Get().Faces() {
		errs = append(errs, validate.CheckFace(face, c.Geometry, c.Config)...)
	}
	errs = append(errs, validate.CheckShell(shell, c.Geometry, c.Config)...)

	return errs
}

// ValidateSolid runs validation over the whole solid: every shell's
// checks plus the solid-level vertex and reference checks. The returned
// collection supports both collect-all and first-error access.
func (c *Core) ValidateSolid(
	solid storage.Handle[topology.Solid],
) validate.Errors {
	var errs validate.Errors

	errs = append(errs, validate.CheckSolidStructure(solid, c.Topology)...)
	for _, shell := range solid.Get().Shells() {
		errs = append(errs, c.ValidateShell(shell)...)
	}
	errs = append(errs, validate.CheckSolid(solid, c.Geometry, c.Config)...)

	return errs
}
