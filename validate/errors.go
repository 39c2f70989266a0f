package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// Errors collects the validation failures found in one pass. It exposes
// both collect-all and first-error access modes.
type Errors []error

// First returns the first recorded error, or nil if validation passed.
func (e Errors) First() error {
	if len(e) == 0 {
		return nil
	}

	return e[0]
}

// All returns every recorded error.
func (e Errors) All() []error {
	return e
}

// Err returns the collection as a single error, or nil if it is empty.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}

	return e
}

// Error implements the error interface, listing every failure.
func (e Errors) Error() string {
	messages := make([]string, len(e))
	for i, err := range e {
		messages[i] = err.Error()
	}

	return fmt.Sprintf(
		"%d validation error(s):\n%s", len(e), strings.Join(messages, "\n"),
	)
}

// Is supports errors.Is against the collected errors.
func (e Errors) Is(target error) bool {
	for _, err := range e {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// NotWatertight indicates that a curve within a shell is referenced by a
// number of half-edges other than two.
type NotWatertight struct {
	Curve         storage.Handle[topology.Curve]
	HalfEdgeCount int
}

func (e *NotWatertight) Error() string {
	return fmt.Sprintf(
		"shell is not watertight: curve %d is referenced by %d half-edges (expected 2)",
		e.Curve.ID(), e.HalfEdgeCount,
	)
}

// CoincidentHalfEdgesAreNotSiblings indicates that two half-edges occupy
// the same position in 3D but do not reference the same curve with
// reversed boundaries and vertices.
type CoincidentHalfEdgesAreNotSiblings struct {
	Boundaries [2]geometry.CurveBoundary
	Curves     [2]storage.Handle[topology.Curve]
	HalfEdgeA  storage.Handle[topology.HalfEdge]
	HalfEdgeB  storage.Handle[topology.HalfEdge]
}

func (e *CoincidentHalfEdgesAreNotSiblings) Error() string {
	return fmt.Sprintf(
		"shell contains half-edges %d and %d that are coincident but not siblings",
		e.HalfEdgeA.ID(), e.HalfEdgeB.ID(),
	)
}

// IdenticalEdgesNotCoincident indicates that two sibling half-edges
// diverge in 3D beyond the identical-max-distance threshold.
type IdenticalEdgesNotCoincident struct {
	HalfEdgeA storage.Handle[topology.HalfEdge]
	HalfEdgeB storage.Handle[topology.HalfEdge]
	Distance  geom.Scalar
}

func (e *IdenticalEdgesNotCoincident) Error() string {
	return fmt.Sprintf(
		"sibling half-edges %d and %d are not coincident (distance %v)",
		e.HalfEdgeA.ID(), e.HalfEdgeB.ID(), e.Distance.F64(),
	)
}

// CurveGeometryMismatch indicates that a curve's local definitions on two
// surfaces disagree in 3D.
type CurveGeometryMismatch struct {
	Curve    storage.Handle[topology.Curve]
	SurfaceA storage.Handle[topology.Surface]
	SurfaceB storage.Handle[topology.Surface]
	Point    geom.Point1
	Distance geom.Scalar
}

func (e *CurveGeometryMismatch) Error() string {
	return fmt.Sprintf(
		"curve %d geometry on surfaces %d and %d mismatches at parameter %v (distance %v)",
		e.Curve.ID(), e.SurfaceA.ID(), e.SurfaceB.ID(),
		e.Point.T.F64(), e.Distance.F64(),
	)
}

// DistinctVerticesCoincide indicates that two distinct vertices sit
// closer together than the distinct-min-distance threshold.
type DistinctVerticesCoincide struct {
	VertexA   storage.Handle[topology.Vertex]
	VertexB   storage.Handle[topology.Vertex]
	PositionA geom.Point3
	PositionB geom.Point3
}

func (e *DistinctVerticesCoincide) Error() string {
	return fmt.Sprintf(
		"solid contains distinct vertices %d and %d that coincide",
		e.VertexA.ID(), e.VertexB.ID(),
	)
}

// IdenticalVerticesNotCoincident indicates that the same vertex appears
// at two positions further apart than the identical-max-distance
// threshold.
type IdenticalVerticesNotCoincident struct {
	Vertex    storage.Handle[topology.Vertex]
	PositionA geom.Point3
	PositionB geom.Point3
}

func (e *IdenticalVerticesNotCoincident) Error() string {
	return fmt.Sprintf(
		"solid contains vertex %d at two positions that do not coincide",
		e.Vertex.ID(),
	)
}

// ReferencedObjectKind names the object kind a uniqueness violation was
// found for.
type ReferencedObjectKind string

// The object kinds referenced by validation errors.
const (
	KindCurve    ReferencedObjectKind = "curve"
	KindVertex   ReferencedObjectKind = "vertex"
	KindSurface  ReferencedObjectKind = "surface"
	KindRegion   ReferencedObjectKind = "region"
	KindFace     ReferencedObjectKind = "face"
	KindCycle    ReferencedObjectKind = "cycle"
	KindHalfEdge ReferencedObjectKind = "half-edge"
	KindShell    ReferencedObjectKind = "shell"
)

// MultipleReferences indicates that an object is referenced by more than
// one containing object when it should be unique.
type MultipleReferences struct {
	Kind   ReferencedObjectKind
	Object storage.ObjectId
	Count  int
}

func (e *MultipleReferences) Error() string {
	return fmt.Sprintf(
		"%s %d is referenced %d times within the solid",
		e.Kind, e.Object, e.Count,
	)
}

// VerticesAreCoincident indicates a degenerate half-edge whose bounding
// vertices coincide in 3D.
type VerticesAreCoincident struct {
	HalfEdge storage.Handle[topology.HalfEdge]
	Distance geom.Scalar
}

func (e *VerticesAreCoincident) Error() string {
	return fmt.Sprintf(
		"half-edge %d is degenerate: its vertices coincide (distance %v)",
		e.HalfEdge.ID(), e.Distance.F64(),
	)
}

// ZeroLengthBoundary indicates a half-edge whose boundary parameters are
// not distinct.
type ZeroLengthBoundary struct {
	HalfEdge storage.Handle[topology.HalfEdge]
	Boundary geometry.CurveBoundary
}

func (e *ZeroLengthBoundary) Error() string {
	return fmt.Sprintf(
		"half-edge %d has a zero-length boundary", e.HalfEdge.ID(),
	)
}

// CurveMismatch indicates that a half-edge's curve carries no local
// geometry on the surface of the face using it.
type CurveMismatch struct {
	HalfEdge storage.Handle[topology.HalfEdge]
	Curve    storage.Handle[topology.Curve]
	Surface  storage.Handle[topology.Surface]
}

func (e *CurveMismatch) Error() string {
	return fmt.Sprintf(
		"half-edge %d references curve %d, which has no geometry on surface %d",
		e.HalfEdge.ID(), e.Curve.ID(), e.Surface.ID(),
	)
}

// GlobalVertexMismatch indicates that a half-edge's end position and the
// next half-edge's start position diverge in 3D.
type GlobalVertexMismatch struct {
	HalfEdge storage.Handle[topology.HalfEdge]
	Next     storage.Handle[topology.HalfEdge]
	Distance geom.Scalar
}

func (e *GlobalVertexMismatch) Error() string {
	return fmt.Sprintf(
		"half-edge %d ends away from the start of half-edge %d (distance %v)",
		e.HalfEdge.ID(), e.Next.ID(), e.Distance.F64(),
	)
}

// StructuralError indicates that a referenced object was not inserted
// into the expected arena.
type StructuralError struct {
	Kind   ReferencedObjectKind
	Object storage.ObjectId
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf(
		"%s %d was not inserted into its arena", e.Kind, e.Object,
	)
}
