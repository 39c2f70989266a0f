package approx

import (
	"fmt"

	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// FacePoint is one point of a face approximation, carried both in
// surface-local (u, v) coordinates and as a global 3D point.
type FacePoint struct {
	PointSurface geom.Point2
	PointGlobal  geom.Point3
}

// Winding is the orientation of a closed 2D point chain.
type Winding int

const (
	// Cw is clockwise winding (negative signed area).
	Cw Winding = iota
	// Ccw is counter-clockwise winding (positive signed area).
	Ccw
)

// HalfEdgeApprox is the approximation of one half-edge: its boundary
// start point followed by the curve's interior points. The boundary end
// point is supplied by the next half-edge in the cycle, so concatenating
// half-edge approximations never duplicates points.
type HalfEdgeApprox struct {
	Points []FacePoint
}

// CycleApprox is the approximation of a cycle: the concatenation of its
// half-edges' approximations, forming a closed chain (the last point
// connects back to the first).
type CycleApprox struct {
	Points []FacePoint
}

// Segments returns the closed chain's segments in surface coordinates.
func (c CycleApprox) Segments() []geom.LineSegment2 {
	segments := make([]geom.LineSegment2, 0, len(c.Points))
	for i, point := range c.Points {
		next := c.Points[(i+1)%len(c.Points)]
		segments = append(segments, geom.LineSegment2{
			A: point.PointSurface,
			B: next.PointSurface,
		})
	}

	return segments
}

// Winding returns the chain's orientation in surface coordinates, via the
// shoelace formula.
func (c CycleApprox) Winding() Winding {
	sum := geom.S(0)
	for i, point := range c.Points {
		next := c.Points[(i+1)%len(c.Points)]
		a := point.PointSurface
		b := next.PointSurface
		sum = sum.Add(a.U.Mul(b.V).Sub(b.U.Mul(a.V)))
	}

	if sum.Sign() < 0 {
		return Cw
	}

	return Ccw
}

// FaceApprox is the approximation of a face: its exterior cycle, its
// interior cycles, and the winding of the exterior in the face's surface
// coordinate system.
type FaceApprox struct {
	Face      storage.Handle[topology.Face]
	Exterior  CycleApprox
	Interiors []CycleApprox
	Winding   Winding
}

// ApproxFace approximates a face's exterior and interior cycles at the
// given tolerance, sharing curve approximations through the cache.
func ApproxFace(
	face storage.Handle[topology.Face],
	tolerance geometry.Tolerance,
	cache *CurveApproxCache,
	geometrySideTable *geometry.Geometry,
) (FaceApprox, error) {
	surface := face.Get().Surface()
	region := face.Get().Region().Get()

	exterior, err := ApproxCycle(
		region.Exterior(), surface, tolerance, cache, geometrySideTable,
	)
	if err != nil {
		return FaceApprox{}, err
	}

	var interiors []CycleApprox
	for _, cycle := range region.Interiors() {
		interior, err := ApproxCycle(
			cycle, surface, tolerance, cache, geometrySideTable,
		)
		if err != nil {
			return FaceApprox{}, err
		}
		interiors = append(interiors, interior)
	}

	return FaceApprox{
		Face:      face,
		Exterior:  exterior,
		Interiors: interiors,
		Winding:   exterior.Winding(),
	}, nil
}

// ApproxCycle approximates a cycle on a surface by concatenating its
// half-edges' approximations.
func ApproxCycle(
	cycle storage.Handle[topology.Cycle],
	surface storage.Handle[topology.Surface],
	tolerance geometry.Tolerance,
	cache *CurveApproxCache,
	geometrySideTable *geometry.Geometry,
) (CycleApprox, error) {
	var points []FacePoint

	for _, halfEdge := range cycle.Get().HalfEdges() {
		halfEdgeApprox, err := ApproxHalfEdge(
			halfEdge, surface, tolerance, cache, geometrySideTable,
		)
		if err != nil {
			return CycleApprox{}, err
		}
		points = append(points, halfEdgeApprox.Points...)
	}

	return CycleApprox{Points: points}, nil
}

// ApproxHalfEdge approximates a half-edge on a surface: its boundary
// start point followed by the curve approximation's interior points.
func ApproxHalfEdge(
	halfEdge storage.Handle[topology.HalfEdge],
	surface storage.Handle[topology.Surface],
	tolerance geometry.Tolerance,
	cache *CurveApproxCache,
	geometrySideTable *geometry.Geometry,
) (HalfEdgeApprox, error) {
	curve := halfEdge.Get().Curve()

	halfEdgeGeom, ok := geometrySideTable.OfHalfEdge(halfEdge)
	if !ok {
		return HalfEdgeApprox{}, fmt.Errorf(
			"half-edge %d has no boundary", halfEdge.ID(),
		)
	}
	local, ok := geometrySideTable.OfCurve(curve, surface)
	if !ok {
		return HalfEdgeApprox{}, fmt.Errorf(
			"curve %d has no local geometry on surface %d",
			curve.ID(), surface.ID(),
		)
	}
	surfaceGeom, ok := geometrySideTable.OfSurface(surface)
	if !ok {
		return HalfEdgeApprox{}, fmt.Errorf(
			"surface %d has no geometry", surface.ID(),
		)
	}

	boundary := halfEdgeGeom.Boundary

	startSurface := local.Path.PointFromPathCoords(boundary.Inner[0])
	points := []FacePoint{{
		PointSurface: startSurface,
		PointGlobal:  surfaceGeom.PointFromSurfaceCoords(startSurface),
	}}

	curveApprox, err := ApproxCurveWithCache(
		curve, surface, boundary, tolerance, cache, geometrySideTable,
	)
	if err != nil {
		return HalfEdgeApprox{}, err
	}

	for _, p := range curveApprox.Points {
		points = append(points, FacePoint{
			PointSurface: local.Path.PointFromPathCoords(p.PointCurve),
			PointGlobal:  p.PointGlobal,
		})
	}

	return HalfEdgeApprox{Points: points}, nil
}
