package triangulate

import "github.com/sksmith/brep/geom"

// PolyChain is an ordered, closed sequence of 2D points. The last point
// connects back to the first.
type PolyChain struct {
	points []geom.Point2
}

// NewPolyChain creates a closed chain from the given points.
func NewPolyChain(points []geom.Point2) PolyChain {
	return PolyChain{points: points}
}

// Points returns the chain's points.
func (c PolyChain) Points() []geom.Point2 {
	return c.points
}

// Segments returns the chain's segments, including the closing segment
// from the last point back to the first.
func (c PolyChain) Segments() []geom.LineSegment2 {
	segments := make([]geom.LineSegment2, 0, len(c.points))
	for i, point := range c.points {
		next := c.points[(i+1)%len(c.points)]
		segments = append(segments, geom.LineSegment2{A: point, B: next})
	}

	return segments
}

// Reverse returns the chain with its winding flipped.
func (c PolyChain) Reverse() PolyChain {
	points := make([]geom.Point2, len(c.points))
	for i, p := range c.points {
		points[len(points)-1-i] = p
	}

	return PolyChain{points: points}
}

// Polygon is a pure-2D polygon with holes: one exterior chain plus zero
// or more interior chains.
type Polygon struct {
	exterior  PolyChain
	interiors []PolyChain
}

// NewPolygon creates an empty polygon.
func NewPolygon() Polygon {
	return Polygon{}
}

// WithExterior returns the polygon with the given exterior chain.
func (p Polygon) WithExterior(exterior PolyChain) Polygon {
	p.exterior = exterior

	return p
}

// WithInteriors returns the polygon with the given interior chains
// appended.
func (p Polygon) WithInteriors(interiors ...PolyChain) Polygon {
	p.interiors = append(p.interiors, interiors...)

	return p
}

// InvertWinding returns the polygon with every chain's winding flipped.
// Containment queries are winding-invariant; this exists for tests.
func (p Polygon) InvertWinding() Polygon {
	inverted := Polygon{exterior: p.exterior.Reverse()}
	for _, interior := range p.interiors {
		inverted.interiors = append(inverted.interiors, interior.Reverse())
	}

	return inverted
}

// ContainsTriangle reports whether the triangle lies inside the polygon.
// A triangle whose three edges are all interior-chain edges fills a hole
// and is not contained.
func (p Polygon) ContainsTriangle(triangle geom.Triangle2) bool {
	points := triangle.Points
	mightBeHole := true

	for i := range points {
		edge := geom.LineSegment2{A: points[i], B: points[(i+1)%len(points)]}

		isExteriorEdge := p.ContainsExteriorEdge(edge)
		isInteriorEdge := p.ContainsInteriorEdge(edge)

		// An edge that is not an interior edge rules out that the
		// triangle is identical with a hole.
		if !isInteriorEdge {
			mightBeHole = false
		}

		if isExteriorEdge || isInteriorEdge {
			continue
		}

		// The edge is not a polygon edge, so its midpoint decides
		// whether it lies within the polygon.
		if !p.ContainsPoint(edge.Center()) {
			return false
		}
	}

	return !mightBeHole
}

// ContainsExteriorEdge reports whether the segment, in either direction,
// is an edge of the exterior chain.
func (p Polygon) ContainsExteriorEdge(edge geom.LineSegment2) bool {
	return chainContainsEdge(p.exterior, edge)
}

// ContainsInteriorEdge reports whether the segment, in either direction,
// is an edge of any interior chain.
func (p Polygon) ContainsInteriorEdge(edge geom.LineSegment2) bool {
	for _, chain := range p.interiors {
		if chainContainsEdge(chain, edge) {
			return true
		}
	}

	return false
}

func chainContainsEdge(chain PolyChain, edge geom.LineSegment2) bool {
	reversed := edge.Reverse()
	for _, segment := range chain.Segments() {
		if segment == edge || segment == reversed {
			return true
		}
	}

	return false
}

// ContainsPoint reports whether the polygon contains the point. Points on
// the boundary are contained by convention.
func (p Polygon) ContainsPoint(point geom.Point2) bool {
	ray := HorizontalRayToTheRight{Origin: point}

	numHits := 0

	chains := append([]PolyChain{p.exterior}, p.interiors...)
	for _, chain := range chains {
		edges := chain.Segments()
		if len(edges) == 0 {
			continue
		}

		// The ray passing the boundary at the "seam" between the last
		// and the first segment must be detected like any other vertex
		// pass, so the previous hit starts out as the last segment's.
		previousHit, hasPreviousHit := IntersectRaySegment(
			ray, edges[len(edges)-1],
		)

		for _, edge := range edges {
			hit, hasHit := IntersectRaySegment(ray, edge)

			countHit := false
			switch {
			case !hasHit:

			case hit == RayStartsOnSegment ||
				hit == RayStartsOnFirstVertex ||
				hit == RayStartsOnSecondVertex:
				// The ray starts on the boundary; the point is
				// contained by definition.
				return true

			case hit == RayHitsSegment:
				countHit = true

			case hit == RayHitsSegmentAndAreParallel:
				// A parallel edge is ignored entirely; its neighbors
				// behave as if directly connected.
				continue

			case hit == RayHitsUpperVertex && hasPreviousHit &&
				previousHit == RayHitsLowerVertex:
				countHit = true

			case hit == RayHitsLowerVertex && hasPreviousHit &&
				previousHit == RayHitsUpperVertex:
				// A vertex hit only counts if the previous hit was
				// the other kind of vertex: then the ray actually
				// passes through the boundary where two edges touch.
				// Two of the same kind in a row mean the ray grazed a
				// tangent vertex without crossing.
				countHit = true
			}

			if countHit {
				numHits++
			}

			previousHit, hasPreviousHit = hit, hasHit
		}
	}

	return numHits%2 == 1
}
