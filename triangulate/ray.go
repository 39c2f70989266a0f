// Package triangulate turns face approximations into triangles: a
// constrained Delaunay triangulation over the face's 2D points, filtered
// against the face polygon so only triangles inside the face survive,
// then lifted to global 3D coordinates.
package triangulate

import "github.com/sksmith/brep/geom"

// HorizontalRayToTheRight is a ray originating at a point and extending
// in positive u-direction. It is the probe used by point-in-polygon
// testing.
type HorizontalRayToTheRight struct {
	Origin geom.Point2
}

// RaySegmentIntersection classifies how a horizontal ray hits a segment.
type RaySegmentIntersection int

const (
	// RayStartsOnSegment: the ray's origin lies on the segment's
	// interior, or anywhere on a segment that is parallel to the ray.
	RayStartsOnSegment RaySegmentIntersection = iota

	// RayStartsOnFirstVertex: the ray's origin is the segment's first
	// point.
	RayStartsOnFirstVertex

	// RayStartsOnSecondVertex: the ray's origin is the segment's second
	// point.
	RayStartsOnSecondVertex

	// RayHitsSegment: the ray crosses the segment's interior.
	RayHitsSegment

	// RayHitsUpperVertex: the ray passes through the segment's endpoint
	// with the larger v-coordinate.
	RayHitsUpperVertex

	// RayHitsLowerVertex: the ray passes through the segment's endpoint
	// with the smaller v-coordinate.
	RayHitsLowerVertex

	// RayHitsSegmentAndAreParallel: the segment is collinear with the
	// ray.
	RayHitsSegmentAndAreParallel
)

// IntersectRaySegment classifies the intersection of a horizontal ray
// with a segment. The second return value is false if they do not
// intersect.
func IntersectRaySegment(
	ray HorizontalRayToTheRight,
	segment geom.LineSegment2,
) (RaySegmentIntersection, bool) {
	a, b := segment.A, segment.B
	origin := ray.Origin

	if a.V == b.V {
		// The segment is parallel to the ray.
		if origin.V != a.V {
			return 0, false
		}

		minU, maxU := a.U.Min(b.U), a.U.Max(b.U)
		if maxU.Less(origin.U) {
			// The segment is entirely behind the ray.
			return 0, false
		}
		if !origin.U.Less(minU) {
			return RayStartsOnSegment, true
		}

		return RayHitsSegmentAndAreParallel, true
	}

	lower, upper := a, b
	if upper.V.Less(lower.V) {
		lower, upper = upper, lower
	}

	if origin.V.Less(lower.V) || upper.V.Less(origin.V) {
		return 0, false
	}

	// u-coordinate where the segment crosses the ray's v-level.
	t := origin.V.Sub(a.V).Div(b.V.Sub(a.V))
	u := a.U.Add(b.U.Sub(a.U).Mul(t))

	if u.Less(origin.U) {
		return 0, false
	}

	if u == origin.U {
		switch origin {
		case a:
			return RayStartsOnFirstVertex, true
		case b:
			return RayStartsOnSecondVertex, true
		default:
			return RayStartsOnSegment, true
		}
	}

	switch origin.V {
	case upper.V:
		return RayHitsUpperVertex, true
	case lower.V:
		return RayHitsLowerVertex, true
	default:
		return RayHitsSegment, true
	}
}
