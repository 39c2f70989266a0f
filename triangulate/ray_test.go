package triangulate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sksmith/brep/geom"
)

func TestIntersectRaySegment(t *testing.T) {
	ray := HorizontalRayToTheRight{Origin: geom.Pt2(1, 1)}

	tests := []struct {
		name    string
		segment geom.LineSegment2
		hit     RaySegmentIntersection
		hasHit  bool
	}{
		{
			"HitsSegment",
			geom.LineSegment2{A: geom.Pt2(2, 0), B: geom.Pt2(2, 2)},
			RayHitsSegment, true,
		},
		{
			"MissesSegmentBehind",
			geom.LineSegment2{A: geom.Pt2(0, 0), B: geom.Pt2(0, 2)},
			0, false,
		},
		{
			"MissesSegmentAbove",
			geom.LineSegment2{A: geom.Pt2(2, 2), B: geom.Pt2(2, 3)},
			0, false,
		},
		{
			"MissesSegmentBelow",
			geom.LineSegment2{A: geom.Pt2(2, -1), B: geom.Pt2(2, 0)},
			0, false,
		},
		{
			"HitsUpperVertex",
			geom.LineSegment2{A: geom.Pt2(2, 0), B: geom.Pt2(2, 1)},
			RayHitsUpperVertex, true,
		},
		{
			"HitsLowerVertex",
			geom.LineSegment2{A: geom.Pt2(2, 1), B: geom.Pt2(2, 2)},
			RayHitsLowerVertex, true,
		},
		{
			"ParallelOverlapping",
			geom.LineSegment2{A: geom.Pt2(2, 1), B: geom.Pt2(3, 1)},
			RayHitsSegmentAndAreParallel, true,
		},
		{
			"ParallelBehind",
			geom.LineSegment2{A: geom.Pt2(-1, 1), B: geom.Pt2(0, 1)},
			0, false,
		},
		{
			"ParallelOnOtherLevel",
			geom.LineSegment2{A: geom.Pt2(2, 2), B: geom.Pt2(3, 2)},
			0, false,
		},
		{
			"RayStartsOnSegment",
			geom.LineSegment2{A: geom.Pt2(1, 0), B: geom.Pt2(1, 2)},
			RayStartsOnSegment, true,
		},
		{
			"RayStartsOnParallelSegment",
			geom.LineSegment2{A: geom.Pt2(0, 1), B: geom.Pt2(2, 1)},
			RayStartsOnSegment, true,
		},
		{
			"RayStartsOnFirstVertex",
			geom.LineSegment2{A: geom.Pt2(1, 1), B: geom.Pt2(1, 2)},
			RayStartsOnFirstVertex, true,
		},
		{
			"RayStartsOnSecondVertex",
			geom.LineSegment2{A: geom.Pt2(1, 0), B: geom.Pt2(1, 1)},
			RayStartsOnSecondVertex, true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			hit, hasHit := IntersectRaySegment(ray, test.segment)

			assert.Equal(t, test.hasHit, hasHit)
			if test.hasHit {
				assert.Equal(t, test.hit, hit)
			}
		})
	}
}

func TestIntersectRaySegmentSlanted(t *testing.T) {
	ray := HorizontalRayToTheRight{Origin: geom.Pt2(0, 1)}

	// Slanted segment crossing the ray's level to the right.
	hit, hasHit := IntersectRaySegment(ray, geom.LineSegment2{
		A: geom.Pt2(1, 0), B: geom.Pt2(2, 2),
	})
	assert.True(t, hasHit)
	assert.Equal(t, RayHitsSegment, hit)

	// Same segment, but crossing behind the origin.
	behind := HorizontalRayToTheRight{Origin: geom.Pt2(3, 1)}
	_, hasHit = IntersectRaySegment(behind, geom.LineSegment2{
		A: geom.Pt2(1, 0), B: geom.Pt2(2, 2),
	})
	assert.False(t, hasHit)
}
