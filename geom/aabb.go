package geom

// Aabb3 is an axis-aligned bounding box in 3D space.
type Aabb3 struct {
	Min, Max Point3
}

// Aabb3FromPoints computes the bounding box of the given points. The zero
// box is returned for an empty slice.
func Aabb3FromPoints(points []Point3) Aabb3 {
	if len(points) == 0 {
		return Aabb3{}
	}

	aabb := Aabb3{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		aabb = aabb.IncludePoint(p)
	}

	return aabb
}

// IncludePoint returns the box grown to contain p.
func (a Aabb3) IncludePoint(p Point3) Aabb3 {
	return Aabb3{
		Min: Point3{
			X: a.Min.X.Min(p.X),
			Y: a.Min.Y.Min(p.Y),
			Z: a.Min.Z.Min(p.Z),
		},
		Max: Point3{
			X: a.Max.X.Max(p.X),
			Y: a.Max.Y.Max(p.Y),
			Z: a.Max.Z.Max(p.Z),
		},
	}
}

// Merged returns the union of the two boxes.
func (a Aabb3) Merged(other Aabb3) Aabb3 {
	return a.IncludePoint(other.Min).IncludePoint(other.Max)
}

// Size returns the box's extent along each axis.
func (a Aabb3) Size() Vector3 {
	return a.Max.Sub(a.Min)
}

// SmallestPositiveExtent returns the smallest non-zero axis extent, or
// zero if the box is degenerate along every axis.
func (a Aabb3) SmallestPositiveExtent() Scalar {
	size := a.Size()

	smallest := S(0)
	for _, extent := range []Scalar{size.X, size.Y, size.Z} {
		if extent.Sign() <= 0 {
			continue
		}
		if smallest.Sign() == 0 || extent.Less(smallest) {
			smallest = extent
		}
	}

	return smallest
}
