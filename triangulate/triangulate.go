package triangulate

import (
	"github.com/sksmith/brep/approx"
	"github.com/sksmith/brep/geom"
	"github.com/sksmith/brep/mesh"
)

// TriangulateFaceApprox triangulates one face approximation into the
// provided mesh: a constrained Delaunay triangulation over the face's
// points, filtered against the face polygon, lifted to global 3D
// coordinates, and colored.
func TriangulateFaceApprox(
	faceApprox approx.FaceApprox,
	m *mesh.Mesh,
) {
	polygon := PolygonFromFaceApprox(faceApprox)

	triangles := DelaunayTriangulation(faceApprox)

	color := mesh.DefaultColor
	if !faceApprox.Face.IsZero() {
		if regionColor := faceApprox.Face.Get().Region().Get().Color(); regionColor != nil {
			color = *regionColor
		}
	}

	for _, triangle := range triangles {
		surface := geom.Triangle2{Points: [3]geom.Point2{
			triangle[0].PointSurface,
			triangle[1].PointSurface,
			triangle[2].PointSurface,
		}}

		if !polygon.ContainsTriangle(surface) {
			continue
		}

		m.PushTriangle([3]geom.Point3{
			triangle[0].PointGlobal,
			triangle[1].PointGlobal,
			triangle[2].PointGlobal,
		}, color)
	}
}

// PolygonFromFaceApprox builds the 2D polygon (exterior plus holes) of a
// face approximation, in surface coordinates.
func PolygonFromFaceApprox(faceApprox approx.FaceApprox) Polygon {
	polygon := NewPolygon().WithExterior(chainFromCycle(faceApprox.Exterior))

	for _, interior := range faceApprox.Interiors {
		polygon = polygon.WithInteriors(chainFromCycle(interior))
	}

	return polygon
}

func chainFromCycle(cycle approx.CycleApprox) PolyChain {
	points := make([]geom.Point2, 0, len(cycle.Points))
	for _, p := range cycle.Points {
		points = append(points, p.PointSurface)
	}

	return NewPolyChain(points)
}
