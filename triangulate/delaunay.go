package triangulate

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sksmith/brep/approx"
	"github.com/sksmith/brep/geom"
)

// TriangulationPoint is one input point of a face triangulation, carried
// in surface coordinates (which the triangulation runs in) and as the
// global 3D point it lifts to.
type TriangulationPoint struct {
	PointSurface geom.Point2
	PointGlobal  geom.Point3
}

// DelaunayTriangulation computes a constrained Delaunay triangulation of
// the face approximation's points: every cycle segment is forced into the
// triangulation. Triangles are returned with counter-clockwise surface
// winding if the face winding is counter-clockwise, clockwise otherwise.
func DelaunayTriangulation(
	faceApprox approx.FaceApprox,
) [][3]TriangulationPoint {
	points, indexOf := collectPoints(faceApprox)
	if len(points) < 3 {
		return nil
	}

	d := newDelaunay(points)
	for _, p := range points {
		d.insertPoint(p.PointSurface)
	}

	cycles := append(
		[]approx.CycleApprox{faceApprox.Exterior}, faceApprox.Interiors...,
	)
	for _, cycle := range cycles {
		chain := cycle.Points
		for i := range chain {
			next := chain[(i+1)%len(chain)]
			a := indexOf[chain[i].PointSurface]
			b := indexOf[next.PointSurface]
			if a != b {
				d.insertConstraint(a, b)
			}
		}
	}

	var triangles [][3]TriangulationPoint
	for _, t := range d.finished() {
		triangle := [3]TriangulationPoint{
			points[t[0]], points[t[1]], points[t[2]],
		}
		triangles = append(
			triangles, orientTriangle(triangle, faceApprox.Winding),
		)
	}

	return triangles
}

func collectPoints(
	faceApprox approx.FaceApprox,
) ([]TriangulationPoint, map[geom.Point2]int) {
	var points []TriangulationPoint
	indexOf := make(map[geom.Point2]int)

	push := func(cycle approx.CycleApprox) {
		for _, p := range cycle.Points {
			if _, ok := indexOf[p.PointSurface]; ok {
				continue
			}
			indexOf[p.PointSurface] = len(points)
			points = append(points, TriangulationPoint{
				PointSurface: p.PointSurface,
				PointGlobal:  p.PointGlobal,
			})
		}
	}

	push(faceApprox.Exterior)
	for _, interior := range faceApprox.Interiors {
		push(interior)
	}

	return points, indexOf
}

func orientTriangle(
	triangle [3]TriangulationPoint,
	winding approx.Winding,
) [3]TriangulationPoint {
	area := geom.Triangle2{Points: [3]geom.Point2{
		triangle[0].PointSurface,
		triangle[1].PointSurface,
		triangle[2].PointSurface,
	}}.SignedArea()

	flip := false
	if winding == approx.Ccw && area.Sign() < 0 {
		flip = true
	}
	if winding == approx.Cw && area.Sign() > 0 {
		flip = true
	}

	if flip {
		triangle[1], triangle[2] = triangle[2], triangle[1]
	}

	return triangle
}

// delaunay is an incremental (Bowyer-Watson) Delaunay triangulation with
// constraint-edge enforcement. Vertices are indices into coords; the
// final three coords belong to the enclosing super-triangle and are
// stripped from the output.
type delaunay struct {
	coords    []geom.Point2
	numReal   int
	triangles [][3]int
}

func newDelaunay(points []TriangulationPoint) *delaunay {
	coords := make([]geom.Point2, 0, len(points)+3)
	for _, p := range points {
		coords = append(coords, p.PointSurface)
	}

	// Build a super-triangle comfortably enclosing all points.
	min, max := coords[0], coords[0]
	for _, c := range coords[1:] {
		min = geom.Point2{U: min.U.Min(c.U), V: min.V.Min(c.V)}
		max = geom.Point2{U: max.U.Max(c.U), V: max.V.Max(c.V)}
	}
	span := max.Sub(min).Length().Add(geom.S(1))
	mid := geom.Point2{
		U: min.U.Add(max.U).Div(geom.S(2)),
		V: min.V.Add(max.V).Div(geom.S(2)),
	}

	big := span.Mul(geom.S(20))
	super := [3]geom.Point2{
		{U: mid.U.Sub(big), V: mid.V.Sub(span)},
		{U: mid.U.Add(big), V: mid.V.Sub(span)},
		{U: mid.U, V: mid.V.Add(big)},
	}

	d := &delaunay{
		coords:  append(coords, super[0], super[1], super[2]),
		numReal: len(points),
	}
	d.triangles = [][3]int{{len(points), len(points) + 1, len(points) + 2}}

	return d
}

func (d *delaunay) insertPoint(p geom.Point2) {
	var bad []int
	for i, t := range d.triangles {
		if d.inCircumcircle(t, p) {
			bad = append(bad, i)
		}
	}

	// Boundary edges of the cavity: edges of bad triangles not shared
	// with another bad triangle.
	edgeCount := make(map[[2]int]int)
	var edgeOrder [][2]int
	for _, ti := range bad {
		t := d.triangles[ti]
		for i := 0; i < 3; i++ {
			edge := normalizeEdge(t[i], t[(i+1)%3])
			if _, seen := edgeCount[edge]; !seen {
				edgeOrder = append(edgeOrder, edge)
			}
			edgeCount[edge]++
		}
	}

	d.removeTriangles(bad)

	pi := d.indexOfCoord(p)
	for _, edge := range edgeOrder {
		if edgeCount[edge] != 1 {
			continue
		}
		d.addTriangle(edge[0], edge[1], pi)
	}
}

func (d *delaunay) indexOfCoord(p geom.Point2) int {
	for i, c := range d.coords {
		if c == p {
			return i
		}
	}

	panic("point not registered with triangulation")
}

func normalizeEdge(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

func (d *delaunay) addTriangle(a, b, c int) {
	if geom.Orient2D(d.coords[a], d.coords[b], d.coords[c]) < 0 {
		b, c = c, b
	}
	d.triangles = append(d.triangles, [3]int{a, b, c})
}

func (d *delaunay) removeTriangles(indices []int) {
	remove := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		remove[i] = struct{}{}
	}

	var kept [][3]int
	for i, t := range d.triangles {
		if _, gone := remove[i]; !gone {
			kept = append(kept, t)
		}
	}
	d.triangles = kept
}

// inCircumcircle reports whether p lies strictly inside the circumcircle
// of triangle t.
func (d *delaunay) inCircumcircle(t [3]int, p geom.Point2) bool {
	a, b, c := d.coords[t[0]], d.coords[t[1]], d.coords[t[2]]
	if geom.Orient2D(a, b, c) < 0 {
		b, c = c, b
	}

	row := func(q geom.Point2) [3]float64 {
		du := q.U.Sub(p.U)
		dv := q.V.Sub(p.V)

		return [3]float64{
			du.F64(), dv.F64(), du.Mul(du).Add(dv.Mul(dv)).F64(),
		}
	}

	ra, rb, rc := row(a), row(b), row(c)
	m := mat.NewDense(3, 3, []float64{
		ra[0], ra[1], ra[2],
		rb[0], rb[1], rb[2],
		rc[0], rc[1], rc[2],
	})

	return mat.Det(m) > 0
}

func triangleContains(t [3]int, v int) bool {
	return t[0] == v || t[1] == v || t[2] == v
}

func (d *delaunay) edgeExists(a, b int) bool {
	for _, t := range d.triangles {
		if triangleContains(t, a) && triangleContains(t, b) {
			return true
		}
	}

	return false
}

// insertConstraint forces the edge between vertices a and b into the
// triangulation: the triangles the segment crosses are removed and the
// two resulting pseudo-polygons are re-triangulated against the segment.
func (d *delaunay) insertConstraint(a, b int) {
	if d.edgeExists(a, b) {
		return
	}

	crossed, upper, lower, split := d.walkCrossed(a, b)
	if split >= 0 {
		// A vertex lies exactly on the segment; constrain both halves.
		d.insertConstraint(a, split)
		d.insertConstraint(split, b)

		return
	}
	if crossed == nil {
		return
	}

	d.removeTriangles(crossed)
	d.triangulatePseudoPolygon(upper, a, b)
	d.triangulatePseudoPolygon(lower, a, b)
}

// walkCrossed walks the triangles from a towards b, collecting the
// triangles the open segment (a, b) crosses and the crossed vertices on
// either side of it. If a vertex lies exactly on the segment, its index
// is returned as split.
func (d *delaunay) walkCrossed(
	a, b int,
) (crossed, upper, lower []int, split int) {
	split = -1

	pa, pb := d.coords[a], d.coords[b]
	side := func(v int) int {
		return geom.Orient2D(pa, pb, d.coords[v])
	}

	// Find the triangle at a whose opposite edge the segment enters.
	start, u, v := -1, -1, -1
	for ti, t := range d.triangles {
		if !triangleContains(t, a) {
			continue
		}

		var others []int
		for _, x := range t {
			if x != a {
				others = append(others, x)
			}
		}

		for _, x := range others {
			if side(x) == 0 && betweenOnSegment(pa, pb, d.coords[x]) {
				return nil, nil, nil, x
			}
		}

		if side(others[0])*side(others[1]) < 0 &&
			segmentStraddles(d.coords[others[0]], d.coords[others[1]], pa, pb) {
			start, u, v = ti, others[0], others[1]

			break
		}
	}

	if start < 0 {
		return nil, nil, nil, -1
	}

	// Keep u on the positive side, v on the negative side.
	if side(u) < 0 {
		u, v = v, u
	}

	crossed = append(crossed, start)
	upper = append(upper, u)
	lower = append(lower, v)

	current := start
	for {
		next := d.triangleAcrossEdge(u, v, current)
		if next < 0 {
			return nil, nil, nil, -1
		}
		crossed = append(crossed, next)

		w := -1
		for _, x := range d.triangles[next] {
			if x != u && x != v {
				w = x
			}
		}

		if w == b {
			return crossed, upper, lower, -1
		}

		s := side(w)
		if s == 0 {
			return nil, nil, nil, w
		}
		if s > 0 {
			upper = append(upper, w)
			u = w
		} else {
			lower = append(lower, w)
			v = w
		}
		current = next
	}
}

func (d *delaunay) triangleAcrossEdge(u, v, current int) int {
	for ti, t := range d.triangles {
		if ti == current {
			continue
		}
		if triangleContains(t, u) && triangleContains(t, v) {
			return ti
		}
	}

	return -1
}

// triangulatePseudoPolygon re-triangulates one side of an inserted
// constraint edge: the chain of vertices in walk order against the edge
// (a, b), choosing at each level the vertex whose circumcircle with the
// edge is empty.
func (d *delaunay) triangulatePseudoPolygon(chain []int, a, b int) {
	if len(chain) == 0 {
		return
	}

	best := 0
	for i := 1; i < len(chain); i++ {
		t := [3]int{a, b, chain[best]}
		if d.inCircumcircle(t, d.coords[chain[i]]) {
			best = i
		}
	}

	c := chain[best]
	d.triangulatePseudoPolygon(chain[:best], a, c)
	d.triangulatePseudoPolygon(chain[best+1:], c, b)
	d.addTriangle(a, b, c)
}

// finished returns the triangles that use real input points only.
func (d *delaunay) finished() [][3]int {
	var result [][3]int
	for _, t := range d.triangles {
		if t[0] < d.numReal && t[1] < d.numReal && t[2] < d.numReal {
			result = append(result, t)
		}
	}

	return result
}

func segmentStraddles(p, q, a, b geom.Point2) bool {
	return geom.Orient2D(p, q, a)*geom.Orient2D(p, q, b) < 0
}

func betweenOnSegment(a, b, p geom.Point2) bool {
	minU, maxU := a.U.Min(b.U), a.U.Max(b.U)
	minV, maxV := a.V.Min(b.V), a.V.Max(b.V)

	return minU.LessEq(p.U) && p.U.LessEq(maxU) &&
		minV.LessEq(p.V) && p.V.LessEq(maxV) &&
		p != a && p != b
}
