// Package geometry defines the kernel's parametric geometry: paths (lines
// and circles), swept-curve surfaces, curve boundaries, the approximation
// tolerance, and the side-tables that attach geometry to the topology
// layer's identity tokens.
package geometry

import "github.com/sksmith/brep/geom"

type pathKind int

const (
	pathLine pathKind = iota
	pathCircle
)

// Path2 is a parametric curve in 2D surface coordinates, either a line or
// a circle. It is a closed variant type, dispatched by switch.
type Path2 struct {
	kind   pathKind
	line   geom.Line2
	circle geom.Circle2
}

// LinePath2 wraps a 2D line as a path.
func LinePath2(line geom.Line2) Path2 {
	return Path2{kind: pathLine, line: line}
}

// CirclePath2 wraps a 2D circle as a path.
func CirclePath2(circle geom.Circle2) Path2 {
	return Path2{kind: pathCircle, circle: circle}
}

// Line returns the underlying line, if the path is one.
func (p Path2) Line() (geom.Line2, bool) {
	return p.line, p.kind == pathLine
}

// Circle returns the underlying circle, if the path is one.
func (p Path2) Circle() (geom.Circle2, bool) {
	return p.circle, p.kind == pathCircle
}

// PointFromPathCoords maps a path parameter to a 2D point.
func (p Path2) PointFromPathCoords(t geom.Point1) geom.Point2 {
	switch p.kind {
	case pathCircle:
		return p.circle.PointFromCircleCoords(t)
	default:
		return p.line.PointFromLineCoords(t)
	}
}

// PathCoordsFromPoint projects a 2D point onto the path, returning its
// parameter.
func (p Path2) PathCoordsFromPoint(point geom.Point2) geom.Point1 {
	switch p.kind {
	case pathCircle:
		return p.circle.CircleCoordsFromPoint(point)
	default:
		return p.line.LineCoordsFromPoint(point)
	}
}

// Reverse returns the path with its orientation flipped.
func (p Path2) Reverse() Path2 {
	switch p.kind {
	case pathCircle:
		return CirclePath2(p.circle.Reverse())
	default:
		return LinePath2(p.line.Reverse())
	}
}

// Path3 is a parametric curve in 3D global coordinates, either a line or
// a circle.
type Path3 struct {
	kind   pathKind
	line   geom.Line3
	circle geom.Circle3
}

// LinePath3 wraps a 3D line as a path.
func LinePath3(line geom.Line3) Path3 {
	return Path3{kind: pathLine, line: line}
}

// CirclePath3 wraps a 3D circle as a path.
func CirclePath3(circle geom.Circle3) Path3 {
	return Path3{kind: pathCircle, circle: circle}
}

// Line returns the underlying line, if the path is one.
func (p Path3) Line() (geom.Line3, bool) {
	return p.line, p.kind == pathLine
}

// Circle returns the underlying circle, if the path is one.
func (p Path3) Circle() (geom.Circle3, bool) {
	return p.circle, p.kind == pathCircle
}

// PointFromPathCoords maps a path parameter to a 3D point.
func (p Path3) PointFromPathCoords(t geom.Point1) geom.Point3 {
	switch p.kind {
	case pathCircle:
		return p.circle.PointFromCircleCoords(t)
	default:
		return p.line.PointFromLineCoords(t)
	}
}

// PathCoordsFromPoint projects a 3D point onto the path, returning its
// parameter.
func (p Path3) PathCoordsFromPoint(point geom.Point3) geom.Point1 {
	switch p.kind {
	case pathCircle:
		return p.circle.CircleCoordsFromPoint(point)
	default:
		return p.line.LineCoordsFromPoint(point)
	}
}

// Reverse returns the path with its orientation flipped.
func (p Path3) Reverse() Path3 {
	switch p.kind {
	case pathCircle:
		return CirclePath3(p.circle.Reverse())
	default:
		return LinePath3(p.line.Reverse())
	}
}
