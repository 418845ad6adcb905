package internal

import "github.com/golang/geo/r2"

// Note that all points involved with the triangulation are pointers. This means
// they can be used as keys. Index is the point's slot in the output vertex
// buffer, and it is never changed after normalization.
type Point struct {
	X     float64
	Y     float64
	Index int
}

func (p *Point) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

type Polygon struct {
	Points []*Point
}

type PolygonList []Polygon

type Segment struct {
	Start *Point
	End   *Point
}

// Triangles produced by the triangulator are always counterclockwise.
type Triangle struct {
	A, B, C *Point
}

type TriangleList []*Triangle

type PointStack []*Point

type PointSet map[*Point]struct{}
