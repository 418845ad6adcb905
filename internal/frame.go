package internal

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
)

// Frame maps between world coordinates and the local frame the engine works
// in. Geospatial input routinely sits a million units from the origin, which
// leaves the in-circle determinant with too few significant bits. The local
// frame centres the bounding box on the origin and scales its larger side to
// [-1, 1].
type Frame struct {
	Min, Max r2.Point
	// Origin maps local coordinates to world coordinates. Inverse maps world to
	// local.
	Origin  mgl64.Mat4
	Inverse mgl64.Mat4

	center r2.Point
	scale  float64
}

func NewFrame(bounds r2.Rect) *Frame {
	size := bounds.Size()
	extent := math.Max(size.X, size.Y)
	scale := 1.0
	if extent > 0 {
		scale = 2 / extent
	}
	center := bounds.Center()
	origin := mgl64.Translate3D(center.X, center.Y, 0).Mul4(mgl64.Scale3D(1/scale, 1/scale, 1))
	return &Frame{
		Min:     bounds.Lo(),
		Max:     bounds.Hi(),
		Origin:  origin,
		Inverse: origin.Inv(),
		center:  center,
		scale:   scale,
	}
}

// ToLocal is equivalent to applying Inverse, but subtracts the centre before
// scaling so large offsets cancel exactly instead of after rounding.
func (f *Frame) ToLocal(p r2.Point) r2.Point {
	return p.Sub(f.center).Mul(f.scale)
}

func (f *Frame) ToWorld(p r2.Point) r2.Point {
	v := f.Origin.Mul4x1(mgl64.Vec4{p.X, p.Y, 0, 1})
	return r2.Point{X: v[0], Y: v[1]}
}

// Input is a normalized triangulation request: the boundary and islands in
// the local frame, with every point indexed into Points.
type Input struct {
	Boundary Polygon
	Islands  PolygonList
	Points   []*Point
	Frame    *Frame
}

// Normalize validates the raw rings, computes the bounding box over all of
// them, and converts every point into the local frame. Boundary points are
// indexed first, then each island in order.
func Normalize(boundary []r2.Point, islands [][]r2.Point) (input *Input, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			input = nil
			err = recoveredErr
		}
	}()

	boundary = trimClosingPoint(boundary)
	if distinctCount(boundary) < 3 {
		fatalf(ErrInvalidInput, "boundary needs at least 3 distinct points, got %d", distinctCount(boundary))
	}
	rings := make([][]r2.Point, 0, len(islands)+1)
	rings = append(rings, boundary)
	for i, island := range islands {
		island = trimClosingPoint(island)
		if len(island) < 3 {
			fatalf(ErrInvalidInput, "island %d needs at least 3 points, got %d", i, len(island))
		}
		rings = append(rings, island)
	}

	bounds := r2.EmptyRect()
	for _, ring := range rings {
		for _, p := range ring {
			if !isFinite(p.X) || !isFinite(p.Y) {
				fatalf(ErrInvalidInput, "point %v is not finite", p)
			}
			bounds = bounds.AddPoint(p)
		}
	}

	frame := NewFrame(bounds)
	input = &Input{Frame: frame}
	for i, ring := range rings {
		poly := Polygon{Points: make([]*Point, 0, len(ring))}
		for _, p := range ring {
			local := frame.ToLocal(p)
			point := &Point{X: local.X, Y: local.Y, Index: len(input.Points)}
			input.Points = append(input.Points, point)
			poly.Points = append(poly.Points, point)
		}
		if i == 0 {
			input.Boundary = poly
		} else {
			input.Islands = append(input.Islands, poly)
		}
	}
	return input, nil
}

// GIS rings are frequently closed by repeating the first point.
func trimClosingPoint(ring []r2.Point) []r2.Point {
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		return ring[:len(ring)-1]
	}
	return ring
}

func distinctCount(ring []r2.Point) int {
	seen := make(map[r2.Point]struct{}, len(ring))
	for _, p := range ring {
		seen[p] = struct{}{}
	}
	return len(seen)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
