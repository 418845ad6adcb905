package internal

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Anything with a signed area can be tested for winding.
type Shape interface {
	SignedArea() float64
}

func IsCCW(s Shape) bool {
	return s.SignedArea() > 0
}

func IsCW(s Shape) bool {
	return s.SignedArea() < 0
}

func Area(s Shape) float64 {
	return math.Abs(s.SignedArea())
}

// Twice the signed area of abc. Positive when abc turns left.
func Orient(a, b, c *Point) float64 {
	return b.R2().Sub(a.R2()).Cross(c.R2().Sub(a.R2()))
}

// InCircle is positive when d lies strictly inside the circumcircle of the
// counterclockwise triangle abc, negative outside, and zero when the four
// points are cocircular. Coordinates are taken relative to d, which keeps the
// magnitudes small for normalized input.
func InCircle(a, b, c, d *Point) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y
	// mgl64 matrices are column major; the determinant is the same either way.
	m := mgl64.Mat3{
		adx, ady, adx*adx + ady*ady,
		bdx, bdy, bdx*bdx + bdy*bdy,
		cdx, cdy, cdx*cdx + cdy*cdy,
	}
	return m.Det()
}

func (t *Triangle) SignedArea() float64 {
	return Orient(t.A, t.B, t.C) / 2
}

func (t *Triangle) Points() [3]*Point {
	return [3]*Point{t.A, t.B, t.C}
}

func (poly *Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.R2().Cross(q.R2())
	}
	return sum / 2
}

func (s *Segment) Top() *Point {
	if s.Start.Above(s.End) {
		return s.Start
	}
	return s.End
}

func (s *Segment) Bottom() *Point {
	if s.Start.Below(s.End) {
		return s.Start
	}
	return s.End
}

// Note that a right-to-left horizontal segment "points down" because of the
// lexicographic rotation.
func (s *Segment) PointsDown() bool {
	return s.End.Below(s.Start)
}

func (s *Segment) IsHorizontal() bool {
	return s.Start.Y == s.End.Y
}

// XAt gives the x value of the segment on the horizontal through the sweep
// point. Horizontal segments have no single answer, so the sweep point's x is
// clamped into the segment's extent, which is what the slightly rotated
// coordinate system would give near the sweep point.
func (s *Segment) XAt(sweep *Point) float64 {
	top, bottom := s.Top(), s.Bottom()
	if s.IsHorizontal() {
		return math.Max(bottom.X, math.Min(top.X, sweep.X))
	}
	switch sweep.Y {
	case top.Y:
		return top.X
	case bottom.Y:
		return bottom.X
	}
	t := (sweep.Y - bottom.Y) / (top.Y - bottom.Y)
	return bottom.X + t*(top.X-bottom.X)
}

// Is the point strictly left of the upward line through the segment?
// Equivalently, the segment is right of the point.
func (s *Segment) IsRightOf(p *Point) bool {
	return Orient(s.Bottom(), s.Top(), p) > 0
}

func (s *Segment) IsLeftOf(p *Point) bool {
	return Orient(s.Bottom(), s.Top(), p) < 0
}
