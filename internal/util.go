package internal

import "math"

const Tolerance = 1e-9

// Epsilon is the area tolerance used when comparing sums of triangle areas.
const Epsilon = 1e-7

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". This simulates a slightly
// rotated coordinate system, allowing us to assume Y values are never equal.
//
// Unlike a tolerance based comparison, this is exact, so it is a strict total
// order over distinct points. Coincident points fall back to their index.
func (p *Point) Below(otherPoint *Point) bool {
	if p.Y != otherPoint.Y {
		return p.Y < otherPoint.Y
	}
	if p.X != otherPoint.X {
		return p.X < otherPoint.X
	}
	return p.Index < otherPoint.Index
}

func (p *Point) Above(otherPoint *Point) bool {
	return otherPoint.Below(p)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p *Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() *Point {
	if len(*s) == 0 {
		return nil
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() *Point {
	if len(*s) == 0 {
		return nil
	}
	return (*s)[len(*s)-1]
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

func (s PointSet) Add(p *Point) {
	s[p] = struct{}{}
}

func (s PointSet) Has(p *Point) bool {
	_, ok := s[p]
	return ok
}

func (s PointSet) Equals(other PointSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}
