package internal

import "github.com/google/btree"

// A loop edge as seen by the sweep. Only edges with the polygon interior on
// their right (the "left chain" edges, which point down) ever enter the status
// structure.
type sweepEdge struct {
	Segment
	id     int
	helper *sweepVertex
}

// The sweep status is an ordered map of active edges keyed by their x value
// on the horizontal through the current sweep point. Active edges never cross,
// so their relative order stays valid as the sweep point moves down, even
// though the keys themselves change.
type statusTree struct {
	sweep *Point
	tree  *btree.BTreeG[*sweepEdge]
}

func newStatusTree() *statusTree {
	s := &statusTree{}
	s.tree = btree.NewG(8, s.less)
	return s
}

func (s *statusTree) less(a, b *sweepEdge) bool {
	ax, bx := a.XAt(s.sweep), b.XAt(s.sweep)
	if ax != bx {
		return ax < bx
	}
	return a.id < b.id
}

func (s *statusTree) Len() int {
	return s.tree.Len()
}

func (s *statusTree) Insert(e *sweepEdge) {
	s.tree.ReplaceOrInsert(e)
}

func (s *statusTree) Remove(e *sweepEdge) {
	removed, ok := s.tree.Delete(e)
	if !ok || removed != e {
		fatalf(ErrDegenerateGeometry, "edge %v-%v is not active at %v", e.Start, e.End, s.sweep)
	}
}

// Find the active edge immediately left of the sweep point.
func (s *statusTree) LeftOf(p *Point) *sweepEdge {
	// The probe is a zero length edge at p. Its id sorts it before any real
	// edge with the same x, so edges through p itself are excluded.
	probe := &sweepEdge{Segment: Segment{p, p}, id: -1}
	var found *sweepEdge
	s.tree.DescendLessOrEqual(probe, func(e *sweepEdge) bool {
		found = e
		return false
	})
	if found == nil {
		fatalf(ErrDegenerateGeometry, "no edge left of %v", p)
	}
	return found
}
