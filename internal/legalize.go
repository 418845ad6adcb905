package internal

import "math"

// Relative tolerance for the in-circle test. A flip only happens when the
// determinant clears its own rounding error by a wide margin, so cocircular
// quads (every rectangle, for instance) never flip back and forth.
const inCircleTolerance = 1e-12

type edgeRef struct {
	tri, edge int
}

// DefaultMaxFlips bounds legalization for a mesh over n points. Lawson's
// algorithm needs O(n^2) flips in the worst case.
func DefaultMaxFlips(n int) int {
	return max(64, 4*n*n)
}

// Legalize flips non-constrained edges until every one of them satisfies the
// empty circumcircle property, or maxFlips flips have been made. Edges to
// check are kept on an explicit worklist; each flip re-queues the four outer
// edges of its quad.
func Legalize(m *Mesh, maxFlips int) (flips int, capped bool, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()

	if maxFlips <= 0 {
		maxFlips = DefaultMaxFlips(len(m.Points))
	}

	var queue []edgeRef
	for t := range m.Triangles {
		tri := &m.Triangles[t]
		for i := 0; i < 3; i++ {
			// Each shared edge once
			if !tri.Fixed[i] && tri.N[i] > t {
				queue = append(queue, edgeRef{t, i})
			}
		}
	}

	for len(queue) > 0 {
		ref := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if !m.flipIfIllegal(ref) {
			continue
		}
		flips++
		if flips >= maxFlips {
			return flips, true, nil
		}
		// After a flip, ref.tri is (d, b, c) and its neighbor across edge 2 is
		// (c, a, d). Their first two edges are the outer edges of the quad.
		other := m.Triangles[ref.tri].N[2]
		queue = append(queue,
			edgeRef{ref.tri, 0}, edgeRef{ref.tri, 1},
			edgeRef{other, 0}, edgeRef{other, 1},
		)
	}
	return flips, false, nil
}

// IsLegal reports whether the edge satisfies the Delaunay criterion, which
// constrained and outer edges always do.
func (m *Mesh) IsLegal(t, i int) bool {
	_, _, illegal := m.inspect(edgeRef{t, i})
	return !illegal
}

// Returns the neighbor and its edge index for the shared edge, and whether the
// edge should be flipped.
func (m *Mesh) inspect(ref edgeRef) (u, j int, illegal bool) {
	tri := &m.Triangles[ref.tri]
	u = tri.N[ref.edge]
	if u == NoNeighbor || tri.Fixed[ref.edge] {
		return u, -1, false
	}
	i := ref.edge
	a, b, c := tri.V[i], tri.V[(i+1)%3], tri.V[(i+2)%3]
	j = m.Triangles[u].EdgeIndex(b, a)
	if j < 0 {
		fatalf(ErrTriangulationFailure, "neighbor %d does not share edge %d-%d", u, a, b)
	}
	d := m.Triangles[u].V[(j+2)%3]

	pa, pb, pc, pd := m.Points[a], m.Points[b], m.Points[c], m.Points[d]
	if InCircle(pa, pb, pc, pd) <= inCircleTolerance*inCirclePermanent(pa, pb, pc, pd) {
		return u, j, false
	}
	// An illegal edge always sits in a convex quad. Checking anyway keeps a
	// rounding slip from producing inverted triangles.
	if Orient(pc, pa, pd) <= 0 || Orient(pd, pb, pc) <= 0 {
		return u, j, false
	}
	return u, j, true
}

// The magnitude bound of the terms in the in-circle determinant.
func inCirclePermanent(a, b, c, d *Point) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y
	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy
	return (math.Abs(bdx*cdy)+math.Abs(cdx*bdy))*alift +
		(math.Abs(cdx*ady)+math.Abs(adx*cdy))*blift +
		(math.Abs(adx*bdy)+math.Abs(bdx*ady))*clift
}

/*
Flip the shared edge ab of t = (a, b, c) and u = (b, a, d):

	    c               c
	   / \             /|\
	  /   \           / | \
	 a --- b   ==>   a  |  b
	  \   /           \ | /
	   \ /             \|/
	    d               d

t becomes (d, b, c) and u becomes (c, a, d).
*/
func (m *Mesh) flipIfIllegal(ref edgeRef) bool {
	u, j, illegal := m.inspect(ref)
	if !illegal {
		return false
	}
	t, i := ref.tri, ref.edge
	T, U := m.Triangles[t], m.Triangles[u]
	a, b, c := T.V[i], T.V[(i+1)%3], T.V[(i+2)%3]
	d := U.V[(j+2)%3]

	nbc, fbc := T.N[(i+1)%3], T.Fixed[(i+1)%3]
	nca, fca := T.N[(i+2)%3], T.Fixed[(i+2)%3]
	nad, fad := U.N[(j+1)%3], U.Fixed[(j+1)%3]
	ndb, fdb := U.N[(j+2)%3], U.Fixed[(j+2)%3]

	m.Triangles[t] = MeshTriangle{
		V:     [3]int{d, b, c},
		N:     [3]int{ndb, nbc, u},
		Fixed: [3]bool{fdb, fbc, false},
	}
	m.Triangles[u] = MeshTriangle{
		V:     [3]int{c, a, d},
		N:     [3]int{nca, nad, t},
		Fixed: [3]bool{fca, fad, false},
	}
	if ndb != NoNeighbor {
		m.Triangles[ndb].replaceNeighbor(u, t)
	}
	if nca != NoNeighbor {
		m.Triangles[nca].replaceNeighbor(t, u)
	}
	return true
}
