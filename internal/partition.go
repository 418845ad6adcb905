package internal

import (
	"fmt"
	"sort"
)

// Facilities for splitting a polygon with holes into y-monotone pieces. This is
// the classic sweep: every vertex is classified by its two loop edges, then
// the vertices are visited from top to bottom, and split and merge vertices
// are resolved by adding diagonals to a "helper" vertex.
//
// All loops are oriented so the interior is on the left of every edge: the
// boundary counterclockwise, islands clockwise. With that convention the same
// classification works for holes without special casing.

type VertexKind int

const (
	StartVertex VertexKind = iota
	EndVertex
	SplitVertex
	MergeVertex
	// Interior lies to the right; the vertex is on a left chain.
	RegularLeftVertex
	// Interior lies to the left; the vertex is on a right chain.
	RegularRightVertex
)

func (k VertexKind) String() string {
	switch k {
	case StartVertex:
		return "start"
	case EndVertex:
		return "end"
	case SplitVertex:
		return "split"
	case MergeVertex:
		return "merge"
	case RegularLeftVertex:
		return "regular-left"
	case RegularRightVertex:
		return "regular-right"
	}
	return fmt.Sprintf("VertexKind(%d)", int(k))
}

type sweepVertex struct {
	point      *Point
	prev, next *sweepVertex
	// The loop edge leaving this vertex (toward next).
	edge *sweepEdge
	kind VertexKind
}

// The edge arriving at this vertex (from prev).
func (v *sweepVertex) prevEdge() *sweepEdge {
	return v.prev.edge
}

func ClassifyVertex(prev, v, next *Point) VertexKind {
	prevBelow := prev.Below(v)
	nextBelow := next.Below(v)
	turn := Orient(prev, v, next)
	switch {
	case prevBelow && nextBelow:
		if turn == 0 {
			fatalf(ErrDegenerateGeometry, "spike at %v", v)
		}
		if turn > 0 {
			return StartVertex
		}
		return SplitVertex
	case !prevBelow && !nextBelow:
		if turn == 0 {
			fatalf(ErrDegenerateGeometry, "spike at %v", v)
		}
		if turn > 0 {
			return EndVertex
		}
		return MergeVertex
	case !prevBelow:
		return RegularLeftVertex
	default:
		return RegularRightVertex
	}
}

type partitioner struct {
	vertices []*sweepVertex
	status   *statusTree
	graph    *halfEdgeGraph
	nextID   int
}

// Partition splits the normalized input into monotone regions. The boundary
// and islands may arrive with either winding; they are reoriented here.
func Partition(input *Input) (regions PolygonList, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			regions = nil
			err = recoveredErr
		}
	}()

	if input == nil || len(input.Boundary.Points) < 3 {
		fatalf(ErrInvalidInput, "boundary needs at least 3 points")
	}
	checkDuplicates(input)

	boundary := input.Boundary.Oriented(true)
	loops := PolygonList{boundary}
	for i, island := range input.Islands {
		if len(island.Points) < 3 {
			fatalf(ErrInvalidInput, "island %d needs at least 3 points, got %d", i, len(island.Points))
		}
		// Best effort only. A full intersection test would cost more than the
		// triangulation itself.
		if !boundary.ContainsPointByEvenOdd(island.Points[0]) {
			fatalf(ErrDegenerateGeometry, "island %d is not inside the boundary", i)
		}
		loops = append(loops, island.Oriented(false))
	}

	p := &partitioner{
		status: newStatusTree(),
		graph:  newHalfEdgeGraph(),
	}
	for _, loop := range loops {
		p.addLoop(loop)
	}
	p.sweep()
	return p.regions(), nil
}

func checkDuplicates(input *Input) {
	seen := make(map[[2]float64]*Point, len(input.Points))
	for _, p := range input.Points {
		key := [2]float64{p.X, p.Y}
		if other, ok := seen[key]; ok {
			fatalf(ErrDegenerateGeometry, "points %d and %d coincide at (%g, %g)", other.Index, p.Index, p.X, p.Y)
		}
		seen[key] = p
	}
}

func (p *partitioner) addLoop(loop Polygon) {
	p.graph.AddLoop(loop)
	n := len(loop.Points)
	loopVertices := make([]*sweepVertex, n)
	for i, point := range loop.Points {
		loopVertices[i] = &sweepVertex{point: point}
	}
	for i, v := range loopVertices {
		v.prev = loopVertices[CircularIndex(i-1, n)]
		v.next = loopVertices[CircularIndex(i+1, n)]
		v.edge = &sweepEdge{Segment: Segment{v.point, v.next.point}, id: p.nextID}
		p.nextID++
	}
	for _, v := range loopVertices {
		v.kind = ClassifyVertex(v.prev.point, v.point, v.next.point)
	}
	p.vertices = append(p.vertices, loopVertices...)
}

func (p *partitioner) sweep() {
	sort.Slice(p.vertices, func(i, j int) bool {
		return p.vertices[i].point.Above(p.vertices[j].point)
	})
	for _, v := range p.vertices {
		p.status.sweep = v.point
		switch v.kind {
		case StartVertex:
			p.handleStart(v)
		case EndVertex:
			p.handleEnd(v)
		case SplitVertex:
			p.handleSplit(v)
		case MergeVertex:
			p.handleMerge(v)
		case RegularLeftVertex:
			p.handleRegularLeft(v)
		case RegularRightVertex:
			p.handleRegularRight(v)
		}
	}
	if p.status.Len() != 0 {
		fatalf(ErrDegenerateGeometry, "%d edges still active after the sweep", p.status.Len())
	}
}

func (p *partitioner) diagonal(a, b *sweepVertex) {
	p.graph.AddDiagonal(a.point, b.point)
}

// If the helper of the edge is a merge vertex, connect it to v.
func (p *partitioner) resolveMergeHelper(v *sweepVertex, e *sweepEdge) {
	if e.helper == nil {
		fatalf(ErrDegenerateGeometry, "edge %v-%v has no helper at %v", e.Start, e.End, v.point)
	}
	if e.helper.kind == MergeVertex {
		p.diagonal(v, e.helper)
	}
}

func (p *partitioner) handleStart(v *sweepVertex) {
	v.edge.helper = v
	p.status.Insert(v.edge)
}

func (p *partitioner) handleEnd(v *sweepVertex) {
	e := v.prevEdge()
	p.resolveMergeHelper(v, e)
	p.status.Remove(e)
}

func (p *partitioner) handleSplit(v *sweepVertex) {
	left := p.status.LeftOf(v.point)
	p.diagonal(v, left.helper)
	left.helper = v
	v.edge.helper = v
	p.status.Insert(v.edge)
}

func (p *partitioner) handleMerge(v *sweepVertex) {
	e := v.prevEdge()
	p.resolveMergeHelper(v, e)
	p.status.Remove(e)
	left := p.status.LeftOf(v.point)
	p.resolveMergeHelper(v, left)
	left.helper = v
}

func (p *partitioner) handleRegularLeft(v *sweepVertex) {
	e := v.prevEdge()
	p.resolveMergeHelper(v, e)
	p.status.Remove(e)
	v.edge.helper = v
	p.status.Insert(v.edge)
}

func (p *partitioner) handleRegularRight(v *sweepVertex) {
	left := p.status.LeftOf(v.point)
	p.resolveMergeHelper(v, left)
	left.helper = v
}

func (p *partitioner) regions() PolygonList {
	faces := p.graph.Faces()
	for _, face := range faces {
		if len(face.Points) < 3 {
			fatalf(ErrDegenerateGeometry, "region with %d points", len(face.Points))
		}
		if !IsCCW(&face) {
			fatalf(ErrDegenerateGeometry, "region starting at %v is not counterclockwise", face.Points[0])
		}
	}
	return faces
}
