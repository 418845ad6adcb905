package internal

import (
	"math"
	"sort"
)

// A minimal doubly connected edge list. It only needs to answer one question:
// once the sweep has added its diagonals, what are the faces inside the
// polygon? Each loop edge contributes one inside half edge (interior on its
// left) and one outside twin. Diagonals contribute two inside half edges.
type halfEdge struct {
	origin  *Point
	twin    *halfEdge
	next    *halfEdge
	inside  bool
	angle   float64
	visited bool
}

func (h *halfEdge) dest() *Point {
	return h.twin.origin
}

type halfEdgeGraph struct {
	outgoing map[*Point][]*halfEdge
	edges    []*halfEdge
}

func newHalfEdgeGraph() *halfEdgeGraph {
	return &halfEdgeGraph{outgoing: make(map[*Point][]*halfEdge)}
}

func (g *halfEdgeGraph) addEdge(a, b *Point, insideLeft, insideRight bool) {
	ab := &halfEdge{origin: a, inside: insideLeft, angle: math.Atan2(b.Y-a.Y, b.X-a.X)}
	ba := &halfEdge{origin: b, inside: insideRight, angle: math.Atan2(a.Y-b.Y, a.X-b.X)}
	ab.twin, ba.twin = ba, ab
	g.outgoing[a] = append(g.outgoing[a], ab)
	g.outgoing[b] = append(g.outgoing[b], ba)
	g.edges = append(g.edges, ab, ba)
}

// Add a polygon loop. The loop must be oriented with the interior on the
// left of each edge.
func (g *halfEdgeGraph) AddLoop(poly Polygon) {
	for i, p := range poly.Points {
		g.addEdge(p, poly.Points[CircularIndex(i+1, len(poly.Points))], true, false)
	}
}

func (g *halfEdgeGraph) AddDiagonal(a, b *Point) {
	for _, h := range g.outgoing[a] {
		if h.dest() == b {
			return
		}
	}
	g.addEdge(a, b, true, true)
}

// Link each half edge to the next one around its left face: among the edges
// leaving the destination, the one immediately clockwise from the twin.
func (g *halfEdgeGraph) link() {
	for _, out := range g.outgoing {
		sort.Slice(out, func(i, j int) bool {
			return out[i].angle < out[j].angle
		})
	}
	for _, out := range g.outgoing {
		for i, h := range out {
			// h leaves this vertex, so its twin arrives here. The twin's
			// successor is the edge before h in counterclockwise order.
			h.twin.next = out[CircularIndex(i-1, len(out))]
		}
	}
}

// Faces walks every inside face once. Faces come out counterclockwise.
func (g *halfEdgeGraph) Faces() PolygonList {
	g.link()
	var faces PolygonList
	for _, start := range g.edges {
		if !start.inside || start.visited {
			continue
		}
		var face Polygon
		h := start
		for {
			if !h.inside {
				fatalf(ErrDegenerateGeometry, "face starting at %v leaks outside the polygon at %v", start.origin, h.origin)
			}
			if h.visited {
				fatalf(ErrDegenerateGeometry, "face starting at %v revisits %v", start.origin, h.origin)
			}
			h.visited = true
			face.Points = append(face.Points, h.origin)
			h = h.next
			if h == start {
				break
			}
		}
		faces = append(faces, face)
	}
	return faces
}
