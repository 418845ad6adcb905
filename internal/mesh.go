package internal

// The mesh is an arena of triangles addressed by index. Neighbour links are
// indices too, so flipping an edge only rewrites a handful of integers and
// there are no ownership cycles to worry about.

// NoNeighbor marks an edge on the outside of the filled region.
const NoNeighbor = -1

type MeshTriangle struct {
	// Point indices, counterclockwise.
	V [3]int
	// N[i] is the triangle across the edge V[i] -> V[(i+1)%3].
	N [3]int
	// Fixed[i] is set when the edge V[i] -> V[(i+1)%3] is constrained.
	Fixed [3]bool
}

// Find which edge of the triangle runs from a to b. Returns -1 if none does.
func (t *MeshTriangle) EdgeIndex(a, b int) int {
	for i := 0; i < 3; i++ {
		if t.V[i] == a && t.V[(i+1)%3] == b {
			return i
		}
	}
	return -1
}

func (t *MeshTriangle) replaceNeighbor(old, replacement int) {
	for i := 0; i < 3; i++ {
		if t.N[i] == old {
			t.N[i] = replacement
			return
		}
	}
	fatalf(ErrTriangulationFailure, "triangle %v has no neighbor %d", t.V, old)
}

// An undirected edge between two point indices, smaller index first.
type EdgeKey [2]int

func MakeEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{a, b}
}

type EdgeSet map[EdgeKey]struct{}

func (s EdgeSet) Add(a, b int) {
	s[MakeEdgeKey(a, b)] = struct{}{}
}

func (s EdgeSet) Has(a, b int) bool {
	_, ok := s[MakeEdgeKey(a, b)]
	return ok
}

// ConstrainedEdges returns every boundary and island edge.
func (input *Input) ConstrainedEdges() EdgeSet {
	edges := make(EdgeSet, len(input.Points))
	for _, poly := range append(PolygonList{input.Boundary}, input.Islands...) {
		for i, p := range poly.Points {
			edges.Add(p.Index, poly.Points[CircularIndex(i+1, len(poly.Points))].Index)
		}
	}
	return edges
}

type Mesh struct {
	Points    []*Point
	Triangles []MeshTriangle
}

// NewMesh links the triangles of all regions into one arena. The points slice
// must be indexed by Point.Index.
func NewMesh(points []*Point, triangles []*Triangle, constrained EdgeSet) (mesh *Mesh, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			mesh = nil
			err = recoveredErr
		}
	}()

	type halfRef struct{ tri, edge int }
	mesh = &Mesh{Points: points, Triangles: make([]MeshTriangle, len(triangles))}
	directed := make(map[[2]int]halfRef, 3*len(triangles))
	for t, tri := range triangles {
		mt := &mesh.Triangles[t]
		for i, p := range tri.Points() {
			if p.Index < 0 || p.Index >= len(points) || points[p.Index] != p {
				fatalf(ErrTriangulationFailure, "triangle %d uses unknown point %v", t, p)
			}
			mt.V[i] = p.Index
			mt.N[i] = NoNeighbor
		}
		for i := 0; i < 3; i++ {
			a, b := mt.V[i], mt.V[(i+1)%3]
			key := [2]int{a, b}
			if _, ok := directed[key]; ok {
				fatalf(ErrTriangulationFailure, "edge %d-%d is shared by overlapping triangles", a, b)
			}
			directed[key] = halfRef{t, i}
			mt.Fixed[i] = constrained.Has(a, b)
		}
	}
	for key, ref := range directed {
		if twin, ok := directed[[2]int{key[1], key[0]}]; ok {
			mesh.Triangles[ref.tri].N[ref.edge] = twin.tri
		}
	}
	return mesh, nil
}

func (m *Mesh) Triangle(i int) *Triangle {
	t := &m.Triangles[i]
	return &Triangle{m.Points[t.V[0]], m.Points[t.V[1]], m.Points[t.V[2]]}
}

func (m *Mesh) TriangleList() TriangleList {
	list := make(TriangleList, len(m.Triangles))
	for i := range m.Triangles {
		list[i] = m.Triangle(i)
	}
	return list
}
