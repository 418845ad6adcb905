package internal

import "github.com/golang/geo/r2"

// Output is the assembled mesh. Triangle order follows the sweep and is not
// stable between calls; only the covering is.
type Output struct {
	Frame *Frame
	// Mesh keeps the neighbor links for callers that walk or draw the result.
	Mesh *Mesh
	// Vertices holds every point in the local frame, indexed by Point.Index.
	Vertices []r2.Point
	// Indices is a flat list of counterclockwise triangles into Vertices.
	Indices []int
	// Local is the triangle list flattened as (v0, v1, v2), (v0, v1, v2), ...
	// in the local frame. World is the same list mapped through Frame.Origin.
	Local []r2.Point
	World []r2.Point
	Stats Stats
}

type Stats struct {
	Regions    int
	Triangles  int
	Flips      int
	FlipCapHit bool
}

func (o *Output) TriangleCount() int {
	return len(o.Indices) / 3
}

// Assemble flattens the mesh into an indexed vertex buffer and triangle lists
// in both frames. Every point is stored once no matter how many triangles
// share it.
func Assemble(m *Mesh, frame *Frame) *Output {
	out := &Output{
		Frame:    frame,
		Mesh:     m,
		Vertices: make([]r2.Point, len(m.Points)),
		Indices:  make([]int, 0, 3*len(m.Triangles)),
		Local:    make([]r2.Point, 0, 3*len(m.Triangles)),
		World:    make([]r2.Point, 0, 3*len(m.Triangles)),
	}
	world := make(map[int]r2.Point, len(m.Points))
	for i, p := range m.Points {
		out.Vertices[i] = p.R2()
	}
	for _, tri := range m.Triangles {
		for _, v := range tri.V {
			out.Indices = append(out.Indices, v)
			out.Local = append(out.Local, out.Vertices[v])
			w, ok := world[v]
			if !ok {
				w = frame.ToWorld(out.Vertices[v])
				world[v] = w
			}
			out.World = append(out.World, w)
		}
	}
	out.Stats.Triangles = len(m.Triangles)
	return out
}
