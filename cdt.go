// Constrained Delaunay triangulation of polygons with holes.
//
// This package takes one outer boundary and any number of island polygons
// (holes) and converts them into a set of triangles containing only the
// original points. Boundary and island edges always appear in the result; all
// other edges satisfy the empty circumcircle property. It is built for water
// surfaces, whose shorelines are often non-convex, riddled with islands, and
// given in geospatial coordinates far from the origin.
package cdt

import (
	"io"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"

	"github.com/osuushi/cdt/internal"
)

type Point = r2.Point

var (
	ErrInvalidInput         = internal.ErrInvalidInput
	ErrDegenerateGeometry   = internal.ErrDegenerateGeometry
	ErrTriangulationFailure = internal.ErrTriangulationFailure
)

type Stats = internal.Stats

// Result of a triangulation.
type Result struct {
	// Bounding box of all input points in world coordinates.
	Min, Max Point
	// Origin maps the local frame to world coordinates.
	Origin mgl64.Mat4
	// Triangles is the flattened triangle list (v0, v1, v2), (v0, v1, v2), ...
	// in the local frame. Apply Origin (or use World) for world coordinates.
	Triangles []Point
	World     []Point
	// Vertices in the local frame, boundary points first and then each island
	// in order, and counterclockwise triangles indexing into them.
	Vertices []Point
	Indices  []int
	Stats    Stats

	mesh *internal.Mesh
}

func (r *Result) TriangleCount() int {
	return len(r.Indices) / 3
}

// SavePNG draws the mesh in the local frame. Constrained edges are white, the
// rest cyan.
func (r *Result) SavePNG(path string, size int, labels bool) error {
	return r.mesh.SavePNG(path, size, labels)
}

// PrintPNG writes the drawing inline to an iTerm compatible terminal.
func (r *Result) PrintPNG(w io.Writer, size int) error {
	return internal.PrintMesh(w, r.mesh, size)
}

type Option func(*internal.Options)

// Triangulate independent monotone regions on up to n goroutines.
func WithParallelism(n int) Option {
	return func(o *internal.Options) {
		o.Parallelism = n
	}
}

// Stop legalizing after n flips. The result is still a valid triangulation,
// but may not be Delaunay.
func WithMaxFlips(n int) Option {
	return func(o *internal.Options) {
		o.MaxFlips = n
	}
}

// Skip Delaunay legalization.
func WithoutLegalization() Option {
	return func(o *internal.Options) {
		o.Legalize = false
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *internal.Options) {
		o.Logger = logger
	}
}

// Process triangulates the region inside boundary and outside every island.
//
// The boundary and islands must be simple, must not intersect each other, and
// every island must lie inside the boundary. Windings don't matter; islands
// are always treated as holes. A ring may repeat its first point at the end.
// On failure no triangles are returned, and the error matches one of
// ErrInvalidInput, ErrDegenerateGeometry or ErrTriangulationFailure under
// errors.Is.
func Process(boundary []Point, islands [][]Point, options ...Option) (*Result, error) {
	opts := internal.DefaultOptions()
	for _, option := range options {
		option(&opts)
	}
	out, err := internal.Triangulate(boundary, islands, opts)
	if err != nil {
		return nil, err
	}
	return &Result{
		Min:       out.Frame.Min,
		Max:       out.Frame.Max,
		Origin:    out.Frame.Origin,
		Triangles: out.Local,
		World:     out.World,
		Vertices:  out.Vertices,
		Indices:   out.Indices,
		Stats:     out.Stats,
		mesh:      out.Mesh,
	}, nil
}
