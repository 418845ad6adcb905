package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation of a boundary with islands is valid.
// The rules are:
// 1. The set of points in the triangles must equal the set of points in the loops.
// 2. Every loop edge is an edge of exactly one triangle.
// 3. Every triangle is counterclockwise, so none has zero area.
// 4. The sum of the areas of all triangles is the boundary area minus the island areas.
func AssertValidTriangulation(t *testing.T, loops PolygonList, triangles []*Triangle) {
	t.Helper()
	polyPoints := make(PointSet)
	for _, poly := range loops {
		for _, p := range poly.Points {
			polyPoints.Add(p)
		}
	}
	trianglePoints := make(PointSet)
	for _, tri := range triangles {
		trianglePoints.Add(tri.A)
		trianglePoints.Add(tri.B)
		trianglePoints.Add(tri.C)
	}
	require.True(t, polyPoints.Equals(trianglePoints), "set of points in the triangles must equal the set of points in the polygon")

	var triangleArea float64
	segmentCounts := make(map[normalizedSegment]int)
	for _, tri := range triangles {
		require.True(t, IsCCW(tri), "clockwise or degenerate triangle: %v %v %v", *tri.A, *tri.B, *tri.C)
		triangleArea += Area(tri)
		segmentCounts[newNormalizedSegment(tri.A, tri.B)]++
		segmentCounts[newNormalizedSegment(tri.B, tri.C)]++
		segmentCounts[newNormalizedSegment(tri.C, tri.A)]++
	}

	expectedArea := 0.0
	for i, poly := range loops {
		if i == 0 {
			expectedArea += Area(&poly)
		} else {
			expectedArea -= Area(&poly)
		}
		for j, p1 := range poly.Points {
			p2 := poly.Points[CircularIndex(j+1, len(poly.Points))]
			assert.Equal(t, 1, segmentCounts[newNormalizedSegment(p1, p2)], "loop segment %v-%v must be in exactly one triangle", *p1, *p2)
		}
	}

	// Interior edges are shared by exactly two triangles
	for segment, count := range segmentCounts {
		assert.LessOrEqual(t, count, 2, "segment %v-%v is shared by %d triangles", *segment.lower, *segment.upper, count)
	}

	assert.InDelta(t, expectedArea, triangleArea, Epsilon*math.Max(1, expectedArea), "sum of the areas of all triangles must equal the area of the polygon")
}

// Every non-constrained interior edge must be locally Delaunay.
func AssertDelaunay(t *testing.T, m *Mesh) {
	t.Helper()
	for ti, tri := range m.Triangles {
		for i := 0; i < 3; i++ {
			u := tri.N[i]
			if u == NoNeighbor {
				continue
			}
			// Neighbor links are symmetric
			j := m.Triangles[u].EdgeIndex(tri.V[(i+1)%3], tri.V[i])
			require.GreaterOrEqual(t, j, 0, "triangle %d and %d disagree about their shared edge", ti, u)
			assert.Equal(t, ti, m.Triangles[u].N[j])
			assert.Equal(t, tri.Fixed[i], m.Triangles[u].Fixed[j])
			if tri.Fixed[i] {
				continue
			}
			d := m.Points[m.Triangles[u].V[(j+2)%3]]
			a, b, c := m.Points[tri.V[i]], m.Points[tri.V[(i+1)%3]], m.Points[tri.V[(i+2)%3]]
			assert.LessOrEqual(t, InCircle(a, b, c, d), 1e-9*inCirclePermanent(a, b, c, d),
				"point %d is inside the circumcircle of triangle %v", d.Index, tri.V)
		}
	}
}

// Used in the helper above, this is a "normalized" line segment, where the
// "lower" point (accounting for lexicographic adjustment) is always first
type normalizedSegment struct {
	lower, upper *Point
}

func newNormalizedSegment(a, b *Point) normalizedSegment {
	if a.Below(b) {
		return normalizedSegment{a, b}
	}
	return normalizedSegment{b, a}
}

func validatePolygonsBySampling(t *testing.T, actualPolygons PolygonList, expectedPolygons PolygonList) {
	t.Helper()
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, list := range []PolygonList{actualPolygons, expectedPolygons} {
		for _, poly := range list {
			for _, p := range poly.Points {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// Offset the grid by an irrational-ish fraction so samples don't land
	// exactly on axis aligned edges.
	step := math.Max(maxX-minX, maxY-minY) / 50
	offset := step * 0.1234567

	for y := minY + offset; y <= maxY; y += step {
		for x := minX + offset; x <= maxX; x += step {
			p := &Point{X: x, Y: y}

			actual := actualPolygons.ContainsPointByEvenOdd(p)
			if expectedPolygons.ContainsPointByEvenOdd(p) {
				assert.True(t, actual, "point %v should be in the monotone set", p)
			} else {
				assert.False(t, actual, "point %v should not be in the monotone set", p)
			}
		}
	}
}

// Geometric key for a triangle, independent of vertex rotation and of point
// identity.
type triangleKey [3][2]float64

func makeTriangleKey(tri *Triangle) triangleKey {
	pts := []*Point{tri.A, tri.B, tri.C}
	lowest := 0
	for i, p := range pts {
		if p.Below(pts[lowest]) {
			lowest = i
		}
	}
	var key triangleKey
	for i := 0; i < 3; i++ {
		p := pts[(lowest+i)%3]
		key[i] = [2]float64{p.X, p.Y}
	}
	return key
}

func triangleKeySet(list TriangleList) map[triangleKey]int {
	set := make(map[triangleKey]int, len(list))
	for _, tri := range list {
		set[makeTriangleKey(tri)]++
	}
	return set
}
