package internal

// Winding rule point-in-polygon. This is used as a best-effort nesting check
// for islands, and by tests to validate coverage by sampling.
func (poly Polygon) ContainsPointByEvenOdd(p *Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule
func (poly Polygon) CrossingCount(p *Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]

		segment := Segment{vertex, nextVertex}
		if segment.IsRightOf(p) && vertex.Below(p) != nextVertex.Below(p) {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Return the polygon wound counterclockwise (or clockwise when ccw is false).
func (poly Polygon) Oriented(ccw bool) Polygon {
	if IsCCW(&poly) != ccw {
		return poly.Reverse()
	}
	return poly
}

func (list PolygonList) ContainsPointByEvenOdd(p *Point) bool {
	crossingCount := 0
	for _, poly := range list {
		crossingCount += poly.CrossingCount(p)
	}
	return crossingCount%2 == 1
}

func (list TriangleList) ToPolygonList() PolygonList {
	result := make(PolygonList, 0, len(list))
	for _, tri := range list {
		result = append(result, Polygon{[]*Point{tri.A, tri.B, tri.C}})
	}
	return result
}
