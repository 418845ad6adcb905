package internal

// Facilities for converting a Y-monotone polygon into triangles. A Y monotone
// polygon is a simple polygon such that any horizontal line intersects at most
// two edges.
//
// The lexicographic Point.Below() method is used to simulate a slightly rotated
// coordinate system that eliminates horizontal segments but note that this
// affects where horizontal segments are allowed while maintaining strict
// monotonicity. Specifically, on the left chain, a horizontal edge must sit
// _above_ the inside of the polygon, while on the right chain, it must sit
// _below_. The partitioner sweeps with the same order, so its regions always
// satisfy this.
//
// Note that the polygon must be counterclockwise.

func TriangulateMonotone(polygon *Polygon) (triangles []*Triangle, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			triangles = nil
			err = recoveredErr
		}
	}()
	return triangulateMonotone(polygon), nil
}

func triangulateMonotone(polygon *Polygon) []*Triangle {
	if len(polygon.Points) < 3 {
		fatalf(ErrTriangulationFailure, "cannot triangulate degenerate polygon with point count: %d", len(polygon.Points))
	}
	if len(polygon.Points) == 3 {
		return appendTriangle(nil, &Triangle{polygon.Points[0], polygon.Points[1], polygon.Points[2]})
	}

	triangles := make([]*Triangle, 0, len(polygon.Points)-2)

	// Sort points so top point is at the top of the array.
	sortedPoints := make([]*Point, 0, len(polygon.Points))

	// Find the top point
	var topPointIndex int
	for i, point := range polygon.Points {
		if point.Above(polygon.Points[topPointIndex]) {
			topPointIndex = i
		}
	}

	sortedPoints = append(sortedPoints, polygon.Points[topPointIndex])

	// Structure for determining which chain a point is on
	leftChain := make(PointSet)
	isLeft := leftChain.Has

	// Merge sort points starting from top, noting which are on the left chain,
	// and track the bottom point separately. Walking forward from the top of a
	// counterclockwise polygon follows the left chain.
	leftOffset := 1
	rightOffset := 1
	var bottomPoint *Point
	for {
		leftPoint := polygon.Points[CircularIndex(topPointIndex+leftOffset, len(polygon.Points))]
		rightPoint := polygon.Points[CircularIndex(topPointIndex-rightOffset, len(polygon.Points))]

		// If we've met up, we're done. We don't add the bottom point to the list,
		// as it's handled at the very end.
		if leftPoint == rightPoint {
			bottomPoint = leftPoint
			break
		}

		if leftPoint.Above(rightPoint) {
			leftChain.Add(leftPoint)
			sortedPoints = append(sortedPoints, leftPoint)
			leftOffset++
		} else {
			sortedPoints = append(sortedPoints, rightPoint)
			rightOffset++
		}
	}

	stack := make(PointStack, 0, len(sortedPoints))
	stack.Push(sortedPoints[0])
	stack.Push(sortedPoints[1])
	for i := 2; i < len(sortedPoints); i++ {
		p := sortedPoints[i]
		left := isLeft(p)
		if left != isLeft(stack.Peek()) { // If switched to opposite side chain
			// Monotonicity guarantees that all stack points are visible from the
			// current point, so the whole stack fans out from p.
			for !stack.Empty() {
				a := stack.Pop()
				if !stack.Empty() {
					b := stack.Peek()
					if left {
						/*
						              b
						             /|
						 diagonal-> / |
						           p--a
						*/
						triangles = appendTriangle(triangles, &Triangle{p, a, b})
					} else {
						/*
							b
							|\ <- Diagonal
							| \
							a--p
						*/
						triangles = appendTriangle(triangles, &Triangle{a, p, b})
					}
				}
			}
			// Put the last two points on the stack
			stack.Push(sortedPoints[i-1])
			stack.Push(p)
		} else { // Same side chain
			// Always pop the last point off. If we don't create any triangles this
			// time, we'll put it back
			v := stack.Pop()

			for !stack.Empty() {
				topOfStack := stack.Peek()
				// The easiest way to see if the point "sees" the top of the stack is to
				// try creating the triangle, and see if it's CCW
				var potentialTriangle *Triangle
				if left {
					/*
						q
						|\
						v \
						  \\ <- diagonal
						    \
						     p
					*/
					potentialTriangle = &Triangle{p, topOfStack, v}
				} else {
					/*
						               q
						              /|
						             / v
						            / /
						diagonal-> //
						          /
						         p
					*/
					potentialTriangle = &Triangle{p, v, topOfStack}
				}
				if !IsCCW(potentialTriangle) {
					// Stop looping if we can't see the next point
					break
				}
				v = stack.Pop()
				triangles = append(triangles, potentialTriangle)
			}

			// Put the last v back on the stack, and then the current point
			stack.Push(v)
			stack.Push(p)
		}
	}

	// Finally, add triangles for all remaining points on the stack, fanning out
	// from the bottom point. There are always at least two points left.
	l := stack.Pop()
	for !stack.Empty() {
		p := stack.Pop()
		if isLeft(l) {
			/*
					 p
				 / |
				l  | <- diagonal
				 \ |
				   b
			*/
			triangles = appendTriangle(triangles, &Triangle{bottomPoint, p, l})
		} else {
			/*
				            p
				            | \
				diagonal -> |  l
				            | /
				            b
			*/
			triangles = appendTriangle(triangles, &Triangle{bottomPoint, l, p})
		}
		l = p
	}

	if len(triangles) != len(polygon.Points)-2 {
		fatalf(ErrTriangulationFailure, "expected %d triangles for %d points, got %d", len(polygon.Points)-2, len(polygon.Points), len(triangles))
	}
	return triangles
}

// This is pulled out so that it's easy to add instrumentation.
func appendTriangle(triangles []*Triangle, tri *Triangle) []*Triangle {
	if !IsCCW(tri) {
		fatalf(ErrTriangulationFailure, "triangle is not counterclockwise: %v", tri)
	}
	return append(triangles, tri)
}
