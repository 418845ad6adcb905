package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	assert.Equal(t, 0, CircularIndex(0, 5))
	assert.Equal(t, 4, CircularIndex(-1, 5))
	assert.Equal(t, 1, CircularIndex(6, 5))
	assert.Equal(t, 3, CircularIndex(-12, 5))
}

func TestPointStack(t *testing.T) {
	var stack PointStack
	assert.True(t, stack.Empty())
	assert.Nil(t, stack.Pop())
	assert.Nil(t, stack.Peek())

	a, b := &Point{X: 1}, &Point{X: 2}
	stack.Push(a)
	stack.Push(b)
	assert.Equal(t, b, stack.Peek())
	assert.Equal(t, b, stack.Pop())
	assert.Equal(t, a, stack.Pop())
	assert.True(t, stack.Empty())
}

func TestBelow(t *testing.T) {
	a := &Point{X: 0, Y: 0}
	assert.True(t, a.Below(&Point{X: -5, Y: 1}))
	// Same y, so x breaks the tie
	assert.True(t, a.Below(&Point{X: 1, Y: 0}))
	assert.True(t, (&Point{X: 1, Y: 0}).Above(a))
	// Coincident points fall back to the index
	assert.True(t, a.Below(&Point{X: 0, Y: 0, Index: 1}))
	assert.False(t, a.Below(a))
}

func TestSignedArea(t *testing.T) {
	square := UnitSquare()[0]
	assert.InDelta(t, 1, square.SignedArea(), Tolerance)
	reversed := square.Reverse()
	assert.InDelta(t, -1, reversed.SignedArea(), Tolerance)
	assert.True(t, IsCW(&reversed))
	assert.Equal(t, square.Points, reversed.Oriented(true).Reverse().Reverse().Points)

	// Rotating the starting point doesn't change anything
	for i := range square.Points {
		rotated := Polygon{append(append([]*Point{}, square.Points[i:]...), square.Points[:i]...)}
		assert.InDelta(t, 1, rotated.SignedArea(), Tolerance)
	}

	tri := &Triangle{square.Points[0], square.Points[1], square.Points[2]}
	assert.InDelta(t, 0.5, tri.SignedArea(), Tolerance)
	assert.True(t, IsCCW(tri))
}

func TestContainsPointByEvenOdd(t *testing.T) {
	list := SquareWithHole()
	assert.True(t, list.ContainsPointByEvenOdd(&Point{X: 0.1, Y: 0.1}))
	assert.False(t, list.ContainsPointByEvenOdd(&Point{X: 0.5, Y: 0.5}))
	assert.False(t, list.ContainsPointByEvenOdd(&Point{X: 1.5, Y: 0.5}))
	assert.True(t, list[0].ContainsPointByEvenOdd(&Point{X: 0.5, Y: 0.5}))
}
