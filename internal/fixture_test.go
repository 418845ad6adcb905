package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a CCW *Polygon. If anything goes
// wrong, it exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	points := make([]*Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, &Point{X: x, Y: y, Index: len(points)})
	}
	result := Polygon{Points: points}.Oriented(true)
	return &result
}

// Build an input from a boundary and islands without normalizing, numbering
// the points in order.
func makeInput(list PolygonList) *Input {
	input := &Input{}
	for i, poly := range list {
		for _, p := range poly.Points {
			p.Index = len(input.Points)
			input.Points = append(input.Points, p)
		}
		if i == 0 {
			input.Boundary = poly
		} else {
			input.Islands = append(input.Islands, poly)
		}
	}
	return input
}

func polygonFromXY(coords ...float64) Polygon {
	var poly Polygon
	for i := 0; i+1 < len(coords); i += 2 {
		poly.Points = append(poly.Points, &Point{X: coords[i], Y: coords[i+1]})
	}
	return poly
}

// Some ad hoc code specified fixtures
func SimpleStar() PolygonList {
	var points []*Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return PolygonList{Polygon{points}}
}

func UnitSquare() PolygonList {
	return PolygonList{polygonFromXY(0, 0, 1, 0, 1, 1, 0, 1)}
}

// Unit square with a concentric square island wound the opposite way
func SquareWithHole() PolygonList {
	return PolygonList{
		polygonFromXY(0, 0, 1, 0, 1, 1, 0, 1),
		polygonFromXY(0.25, 0.25, 0.25, 0.75, 0.75, 0.75, 0.75, 0.25),
	}
}

func LShape() PolygonList {
	return PolygonList{polygonFromXY(0, 0, 2, 0, 2, 1, 1, 1, 1, 2, 0, 2)}
}

func StarOutline() PolygonList {
	filledPoints := []*Point{}
	holePoints := []*Point{}
	const filledOuterRadius = 10
	const filledInnerRadius = 5
	const holeOuterRadius = filledOuterRadius - 2
	const holeInnerRadius = filledInnerRadius - 2
	for i := 0; i < 10; i++ {
		var (
			filledRadius float64
			holeRadius   float64
		)
		if i%2 == 0 {
			filledRadius = filledOuterRadius
			holeRadius = holeOuterRadius
		} else {
			filledRadius = filledInnerRadius
			holeRadius = holeInnerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		filledPoints = append(filledPoints, &Point{X: filledRadius * math.Cos(angle), Y: filledRadius * math.Sin(angle)})
		holePoints = append(holePoints, &Point{X: holeRadius * math.Cos(angle), Y: holeRadius * math.Sin(angle)})
	}

	return PolygonList{
		Polygon{filledPoints},
		Polygon{holePoints}.Reverse(),
	}
}

// A star shaped lake with several star shaped islands, some of them sharing
// y values with each other and with the shore.
func LakeWithIslands() PolygonList {
	makeStar := func(x, y, outerRadius, innerRadius float64) Polygon {
		points := []*Point{}
		for i := 0; i < 10; i++ {
			angle := 2 * math.Pi * float64(i) / 10
			r := outerRadius
			if i%2 == 1 {
				r = innerRadius
			}
			points = append(points, &Point{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
		}
		return Polygon{points}
	}
	return PolygonList{
		makeStar(0, 0, 20, 14),
		makeStar(1.5, 5, 3, 2).Reverse(),
		makeStar(1.8, -5, 3, 2).Reverse(),
		makeStar(-6, 0, 4, 2).Reverse(),
		// Same axis as the island above, so their points share y values.
		polygonFromXY(6, -1, 8, -1, 8, 1, 6, 1),
	}
}

// Axis aligned grid of square islands. Many points share x and y values,
// which exercises every tie in the sweep order.
func GridOfIslands() PolygonList {
	list := PolygonList{polygonFromXY(0, 0, 10, 0, 10, 10, 0, 10)}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x, y := 1+3*float64(i), 1+3*float64(j)
			list = append(list, polygonFromXY(x, y, x, y+2, x+2, y+2, x+2, y))
		}
	}
	return list
}

func fixtureList(name string) PolygonList {
	return PolygonList{*LoadFixture(name)}
}
