package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/cdt"
)

// Read newline separated points in the form "x y", with each polygon
// separated by an extra newline.
func readPolygons(in io.Reader) ([][]cdt.Point, error) {
	polygons := [][]cdt.Point{}
	scanner := bufio.NewScanner(in)
	points := []cdt.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = []cdt.Point{}
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(line string) (cdt.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return cdt.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return cdt.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return cdt.Point{}, errors.Wrap(err, "y")
	}
	return cdt.Point{X: x, Y: y}, nil
}

// Read every <polygon> element of an SVG document, in document order.
func readSVGPolygons(in io.Reader) ([][]cdt.Point, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	var polygons [][]cdt.Point
	for i, el := range root.FindAll("polygon") {
		var points []cdt.Point
		// Points may be separated by commas, whitespace or both
		fields := strings.FieldsFunc(el.Attributes["points"], func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
		if len(fields)%2 != 0 {
			return nil, errors.Errorf("polygon %d has an odd number of coordinates", i)
		}
		for j := 0; j < len(fields); j += 2 {
			point, err := parsePoint(fields[j] + " " + fields[j+1])
			if err != nil {
				return nil, errors.Wrapf(err, "polygon %d", i)
			}
			points = append(points, point)
		}
		polygons = append(polygons, points)
	}
	return polygons, nil
}
