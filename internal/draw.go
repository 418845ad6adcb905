package internal

import (
	"io"
	"math"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the mesh so boundary strokes aren't clipped
const drawPadding = 20

// DrawMesh renders the mesh so that its larger side spans size pixels. Filled
// triangles are green, free edges cyan, constrained edges white. Point
// indices are drawn when labels is set.
func DrawMesh(m *Mesh, size int, labels bool) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range m.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	extent := math.Max(maxX-minX, maxY-minY)
	scale := 1.0
	if extent > 0 {
		scale = float64(size) / extent
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then pad, scale,
	// and translate to min
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for i := range m.Triangles {
		tri := m.Triangle(i)
		c.MoveTo(tri.A.X, tri.A.Y)
		c.LineTo(tri.B.X, tri.B.Y)
		c.LineTo(tri.C.X, tri.C.Y)
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.Fill()

	// Line widths are in user space, so undo the scale
	c.SetLineWidth(1 / scale)
	for _, fixed := range []bool{false, true} {
		for _, tri := range m.Triangles {
			for i := 0; i < 3; i++ {
				if tri.Fixed[i] != fixed {
					continue
				}
				a, b := m.Points[tri.V[i]], m.Points[tri.V[(i+1)%3]]
				c.DrawLine(a.X, a.Y, b.X, b.Y)
			}
		}
		if fixed {
			c.SetLineWidth(2 / scale)
			c.SetRGB(1, 1, 1)
		} else {
			c.SetRGB(0, 1, 1)
		}
		c.Stroke()
	}

	if labels {
		c.SetRGB(1, 1, 0)
		for _, p := range m.Points {
			// We have to go back to identity to draw the text, so get the point in
			// native coordinates
			x, y := c.TransformPoint(p.X, p.Y)
			c.Push()
			c.Identity()
			c.DrawStringAnchored(strconv.Itoa(p.Index), x, y, 0.5, -0.5)
			c.Pop()
		}
	}
	return c
}

func (m *Mesh) SavePNG(path string, size int, labels bool) error {
	return DrawMesh(m, size, labels).SavePNG(path)
}

// PrintMesh renders the mesh and writes it inline to an iTerm compatible
// terminal.
func PrintMesh(w io.Writer, m *Mesh, size int) error {
	f, err := os.CreateTemp("", "cdt-*.png")
	if err != nil {
		return err
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := m.SavePNG(path, size, false); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}
