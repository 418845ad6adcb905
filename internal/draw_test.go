package internal

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavePNG(t *testing.T) {
	list := SquareWithHole()
	out := triangulateList(t, list, DefaultOptions())
	path := filepath.Join(t.TempDir(), "mesh.png")
	require.NoError(t, out.Mesh.SavePNG(path, 200, true))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	// Square input, so both sides are the size plus padding
	assert.Equal(t, 200+2*drawPadding, img.Bounds().Dx())
	assert.Equal(t, 200+2*drawPadding, img.Bounds().Dy())
}

func TestDrawMesh_Center(t *testing.T) {
	list := UnitSquare()
	out := triangulateList(t, list, DefaultOptions())
	c := DrawMesh(out.Mesh, 100, false)
	img := c.Image()
	// The middle of the square is filled, the padding is not
	r, g, b, _ := img.At(img.Bounds().Dx()/2+10, img.Bounds().Dy()/2+5).RGBA()
	assert.Zero(t, r)
	assert.NotZero(t, g)
	assert.Zero(t, b)
	r, g, b, _ = img.At(2, 2).RGBA()
	assert.Zero(t, r+g+b)
}
