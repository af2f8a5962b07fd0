package export

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/piwi3910/PlankLayout/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderImage(t *testing.T) {
	result := buildTestResult(t)
	img := RenderImage(result, 2)

	// 480x160 bounds at two pixels per unit
	assert.Equal(t, 960, img.Bounds().Dx())
	assert.Equal(t, 320, img.Bounds().Dy())

	first := result.Placed[0]
	assert.Equal(t, first.Color, img.NRGBAAt(130, 25))
	assert.Equal(t, pngOutline, img.NRGBAAt(0, 0))

	// Gutter between the first two left-over pieces
	assert.Equal(t, pngBackground, img.NRGBAAt(130, 290))
	assert.Equal(t, result.LeftOver[1].Color, img.NRGBAAt(310, 295))
}

func TestRenderImage_ScaleFloor(t *testing.T) {
	result := buildTestResult(t)
	img := RenderImage(result, 0)
	assert.Equal(t, 480, img.Bounds().Dx())
}

func TestExportPNG(t *testing.T) {
	result := buildTestResult(t)
	path := filepath.Join(t.TempDir(), "layout.png")

	require.NoError(t, ExportPNG(path, result, 1))

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 480, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())

	r, g, b, a := img.At(65, 12).RGBA()
	c := result.Placed[0].Color
	assert.Equal(t, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255},
		color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)})
}

func TestExportPNG_EmptyResult(t *testing.T) {
	err := ExportPNG(filepath.Join(t.TempDir(), "empty.png"), model.Result{}, 1)
	assert.ErrorIs(t, err, ErrEmptyResult)
}
