package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/piwi3910/PlankLayout/internal/model"
)

var (
	pngBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	pngRoom       = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	pngOutline    = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
)

// RenderImage draws the room and every piece at scale pixels per layout
// unit. Pieces are outlined when they are at least three pixels on each side.
func RenderImage(result model.Result, scale int) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	bounds := result.Bounds()
	img := imaging.New(bounds.Width*scale, bounds.Height*scale, pngBackground)

	room := image.Rect(0, 0, result.Config.Room.Width*scale, result.Config.Room.Height*scale)
	draw.Draw(img, room, &image.Uniform{pngRoom}, image.Point{}, draw.Src)

	for _, p := range result.Placed {
		fillPiece(img, p, scale)
	}
	for _, p := range result.LeftOver {
		fillPiece(img, p, scale)
	}
	return img
}

func fillPiece(img draw.Image, p model.Piece, scale int) {
	r := image.Rect(p.Position.X*scale, p.Position.Y*scale, p.Right()*scale, p.Bottom()*scale)
	if r.Dx() < 3 || r.Dy() < 3 {
		draw.Draw(img, r, &image.Uniform{p.Color}, image.Point{}, draw.Src)
		return
	}
	draw.Draw(img, r, &image.Uniform{pngOutline}, image.Point{}, draw.Src)
	draw.Draw(img, r.Inset(1), &image.Uniform{p.Color}, image.Point{}, draw.Src)
}

// ExportPNG renders the layout and saves it; the format follows the file
// extension, so ".jpg" works as well.
func ExportPNG(path string, result model.Result, scale int) error {
	if result.Empty() {
		return ErrEmptyResult
	}
	if err := imaging.Save(RenderImage(result, scale), path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
