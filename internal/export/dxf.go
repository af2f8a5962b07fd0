package export

import (
	"fmt"

	"github.com/piwi3910/PlankLayout/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names.
const (
	LayerRoom     = "ROOM"
	LayerPieces   = "PIECES"
	LayerLeftOver = "LEFTOVER"
)

const dxfTextHeight = 4.0

// ExportDXF writes the layout as a DXF drawing in layout units. The room
// outline, placed pieces and left-over pieces go to separate layers. DXF
// has Y pointing up, so rows are mirrored to keep the first row on top.
func ExportDXF(path string, result model.Result) error {
	if result.Empty() {
		return ErrEmptyResult
	}

	d := dxf.NewDrawing()
	top := float64(result.Bounds().Height)

	room := model.Piece{Dimensions: result.Config.Room}
	if err := drawLayer(d, LayerRoom, top, []model.Piece{room}, false); err != nil {
		return err
	}
	if err := drawLayer(d, LayerPieces, top, result.Placed, true); err != nil {
		return err
	}
	if err := drawLayer(d, LayerLeftOver, top, result.LeftOver, true); err != nil {
		return err
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

func drawLayer(d *drawing.Drawing, layer string, top float64, pieces []model.Piece, labels bool) error {
	if _, err := d.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layer, err)
	}
	for _, p := range pieces {
		if err := drawRect(d, p, top); err != nil {
			return err
		}
		if !labels || float64(p.Dimensions.Height) < dxfTextHeight*1.5 {
			continue
		}
		x := float64(p.Position.X) + 1
		y := top - float64(p.Position.Y) - float64(p.Dimensions.Height)/2 - dxfTextHeight/2
		if _, err := d.Text(fmt.Sprintf("%d", p.ID), x, y, 0, dxfTextHeight); err != nil {
			return err
		}
	}
	return nil
}

// drawRect draws the outline of a piece as four lines.
func drawRect(d *drawing.Drawing, p model.Piece, top float64) error {
	x0 := float64(p.Position.X)
	x1 := float64(p.Right())
	y0 := top - float64(p.Position.Y)
	y1 := top - float64(p.Bottom())

	edges := [4][4]float64{
		{x0, y0, x1, y0},
		{x1, y0, x1, y1},
		{x1, y1, x0, y1},
		{x0, y1, x0, y0},
	}
	for _, e := range edges {
		if _, err := d.Line(e[0], e[1], 0, e[2], e[3], 0); err != nil {
			return err
		}
	}
	return nil
}
