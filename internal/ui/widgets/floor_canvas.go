package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PlankLayout/internal/model"
)

const (
	canvasPadding = 10 // Pixels around the drawing
	labelSize     = 10
)

var (
	roomColor     = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	roomBorder    = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	pieceBorder   = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	leftOverLabel = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
)

// FloorCanvas renders a plank layout at a zoom factor of pixels per layout
// unit: the room, every placed piece and the left-over pieces below it.
type FloorCanvas struct {
	widget.BaseWidget
	result model.Result
	zoom   float32

	// OnZoom is called with +1 or -1 for each mouse wheel notch.
	OnZoom func(steps float32)
}

// NewFloorCanvas creates a canvas showing result at zoom 1.
func NewFloorCanvas(result model.Result) *FloorCanvas {
	fc := &FloorCanvas{result: result, zoom: 1}
	fc.ExtendBaseWidget(fc)
	return fc
}

// SetResult replaces the layout shown.
func (fc *FloorCanvas) SetResult(result model.Result) {
	fc.result = result
	fc.Refresh()
}

// Result returns the layout shown.
func (fc *FloorCanvas) Result() model.Result {
	return fc.result
}

// SetZoom sets the pixels per layout unit. Non-positive values are ignored.
func (fc *FloorCanvas) SetZoom(zoom float32) {
	if zoom <= 0 {
		return
	}
	fc.zoom = zoom
	fc.Refresh()
}

// Zoom returns the current zoom factor.
func (fc *FloorCanvas) Zoom() float32 {
	return fc.zoom
}

// Scrolled implements fyne.Scrollable so the mouse wheel zooms.
func (fc *FloorCanvas) Scrolled(ev *fyne.ScrollEvent) {
	if fc.OnZoom == nil || ev.Scrolled.DY == 0 {
		return
	}
	if ev.Scrolled.DY > 0 {
		fc.OnZoom(1)
	} else {
		fc.OnZoom(-1)
	}
}

func (fc *FloorCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &floorCanvasRenderer{fc: fc}
	r.rebuild()
	return r
}

// PieceRect returns the on-canvas position and size of a piece.
func PieceRect(p model.Piece, zoom float32) (fyne.Position, fyne.Size) {
	return fyne.NewPos(canvasPadding+float32(p.Position.X)*zoom, canvasPadding+float32(p.Position.Y)*zoom),
		fyne.NewSize(float32(p.Dimensions.Width)*zoom, float32(p.Dimensions.Height)*zoom)
}

// ContentSize returns the size needed to draw result, padding included.
func ContentSize(result model.Result, zoom float32) fyne.Size {
	b := result.Bounds()
	return fyne.NewSize(float32(b.Width)*zoom+2*canvasPadding, float32(b.Height)*zoom+2*canvasPadding)
}

type floorCanvasRenderer struct {
	fc      *FloorCanvas
	objects []fyne.CanvasObject
}

func (r *floorCanvasRenderer) rebuild() {
	r.objects = nil
	result := r.fc.result
	zoom := r.fc.zoom
	if result.Empty() {
		return
	}

	room := model.Piece{Dimensions: result.Config.Room}
	pos, size := PieceRect(room, zoom)
	bg := canvas.NewRectangle(roomColor)
	bg.StrokeColor = roomBorder
	bg.StrokeWidth = 2
	bg.Resize(size)
	bg.Move(pos)
	r.objects = append(r.objects, bg)

	for _, p := range result.Placed {
		r.drawPiece(p, zoom, color.Black)
	}
	for _, p := range result.LeftOver {
		r.drawPiece(p, zoom, leftOverLabel)
	}
}

func (r *floorCanvasRenderer) drawPiece(p model.Piece, zoom float32, textColor color.Color) {
	pos, size := PieceRect(p, zoom)

	rect := canvas.NewRectangle(p.Color)
	rect.StrokeColor = pieceBorder
	rect.StrokeWidth = 1
	rect.Resize(size)
	rect.Move(pos)
	r.objects = append(r.objects, rect)

	label := p.Label()
	textSize := fyne.MeasureText(label, labelSize, fyne.TextStyle{})
	if textSize.Width+4 > size.Width || textSize.Height+2 > size.Height {
		return
	}
	text := canvas.NewText(label, textColor)
	text.TextSize = labelSize
	text.Move(fyne.NewPos(pos.X+(size.Width-textSize.Width)/2, pos.Y+(size.Height-textSize.Height)/2))
	r.objects = append(r.objects, text)
}

func (r *floorCanvasRenderer) Layout(size fyne.Size)        {}
func (r *floorCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *floorCanvasRenderer) Destroy()                     {}
func (r *floorCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *floorCanvasRenderer) MinSize() fyne.Size {
	if r.fc.result.Empty() {
		return fyne.NewSize(2*canvasPadding, 2*canvasPadding)
	}
	return ContentSize(r.fc.result, r.fc.zoom)
}
