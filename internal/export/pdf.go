package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/PlankLayout/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	rowHeight    = 6.0
)

// ExportPDF generates a PDF document for a layout: the floor plan drawn to
// scale with left-over pieces below the room, followed by the cut list and
// a summary.
func ExportPDF(path string, result model.Result) error {
	if result.Empty() {
		return ErrEmptyResult
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderLayoutPage(pdf, result)

	pdf.AddPage()
	renderCutList(pdf, result)

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// renderLayoutPage draws the room and every piece on the current PDF page.
func renderLayoutPage(pdf *fpdf.Fpdf, result model.Result) {
	room := result.Config.Room

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Plank Layout: room %d x %d, plank %d x %d",
		room.Width, room.Height, result.Config.Plank.Width, result.Config.Plank.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Planks needed: %d | Uncut planks: %d | Left over pieces: %d | Staggered: %s | Randomized: %s",
		result.TotalPlanksUsed, result.UncutPlankCount, result.LeftOverCount,
		yesNo(result.Config.Staggered), yesNo(result.Config.RandomizeLengths))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Fit room plus the left-over grid into the drawing area
	bounds := result.Bounds()
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight
	scale := math.Min(drawWidth/float64(bounds.Width), drawHeight/float64(bounds.Height))

	offsetX := marginLeft + (drawWidth-float64(bounds.Width)*scale)/2
	offsetY := drawAreaTop
	roomW := float64(room.Width) * scale
	roomH := float64(room.Height) * scale

	// Room background
	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, roomW, roomH, "FD")

	for _, p := range result.Placed {
		drawPiece(pdf, p, scale, offsetX, offsetY)
	}
	for _, p := range result.LeftOver {
		drawPiece(pdf, p, scale, offsetX, offsetY)
	}

	drawDimensionAnnotations(pdf, room, offsetX, offsetY, roomW, roomH)
}

// drawPiece fills a piece with its own color and labels it when it is large enough.
func drawPiece(pdf *fpdf.Fpdf, p model.Piece, scale, offsetX, offsetY float64) {
	pw := float64(p.Dimensions.Width) * scale
	ph := float64(p.Dimensions.Height) * scale
	px := offsetX + float64(p.Position.X)*scale
	py := offsetY + float64(p.Position.Y)*scale

	pdf.SetFillColor(int(p.Color.R), int(p.Color.G), int(p.Color.B))
	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.2)
	pdf.Rect(px, py, pw, ph, "FD")

	if pw < 8 || ph < 3 {
		return
	}
	pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
	pdf.SetTextColor(0, 0, 0)
	label := p.Label()
	labelW := pdf.GetStringWidth(label)
	if labelW < pw-1 {
		pdf.SetXY(px+(pw-labelW)/2, py+ph/2-1.5)
		pdf.CellFormat(labelW, 3, label, "", 0, "C", false, 0, "")
	}
}

// drawDimensionAnnotations adds width and height labels outside the room rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, room model.Dimensions, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%d", room.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY-4)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%d", room.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// renderCutList writes one table row per placed piece, continuing on new
// pages as needed.
func renderCutList(pdf *fpdf.Fpdf, result model.Result) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cut List", "", 0, "L", false, 0, "")

	colWidths := []float64{15, 25, 25, 25, 30, 30, 45}
	headers := []string{"#", "Plank", "X", "Y", "Width", "Height", "Source"}

	y := marginTop + 14
	y = tableHeader(pdf, y, colWidths, headers)

	sources := pieceSources(result)
	pdf.SetFont("Helvetica", "", 9)
	for i, p := range result.Placed {
		if y+rowHeight > pageHeight-marginBottom {
			pdf.AddPage()
			y = tableHeader(pdf, marginTop, colWidths, headers)
			pdf.SetFont("Helvetica", "", 9)
		}
		tableRow(pdf, y, colWidths, i, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", p.ID),
			fmt.Sprintf("%d", p.Position.X),
			fmt.Sprintf("%d", p.Position.Y),
			fmt.Sprintf("%d", p.Dimensions.Width),
			fmt.Sprintf("%d", p.Dimensions.Height),
			sources[i],
		})
		y += rowHeight
	}
}

func tableHeader(pdf *fpdf.Fpdf, y float64, colWidths []float64, headers []string) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], rowHeight, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	return y + rowHeight
}

func tableRow(pdf *fpdf.Fpdf, y float64, colWidths []float64, index int, cells []string) {
	// Alternate row background
	if index%2 == 0 {
		pdf.SetFillColor(245, 245, 245)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}
	xPos := marginLeft
	for j, cell := range cells {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[j], rowHeight, cell, "1", 0, "C", true, 0, "")
		xPos += colWidths[j]
	}
}

// renderSummaryPage draws the overall statistics and the left-over pieces.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.Result) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	summaryItems := []struct {
		label string
		value string
	}{
		{"Planks needed", fmt.Sprintf("%d", result.TotalPlanksUsed)},
		{"Uncut planks", fmt.Sprintf("%d", result.UncutPlankCount)},
		{"Pieces placed", fmt.Sprintf("%d", len(result.Placed))},
		{"Pieces cut from offcuts", fmt.Sprintf("%d", result.ReusedPieces())},
		{"Left over pieces", fmt.Sprintf("%d", result.LeftOverCount)},
		{"Material efficiency", fmt.Sprintf("%.1f%%", result.Efficiency())},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	groups := model.GroupOffcuts(result.LeftOver)
	if len(groups) == 0 {
		return
	}

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Left Over Pieces", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{40, 25, 40, 30}
	headers := []string{"Size", "Count", "Area", "Usable"}
	y = tableHeader(pdf, y, colWidths, headers)
	pdf.SetFont("Helvetica", "", 9)
	for i, g := range groups {
		if y+rowHeight > pageHeight-marginBottom {
			pdf.AddPage()
			y = tableHeader(pdf, marginTop, colWidths, headers)
			pdf.SetFont("Helvetica", "", 9)
		}
		tableRow(pdf, y, colWidths, i, []string{
			g.Dimensions.String(),
			fmt.Sprintf("%d", g.Count),
			fmt.Sprintf("%d", g.TotalArea()),
			yesNo(g.Usable()),
		})
		y += rowHeight
	}
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 12:
		return 7
	case minDim > 6:
		return 6
	default:
		return 4
	}
}
