package export

import (
	"fmt"
	"strings"

	"github.com/piwi3910/PlankLayout/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook.
const (
	SheetPlaced   = "Placed"
	SheetLeftOver = "Left Over"
	SheetSummary  = "Summary"
)

var (
	placedHeader   = []any{"#", "Plank", "X", "Y", "Width", "Height", "Source", "Color"}
	leftOverHeader = []any{"#", "Plank", "Width", "Height", "Area", "Usable", "Color"}
)

// ExportXLSX writes the cut list, the left-over pieces and a summary to an
// Excel workbook. The color column of each row is filled with the piece color.
func ExportXLSX(path string, result model.Result) error {
	if result.Empty() {
		return ErrEmptyResult
	}

	f := excelize.NewFile()
	defer f.Close()

	w := &workbook{f: f, fills: make(map[string]int)}
	if err := w.writePlaced(result); err != nil {
		return err
	}
	if err := w.writeLeftOver(result); err != nil {
		return err
	}
	if err := w.writeSummary(result); err != nil {
		return err
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

type workbook struct {
	f     *excelize.File
	bold  int
	fills map[string]int // hex color -> style ID
}

func (w *workbook) writePlaced(result model.Result) error {
	if err := w.f.SetSheetName("Sheet1", SheetPlaced); err != nil {
		return err
	}
	if err := w.header(SheetPlaced, placedHeader); err != nil {
		return err
	}

	sources := pieceSources(result)
	for i, p := range result.Placed {
		row := []any{i + 1, p.ID, p.Position.X, p.Position.Y, p.Dimensions.Width, p.Dimensions.Height, sources[i], hexColor(p)}
		if err := w.row(SheetPlaced, i+2, row, p); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbook) writeLeftOver(result model.Result) error {
	if _, err := w.f.NewSheet(SheetLeftOver); err != nil {
		return err
	}
	if err := w.header(SheetLeftOver, leftOverHeader); err != nil {
		return err
	}

	for i, p := range result.LeftOver {
		usable := model.OffcutGroup{Dimensions: p.Dimensions}.Usable()
		row := []any{i + 1, p.ID, p.Dimensions.Width, p.Dimensions.Height, p.Dimensions.Area(), yesNo(usable), hexColor(p)}
		if err := w.row(SheetLeftOver, i+2, row, p); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbook) writeSummary(result model.Result) error {
	if _, err := w.f.NewSheet(SheetSummary); err != nil {
		return err
	}

	cfg := result.Config
	rows := [][]any{
		{"Room", cfg.Room.String()},
		{"Plank", cfg.Plank.String()},
		{"Staggered", yesNo(cfg.Staggered)},
		{"Randomized lengths", yesNo(cfg.RandomizeLengths)},
		{"Planks needed", result.TotalPlanksUsed},
		{"Uncut planks", result.UncutPlankCount},
		{"Pieces placed", len(result.Placed)},
		{"Pieces cut from offcuts", result.ReusedPieces()},
		{"Left over pieces", result.LeftOverCount},
		{"Material efficiency (%)", fmt.Sprintf("%.1f", result.Efficiency())},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := w.f.SetSheetRow(SheetSummary, cell, &r); err != nil {
			return err
		}
	}
	if err := w.f.SetCellStyle(SheetSummary, "A1", fmt.Sprintf("A%d", len(rows)), w.bold); err != nil {
		return err
	}
	return w.f.SetColWidth(SheetSummary, "A", "A", 26)
}

func (w *workbook) header(sheet string, cells []any) error {
	if w.bold == 0 {
		style, err := w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return err
		}
		w.bold = style
	}
	if err := w.f.SetSheetRow(sheet, "A1", &cells); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(cells), 1)
	if err != nil {
		return err
	}
	if err := w.f.SetCellStyle(sheet, "A1", last, w.bold); err != nil {
		return err
	}
	return w.f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

// row writes cells at the given 1-based row and fills the last cell with the piece color.
func (w *workbook) row(sheet string, n int, cells []any, p model.Piece) error {
	start, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	if err := w.f.SetSheetRow(sheet, start, &cells); err != nil {
		return err
	}
	colorCell, err := excelize.CoordinatesToCellName(len(cells), n)
	if err != nil {
		return err
	}
	style, err := w.fill(hexColor(p))
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(sheet, colorCell, colorCell, style)
}

func (w *workbook) fill(hex string) (int, error) {
	if id, ok := w.fills[hex]; ok {
		return id, nil
	}
	id, err := w.f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{hex}, Pattern: 1},
	})
	if err != nil {
		return 0, err
	}
	w.fills[hex] = id
	return id, nil
}

func hexColor(p model.Piece) string {
	return strings.ToUpper(fmt.Sprintf("#%02x%02x%02x", p.Color.R, p.Color.G, p.Color.B))
}
