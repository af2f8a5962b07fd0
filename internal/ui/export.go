package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/piwi3910/PlankLayout/internal/export"
	"github.com/piwi3910/PlankLayout/internal/model"
)

const pngExportScale = 2

// exportFormat is one File > Export entry.
type exportFormat struct {
	name     string
	fileName string
	write    func(path string, result model.Result) error
}

var exportFormats = []exportFormat{
	{name: "PDF", fileName: "layout.pdf", write: export.ExportPDF},
	{name: "Labels", fileName: "labels.pdf", write: export.ExportLabels},
	{name: "Spreadsheet", fileName: "layout.xlsx", write: export.ExportXLSX},
	{name: "DXF", fileName: "layout.dxf", write: export.ExportDXF},
	{name: "PNG", fileName: "layout.png", write: func(path string, result model.Result) error {
		return export.ExportPNG(path, result, pngExportScale)
	}},
}

func (a *App) exportResult(f exportFormat) {
	if a.result.Empty() {
		dialog.ShowInformation("No layout", "Calculate a layout first before exporting.", a.window)
		return
	}
	result := a.result

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := f.write(path, result); err != nil {
			a.logger.Warn("Export failed.", "format", f.name, "path", path, "error", err)
			dialog.ShowError(fmt.Errorf("%s export failed: %w", f.name, err), a.window)
			return
		}
		a.logger.Info("Export written.", "format", f.name, "path", path)
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("%s saved to %s", f.name, path), a.window)
	}, a.window)
	d.SetFileName(f.fileName)
	d.Show()
}
