package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PlankLayout/internal/engine"
)

var compareHeaders = []string{"Scenario", "Planks", "Uncut", "Reused", "Left Over", "Waste"}

// compareRows formats scenario results for the compare dialog. The best
// row is marked and failed scenarios show their error.
func compareRows(results []engine.ComparisonResult, best int) [][]string {
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		name := r.Scenario.Name
		if i == best {
			name += " (best)"
		}
		if r.Err != nil {
			rows = append(rows, []string{name, "error: " + r.Err.Error(), "", "", "", ""})
			continue
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", r.PlanksUsed),
			fmt.Sprintf("%d", r.UncutPlanks),
			fmt.Sprintf("%d", r.ReusedPieces),
			fmt.Sprintf("%d", r.LeftOverCount),
			fmt.Sprintf("%.1f%%", r.WastePercent),
		})
	}
	return rows
}

// showCompareDialog lays out the what-if scenarios around the current
// configuration and lets the user apply one.
func (a *App) showCompareDialog() {
	base := a.formConfig()
	results := engine.CompareScenarios(engine.BuildDefaultScenarios(base), engine.WithLogger(a.logger))
	best := engine.Best(results)

	grid := container.NewGridWithColumns(len(compareHeaders) + 1)
	for _, h := range compareHeaders {
		grid.Add(widget.NewLabelWithStyle(h, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	}
	grid.Add(widget.NewLabel(""))

	var d dialog.Dialog
	for i, row := range compareRows(results, best) {
		r := results[i]
		for _, cell := range row {
			grid.Add(widget.NewLabel(cell))
		}
		apply := widget.NewButton("Apply", func() {
			a.setForm(r.Scenario.Config)
			a.apply(r.Scenario.Config, r.Scenario.Name)
			d.Hide()
		})
		if r.Err != nil {
			apply.Disable()
		}
		grid.Add(apply)
	}

	d = dialog.NewCustom("Compare Scenarios", "Close", container.NewVScroll(grid), a.window)
	d.Resize(fyne.NewSize(800, 320))
	d.Show()
}
