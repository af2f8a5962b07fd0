package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PlankLayout/internal/model"
)

const defaultSkirtingBoard = 2400

// estimateSummary formats a purchase estimate and the matching skirting
// requirements for display.
func estimateSummary(est model.PurchaseEstimate, sk model.SkirtingSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Planks needed: %d (%.1f by area)\n", est.PlanksNeeded, est.PlanksExact)
	fmt.Fprintf(&b, "Planks with %.0f%% waste: %d\n", est.WastePercent, est.PlanksWithWaste)
	if est.PiecesPerBox > 0 {
		fmt.Fprintf(&b, "Boxes of %d: %d (%d with waste)\n", est.PiecesPerBox, est.BoxesNeeded, est.BoxesWithWaste)
	}
	if est.PricePerBox > 0 {
		fmt.Fprintf(&b, "Estimated cost: %.2f\n", est.EstimatedCost)
	}
	fmt.Fprintf(&b, "Layout efficiency: %.1f%%\n", est.LayoutEfficiency)
	if sk.BoardLength > 0 {
		fmt.Fprintf(&b, "\nSkirting: %d of wall, %d with waste\n", sk.Perimeter, sk.TotalWithWaste)
		fmt.Fprintf(&b, "Skirting boards of %d: %d\n", sk.BoardLength, sk.BoardsNeeded)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// showEstimateDialog asks for box and skirting details and shows how much
// material the current layout needs.
func (a *App) showEstimateDialog() {
	if a.result.Empty() {
		dialog.ShowInformation("No layout", "Calculate a layout first.", a.window)
		return
	}

	piecesPerBox, price := a.config.PiecesPerBox, a.config.PricePerBox
	if a.preset != nil && a.preset.Dimensions() == a.current.Plank {
		if a.preset.PiecesPerBox > 0 {
			piecesPerBox = a.preset.PiecesPerBox
		}
		if a.preset.PricePerBox > 0 {
			price = a.preset.PricePerBox
		}
	}

	boxEntry := widget.NewEntry()
	boxEntry.SetText(strconv.Itoa(piecesPerBox))
	wasteEntry := widget.NewEntry()
	wasteEntry.SetText(fmt.Sprintf("%.1f", a.config.WastePercent))
	priceEntry := widget.NewEntry()
	priceEntry.SetText(fmt.Sprintf("%.2f", price))
	openingsEntry := widget.NewEntry()
	openingsEntry.SetText("0")
	boardEntry := widget.NewEntry()
	boardEntry.SetText(strconv.Itoa(defaultSkirtingBoard))

	form := dialog.NewForm("Purchase Estimate", "Calculate", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Planks per Box", boxEntry),
			widget.NewFormItem("Waste (%)", wasteEntry),
			widget.NewFormItem("Price per Box", priceEntry),
			widget.NewFormItem("Door Openings", openingsEntry),
			widget.NewFormItem("Skirting Board Length", boardEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			boxes, _ := strconv.Atoi(boxEntry.Text)
			waste, _ := strconv.ParseFloat(wasteEntry.Text, 64)
			price, _ := strconv.ParseFloat(priceEntry.Text, 64)
			openings, _ := strconv.Atoi(openingsEntry.Text)
			board, _ := strconv.Atoi(boardEntry.Text)
			if boxes < 0 || waste < 0 || price < 0 || openings < 0 || board < 0 {
				dialog.ShowError(fmt.Errorf("values must not be negative"), a.window)
				return
			}

			est := model.CalculatePurchaseEstimate(a.result, boxes, waste, price)
			sk := model.CalculateSkirting(a.current.Room, openings, board, waste)
			dialog.ShowInformation("Purchase Estimate", estimateSummary(est, sk), a.window)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 350))
	form.Show()
}
