package model

import "math"

// PurchaseEstimate holds the results of a plank purchasing calculation.
type PurchaseEstimate struct {
	RoomArea          int     `json:"room_area"`            // Area to cover
	PlankArea         int     `json:"plank_area"`           // Area of one plank
	PlanksExact       float64 `json:"planks_exact"`         // Room area / plank area, no cutting loss
	PlanksNeeded      int     `json:"planks_needed"`        // Planks consumed by the layout
	PlanksWithWaste   int     `json:"planks_with_waste"`    // Planks including the waste factor
	BoxesNeeded       int     `json:"boxes_needed"`         // Boxes for PlanksNeeded
	BoxesWithWaste    int     `json:"boxes_with_waste"`     // Boxes for PlanksWithWaste
	WastePercent      float64 `json:"waste_percent"`        // Waste factor applied (e.g., 10 for 10%)
	EstimatedCost     float64 `json:"estimated_cost"`       // BoxesWithWaste * PricePerBox
	PricePerBox       float64 `json:"price_per_box"`        // Price used for estimation
	PiecesPerBox      int     `json:"pieces_per_box"`       // Box size used for estimation
	LayoutEfficiency  float64 `json:"layout_efficiency"`    // Placed area / purchased area, percent
	LeftOverPieceArea int     `json:"left_over_piece_area"` // Area of surviving offcuts
}

// CalculatePurchaseEstimate computes how many planks and boxes to buy for a layout.
// The waste factor is applied on top of the planks the layout actually consumes.
func CalculatePurchaseEstimate(result Result, piecesPerBox int, wastePercent, pricePerBox float64) PurchaseEstimate {
	plankArea := result.Config.Plank.Area()
	roomArea := result.RoomArea()

	est := PurchaseEstimate{
		RoomArea:          roomArea,
		PlankArea:         plankArea,
		PlanksNeeded:      result.TotalPlanksUsed,
		WastePercent:      wastePercent,
		PricePerBox:       pricePerBox,
		PiecesPerBox:      piecesPerBox,
		LayoutEfficiency:  result.Efficiency(),
		LeftOverPieceArea: result.LeftOverArea(),
	}
	if plankArea <= 0 {
		return est
	}
	est.PlanksExact = float64(roomArea) / float64(plankArea)

	est.PlanksWithWaste = withWaste(result.TotalPlanksUsed, wastePercent)
	if est.PlanksWithWaste < est.PlanksNeeded {
		est.PlanksWithWaste = est.PlanksNeeded
	}

	if piecesPerBox <= 0 {
		return est
	}
	est.BoxesNeeded = ceilDiv(est.PlanksNeeded, piecesPerBox)
	est.BoxesWithWaste = ceilDiv(est.PlanksWithWaste, piecesPerBox)
	est.EstimatedCost = float64(est.BoxesWithWaste) * pricePerBox
	return est
}

// withWaste returns n increased by wastePercent, rounded up.
func withWaste(n int, wastePercent float64) int {
	return int(math.Ceil(float64(n) * (100.0 + wastePercent) / 100.0))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
