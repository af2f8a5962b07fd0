package model

// SkirtingSummary holds the skirting board requirements for a room.
type SkirtingSummary struct {
	Perimeter      int     `json:"perimeter"`        // Wall length to cover, minus openings
	Openings       int     `json:"openings"`         // Door openings subtracted from the perimeter
	WastePercent   float64 `json:"waste_percent"`    // Waste percentage applied
	TotalWithWaste int     `json:"total_with_waste"` // Perimeter with waste, rounded up
	BoardLength    int     `json:"board_length"`     // Length of one skirting board
	BoardsNeeded   int     `json:"boards_needed"`    // Boards for TotalWithWaste
	CornerCuts     int     `json:"corner_cuts"`      // Mitre cuts at the four corners
}

// CalculateSkirting computes the skirting boards needed around a room.
// openings is the summed width of door openings that get no skirting.
// wastePercent is the additional percentage to add for waste (e.g., 10 for 10%).
func CalculateSkirting(room Dimensions, openings, boardLength int, wastePercent float64) SkirtingSummary {
	perimeter := 2*(room.Width+room.Height) - openings
	if perimeter < 0 {
		perimeter = 0
	}

	totalWithWaste := withWaste(perimeter, wastePercent)

	summary := SkirtingSummary{
		Perimeter:      perimeter,
		Openings:       openings,
		WastePercent:   wastePercent,
		TotalWithWaste: totalWithWaste,
		BoardLength:    boardLength,
		CornerCuts:     8, // two mitres per corner
	}
	if boardLength > 0 {
		summary.BoardsNeeded = ceilDiv(totalWithWaste, boardLength)
	}
	return summary
}
