package model

import "sort"

// MinUsableOffcut is the smallest extent (on either axis) at which a left-over
// piece is still worth keeping for a later job. Smaller remnants are waste.
const MinUsableOffcut = 40

// OffcutGroup collects left-over pieces that share the same dimensions.
type OffcutGroup struct {
	Dimensions Dimensions `json:"dimensions"`
	Count      int        `json:"count"`
	IDs        []int      `json:"ids"` // Originating plank IDs, in pool order
}

// TotalArea returns the area of all pieces in the group.
func (g OffcutGroup) TotalArea() int {
	return g.Dimensions.Area() * g.Count
}

// Usable reports whether pieces of this group meet MinUsableOffcut on both axes.
func (g OffcutGroup) Usable() bool {
	return g.Dimensions.Width >= MinUsableOffcut && g.Dimensions.Height >= MinUsableOffcut
}

// GroupOffcuts groups pieces by dimensions, largest area first. Groups of
// equal area keep the order in which their first piece appears.
func GroupOffcuts(pieces []Piece) []OffcutGroup {
	index := make(map[Dimensions]int)
	var groups []OffcutGroup
	for _, p := range pieces {
		i, ok := index[p.Dimensions]
		if !ok {
			i = len(groups)
			index[p.Dimensions] = i
			groups = append(groups, OffcutGroup{Dimensions: p.Dimensions})
		}
		groups[i].Count++
		groups[i].IDs = append(groups[i].IDs, p.ID)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Dimensions.Area() > groups[j].Dimensions.Area()
	})
	return groups
}

// TotalOffcutArea returns the total area of all pieces.
func TotalOffcutArea(pieces []Piece) int {
	var total int
	for _, p := range pieces {
		total += p.Dimensions.Area()
	}
	return total
}

// UsableOffcuts returns the pieces whose extent meets MinUsableOffcut on both axes.
func UsableOffcuts(pieces []Piece) []Piece {
	var usable []Piece
	for _, p := range pieces {
		if p.Dimensions.Width >= MinUsableOffcut && p.Dimensions.Height >= MinUsableOffcut {
			usable = append(usable, p)
		}
	}
	return usable
}
