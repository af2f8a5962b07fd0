// Package export writes plank layouts to PDF, label sheets, spreadsheets,
// DXF drawings and PNG previews.
package export

import (
	"errors"

	"github.com/piwi3910/PlankLayout/internal/model"
)

// ErrEmptyResult is returned when a layout without placed pieces is exported.
var ErrEmptyResult = errors.New("no placed pieces to export")

// Piece sources as shown in cut lists.
const (
	SourceWhole  = "Whole plank"
	SourceCut    = "Cut"
	SourceOffcut = "Offcut"
)

// pieceSources classifies every placed piece: laid whole, cut from a fresh
// plank, or cut from an earlier plank's offcut.
func pieceSources(result model.Result) []string {
	seen := make(map[int]bool, len(result.Placed))
	sources := make([]string, len(result.Placed))
	for i, p := range result.Placed {
		switch {
		case seen[p.ID]:
			sources[i] = SourceOffcut
		case p.Dimensions == result.Config.Plank:
			sources[i] = SourceWhole
		default:
			sources[i] = SourceCut
		}
		seen[p.ID] = true
	}
	return sources
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
