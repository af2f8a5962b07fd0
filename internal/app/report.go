package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/piwi3910/PlankLayout/internal/engine"
	"github.com/piwi3910/PlankLayout/internal/model"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// writeSummary prints the statistics of one layout.
func writeSummary(w io.Writer, name string, result model.Result, est model.PurchaseEstimate) error {
	cfg := result.Config
	fmt.Fprintf(w, "Layout %q: room %s, plank %s, staggered %s, randomized %s\n",
		name, cfg.Room, cfg.Plank, yesNo(cfg.Staggered), yesNo(cfg.RandomizeLengths))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Planks needed:\t%d\n", result.TotalPlanksUsed)
	fmt.Fprintf(tw, "  Uncut planks:\t%d\n", result.UncutPlankCount)
	fmt.Fprintf(tw, "  Left over pieces:\t%d\n", result.LeftOverCount)
	usable := model.UsableOffcuts(result.LeftOver)
	fmt.Fprintf(tw, "  Usable left overs:\t%d (area %d)\n", len(usable), model.TotalOffcutArea(usable))
	fmt.Fprintf(tw, "  Pieces placed:\t%d\n", len(result.Placed))
	fmt.Fprintf(tw, "  Cut from offcuts:\t%d\n", result.ReusedPieces())
	if cfg.Staggered {
		fmt.Fprintf(tw, "  Row start cuts:\t%s\n", rowStartCuts(cfg.Plank.Width))
	}
	fmt.Fprintf(tw, "  Efficiency:\t%.1f%%\n", result.Efficiency())
	if est.PiecesPerBox > 0 {
		fmt.Fprintf(tw, "  Boxes needed:\t%d (%d with %.0f%% waste)\n", est.BoxesNeeded, est.BoxesWithWaste, est.WastePercent)
	}
	if est.PricePerBox > 0 {
		fmt.Fprintf(tw, "  Estimated cost:\t%.2f\n", est.EstimatedCost)
	}
	return tw.Flush()
}

// rowStartCuts lists the cut width of each row's first plank over one
// stagger cycle. "whole" marks rows that start with an uncut plank.
func rowStartCuts(plankWidth int) string {
	cuts := make([]string, engine.StaggerPatternLen)
	for row := range cuts {
		if c := engine.StaggerCut(row, plankWidth); c == 0 {
			cuts[row] = "whole"
		} else {
			cuts[row] = strconv.Itoa(c)
		}
	}
	return strings.Join(cuts, ", ")
}

// writeComparison prints one row per scenario and marks the best one.
func writeComparison(w io.Writer, name string, results []engine.ComparisonResult, best int) error {
	fmt.Fprintf(w, "Layout %q: comparing %d scenarios\n", name, len(results))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Scenario\tPlanks\tUncut\tReused\tLeft over\tWaste\t")
	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "  %s\terror: %v\t\t\t\t\t\n", r.Scenario.Name, r.Err)
			continue
		}
		marker := ""
		if i == best {
			marker = "best"
		}
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%d\t%d\t%.1f%%\t%s\n",
			r.Scenario.Name, r.PlanksUsed, r.UncutPlanks, r.ReusedPieces, r.LeftOverCount, r.WastePercent, marker)
	}
	return tw.Flush()
}
