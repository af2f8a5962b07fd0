package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/PlankLayout/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// dxfTolerance is the largest gap between line ends that still counts as connected.
const dxfTolerance = 0.01

type point struct {
	x, y float64
}

// segment represents a line segment between two 2D points, used for
// chaining disconnected LINE entities into closed outlines.
type segment struct {
	start point
	end   point
}

type outline []point

// bounds returns the bounding box of the outline.
func (o outline) bounds() (min, max point) {
	min = point{math.Inf(1), math.Inf(1)}
	max = point{math.Inf(-1), math.Inf(-1)}
	for _, p := range o {
		min.x, min.y = math.Min(min.x, p.x), math.Min(min.y, p.y)
		max.x, max.y = math.Max(max.x, p.x), math.Max(max.y, p.y)
	}
	return min, max
}

// area computes the absolute area of a polygon using the shoelace formula.
func (o outline) area() float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].x * o[j].y
		area -= o[j].x * o[i].y
	}
	return math.Abs(area) / 2
}

// ImportDXF imports rooms from a floor plan drawing. Each closed shape
// (LWPOLYLINE or chain of connected LINEs) becomes a room sized to its
// bounding box, largest first. Non-rectangular shapes are kept with a warning.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines []outline
	var segments []segment
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			o := lwPolylineToOutline(e)
			if len(o) >= 3 {
				outlines = append(outlines, o)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: point{e.Start[0], e.Start[1]},
				end:   point{e.End[0], e.End[1]},
			})

		default:
			// Text, dimensions and other annotations carry no room outline
		}
	}
	outlines = append(outlines, chainSegments(segments, dxfTolerance)...)

	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	// Largest first for consistent ordering
	sort.SliceStable(outlines, func(i, j int) bool {
		return outlines[i].area() > outlines[j].area()
	})

	for _, o := range outlines {
		label := fmt.Sprintf("Room %d", len(result.Rooms)+1)
		min, max := o.bounds()
		size := model.Dimensions{
			Width:  int(math.Round(max.x - min.x)),
			Height: int(math.Round(max.y - min.y)),
		}
		if !size.Positive() {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f)", max.x-min.x, max.y-min.y))
			continue
		}
		if boxArea := (max.x - min.x) * (max.y - min.y); o.area() < boxArea*0.99 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s is not rectangular, using its %s bounding box", label, size))
		}
		result.Rooms = append(result.Rooms, Room{Label: label, Size: size})
	}

	return result
}

// lwPolylineToOutline converts a DXF LWPOLYLINE entity to an outline.
// Bulges are ignored; the bounding box only needs the vertices.
func lwPolylineToOutline(lw *entity.LwPolyline) outline {
	o := make(outline, 0, len(lw.Vertices))
	for _, v := range lw.Vertices {
		o = append(o, point{v[0], v[1]})
	}
	if len(o) >= 3 && pointsClose(o[0], o[len(o)-1], dxfTolerance) {
		o = o[:len(o)-1]
	}
	return o
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them connected.
// Chains that do not close are dropped.
func chainSegments(segs []segment, tolerance float64) []outline {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines []outline

	for {
		// Find the first unused segment
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := outline{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		// Try to extend the chain
		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		if len(chain) < 4 || !pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			continue
		}
		// Remove the duplicate closing point
		outlines = append(outlines, chain[:len(chain)-1])
	}

	return outlines
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b point, tolerance float64) bool {
	return math.Hypot(a.x-b.x, a.y-b.y) <= tolerance
}
