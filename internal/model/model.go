package model

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidConfiguration is returned when a room or plank dimension is not
// strictly positive.
var ErrInvalidConfiguration = errors.New("invalid layout configuration")

// Dimensions is a width/height pair in layout units.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns Width * Height.
func (d Dimensions) Area() int {
	return d.Width * d.Height
}

// Covers reports whether d is at least as large as other on both axes.
func (d Dimensions) Covers(other Dimensions) bool {
	return d.Width >= other.Width && d.Height >= other.Height
}

// Positive reports whether both dimensions are strictly positive.
func (d Dimensions) Positive() bool {
	return d.Width > 0 && d.Height > 0
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// ParseDimensions parses "WxH" (an upper-case X or '*' also separate the
// parts). Both parts must be positive integers.
func ParseDimensions(s string) (Dimensions, error) {
	sep := strings.IndexAny(s, "xX*")
	if sep < 0 {
		return Dimensions{}, fmt.Errorf("invalid size %q: want WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(s[:sep]))
	if err != nil {
		return Dimensions{}, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(s[sep+1:]))
	if err != nil {
		return Dimensions{}, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	d := Dimensions{Width: w, Height: h}
	if !d.Positive() {
		return Dimensions{}, fmt.Errorf("%w: size %s must be positive", ErrInvalidConfiguration, d)
	}
	return d, nil
}

// Position is a top-left anchored coordinate in the room's coordinate space.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Piece is a placed plank or a fragment of one.
// A placed fragment and the offcut split from it share ID and Color.
type Piece struct {
	ID         int         `json:"id"`
	Position   Position    `json:"position"`
	Dimensions Dimensions  `json:"dimensions"`
	Color      color.NRGBA `json:"color"`
}

// Right returns the x coordinate of the piece's right edge.
func (p Piece) Right() int {
	return p.Position.X + p.Dimensions.Width
}

// Bottom returns the y coordinate of the piece's bottom edge.
func (p Piece) Bottom() int {
	return p.Position.Y + p.Dimensions.Height
}

// Label returns the text drawn on a piece: "(id) w x h".
func (p Piece) Label() string {
	return fmt.Sprintf("(%d) %d x %d", p.ID, p.Dimensions.Width, p.Dimensions.Height)
}

// LayoutConfig is the input of one layout calculation.
type LayoutConfig struct {
	Room             Dimensions `json:"room"`
	Plank            Dimensions `json:"plank"`
	Staggered        bool       `json:"staggered"`
	RandomizeLengths bool       `json:"randomize_lengths"`
}

// DefaultLayoutConfig returns the room and plank sizes the application starts with.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Room:      Dimensions{Width: 560, Height: 400},
		Plank:     Dimensions{Width: 130, Height: 25},
		Staggered: true,
	}
}

// Validate rejects non-positive room or plank dimensions.
func (c LayoutConfig) Validate() error {
	if !c.Room.Positive() {
		return fmt.Errorf("%w: room size %s must be positive", ErrInvalidConfiguration, c.Room)
	}
	if !c.Plank.Positive() {
		return fmt.Errorf("%w: plank size %s must be positive", ErrInvalidConfiguration, c.Plank)
	}
	return nil
}

// Result holds a completed layout.
type Result struct {
	Config          LayoutConfig `json:"config"`
	TotalPlanksUsed int          `json:"total_planks_used"` // distinct originating planks
	LeftOverCount   int          `json:"left_over_count"`
	UncutPlankCount int          `json:"uncut_plank_count"`
	Placed          []Piece      `json:"placed_pieces"`
	LeftOver        []Piece      `json:"left_over_pieces"`
}

// Empty reports whether the result has no placed pieces.
func (r Result) Empty() bool {
	return len(r.Placed) == 0
}

// RoomArea returns the area of the room.
func (r Result) RoomArea() int {
	return r.Config.Room.Area()
}

// PlacedArea returns the summed area of all placed pieces.
func (r Result) PlacedArea() int {
	total := 0
	for _, p := range r.Placed {
		total += p.Dimensions.Area()
	}
	return total
}

// LeftOverArea returns the summed area of the surviving offcuts.
func (r Result) LeftOverArea() int {
	return TotalOffcutArea(r.LeftOver)
}

// PurchasedArea returns the area of all planks consumed by the layout.
func (r Result) PurchasedArea() int {
	return r.TotalPlanksUsed * r.Config.Plank.Area()
}

// Efficiency returns the share of purchased plank area that ends up on the
// floor, as a percentage.
func (r Result) Efficiency() float64 {
	purchased := r.PurchasedArea()
	if purchased == 0 {
		return 0
	}
	return float64(r.PlacedArea()) / float64(purchased) * 100.0
}

// WastePercent is 100 minus Efficiency, or 0 for an empty result.
func (r Result) WastePercent() float64 {
	if r.PurchasedArea() == 0 {
		return 0
	}
	return 100.0 - r.Efficiency()
}

// ReusedPieces returns the number of placed pieces that share their ID with an
// earlier placed piece, i.e. pieces cut from an offcut.
func (r Result) ReusedPieces() int {
	seen := make(map[int]bool, len(r.Placed))
	reused := 0
	for _, p := range r.Placed {
		if seen[p.ID] {
			reused++
		}
		seen[p.ID] = true
	}
	return reused
}

// IsReused reports whether the placed piece at index i was cut from an
// offcut of an earlier plank.
func (r Result) IsReused(i int) bool {
	for j := 0; j < i && j < len(r.Placed); j++ {
		if r.Placed[j].ID == r.Placed[i].ID {
			return true
		}
	}
	return false
}

// Bounds returns the extent covered by the room and the left-over grid below it.
func (r Result) Bounds() Dimensions {
	b := r.Config.Room
	for _, p := range r.LeftOver {
		if p.Right() > b.Width {
			b.Width = p.Right()
		}
		if p.Bottom() > b.Height {
			b.Height = p.Bottom()
		}
	}
	return b
}
