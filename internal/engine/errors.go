package engine

import (
	"errors"
	"fmt"

	"github.com/piwi3910/PlankLayout/internal/model"
)

// ErrConfigurationOverflow reports a cut that would run past the room edge.
// It signals an internal inconsistency (such as a stagger offset larger than
// the plank) and aborts the calculation.
var ErrConfigurationOverflow = errors.New("configuration overflow")

// Axis names the direction an overflow happened in.
type Axis int

const (
	AxisHorizontal Axis = iota // Row width
	AxisVertical               // Column height
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "column height"
	}
	return "row width"
}

// OverflowError describes a cut that does not fit.
type OverflowError struct {
	Axis     Axis
	Position model.Position
	Extent   int // Position on the axis plus the intended cut
	Limit    int // Room size on the axis, or the plank size for stagger cuts
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: %s %d exceeds %d at (%d, %d)",
		ErrConfigurationOverflow, e.Axis, e.Extent, e.Limit, e.Position.X, e.Position.Y)
}

// Unwrap lets errors.Is match ErrConfigurationOverflow.
func (e *OverflowError) Unwrap() error {
	return ErrConfigurationOverflow
}
