// Package engine computes plank layouts: it walks the room in plank-sized
// steps, cuts planks at the walls, staggers row starts and reuses offcuts
// before opening a fresh plank.
package engine

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	"github.com/piwi3910/PlankLayout/internal/model"
)

const (
	minRandomCut    = 40  // Shortest randomized cut
	colorMin        = 100 // Color channels are drawn from [colorMin, colorMax]
	colorMax        = 255
	leftOverGutter  = 10 // Spacing between left-over pieces below the room
	leftOverColumns = 5  // Left-over pieces per row below the room
)

// Option configures an Engine.
type Option func(*Engine)

// WithSeed makes every Calculate reseed from seed, so geometry and colors
// repeat exactly. Without it each run draws a fresh seed from crypto/rand.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = &seed
	}
}

// WithStaggerPattern replaces the default stagger pattern. An empty pattern
// restores the default.
func WithStaggerPattern(pattern []int) Option {
	return func(e *Engine) {
		if len(pattern) == 0 {
			e.pattern = staggerPattern[:]
			return
		}
		e.pattern = append([]int(nil), pattern...)
	}
}

// WithLogger sets the logger used for run diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine lays planks into a room. It keeps per-run state and is not safe
// for concurrent use; Calculate resets that state every time.
type Engine struct {
	cfg     model.LayoutConfig
	pattern []int
	seed    *int64
	logger  *slog.Logger
	rng     *rand.Rand

	cursor   model.Position
	row      int // stagger pattern index
	nextID   int
	uncut    int
	placed   []model.Piece
	leftOver offcutPool
}

// New creates an Engine with the default stagger pattern.
func New(opts ...Option) *Engine {
	e := &Engine{
		pattern: staggerPattern[:],
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Calculate is a convenience wrapper that configures a new Engine and runs it once.
func Calculate(cfg model.LayoutConfig, opts ...Option) (model.Result, error) {
	e := New(opts...)
	e.Configure(cfg)
	return e.Calculate()
}

// Configure sets the layout the next Calculate call computes.
func (e *Engine) Configure(cfg model.LayoutConfig) {
	e.cfg = cfg
}

// Config returns the configured layout.
func (e *Engine) Config() model.LayoutConfig {
	return e.cfg
}

// Calculate runs the traversal to completion and returns the layout.
// It fails with model.ErrInvalidConfiguration before traversal for
// non-positive sizes and with ErrConfigurationOverflow when a cut would run
// past the room.
func (e *Engine) Calculate() (model.Result, error) {
	if err := e.cfg.Validate(); err != nil {
		return model.Result{}, err
	}
	e.reset()

	room, plank := e.cfg.Room, e.cfg.Plank
	e.logger.Debug("Calculating layout.",
		"room", room.String(), "plank", plank.String(),
		"staggered", e.cfg.Staggered, "randomize_lengths", e.cfg.RandomizeLengths)

	for e.cursor.Y < room.Height {
		cut, err := e.slice()
		if err != nil {
			e.logger.Debug("Layout aborted.", "error", err)
			return model.Result{}, err
		}
		widthCut := cut.Width > 0
		heightCut := cut.Height > 0

		if !widthCut && !heightCut {
			e.nextID++
			e.uncut++
			e.place(e.nextID, plank, e.newColor())
			e.advance(plank)
			continue
		}

		need := plank
		if widthCut {
			need.Width = cut.Width
		}
		if heightCut {
			need.Height = cut.Height
		}

		if i := e.leftOver.find(need); i >= 0 {
			source := e.leftOver.take(i, need, widthCut, heightCut)
			e.place(source.ID, need, source.Color)
		} else {
			e.fabricate(need, widthCut, heightCut)
		}

		e.leftOver.purge()
		e.advance(need)
	}

	e.leftOver.arrange(room, plank)

	result := model.Result{
		Config:          e.cfg,
		TotalPlanksUsed: e.nextID,
		LeftOverCount:   e.leftOver.count(),
		UncutPlankCount: e.uncut,
		Placed:          e.placed,
		LeftOver:        e.leftOver.snapshot(),
	}
	e.logger.Debug("Layout calculated.",
		"planks", result.TotalPlanksUsed, "uncut", result.UncutPlankCount,
		"left_over", result.LeftOverCount, "pieces", len(result.Placed))
	return result, nil
}

func (e *Engine) reset() {
	seed := entropySeed()
	if e.seed != nil {
		seed = *e.seed
	}
	e.rng = rand.New(rand.NewSource(seed))

	e.cursor = model.Position{}
	e.row = 0
	e.nextID = 0
	e.uncut = 0
	e.placed = nil
	e.leftOver.reset()
}

// slice returns how much the plank at the cursor must be shortened on each
// axis. 0 on an axis means the full plank dimension is used.
func (e *Engine) slice() (model.Dimensions, error) {
	var cut model.Dimensions
	room, plank := e.cfg.Room, e.cfg.Plank
	x, y := e.cursor.X, e.cursor.Y

	switch {
	case x == 0 && e.cfg.Staggered:
		cut.Width = resolveStagger(patternValue(e.pattern, e.row), plank.Width)
		if cut.Width < 0 || cut.Width > plank.Width {
			return cut, &OverflowError{Axis: AxisHorizontal, Position: e.cursor, Extent: x + cut.Width, Limit: plank.Width}
		}
		// An unshifted row start still has to respect a room narrower than the plank.
		if cut.Width == 0 && plank.Width > room.Width {
			cut.Width = room.Width
		}
	case x+plank.Width > room.Width:
		cut.Width = room.Width - x
	case e.cfg.RandomizeLengths:
		cut.Width = e.randomLength(plank.Width)
		if x+cut.Width > room.Width {
			cut.Width -= (x + cut.Width) - room.Width
		}
	}

	if x+cut.Width > room.Width {
		return cut, &OverflowError{Axis: AxisHorizontal, Position: e.cursor, Extent: x + cut.Width, Limit: room.Width}
	}

	if y+plank.Height > room.Height {
		cut.Height = room.Height - y
	}
	if y+cut.Height > room.Height {
		return cut, &OverflowError{Axis: AxisVertical, Position: e.cursor, Extent: y + cut.Height, Limit: room.Height}
	}

	return cut, nil
}

// fabricate opens a new plank, places need from it and stores the remainder.
func (e *Engine) fabricate(need model.Dimensions, widthCut, heightCut bool) {
	plank := e.cfg.Plank
	c := e.newColor()
	e.nextID++
	e.place(e.nextID, need, c)

	rest := plank
	if widthCut {
		rest.Width = plank.Width - need.Width
	}
	if heightCut {
		rest.Height = plank.Height - need.Height
	}
	e.leftOver.add(model.Piece{ID: e.nextID, Dimensions: rest, Color: c})
}

func (e *Engine) place(id int, size model.Dimensions, c color.NRGBA) {
	e.placed = append(e.placed, model.Piece{
		ID:         id,
		Position:   e.cursor,
		Dimensions: size,
		Color:      c,
	})
}

// advance moves the cursor past the consumed piece, wrapping to the next row
// at the right wall.
func (e *Engine) advance(consumed model.Dimensions) {
	e.cursor.X += consumed.Width
	if e.cursor.X < e.cfg.Room.Width {
		return
	}
	e.cursor.X = 0
	e.cursor.Y += consumed.Height
	if e.cfg.Staggered {
		e.row = (e.row + 1) % len(e.pattern)
	}
}

// randomLength draws a cut width in [minRandomCut, plankWidth]. Planks
// narrower than minRandomCut are never shortened below their own width.
func (e *Engine) randomLength(plankWidth int) int {
	lo := minRandomCut
	if plankWidth < lo {
		lo = plankWidth
	}
	return lo + e.rng.Intn(plankWidth-lo+1)
}

func (e *Engine) newColor() color.NRGBA {
	return color.NRGBA{
		R: uint8(e.randomChannel()),
		G: uint8(e.randomChannel()),
		B: uint8(e.randomChannel()),
		A: colorMax,
	}
}

func (e *Engine) randomChannel() int {
	return colorMin + e.rng.Intn(colorMax-colorMin+1)
}

func entropySeed() int64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
