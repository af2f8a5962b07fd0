package engine

import "github.com/piwi3910/PlankLayout/internal/model"

// offcutPool is the ordered inventory of reusable scrap for one run.
// Pieces are addressed by index so a reuse can shrink them in place.
type offcutPool struct {
	pieces []model.Piece
}

func (p *offcutPool) reset() {
	p.pieces = p.pieces[:0]
}

func (p *offcutPool) count() int {
	return len(p.pieces)
}

func (p *offcutPool) add(piece model.Piece) {
	p.pieces = append(p.pieces, piece)
}

// find returns the index of the first piece that covers need on both axes,
// or -1. Insertion order decides ties.
func (p *offcutPool) find(need model.Dimensions) int {
	for i := range p.pieces {
		if p.pieces[i].Dimensions.Covers(need) {
			return i
		}
	}
	return -1
}

// take cuts need off the piece at index i. Only the sliced axes shrink,
// which models notching one corner off the remaining scrap.
func (p *offcutPool) take(i int, need model.Dimensions, widthCut, heightCut bool) model.Piece {
	piece := &p.pieces[i]
	if heightCut {
		piece.Dimensions.Height -= need.Height
	}
	if widthCut {
		piece.Dimensions.Width -= need.Width
	}
	return *piece
}

// purge drops every piece with a non-positive dimension, keeping order.
func (p *offcutPool) purge() {
	kept := p.pieces[:0]
	for _, piece := range p.pieces {
		if piece.Dimensions.Positive() {
			kept = append(kept, piece)
		}
	}
	p.pieces = kept
}

// arrange assigns every piece a slot in the overflow grid below the room.
func (p *offcutPool) arrange(room, plank model.Dimensions) {
	col, row := 0, 1
	for i := range p.pieces {
		p.pieces[i].Position = model.Position{
			X: col * (plank.Width + leftOverGutter),
			Y: room.Height + row*(plank.Height+leftOverGutter),
		}
		col++
		if col >= leftOverColumns {
			col = 0
			row++
		}
	}
}

// snapshot returns a copy of the pool contents.
func (p *offcutPool) snapshot() []model.Piece {
	out := make([]model.Piece, len(p.pieces))
	copy(out, p.pieces)
	return out
}
