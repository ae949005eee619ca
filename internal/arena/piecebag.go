package arena

import "github.com/korjavin/filler/internal/engine"

// PieceBag hands out pieces in a fixed, repeating sequence — the arena
// doesn't need randomness, just a reproducible supply for test matches.
type PieceBag struct {
	pieces []engine.Piece
	next   int
}

// NewPieceBag builds a bag from a small fixed library of shapes: the
// single cell, a domino, an L-tromino, and a 2x2 square, cycled in
// that order.
func NewPieceBag() *PieceBag {
	shapes := []engine.Piece{
		{Offsets: []engine.Pos{{Y: 0, X: 0}}},
		{Offsets: []engine.Pos{{Y: 0, X: 0}, {Y: 0, X: 1}}},
		{Offsets: []engine.Pos{{Y: 0, X: 0}, {Y: 1, X: 0}, {Y: 1, X: 1}}},
		{Offsets: []engine.Pos{{Y: 0, X: 0}, {Y: 0, X: 1}, {Y: 1, X: 0}, {Y: 1, X: 1}}},
	}
	return &PieceBag{pieces: shapes}
}

// Next returns the next piece in the cycle.
func (p *PieceBag) Next() engine.Piece {
	piece := p.pieces[p.next%len(p.pieces)]
	p.next++
	return piece
}
