// Package arena hosts the local match referee that spec.md's own
// retrieved source doesn't include: it spawns two filler-bot
// subprocesses, speaks the referee side of the line protocol to each,
// applies and re-validates their replies against its own authoritative
// board, and streams turns to spectators. It is allowed to mutate
// state and persist across games — the opposite of internal/engine's
// Non-goals — because it is not the core, grounded on
// _examples/korjavin-virusgame/backend/hub.go's game-loop/broadcast
// split.
package arena

import (
	"fmt"
	"strings"

	"github.com/korjavin/filler/internal/engine"
)

// Board is the arena's mutable, authoritative copy of the grid. Unlike
// engine.BoardSnapshot, it is written to turn by turn.
type Board struct {
	rows [][]engine.Role
	w, h int
}

// NewBoard returns an empty w x h board with the two starting anchors
// placed in opposite corners, mirroring how the real referee seeds a
// game.
func NewBoard(w, h int, p1Roles, p2Roles engine.RolePair) *Board {
	rows := make([][]engine.Role, h)
	for y := range rows {
		row := make([]engine.Role, w)
		for x := range row {
			row[x] = engine.Empty
		}
		rows[y] = row
	}
	b := &Board{rows: rows, w: w, h: h}
	b.rows[0][0] = p1Roles.Our
	b.rows[h-1][w-1] = p2Roles.Our
	return b
}

// Snapshot returns an immutable copy for handing to internal/engine or
// for serializing a turn to the referee-to-bot protocol.
func (b *Board) Snapshot() *engine.BoardSnapshot {
	rows := make([][]engine.Role, b.h)
	for y, row := range b.rows {
		cp := make([]engine.Role, b.w)
		copy(cp, row)
		rows[y] = cp
	}
	return &engine.BoardSnapshot{Rows: rows, W: b.w, H: b.h}
}

// Apply re-checks legality server-side (the arena never trusts a bot's
// own claim) and, if legal, writes the piece's footprint: the
// overlapping our-role cell becomes territory, every other covered
// cell becomes our anchor. Returns an error when the move is illegal —
// callers should treat that as a forfeited turn, not a crash.
func (b *Board) Apply(piece engine.Piece, anchor engine.Anchor, roles engine.RolePair) error {
	snap := b.Snapshot()
	if !engine.IsLegal(snap, piece, anchor, roles) {
		return fmt.Errorf("arena: illegal move %+v rejected by server-side legality check", anchor)
	}
	for _, c := range piece.Covered(anchor) {
		if roles.IsOurs(b.rows[c.Y][c.X]) {
			b.rows[c.Y][c.X] = roles.OurTerritory
		} else {
			b.rows[c.Y][c.X] = roles.Our
		}
	}
	return nil
}

// Territory counts cells owned by roles (anchor or territory symbol).
func (b *Board) Territory(roles engine.RolePair) int {
	n := 0
	for _, row := range b.rows {
		for _, r := range row {
			if roles.IsOurs(r) {
				n++
			}
		}
	}
	return n
}

// Render writes rows prefixed the way the referee protocol does: four
// digits of row index, then the row contents — matching spec.md §6's
// "prefixed by exactly 4 characters" rule so the same code can feed a
// real bot subprocess.
func (b *Board) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "    ")
	for x := 0; x < b.w; x++ {
		fmt.Fprintf(&sb, "%d", x%10)
	}
	sb.WriteByte('\n')
	for y, row := range b.rows {
		fmt.Fprintf(&sb, "%04d", y)
		for _, r := range row {
			sb.WriteByte(byte(r))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) Width() int  { return b.w }
func (b *Board) Height() int { return b.h }
