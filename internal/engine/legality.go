package engine

// IsLegal decides whether placing piece at anchor respects the
// overlap-exactly-once rule and the no-opponent-contact rule of
// spec.md §4.4. It is total: every input yields true or false, never an
// error.
func IsLegal(b *BoardSnapshot, piece Piece, anchor Anchor, roles RolePair) bool {
	overlaps := 0
	for _, off := range piece.Offsets {
		y, x := anchor.Y+off.Y, anchor.X+off.X
		if !InBounds(b.H, b.W, y, x) {
			return false
		}
		cell := b.Rows[y][x]
		if roles.IsOpponent(cell) {
			return false
		}
		if roles.IsOurs(cell) {
			overlaps++
			if overlaps > 1 {
				return false
			}
		}
	}
	return overlaps == 1
}
