package engine

import "strings"

// parseBoard builds a BoardSnapshot from row-major strings, one string
// per row, matching the literal scenarios in spec.md §8.
func parseBoard(rows []string) *BoardSnapshot {
	b := &BoardSnapshot{H: len(rows), W: len(rows[0])}
	b.Rows = make([][]Role, len(rows))
	for y, row := range rows {
		cells := make([]Role, len(row))
		for x, c := range row {
			cells[x] = Role(c)
		}
		b.Rows[y] = cells
	}
	return b
}

// parsePiece turns a small ASCII grid ('O' = occupied) into a Piece.
func parsePiece(rows []string) Piece {
	var offsets []Pos
	for y, row := range rows {
		for x, c := range row {
			if c == 'O' {
				offsets = append(offsets, Pos{Y: y, X: x})
			}
		}
	}
	return Piece{Offsets: offsets}
}

var p1Roles = RolePair{Our: '@', OurTerritory: 'a', Opp: '$', OppTerritory: 's'}
var p2Roles = RolePair{Our: '$', OurTerritory: 's', Opp: '@', OppTerritory: 'a'}

func splitRows(board string) []string {
	return strings.Split(board, "|")
}
