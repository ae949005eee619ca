package engine

// largeBoardArea is the board_area threshold above which search radius
// shrinks and frontier lists get sub-sampled (spec.md §4.5).
const largeBoardArea = 5000

// SearchRadius is the half-width of the square probe around each seed
// cell, chosen once per turn from the phase-and-size table of §4.5.
func SearchRadius(phase, area int) int {
	large := area > largeBoardArea
	switch {
	case phase <= 30:
		if large {
			return 3
		}
		return 5
	case phase <= 70:
		if large {
			return 2
		}
		return 4
	default:
		if large {
			return 2
		}
		return 3
	}
}

// ProbeOffsets returns the (2r+1)^2 deltas of the square probe around a
// seed cell, row-major order.
func ProbeOffsets(radius int) []Pos {
	out := make([]Pos, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			out = append(out, Pos{Y: dy, X: dx})
		}
	}
	return out
}

// Sample applies the large-board sub-sampling rule to a frontier list:
// every 3rd element when the list exceeds 100 cells, all of it
// otherwise. Expansion seeds are never sub-sampled (callers simply don't
// route them through Sample).
func Sample(cells []Pos, area int) []Pos {
	if area <= largeBoardArea || len(cells) <= 100 {
		return cells
	}
	out := make([]Pos, 0, len(cells)/3+1)
	for i := 0; i < len(cells); i += 3 {
		out = append(out, cells[i])
	}
	return out
}

// ExpansionSeeds runs a bounded breadth-first flood from every
// opponent-role cell across empty cells (spec.md §4.5.a). A newly
// visited empty cell is emitted iff it has at least two empty
// 4-neighbours — it lies in an open region the opponent could easily
// expand into. The flood stops enqueuing once 100 cells have been
// visited, bounding work on large boards. The emitted set is unordered.
func ExpansionSeeds(b *BoardSnapshot, roles RolePair) []Pos {
	visited := make(map[Pos]bool)
	var queue []Pos
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			r := b.Rows[y][x]
			if r == roles.Opp || r == roles.OppTerritory {
				p := Pos{Y: y, X: x}
				if !visited[p] {
					visited[p] = true
					queue = append(queue, p)
				}
			}
		}
	}

	var seeds []Pos
	for head := 0; head < len(queue) && len(visited) < 100; head++ {
		cur := queue[head]
		for _, d := range N4 {
			ny, nx := cur.Y+d.Y, cur.X+d.X
			if !InBounds(b.H, b.W, ny, nx) {
				continue
			}
			np := Pos{Y: ny, X: nx}
			if visited[np] || b.Rows[ny][nx] != Empty {
				continue
			}
			visited[np] = true
			if len(visited) > 100 {
				break
			}
			queue = append(queue, np)

			emptyNeighbours := 0
			for _, d2 := range N4 {
				ey, ex := ny+d2.Y, nx+d2.X
				if InBounds(b.H, b.W, ey, ex) && b.Rows[ey][ex] == Empty {
					emptyNeighbours++
				}
			}
			if emptyNeighbours >= 2 {
				seeds = append(seeds, np)
			}
		}
	}
	return seeds
}

// FallbackSweep enumerates anchors in row-major order with the stride
// mandated by board size — step 2 on large boards, step 1 otherwise —
// for the "any legal move beats forfeit" fallback of §4.5.
func FallbackSweep(b *BoardSnapshot) []Anchor {
	step := 1
	if b.Area() > largeBoardArea {
		step = 2
	}
	var out []Anchor
	for y := 0; y < b.H; y += step {
		for x := 0; x < b.W; x += step {
			out = append(out, Anchor{Y: y, X: x})
		}
	}
	return out
}
