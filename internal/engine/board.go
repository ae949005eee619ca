package engine

import "sort"

// CollectCells returns every (y,x) whose role is roleA or roleB, in
// row-major order.
func CollectCells(b *BoardSnapshot, roleA, roleB Role) []Pos {
	var out []Pos
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			r := b.Rows[y][x]
			if r == roleA || r == roleB {
				out = append(out, Pos{Y: y, X: x})
			}
		}
	}
	return out
}

// frontierEntry carries the sort keys alongside the cell so the
// descending-priority order of spec.md §4.2 can be reproduced exactly.
type frontierEntry struct {
	pos     Pos
	oppAdj  int
	emptAdj int
}

// Frontier returns the territory cells (ours or opponent's: the caller
// passes that side's cells and the other side's two roles as
// oppRole/oppTerritoryRole) that are 4-adjacent to at least one empty cell, ordered
// descending by opp_adj*10+empty_adj with ties broken by more empty
// neighbours. Duplicates never occur since the input is a cell set, but
// the ordering must still be stable beyond that for determinism.
func Frontier(b *BoardSnapshot, territory []Pos, oppRole, oppTerritoryRole Role) []Pos {
	entries := make([]frontierEntry, 0, len(territory))
	for _, c := range territory {
		oppAdj, emptAdj := 0, 0
		isFrontier := false
		for _, d := range N4 {
			ny, nx := c.Y+d.Y, c.X+d.X
			if !InBounds(b.H, b.W, ny, nx) {
				continue
			}
			r := b.Rows[ny][nx]
			if r == Empty {
				emptAdj++
				isFrontier = true
			}
			if r == oppRole || r == oppTerritoryRole {
				oppAdj++
			}
		}
		if isFrontier {
			entries = append(entries, frontierEntry{pos: c, oppAdj: oppAdj, emptAdj: emptAdj})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ki := entries[i].oppAdj*10 + entries[i].emptAdj
		kj := entries[j].oppAdj*10 + entries[j].emptAdj
		if ki != kj {
			return ki > kj
		}
		return entries[i].emptAdj > entries[j].emptAdj
	})

	out := make([]Pos, len(entries))
	for i, e := range entries {
		out[i] = e.pos
	}
	return out
}

// Centroid returns the integer mean of points, or (0,0) for an empty set.
func Centroid(points []Pos) Pos {
	if len(points) == 0 {
		return Pos{0, 0}
	}
	var sy, sx int
	for _, p := range points {
		sy += p.Y
		sx += p.X
	}
	n := len(points)
	return Pos{Y: sy / n, X: sx / n}
}

// Phase returns floor(100*(ourSize+oppSize)/(H*W)), clamped implicitly
// to [0,100] by construction (size never exceeds area).
func Phase(b *BoardSnapshot, ourSize, oppSize int) int {
	area := b.Area()
	if area == 0 {
		return 0
	}
	return (100 * (ourSize + oppSize)) / area
}
