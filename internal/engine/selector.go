package engine

// ChooseMove orchestrates candidate generation, legality, scoring,
// tie-breaking, and fallback for a single turn (spec.md §4.7). It
// mutates track (the only state that outlives a turn) and otherwise
// treats its inputs as read-only. Returns nil when even the fallback
// sweep finds no legal anchor — a turn forfeit, not an error.
func ChooseMove(b *BoardSnapshot, piece Piece, roles RolePair, track *OpponentTrack) *Anchor {
	track.Update(b, roles)

	ourTerritory := CollectCells(b, roles.Our, roles.OurTerritory)
	oppTerritory := CollectCells(b, roles.Opp, roles.OppTerritory)
	ourFrontier := Frontier(b, ourTerritory, roles.Opp, roles.OppTerritory)
	oppFrontier := Frontier(b, oppTerritory, roles.Our, roles.OurTerritory)

	ourCentroid := Centroid(ourTerritory)
	oppCentroid := Centroid(oppTerritory)
	phase := Phase(b, len(ourTerritory), len(oppTerritory))
	sdy, sdx := track.Direction()

	area := b.Area()
	radius := SearchRadius(phase, area)
	offsets := ProbeOffsets(radius)
	params := NewScoreParams(roles, phase, ourCentroid, oppCentroid, sdy, sdx, ourTerritory)

	seen := make(map[Anchor]bool)
	var best *Anchor
	bestScore := 0
	found := false

	consider := func(a Anchor, score int) {
		if !found || score > bestScore {
			anchor := a
			best = &anchor
			bestScore = score
			found = true
		}
	}

	probe := func(seeds []Pos, aggressiveTier bool, tierBonus func(seed, off Pos) int) {
		for _, seed := range seeds {
			for _, off := range offsets {
				a := Anchor{Y: seed.Y + off.Y, X: seed.X + off.X}
				if !InBounds(b.H, b.W, a.Y, a.X) {
					continue
				}
				if seen[a] {
					continue
				}
				seen[a] = true
				if !IsLegal(b, piece, a, roles) {
					continue
				}
				score := Score(b, piece, a, params, aggressiveTier)
				if tierBonus != nil {
					score += tierBonus(seed, off)
				}
				consider(a, score)
			}
		}
	}

	// Tier 1: opponent expansion seeds, flat +500 bias.
	probe(ExpansionSeeds(b, roles), true, func(Pos, Pos) int { return 500 })

	// Tier 2: opponent frontier, +300 when the offset from the seed
	// points the same way our centroid points toward the opponent's.
	towardY := sign(oppCentroid.Y - ourCentroid.Y)
	towardX := sign(oppCentroid.X - ourCentroid.X)
	probe(Sample(oppFrontier, area), true, func(_ Pos, off Pos) int {
		if sign(off.Y) == towardY && sign(off.X) == towardX {
			return 300
		}
		return 0
	})

	// Tier 3: our frontier, only when tiers 1-2 underperformed or we're
	// still early game.
	if !found || bestScore < 1000 || phase < 50 {
		probe(Sample(ourFrontier, area), false, nil)
	}

	if found {
		return best
	}

	for _, a := range FallbackSweep(b) {
		if IsLegal(b, piece, a, roles) {
			anchor := a
			return &anchor
		}
	}
	return nil
}
