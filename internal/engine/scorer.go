package engine

// ScoreParams bundles the per-turn global statistics the scorer needs
// alongside the anchor being evaluated: centroids, phase, the opponent's
// predicted direction, and our territory (for the connectivity/isolation
// terms). None of it is mutated.
type ScoreParams struct {
	Roles            RolePair
	Phase            int
	OurCentroid      Pos
	OppCentroid      Pos
	OppDirY, OppDirX int
	OurTerritory     []Pos
}

// NewScoreParams bundles the per-turn statistics the scorer needs.
func NewScoreParams(roles RolePair, phase int, ourCentroid, oppCentroid Pos, oppDirY, oppDirX int, ourTerritory []Pos) ScoreParams {
	return ScoreParams{
		Roles:        roles,
		Phase:        phase,
		OurCentroid:  ourCentroid,
		OppCentroid:  oppCentroid,
		OppDirY:      oppDirY,
		OppDirX:      oppDirX,
		OurTerritory: ourTerritory,
	}
}

func phaseWeights(phase int) (territory, blocking, enclosure int) {
	switch {
	case phase < 30:
		return 80, 200, 50
	case phase < 70:
		return 120, 150, 100
	default:
		return 150, 80, 200
	}
}

// Score computes the signed integer score for an anchor that is assumed
// legal, per spec.md §4.6. aggressiveTier marks candidates sourced from
// tiers 1 or 2 of §4.5 (opponent-centric seeds).
func Score(b *BoardSnapshot, piece Piece, anchor Anchor, p ScoreParams, aggressiveTier bool) int {
	covered := piece.Covered(anchor)

	var newTerritory, blocksOpponent, createsEnclosure, potentialGrowth, directionBonus int
	cutsOpponentPath := false
	adjacentToOpponent := false

	for _, c := range covered {
		if b.Rows[c.Y][c.X] != Empty {
			continue
		}
		newTerritory++

		oppNeighbours := 0
		for _, d := range N4 {
			ny, nx := c.Y+d.Y, c.X+d.X
			if !InBounds(b.H, b.W, ny, nx) {
				continue
			}
			cell := b.Rows[ny][nx]
			if cell == p.Roles.Opp || cell == p.Roles.OppTerritory {
				blocksOpponent++
				oppNeighbours++
			}
			if cell == Empty {
				potentialGrowth++
				if enclosureCandidate(b, p.Roles, Pos{Y: ny, X: nx}) {
					createsEnclosure++
				}
			}
		}
		if oppNeighbours >= 2 {
			cutsOpponentPath = true
			adjacentToOpponent = true
		}

		mdy, mdx := sign(c.Y-p.OurCentroid.Y), sign(c.X-p.OurCentroid.X)
		if p.Phase < 50 {
			if (mdy == p.OppDirY && mdx == p.OppDirX) || (mdy == -p.OppDirY && mdx == -p.OppDirX) {
				directionBonus += 2
			}
		} else {
			directionBonus++
		}
	}

	connectsTerritory := connectsToTerritory(covered, p.OurTerritory)
	createsIsolated := isIsolated(covered, p.OurTerritory)

	wt, wb, we := phaseWeights(p.Phase)

	score := newTerritory*wt +
		blocksOpponent*wb +
		createsEnclosure*we +
		potentialGrowth*30 +
		directionBonus*50

	score += (100 - Manhattan(Pos(anchor), p.OppCentroid)) * 5
	score += (50 - Manhattan(Pos(anchor), p.OurCentroid)) * 2

	if cutsOpponentPath {
		score += 500
	}
	if adjacentToOpponent {
		score += 200
	}
	if connectsTerritory {
		score += 300
	}
	if createsIsolated {
		score -= 500
	}

	switch {
	case p.Phase < 10:
		score += (15 - Manhattan(Pos(anchor), p.OppCentroid)) * 80
	case p.Phase < 30:
		if adjacentToOpponent {
			score += 400
		}
	default:
		score += newTerritory * 150
	}

	if aggressiveTier && adjacentToOpponent {
		score += 300
	}

	return score
}

// enclosureCandidate reports whether every 8-neighbour of e is either
// our-role or the opponent's anchor role (not opponent territory): a
// placement that nearly seals e into our territory.
func enclosureCandidate(b *BoardSnapshot, roles RolePair, e Pos) bool {
	for _, d := range N8 {
		ny, nx := e.Y+d.Y, e.X+d.X
		if !InBounds(b.H, b.W, ny, nx) {
			continue
		}
		cell := b.Rows[ny][nx]
		if !roles.IsOurs(cell) && cell != roles.Opp {
			return false
		}
	}
	return true
}

// connectsToTerritory reports whether our territory is large enough and
// at least two distinct covered cells each sit within Manhattan distance
// 3 of at least two of our territory cells.
func connectsToTerritory(covered []Pos, ourTerritory []Pos) bool {
	if len(ourTerritory) < 5 {
		return false
	}
	qualifying := 0
	for _, c := range covered {
		nearby := 0
		for _, t := range ourTerritory {
			if Manhattan(c, t) <= 3 {
				nearby++
				if nearby >= 2 {
					break
				}
			}
		}
		if nearby >= 2 {
			qualifying++
			if qualifying >= 2 {
				return true
			}
		}
	}
	return false
}

// isIsolated reports whether the minimum Manhattan distance from any
// covered cell to any of our territory cells exceeds 5.
func isIsolated(covered []Pos, ourTerritory []Pos) bool {
	if len(ourTerritory) == 0 {
		return true
	}
	for _, c := range covered {
		for _, t := range ourTerritory {
			if Manhattan(c, t) <= 5 {
				return false
			}
		}
	}
	return true
}
