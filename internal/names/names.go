// Package names generates human-readable display names for arena
// participants, adapted from
// _examples/korjavin-virusgame/backend/names.go's adjective+noun+number
// scheme.
package names

import (
	"fmt"
	"math/rand"
	"time"
)

var styles = []string{
	"Greedy", "Patient", "Reckless", "Cagey", "Relentless", "Timid",
	"Ruthless", "Methodical", "Opportunistic", "Stubborn", "Erratic",
	"Calculating", "Hasty", "Guarded", "Aggressive", "Cautious",
}

var pieces = []string{
	"Anchor", "Frontier", "Enclosure", "Wedge", "Sprawl", "Outpost",
	"Bastion", "Salient", "Foothold", "Corridor", "Redoubt", "Claim",
	"Territory", "Vanguard", "Flank", "Bulwark",
}

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// Generate builds a display name in the form StylePieceNN, e.g.
// "CageyWedge42".
func Generate() string {
	style := styles[rng.Intn(len(styles))]
	piece := pieces[rng.Intn(len(pieces))]
	number := rng.Intn(100)
	return fmt.Sprintf("%s%s%d", style, piece, number)
}
