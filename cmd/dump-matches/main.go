// Command dump-matches prints match history from the arena's SQLite
// database, adapted from
// _examples/korjavin-virusgame/backend/cmd/dump-games/main.go.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/korjavin/filler/internal/matchdb"
)

func main() {
	dbPath := flag.String("db", "./data/matches.db", "path to the matches SQLite database")
	flag.Parse()

	if _, err := os.Stat(*dbPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "database not found at %s\n", *dbPath)
		os.Exit(1)
	}

	db, err := matchdb.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	matches, err := db.ListMatches()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list matches: %v\n", err)
		os.Exit(1)
	}

	for _, m := range matches {
		fmt.Printf("Match ID: %s\n", m.ID)
		fmt.Printf("Time: %s - %s\n", m.StartedAt.Format(time.RFC822), m.EndedAt.Format(time.RFC822))
		fmt.Printf("Board: %dx%d\n", m.Width, m.Height)
		fmt.Printf("Players: %s vs %s\n", m.Player1, m.Player2)
		fmt.Printf("Result: winner %d (%s), %d turns, %d moves recorded\n", m.Winner, m.Termination, m.Turns, len(m.Moves))
		fmt.Println("--------------------------------------------------")
	}
	fmt.Printf("Total matches found: %d\n", len(matches))
}
