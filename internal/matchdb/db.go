// Package matchdb persists finished arena matches to a SQLite database,
// adapted from _examples/korjavin-virusgame/backend/storage.go's
// InitDB/SaveGame pattern.
package matchdb

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the underlying sql.DB with the match schema.
type DB struct {
	sql *sql.DB
}

// Match is one row of match history.
type Match struct {
	ID         string
	StartedAt  time.Time
	EndedAt    time.Time
	Width      int
	Height     int
	Player1    string
	Player2    string
	Winner     int // 1 or 2; 0 means a tie
	Turns      int
	Termination string
	Moves      []MoveRecord
}

// MoveRecord is one applied turn, recorded for replay/debugging.
type MoveRecord struct {
	Turn   int `json:"turn"`
	Player int `json:"player"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

// Open creates the database file's parent directory if needed, opens
// the SQLite file at path, and ensures the matches table exists.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("matchdb: creating directory %s: %w", dir, err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("matchdb: opening %s: %w", path, err)
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		started_at DATETIME,
		ended_at DATETIME,
		width INTEGER,
		height INTEGER,
		player1_name TEXT,
		player2_name TEXT,
		winner INTEGER,
		turns INTEGER,
		termination TEXT,
		moves_json TEXT
	);`
	if _, err := sqlDB.Exec(schema); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("matchdb: creating schema: %w", err)
	}

	return &DB{sql: sqlDB}, nil
}

// Close closes the underlying database handle.
func (d *DB) Close() error {
	return d.sql.Close()
}

// SaveMatch inserts one completed match.
func (d *DB) SaveMatch(m Match) error {
	movesJSON, err := json.Marshal(m.Moves)
	if err != nil {
		return fmt.Errorf("matchdb: marshaling move history: %w", err)
	}

	_, err = d.sql.Exec(`
		INSERT INTO matches (id, started_at, ended_at, width, height, player1_name, player2_name, winner, turns, termination, moves_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.StartedAt, m.EndedAt, m.Width, m.Height, m.Player1, m.Player2, m.Winner, m.Turns, m.Termination, string(movesJSON),
	)
	if err != nil {
		return fmt.Errorf("matchdb: saving match %s: %w", m.ID, err)
	}
	return nil
}

// ListMatches returns match history, most recent first.
func (d *DB) ListMatches() ([]Match, error) {
	rows, err := d.sql.Query(`
		SELECT id, started_at, ended_at, width, height, player1_name, player2_name, winner, turns, termination, moves_json
		FROM matches ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("matchdb: querying matches: %w", err)
	}
	defer rows.Close()

	var out []Match
	for rows.Next() {
		var m Match
		var movesJSON string
		if err := rows.Scan(&m.ID, &m.StartedAt, &m.EndedAt, &m.Width, &m.Height,
			&m.Player1, &m.Player2, &m.Winner, &m.Turns, &m.Termination, &movesJSON); err != nil {
			return nil, fmt.Errorf("matchdb: scanning match row: %w", err)
		}
		if err := json.Unmarshal([]byte(movesJSON), &m.Moves); err != nil {
			return nil, fmt.Errorf("matchdb: unmarshaling moves for match %s: %w", m.ID, err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
