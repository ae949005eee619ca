// Package protocol implements the line-oriented referee protocol that
// drives a filler bot over stdin/stdout: a one-time handshake followed
// by repeated Anfield/Piece turns, grounded on
// original_source/docker_image/solution/src/main.rs.
package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/korjavin/filler/internal/engine"
)

// ErrHandshake is returned when the first one or two lines from the
// referee don't identify which player we are.
var ErrHandshake = errors.New("protocol: handshake did not resolve a player role")

// ErrProtocol wraps any malformed or truncated turn: a missing header, a
// short board, a short piece grid, or a read failure mid-turn.
var ErrProtocol = errors.New("protocol: malformed turn")

// Driver reads the referee's handshake and per-turn input and writes
// replies, all via buffered stdio the caller owns.
type Driver struct {
	r *bufio.Reader
	w *bufio.Writer
}

// NewDriver wraps the given reader and writer.
func NewDriver(r *bufio.Reader, w *bufio.Writer) *Driver {
	return &Driver{r: r, w: w}
}

// Handshake reads up to two lines and resolves which role we're
// playing, following the "p1"/"p2" substring rule of spec.md §6.
func (d *Driver) Handshake() (engine.RolePair, error) {
	for i := 0; i < 2; i++ {
		line, err := d.r.ReadString('\n')
		if err != nil && line == "" {
			return engine.RolePair{}, fmt.Errorf("%w: %v", ErrHandshake, err)
		}
		switch {
		case strings.Contains(line, "p1"), strings.Contains(line, "[./filler_bot]"):
			return engine.RolePair{Our: '@', OurTerritory: 'a', Opp: '$', OppTerritory: 's'}, nil
		case strings.Contains(line, "p2"):
			return engine.RolePair{Our: '$', OurTerritory: 's', Opp: '@', OppTerritory: 'a'}, nil
		}
	}
	return engine.RolePair{}, ErrHandshake
}

// AwaitTurn blocks until a line starting with "Anfield" appears, or the
// input is exhausted (io.EOF surfaces unwrapped so the caller can exit
// cleanly at end of game).
func (d *Driver) AwaitTurn() (string, error) {
	for {
		line, err := d.r.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		if strings.HasPrefix(line, "Anfield") {
			return line, nil
		}
	}
}

// ReadTurn parses the board and piece that follow an "Anfield" header
// line already consumed by AwaitTurn.
func (d *Driver) ReadTurn(header string) (*engine.BoardSnapshot, engine.Piece, error) {
	w, h, err := parseDims(header, "Anfield")
	if err != nil {
		return nil, engine.Piece{}, err
	}

	// Separator line ("    0123..." column ruler) is discarded.
	if _, err := d.r.ReadString('\n'); err != nil {
		return nil, engine.Piece{}, fmt.Errorf("%w: reading board separator: %v", ErrProtocol, err)
	}

	board := &engine.BoardSnapshot{H: h, W: w, Rows: make([][]engine.Role, h)}
	for y := 0; y < h; y++ {
		line, err := d.r.ReadString('\n')
		if err != nil {
			return nil, engine.Piece{}, fmt.Errorf("%w: reading board row %d: %v", ErrProtocol, y, err)
		}
		line = strings.TrimRight(line, "\r\n")
		if len(line) < 4 {
			return nil, engine.Piece{}, fmt.Errorf("%w: board row %d shorter than the 4-char prefix", ErrProtocol, y)
		}
		row := make([]engine.Role, w)
		content := line[4:]
		for x := 0; x < w; x++ {
			if x < len(content) {
				row[x] = engine.Role(content[x])
			} else {
				row[x] = engine.Empty
			}
		}
		board.Rows[y] = row
	}

	pieceHeader, err := d.r.ReadString('\n')
	if err != nil {
		return nil, engine.Piece{}, fmt.Errorf("%w: reading piece header: %v", ErrProtocol, err)
	}
	if !strings.HasPrefix(pieceHeader, "Piece") {
		return nil, engine.Piece{}, fmt.Errorf("%w: expected Piece header, got %q", ErrProtocol, pieceHeader)
	}
	pw, ph, err := parseDims(pieceHeader, "Piece")
	if err != nil {
		return nil, engine.Piece{}, err
	}

	var offsets []engine.Pos
	for y := 0; y < ph; y++ {
		line, err := d.r.ReadString('\n')
		if err != nil {
			return nil, engine.Piece{}, fmt.Errorf("%w: reading piece row %d: %v", ErrProtocol, y, err)
		}
		line = strings.TrimRight(line, "\r\n")
		for x := 0; x < pw && x < len(line); x++ {
			if line[x] == 'O' {
				offsets = append(offsets, engine.Pos{Y: y, X: x})
			}
		}
	}

	return board, engine.Piece{Offsets: offsets}, nil
}

// parseDims extracts the two size integers from a "<kind> <w> <h>:"
// header line.
func parseDims(line, kind string) (w, h int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != kind {
		return 0, 0, fmt.Errorf("%w: malformed %s header %q", ErrProtocol, kind, line)
	}
	w, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s width %q: %v", ErrProtocol, kind, fields[1], err)
	}
	hs := strings.TrimSuffix(fields[2], ":")
	h, err = strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s height %q: %v", ErrProtocol, kind, hs, err)
	}
	return w, h, nil
}

// WriteReply writes the chosen anchor as "<x> <y>", or "0 0" when anchor
// is nil (forfeit), and flushes immediately.
func (d *Driver) WriteReply(anchor *engine.Anchor) error {
	var err error
	if anchor == nil {
		_, err = fmt.Fprintln(d.w, "0 0")
	} else {
		_, err = fmt.Fprintf(d.w, "%d %d\n", anchor.X, anchor.Y)
	}
	if err != nil {
		return fmt.Errorf("%w: writing reply: %v", ErrProtocol, err)
	}
	return d.w.Flush()
}
