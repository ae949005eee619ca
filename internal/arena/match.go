package arena

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/korjavin/filler/internal/engine"
	"github.com/korjavin/filler/internal/matchdb"
)

// maxTurnsFactor bounds a match's length relative to board area, so a
// pair of bots that only ever forfeit can't hang the arena forever.
const maxTurnsFactor = 4

// bot is one spawned filler-bot subprocess and the pipes to talk to it.
type bot struct {
	cmd    *exec.Cmd
	stdin  *bufio.Writer
	stdout *bufio.Reader
	roles  engine.RolePair
	name   string
}

func spawnBot(ctx context.Context, path string, player int, roles engine.RolePair, name string) (*bot, error) {
	cmd := exec.CommandContext(ctx, path)
	stdinPipe, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("arena: stdin pipe for %s: %w", name, err)
	}
	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("arena: stdout pipe for %s: %w", name, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("arena: starting %s: %w", name, err)
	}

	b := &bot{
		cmd:    cmd,
		stdin:  bufio.NewWriter(stdinPipe),
		stdout: bufio.NewReader(stdoutPipe),
		roles:  roles,
		name:   name,
	}
	handshakeLine := "p2\n"
	if player == 1 {
		handshakeLine = "p1\n"
	}
	if _, err := b.stdin.WriteString(handshakeLine); err != nil {
		return nil, fmt.Errorf("arena: handshake to %s: %w", name, err)
	}
	if err := b.stdin.Flush(); err != nil {
		return nil, fmt.Errorf("arena: flushing handshake to %s: %w", name, err)
	}
	return b, nil
}

// sendTurn writes the Anfield/Piece frame and returns the bot's claimed
// anchor. A nil anchor means the bot replied "0 0" (forfeit).
func (b *bot) sendTurn(board *Board, piece engine.Piece) (*engine.Anchor, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Anfield %d %d:\n", board.Width(), board.Height())
	sb.WriteString(board.Render())
	fmt.Fprintf(&sb, "Piece %d %d:\n", pieceWidth(piece), pieceHeight(piece))
	sb.WriteString(renderPiece(piece))

	if _, err := b.stdin.WriteString(sb.String()); err != nil {
		return nil, fmt.Errorf("arena: writing turn to %s: %w", b.name, err)
	}
	if err := b.stdin.Flush(); err != nil {
		return nil, fmt.Errorf("arena: flushing turn to %s: %w", b.name, err)
	}

	line, err := b.stdout.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("arena: reading reply from %s: %w", b.name, err)
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nil, fmt.Errorf("arena: malformed reply from %s: %q", b.name, line)
	}
	x, errX := strconv.Atoi(fields[0])
	y, errY := strconv.Atoi(fields[1])
	if errX != nil || errY != nil {
		return nil, fmt.Errorf("arena: non-integer reply from %s: %q", b.name, line)
	}
	if x == 0 && y == 0 {
		return nil, nil
	}
	return &engine.Anchor{Y: y, X: x}, nil
}

func (b *bot) close() {
	b.stdin.Flush()
	_ = b.cmd.Process.Kill()
	_ = b.cmd.Wait()
}

func pieceWidth(p engine.Piece) int {
	w := 0
	for _, o := range p.Offsets {
		if o.X+1 > w {
			w = o.X + 1
		}
	}
	return w
}

func pieceHeight(p engine.Piece) int {
	h := 0
	for _, o := range p.Offsets {
		if o.Y+1 > h {
			h = o.Y + 1
		}
	}
	return h
}

func renderPiece(p engine.Piece) string {
	w, h := pieceWidth(p), pieceHeight(p)
	grid := make([][]byte, h)
	for y := range grid {
		row := make([]byte, w)
		for x := range row {
			row[x] = '.'
		}
		grid[y] = row
	}
	for _, o := range p.Offsets {
		grid[o.Y][o.X] = 'O'
	}
	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Match plays two filler-bot subprocesses against each other on a
// single authoritative board.
type Match struct {
	ID          string
	board       *Board
	bag         *PieceBag
	bots        [2]*bot
	broadcaster *Broadcaster
	forfeits    [2]int
}

// NewMatch spawns both bot subprocesses and seeds the board.
func NewMatch(ctx context.Context, id, botPath string, w, h int, p1Name, p2Name string, broadcaster *Broadcaster) (*Match, error) {
	p1Roles := engine.RolePair{Our: '@', OurTerritory: 'a', Opp: '$', OppTerritory: 's'}
	p2Roles := engine.RolePair{Our: '$', OurTerritory: 's', Opp: '@', OppTerritory: 'a'}

	b1, err := spawnBot(ctx, botPath, 1, p1Roles, p1Name)
	if err != nil {
		return nil, err
	}
	b2, err := spawnBot(ctx, botPath, 2, p2Roles, p2Name)
	if err != nil {
		b1.close()
		return nil, err
	}

	return &Match{
		ID:          id,
		board:       NewBoard(w, h, p1Roles, p2Roles),
		bag:         NewPieceBag(),
		bots:        [2]*bot{b1, b2},
		broadcaster: broadcaster,
	}, nil
}

// Result is the outcome of a finished match, ready to hand to
// internal/matchdb.
type Result struct {
	Winner      int // 1, 2, or 0 for a tie
	Turns       int
	Termination string
	Moves       []matchdb.MoveRecord
}

// Run alternates turns until both players forfeit in a row or the turn
// cap is hit, broadcasting each applied move and returning the final
// result. The bot subprocesses are killed on return.
func (m *Match) Run() Result {
	defer m.bots[0].close()
	defer m.bots[1].close()

	maxTurns := m.board.Width() * m.board.Height() * maxTurnsFactor
	var moves []matchdb.MoveRecord
	turn := 0
	consecutiveForfeits := 0

	for ; turn < maxTurns; turn++ {
		playerIdx := turn % 2
		b := m.bots[playerIdx]
		piece := m.bag.Next()

		anchor, err := b.sendTurn(m.board, piece)
		if err != nil {
			return m.finish(moves, turn, fmt.Sprintf("protocol error from player %d: %v", playerIdx+1, err))
		}

		if anchor == nil {
			consecutiveForfeits++
			if m.broadcaster != nil {
				m.broadcaster.Publish(Event{MatchID: m.ID, Turn: turn, Player: playerIdx + 1, Forfeit: true})
			}
			if consecutiveForfeits >= 2 {
				return m.finish(moves, turn+1, "both players forfeited")
			}
			continue
		}
		consecutiveForfeits = 0

		if err := m.board.Apply(piece, *anchor, b.roles); err != nil {
			m.forfeits[playerIdx]++
			if m.broadcaster != nil {
				m.broadcaster.Publish(Event{MatchID: m.ID, Turn: turn, Player: playerIdx + 1, Forfeit: true})
			}
			continue
		}

		moves = append(moves, matchdb.MoveRecord{Turn: turn, Player: playerIdx + 1, X: anchor.X, Y: anchor.Y})
		if m.broadcaster != nil {
			m.broadcaster.Publish(Event{MatchID: m.ID, Turn: turn, Player: playerIdx + 1, X: anchor.X, Y: anchor.Y})
		}
	}

	return m.finish(moves, turn, "turn limit reached")
}

func (m *Match) finish(moves []matchdb.MoveRecord, turns int, termination string) Result {
	p1Roles := m.bots[0].roles
	p2Roles := m.bots[1].roles
	t1 := m.board.Territory(p1Roles)
	t2 := m.board.Territory(p2Roles)

	winner := 0
	switch {
	case t1 > t2:
		winner = 1
	case t2 > t1:
		winner = 2
	}

	if m.broadcaster != nil {
		m.broadcaster.Publish(Event{MatchID: m.ID, Winner: winner, Done: true})
	}
	return Result{Winner: winner, Turns: turns, Termination: termination, Moves: moves}
}
