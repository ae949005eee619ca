package protocol

import (
	"bufio"
	"strings"
	"testing"

	"github.com/korjavin/filler/internal/engine"
)

func newDriver(input string) (*Driver, *strings.Builder) {
	var out strings.Builder
	d := NewDriver(bufio.NewReader(strings.NewReader(input)), bufio.NewWriter(&out))
	return d, &out
}

func TestHandshakeP1(t *testing.T) {
	d, _ := newDriver("$$$ game p1 $$$\n")
	roles, err := d.Handshake()
	if err != nil {
		t.Fatalf("Handshake returned error: %v", err)
	}
	if roles.Our != '@' || roles.OurTerritory != 'a' {
		t.Fatalf("roles = %+v, want p1 role pair", roles)
	}
}

func TestHandshakeP2(t *testing.T) {
	d, _ := newDriver("$$$ game p2 $$$\n")
	roles, err := d.Handshake()
	if err != nil {
		t.Fatalf("Handshake returned error: %v", err)
	}
	if roles.Our != '$' || roles.OurTerritory != 's' {
		t.Fatalf("roles = %+v, want p2 role pair", roles)
	}
}

func TestHandshakeFillerBotInvocation(t *testing.T) {
	d, _ := newDriver("$$$ exec [./filler_bot] $$$\n")
	roles, err := d.Handshake()
	if err != nil {
		t.Fatalf("Handshake returned error: %v", err)
	}
	if roles.Our != '@' {
		t.Fatalf("roles = %+v, want p1 role pair for the self-invocation line", roles)
	}
}

func TestHandshakeFailsWithoutRoleMarker(t *testing.T) {
	d, _ := newDriver("nothing useful here\nstill nothing\n")
	if _, err := d.Handshake(); err == nil {
		t.Fatal("expected ErrHandshake, got nil")
	}
}

func TestReadTurnParsesBoardAndPiece(t *testing.T) {
	input := "Anfield 5 3:\n" +
		"    0123456789\n" +
		"0000.....\n" +
		"0001..@..\n" +
		"0002.....\n" +
		"Piece 2 1:\n" +
		".O\n"
	d, _ := newDriver(input)

	header, err := d.AwaitTurn()
	if err != nil {
		t.Fatalf("AwaitTurn: %v", err)
	}
	board, piece, err := d.ReadTurn(header)
	if err != nil {
		t.Fatalf("ReadTurn: %v", err)
	}
	if board.W != 5 || board.H != 3 {
		t.Fatalf("board dims = %dx%d, want 5x3", board.W, board.H)
	}
	if board.Rows[1][2] != '@' {
		t.Fatalf("board.Rows[1][2] = %q, want '@'", board.Rows[1][2])
	}
	if len(piece.Offsets) != 1 || piece.Offsets[0] != (engine.Pos{Y: 0, X: 1}) {
		t.Fatalf("piece offsets = %v, want [{0 1}]", piece.Offsets)
	}
}

func TestReadTurnRejectsMissingPieceHeader(t *testing.T) {
	input := "Anfield 3 1:\n" +
		"    012\n" +
		"0000...\n" +
		"not a piece header\n"
	d, _ := newDriver(input)
	header, err := d.AwaitTurn()
	if err != nil {
		t.Fatalf("AwaitTurn: %v", err)
	}
	if _, _, err := d.ReadTurn(header); err == nil {
		t.Fatal("expected ErrProtocol for a missing Piece header, got nil")
	}
}

func TestAwaitTurnSkipsNonAnfieldLines(t *testing.T) {
	input := "p1\nsome chatter\nmore chatter\nAnfield 1 1:\n"
	d, _ := newDriver(input)
	header, err := d.AwaitTurn()
	if err != nil {
		t.Fatalf("AwaitTurn: %v", err)
	}
	if !strings.HasPrefix(header, "Anfield") {
		t.Fatalf("header = %q, want an Anfield line", header)
	}
}

func TestWriteReplyFormatsAnchor(t *testing.T) {
	d, out := newDriver("")
	if err := d.WriteReply(&engine.Anchor{Y: 7, X: 3}); err != nil {
		t.Fatalf("WriteReply: %v", err)
	}
	if got := out.String(); got != "3 7\n" {
		t.Fatalf("reply = %q, want %q", got, "3 7\n")
	}
}

func TestWriteReplyFormatsForfeit(t *testing.T) {
	d, out := newDriver("")
	if err := d.WriteReply(nil); err != nil {
		t.Fatalf("WriteReply: %v", err)
	}
	if got := out.String(); got != "0 0\n" {
		t.Fatalf("reply = %q, want %q", got, "0 0\n")
	}
}
