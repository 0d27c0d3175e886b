package tuxmg_test

import (
	"testing"

	"github.com/nfmccrina/TuxedoCat/tuxmg"
)

func TestParseXBoardMove(t *testing.T) {
	b := mustParse(t, tuxmg.FENStartPos)
	m := tuxmg.ParseXBoardMove(b, "e2e4")
	if m.To == 0 {
		t.Fatal("e2e4 should parse as a legal move")
	}
	if m.From != tuxmg.SquareFromAlgebraic("e2") || m.To != tuxmg.SquareFromAlgebraic("e4") {
		t.Fatalf("bad coordinates: from %#x to %#x", m.From, m.To)
	}
	if m.Piece != tuxmg.Pawn {
		t.Fatalf("moving piece: got %v want pawn", m.Piece)
	}
	if m.Promotion != tuxmg.NoRank || m.Captured != tuxmg.NoRank {
		t.Fatalf("unexpected promotion %v or capture %v", m.Promotion, m.Captured)
	}
	if m.Color != tuxmg.White {
		t.Fatalf("move color: got %v want white", m.Color)
	}

	b.Make(m)
	if got, want := b.EnPassantTarget(), tuxmg.SquareFromAlgebraic("e3"); got != want {
		t.Fatalf("en passant after e2e4: got %#x want %#x", got, want)
	}
}

func TestParseXBoardMoveRejectsIllegal(t *testing.T) {
	b := mustParse(t, tuxmg.FENStartPos)
	bad := []string{
		"e2e5", // pawn cannot jump three ranks
		"e1e2", // own pawn in the way
		"d8h4", // wrong side's piece
		"e2",   // malformed
		"zzzz",
		"e2e4x",
		"e7e8q", // promotion string without a promotable pawn
		"",
	}
	for _, s := range bad {
		if m := tuxmg.ParseXBoardMove(b, s); m.To != 0 {
			t.Fatalf("ParseXBoardMove(%q): expected sentinel, got %s", s, m)
		}
	}
}

func TestParseXBoardMovePromotion(t *testing.T) {
	b := mustParse(t, "8/4P3/8/8/8/8/8/k6K w - - 0 1")
	m := tuxmg.ParseXBoardMove(b, "e7e8n")
	if m.To == 0 {
		t.Fatal("e7e8n should parse")
	}
	if m.Promotion != tuxmg.Knight {
		t.Fatalf("promotion rank: got %v want knight", m.Promotion)
	}
	// Plain e7e8 matches nothing: a promotion is mandatory on the last rank.
	if m := tuxmg.ParseXBoardMove(b, "e7e8"); m.To != 0 {
		t.Fatalf("e7e8 without promotion piece should be rejected, got %s", m)
	}
}

func TestParseXBoardMoveEnPassant(t *testing.T) {
	b := mustParse(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	m := tuxmg.ParseXBoardMove(b, "e5d6")
	if m.To == 0 {
		t.Fatal("e5d6 should parse as en passant")
	}
	if m.Captured != tuxmg.Pawn {
		t.Fatalf("captured rank: got %v want pawn", m.Captured)
	}
}

func TestMoveString(t *testing.T) {
	b := mustParse(t, tuxmg.FENStartPos)
	for _, notation := range []string{"e2e4", "g1f3", "b2b4"} {
		m := tuxmg.ParseXBoardMove(b, notation)
		if got := m.String(); got != notation {
			t.Fatalf("Move.String: got %q want %q", got, notation)
		}
	}
	var none tuxmg.Move
	if got := none.String(); got != "" {
		t.Fatalf("sentinel String: got %q want empty", got)
	}
}

func TestGenerateSANCastling(t *testing.T) {
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	all := b.GenerateMoves()
	short := findMove(t, b, "e1g1")
	long := findMove(t, b, "e1c1")
	if got := tuxmg.GenerateSAN(b, short, all); got != "0-0" {
		t.Fatalf("short castle SAN: got %q want 0-0", got)
	}
	if got := tuxmg.GenerateSAN(b, long, all); got != "0-0-0" {
		t.Fatalf("long castle SAN: got %q want 0-0-0", got)
	}
}

func TestGenerateSANPromotionAndCheck(t *testing.T) {
	b := mustParse(t, "8/4P3/8/8/8/8/8/k6K w - - 0 1")
	all := b.GenerateMoves()
	m := findMove(t, b, "e7e8q")
	if got := tuxmg.GenerateSAN(b, m, all); got != "e8=Q" {
		t.Fatalf("promotion SAN: got %q want e8=Q", got)
	}

	b = mustParse(t, "k7/8/8/8/8/8/8/1R5K w - - 0 1")
	all = b.GenerateMoves()
	m = findMove(t, b, "b1b8")
	if got := tuxmg.GenerateSAN(b, m, all); got != "Rb8+" {
		t.Fatalf("check SAN: got %q want Rb8+", got)
	}
}

func TestGenerateSANEnPassant(t *testing.T) {
	b := mustParse(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	all := b.GenerateMoves()
	m := findMove(t, b, "e5d6")
	if got := tuxmg.GenerateSAN(b, m, all); got != "exd6e.p" {
		t.Fatalf("en passant SAN: got %q want exd6e.p", got)
	}
}

func TestGenerateSANDisambiguation(t *testing.T) {
	// Knights on a1 and e1 can both reach c2: file disambiguation.
	b := mustParse(t, "k7/8/8/8/8/8/8/N3N2K w - - 0 1")
	all := b.GenerateMoves()
	m := findMove(t, b, "a1c2")
	if got := tuxmg.GenerateSAN(b, m, all); got != "Nac2" {
		t.Fatalf("file disambiguation: got %q want Nac2", got)
	}

	// Rooks on a1 and a5 can both reach a3: rank disambiguation.
	b = mustParse(t, "7k/8/8/R7/8/8/8/R6K w - - 0 1")
	all = b.GenerateMoves()
	m = findMove(t, b, "a1a3")
	if got := tuxmg.GenerateSAN(b, m, all); got != "R1a3" {
		t.Fatalf("rank disambiguation: got %q want R1a3", got)
	}

	// A lone knight needs no disambiguation.
	b = mustParse(t, tuxmg.FENStartPos)
	all = b.GenerateMoves()
	m = findMove(t, b, "g1f3")
	if got := tuxmg.GenerateSAN(b, m, all); got != "Nf3" {
		t.Fatalf("plain knight move: got %q want Nf3", got)
	}
}

func TestGenerateSANCapture(t *testing.T) {
	b := mustParse(t, "4k3/8/r7/8/8/8/8/R3K3 w - - 0 1")
	all := b.GenerateMoves()
	m := findMove(t, b, "a1a6")
	if got := tuxmg.GenerateSAN(b, m, all); got != "Rxa6" {
		t.Fatalf("rook capture SAN: got %q want Rxa6", got)
	}
}
