package tuxmg_test

import (
	"testing"

	"github.com/nfmccrina/TuxedoCat/tuxmg"
)

var roundTripFENs = []string{
	tuxmg.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	"8/8/8/8/8/8/4K2r/4k3 b - - 0 1",
}

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range roundTripFENs {
		b, err := tuxmg.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := b.ToFEN(); got != fen {
			t.Fatalf("round trip mismatch: got %q want %q", got, fen)
		}
	}
}

func TestParseFENStartPos(t *testing.T) {
	b, err := tuxmg.ParseFEN(tuxmg.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	if b.SideToMove() != tuxmg.White {
		t.Fatalf("side to move: got %v want white", b.SideToMove())
	}
	if b.CastlingStatus().String() != "KQkq" {
		t.Fatalf("castling: got %q want KQkq", b.CastlingStatus().String())
	}
	if b.EnPassantTarget() != 0 {
		t.Fatalf("en passant: got %#x want 0", b.EnPassantTarget())
	}
	if b.FullmoveNumber() != 1 {
		t.Fatalf("fullmove: got %d want 1", b.FullmoveNumber())
	}
	white := b.WhiteBitboards()
	black := b.BlackBitboards()
	if tuxmg.PopCount(white.All) != 16 || tuxmg.PopCount(black.All) != 16 {
		t.Fatalf("occupancy counts: got %d/%d want 16/16",
			tuxmg.PopCount(white.All), tuxmg.PopCount(black.All))
	}
	if white.Pawns != 0x000000000000FF00 {
		t.Fatalf("white pawns: got %#x", white.Pawns)
	}
	if !b.Validate() {
		t.Fatal("start position failed Validate")
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPX/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",
	}
	for _, fen := range bad {
		if _, err := tuxmg.ParseFEN(fen); err == nil {
			t.Fatalf("ParseFEN(%q): expected error, got none", fen)
		}
	}
}
