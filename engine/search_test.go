package engine_test

import (
	"strings"
	"testing"
	"time"

	"github.com/nfmccrina/TuxedoCat/engine"
	"github.com/nfmccrina/TuxedoCat/tuxmg"
)

// recordingLogger captures diagnostic lines for assertions.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Log(msg string) { l.lines = append(l.lines, msg) }

func isLegal(b *tuxmg.Board, m tuxmg.Move) bool {
	for _, legal := range b.GenerateMoves() {
		if legal == m {
			return true
		}
	}
	return false
}

func TestFindMoveReturnsLegalMoveWithinBudget(t *testing.T) {
	b := mustParse(t, tuxmg.FENStartPos)
	logger := &recordingLogger{}

	e := engine.New()
	e.SetLogger(logger)
	e.TimeControl = engine.TimeControl{Type: engine.TimePerMove, RemainingTime: 500}
	e.MaxSearchDepth = 3

	start := time.Now()
	m := e.FindMove(b)
	elapsed := time.Since(start)

	if m.To == 0 {
		t.Fatal("expected a move from the initial position")
	}
	if !isLegal(b, m) {
		t.Fatalf("returned move %s is not legal", m)
	}
	if elapsed > 3*time.Second {
		t.Fatalf("search took %s, expected well under the depth-3 bound", elapsed)
	}
	if e.NodeCount() == 0 {
		t.Fatal("node counter not incremented")
	}

	// One report per completed depth reaches the log sink as well.
	sawReport := false
	for _, line := range logger.lines {
		if strings.HasPrefix(line, "1 ") {
			sawReport = true
		}
	}
	if !sawReport {
		t.Fatalf("no depth-1 report line logged; lines: %v", logger.lines)
	}
}

func TestFindMoveFindsMateInOne(t *testing.T) {
	// Ra8 is mate; the interior convention scores it 1999999 + depth at the
	// root, far above any material swing.
	b := mustParse(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")

	e := engine.New()
	e.TimeControl = engine.TimeControl{Type: engine.TimePerMove, RemainingTime: 60000}
	e.MaxSearchDepth = 2

	m := e.FindMove(b)
	if got := m.String(); got != "a1a8" {
		t.Fatalf("mate in one: got %s want a1a8", got)
	}
}

func TestFindMovePrefersMaterial(t *testing.T) {
	// Capturing the undefended queen dominates every depth-1 evaluation.
	b := mustParse(t, "k7/8/8/3q4/4P3/8/8/K7 w - - 0 1")

	e := engine.New()
	e.TimeControl = engine.TimeControl{Type: engine.TimePerMove, RemainingTime: 0}
	e.MaxSearchDepth = 1

	m := e.FindMove(b)
	if got := m.String(); got != "e4d5" {
		t.Fatalf("queen capture: got %s want e4d5", got)
	}
}

func TestFindMoveReturnsSentinelWhenMated(t *testing.T) {
	// Fool's mate: White to move is checkmated.
	b := mustParse(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")

	e := engine.New()
	e.MaxSearchDepth = 1
	m := e.FindMove(b)
	if m.To != 0 {
		t.Fatalf("expected sentinel move, got %s", m)
	}
}

func TestRandomModeIsDeterministicPerSeed(t *testing.T) {
	fen := tuxmg.FENStartPos

	run := func(seed int64) string {
		b := mustParse(t, fen)
		e := engine.New()
		e.RandomMode = true
		e.SetRandomSeed(seed)
		e.TimeControl = engine.TimeControl{Type: engine.TimePerMove, RemainingTime: 0}
		e.MaxSearchDepth = 1
		return e.FindMove(b).String()
	}

	if run(42) != run(42) {
		t.Fatal("same seed must reproduce the same move")
	}
}

func TestGetGameResult(t *testing.T) {
	cases := []struct {
		fen  string
		want string
	}{
		// Fool's mate: Black mates.
		{"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", "0-1 {Black mates}"},
		// Back-rank mate: White mates.
		{"R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", "1-0 {White mates}"},
		// Queen stalemate.
		{"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", "1/2-1/2 {Stalemate}"},
		// Game still running.
		{tuxmg.FENStartPos, ""},
	}
	for _, c := range cases {
		b := mustParse(t, c.fen)
		if got := engine.GetGameResult(b); got != c.want {
			t.Fatalf("%q: got %q want %q", c.fen, got, c.want)
		}
	}
}

func TestGetRandomMoveIsLegal(t *testing.T) {
	b := mustParse(t, tuxmg.FENStartPos)
	e := engine.New()
	e.SetRandomSeed(7)
	for i := 0; i < 20; i++ {
		m := e.GetRandomMove(b)
		if !isLegal(b, m) {
			t.Fatalf("random move %s is not legal", m)
		}
	}

	mated := mustParse(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if m := e.GetRandomMove(mated); m.To != 0 {
		t.Fatalf("expected sentinel in mated position, got %s", m)
	}
}
