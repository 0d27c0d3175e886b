package engine

import (
	"math/rand"

	"github.com/nfmccrina/TuxedoCat/tuxmg"
)

// IsGameOver reports whether the side to move has no legal moves.
func IsGameOver(b *tuxmg.Board) bool {
	return len(b.GenerateMoves()) == 0
}

// GetGameResult returns the xboard result string for a finished game, or ""
// while the game is still in progress. Mate and stalemate are distinguished
// by the attack query on the side-to-move's king.
func GetGameResult(b *tuxmg.Board) string {
	if !IsGameOver(b) {
		return ""
	}
	if b.IsSquareAttacked(b.KingMask(b.SideToMove())) {
		if b.SideToMove() == tuxmg.Black {
			return "1-0 {White mates}"
		}
		return "0-1 {Black mates}"
	}
	return "1/2-1/2 {Stalemate}"
}

// GetRandomMove returns a uniformly random legal move, or the zero-target
// sentinel when none exists.
func (e *Engine) GetRandomMove(b *tuxmg.Board) tuxmg.Move {
	availableMoves := b.GenerateMoves()
	if len(availableMoves) == 0 {
		return tuxmg.Move{}
	}
	rng := e.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(e.clock.Now().UnixNano()))
	}
	return availableMoves[rng.Intn(len(availableMoves))]
}
