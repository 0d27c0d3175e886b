package engine

import "github.com/nfmccrina/TuxedoCat/tuxmg"

// Piece values in centipawns.
const (
	PawnValue   = 100
	KnightValue = 300
	BishopValue = 300
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 10000
)

// Evaluate returns the static material balance in centipawns from the
// perspective of the side to move.
func Evaluate(b *tuxmg.Board) int {
	white := b.WhiteBitboards()
	black := b.BlackBitboards()

	score := PawnValue*(tuxmg.PopCount(white.Pawns)-tuxmg.PopCount(black.Pawns)) +
		KnightValue*(tuxmg.PopCount(white.Knights)-tuxmg.PopCount(black.Knights)) +
		BishopValue*(tuxmg.PopCount(white.Bishops)-tuxmg.PopCount(black.Bishops)) +
		RookValue*(tuxmg.PopCount(white.Rooks)-tuxmg.PopCount(black.Rooks)) +
		QueenValue*(tuxmg.PopCount(white.Queens)-tuxmg.PopCount(black.Queens)) +
		KingValue*(tuxmg.PopCount(white.Kings)-tuxmg.PopCount(black.Kings))

	if b.SideToMove() == tuxmg.White {
		return score
	}
	return -score
}
