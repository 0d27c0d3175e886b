package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/nfmccrina/TuxedoCat/tuxmg"
)

var whitePiece = color.New(color.FgHiWhite, color.Bold)
var blackPiece = color.New(color.FgHiBlue, color.Bold)
var boardFrame = color.New(color.FgHiBlack)

var rankLetters = [7]byte{'.', 'p', 'n', 'b', 'r', 'q', 'k'}

// printBoard renders the position rank by rank with colored pieces, plus the
// side to move, castling rights and en-passant square.
func printBoard(b *tuxmg.Board) {
	for rank := 7; rank >= 0; rank-- {
		boardFrame.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			mask := tuxmg.SquareMask(rank*8 + file)
			r := b.RankAt(mask)
			if r == tuxmg.NoRank {
				boardFrame.Print(". ")
				continue
			}
			ch := rankLetters[r]
			if c, _ := b.ColorAt(mask); c == tuxmg.White {
				whitePiece.Printf("%c ", ch-'a'+'A')
			} else {
				blackPiece.Printf("%c ", ch)
			}
		}
		fmt.Println()
	}
	boardFrame.Println("  a b c d e f g h")

	ep := "-"
	if b.EnPassantTarget() != 0 {
		ep = tuxmg.AlgebraicFromMask(b.EnPassantTarget())
	}
	fmt.Printf("%s to move, castling %s, ep %s, halfmoves %d, move %d\n",
		b.SideToMove(), b.CastlingStatus(), ep, b.HalfmoveClock(), b.FullmoveNumber())
}
