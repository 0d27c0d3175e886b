package tuxmg

import (
	"fmt"
	"io"
)

// Perft counts leaf nodes of the move tree by recursive Make/Unmake without
// evaluation. At depth 1 (or below) it returns the move count directly.
func Perft(b *Board, depth int) uint64 {
	moves := b.GenerateMoves()
	if depth <= 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.Make(m)
		nodes += Perft(b, depth-1)
		b.Unmake(m)
	}
	return nodes
}

// Divide writes the SAN-labelled leaf count under each root move, followed by
// the move and node totals.
func Divide(b *Board, depth int, w io.Writer) {
	allMoves := b.GenerateMoves()
	var total uint64

	for _, m := range allMoves {
		var count uint64 = 1
		if depth > 1 {
			b.Make(m)
			count = Perft(b, depth-1)
			b.Unmake(m)
		}
		total += count
		fmt.Fprintf(w, "%s: %d\n", GenerateSAN(b, m, allMoves), count)
	}

	fmt.Fprintf(w, "\nMoves: %d\nTotal leaf nodes: %d\n", len(allMoves), total)
}
