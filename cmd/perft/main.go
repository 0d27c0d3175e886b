package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/slices"

	"github.com/nfmccrina/TuxedoCat/tuxmg"
)

func main() {
	fen := flag.String("fen", tuxmg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := tuxmg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		allMoves := board.GenerateMoves()
		counts := make(map[string]uint64, len(allMoves))
		sans := make([]string, 0, len(allMoves))
		var total uint64
		for _, m := range allMoves {
			var count uint64 = 1
			if *depth > 1 {
				board.Make(m)
				count = tuxmg.Perft(board, *depth-1)
				board.Unmake(m)
			}
			total += count
			san := tuxmg.GenerateSAN(board, m, allMoves)
			counts[san] = count
			sans = append(sans, san)
		}
		// Sort for stable output; SAN disambiguation keeps the labels unique.
		slices.Sort(sans)
		for _, san := range sans {
			fmt.Printf("%s: %d\n", san, counts[san])
		}
		fmt.Printf("\nMoves: %d\nTotal leaf nodes: %d\n", len(allMoves), total)
		return
	}

	start := time.Now()
	nodes := tuxmg.Perft(board, *depth)
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d in %s (%.0f nps)\n",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
}
