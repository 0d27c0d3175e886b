package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/nfmccrina/TuxedoCat/tuxmg"
)

// Score constants. An interior node with no moves while in check scores
// interiorScoreBase minus the remaining depth.
const (
	rootScoreFloor    = -3000000
	interiorScoreBase = -1999999
)

// Engine bundles the state of one search context: time control, depth limit,
// randomisation, the depth-indexed principal variation and the node counter.
// It is not safe for concurrent use; the search is single-threaded.
type Engine struct {
	TimeControl    TimeControl
	MaxSearchDepth int
	RandomMode     bool

	clock  Clock
	logger Logger
	rng    *rand.Rand

	// pv is indexed by plies remaining: the root move of a depth-D iteration
	// lives at slot D-1 and the deepest line at slot 0.
	pv        []string
	nodeCount uint64
}

// New returns an engine with the default configuration: conventional time
// control 40 moves / 30000 ms, no increment, effectively unlimited depth.
func New() *Engine {
	return &Engine{
		TimeControl: TimeControl{
			Type:            Conventional,
			MovesPerControl: 40,
			RemainingTime:   30000,
		},
		MaxSearchDepth: 10000,
		clock:          systemClock{},
		logger:         NopLogger{},
	}
}

// SetClock injects the wall-clock source used for time budgeting.
func (e *Engine) SetClock(c Clock) { e.clock = c }

// SetLogger injects the diagnostic log sink.
func (e *Engine) SetLogger(l Logger) { e.logger = l }

// SetRandomSeed fixes the seed of the score-perturbation source. Without it
// each search seeds from the clock and output is not reproducible.
func (e *Engine) SetRandomSeed(seed int64) { e.rng = rand.New(rand.NewSource(seed)) }

// NodeCount returns the number of nodes visited by the last search.
func (e *Engine) NodeCount() uint64 { return e.nodeCount }

// FindMove runs an iterative-deepening negamax search and returns the best
// move found. When the side to move has no legal moves the returned move has
// a zero target; the driver distinguishes mate from stalemate.
//
// One report line per completed depth is written to standard output in the
// form "depth score centiseconds nodes pv...", the PV listed from the root
// slot down.
func (e *Engine) FindMove(b *tuxmg.Board) tuxmg.Move {
	e.nodeCount = 0
	e.pv = e.pv[:0]

	rng := e.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(e.clock.Now().UnixNano()))
	}

	availableTime := e.TimeControl.budgetForMove(b.FullmoveNumber())

	var bestMove tuxmg.Move
	var leafNodesAtCurrentDepth, leafNodesAtPreviousDepth uint64
	var branchingFactorSum, effectiveBranchingFactor float64
	depth := 1

	start := e.clock.Now()

	for {
		max := rootScoreFloor
		bestMove = tuxmg.Move{}
		nodeCountAtPreviousDepth := e.nodeCount
		leafNodesAtPreviousDepth = leafNodesAtCurrentDepth

		availableMoves := b.GenerateMoves()
		if len(availableMoves) == 0 {
			break
		}

		e.pv = append(e.pv, "")
		for i := 0; i < depth; i++ {
			e.pv[i] = ""
		}
		pvBackup := make([]string, depth)

		for _, m := range availableMoves {
			b.Make(m)
			e.nodeCount++

			copy(pvBackup, e.pv[:depth])
			currentScore := -e.negamax(b, depth-1)

			b.Unmake(m)

			if e.RandomMode {
				currentScore += rng.Intn(21) - 10
			}

			if currentScore > max {
				e.pv[depth-1] = m.String()
				copy(pvBackup, e.pv[:depth])
				max = currentScore
				bestMove = m
			} else {
				copy(e.pv[:depth], pvBackup)
			}
		}

		leafNodesAtCurrentDepth = e.nodeCount - nodeCountAtPreviousDepth

		// Effective branching factor: running mean of the per-depth leaf
		// ratios. The depth-1 term is a raw leaf count; the estimate is a
		// heuristic, not a normalised quantity.
		if leafNodesAtPreviousDepth == 0 {
			branchingFactorSum += float64(leafNodesAtCurrentDepth)
			effectiveBranchingFactor = branchingFactorSum
		} else {
			branchingFactorSum += float64(leafNodesAtCurrentDepth) / float64(leafNodesAtPreviousDepth)
			effectiveBranchingFactor = branchingFactorSum / float64(depth)
		}
		estimatedLeafNodes := uint64(float64(leafNodesAtCurrentDepth) * effectiveBranchingFactor)

		msecs := e.clock.Now().Sub(start).Milliseconds()

		e.logger.Log(fmt.Sprintf("Search depth: %d, node count: %d, elapsed time: %dms, nps: %f",
			depth, e.nodeCount, msecs, float64(e.nodeCount)/(float64(msecs)/1000.0)))

		timeRequiredForNextIteration := int64(float64(e.nodeCount+estimatedLeafNodes) /
			(float64(e.nodeCount) / (float64(msecs) / 10.0)))

		e.logger.Log(fmt.Sprintf("Leaf nodes at next depth: %d, estimated time for search at next depth: %d, allocated search time: %d",
			estimatedLeafNodes, timeRequiredForNextIteration, availableTime))

		var report strings.Builder
		fmt.Fprintf(&report, "%d %d %d %d", depth, max, msecs/10, e.nodeCount)
		for i := len(e.pv) - 1; i >= 0; i-- {
			report.WriteByte(' ')
			report.WriteString(e.pv[i])
		}
		fmt.Println(report.String())
		e.logger.Log(report.String())

		if msecs/10+timeRequiredForNextIteration >= int64(availableTime) {
			break
		}
		depth++
		if depth > e.MaxSearchDepth {
			break
		}
	}

	e.pv = nil
	return bestMove
}

// negamax is a plain depth-first negamax: no alpha-beta, no move ordering.
// An empty move list scores 0 when the side to move is not in check
// (stalemate) and interiorScoreBase - depth when it is.
func (e *Engine) negamax(b *tuxmg.Board, depth int) int {
	if depth == 0 {
		return Evaluate(b)
	}

	max := interiorScoreBase
	availableMoves := b.GenerateMoves()

	if len(availableMoves) == 0 {
		if !b.IsSquareAttacked(b.KingMask(b.SideToMove())) {
			return 0
		}
		return max - depth
	}

	pvBackup := make([]string, depth)
	for _, m := range availableMoves {
		b.Make(m)
		e.nodeCount++

		copy(pvBackup, e.pv[:depth])
		currentScore := -e.negamax(b, depth-1)

		b.Unmake(m)

		if currentScore > max {
			e.pv[depth-1] = m.String()
			copy(pvBackup, e.pv[:depth])
			max = currentScore
		} else {
			copy(e.pv[:depth], pvBackup)
		}
	}

	return max
}
