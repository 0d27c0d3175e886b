package tuxmg

import "math/bits"

// File and rank border masks used when building the attack tables.
const (
	fileAMask uint64 = 0x0101010101010101
	fileHMask uint64 = 0x8080808080808080
	rank1Mask uint64 = 0x00000000000000FF
	rank8Mask uint64 = 0xFF00000000000000
)

// Jump tables: every square a knight or king reaches from each origin.
var knightMoves [64]uint64
var kingMoves [64]uint64

// pawnAttacks[color][sq] holds the squares a pawn of that color attacks
// from sq (captures only, not pushes).
var pawnAttacks [2][64]uint64

// Ray tables, one bitboard per square and compass direction, origin square
// excluded. Rook order: N, S, E, W. Bishop order: NE, NW, SE, SW. The
// rayGrows tables record, per direction, whether square indices increase
// along the ray; that decides which end of a blocker set is nearest.
var rookRays [64][4]uint64
var bishopRays [64][4]uint64

var rookRayGrows = [4]bool{true, false, true, false}
var bishopRayGrows = [4]bool{true, true, false, false}

// Slider lookup tables: for each square, the relevant (edge-trimmed) blocker
// mask and one precomputed reach bitboard per subset of that mask.
var rookBlockerMask [64]uint64
var bishopBlockerMask [64]uint64
var rookReachBySubset [64][]uint64
var bishopReachBySubset [64][]uint64

func init() {
	buildJumpTables()
	buildRayTables()
	buildSliderTables()
}

// buildJumpTables fills the knight, king and pawn-capture tables.
func buildJumpTables() {
	knightSteps := [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingSteps := [8][2]int{
		{0, 1}, {1, 1}, {1, 0}, {1, -1},
		{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}

	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		for _, st := range knightSteps {
			if f, r := file+st[0], rank+st[1]; f >= 0 && f < 8 && r >= 0 && r < 8 {
				knightMoves[sq] |= SquareMask(r*8 + f)
			}
		}
		for _, st := range kingSteps {
			if f, r := file+st[0], rank+st[1]; f >= 0 && f < 8 && r >= 0 && r < 8 {
				kingMoves[sq] |= SquareMask(r*8 + f)
			}
		}

		// Pawn captures as whole-board shifts of the origin bit, with the
		// wrapped file masked away.
		bit := SquareMask(sq)
		pawnAttacks[White][sq] = (bit << 7 &^ fileHMask) | (bit << 9 &^ fileAMask)
		pawnAttacks[Black][sq] = (bit >> 9 &^ fileHMask) | (bit >> 7 &^ fileAMask)
	}
}

// castRay collects the squares reached from sq by repeating one
// (fileStep, rankStep) step until the board edge.
func castRay(sq, fileStep, rankStep int) uint64 {
	var ray uint64
	f := sq%8 + fileStep
	r := sq/8 + rankStep
	for f >= 0 && f < 8 && r >= 0 && r < 8 {
		ray |= SquareMask(r*8 + f)
		f += fileStep
		r += rankStep
	}
	return ray
}

// buildRayTables fills the per-direction ray bitboards for both slider kinds.
func buildRayTables() {
	for sq := 0; sq < 64; sq++ {
		rookRays[sq] = [4]uint64{
			castRay(sq, 0, 1),  // N
			castRay(sq, 0, -1), // S
			castRay(sq, 1, 0),  // E
			castRay(sq, -1, 0), // W
		}
		bishopRays[sq] = [4]uint64{
			castRay(sq, 1, 1),   // NE
			castRay(sq, -1, 1),  // NW
			castRay(sq, 1, -1),  // SE
			castRay(sq, -1, -1), // SW
		}
	}
}

// buildSliderTables derives the blocker masks from the ray tables and
// enumerates every blocker subset into a reach table, indexed by packBits.
func buildSliderTables() {
	border := fileAMask | fileHMask | rank1Mask | rank8Mask

	for sq := 0; sq < 64; sq++ {
		// A blocker on the last square of a ray cannot shorten it, so each
		// rook ray is trimmed at its own far edge. Diagonal rays only end on
		// border squares, so one border trim covers all four.
		rookBlockerMask[sq] = rookRays[sq][0]&^rank8Mask |
			rookRays[sq][1]&^rank1Mask |
			rookRays[sq][2]&^fileHMask |
			rookRays[sq][3]&^fileAMask
		bishopBlockerMask[sq] = (bishopRays[sq][0] | bishopRays[sq][1] |
			bishopRays[sq][2] | bishopRays[sq][3]) &^ border

		rm := rookBlockerMask[sq]
		rookReachBySubset[sq] = make([]uint64, 1<<PopCount(rm))
		for i := range rookReachBySubset[sq] {
			rookReachBySubset[sq][i] = rookReach(sq, spreadBits(uint64(i), rm))
		}

		bm := bishopBlockerMask[sq]
		bishopReachBySubset[sq] = make([]uint64, 1<<PopCount(bm))
		for i := range bishopReachBySubset[sq] {
			bishopReachBySubset[sq][i] = bishopReach(sq, spreadBits(uint64(i), bm))
		}
	}
}

// packBits gathers the bits of x selected by mask into the low bits of the
// result, low mask bit first (a software PEXT).
func packBits(x, mask uint64) uint64 {
	var out uint64
	for i := 0; mask != 0; i++ {
		sq := popLSB(&mask)
		out |= (x >> uint(sq) & 1) << uint(i)
	}
	return out
}

// spreadBits deposits the low bits of x onto the squares selected by mask,
// the inverse of packBits (a software PDEP).
func spreadBits(x, mask uint64) uint64 {
	var out uint64
	for i := 0; mask != 0; i++ {
		sq := popLSB(&mask)
		out |= (x >> uint(i) & 1) << uint(sq)
	}
	return out
}

// ==========================
// Sliding reach
// ==========================

// nearestOnRay picks, from a non-empty set of blockers on one ray, the one
// closest to the ray's origin.
func nearestOnRay(blockerSet uint64, grows bool) uint64 {
	if grows {
		return blockerSet & -blockerSet
	}
	return SquareMask(MSB(blockerSet))
}

// slideFrom accumulates the four rays of one slider kind from sq, cutting
// each ray just past its first occupied square.
func slideFrom(rays *[64][4]uint64, grows *[4]bool, sq int, occ uint64) uint64 {
	var reach uint64
	for d := 0; d < 4; d++ {
		ray := rays[sq][d]
		if blockerSet := ray & occ; blockerSet != 0 {
			stop := LSB(nearestOnRay(blockerSet, grows[d]))
			ray &^= rays[stop][d]
		}
		reach |= ray
	}
	return reach
}

// rookReach returns the rook reach from sq under the given occupancy by
// walking the rays. Table construction uses it; the hot paths go through
// rookReachFast.
func rookReach(sq int, occ uint64) uint64 {
	return slideFrom(&rookRays, &rookRayGrows, sq, occ)
}

// bishopReach is the ray-walking bishop counterpart of rookReach.
func bishopReach(sq int, occ uint64) uint64 {
	return slideFrom(&bishopRays, &bishopRayGrows, sq, occ)
}

// rookReachFast looks the rook reach up from the precomputed subset table.
func rookReachFast(sq int, occ uint64) uint64 {
	return rookReachBySubset[sq][packBits(occ, rookBlockerMask[sq])]
}

// bishopReachFast looks the bishop reach up from the precomputed subset table.
func bishopReachFast(sq int, occ uint64) uint64 {
	return bishopReachBySubset[sq][packBits(occ, bishopBlockerMask[sq])]
}

// ==========================
// Attack queries
// ==========================

// IsSquareAttacked reports whether the given square mask is attacked by any
// piece of the side not to move.
func (b *Board) IsSquareAttacked(mask uint64) bool {
	sq := LSB(mask)
	if sq < 0 {
		return false
	}
	return b.attackedBy(sq, b.sideToMove.Other(), b.AllOccupancy())
}

// attackedBy reports whether side 'by' attacks square sq under the given
// occupancy. Every query runs outward from the target: a pawn of 'by' sits
// on a square the opposite color's capture table covers, the jump tables
// answer for knights and kings, and for sliders the blocker nearest to sq on
// each ray is tested against the matching attacker set.
func (b *Board) attackedBy(sq int, by Color, occ uint64) bool {
	if pawnAttacks[by.Other()][sq]&b.pawns[by] != 0 {
		return true
	}
	if knightMoves[sq]&b.knights[by] != 0 || kingMoves[sq]&b.kings[by] != 0 {
		return true
	}

	straight := b.rooks[by] | b.queens[by]
	diagonal := b.bishops[by] | b.queens[by]
	if straight == 0 && diagonal == 0 {
		return false
	}

	for d := 0; d < 4; d++ {
		if blockerSet := rookRays[sq][d] & occ; blockerSet != 0 {
			if nearestOnRay(blockerSet, rookRayGrows[d])&straight != 0 {
				return true
			}
		}
		if blockerSet := bishopRays[sq][d] & occ; blockerSet != 0 {
			if nearestOnRay(blockerSet, bishopRayGrows[d])&diagonal != 0 {
				return true
			}
		}
	}
	return false
}

// InCheck reports whether the specified color's king is currently in check.
func (b *Board) InCheck(color Color) bool {
	ks := LSB(b.kings[int(color)])
	if ks < 0 {
		return false
	}
	return b.attackedBy(ks, color.Other(), b.AllOccupancy())
}

// ==========================
// Move generation
// ==========================

// GenerateMoves returns every legal move for the side to move: pseudo-legal
// generation followed by the play/test-own-king/retract filter. The filter
// shares Make/Unmake with the search, so exact reversibility is load-bearing.
func (b *Board) GenerateMoves() []Move {
	pseudo := b.generatePseudoMoves()
	legal := pseudo[:0]
	us := b.sideToMove
	for _, m := range pseudo {
		b.Make(m)
		ks := LSB(b.kings[int(us)])
		if ks >= 0 && !b.attackedBy(ks, b.sideToMove, b.AllOccupancy()) {
			legal = append(legal, m)
		}
		b.Unmake(m)
	}
	return legal
}

// generatePseudoMoves produces moves obeying piece rules and blockers without
// the king-safety filter. Castling already carries its transit-square attack
// conditions because the retract filter only tests the king's final square.
func (b *Board) generatePseudoMoves() []Move {
	moves := make([]Move, 0, 64)
	us := b.sideToMove
	usIdx := int(us)
	themIdx := 1 - usIdx

	ownOcc := b.occupancy[usIdx]
	oppOcc := b.occupancy[themIdx]
	allOcc := ownOcc | oppOcc

	promoRanks := [4]PieceRank{Queen, Rook, Bishop, Knight}

	// Pawns
	pawns := b.pawns[usIdx]
	for pawns != 0 {
		from := popLSB(&pawns)
		fromMask := SquareMask(from)

		if us == White {
			one := from + 8
			if one < 64 && allOcc&SquareMask(one) == 0 {
				if one/8 == 7 {
					for _, pr := range promoRanks {
						moves = append(moves, b.newMove(fromMask, SquareMask(one), Pawn, NoRank, pr))
					}
				} else {
					moves = append(moves, b.newMove(fromMask, SquareMask(one), Pawn, NoRank, NoRank))
					if from/8 == 1 {
						two := from + 16
						if allOcc&SquareMask(two) == 0 {
							moves = append(moves, b.newMove(fromMask, SquareMask(two), Pawn, NoRank, NoRank))
						}
					}
				}
			}

			caps := pawnAttacks[White][from]
			capTargets := caps & oppOcc
			for capTargets != 0 {
				to := popLSB(&capTargets)
				toMask := SquareMask(to)
				capPiece := b.RankAt(toMask)
				if to/8 == 7 {
					for _, pr := range promoRanks {
						moves = append(moves, b.newMove(fromMask, toMask, Pawn, capPiece, pr))
					}
				} else {
					moves = append(moves, b.newMove(fromMask, toMask, Pawn, capPiece, NoRank))
				}
			}

			if b.enPassantTarget != 0 && caps&b.enPassantTarget != 0 {
				moves = append(moves, b.newMove(fromMask, b.enPassantTarget, Pawn, Pawn, NoRank))
			}
		} else {
			one := from - 8
			if one >= 0 && allOcc&SquareMask(one) == 0 {
				if one/8 == 0 {
					for _, pr := range promoRanks {
						moves = append(moves, b.newMove(fromMask, SquareMask(one), Pawn, NoRank, pr))
					}
				} else {
					moves = append(moves, b.newMove(fromMask, SquareMask(one), Pawn, NoRank, NoRank))
					if from/8 == 6 {
						two := from - 16
						if allOcc&SquareMask(two) == 0 {
							moves = append(moves, b.newMove(fromMask, SquareMask(two), Pawn, NoRank, NoRank))
						}
					}
				}
			}

			caps := pawnAttacks[Black][from]
			capTargets := caps & oppOcc
			for capTargets != 0 {
				to := popLSB(&capTargets)
				toMask := SquareMask(to)
				capPiece := b.RankAt(toMask)
				if to/8 == 0 {
					for _, pr := range promoRanks {
						moves = append(moves, b.newMove(fromMask, toMask, Pawn, capPiece, pr))
					}
				} else {
					moves = append(moves, b.newMove(fromMask, toMask, Pawn, capPiece, NoRank))
				}
			}

			if b.enPassantTarget != 0 && caps&b.enPassantTarget != 0 {
				moves = append(moves, b.newMove(fromMask, b.enPassantTarget, Pawn, Pawn, NoRank))
			}
		}
	}

	// Knights
	knights := b.knights[usIdx]
	for knights != 0 {
		from := popLSB(&knights)
		fromMask := SquareMask(from)
		targets := knightMoves[from] &^ ownOcc
		for targets != 0 {
			to := popLSB(&targets)
			toMask := SquareMask(to)
			moves = append(moves, b.newMove(fromMask, toMask, Knight, b.RankAt(toMask&oppOcc), NoRank))
		}
	}

	// Bishops
	bishops := b.bishops[usIdx]
	for bishops != 0 {
		from := popLSB(&bishops)
		fromMask := SquareMask(from)
		targets := bishopReachFast(from, allOcc) &^ ownOcc
		for targets != 0 {
			to := popLSB(&targets)
			toMask := SquareMask(to)
			moves = append(moves, b.newMove(fromMask, toMask, Bishop, b.RankAt(toMask&oppOcc), NoRank))
		}
	}

	// Rooks
	rooks := b.rooks[usIdx]
	for rooks != 0 {
		from := popLSB(&rooks)
		fromMask := SquareMask(from)
		targets := rookReachFast(from, allOcc) &^ ownOcc
		for targets != 0 {
			to := popLSB(&targets)
			toMask := SquareMask(to)
			moves = append(moves, b.newMove(fromMask, toMask, Rook, b.RankAt(toMask&oppOcc), NoRank))
		}
	}

	// Queens
	queens := b.queens[usIdx]
	for queens != 0 {
		from := popLSB(&queens)
		fromMask := SquareMask(from)
		targets := (rookReachFast(from, allOcc) | bishopReachFast(from, allOcc)) &^ ownOcc
		for targets != 0 {
			to := popLSB(&targets)
			toMask := SquareMask(to)
			moves = append(moves, b.newMove(fromMask, toMask, Queen, b.RankAt(toMask&oppOcc), NoRank))
		}
	}

	// King
	kingBB := b.kings[usIdx]
	if kingBB != 0 {
		from := bits.TrailingZeros64(kingBB)
		fromMask := SquareMask(from)
		targets := kingMoves[from] &^ ownOcc
		for targets != 0 {
			to := popLSB(&targets)
			toMask := SquareMask(to)
			moves = append(moves, b.newMove(fromMask, toMask, King, b.RankAt(toMask&oppOcc), NoRank))
		}

		// Castling: rights present, path empty, rook home, and neither the
		// king's start, transit nor end square attacked.
		them := us.Other()
		if us == White {
			if b.castlingRights&CastlingWhiteShort != 0 {
				if allOcc&(maskF1|maskG1) == 0 && b.rooks[White]&maskH1 != 0 &&
					!b.attackedBy(4, them, allOcc) && !b.attackedBy(5, them, allOcc) && !b.attackedBy(6, them, allOcc) {
					moves = append(moves, b.newMove(maskE1, maskG1, King, NoRank, NoRank))
				}
			}
			if b.castlingRights&CastlingWhiteLong != 0 {
				if allOcc&(maskD1|maskC1|0x02) == 0 && b.rooks[White]&maskA1 != 0 &&
					!b.attackedBy(4, them, allOcc) && !b.attackedBy(3, them, allOcc) && !b.attackedBy(2, them, allOcc) {
					moves = append(moves, b.newMove(maskE1, maskC1, King, NoRank, NoRank))
				}
			}
		} else {
			if b.castlingRights&CastlingBlackShort != 0 {
				if allOcc&(maskF8|maskG8) == 0 && b.rooks[Black]&maskH8 != 0 &&
					!b.attackedBy(60, them, allOcc) && !b.attackedBy(61, them, allOcc) && !b.attackedBy(62, them, allOcc) {
					moves = append(moves, b.newMove(maskE8, maskG8, King, NoRank, NoRank))
				}
			}
			if b.castlingRights&CastlingBlackLong != 0 {
				if allOcc&(maskD8|maskC8|SquareMask(57)) == 0 && b.rooks[Black]&maskA8 != 0 &&
					!b.attackedBy(60, them, allOcc) && !b.attackedBy(59, them, allOcc) && !b.attackedBy(58, them, allOcc) {
					moves = append(moves, b.newMove(maskE8, maskC8, King, NoRank, NoRank))
				}
			}
		}
	}

	return moves
}
