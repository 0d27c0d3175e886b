package tuxmg

import "math/bits"

// LSB returns the index (0-63) of the least significant set bit of the mask,
// -1 if the mask is empty.
func LSB(mask uint64) int {
	if mask == 0 {
		return -1
	}
	return bits.TrailingZeros64(mask)
}

// MSB returns the index (0-63) of the most significant set bit of the mask,
// -1 if the mask is empty.
func MSB(mask uint64) int {
	if mask == 0 {
		return -1
	}
	return 63 - bits.LeadingZeros64(mask)
}

// PopCount returns the number of set bits in the mask.
func PopCount(mask uint64) int { return bits.OnesCount64(mask) }

// SquareMask returns a bitboard with only the given square's bit set.
func SquareMask(sq int) uint64 { return uint64(1) << uint(sq) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}

// FileOf returns the file letter ('a'-'h') of a single-square mask.
// Behaviour on multi-bit or empty input is undefined.
func FileOf(mask uint64) byte { return 'a' + byte(LSB(mask)%8) }

// RankOf returns the rank digit ('1'-'8') of a single-square mask.
// Behaviour on multi-bit or empty input is undefined.
func RankOf(mask uint64) byte { return '1' + byte(LSB(mask)/8) }

// SquareFromAlgebraic converts a coordinate like "e4" to a single-square
// mask, 0 if the coordinate is malformed.
func SquareFromAlgebraic(s string) uint64 {
	if len(s) != 2 {
		return 0
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0
	}
	return SquareMask(int(rank-'1')*8 + int(file-'a'))
}

// AlgebraicFromMask converts a single-square mask to its coordinate.
func AlgebraicFromMask(mask uint64) string {
	return string([]byte{FileOf(mask), RankOf(mask)})
}
