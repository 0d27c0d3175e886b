package tuxmg

import (
	"errors"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN character to its color and rank.
func pieceFromChar(ch rune) (Color, PieceRank) {
	switch ch {
	case 'P':
		return White, Pawn
	case 'N':
		return White, Knight
	case 'B':
		return White, Bishop
	case 'R':
		return White, Rook
	case 'Q':
		return White, Queen
	case 'K':
		return White, King
	case 'p':
		return Black, Pawn
	case 'n':
		return Black, Knight
	case 'b':
		return Black, Bishop
	case 'r':
		return Black, Rook
	case 'q':
		return Black, Queen
	case 'k':
		return Black, King
	default:
		return White, NoRank
	}
}

// charFromPiece converts a color and rank to the FEN character representation.
func charFromPiece(c Color, r PieceRank) byte {
	letters := [7]byte{'?', 'p', 'n', 'b', 'r', 'q', 'k'}
	ch := letters[r]
	if c == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// ParseFEN parses a FEN string and returns a new Board set up to that position.
// Returns an error if the FEN is invalid or cannot be parsed.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("invalid FEN: not enough fields")
	}

	board := &Board{fullmoveNumber: 1}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("invalid FEN: incorrect number of ranks")
	}

	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, errors.New("invalid FEN: empty rank description")
		}
		rankIndex := 7 - i // first FEN rank is rank 8
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			color, rank := pieceFromChar(ch)
			if rank == NoRank {
				return nil, errors.New("invalid FEN: unrecognized piece character")
			}
			if file >= 8 {
				return nil, errors.New("invalid FEN: too many squares in rank")
			}
			*board.pieceBB(color, rank) |= SquareMask(rankIndex*8 + file)
			file++
		}
		if file != 8 {
			return nil, errors.New("invalid FEN: rank does not have 8 columns")
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		board.sideToMove = White
	case "b":
		board.sideToMove = Black
	default:
		return nil, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				board.castlingRights |= CastlingWhiteShort
			case 'Q':
				board.castlingRights |= CastlingWhiteLong
			case 'k':
				board.castlingRights |= CastlingBlackShort
			case 'q':
				board.castlingRights |= CastlingBlackLong
			default:
				return nil, errors.New("invalid FEN: invalid castling rights character")
			}
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq := SquareFromAlgebraic(fields[3])
		if sq == 0 {
			return nil, errors.New("invalid FEN: invalid en passant square")
		}
		board.enPassantTarget = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, errors.New("invalid FEN: halfmove clock is not a number")
		}
		board.halfmoveClock = halfmove
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, errors.New("invalid FEN: fullmove number is not a number")
		}
		board.fullmoveNumber = fullmove
	}

	board.updateOccupancy()
	return board, nil
}

// ToFEN produces the FEN string representation of the board's current state.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			mask := SquareMask(rank*8 + file)
			rankAt := b.RankAt(mask)
			if rankAt == NoRank {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			color, _ := b.ColorAt(mask)
			sb.WriteByte(charFromPiece(color, rankAt))
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	sb.WriteString(b.castlingRights.String())
	sb.WriteByte(' ')

	// 4. En passant square
	if b.enPassantTarget != 0 {
		sb.WriteString(AlgebraicFromMask(b.enPassantTarget))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	// 5. Halfmove clock
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')

	// 6. Fullmove number
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}
