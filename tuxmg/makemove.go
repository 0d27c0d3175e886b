package tuxmg

// Make applies the move to the board in place. The move must have been built
// for this position (by the generator or the notation parser); Unmake with
// the same move restores the position bit for bit.
func (b *Board) Make(m Move) {
	us := b.sideToMove
	them := us.Other()

	// Lift the moving piece off its source square.
	*b.pieceBB(us, m.Piece) &^= m.From

	// Remove the captured piece. For en passant the victim sits one rank
	// behind the target square, not on it.
	if m.Captured != NoRank {
		capSq := m.To
		if m.Piece == Pawn && m.To == b.enPassantTarget && b.enPassantTarget != 0 {
			if us == White {
				capSq = m.To >> 8
			} else {
				capSq = m.To << 8
			}
		}
		*b.pieceBB(them, m.Captured) &^= capSq
	}

	// Drop the piece on the target, promoted if the move says so.
	placed := m.Piece
	if m.Promotion != NoRank {
		placed = m.Promotion
	}
	*b.pieceBB(us, placed) |= m.To

	// Castling: a king moving two files drags the rook along.
	if m.Piece == King {
		switch {
		case m.From == maskE1 && m.To == maskG1:
			b.rooks[White] = b.rooks[White]&^maskH1 | maskF1
		case m.From == maskE1 && m.To == maskC1:
			b.rooks[White] = b.rooks[White]&^maskA1 | maskD1
		case m.From == maskE8 && m.To == maskG8:
			b.rooks[Black] = b.rooks[Black]&^maskH8 | maskF8
		case m.From == maskE8 && m.To == maskC8:
			b.rooks[Black] = b.rooks[Black]&^maskA8 | maskD8
		}
	}

	// En-passant target: set on a double pawn push, cleared otherwise.
	if m.Piece == Pawn && (m.To == m.From<<16 || m.To == m.From>>16) {
		if us == White {
			b.enPassantTarget = m.From << 8
		} else {
			b.enPassantTarget = m.From >> 8
		}
	} else {
		b.enPassantTarget = 0
	}

	// Castling rights are only ever cleared here: a king move drops both of
	// its side's rights, a rook leaving its home square drops that right, and
	// a capture on a rook home square drops the victim's right.
	cr := b.castlingRights
	if m.Piece == King {
		if us == White {
			cr &^= CastlingWhiteShort | CastlingWhiteLong
		} else {
			cr &^= CastlingBlackShort | CastlingBlackLong
		}
	}
	if m.Piece == Rook {
		switch m.From {
		case maskA1:
			cr &^= CastlingWhiteLong
		case maskH1:
			cr &^= CastlingWhiteShort
		case maskA8:
			cr &^= CastlingBlackLong
		case maskH8:
			cr &^= CastlingBlackShort
		}
	}
	if m.Captured == Rook {
		switch m.To {
		case maskA1:
			cr &^= CastlingWhiteLong
		case maskH1:
			cr &^= CastlingWhiteShort
		case maskA8:
			cr &^= CastlingBlackLong
		case maskH8:
			cr &^= CastlingBlackShort
		}
	}
	b.castlingRights = cr

	// Halfmove clock resets on pawn moves and captures.
	if m.Piece == Pawn || m.Captured != NoRank {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	// Fullmove number increments after a Black move.
	if us == Black {
		b.fullmoveNumber++
	}

	b.sideToMove = them
	b.updateOccupancy()
}

// Unmake undoes a previously made move, restoring the board state exactly.
// The castling rights, en-passant target and halfmove clock come back from
// the snapshot the move carries.
func (b *Board) Unmake(m Move) {
	us := m.Color
	them := us.Other()

	// Lift the placed piece off the target and put the mover back.
	placed := m.Piece
	if m.Promotion != NoRank {
		placed = m.Promotion
	}
	*b.pieceBB(us, placed) &^= m.To
	*b.pieceBB(us, m.Piece) |= m.From

	// Restore the captured piece. The en-passant victim square is derived
	// from the pre-move en-passant target carried by the move.
	if m.Captured != NoRank {
		capSq := m.To
		if m.Piece == Pawn && m.To == m.PrevEnPassant && m.PrevEnPassant != 0 {
			if us == White {
				capSq = m.To >> 8
			} else {
				capSq = m.To << 8
			}
		}
		*b.pieceBB(them, m.Captured) |= capSq
	}

	// Walk the castling rook back.
	if m.Piece == King {
		switch {
		case m.From == maskE1 && m.To == maskG1:
			b.rooks[White] = b.rooks[White]&^maskF1 | maskH1
		case m.From == maskE1 && m.To == maskC1:
			b.rooks[White] = b.rooks[White]&^maskD1 | maskA1
		case m.From == maskE8 && m.To == maskG8:
			b.rooks[Black] = b.rooks[Black]&^maskF8 | maskH8
		case m.From == maskE8 && m.To == maskC8:
			b.rooks[Black] = b.rooks[Black]&^maskD8 | maskA8
		}
	}

	b.castlingRights = m.PrevCastling
	b.enPassantTarget = m.PrevEnPassant
	b.halfmoveClock = m.PrevHalfmove
	if us == Black {
		b.fullmoveNumber--
	}

	b.sideToMove = us
	b.updateOccupancy()
}
