package board

// Undo holds everything needed to reverse a MakeMove call: the previous
// irreversible state plus whatever was captured or otherwise displaced.
type Undo struct {
	PrevState State

	CapturedKind   PieceKind
	CapturedColor  Color
	CapturedSquare Square

	IsCastle bool
	RookFrom Square
	RookTo   Square
}

func rookCastleSquares(to Square) (from, dest Square) {
	switch to {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	case C8:
		return A8, D8
	}
	return NoSquare, NoSquare
}

// clearCastlingRightsFor removes the castling rights invalidated by a
// piece departing or arriving on sq, whichever color it belongs to.
func clearCastlingRightsFor(castling *uint8, sq Square) {
	switch sq {
	case E1:
		*castling &^= WhiteKingside | WhiteQueenside
	case E8:
		*castling &^= BlackKingside | BlackQueenside
	case H1:
		*castling &^= WhiteKingside
	case A1:
		*castling &^= WhiteQueenside
	case H8:
		*castling &^= BlackKingside
	case A8:
		*castling &^= BlackQueenside
	}
}

// MakeMove applies m to p. If the move is legal (does not leave the
// mover's own king attacked, including transit squares for castling), it
// returns true with the move applied; the caller is then responsible for
// calling UnmakeMove. If the move turns out to be illegal, MakeMove
// reverses it internally before returning false.
func (p *Position) MakeMove(m Move, undo *Undo) bool {
	undo.PrevState = p.State
	undo.CapturedKind = InvalidKind
	undo.IsCastle = false

	mover := p.SideToMove
	opponent := mover.Other()

	captureSquare := m.To
	isEnPassant := m.Kind == Pawn && m.To == p.EnPassant && p.Occupied()&SquareBB(m.To) == 0
	if isEnPassant {
		if mover == White {
			captureSquare = m.To - 8
		} else {
			captureSquare = m.To + 8
		}
	}

	if _, capturedKind := p.PieceAt(captureSquare); capturedKind != InvalidKind {
		undo.CapturedKind = capturedKind
		undo.CapturedColor = opponent
		undo.CapturedSquare = captureSquare
		p.RemovePiece(opponent, capturedKind, captureSquare)
	}

	p.RemovePiece(mover, m.Kind, m.From)
	placedKind := m.Kind
	if m.IsPromotion() {
		placedKind = m.Promotion
	}
	p.PlacePiece(mover, placedKind, m.To)

	if m.Kind == King {
		diff := int(m.To) - int(m.From)
		if diff == 2 || diff == -2 {
			undo.IsCastle = true
			rookFrom, rookTo := rookCastleSquares(m.To)
			undo.RookFrom, undo.RookTo = rookFrom, rookTo
			p.RemovePiece(mover, Rook, rookFrom)
			p.PlacePiece(mover, Rook, rookTo)
		}
	}

	clearCastlingRightsFor(&p.Castling, m.From)
	clearCastlingRightsFor(&p.Castling, m.To)

	if m.Kind == Pawn && (int(m.To)-int(m.From) == 16 || int(m.From)-int(m.To) == 16) {
		if mover == White {
			p.EnPassant = m.From + 8
		} else {
			p.EnPassant = m.From - 8
		}
	} else {
		p.EnPassant = NoSquare
	}

	if m.Kind == Pawn || undo.CapturedKind != InvalidKind {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if mover == Black {
		p.MoveCount++
	}

	p.SideToMove = opponent
	p.Hash = Hash(p)

	legalityMask := SquareBB(p.King(mover))
	if undo.IsCastle {
		transit := Square((int(m.From) + int(m.To)) / 2)
		legalityMask |= SquareBB(m.From) | SquareBB(transit)
	}
	if p.AttacksOfSide(opponent)&legalityMask != 0 {
		p.UnmakeMove(m, undo)
		return false
	}

	return true
}

// UnmakeMove reverses the effect of the immediately preceding MakeMove(m, undo).
func (p *Position) UnmakeMove(m Move, undo *Undo) {
	mover := undo.PrevState.SideToMove

	p.State = undo.PrevState

	placedKind := m.Kind
	if m.IsPromotion() {
		placedKind = m.Promotion
	}
	p.RemovePiece(mover, placedKind, m.To)
	p.PlacePiece(mover, m.Kind, m.From)

	if undo.IsCastle {
		p.RemovePiece(mover, Rook, undo.RookTo)
		p.PlacePiece(mover, Rook, undo.RookFrom)
	}

	if undo.CapturedKind != InvalidKind {
		p.PlacePiece(undo.CapturedColor, undo.CapturedKind, undo.CapturedSquare)
	}
}
