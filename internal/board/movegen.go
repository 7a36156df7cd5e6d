package board

// GeneratePseudoLegalMoves fills list with every pseudo-legal move for the
// side to move: moves that obey piece movement rules but may leave the
// mover's own king in check. Illegal-through-check moves are filtered out
// at make time instead, via the retroactive legality check in MakeMove.
//
// Moves are emitted pawn, queen, knight, bishop, rook, king, with castling
// appended alongside the other king moves.
func GeneratePseudoLegalMoves(p *Position, list *MoveList) {
	list.Reset()
	genPawnMoves(p, list)
	genSliderMoves(p, list, Queen)
	genLeaperMoves(p, list, Knight)
	genSliderMoves(p, list, Bishop)
	genSliderMoves(p, list, Rook)
	genLeaperMoves(p, list, King)
	genCastlingMoves(p, list)
}

func pawnPushRank(color Color) Bitboard {
	if color == White {
		return Rank2
	}
	return Rank7
}

func promotionRank(color Color) Bitboard {
	if color == White {
		return Rank8
	}
	return Rank1
}

func pushOne(color Color, bb Bitboard) Bitboard {
	if color == White {
		return bb.North()
	}
	return bb.South()
}

var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

func addPawnDestination(list *MoveList, from, to Square, color Color) {
	if SquareBB(to)&promotionRank(color) != 0 {
		for _, kind := range promotionKinds {
			list.Add(Move{Kind: Pawn, From: from, To: to, Promotion: kind})
		}
		return
	}
	list.Add(Move{Kind: Pawn, From: from, To: to, Promotion: InvalidKind})
}

func genPawnMoves(p *Position, list *MoveList) {
	color := p.SideToMove
	empty := ^p.Occupied()
	opponent := color.Other()
	theirs := p.Occupancy[opponent]

	var epTarget Bitboard
	if p.EnPassant != NoSquare {
		epTarget = SquareBB(p.EnPassant)
	}

	p.Pieces[color][Pawn].ForEach(func(sq Square) {
		fromBB := SquareBB(sq)

		one := pushOne(color, fromBB)
		if one&empty != 0 {
			addPawnDestination(list, sq, one.LSB(), color)

			if fromBB&pawnPushRank(color) != 0 {
				two := pushOne(color, one)
				if two&empty != 0 {
					list.Add(Move{Kind: Pawn, From: sq, To: two.LSB(), Promotion: InvalidKind})
				}
			}
		}

		captures := PawnAttacks(color, sq) & (theirs | epTarget)
		captures.ForEach(func(to Square) {
			addPawnDestination(list, sq, to, color)
		})
	})
}

func genLeaperMoves(p *Position, list *MoveList, kind PieceKind) {
	color := p.SideToMove
	own := p.Occupancy[color]

	var attackFn func(Square) Bitboard
	switch kind {
	case Knight:
		attackFn = KnightAttacks
	case King:
		attackFn = KingAttacks
	}

	p.Pieces[color][kind].ForEach(func(sq Square) {
		targets := attackFn(sq) &^ own
		targets.ForEach(func(to Square) {
			list.Add(Move{Kind: kind, From: sq, To: to, Promotion: InvalidKind})
		})
	})
}

func genSliderMoves(p *Position, list *MoveList, kind PieceKind) {
	color := p.SideToMove
	own := p.Occupancy[color]
	occ := p.Occupied()

	var attackFn func(Square, Bitboard) Bitboard
	switch kind {
	case Bishop:
		attackFn = BishopAttacks
	case Rook:
		attackFn = RookAttacks
	case Queen:
		attackFn = QueenAttacks
	}

	p.Pieces[color][kind].ForEach(func(sq Square) {
		targets := attackFn(sq, occ) &^ own
		targets.ForEach(func(to Square) {
			list.Add(Move{Kind: kind, From: sq, To: to, Promotion: InvalidKind})
		})
	})
}

func genCastlingMoves(p *Position, list *MoveList) {
	color := p.SideToMove
	occ := p.Occupied()

	if color == White {
		if p.Castling&WhiteKingside != 0 && occ&(SquareBB(F1)|SquareBB(G1)) == 0 {
			list.Add(Move{Kind: King, From: E1, To: G1, Promotion: InvalidKind})
		}
		if p.Castling&WhiteQueenside != 0 && occ&(SquareBB(B1)|SquareBB(C1)|SquareBB(D1)) == 0 {
			list.Add(Move{Kind: King, From: E1, To: C1, Promotion: InvalidKind})
		}
		return
	}

	if p.Castling&BlackKingside != 0 && occ&(SquareBB(F8)|SquareBB(G8)) == 0 {
		list.Add(Move{Kind: King, From: E8, To: G8, Promotion: InvalidKind})
	}
	if p.Castling&BlackQueenside != 0 && occ&(SquareBB(B8)|SquareBB(C8)|SquareBB(D8)) == 0 {
		list.Add(Move{Kind: King, From: E8, To: C8, Promotion: InvalidKind})
	}
}
