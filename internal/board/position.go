package board

// Castling right bits. Each bit index is (kind-King) + 2*color for
// kind in {King, Queen}, matching the PieceKind ordering: bit 0 is white
// kingside (O-O), bit 1 is white queenside (O-O-O), bit 2 is black
// kingside, bit 3 is black queenside.
const (
	WhiteKingside  uint8 = 1 << 0
	WhiteQueenside uint8 = 1 << 1
	BlackKingside  uint8 = 1 << 2
	BlackQueenside uint8 = 1 << 3

	AllCastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastlingBit returns the bit for the right to castle with the rook of
// the given kind (King or Queen) and color.
func CastlingBit(kind PieceKind, color Color) uint8 {
	return 1 << (uint(kind-King) + 2*uint(color))
}

// State is the irreversible part of a position: everything that must be
// restored on unmake rather than recomputed.
type State struct {
	SideToMove    Color
	Castling      uint8
	HalfMoveClock int
	EnPassant     Square
	MoveCount     int
	Hash          uint64
}

// Position is the full bitboard board representation: piece placement
// plus the current irreversible state.
type Position struct {
	Pieces    [2][6]Bitboard
	Occupancy [2]Bitboard
	State
}

// NewEmptyPosition returns a position with no pieces placed, white to
// move, no castling rights, and no en-passant square.
func NewEmptyPosition() *Position {
	return &Position{
		State: State{
			SideToMove: White,
			EnPassant:  NoSquare,
		},
	}
}

// Occupied returns the union of both sides' occupancy.
func (p *Position) Occupied() Bitboard {
	return p.Occupancy[White] | p.Occupancy[Black]
}

// PieceAt returns the color and kind of the piece on sq, or
// (White, InvalidKind) if sq is empty.
func (p *Position) PieceAt(sq Square) (Color, PieceKind) {
	bb := SquareBB(sq)
	for color := White; color <= Black; color++ {
		if p.Occupancy[color]&bb == 0 {
			continue
		}
		for kind := King; kind <= Pawn; kind++ {
			if p.Pieces[color][kind]&bb != 0 {
				return color, kind
			}
		}
	}
	return White, InvalidKind
}

// PlacePiece puts a piece of the given color and kind on sq. sq must be
// empty.
func (p *Position) PlacePiece(color Color, kind PieceKind, sq Square) {
	bb := SquareBB(sq)
	p.Pieces[color][kind] |= bb
	p.Occupancy[color] |= bb
}

// RemovePiece takes a piece of the given color and kind off sq. sq must
// hold exactly that piece.
func (p *Position) RemovePiece(color Color, kind PieceKind, sq Square) {
	bb := SquareBB(sq)
	p.Pieces[color][kind] &^= bb
	p.Occupancy[color] &^= bb
}

// King returns the square of color's king, or NoSquare if somehow absent.
func (p *Position) King(color Color) Square {
	return p.Pieces[color][King].LSB()
}

// AttacksOfSide returns every square attacked by color, including squares
// occupied by color's own pieces: defended squares still count as
// attacked for the purposes of king-safety checks.
func (p *Position) AttacksOfSide(color Color) Bitboard {
	occ := p.Occupied()
	var attacks Bitboard

	p.Pieces[color][Pawn].ForEach(func(sq Square) {
		attacks |= PawnAttacks(color, sq)
	})
	p.Pieces[color][Knight].ForEach(func(sq Square) {
		attacks |= KnightAttacks(sq)
	})
	p.Pieces[color][Bishop].ForEach(func(sq Square) {
		attacks |= BishopAttacks(sq, occ)
	})
	p.Pieces[color][Rook].ForEach(func(sq Square) {
		attacks |= RookAttacks(sq, occ)
	})
	p.Pieces[color][Queen].ForEach(func(sq Square) {
		attacks |= QueenAttacks(sq, occ)
	})
	attacks |= KingAttacks(p.King(color))

	return attacks
}

// InCheck reports whether color's king is attacked by the other side.
func (p *Position) InCheck(color Color) bool {
	opponent := color.Other()
	return p.AttacksOfSide(opponent)&p.Pieces[color][King] != 0
}

// MateStatus classifies a position once it is established no legal move
// exists.
type MateStatus int

const (
	NoMate MateStatus = iota
	Checkmate
	Stalemate
)

// GetMateStatus runs full legal move generation and reports whether the
// side to move is checkmated, stalemated, or neither. It is comparatively
// slow and intended for reporting, not for use inside search.
func (p *Position) GetMateStatus() MateStatus {
	var pseudo MoveList
	GeneratePseudoLegalMoves(p, &pseudo)
	for i := 0; i < pseudo.Len(); i++ {
		var undo Undo
		if p.MakeMove(pseudo.At(i), &undo) {
			p.UnmakeMove(pseudo.At(i), &undo)
			return NoMate
		}
	}
	if p.InCheck(p.SideToMove) {
		return Checkmate
	}
	return Stalemate
}
