package board

import "fmt"

// Move is a single chess move. Two moves are equal iff all four fields
// match; there is no packed encoding, so equality is just struct equality.
type Move struct {
	Kind      PieceKind
	From      Square
	To        Square
	Promotion PieceKind
}

// NullMove is the sentinel used to signal "no move" (e.g. no TT best
// move, no legal move found). It is not the zero value Move{}, whose
// fields name a1, King and a King promotion.
var NullMove = Move{Kind: InvalidKind, From: NoSquare, To: NoSquare, Promotion: InvalidKind}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m.Kind == InvalidKind && m.From == NoSquare && m.To == NoSquare
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != InvalidKind
}

// String renders m in UCI long algebraic form, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Char())
	}
	return s
}

// ParseUCIMove builds a Move from a UCI move string and the piece kind
// standing on the from-square, since the wire format itself does not
// carry the moving piece's kind.
func ParseUCIMove(s string, moving PieceKind) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NullMove, fmt.Errorf("invalid move %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NullMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NullMove, err
	}
	promo := InvalidKind
	if len(s) == 5 {
		promo = KindFromChar(s[4])
		if promo == InvalidKind {
			return NullMove, fmt.Errorf("invalid promotion in move %q", s)
		}
	}
	return Move{Kind: moving, From: from, To: to, Promotion: promo}, nil
}

// maxMoves bounds the number of pseudo-legal moves in any reachable
// position; 218 is the documented theoretical maximum.
const maxMoves = 218

// MoveList is a fixed-capacity move buffer. It never allocates on the
// heap once created, so move generation can run per-node without
// triggering garbage collection pressure.
type MoveList struct {
	moves [maxMoves]Move
	n     int
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int { return l.n }

// At returns the move at index i.
func (l *MoveList) At(i int) Move { return l.moves[i] }

// Set overwrites the move at index i.
func (l *MoveList) Set(i int, m Move) { l.moves[i] = m }

// Swap exchanges the moves at i and j.
func (l *MoveList) Swap(i, j int) { l.moves[i], l.moves[j] = l.moves[j], l.moves[i] }

// Add appends a move to the list.
func (l *MoveList) Add(m Move) {
	l.moves[l.n] = m
	l.n++
}

// Reset empties the list without releasing its backing array.
func (l *MoveList) Reset() { l.n = 0 }

// Slice returns the populated portion of the list. The returned slice
// aliases the list's backing array and is invalidated by further Add calls.
func (l *MoveList) Slice() []Move { return l.moves[:l.n] }
