// Package eval provides the static evaluation function the search tree
// calls at its leaves. It is deliberately simple: material balance plus a
// small mobility term, scored from the side to move's perspective.
package eval

import "github.com/corvidchess/corvid/internal/board"

// Piece values, loosely following the material table used throughout the
// engine lineage this package descends from.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 20000
)

var pieceValue = [6]int{KingValue, QueenValue, BishopValue, KnightValue, RookValue, PawnValue}

// Value returns the material value of a piece kind.
func Value(kind board.PieceKind) int {
	if kind >= board.InvalidKind {
		return 0
	}
	return pieceValue[kind]
}

const mobilityWeight = 2

// Evaluate scores pos from the perspective of the side to move: positive
// favors the mover, negative favors the opponent.
func Evaluate(pos *board.Position) int {
	mover := pos.SideToMove
	opponent := mover.Other()

	score := material(pos, mover) - material(pos, opponent)
	score += mobilityWeight * (mobility(pos, mover) - mobility(pos, opponent))

	return score
}

func material(pos *board.Position, color board.Color) int {
	total := 0
	for kind := board.King; kind <= board.Pawn; kind++ {
		total += pieceValue[kind] * pos.Pieces[color][kind].PopCount()
	}
	return total
}

func mobility(pos *board.Position, color board.Color) int {
	return pos.AttacksOfSide(color).PopCount()
}
