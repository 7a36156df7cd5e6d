// Package perft counts leaf nodes of the legal move tree to a fixed depth,
// the standard way to validate move generation and make/unmake against
// known reference counts.
package perft

import "github.com/corvidchess/corvid/internal/board"

// Count returns the number of legal move sequences of length depth from
// pos. Depth 0 returns 1 (the empty sequence).
func Count(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var moves board.MoveList
	board.GeneratePseudoLegalMoves(pos, &moves)

	var total uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		var undo board.Undo
		if !pos.MakeMove(m, &undo) {
			continue
		}
		total += Count(pos, depth-1)
		pos.UnmakeMove(m, &undo)
	}
	return total
}

// Split is one top-level move's contribution to a perft count.
type Split struct {
	Move  board.Move
	Nodes uint64
}

// Divide runs perft one ply at a time, reporting each legal root move's
// subtree count alongside the grand total, the form UCI "perft" debug
// commands conventionally print.
func Divide(pos *board.Position, depth int) ([]Split, uint64) {
	var moves board.MoveList
	board.GeneratePseudoLegalMoves(pos, &moves)

	var splits []Split
	var total uint64

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		var undo board.Undo
		if !pos.MakeMove(m, &undo) {
			continue
		}
		nodes := Count(pos, depth-1)
		pos.UnmakeMove(m, &undo)

		splits = append(splits, Split{Move: m, Nodes: nodes})
		total += nodes
	}

	return splits, total
}
