package engine

import "github.com/corvidchess/corvid/internal/board"

// orderMoves sorts list in place for search: the transposition table's
// best move (if present at this node, regardless of the depth it was
// stored at) goes first, then the rest by descending MVV/LVA score.
func orderMoves(pos *board.Position, list *board.MoveList, ttMove board.Move) {
	n := list.Len()
	start := 0
	if !ttMove.IsNull() {
		for i := 0; i < n; i++ {
			if list.At(i) == ttMove {
				list.Swap(0, i)
				start = 1
				break
			}
		}
	}

	scores := make([]int, n)
	for i := start; i < n; i++ {
		scores[i] = mvvLvaScore(pos, list.At(i))
	}

	for i := start + 1; i < n; i++ {
		m, s := list.At(i), scores[i]
		j := i - 1
		for j >= start && scores[j] < s {
			list.Set(j+1, list.At(j))
			scores[j+1] = scores[j]
			j--
		}
		list.Set(j+1, m)
		scores[j+1] = s
	}
}

// mvvLvaScore approximates most-valuable-victim/least-valuable-attacker
// ordering: captures of higher-value pieces by lower-value ones sort
// first. Quiet moves score 0.
func mvvLvaScore(pos *board.Position, m board.Move) int {
	_, captured := pos.PieceAt(m.To)
	if captured == board.InvalidKind {
		if m.Kind == board.Pawn && m.To == pos.EnPassant {
			captured = board.Pawn
		} else {
			return 0
		}
	}
	return pieceOrderValue(captured) - pieceOrderValue(m.Kind)
}

var orderValue = [6]int{20000, 900, 330, 320, 500, 100}

func pieceOrderValue(kind board.PieceKind) int {
	if kind >= board.InvalidKind {
		return 0
	}
	return orderValue[kind]
}

// isNoisy reports whether m is a capture, en-passant capture, or
// promotion, the only moves quiescence search considers beyond the
// stand-pat score.
func isNoisy(pos *board.Position, m board.Move) bool {
	if m.IsPromotion() {
		return true
	}
	_, captured := pos.PieceAt(m.To)
	if captured != board.InvalidKind {
		return true
	}
	return m.Kind == board.Pawn && m.To == pos.EnPassant
}
