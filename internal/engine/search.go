package engine

import (
	"math"
	"sync/atomic"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/eval"
)

// MateScore is the score awarded for delivering checkmate, reduced by one
// per ply of distance from the root so that shorter mates sort ahead of
// longer ones.
const MateScore = 32000

// MateThreshold is the boundary above which a score is recognized as a
// mate score rather than a material evaluation.
const MateThreshold = 30000

const deltaMargin = eval.QueenValue

// Searcher runs negamax search over a single position using one
// transposition table. It is not safe for concurrent use by more than one
// goroutine at a time; the iterative deepening driver enforces that with
// a semaphore.
type Searcher struct {
	tt        *Table
	searching *int32
	nodes     uint64
}

// NewSearcher creates a Searcher backed by tt. searching must flip to 0
// (via atomic.StoreInt32) to signal the search should abort as soon as
// possible.
func NewSearcher(tt *Table, searching *int32) *Searcher {
	return &Searcher{tt: tt, searching: searching}
}

// Nodes returns the number of nodes visited since the last Reset.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// Reset zeroes the node counter for a fresh search.
func (s *Searcher) Reset() { s.nodes = 0 }

func (s *Searcher) aborted() bool {
	return atomic.LoadInt32(s.searching) == 0
}

// searchResult discriminates an aborted search from a real score: an
// aborted result's Score is meaningless and must not be used.
type searchResult struct {
	Score   int
	Aborted bool
}

func ok(score int) searchResult      { return searchResult{Score: score} }
func abortedResult() searchResult    { return searchResult{Aborted: true} }
func (r searchResult) negate() searchResult {
	if r.Aborted {
		return r
	}
	return ok(-r.Score)
}

// Negamax searches pos to depth plies from the root (ply 0), returning the
// best score found and, via the transposition table, the best move. It
// returns an aborted result as soon as the searching flag is cleared.
func (s *Searcher) Negamax(pos *board.Position, depth, ply, alpha, beta int) searchResult {
	if s.aborted() {
		return abortedResult()
	}
	s.nodes++

	alphaOrig := alpha

	var ttMove board.Move
	if move, score, ttDepth, bound, found := s.tt.Probe(pos.Hash); found {
		ttMove = move
		if ttDepth >= depth {
			adjusted := adjustMateFromTT(score, ply)
			switch bound {
			case BoundExact:
				return ok(adjusted)
			case BoundAlpha:
				if adjusted <= alpha {
					return ok(alpha)
				}
			case BoundBeta:
				if adjusted >= beta {
					return ok(beta)
				}
			}
		}
	}

	if depth <= 0 {
		return s.Quiesce(pos, ply, alpha, beta)
	}

	var moves board.MoveList
	board.GeneratePseudoLegalMoves(pos, &moves)
	orderMoves(pos, &moves, ttMove)

	bestScore := -MateScore - 1
	var bestMove board.Move
	legalMoves := 0

	cutoff := lmrCutoff(depth, moves.Len())

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		shouldReduce := i >= cutoff && depth > 2

		var undo board.Undo
		if !pos.MakeMove(m, &undo) {
			continue
		}
		legalMoves++

		reducedDepth := depth - 1
		if shouldReduce {
			reducedDepth--
		}
		childResult := s.Negamax(pos, reducedDepth, ply+1, -beta, -alpha).negate()
		pos.UnmakeMove(m, &undo)

		if childResult.Aborted {
			return abortedResult()
		}

		if childResult.Score > bestScore {
			bestScore = childResult.Score
			bestMove = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			break
		}
	}

	if legalMoves == 0 {
		if pos.InCheck(pos.SideToMove) {
			return ok(-MateScore + ply)
		}
		return ok(0)
	}

	bound := BoundExact
	switch {
	case bestScore <= alphaOrig:
		bound = BoundAlpha
	case bestScore >= beta:
		bound = BoundBeta
	}
	s.tt.Store(pos.Hash, bestMove, adjustMateForTT(bestScore, ply), depth, bound)

	return ok(bestScore)
}

// Quiesce extends search along noisy lines (captures, promotions) past the
// nominal leaf depth to avoid the horizon effect, using a stand-pat score
// plus delta pruning to bound the work.
func (s *Searcher) Quiesce(pos *board.Position, ply, alpha, beta int) searchResult {
	if s.aborted() {
		return abortedResult()
	}
	s.nodes++

	standPat := eval.Evaluate(pos)
	if standPat >= beta {
		return ok(standPat)
	}
	if standPat > alpha {
		alpha = standPat
	}

	var moves board.MoveList
	board.GeneratePseudoLegalMoves(pos, &moves)
	orderMoves(pos, &moves, board.NullMove)

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if !isNoisy(pos, m) {
			continue
		}

		var undo board.Undo
		if !pos.MakeMove(m, &undo) {
			continue
		}
		childResult := s.Quiesce(pos, ply+1, -beta, -alpha).negate()
		pos.UnmakeMove(m, &undo)

		if childResult.Aborted {
			return abortedResult()
		}

		if childResult.Score >= beta {
			return ok(childResult.Score)
		}

		delta := deltaMargin
		if m.IsPromotion() {
			delta *= 2
		}
		if childResult.Score < alpha-delta {
			return ok(alpha)
		}

		if childResult.Score > alpha {
			alpha = childResult.Score
		}
	}

	return ok(alpha)
}

// lmrCutoff computes, once per node, the ordered-list index at or beyond
// which a move is late enough to reduce. moveCount is the total number of
// moves generated at this node (board.MoveList.Len()), not the count of
// legal moves found so far.
func lmrCutoff(depth, moveCount int) int {
	if depth < 1 || moveCount < 1 {
		return 1 << 30
	}
	return int(math.Floor(0.99 + math.Log(float64(depth))*math.Log(float64(moveCount))/3.14))
}

// adjustMateForTT converts a mate score measured from the root (as Negamax
// returns it) into one measured from the current node, for storage.
func adjustMateForTT(score, ply int) int {
	if score > MateThreshold {
		return score + ply
	}
	if score < -MateThreshold {
		return score - ply
	}
	return score
}

// adjustMateFromTT reverses adjustMateForTT when reading a stored score
// back at the current ply.
func adjustMateFromTT(score, ply int) int {
	if score > MateThreshold {
		return score - ply
	}
	if score < -MateThreshold {
		return score + ply
	}
	return score
}
