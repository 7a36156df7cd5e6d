package engine

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/logging"
)

var log = logging.Get("engine")

// Limits bounds how long or how deep a search may run. A zero MoveTime
// means no time budget; a zero Depth means search to MaxDepth.
type Limits struct {
	MoveTime time.Duration
	Depth    int
	Infinite bool
}

// MaxDepth is the deepest ply iterative deepening will request.
const MaxDepth = 64

// Engine owns one transposition table and enforces that at most one
// search runs at a time via a weighted semaphore, matching the
// single-search-goroutine-plus-watcher concurrency model: the search
// goroutine does all the work, a second watcher goroutine only flips the
// searching flag once the time budget expires.
type Engine struct {
	tt        *Table
	sem       *semaphore.Weighted
	searching int32
	printer   *message.Printer
}

// NewEngine creates an Engine with a fresh, empty transposition table.
func NewEngine() *Engine {
	return &Engine{
		tt:      NewTable(),
		sem:     semaphore.NewWeighted(1),
		printer: message.NewPrinter(language.German),
	}
}

// NewGame clears the transposition table, as required between unrelated
// games so stale entries from a previous game never leak into a new one.
func (e *Engine) NewGame() {
	e.tt.Clear()
}

// IsSearching reports whether a search is currently in progress.
func (e *Engine) IsSearching() bool {
	return atomic.LoadInt32(&e.searching) == 1
}

// Stop requests the in-progress search abort as soon as possible. It is a
// no-op if no search is running.
func (e *Engine) Stop() {
	atomic.StoreInt32(&e.searching, 0)
}

// Search runs iterative deepening on pos under limits, writing UCI "info"
// and "bestmove" lines to out. It blocks until the search concludes,
// either by exhausting Depth/MaxDepth or by the watcher goroutine (or an
// explicit Stop call) clearing the searching flag. Only one Search call
// may be in flight at a time; a concurrent call returns immediately
// without searching.
func (e *Engine) Search(pos *board.Position, limits Limits, out io.Writer) {
	if !e.sem.TryAcquire(1) {
		log.Warning("search already in progress, ignoring go command")
		return
	}
	defer e.sem.Release(1)

	atomic.StoreInt32(&e.searching, 1)
	defer atomic.StoreInt32(&e.searching, 0)

	if limits.MoveTime > 0 {
		go func(budget time.Duration) {
			time.Sleep(budget)
			atomic.StoreInt32(&e.searching, 0)
		}(limits.MoveTime)
	}

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	searcher := NewSearcher(e.tt, &e.searching)
	start := time.Now()

	bestMove := board.NullMove

	for depth := 1; depth <= maxDepth; depth++ {
		searcher.Reset()
		result := searcher.Negamax(pos, depth, 0, -MateScore-1, MateScore+1)
		if result.Aborted {
			break
		}

		if move, _, _, _, found := e.tt.Probe(pos.Hash); found {
			bestMove = move
		}

		elapsed := time.Since(start)
		pv := extractPV(pos, e.tt, depth)
		e.printInfo(out, depth, result.Score, searcher.Nodes(), elapsed, pv)

		log.Debugf("depth %d nodes %s", depth, e.printer.Sprintf("%d", searcher.Nodes()))

		if atomic.LoadInt32(&e.searching) == 0 {
			break
		}
	}

	fmt.Fprintf(out, "bestmove %s\n", bestMoveString(bestMove))
}

func bestMoveString(m board.Move) string {
	if m.IsNull() {
		return "0000"
	}
	return m.String()
}

// extractPV walks the transposition table from pos following stored best
// moves, up to maxLen plies or until the chain runs out.
func extractPV(pos *board.Position, tt *Table, maxLen int) []board.Move {
	pv := make([]board.Move, 0, maxLen)
	clone := *pos

	seen := make(map[uint64]bool)
	for i := 0; i < maxLen; i++ {
		move, _, _, _, found := tt.Probe(clone.Hash)
		if !found || move.IsNull() || seen[clone.Hash] {
			break
		}
		seen[clone.Hash] = true

		var undo board.Undo
		if !clone.MakeMove(move, &undo) {
			break
		}
		pv = append(pv, move)
	}
	return pv
}

func (e *Engine) printInfo(out io.Writer, depth, score int, nodes uint64, elapsed time.Duration, pv []board.Move) {
	nps := uint64(0)
	if elapsed > 0 {
		nps = uint64(float64(nodes) / elapsed.Seconds())
	}

	scoreStr := fmt.Sprintf("cp %d", score)
	if score > MateThreshold {
		scoreStr = fmt.Sprintf("mate %d", (MateScore-score+1)/2)
	} else if score < -MateThreshold {
		scoreStr = fmt.Sprintf("mate %d", -(MateScore+score+1)/2)
	}

	fmt.Fprintf(out, "info depth %d score %s nodes %d nps %d time %d pv %s\n",
		depth, scoreStr, nodes, nps, elapsed.Milliseconds(), pvString(pv))
}

func pvString(pv []board.Move) string {
	s := ""
	for i, m := range pv {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}
	return s
}
