// Package engine implements the negamax search tree: transposition table,
// move ordering, quiescence search, and the iterative deepening driver
// that the UCI front end calls into.
package engine

import "github.com/corvidchess/corvid/internal/board"

// Bound classifies how a stored score relates to the true minimax value.
type Bound uint8

const (
	BoundExact Bound = iota
	BoundAlpha
	BoundBeta
)

// ttSizeBits fixes the table at 2^22 entries, direct-mapped by the full
// 64-bit Zobrist key.
const ttSizeBits = 22
const ttSize = 1 << ttSizeBits
const ttMask = ttSize - 1

// ttEntry is one transposition table slot. Depth -1 marks an invalid
// (never-written or cleared) slot.
type ttEntry struct {
	key   uint64
	move  board.Move
	score int
	depth int
	bound Bound
}

// Table is a fixed-size, direct-mapped transposition table.
type Table struct {
	entries []ttEntry
}

// NewTable allocates a transposition table with all entries invalid.
func NewTable() *Table {
	t := &Table{entries: make([]ttEntry, ttSize)}
	t.Clear()
	return t
}

// Clear invalidates every entry without deallocating the backing array.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i].depth = -1
	}
}

func index(key uint64) uint64 {
	return key & ttMask
}

// Probe looks up key and reports whether a usable entry was found.
func (t *Table) Probe(key uint64) (move board.Move, score, depth int, bound Bound, ok bool) {
	e := &t.entries[index(key)]
	if e.depth == -1 || e.key != key {
		return board.NullMove, 0, 0, BoundExact, false
	}
	return e.move, e.score, e.depth, e.bound, true
}

// Store writes an entry. A previous entry for the same key is kept only if
// it was searched to greater depth; an entry holding a different key at
// the same slot is always overwritten (always-replace-on-collision).
func (t *Table) Store(key uint64, move board.Move, score, depth int, bound Bound) {
	e := &t.entries[index(key)]
	if e.depth != -1 && e.key == key && e.depth > depth {
		return
	}
	e.key = key
	e.move = move
	e.score = score
	e.depth = depth
	e.bound = bound
}
