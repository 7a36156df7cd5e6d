package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/board"
)

func TestTableStoreProbeRoundTrip(t *testing.T) {
	tt := NewTable()
	m := board.Move{Kind: board.Pawn, From: board.E2, To: board.E4}
	tt.Store(12345, m, 57, 8, BoundExact)

	gotMove, gotScore, gotDepth, gotBound, ok := tt.Probe(12345)
	if assert.True(t, ok, "expected entry to be found") {
		assert.Equal(t, m, gotMove)
		assert.Equal(t, 57, gotScore)
		assert.Equal(t, 8, gotDepth)
		assert.Equal(t, BoundExact, gotBound)
	}
}

func TestTableProbeMissOnClearedEntry(t *testing.T) {
	tt := NewTable()
	_, _, _, _, ok := tt.Probe(999)
	assert.False(t, ok, "expected miss on a freshly cleared table")
}

func TestTableClearInvalidatesAllEntries(t *testing.T) {
	tt := NewTable()
	tt.Store(1, board.NullMove, 0, 4, BoundExact)
	tt.Clear()
	_, _, _, _, ok := tt.Probe(1)
	assert.False(t, ok, "expected miss after Clear")
	for i := range tt.entries {
		if !assert.Equal(t, -1, tt.entries[i].depth, "entry %d after Clear", i) {
			break
		}
	}
}

func TestTableDepthPreferredReplacement(t *testing.T) {
	tt := NewTable()
	deep := board.Move{Kind: board.Knight, From: board.B1, To: board.C3}
	shallow := board.Move{Kind: board.Pawn, From: board.D2, To: board.D4}

	tt.Store(42, deep, 100, 10, BoundExact)
	tt.Store(42, shallow, -5, 2, BoundAlpha)

	gotMove, gotScore, gotDepth, _, _ := tt.Probe(42)
	assert.Equal(t, deep, gotMove, "shallower store should not overwrite deeper entry at the same key")
	assert.Equal(t, 100, gotScore)
	assert.Equal(t, 10, gotDepth)
}

func TestTableAlwaysReplacesOnKeyCollision(t *testing.T) {
	tt := NewTable()
	keyA := uint64(7)
	keyB := keyA + ttSize // collides at the same index, different key

	moveA := board.Move{Kind: board.Rook, From: board.A1, To: board.A8}
	moveB := board.Move{Kind: board.Bishop, From: board.C1, To: board.F4}

	tt.Store(keyA, moveA, 1, 20, BoundExact)
	tt.Store(keyB, moveB, 2, 1, BoundExact)

	_, _, _, _, ok := tt.Probe(keyA)
	assert.False(t, ok, "expected the differing-key collision to overwrite the old entry")

	gotMove, _, _, _, ok := tt.Probe(keyB)
	assert.True(t, ok)
	assert.Equal(t, moveB, gotMove)
}
