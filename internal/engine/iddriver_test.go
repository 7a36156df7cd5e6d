package engine

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/board"
)

func TestSearchRespectsMoveTimeBudget(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	e := NewEngine()

	var out bytes.Buffer
	start := time.Now()
	e.Search(pos, Limits{MoveTime: 50 * time.Millisecond}, &out)
	elapsed := time.Since(start)

	assert.LessOrEqual(t, elapsed, 500*time.Millisecond, "expected to return shortly after the 50ms budget")
	assert.True(t, strings.Contains(out.String(), "bestmove "), "expected a bestmove line in output, got %q", out.String())
}

func TestSearchRejectsConcurrentCalls(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	e := NewEngine()

	done := make(chan struct{})
	var out1 bytes.Buffer
	go func() {
		e.Search(pos, Limits{MoveTime: 100 * time.Millisecond}, &out1)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	var out2 bytes.Buffer
	e.Search(pos, Limits{MoveTime: 10 * time.Millisecond}, &out2)
	assert.Zero(t, out2.Len(), "concurrent search call should be rejected")

	<-done
}

func TestNewGameClearsTranspositionTable(t *testing.T) {
	e := NewEngine()
	e.tt.Store(99, board.NullMove, 0, 5, BoundExact)
	e.NewGame()
	_, _, _, _, ok := e.tt.Probe(99)
	assert.False(t, ok, "expected NewGame to clear the transposition table")
}

func TestBestMoveStringNull(t *testing.T) {
	assert.Equal(t, "0000", bestMoveString(board.NullMove))
}
