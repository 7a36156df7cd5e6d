package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/board"
)

func newSearcherForTest() (*Searcher, *int32) {
	searching := int32(1)
	return NewSearcher(NewTable(), &searching), &searching
}

func TestNegamaxFindsMateInOne(t *testing.T) {
	// Back-rank mate: the white king on e6 covers d7/e7/f7, so Rh1-h8#
	// leaves the black king on e8 no escape.
	pos, err := board.ParseFEN("4k3/8/4K3/8/8/8/8/7R w - - 0 1")
	require.NoError(t, err)
	s, _ := newSearcherForTest()

	result := s.Negamax(pos, 3, 0, -MateScore-1, MateScore+1)
	require.False(t, result.Aborted, "search should not abort")
	assert.Greater(t, result.Score, MateThreshold, "expected a mate score")

	move, _, _, _, found := s.tt.Probe(pos.Hash)
	require.True(t, found, "expected a transposition table entry at the root")
	assert.Equal(t, board.H1, move.From)
	assert.Equal(t, board.H8, move.To)
}

func TestNegamaxStalemateScoresZero(t *testing.T) {
	pos, err := board.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	s, _ := newSearcherForTest()

	result := s.Negamax(pos, 1, 0, -MateScore-1, MateScore+1)
	require.False(t, result.Aborted, "search should not abort")
	assert.Zero(t, result.Score, "stalemate should score 0")
}

func TestNegamaxAbortsWhenSearchingFlagCleared(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	searching := int32(0)
	s := NewSearcher(NewTable(), &searching)

	result := s.Negamax(pos, 4, 0, -MateScore-1, MateScore+1)
	assert.True(t, result.Aborted, "expected an aborted result when the searching flag is already clear")
}

func TestQuiesceMatchesStandPatInQuietPosition(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	s, _ := newSearcherForTest()

	result := s.Quiesce(pos, 0, -MateScore-1, MateScore+1)
	require.False(t, result.Aborted, "search should not abort")
	// No captures are available from the start position, so quiescence
	// degenerates to the static evaluation.
	assert.Zero(t, result.Score, "symmetric start position should evaluate to 0")
}
