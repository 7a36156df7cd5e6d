package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMateStatusCheckmate(t *testing.T) {
	// Classic back-rank mate: black king on g8 boxed in by its own pawns;
	// Ra8 delivers mate along the 8th rank.
	pos, err := ParseFEN("6k1/5ppp/8/8/8/8/6K1/R7 w - - 0 1")
	require.NoError(t, err)

	m := Move{Kind: Rook, From: A1, To: A8, Promotion: InvalidKind}
	var undo Undo
	require.True(t, pos.MakeMove(m, &undo), "Ra8 should be legal")

	assert.Equal(t, Checkmate, pos.GetMateStatus())
}

func TestGetMateStatusStalemate(t *testing.T) {
	pos, err := ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, Stalemate, pos.GetMateStatus())
}

func TestGetMateStatusNoMateInStartPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	assert.Equal(t, NoMate, pos.GetMateStatus())
}

func TestAttacksOfSideIncludesOwnOccupancy(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	attacks := pos.AttacksOfSide(White)
	assert.NotZero(t, attacks&SquareBB(D3), "pawn on e2 should attack d3")
	assert.NotZero(t, attacks&SquareBB(F3), "pawn on e2 should attack f3")
	assert.NotZero(t, attacks&SquareBB(E2), "king on e1 should count its own pawn on e2 as attacked")
}
