package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPseudoLegalMoveCountStartPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	var moves MoveList
	GeneratePseudoLegalMoves(pos, &moves)
	assert.Equal(t, 20, moves.Len())
}

func TestPawnDoublePush(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	var moves MoveList
	GeneratePseudoLegalMoves(pos, &moves)
	found := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.Kind == Pawn && m.From == E2 && m.To == E4 {
			found = true
		}
	}
	assert.True(t, found, "expected e2e4 double push among pseudo-legal moves")
}

func TestPromotionGeneratesFourMoves(t *testing.T) {
	pos, err := ParseFEN("8/P7/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)

	var moves MoveList
	GeneratePseudoLegalMoves(pos, &moves)
	count := 0
	kinds := map[PieceKind]bool{}
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.Kind == Pawn && m.From == A7 && m.To == A8 {
			count++
			kinds[m.Promotion] = true
		}
	}
	require.Equal(t, 4, count)
	for _, k := range []PieceKind{Queen, Rook, Bishop, Knight} {
		assert.Truef(t, kinds[k], "missing promotion to %v", k)
	}
}

func TestEnPassantGeneration(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	var moves MoveList
	GeneratePseudoLegalMoves(pos, &moves)
	found := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.Kind == Pawn && m.From == E5 && m.To == D6 {
			found = true
		}
	}
	assert.True(t, found, "expected e5d6 en passant capture among pseudo-legal moves")
}

func TestCastlingGeneration(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var moves MoveList
	GeneratePseudoLegalMoves(pos, &moves)
	shortFound, longFound := false, false
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.Kind == King && m.From == E1 && m.To == G1 {
			shortFound = true
		}
		if m.Kind == King && m.From == E1 && m.To == C1 {
			longFound = true
		}
	}
	assert.True(t, shortFound, "expected kingside castling move")
	assert.True(t, longFound, "expected queenside castling move")
}

func TestCastlingBlockedByOccupant(t *testing.T) {
	pos, err := ParseFEN("r3k1nr/8/8/8/8/8/8/R3K1NR w KQkq - 0 1")
	require.NoError(t, err)

	var moves MoveList
	GeneratePseudoLegalMoves(pos, &moves)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		assert.Falsef(t, m.Kind == King && m.From == E1 && m.To == G1,
			"kingside castle should be blocked by the knight on g1")
	}
}
