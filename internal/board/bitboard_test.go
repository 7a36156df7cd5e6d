package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareBBAndIsSet(t *testing.T) {
	bb := SquareBB(E4)
	assert.True(t, bb.IsSet(E4))
	assert.False(t, bb.IsSet(D4))
	assert.Equal(t, 1, bb.PopCount())
}

func TestPopLSB(t *testing.T) {
	bb := SquareBB(A1) | SquareBB(D4) | SquareBB(H8)
	var got []Square
	for bb != 0 {
		got = append(got, bb.PopLSB())
	}
	assert.Equal(t, []Square{A1, D4, H8}, got)
}

func TestShiftsStayOnBoard(t *testing.T) {
	bb := SquareBB(A1)
	assert.Zero(t, bb.SouthWest(), "SouthWest from a1 should wrap to empty")
	assert.Zero(t, bb.South(), "South from a1 should shift off board")
	assert.Equal(t, SquareBB(B2), bb.NorthEast(), "NorthEast from a1 should reach b2")
}

func TestFileWraparoundGuard(t *testing.T) {
	bb := SquareBB(H4)
	assert.Zero(t, bb.NorthEast(), "NorthEast from h-file must not wrap to a-file")

	bb = SquareBB(A4)
	assert.Zero(t, bb.NorthWest(), "NorthWest from a-file must not wrap to h-file")
}

func TestForEach(t *testing.T) {
	bb := SquareBB(A1) | SquareBB(B2) | SquareBB(C3)
	count := 0
	bb.ForEach(func(sq Square) { count++ })
	assert.Equal(t, 3, count)
}
