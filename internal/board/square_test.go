package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		sq   Square
	}{
		{"a1", A1},
		{"h8", H8},
		{"e4", E4},
		{"d5", D5},
	}
	for _, c := range cases {
		assert.Equal(t, c.name, c.sq.String())

		parsed, err := ParseSquare(c.name)
		require.NoErrorf(t, err, "ParseSquare(%q)", c.name)
		assert.Equal(t, c.sq, parsed)
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, s := range []string{"", "a", "i1", "a9", "abc"} {
		_, err := ParseSquare(s)
		assert.Errorf(t, err, "ParseSquare(%q)", s)
	}
}

func TestNoSquareString(t *testing.T) {
	assert.Equal(t, "-", NoSquare.String())
}

func TestFileRank(t *testing.T) {
	assert.Equal(t, 4, E4.File())
	assert.Equal(t, 3, E4.Rank())
}
