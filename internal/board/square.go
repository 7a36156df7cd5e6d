// Package board implements the bitboard position representation, magic
// bitboard attack tables, pseudo-legal move generation and make/unmake
// with retroactive legality that the search engine stands on.
package board

import "fmt"

// Square is a board square, 0..63. Square 0 is a1, 63 is h8.
// File = square % 8, rank = square / 8 (little-endian rank-file mapping).
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NoSquare is the sentinel for "no square" (used for en-passant and king lookups).
const NoSquare Square = 64

// NewSquare builds a square from 0-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the file (0=a .. 7=h).
func (s Square) File() int {
	return int(s) % 8
}

// Rank returns the rank (0=rank1 .. 7=rank8).
func (s Square) Rank() int {
	return int(s) / 8
}

// String returns the algebraic name, e.g. "e4".
func (s Square) String() string {
	if s >= NoSquare {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare parses an algebraic square name, e.g. "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	file := s[0] - 'a'
	rank := s[1] - '1'
	if file > 7 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return NewSquare(int(file), int(rank)), nil
}
