package board

import (
	"strings"

	"github.com/fatih/color"
)

var (
	whitePieceColor = color.New(color.FgWhite, color.Bold)
	blackPieceColor = color.New(color.FgCyan, color.Bold)
	coordColor      = color.New(color.FgHiBlack)
)

// Pretty renders the board as an 8x8 ANSI-colored grid for the UCI "d"
// debug extension, along with the FEN and Zobrist key.
func (p *Position) Pretty() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		sb.WriteString(coordColor.Sprintf("%d ", rank+1))
		for file := 0; file < 8; file++ {
			c, kind := p.PieceAt(NewSquare(file, rank))
			if kind == InvalidKind {
				sb.WriteString(". ")
				continue
			}
			glyph := strings.ToUpper(string(kind.Char()))
			if c == White {
				sb.WriteString(whitePieceColor.Sprint(glyph))
			} else {
				sb.WriteString(blackPieceColor.Sprint(glyph))
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(coordColor.Sprint("  a b c d e f g h\n"))
	sb.WriteString("Fen: " + p.String() + "\n")
	sb.WriteString("Key: ")
	sb.WriteString(formatHex(p.Hash))
	sb.WriteString("\n")

	return sb.String()
}

func formatHex(v uint64) string {
	const digits = "0123456789abcdef"
	b := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		b[i] = digits[v&0xF]
		v >>= 4
	}
	return string(b)
}
