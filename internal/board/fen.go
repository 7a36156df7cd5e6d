package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard chess starting position in Forsyth-Edwards
// notation.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a Position from a six-field FEN record.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen %q: expected 6 fields, got %d", fen, len(fields))
	}

	pos := NewEmptyPosition()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind := KindFromChar(byte(c))
				if kind == InvalidKind {
					return nil, fmt.Errorf("fen %q: invalid piece char %q", fen, c)
				}
				if file > 7 {
					return nil, fmt.Errorf("fen %q: rank %d overflows", fen, rank+1)
				}
				color := White
				if c >= 'a' && c <= 'z' {
					color = Black
				}
				pos.PlacePiece(color, kind, NewSquare(file, rank))
				file++
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("fen %q: rank %d has %d files, want 8", fen, rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("fen %q: invalid side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				pos.Castling |= WhiteKingside
			case 'Q':
				pos.Castling |= WhiteQueenside
			case 'k':
				pos.Castling |= BlackKingside
			case 'q':
				pos.Castling |= BlackQueenside
			default:
				return nil, fmt.Errorf("fen %q: invalid castling char %q", fen, c)
			}
		}
	}

	if fields[3] == "-" {
		pos.EnPassant = NoSquare
	} else {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("fen %q: invalid en passant square: %w", fen, err)
		}
		pos.EnPassant = sq
	}

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("fen %q: invalid halfmove clock: %w", fen, err)
	}
	pos.HalfMoveClock = halfMove

	moveCount, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("fen %q: invalid fullmove number: %w", fen, err)
	}
	pos.MoveCount = moveCount

	pos.Hash = Hash(pos)

	return pos, nil
}

// String renders the position as a FEN record.
func (p *Position) String() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			color, kind := p.PieceAt(NewSquare(file, rank))
			if kind == InvalidKind {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			c := kind.Char()
			if color == White {
				c = byte(strings.ToUpper(string(c))[0])
			}
			sb.WriteByte(c)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.Castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.Castling&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if p.Castling&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if p.Castling&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if p.Castling&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if p.EnPassant == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.EnPassant.String())
	}

	fmt.Fprintf(&sb, " %d %d", p.HalfMoveClock, p.MoveCount)

	return sb.String()
}
