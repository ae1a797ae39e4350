package varchess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Layout strings are FEN-like: rows from y=0 joined by '/', digits for runs of
// empty cells, PNBRQK for white and pnbrqk for black, then the side to move.
// Pawns carry their orientation (^ v < >) and status (* can leap, ! just
// leaped, nothing otherwise), e.g. "p v*".

var ErrInvalidLayout = errors.New("invalid layout")

// MaxSide bounds both dimensions of a decoded board.
const MaxSide = 64

var letterToKind = map[byte]Kind{
	'p': Pawn,
	'n': Knight,
	'b': Bishop,
	'r': Rook,
	'q': Queen,
	'k': King,
}

var orientationMarks = map[byte]Pos{
	'^': {0, -1},
	'v': {0, 1},
	'<': {-1, 0},
	'>': {1, 0},
}

func orientationMark(p Pos) byte {
	for ch, o := range orientationMarks {
		if o == p {
			return ch
		}
	}
	return '?'
}

func (b *Board) Encode(toMove Color) string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < b.width; x++ {
			sq := b.squares[b.index(Pos{x, y})]
			if sq.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(squareChar(sq))
			if sq.Piece.Kind == Pawn {
				sb.WriteByte(orientationMark(sq.Piece.Orientation))
				switch sq.Piece.Status {
				case CanLeap:
					sb.WriteByte('*')
				case JustLeaped:
					sb.WriteByte('!')
				}
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	sb.WriteByte(' ')
	if toMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

// Decode parses a layout string into a board and the side to move.
func Decode(s string) (*Board, Color, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return nil, White, fmt.Errorf("%w: want \"<rows> <w|b>\", got %q", ErrInvalidLayout, s)
	}
	var toMove Color
	switch parts[1] {
	case "w":
		toMove = White
	case "b":
		toMove = Black
	default:
		return nil, White, fmt.Errorf("%w: side to move %q", ErrInvalidLayout, parts[1])
	}

	rows := strings.Split(parts[0], "/")
	if len(rows) > MaxSide {
		return nil, White, fmt.Errorf("%w: %d rows, at most %d", ErrInvalidLayout, len(rows), MaxSide)
	}
	grid := make([][]Square, 0, len(rows))
	for y, row := range rows {
		cells, err := decodeRow(row)
		if err != nil {
			return nil, White, fmt.Errorf("%w: row %d: %v", ErrInvalidLayout, y, err)
		}
		if y > 0 && len(cells) != len(grid[0]) {
			return nil, White, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLayout, y, len(cells), len(grid[0]))
		}
		grid = append(grid, cells)
	}
	if len(grid[0]) == 0 {
		return nil, White, fmt.Errorf("%w: empty rows", ErrInvalidLayout)
	}

	b := NewBoard(len(grid[0]), len(grid))
	for y, cells := range grid {
		for x, sq := range cells {
			b.Place(Pos{x, y}, sq)
		}
	}
	return b, toMove, nil
}

func decodeRow(row string) ([]Square, error) {
	var cells []Square
	for i := 0; i < len(row); {
		ch := row[i]
		if ch >= '0' && ch <= '9' {
			n := 0
			for i < len(row) && row[i] >= '0' && row[i] <= '9' {
				n = n*10 + int(row[i]-'0')
				i++
				if len(cells)+n > MaxSide {
					return nil, fmt.Errorf("wider than %d cells", MaxSide)
				}
			}
			if n == 0 {
				return nil, errors.New("zero-length run")
			}
			cells = append(cells, make([]Square, n)...)
			continue
		}

		color := Black
		lower := ch
		if ch >= 'A' && ch <= 'Z' {
			color = White
			lower = ch + ('a' - 'A')
		}
		kind, ok := letterToKind[lower]
		if !ok {
			return nil, fmt.Errorf("unknown piece letter %q", ch)
		}
		i++
		pc := NewPiece(kind)
		if kind == Pawn {
			if i >= len(row) {
				return nil, errors.New("pawn without orientation")
			}
			dir, ok := orientationMarks[row[i]]
			if !ok {
				return nil, fmt.Errorf("unknown pawn orientation %q", row[i])
			}
			i++
			status := CannotLeap
			if i < len(row) {
				switch row[i] {
				case '*':
					status = CanLeap
					i++
				case '!':
					status = JustLeaped
					i++
				}
			}
			pc = NewPawn(dir, status)
		}
		if len(cells) == MaxSide {
			return nil, fmt.Errorf("wider than %d cells", MaxSide)
		}
		cells = append(cells, Occupant(color, pc))
	}
	return cells, nil
}
