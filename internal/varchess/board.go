package varchess

import (
	"fmt"
	"strings"
)

// Board is a width x height grid stored row-major: index = x + y*width.
// A Board is treated as immutable once handed out; Play returns a new one.
type Board struct {
	width   int
	height  int
	squares []Square
}

// NewBoard returns an empty board. Only Place mutates it, and only during setup.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("varchess: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:   width,
		height:  height,
		squares: make([]Square, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

func (b *Board) index(p Pos) int { return p.X + p.Y*b.width }
func (b *Board) pos(i int) Pos   { return Pos{i % b.width, i / b.width} }

func (b *Board) mustIndex(p Pos) int {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("varchess: position %v outside %dx%d board", p, b.width, b.height))
	}
	return b.index(p)
}

// Get returns the occupant slot at p. ok is false when p is off the board;
// otherwise the square is either empty or occupied.
func (b *Board) Get(p Pos) (sq Square, ok bool) {
	if !b.InBounds(p) {
		return Square{}, false
	}
	return b.squares[b.index(p)], true
}

// Place puts sq at p. Setup only: boards already shared with the search must
// go through Play.
func (b *Board) Place(p Pos, sq Square) {
	b.squares[b.mustIndex(p)] = sq
}

func (b *Board) Clone() *Board {
	nb := &Board{width: b.width, height: b.height, squares: make([]Square, len(b.squares))}
	copy(nb.squares, b.squares)
	return nb
}

func (b *Board) Equal(o *Board) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.squares {
		if b.squares[i] != o.squares[i] {
			return false
		}
	}
	return true
}

// Play applies actions for the piece of color at origin on a copy of the board.
// Malformed input (empty origin, wrong color, off-board action) panics: it can
// only come from a bug in move generation.
func (b *Board) Play(color Color, origin Pos, actions []Action) *Board {
	mover, ok := b.Get(origin)
	if !ok || mover.Empty() {
		panic(fmt.Sprintf("varchess: play from empty square %v", origin))
	}
	if mover.Color != color {
		panic(fmt.Sprintf("varchess: %v does not own the piece at %v", color, origin))
	}

	nb := b.Clone()
	cur := origin
	for _, a := range actions {
		switch a.Type {
		case ActionGo:
			dst := nb.mustIndex(a.Pos)
			src := nb.index(cur)
			sq := nb.squares[src]
			nb.squares[src] = Square{}
			nb.squares[dst] = sq
			cur = a.Pos
		case ActionTake:
			nb.squares[nb.mustIndex(a.Pos)] = Square{}
		case ActionPromotion:
			nb.squares[nb.index(cur)].Piece = NewPiece(a.Kind)
		default:
			panic(fmt.Sprintf("varchess: unknown action type %d", a.Type))
		}
	}
	nb.advancePawns(origin, cur)
	return nb
}

// advancePawns closes the en passant window of every pawn that leaped on the
// previous ply and updates the status of the pawn that just moved.
func (b *Board) advancePawns(origin, cur Pos) {
	moved := b.index(cur)
	for i := range b.squares {
		pc := &b.squares[i].Piece
		if pc.Kind != Pawn {
			continue
		}
		if i == moved && cur != origin {
			if cur == origin.Add(pc.Orientation.Mul(2)) {
				pc.Status = JustLeaped
			} else {
				pc.Status = CannotLeap
			}
			continue
		}
		if pc.Status == JustLeaped {
			pc.Status = CannotLeap
		}
	}
}

var kindLetters = [...]byte{'.', 'p', 'n', 'b', 'r', 'q', 'k'}

func squareChar(sq Square) byte {
	if sq.Empty() {
		return '.'
	}
	ch := kindLetters[sq.Piece.Kind]
	if sq.Color == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// String draws the board with y=0 on the first line, white in upper case.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			sb.WriteByte(squareChar(b.squares[b.index(Pos{x, y})]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
