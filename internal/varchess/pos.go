package varchess

import "fmt"

// Pos is a (file, rank) pair; x grows to the right, y grows downwards.
type Pos struct {
	X, Y int
}

func (p Pos) Add(o Pos) Pos { return Pos{p.X + o.X, p.Y + o.Y} }
func (p Pos) Mul(k int) Pos { return Pos{p.X * k, p.Y * k} }
func (p Pos) Sub(o Pos) Pos { return Pos{p.X - o.X, p.Y - o.Y} }
func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Neighbors returns the two diagonal offsets orthogonal to the direction p,
// e.g. (0,1) -> (-1,1), (1,1). Used for pawn captures.
func (p Pos) Neighbors() [2]Pos {
	side := Pos{p.Y, p.X}
	return [2]Pos{p.Sub(side), p.Add(side)}
}

var (
	rookDirs   = [4]Pos{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	bishopDirs = [4]Pos{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

	// LOS lists the 8 line-of-sight unit offsets.
	LOS = [8]Pos{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}

	knightJumps = [8]Pos{{-2, -1}, {-2, 1}, {-1, -2}, {1, -2}, {-1, 2}, {1, 2}, {2, -1}, {2, 1}}
)
