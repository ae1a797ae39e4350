package varchess

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

var (
	// Down is the forward direction of pawns starting at the top (y=0).
	Down = Pos{0, 1}
	// Up is the forward direction of pawns starting at the bottom.
	Up = Pos{0, -1}
)

// StandardBoard is the 8x8 start position: black on y=0..1, white on y=6..7.
func StandardBoard() *Board {
	b := NewBoard(8, 8)
	for x, k := range backRank {
		b.Place(Pos{x, 0}, Occupant(Black, NewPiece(k)))
		b.Place(Pos{x, 1}, Occupant(Black, NewPawn(Down, CanLeap)))
		b.Place(Pos{x, 6}, Occupant(White, NewPawn(Up, CanLeap)))
		b.Place(Pos{x, 7}, Occupant(White, NewPiece(k)))
	}
	return b
}

// InvertColors swaps the color of every piece and keeps everything else,
// pawn orientation included.
func InvertColors(b *Board) *Board {
	nb := b.Clone()
	for i := range nb.squares {
		if !nb.squares[i].Empty() {
			nb.squares[i].Color = nb.squares[i].Color.Next()
		}
	}
	return nb
}
