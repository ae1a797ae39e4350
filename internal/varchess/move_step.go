package varchess

// Knight and king: fixed offsets, any cell on the board not held by our own side.
func genStepMoves(b *Board, from Pos, color Color, offsets []Pos, out *[][]Action) {
	for _, d := range offsets {
		to := from.Add(d)
		sq, ok := b.Get(to)
		if !ok {
			continue
		}
		if sq.Empty() || sq.Color != color {
			*out = append(*out, []Action{Go(to)})
		}
	}
}

func genKnightMoves(b *Board, from Pos, color Color, out *[][]Action) {
	genStepMoves(b, from, color, knightJumps[:], out)
}

// No castling: pieces are placed, not developed from a fixed start.
func genKingMoves(b *Board, from Pos, color Color, out *[][]Action) {
	genStepMoves(b, from, color, LOS[:], out)
}
