package varchess

// Sliding pieces walk each ray until the edge or the first occupant, which is
// included only when it belongs to the opponent.
func genSlideMoves(b *Board, from Pos, color Color, dirs []Pos, out *[][]Action) {
	for _, d := range dirs {
		for to := from.Add(d); ; to = to.Add(d) {
			sq, ok := b.Get(to)
			if !ok {
				break
			}
			if sq.Empty() {
				*out = append(*out, []Action{Go(to)})
				continue
			}
			if sq.Color != color {
				*out = append(*out, []Action{Go(to)})
			}
			break
		}
	}
}

func genBishopMoves(b *Board, from Pos, color Color, out *[][]Action) {
	genSlideMoves(b, from, color, bishopDirs[:], out)
}

func genRookMoves(b *Board, from Pos, color Color, out *[][]Action) {
	genSlideMoves(b, from, color, rookDirs[:], out)
}

func genQueenMoves(b *Board, from Pos, color Color, out *[][]Action) {
	genBishopMoves(b, from, color, out)
	genRookMoves(b, from, color, out)
}
