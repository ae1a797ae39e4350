package varchess

import "testing"

// at converts "e4" into a position on an 8-row board.
func at(name string) Pos {
	return Pos{X: int(name[0] - 'a'), Y: 8 - int(name[1]-'0')}
}

func put(t *testing.T, b *Board, name string, c Color, p Piece) {
	t.Helper()
	b.Place(at(name), Occupant(c, p))
}

func destinations(seqs [][]Action) map[Pos]bool {
	out := make(map[Pos]bool)
	for _, seq := range seqs {
		for _, a := range seq {
			if a.Type == ActionGo {
				out[a.Pos] = true
			}
		}
	}
	return out
}

func movesFrom(b *Board, c Color, origin Pos, checkLegality bool) [][]Action {
	return ByOrigin(b.Moves(c, checkLegality))[origin]
}
