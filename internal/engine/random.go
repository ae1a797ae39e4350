package engine

import "varchess/internal/varchess"

// Intn is the entropy source of RandomMove; *math/rand.Rand satisfies it.
type Intn interface {
	Intn(n int) int
}

// RandomMove picks a legal origin uniformly, then one of its sequences
// uniformly. Origins with many sequences are not favoured.
func RandomMove(b *varchess.Board, color varchess.Color, rng Intn) (varchess.Move, bool) {
	cands := b.Moves(color, true)
	if len(cands) == 0 {
		return varchess.Move{}, false
	}
	c := cands[rng.Intn(len(cands))]
	return varchess.Move{Origin: c.Origin, Actions: c.Sequences[rng.Intn(len(c.Sequences))]}, true
}
