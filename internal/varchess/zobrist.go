package varchess

// splitmix64 step; keys are derived on demand so any board size hashes
// without a precomputed table.
func mix64(z uint64) uint64 {
	z += 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func squareKey(index int, sq Square) uint64 {
	pc := sq.Piece
	code := uint64(sq.Color)
	code = code<<4 | uint64(pc.Kind)
	code = code<<2 | uint64(pc.Status)
	code = code<<4 | uint64(pc.Orientation.X+1)<<2 | uint64(pc.Orientation.Y+1)
	return mix64(uint64(index)<<16 | code)
}

// Hash returns a 64-bit hash of the dimensions and occupants.
func (b *Board) Hash() uint64 {
	h := mix64(uint64(b.width)<<32 | uint64(b.height))
	for i, sq := range b.squares {
		if sq.Empty() {
			continue
		}
		h ^= squareKey(i, sq)
	}
	return h
}
