package varchess

// Moves returns the candidate action sequences of a piece of color standing on
// origin. It only reads the board.
func (p Piece) Moves(b *Board, origin Pos, color Color) [][]Action {
	var out [][]Action
	switch p.Kind {
	case Pawn:
		genPawnMoves(b, origin, color, p, &out)
	case Knight:
		genKnightMoves(b, origin, color, &out)
	case Bishop:
		genBishopMoves(b, origin, color, &out)
	case Rook:
		genRookMoves(b, origin, color, &out)
	case Queen:
		genQueenMoves(b, origin, color, &out)
	case King:
		genKingMoves(b, origin, color, &out)
	}
	return out
}

// Moves collects the candidates of every piece of color, in board index order.
// Origins without any sequence are left out. With checkLegality, sequences that
// leave a king of color capturable are dropped.
func (b *Board) Moves(color Color, checkLegality bool) []Candidate {
	var out []Candidate
	for i, sq := range b.squares {
		if sq.Empty() || sq.Color != color {
			continue
		}
		origin := b.pos(i)
		seqs := sq.Piece.Moves(b, origin, color)
		if checkLegality {
			seqs = b.filterSafe(color, origin, seqs)
		}
		if len(seqs) == 0 {
			continue
		}
		out = append(out, Candidate{Origin: origin, Sequences: seqs})
	}
	return out
}

// MoveList is Moves flattened into one list, keeping the same order.
func (b *Board) MoveList(color Color, checkLegality bool) []Move {
	var out []Move
	for _, c := range b.Moves(color, checkLegality) {
		for _, seq := range c.Sequences {
			out = append(out, Move{Origin: c.Origin, Actions: seq})
		}
	}
	return out
}

// ByOrigin indexes candidates by their origin.
func ByOrigin(cands []Candidate) map[Pos][][]Action {
	m := make(map[Pos][][]Action, len(cands))
	for _, c := range cands {
		m[c.Origin] = c.Sequences
	}
	return m
}

func (b *Board) filterSafe(color Color, origin Pos, seqs [][]Action) [][]Action {
	safe := seqs[:0]
	for _, seq := range seqs {
		if !b.Play(color, origin, seq).InCheck(color) {
			safe = append(safe, seq)
		}
	}
	return safe
}

// Apply plays m for color. Shorthand for Play(color, m.Origin, m.Actions).
func (b *Board) Apply(color Color, m Move) *Board {
	return b.Play(color, m.Origin, m.Actions)
}
