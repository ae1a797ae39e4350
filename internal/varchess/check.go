package varchess

// Attacked reports whether some pseudo-legal sequence of by moves onto or
// removes the piece at target. Intended for occupied targets such as kings.
func (b *Board) Attacked(target Pos, by Color) bool {
	for i, sq := range b.squares {
		if sq.Empty() || sq.Color != by {
			continue
		}
		for _, seq := range sq.Piece.Moves(b, b.pos(i), by) {
			for _, a := range seq {
				if a.Type != ActionPromotion && a.Pos == target {
					return true
				}
			}
		}
	}
	return false
}

// InCheck reports whether any king of color is attacked. A side without a king
// is never in check.
func (b *Board) InCheck(color Color) bool {
	for i, sq := range b.squares {
		if sq.Empty() || sq.Color != color || sq.Piece.Kind != King {
			continue
		}
		if b.Attacked(b.pos(i), color.Next()) {
			return true
		}
	}
	return false
}

type Status int8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Status classifies the position for color to move: without a legal move it
// is checkmate when in check, stalemate otherwise.
func (b *Board) Status(color Color) Status {
	if len(b.Moves(color, true)) > 0 {
		return Ongoing
	}
	if b.InCheck(color) {
		return Checkmate
	}
	return Stalemate
}

func (b *Board) KingExists(color Color) bool {
	for _, sq := range b.squares {
		if !sq.Empty() && sq.Color == color && sq.Piece.Kind == King {
			return true
		}
	}
	return false
}
