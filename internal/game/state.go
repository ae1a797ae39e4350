package game

import (
	"time"

	"varchess/internal/varchess"
)

const repetitionLimit = 3

type GameState struct {
	ID        string
	Board     *varchess.Board
	ToMove    varchess.Color
	Moves     []string
	CreatedAt time.Time
	UpdatedAt time.Time

	seen map[uint64]int // position key -> occurrences
}

func positionKey(b *varchess.Board, toMove varchess.Color) uint64 {
	h := b.Hash()
	if toMove == varchess.Black {
		h = ^h
	}
	return h
}

// Status is "ongoing", "checkmate", "stalemate" or "draw" (threefold repetition).
func (g *GameState) Status() string {
	if st := g.Board.Status(g.ToMove); st != varchess.Ongoing {
		return st.String()
	}
	if g.seen[positionKey(g.Board, g.ToMove)] >= repetitionLimit {
		return "draw"
	}
	return "ongoing"
}

// snapshot copies the state so callers never share the move slice or history.
func (g *GameState) snapshot() GameState {
	cp := *g
	cp.Moves = append([]string(nil), g.Moves...)
	cp.seen = make(map[uint64]int, len(g.seen))
	for k, v := range g.seen {
		cp.seen[k] = v
	}
	return cp
}
