package engine

import (
	"math"

	"varchess/internal/varchess"
)

var pieceValue = map[varchess.Kind]float64{
	varchess.Pawn:   1,
	varchess.Knight: 3,
	varchess.Bishop: 3.5,
	varchess.Rook:   5,
	varchess.Queen:  9,
	// large enough that no heuristic line gives the king away
	varchess.King: 1000,
}

// PieceValue returns the material value of k; zero for KindNone.
func PieceValue(k varchess.Kind) float64 {
	return pieceValue[k]
}

// axisValue peaks at 0.5 in the middle of an axis of length n and drops to 0
// at both edges.
func axisValue(x, n int) float64 {
	if n <= 1 {
		return 0.5
	}
	return 0.5 - math.Abs(float64(x)/float64(n-1)-0.5)
}

func positionalBonus(b *varchess.Board, p varchess.Pos) float64 {
	return axisValue(p.X, b.Width()) * axisValue(p.Y, b.Height())
}

// Evaluate is the material + centrality score of b from perspective's side.
func Evaluate(b *varchess.Board, perspective varchess.Color) float64 {
	score := 0.0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			p := varchess.Pos{X: x, Y: y}
			sq, _ := b.Get(p)
			if sq.Empty() {
				continue
			}
			val := pieceValue[sq.Piece.Kind] + positionalBonus(b, p)
			if sq.Color == perspective {
				score += val
			} else {
				score -= val
			}
		}
	}
	return score
}

// MoveValue approximates the material swing of playing actions from origin,
// assuming the mover is lost afterwards whenever the move wins material.
func MoveValue(b *varchess.Board, origin varchess.Pos, actions []varchess.Action) float64 {
	mover, ok := b.Get(origin)
	if !ok || mover.Empty() {
		panic("engine: move value of an empty origin")
	}
	value := 0.0
	for _, a := range actions {
		switch a.Type {
		case varchess.ActionGo, varchess.ActionTake:
			sq, ok := b.Get(a.Pos)
			if !ok || sq.Empty() {
				continue
			}
			if sq.Color == mover.Color {
				value -= pieceValue[sq.Piece.Kind]
			} else {
				value += pieceValue[sq.Piece.Kind]
			}
		case varchess.ActionPromotion:
			value += pieceValue[a.Kind]
		}
	}
	if value > 0 {
		value -= pieceValue[mover.Piece.Kind]
	}
	return value
}
