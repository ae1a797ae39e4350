package game

import (
	"context"
	"log"
	"strings"

	"varchess/internal/engine"
	"varchess/internal/notation"
	"varchess/internal/varchess"
)

// MaxPlies caps self-play games.
const MaxPlies = 100

type EndReason string

const (
	EndNoMoves  EndReason = "no_moves"
	EndPlyLimit EndReason = "ply_limit"
)

// Record is the outcome of a self-play game.
type Record struct {
	Moves  []string
	Final  *varchess.Board
	ToMove varchess.Color
	Reason EndReason
}

// Line joins the notated moves with spaces.
func (r Record) Line() string {
	return strings.Join(r.Moves, " ")
}

// AutoPlay lets e play both sides from b, start moving first, until a side has
// no legal move or maxPlies (<= 0 means MaxPlies) have been played.
func AutoPlay(ctx context.Context, e *engine.Engine, b *varchess.Board, start varchess.Color, depth, maxPlies int) (Record, error) {
	if maxPlies <= 0 {
		maxPlies = MaxPlies
	}
	rec := Record{Final: b, ToMove: start}
	for ply := 0; ; ply++ {
		if ply >= maxPlies {
			log.Printf("game too long: stopped after %d plies", ply)
			rec.Reason = EndPlyLimit
			return rec, nil
		}
		res, err := e.Search(ctx, rec.Final, rec.ToMove, engine.SearchConfig{Depth: depth})
		if err != nil {
			return rec, err
		}
		if !res.Found {
			log.Printf("no more valid moves for %v after %d plies", rec.ToMove, ply)
			rec.Reason = EndNoMoves
			return rec, nil
		}
		rec.Moves = append(rec.Moves, notation.Move(rec.Final, res.Move))
		rec.Final = rec.Final.Apply(rec.ToMove, res.Move)
		rec.ToMove = rec.ToMove.Next()
	}
}
