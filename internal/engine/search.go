package engine

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"varchess/internal/varchess"
)

const (
	defaultDepth    = 3
	cancelCheckMask = 1<<10 - 1
)

type SearchConfig struct {
	Depth   int // plies, <= 0 means 3
	Workers int // root parallelism, <= 0 defers to Engine.Workers
}

type SearchResult struct {
	Move     varchess.Move
	Found    bool    // false when the side to move has no legal move
	Score    float64 // from the mover's perspective
	Depth    int
	Nodes    int64
	TimeUsed time.Duration
}

// Search picks the legal move of color with the best negamax score. Root moves
// are scored concurrently with a full window each, and the first move with the
// strictly greatest score wins, so the result does not depend on scheduling.
func (e *Engine) Search(ctx context.Context, b *varchess.Board, color varchess.Color, cfg SearchConfig) (SearchResult, error) {
	if cfg.Depth <= 0 {
		cfg.Depth = defaultDepth
	}
	start := time.Now()
	var nodes atomic.Int64

	moves := b.MoveList(color, true)
	if len(moves) == 0 {
		atomic.StoreInt64(&e.nodes, 0)
		return SearchResult{Depth: cfg.Depth, TimeUsed: time.Since(start)}, nil
	}

	scores := make([]float64, len(moves))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers(cfg))
	for i, mv := range moves {
		i, mv := i, mv
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s := &searcher{ctx: gctx}
			child := b.Apply(color, mv)
			scores[i] = -s.negamax(child, cfg.Depth-1, math.Inf(-1), math.Inf(1), color.Next())
			nodes.Add(s.nodes)
			// a cancelled subtree returns early with a partial score
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return SearchResult{}, fmt.Errorf("engine: search aborted: %w", err)
	}

	atomic.StoreInt64(&e.nodes, nodes.Load())

	best := -1
	for i, score := range scores {
		if best < 0 || score > scores[best] {
			best = i
		}
	}
	return SearchResult{
		Move:     moves[best],
		Found:    true,
		Score:    scores[best],
		Depth:    cfg.Depth,
		Nodes:    nodes.Load(),
		TimeUsed: time.Since(start),
	}, nil
}

// Minmax searches depth plies with a fresh engine and reports whether color
// has any legal move at all.
func Minmax(b *varchess.Board, color varchess.Color, depth int) (varchess.Move, bool) {
	res, err := NewEngine().Search(context.Background(), b, color, SearchConfig{Depth: depth})
	if err != nil {
		return varchess.Move{}, false
	}
	return res.Move, res.Found
}

type scoredMove struct {
	move  varchess.Move
	value float64
}

// negamax scores b for color to move. Candidates are pseudo-legal; on the last
// ply, moves the ordering heuristic marks as losing material are not explored.
func (s *searcher) negamax(b *varchess.Board, depth int, alpha, beta float64, color varchess.Color) float64 {
	s.nodes++
	if depth <= 0 {
		return Evaluate(b, color)
	}
	if s.nodes&cancelCheckMask == 0 && s.ctx.Err() != nil {
		return Evaluate(b, color)
	}

	moves := orderMoves(b, b.MoveList(color, false), depth == 1)
	if len(moves) == 0 {
		return Evaluate(b, color)
	}

	best := math.Inf(-1)
	for _, m := range moves {
		score := -s.negamax(b.Apply(color, m.move), depth-1, -beta, -alpha, color.Next())
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// orderMoves sorts by descending MoveValue, keeping generation order on ties.
// With dropUnsafe, moves with a negative value are removed first.
func orderMoves(b *varchess.Board, moves []varchess.Move, dropUnsafe bool) []scoredMove {
	out := make([]scoredMove, 0, len(moves))
	for _, mv := range moves {
		v := MoveValue(b, mv.Origin, mv.Actions)
		if dropUnsafe && v < 0 {
			continue
		}
		out = append(out, scoredMove{move: mv, value: v})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].value > out[j].value
	})
	return out
}
