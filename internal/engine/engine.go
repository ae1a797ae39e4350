package engine

import (
	"context"
	"runtime"
	"sync/atomic"
)

// Engine runs searches and keeps the node count of the last one to finish.
// Searches may run concurrently on one Engine; each result carries its own
// count.
type Engine struct {
	nodes int64

	// Workers bounds the goroutines evaluating root moves; <= 0 means GOMAXPROCS.
	Workers int
}

func NewEngine() *Engine {
	return &Engine{}
}

// Nodes returns the node count of the last finished search.
func (e *Engine) Nodes() int64 {
	return atomic.LoadInt64(&e.nodes)
}

func (e *Engine) workers(cfg SearchConfig) int {
	n := cfg.Workers
	if n <= 0 {
		n = e.Workers
	}
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return n
}

// searcher is the per-goroutine state of one root subtree.
type searcher struct {
	ctx   context.Context
	nodes int64
}
