package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"varchess/internal/engine"
	"varchess/internal/game"
	"varchess/internal/varchess"
)

func main() {
	depth := flag.Int("depth", 5, "search depth")
	maxPlies := flag.Int("plies", game.MaxPlies, "max plies to play")
	layout := flag.String("layout", "", "starting layout (default: standard position)")
	workers := flag.Int("workers", 0, "root search goroutines (0 = GOMAXPROCS)")
	games := flag.Int("games", 0, "play this many games engine vs random instead of self-play")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for the random player")
	flag.Parse()

	board, toMove := varchess.StandardBoard(), varchess.White
	if *layout != "" {
		b, side, err := varchess.Decode(*layout)
		if err != nil {
			log.Fatalf("bad layout: %v", err)
		}
		board, toMove = b, side
	}

	e := engine.NewEngine()
	e.Workers = *workers

	if *games > 0 {
		runMatch(e, board, toMove, *depth, *maxPlies, *games, rand.New(rand.NewSource(*seed)))
		os.Exit(0)
	}

	start := time.Now()
	rec, err := game.AutoPlay(context.Background(), e, board, toMove, *depth, *maxPlies)
	if err != nil {
		log.Fatalf("selfplay failed: %v", err)
	}
	fmt.Println(rec.Line())
	fmt.Print(rec.Final)
	log.Printf("selfplay finished: %d plies, %s, %v", len(rec.Moves), rec.Reason, time.Since(start))
}
