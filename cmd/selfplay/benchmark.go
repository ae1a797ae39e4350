package main

import (
	"context"
	"fmt"
	"log"

	"varchess/internal/engine"
	"varchess/internal/notation"
	"varchess/internal/varchess"
)

type player struct {
	Name   string
	Random bool
}

// runMatch alternates colors between the searching engine and the random mover.
func runMatch(e *engine.Engine, board *varchess.Board, first varchess.Color, depth, maxPlies, games int, rng engine.Intn) {
	searcher := player{Name: fmt.Sprintf("Negamax (Depth %d)", depth)}
	random := player{Name: "Random", Random: true}

	searchWins, randomWins, draws := 0, 0, 0
	for g := 0; g < games; g++ {
		white, black := searcher, random
		if g%2 == 1 {
			white, black = random, searcher
		}
		fmt.Printf("\n=== Game %d: White [%s] vs Black [%s] ===\n", g+1, white.Name, black.Name)

		winner, ok := playGame(e, board, first, white, black, depth, maxPlies, rng)
		switch {
		case !ok:
			draws++
			fmt.Println("Result: Draw")
		case winner == searcher:
			searchWins++
			fmt.Printf("Result: %s Wins!\n", searcher.Name)
		default:
			randomWins++
			fmt.Printf("Result: %s Wins!\n", random.Name)
		}
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", searcher.Name, searchWins)
	fmt.Printf("%s: %d\n", random.Name, randomWins)
	fmt.Printf("Draws: %d\n", draws)
}

// playGame returns the winner; ok is false for a draw, stalemate or ply limit.
func playGame(e *engine.Engine, b *varchess.Board, toMove varchess.Color, white, black player, depth, maxPlies int, rng engine.Intn) (player, bool) {
	players := map[varchess.Color]player{varchess.White: white, varchess.Black: black}
	for ply := 0; ply < maxPlies; ply++ {
		switch b.Status(toMove) {
		case varchess.Checkmate:
			return players[toMove.Next()], true
		case varchess.Stalemate:
			return player{}, false
		}

		var (
			mv varchess.Move
			ok bool
		)
		if players[toMove].Random {
			mv, ok = engine.RandomMove(b, toMove, rng)
		} else {
			res, err := e.Search(context.Background(), b, toMove, engine.SearchConfig{Depth: depth})
			if err != nil {
				log.Fatalf("search failed: %v", err)
			}
			mv, ok = res.Move, res.Found
		}
		if !ok {
			return player{}, false
		}
		fmt.Printf("%s ", notation.Move(b, mv))
		b = b.Apply(toMove, mv)
		toMove = toMove.Next()

		// a king captured in a pseudo-legal line ends the game too
		if !b.KingExists(toMove) {
			return players[toMove.Next()], true
		}
	}
	return player{}, false
}
