package main

import (
	"flag"
	"log"
	"net/http"

	"varchess/internal/engine"
	"varchess/internal/game"
	httpserver "varchess/internal/server/http"
)

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	workers := flag.Int("workers", 0, "root search goroutines (0 = GOMAXPROCS)")
	flag.Parse()

	e := engine.NewEngine()
	e.Workers = *workers
	h := httpserver.NewHandler(game.NewManager(), e)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, httpserver.NewRouter(h)); err != nil {
		log.Fatal(err)
	}
}
