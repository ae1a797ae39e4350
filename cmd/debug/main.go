package main

import (
	"fmt"

	"varchess/internal/varchess"
)

func main() {
	b := varchess.StandardBoard()
	fmt.Println("Layout:", b.Encode(varchess.White))
	fmt.Print(b)
	fmt.Println("Pseudo legal moves:", len(b.MoveList(varchess.White, false)))
	fmt.Println("Legal moves:", len(b.MoveList(varchess.White, true)))
}
