package httpserver

import (
	"varchess/internal/game"
	"varchess/internal/notation"
)

// NewGameRequest may carry a layout string; empty means the standard position.
type NewGameRequest struct {
	Layout string `json:"layout"`
}

type PlayRequest struct {
	Move string `json:"move"` // "e2e4", "e7e8=Q" or "e7e8q"
}

// AiMoveRequest asks the engine to move for the side to move.
type AiMoveRequest struct {
	MaxDepth int  `json:"max_depth"`
	Random   bool `json:"random"`
}

type StateResponse struct {
	GameID     string   `json:"game_id"`
	Position   string   `json:"position"` // layout string
	ToMove     string   `json:"to_move"`  // "white" / "black"
	LegalMoves []string `json:"legal_moves"`
	Moves      []string `json:"moves"`
	Status     string   `json:"status"` // "ongoing" / "checkmate" / "stalemate" / "draw"
}

type AiMoveResponse struct {
	BestMove string        `json:"best_move"`
	Score    float64       `json:"score"`
	Depth    int           `json:"depth"`
	Nodes    int64         `json:"nodes"`
	TimeMs   int64         `json:"time_ms"`
	State    StateResponse `json:"state"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func stateToDTO(g game.GameState) StateResponse {
	legal := g.Board.MoveList(g.ToMove, true)
	moves := make([]string, len(legal))
	for i, m := range legal {
		moves[i] = notation.Move(g.Board, m)
	}
	played := g.Moves
	if played == nil {
		played = []string{}
	}
	return StateResponse{
		GameID:     g.ID,
		Position:   g.Board.Encode(g.ToMove),
		ToMove:     g.ToMove.String(),
		LegalMoves: moves,
		Moves:      played,
		Status:     g.Status(),
	}
}
