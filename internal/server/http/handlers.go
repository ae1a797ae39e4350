package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"varchess/internal/engine"
	"varchess/internal/game"
	"varchess/internal/notation"
	"varchess/internal/varchess"
)

const (
	defaultAiDepth = 3
	maxAiDepth     = 6
)

type Handler struct {
	games  *game.Manager
	engine *engine.Engine

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewHandler(games *game.Manager, e *engine.Engine) *Handler {
	if games == nil {
		games = game.NewManager()
	}
	if e == nil {
		e = engine.NewEngine()
	}
	return &Handler{
		games:  games,
		engine: e,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (h *Handler) Engine() *engine.Engine { return h.engine }

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	var (
		board  *varchess.Board
		toMove varchess.Color
	)
	if req.Layout != "" {
		b, side, err := varchess.Decode(req.Layout)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		board, toMove = b, side
	}

	g := h.games.NewGame(board, toMove)
	writeJSONStatus(w, http.StatusCreated, stateToDTO(g))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	g, err := h.games.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, stateToDTO(g))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := decodeJSON(r, &req); err != nil || req.Move == "" {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	g, err := h.games.Play(chi.URLParam(r, "id"), req.Move)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, stateToDTO(g))
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	id := chi.URLParam(r, "id")
	g, err := h.games.Get(id)
	if err != nil {
		writeGameError(w, err)
		return
	}
	if st := g.Status(); st != "ongoing" {
		writeError(w, http.StatusConflict, game.ErrGameOver.Error()+": "+st)
		return
	}

	depth := req.MaxDepth
	if depth <= 0 {
		depth = defaultAiDepth
	}
	depth = min(depth, maxAiDepth)

	var res engine.SearchResult
	if req.Random {
		h.rngMu.Lock()
		mv, ok := engine.RandomMove(g.Board, g.ToMove, h.rng)
		h.rngMu.Unlock()
		res = engine.SearchResult{Move: mv, Found: ok}
	} else {
		res, err = h.engine.Search(r.Context(), g.Board, g.ToMove, engine.SearchConfig{Depth: depth})
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
	}
	if !res.Found {
		writeError(w, http.StatusConflict, game.ErrGameOver.Error())
		return
	}

	best := notation.Move(g.Board, res.Move)
	next, err := h.games.Apply(id, res.Move)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, AiMoveResponse{
		BestMove: best,
		Score:    res.Score,
		Depth:    res.Depth,
		Nodes:    res.Nodes,
		TimeMs:   res.TimeUsed.Milliseconds(),
		State:    stateToDTO(next),
	})
}

// decodeJSON tolerates an empty body.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, game.ErrIllegalMove):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSONStatus(w, code, ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
