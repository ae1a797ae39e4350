package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter mounts the game API under /api.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/games", func(r chi.Router) {
		r.Post("/", h.handleNewGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleState)
			r.Post("/play", h.handlePlay)
			r.Post("/ai_move", h.handleAiMove)
		})
	})
	return r
}
