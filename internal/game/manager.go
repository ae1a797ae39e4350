package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"varchess/internal/notation"
	"varchess/internal/varchess"
)

var (
	ErrNotFound    = errors.New("game not found")
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
)

// Manager keeps games in memory, keyed by uuid.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame registers a game starting from b with toMove to play. A nil board
// starts from the standard position with white to move.
func (m *Manager) NewGame(b *varchess.Board, toMove varchess.Color) GameState {
	if b == nil {
		b, toMove = varchess.StandardBoard(), varchess.White
	}
	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Board:     b,
		ToMove:    toMove,
		CreatedAt: now,
		UpdatedAt: now,
		seen:      map[uint64]int{positionKey(b, toMove): 1},
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return g.snapshot()
}

func (m *Manager) Get(id string) (GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, ErrNotFound
	}
	return g.snapshot(), nil
}

// Play applies a notated move for the side to move.
func (m *Manager) Play(id, text string) (GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, err := m.playable(id)
	if err != nil {
		return GameState{}, err
	}
	mv, err := notation.Parse(g.Board, g.ToMove, text)
	if err != nil {
		return GameState{}, fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	g.apply(mv)
	return g.snapshot(), nil
}

// Apply plays the legal move written the same way as mv for the side to move;
// the board may have moved on since mv was computed.
func (m *Manager) Apply(id string, mv varchess.Move) (GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, err := m.playable(id)
	if err != nil {
		return GameState{}, err
	}
	want := notation.Move(g.Board, mv)
	for _, cand := range g.Board.MoveList(g.ToMove, true) {
		if notation.Move(g.Board, cand) == want {
			g.apply(cand)
			return g.snapshot(), nil
		}
	}
	return GameState{}, fmt.Errorf("%w: %s", ErrIllegalMove, want)
}

func (m *Manager) playable(id string) (*GameState, error) {
	g, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	if st := g.Status(); st != "ongoing" {
		return nil, fmt.Errorf("%w: %s", ErrGameOver, st)
	}
	return g, nil
}

func (g *GameState) apply(mv varchess.Move) {
	g.Moves = append(g.Moves, notation.Move(g.Board, mv))
	g.Board = g.Board.Apply(g.ToMove, mv)
	g.ToMove = g.ToMove.Next()
	g.seen[positionKey(g.Board, g.ToMove)]++
	g.UpdatedAt = time.Now()
}
