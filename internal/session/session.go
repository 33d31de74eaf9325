// Package session keeps several games alive at once, each under its own id.
package session

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/config"
	"github.com/lgbarn/chesslab-go/internal/controller"
	"github.com/lgbarn/chesslab-go/internal/engine"
	chesserr "github.com/lgbarn/chesslab-go/internal/errors"
)

// Game is a controller guarded for use from several goroutines.
type Game struct {
	ID string

	mu   sync.Mutex
	ctrl *controller.Controller
}

// Move plays a move for the side to move.
func (g *Game) Move(from, to chess.Cell) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ctrl.TryMove(from, to)
}

// Turn returns the game's turn counter.
func (g *Game) Turn() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ctrl.Turn()
}

// PieceAt returns the piece on a cell of the game's board, or nil.
func (g *Game) PieceAt(cell chess.Cell) *engine.Piece {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ctrl.Board().PieceAt(cell)
}

// SideToMove returns the colour whose turn it is.
func (g *Game) SideToMove() chess.Colour {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ctrl.SideToMove()
}

// Restart sets the game back to the starting position.
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ctrl.NewGame()
}

// Manager owns the running games.
type Manager struct {
	cfg   *config.Config
	mu    sync.RWMutex
	games map[string]*Game
}

// NewManager creates an empty manager. A nil cfg means defaults.
func NewManager(cfg *config.Config) *Manager {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Manager{cfg: cfg, games: make(map[string]*Game)}
}

// NewGame starts a game shown on view and returns it under a fresh id.
func (m *Manager) NewGame(view controller.View) *Game {
	g := &Game{ID: uuid.NewString(), ctrl: controller.New(m.cfg)}
	g.ctrl.Start(view)
	g.ctrl.NewGame()

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()

	m.cfg.Logf(config.Commentary, "session %s started", g.ID)
	return g
}

// Get returns the game with the given id.
func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	g, ok := m.games[id]
	m.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(chesserr.ErrUnknownGame, "session %q", id)
	}
	return g, nil
}

// Move plays a move in the game with the given id.
func (m *Manager) Move(id string, from, to chess.Cell) error {
	g, err := m.Get(id)
	if err != nil {
		return err
	}
	return g.Move(from, to)
}

// Delete ends a game.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return errors.Wrapf(chesserr.ErrUnknownGame, "session %q", id)
	}
	delete(m.games, id)
	m.cfg.Logf(config.Commentary, "session %s ended", id)
	return nil
}

// IDs returns the ids of the running games, sorted.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of running games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
