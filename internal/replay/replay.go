// Package replay plays move scripts through a controller without a user.
package replay

import (
	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chesslab-go/internal/config"
	"github.com/lgbarn/chesslab-go/internal/controller"
	"github.com/lgbarn/chesslab-go/internal/errors"
	"github.com/lgbarn/chesslab-go/internal/hashing"
	"github.com/lgbarn/chesslab-go/internal/script"
)

// Game is a controller driven by a headless view.
type Game struct {
	ctrl *controller.Controller
	view *View
}

// NewGame creates a game at the starting position.
func NewGame(cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	g := &Game{
		ctrl: controller.New(cfg),
		view: NewView(cfg),
	}
	g.ctrl.Start(g.view)
	g.ctrl.NewGame()
	return g
}

// Controller returns the controller behind the game.
func (g *Game) Controller() *controller.Controller {
	return g.ctrl
}

// Play plays one scripted move, answering a promotion prompt with the
// move's promotion piece.
func (g *Game) Play(m script.Move) error {
	g.view.promotion = m.Promotion
	defer func() { g.view.promotion = 0 }()
	return g.ctrl.TryMove(m.From, m.To)
}

// Result summarises one replay.
type Result struct {
	Name     string
	Applied  int    // Moves accepted
	Rejected []int  // Script lines of the rejected moves
	Checks   int    // Check announcements seen
	Turn     int    // Controller turn at the end
	Hash     uint64 // Position key at the end
	Err      error  // Rejections, combined; nil if every move was accepted
}

// OK reports whether every move was accepted.
func (r Result) OK() bool {
	return r.Err == nil
}

// Run plays a script on a game. It stops at the first rejected move unless
// cfg.Replay.KeepGoing is set, in which case every rejection is collected.
func Run(g *Game, s *script.Script, cfg *config.Config) Result {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	res := Result{Name: s.Name}
	var errs *multierror.Error

	for _, m := range s.Moves {
		if err := g.Play(m); err != nil {
			res.Rejected = append(res.Rejected, m.Line)
			errs = multierror.Append(errs, errors.Wrapf(err, "%s:%d", s.Name, m.Line))
			if !cfg.Replay.KeepGoing {
				break
			}
			continue
		}
		res.Applied++
	}

	res.Checks = g.view.Checks
	res.Turn = g.ctrl.Turn()
	res.Hash = hashing.Position(g.ctrl.Board())
	res.Err = errs.ErrorOrNil()

	cfg.Logf(config.Summary, "%s: %d applied, %d rejected, turn %d",
		res.Name, res.Applied, len(res.Rejected), res.Turn)
	return res
}

// Script replays a script on a fresh game.
func Script(s *script.Script, cfg *config.Config) Result {
	return Run(NewGame(cfg), s, cfg)
}
