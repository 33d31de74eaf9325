// Package controller drives a game: it keeps the turn, passes moves to the
// engine and relays the engine's notifications to a View.
package controller

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/config"
	"github.com/lgbarn/chesslab-go/internal/engine"
	"github.com/lgbarn/chesslab-go/internal/errors"
)

// Promotion prompt texts.
const (
	PromotionTitle    = "Promotion"
	PromotionQuestion = "Choose a piece to promote"
)

// Controller holds a board and the turn counter. White moves on even turns.
type Controller struct {
	cfg   *config.Config
	view  View
	board *engine.Board
	turn  int
}

// New creates a controller with an empty board. A nil cfg means defaults.
func New(cfg *config.Config) *Controller {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	c := &Controller{cfg: cfg, view: nopView{}}
	c.board = engine.NewBoard(&engine.Events{
		PieceAdded:   c.pieceAdded,
		PieceRemoved: c.pieceRemoved,
		NextTurn:     c.nextTurn,
		Promotion:    c.promotion,
		Check:        c.check,
	})
	return c
}

// Start attaches the view and opens it.
func (c *Controller) Start(view View) {
	if view == nil {
		view = nopView{}
	}
	c.view = view
	view.StartView()
}

// NewGame clears the view and the board, resets the turn and sets up the
// starting position.
func (c *Controller) NewGame() {
	for _, p := range c.board.Pieces() {
		c.view.RemovePiece(p.Cell.Row, p.Cell.Col)
	}
	c.board.Clear()
	c.turn = 0
	c.announceTurn()
	c.board.Init()
	c.cfg.Logf(config.Commentary, "new game")
}

// Move plays a move for the side to move. It reports whether the move was
// legal; a legal move advances the turn.
func (c *Controller) Move(fromRow, fromCol, toRow, toCol int) bool {
	return c.TryMove(chess.NewCell(fromRow, fromCol), chess.NewCell(toRow, toCol)) == nil
}

// TryMove is Move returning the rejection as a *errors.MoveError.
func (c *Controller) TryMove(from, to chess.Cell) error {
	if c.cfg.Game.AnnounceTurns {
		c.announceTurn()
	}

	side := c.SideToMove()
	if err := c.board.TryMove(from, to, side); err != nil {
		var moveErr *errors.MoveError
		if errors.As(err, &moveErr) {
			moveErr.Turn = c.turn
		}
		c.cfg.Logf(config.Commentary, "rejected %v", err)
		return err
	}

	c.cfg.Logf(config.Commentary, "turn %d: %s %s-%s", c.turn, side, from, to)
	c.nextTurn()
	return nil
}

// Turn returns the number of moves played since the game started.
func (c *Controller) Turn() int {
	return c.turn
}

// SideToMove returns White on even turns and Black on odd ones.
func (c *Controller) SideToMove() chess.Colour {
	if c.turn%2 == 0 {
		return chess.White
	}
	return chess.Black
}

// Board returns the board being played on.
func (c *Controller) Board() *engine.Board {
	return c.board
}

func (c *Controller) announceTurn() {
	c.view.DisplayMessage(fmt.Sprintf("Turn %d: %s player's turn", c.turn, c.SideToMove()))
}

func (c *Controller) nextTurn() {
	c.turn++
	c.announceTurn()
}

func (c *Controller) pieceAdded(p *engine.Piece) {
	c.view.PutPiece(p.Kind, p.Colour, p.Cell.Row, p.Cell.Col)
}

func (c *Controller) pieceRemoved(cell chess.Cell) {
	c.view.RemovePiece(cell.Row, cell.Col)
}

func (c *Controller) check(colour chess.Colour) {
	c.view.DisplayMessage(strings.ToLower(colour.String()) + " is in check")
	c.cfg.Logf(config.Commentary, "%s is in check", colour)
}

// promotion offers Queen, Rook, Bishop and Knight of the pawn's colour. The
// answer is matched by its text; anything unrecognised gets the configured
// default piece.
func (c *Controller) promotion(pawn *engine.Piece) *engine.Piece {
	candidates := []*engine.Piece{
		engine.NewQueen(pawn.Colour, pawn.Cell),
		engine.NewRook(pawn.Colour, pawn.Cell),
		engine.NewBishop(pawn.Colour, pawn.Cell),
		engine.NewKnight(pawn.Colour, pawn.Cell),
	}
	choices := make([]Choice, len(candidates))
	for i, p := range candidates {
		choices[i] = p
	}

	if answer := c.view.AskUser(PromotionTitle, PromotionQuestion, choices...); answer != nil {
		for _, p := range candidates {
			if p.TextValue() == answer.TextValue() {
				return p
			}
		}
		c.cfg.Logf(config.Summary, "unknown promotion choice %q", answer.TextValue())
	}
	return engine.NewPiece(c.cfg.Game.DefaultPromotion, pawn.Colour, pawn.Cell)
}
