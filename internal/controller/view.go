package controller

import "github.com/lgbarn/chesslab-go/internal/chess"

// View mirrors the game for a user. Every call is made from the goroutine
// driving the Controller.
type View interface {
	// StartView opens the view.
	StartView()

	// PutPiece shows a piece on a cell.
	PutPiece(kind chess.PieceType, colour chess.Colour, row, col int)

	// RemovePiece empties a cell.
	RemovePiece(row, col int)

	// DisplayMessage shows turn and check banners.
	DisplayMessage(msg string)

	// AskUser blocks until the user has picked one of the choices.
	AskUser(title, question string, choices ...Choice) Choice
}

// Choice is an option offered through View.AskUser.
type Choice interface {
	TextValue() string
}

// nopView is used until a real view is started.
type nopView struct{}

func (nopView) StartView() {}
func (nopView) PutPiece(chess.PieceType, chess.Colour, int, int) {}
func (nopView) RemovePiece(int, int) {}
func (nopView) DisplayMessage(string) {}
func (nopView) AskUser(string, string, ...Choice) Choice { return nil }
