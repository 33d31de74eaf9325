package engine

import "github.com/lgbarn/chesslab-go/internal/chess"

// Events is the Board's outgoing notification table. The controller fills it
// in once, at construction; nil entries are skipped.
type Events struct {
	// PieceAdded is called after a piece lands on a cell.
	PieceAdded func(p *Piece)

	// PieceRemoved is called after a cell is emptied.
	PieceRemoved func(cell chess.Cell)

	// NextTurn is called when the board completes a move on its own
	// initiative (a standalone castle).
	NextTurn func()

	// Promotion asks for the piece replacing a pawn that reached the last
	// line. It blocks until the user has chosen. A nil answer means Queen.
	Promotion func(pawn *Piece) *Piece

	// Check announces that the king of the given colour is in check.
	Check func(colour chess.Colour)
}

func (e *Events) pieceAdded(p *Piece) {
	if e != nil && e.PieceAdded != nil {
		e.PieceAdded(p)
	}
}

func (e *Events) pieceRemoved(cell chess.Cell) {
	if e != nil && e.PieceRemoved != nil {
		e.PieceRemoved(cell)
	}
}

func (e *Events) nextTurn() {
	if e != nil && e.NextTurn != nil {
		e.NextTurn()
	}
}

func (e *Events) promotion(pawn *Piece) *Piece {
	if e != nil && e.Promotion != nil {
		return e.Promotion(pawn)
	}
	return nil
}

func (e *Events) check(colour chess.Colour) {
	if e != nil && e.Check != nil {
		e.Check(colour)
	}
}

// Link is the channel through which pawn and king rules reach the board:
// queries while a move is proposed, requests when it is committed.
type Link struct {
	// PieceAt returns the piece on a cell, or nil.
	PieceAt func(cell chess.Cell) *Piece

	// Attacked reports whether a king of the given colour standing on the
	// cell would be in check.
	Attacked func(cell chess.Cell, colour chess.Colour) bool

	// Promote replaces a pawn standing on the last line.
	Promote func(pawn *Piece)

	// EnPassant removes the pawn captured en passant.
	EnPassant func(captured chess.Cell)

	// Castle completes a castle by moving the rook next to the king.
	Castle func(king, rook *Piece, direction int)
}
