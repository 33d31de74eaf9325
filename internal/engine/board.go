// Package engine provides chess move validation and board manipulation.
package engine

import (
	"sort"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/errors"
)

// Board maps cells to pieces and runs the move transaction.
// It is not safe for concurrent use; one caller drives it at a time.
type Board struct {
	pieces map[chess.Cell]*Piece
	kings  *KingPair
	events *Events
	link   *Link
}

// Move is a source-destination pair.
type Move struct {
	From chess.Cell
	To   chess.Cell
}

// NewBoard creates an empty board reporting to the given events table.
func NewBoard(events *Events) *Board {
	b := &Board{
		pieces: make(map[chess.Cell]*Piece),
		events: events,
	}
	b.kings = newKingPair(b)
	b.link = &Link{
		PieceAt:   b.PieceAt,
		Attacked:  b.attacked,
		Promote:   b.promote,
		EnPassant: b.enPassant,
		Castle:    b.castle,
	}
	return b
}

// AddPiece places a piece on its cell and notifies the events table.
// A king added this way becomes the tracked king of its colour.
func (b *Board) AddPiece(p *Piece) {
	if p == nil {
		panic(errors.Precondition("adding a nil piece"))
	}
	b.pieces[p.Cell] = p
	if p.Kind == chess.King {
		b.kings.set(p)
	}
	b.events.pieceAdded(p)
}

// RemovePiece empties a cell, notifies the events table and returns what
// was there.
func (b *Board) RemovePiece(cell chess.Cell) *Piece {
	p := b.pieces[cell]
	delete(b.pieces, cell)
	b.events.pieceRemoved(cell)
	return p
}

// MovePiece moves a piece to a cell, taking whatever stood there, and returns
// the taken piece. No legality checks are made.
func (b *Board) MovePiece(to chess.Cell, p *Piece) *Piece {
	if p == nil || !to.Valid() {
		panic(errors.Precondition("moving %v to %v", p, to))
	}

	taken := b.pieces[to]
	if taken != nil {
		b.RemovePiece(to)
	}
	b.RemovePiece(p.Cell)

	p.Cell = to
	b.AddPiece(p)
	return taken
}

// PieceAt returns the piece on a cell, or nil.
func (b *Board) PieceAt(cell chess.Cell) *Piece {
	return b.pieces[cell]
}

// Pieces returns every piece on the board ordered by line, then file.
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, 0, len(b.pieces))
	for _, p := range b.pieces {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cell.Col != out[j].Cell.Col {
			return out[i].Cell.Col < out[j].Cell.Col
		}
		return out[i].Cell.Row < out[j].Cell.Row
	})
	return out
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.pieces)
}

// Kings returns the tracked kings.
func (b *Board) Kings() *KingPair {
	return b.kings
}

// Clear removes every piece without notifying anyone.
func (b *Board) Clear() {
	b.pieces = make(map[chess.Cell]*Piece)
	b.kings = newKingPair(b)
}

// Init sets up the starting position: White on line 0, Black on line 7,
// pawns on the lines next to them.
func (b *Board) Init() {
	b.kings = newKingPair(b)

	for _, colour := range chess.Colours {
		home := chess.HomeLine(colour)
		for row, kind := range chess.BackRank {
			b.AddPiece(NewPiece(kind, colour, chess.NewCell(row, home)))
		}

		line := chess.PawnLine(colour)
		for row := 0; row < chess.BoardSize; row++ {
			b.AddPiece(NewPawn(colour, chess.NewCell(row, line)))
		}
	}
}

// ResetEnPassant closes the en passant window of every pawn not of the
// given colour.
func (b *Board) ResetEnPassant(colour chess.Colour) {
	for _, p := range b.pieces {
		if p.Kind == chess.Pawn && p.Colour != colour {
			p.CanEnPassant = false
		}
	}
}

// IsCheck reports whether the king (which need not be on the board) would be
// attacked on its cell.
func (b *Board) IsCheck(king *Piece) bool {
	return b.attacked(king.Cell, king.Colour)
}

// LegalMoves returns every move the given side may make, ordered by source
// then destination.
func (b *Board) LegalMoves(side chess.Colour) []Move {
	var moves []Move
	for _, p := range b.Pieces() {
		if p.Colour != side {
			continue
		}
		from := p.Cell
		for col := 0; col < chess.BoardSize; col++ {
			for row := 0; row < chess.BoardSize; row++ {
				to := chess.NewCell(row, col)
				if b.Legal(from, to, side) {
					moves = append(moves, Move{From: from, To: to})
				}
			}
		}
	}
	return moves
}

// pathClear reports whether every cell of the path is empty.
func (b *Board) pathClear(path []chess.Cell) bool {
	for _, cell := range path {
		if b.pieces[cell] != nil {
			return false
		}
	}
	return true
}

// attacked reports whether a king of the given colour would be in check on
// the cell: some opposing piece other than a king reaches it with a clear path.
func (b *Board) attacked(cell chess.Cell, colour chess.Colour) bool {
	for _, p := range b.pieces {
		if p.Colour == colour || !p.attacks(cell) {
			continue
		}
		if b.pathClear(p.Path(cell)) {
			return true
		}
	}
	return false
}
