package engine

import (
	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/errors"
)

// proposeCastle plans a castle for a king asked to move two cells sideways.
// The king must not be in check, the rook on that side must be its own and
// unmoved with nothing in between, and neither cell the king crosses or lands
// on may be attacked.
func proposeCastle(king *Piece, to chess.Cell, link *Link) (*plan, error) {
	if !king.castlingShape(to) {
		return nil, errors.Wrap(errors.ErrCastling, "king has moved")
	}
	if link.Attacked(king.Cell, king.Colour) {
		return nil, errors.Wrap(errors.ErrCastling, "king in check")
	}

	direction := king.Cell.DirectionRow(to)
	rookFrom := rookHome(king.Cell.Col, direction)
	rook := link.PieceAt(rookFrom)
	if rook == nil || rook.Kind != chess.Rook || rook.Colour != king.Colour {
		return nil, errors.Wrap(errors.ErrCastling, "no rook")
	}
	if rook.HasMoved {
		return nil, errors.Wrap(errors.ErrCastling, "rook has moved")
	}

	for _, cell := range segment(king.Cell, rookFrom) {
		if link.PieceAt(cell) != nil {
			return nil, errors.Wrapf(errors.ErrCastling, "%v is occupied", cell)
		}
	}

	crossed := king.Cell.Offset(direction, 0)
	for _, cell := range []chess.Cell{crossed, to} {
		if link.Attacked(cell, king.Colour) {
			return nil, errors.Wrapf(errors.ErrCastling, "%v is attacked", cell)
		}
	}

	return &plan{
		piece:     king,
		from:      king.Cell,
		to:        to,
		rook:      rook,
		rookFrom:  rookFrom,
		rookTo:    crossed,
		direction: direction,
	}, nil
}

// rookHome returns the starting cell of the rook a king castles with.
func rookHome(line, direction int) chess.Cell {
	if direction > 0 {
		return chess.NewCell(chess.KingsideRookRow, line)
	}
	return chess.NewCell(chess.QueensideRookRow, line)
}

// castle completes a castle whose king has already landed: the rook is shown
// next to it and loses its castling right.
func (b *Board) castle(king, rook *Piece, direction int) {
	if king == nil || rook == nil {
		panic(errors.Precondition("castling with king %v and rook %v", king, rook))
	}
	b.events.pieceRemoved(rookHome(king.Cell.Col, direction))
	b.events.pieceAdded(rook)
	rook.HasMoved = true
}

// Castling castles the king towards the destination, two cells along its
// line, as a move of its own: on success the NextTurn event is emitted.
// It returns false, with nothing changed, if castling is not allowed.
func (b *Board) Castling(king *Piece, to chess.Cell) bool {
	if king == nil || king.Kind != chess.King {
		panic(errors.Precondition("castling with %v", king))
	}
	if b.pieces[king.Cell] != king || !king.castlingShape(to) {
		return false
	}

	pl, err := b.prepare(king.Cell, to, king.Colour)
	if err != nil {
		return false
	}
	b.commit(pl, king.Colour)
	b.events.nextTurn()
	return true
}
