package engine

import (
	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/errors"
)

// proposePawn plans a pawn move: a step onto an empty cell, a diagonal
// capture, or an en passant capture of the pawn that just double-stepped
// past it.
func proposePawn(pawn *Piece, to chess.Cell, link *Link) (*plan, error) {
	pl := &plan{piece: pawn, from: pawn.Cell, to: to}

	switch target := link.PieceAt(to); {
	case pawn.pawnStep(to) > 0:
		if target != nil {
			return nil, errors.ErrIllegalMove
		}
		pl.doubleStep = pawn.pawnStep(to) == 2

	case pawn.pawnDiagonal(to):
		if target != nil {
			pl.captured = target
			break
		}
		// The victim stands beside the pawn, on the destination's file.
		victim := link.PieceAt(chess.NewCell(to.Row, pawn.Cell.Col))
		if victim == nil || victim.Kind != chess.Pawn ||
			victim.Colour == pawn.Colour || !victim.CanEnPassant {
			return nil, errors.ErrIllegalMove
		}
		pl.captured = victim
		pl.enPassant = true

	default:
		return nil, errors.ErrIllegalMove
	}

	pl.promotion = to.Col == chess.FirstLine || to.Col == chess.LastLine
	return pl, nil
}

// promote replaces a pawn standing on the last line with the piece chosen
// through the Promotion event. No answer means a Queen.
func (b *Board) promote(pawn *Piece) {
	if pawn == nil || b.pieces[pawn.Cell] != pawn {
		panic(errors.Precondition("promotion of a pawn not on the board: %v", pawn))
	}

	cell := pawn.Cell
	delete(b.pieces, cell)
	b.events.pieceRemoved(cell)

	chosen := b.events.promotion(pawn)
	if chosen == nil {
		chosen = NewQueen(pawn.Colour, cell)
	}
	if chosen.Colour != pawn.Colour || !chosen.Kind.Promotable() {
		panic(errors.Precondition("pawn %v cannot become %v", pawn, chosen))
	}

	chosen.Cell = cell
	chosen.HasMoved = true
	b.AddPiece(chosen)
}

// enPassant takes the pawn captured en passant off the board.
func (b *Board) enPassant(captured chess.Cell) {
	delete(b.pieces, captured)
	b.events.pieceRemoved(captured)
}
