package engine

import (
	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/errors"
)

// plan is a proposed move with everything its commit will touch.
type plan struct {
	piece    *Piece
	from, to chess.Cell

	// captured is the piece taken: the one on `to`, or the pawn beside it
	// for an en passant capture.
	captured  *Piece
	enPassant bool

	// rook is the castling partner; it travels from rookFrom to rookTo.
	rook             *Piece
	rookFrom, rookTo chess.Cell
	direction        int

	doubleStep bool
	promotion  bool
}

// Move attempts to move the piece on `from` to `to` for the given side.
// It returns false, with the board untouched, if the move is not legal.
func (b *Board) Move(from, to chess.Cell, side chess.Colour) bool {
	return b.TryMove(from, to, side) == nil
}

// TryMove is Move returning the reason for a rejection as a *errors.MoveError.
//
// A legal move is committed in this order: the captured piece is removed,
// the mover leaves its cell and lands on the destination, a castling rook
// follows, a promotion is resolved, the opponent is told about check. En
// passant windows of the opponent's pawns are closed.
func (b *Board) TryMove(from, to chess.Cell, side chess.Colour) error {
	p, err := b.prepare(from, to, side)
	if err != nil {
		return &errors.MoveError{Err: err, From: from, To: to, Colour: side}
	}
	b.commit(p, side)
	return nil
}

// Legal reports whether the move would be accepted, without changing the
// board or emitting any event.
func (b *Board) Legal(from, to chess.Cell, side chess.Colour) bool {
	p, err := b.prepare(from, to, side)
	if err != nil {
		return false
	}
	b.undo(p)
	return true
}

// prepare validates a move and leaves it tentatively applied on the board.
// On error the board is exactly as it was.
func (b *Board) prepare(from, to chess.Cell, side chess.Colour) (*plan, error) {
	if !from.Valid() || !to.Valid() {
		return nil, errors.ErrOffBoard
	}

	p := b.pieces[from]
	if p == nil {
		return nil, errors.ErrNoPiece
	}
	if p.Colour != side {
		return nil, errors.ErrWrongColour
	}
	if target := b.pieces[to]; target != nil && target.Colour == side {
		return nil, errors.ErrOwnPiece
	}

	pl, err := b.propose(p, to)
	if err != nil {
		return nil, err
	}
	if !b.pathClear(p.Path(to)) {
		return nil, errors.ErrPathBlocked
	}

	b.apply(pl)
	if b.kings.InCheck(side) {
		b.undo(pl)
		return nil, errors.ErrSelfCheck
	}
	return pl, nil
}

// propose checks the move against the piece's rules in the current position.
func (b *Board) propose(p *Piece, to chess.Cell) (*plan, error) {
	switch {
	case p.Kind == chess.Pawn:
		return proposePawn(p, to, b.link)

	case p.Kind == chess.King && to.Col == p.Cell.Col && p.Cell.DistanceCol(to) == 2:
		return proposeCastle(p, to, b.link)
	}

	if !p.CanMove(to) {
		return nil, errors.ErrIllegalMove
	}
	return &plan{piece: p, from: p.Cell, to: to, captured: b.pieces[to]}, nil
}

// apply performs the board part of a plan without notifying anyone.
func (b *Board) apply(pl *plan) {
	if pl.captured != nil {
		delete(b.pieces, pl.captured.Cell)
	}

	delete(b.pieces, pl.from)
	pl.piece.Cell = pl.to
	b.pieces[pl.to] = pl.piece

	if pl.rook != nil {
		delete(b.pieces, pl.rookFrom)
		pl.rook.Cell = pl.rookTo
		b.pieces[pl.rookTo] = pl.rook
	}
}

// undo reverts apply.
func (b *Board) undo(pl *plan) {
	if pl.rook != nil {
		delete(b.pieces, pl.rookTo)
		pl.rook.Cell = pl.rookFrom
		b.pieces[pl.rookFrom] = pl.rook
	}

	delete(b.pieces, pl.to)
	pl.piece.Cell = pl.from
	b.pieces[pl.from] = pl.piece

	if pl.captured != nil {
		b.pieces[pl.captured.Cell] = pl.captured
	}
}

// commit finishes a tentatively applied plan: flags, side effects and
// notifications.
func (b *Board) commit(pl *plan, side chess.Colour) {
	if pl.captured != nil {
		if pl.enPassant {
			b.link.EnPassant(pl.captured.Cell)
		} else {
			b.events.pieceRemoved(pl.captured.Cell)
		}
	}
	b.events.pieceRemoved(pl.from)
	b.events.pieceAdded(pl.piece)

	switch pl.piece.Kind {
	case chess.Pawn:
		pl.piece.HasMoved = true
		pl.piece.CanEnPassant = pl.doubleStep
	case chess.Rook, chess.King:
		pl.piece.HasMoved = true
	}

	if pl.rook != nil {
		b.link.Castle(pl.piece, pl.rook, pl.direction)
	}
	if pl.promotion {
		b.link.Promote(pl.piece)
	}

	b.ResetEnPassant(side)

	if king := b.kings.Check(); king != nil {
		b.events.check(king.Colour)
	}
}
