package testutil

import (
	"testing"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/engine"
	"github.com/lgbarn/chesslab-go/internal/errors"
)

// AssertPiece fails unless the cell holds a piece of the given kind and colour.
func AssertPiece(t *testing.T, b *engine.Board, cell chess.Cell, kind chess.PieceType, colour chess.Colour) {
	t.Helper()
	p := b.PieceAt(cell)
	switch {
	case p == nil:
		t.Errorf("%v is empty; want %v %v", cell, colour, kind)
	case p.Kind != kind || p.Colour != colour:
		t.Errorf("%v holds %v %v; want %v %v", cell, p.Colour, p.Kind, colour, kind)
	}
}

// AssertEmpty fails if the cell holds a piece.
func AssertEmpty(t *testing.T, b *engine.Board, cell chess.Cell) {
	t.Helper()
	if p := b.PieceAt(cell); p != nil {
		t.Errorf("%v holds %v %v; want empty", cell, p.Colour, p.Kind)
	}
}

// AssertRejected fails unless err is a *errors.MoveError carrying reason.
// It returns the MoveError so callers can look at its context.
func AssertRejected(t *testing.T, err error, reason error) *errors.MoveError {
	t.Helper()
	var moveErr *errors.MoveError
	if !errors.As(err, &moveErr) {
		t.Errorf("error = %v; want a *MoveError", err)
		return nil
	}
	if !errors.Is(err, reason) {
		t.Errorf("rejected for %v; want %v", errors.Reason(err), reason)
	}
	return moveErr
}
