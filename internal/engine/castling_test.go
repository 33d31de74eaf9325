package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chesslab-go/internal/chess"
	chesserr "github.com/lgbarn/chesslab-go/internal/errors"
)

func TestCastling_BothSides(t *testing.T) {
	tests := []struct {
		name     string
		rookFrom chess.Cell
		kingTo   chess.Cell
		rookTo   chess.Cell
		events   []string
	}{
		{
			name:     "kingside",
			rookFrom: cell(7, 0),
			kingTo:   cell(6, 0),
			rookTo:   cell(5, 0),
			events: []string{
				"remove e1", "add White King g1",
				"remove h1", "add White Rook f1",
				"next turn",
			},
		},
		{
			name:     "queenside",
			rookFrom: cell(0, 0),
			kingTo:   cell(2, 0),
			rookTo:   cell(3, 0),
			events: []string{
				"remove e1", "add White King c1",
				"remove a1", "add White Rook d1",
				"next turn",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			king := NewKing(chess.White, cell(4, 0))
			rook := NewRook(chess.White, tt.rookFrom)
			b, rec := newTestBoard(king, rook)

			if !b.Castling(king, tt.kingTo) {
				t.Fatalf("Castling(%v) = false; want true", tt.kingTo)
			}
			if king.Cell != tt.kingTo || rook.Cell != tt.rookTo {
				t.Errorf("king at %v, rook at %v; want %v, %v", king.Cell, rook.Cell, tt.kingTo, tt.rookTo)
			}
			if !king.HasMoved || !rook.HasMoved {
				t.Errorf("HasMoved king=%v rook=%v; want both true", king.HasMoved, rook.HasMoved)
			}
			if b.PieceAt(tt.rookFrom) != nil || b.PieceAt(cell(4, 0)) != nil {
				t.Error("starting cells not emptied")
			}
			if diff := cmp.Diff(tt.events, rec.log); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCastling_ThroughMove(t *testing.T) {
	king := NewKing(chess.Black, cell(4, 7))
	rook := NewRook(chess.Black, cell(7, 7))
	b, rec := newTestBoard(king, rook)

	if err := b.TryMove(cell(4, 7), cell(6, 7), chess.Black); err != nil {
		t.Fatalf("TryMove() = %v; want nil", err)
	}
	if rook.Cell != cell(5, 7) {
		t.Errorf("rook.Cell = %v; want f8", rook.Cell)
	}
	for _, e := range rec.log {
		if e == "next turn" {
			t.Error("a castle played through TryMove must leave the turn to the caller")
		}
	}
}

func TestCastling_Refused(t *testing.T) {
	tests := []struct {
		name   string
		extra  []*Piece
		to     chess.Cell
		before func(b *Board)
	}{
		{
			name:  "king in check",
			extra: []*Piece{NewQueen(chess.Black, cell(1, 3))},
			to:    cell(6, 0),
		},
		{
			name:  "crossed cell attacked",
			extra: []*Piece{NewRook(chess.Black, cell(5, 7))},
			to:    cell(6, 0),
		},
		{
			name:  "destination attacked",
			extra: []*Piece{NewRook(chess.Black, cell(6, 7))},
			to:    cell(6, 0),
		},
		{
			name:  "piece between kingside",
			extra: []*Piece{NewKnight(chess.White, cell(5, 0))},
			to:    cell(6, 0),
		},
		{
			name:  "piece between queenside",
			extra: []*Piece{NewKnight(chess.White, cell(1, 0))},
			to:    cell(2, 0),
		},
		{
			name: "king has moved",
			to:   cell(6, 0),
			before: func(b *Board) {
				b.Move(cell(4, 0), cell(5, 0), chess.White)
				b.Move(cell(5, 0), cell(4, 0), chess.White)
			},
		},
		{
			name: "rook has moved",
			to:   cell(2, 0),
			before: func(b *Board) {
				b.Move(cell(0, 0), cell(0, 1), chess.White)
				b.Move(cell(0, 1), cell(0, 0), chess.White)
			},
		},
		{
			name: "no rook",
			to:   cell(6, 0),
			before: func(b *Board) {
				b.RemovePiece(cell(7, 0))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			king := NewKing(chess.White, cell(4, 0))
			pieces := append([]*Piece{king, NewRook(chess.White, cell(0, 0)), NewRook(chess.White, cell(7, 0))}, tt.extra...)
			b, rec := newTestBoard(pieces...)
			if tt.before != nil {
				tt.before(b)
			}
			rec.log = nil
			before := snapshot(b)

			err := b.TryMove(king.Cell, tt.to, chess.White)
			if !errors.Is(err, chesserr.ErrCastling) {
				t.Errorf("TryMove() = %v; want %v", err, chesserr.ErrCastling)
			}
			if b.Castling(king, tt.to) {
				t.Error("Castling() = true; want false")
			}
			if diff := cmp.Diff(before, snapshot(b)); diff != "" {
				t.Errorf("refused castle changed the board (-before +after):\n%s", diff)
			}
			if len(rec.log) != 0 {
				t.Errorf("refused castle emitted %v", rec.log)
			}
		})
	}
}

func TestCastling_RookUnderAttack(t *testing.T) {
	// Only the king's cells matter: a rook or a b-file under attack does not.
	king := NewKing(chess.White, cell(4, 0))
	rook := NewRook(chess.White, cell(0, 0))
	b, _ := newTestBoard(king, rook, NewRook(chess.Black, cell(1, 7)))

	if !b.Castling(king, cell(2, 0)) {
		t.Error("Castling(c1) = false; want true")
	}
}

func TestCastling_BlackInCheck(t *testing.T) {
	king := NewKing(chess.Black, cell(4, 7))
	rook := NewRook(chess.Black, cell(0, 7))
	b, _ := newTestBoard(NewQueen(chess.White, cell(1, 4)), king, rook)

	if b.Castling(king, cell(2, 7)) {
		t.Error("Castling() = true while in check; want false")
	}
	if king.Cell != cell(4, 7) || rook.Cell != cell(0, 7) || king.HasMoved || rook.HasMoved {
		t.Errorf("king %v, rook %v; want both unmoved", king, rook)
	}
}
