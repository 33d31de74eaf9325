package engine

import (
	"fmt"

	"github.com/lgbarn/chesslab-go/internal/chess"
)

// Piece is a chess piece on (or about to be placed on) the board.
//
// Kind and Colour never change. HasMoved is only meaningful for pawns,
// rooks and kings and only ever goes from false to true. CanEnPassant is the
// one-ply window opened by a pawn's double step. InCheck is the king's
// check latch maintained by KingPair.
type Piece struct {
	Kind   chess.PieceType
	Colour chess.Colour
	Cell   chess.Cell

	HasMoved     bool
	CanEnPassant bool
	InCheck      bool
}

// NewPiece creates a piece of the given kind.
func NewPiece(kind chess.PieceType, colour chess.Colour, cell chess.Cell) *Piece {
	return &Piece{Kind: kind, Colour: colour, Cell: cell}
}

// NewPawn creates a pawn.
func NewPawn(colour chess.Colour, cell chess.Cell) *Piece {
	return NewPiece(chess.Pawn, colour, cell)
}

// NewRook creates a rook.
func NewRook(colour chess.Colour, cell chess.Cell) *Piece {
	return NewPiece(chess.Rook, colour, cell)
}

// NewKnight creates a knight.
func NewKnight(colour chess.Colour, cell chess.Cell) *Piece {
	return NewPiece(chess.Knight, colour, cell)
}

// NewBishop creates a bishop.
func NewBishop(colour chess.Colour, cell chess.Cell) *Piece {
	return NewPiece(chess.Bishop, colour, cell)
}

// NewQueen creates a queen.
func NewQueen(colour chess.Colour, cell chess.Cell) *Piece {
	return NewPiece(chess.Queen, colour, cell)
}

// NewKing creates a king.
func NewKing(colour chess.Colour, cell chess.Cell) *Piece {
	return NewPiece(chess.King, colour, cell)
}

// TextValue is the label shown to the user when the piece is offered as a choice.
func (p *Piece) TextValue() string {
	if p == nil {
		return ""
	}
	return p.Kind.String()
}

// String returns a short description such as "White Knight g1".
func (p *Piece) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s %s", p.Colour, p.Kind, p.Cell)
}

// CanMove reports whether the destination is reachable by the piece's own
// geometry, ignoring every other piece on the board.
//
// For pawns this accepts the forward step, the double step of an unmoved pawn
// and the forward diagonals; for kings the adjacent cells and the two-cell
// castling shape of an unmoved king. Whether those moves are allowed in the
// current position is decided by the Board.
func (p *Piece) CanMove(to chess.Cell) bool {
	if to == p.Cell || !to.Valid() {
		return false
	}

	from := p.Cell
	switch p.Kind {
	case chess.Rook:
		return straight(from, to)

	case chess.Bishop:
		return diagonal(from, to)

	case chess.Queen:
		return straight(from, to) || diagonal(from, to)

	case chess.Knight:
		return from.DistanceRow(to)*from.DistanceCol(to) == 2

	case chess.King:
		return adjacent(from, to) || p.castlingShape(to)

	case chess.Pawn:
		return p.pawnStep(to) > 0 || p.pawnDiagonal(to)
	}
	return false
}

// Path returns the cells strictly between the piece and the destination, in
// order, for a destination accepted by CanMove. Knights jump and adjacent
// king moves have nothing in between.
func (p *Piece) Path(to chess.Cell) []chess.Cell {
	from := p.Cell
	switch p.Kind {
	case chess.Rook, chess.Bishop, chess.Queen:
		if straight(from, to) || diagonal(from, to) {
			return segment(from, to)
		}

	case chess.King:
		if p.castlingShape(to) {
			return segment(from, to)
		}

	case chess.Pawn:
		if p.pawnStep(to) == 2 {
			return segment(from, to)
		}
	}
	return nil
}

// attacks reports whether the piece threatens the cell, given only the
// geometry. Pawns threaten their forward diagonals, occupied or not.
func (p *Piece) attacks(cell chess.Cell) bool {
	if p.Kind == chess.Pawn {
		return cell != p.Cell && p.pawnDiagonal(cell)
	}
	if p.Kind == chess.King {
		return false
	}
	return p.CanMove(cell)
}

// pawnStep returns 1 or 2 for a forward move on the pawn's file, 0 otherwise.
// The double step is only offered to a pawn that has never moved.
func (p *Piece) pawnStep(to chess.Cell) int {
	if to.Row != p.Cell.Row {
		return 0
	}
	forward := (to.Col - p.Cell.Col) * chess.ColourOffset(p.Colour)
	switch {
	case forward == 1:
		return 1
	case forward == 2 && !p.HasMoved:
		return 2
	}
	return 0
}

// pawnDiagonal reports whether the destination is one of the pawn's two
// forward diagonals.
func (p *Piece) pawnDiagonal(to chess.Cell) bool {
	forward := (to.Col - p.Cell.Col) * chess.ColourOffset(p.Colour)
	return p.Cell.DistanceCol(to) == 1 && forward == 1
}

// castlingShape reports whether the destination is two cells sideways on the
// king's own line, for a king that has never moved.
func (p *Piece) castlingShape(to chess.Cell) bool {
	return !p.HasMoved && to.Col == p.Cell.Col && p.Cell.DistanceCol(to) == 2
}

func straight(from, to chess.Cell) bool {
	return from != to && (from.Row == to.Row || from.Col == to.Col)
}

func diagonal(from, to chess.Cell) bool {
	return from != to && from.DistanceRow(to) == from.DistanceCol(to)
}

func adjacent(from, to chess.Cell) bool {
	dr, dc := from.DistanceRow(to), from.DistanceCol(to)
	return dr+dc == 1 || dr*dc == 1
}

// segment walks from one cell towards another along a line or diagonal and
// returns the cells strictly in between.
func segment(from, to chess.Cell) []chess.Cell {
	dRow := from.DirectionRow(to)
	dCol := from.DirectionCol(to)
	steps := max(from.DistanceRow(to), from.DistanceCol(to))

	path := make([]chess.Cell, 0, steps)
	for i := 1; i < steps; i++ {
		path = append(path, from.Offset(i*dRow, i*dCol))
	}
	return path
}
