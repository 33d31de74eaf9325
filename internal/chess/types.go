// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// Colours lists both colours, White first.
var Colours = [2]Colour{White, Black}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents the kind of a chess piece.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter maps a piece letter (either case) to its type.
// It returns NoPiece for anything else.
func PieceTypeFromLetter(letter byte) PieceType {
	switch letter {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoPiece
}

// Promotable reports whether a pawn may be promoted to this piece type.
func (p PieceType) Promotable() bool {
	return p == Queen || p == Rook || p == Bishop || p == Knight
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	FirstLine = 0
	LastLine  = BoardSize - 1

	// Files on which the rooks start; castling looks for them there.
	QueensideRookRow = 0
	KingsideRookRow  = BoardSize - 1
	KingRow          = 4
)

// BackRank is the starting layout of the pieces, indexed by file.
var BackRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// HomeLine returns the line holding the back rank of the given colour.
func HomeLine(colour Colour) int {
	if colour == White {
		return FirstLine
	}
	return LastLine
}

// PawnLine returns the line on which the pawns of the given colour start.
func PawnLine(colour Colour) int {
	if colour == White {
		return FirstLine + 1
	}
	return LastLine - 1
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}
