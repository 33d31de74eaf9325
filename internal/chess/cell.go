package chess

import "fmt"

// Cell is a square of the board.
//
// Row indexes the file (0 = a) and Col the line (0 = White's back rank).
// The distance helpers follow the same crossed naming: DistanceRow measures
// the Col difference and DistanceCol the Row difference. All piece geometry
// is written against these helpers, so keep them in step if you touch either.
type Cell struct {
	Row int
	Col int
}

// NewCell returns the cell at (row, col).
func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Valid reports whether the cell lies on the board.
func (c Cell) Valid() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// DistanceRow returns |c.Col - to.Col|.
func (c Cell) DistanceRow(to Cell) int {
	return abs(c.Col - to.Col)
}

// DistanceCol returns |c.Row - to.Row|.
func (c Cell) DistanceCol(to Cell) int {
	return abs(c.Row - to.Row)
}

// DirectionRow returns the sign of to.Row - c.Row.
func (c Cell) DirectionRow(to Cell) int {
	return sign(to.Row - c.Row)
}

// DirectionCol returns the sign of to.Col - c.Col.
func (c Cell) DirectionCol(to Cell) int {
	return sign(to.Col - c.Col)
}

// Offset returns the cell displaced by (dRow, dCol). The result may be off the board.
func (c Cell) Offset(dRow, dCol int) Cell {
	return Cell{Row: c.Row + dRow, Col: c.Col + dCol}
}

// String returns the cell in coordinate notation, e.g. "e2".
// Off-board cells are printed as raw pairs.
func (c Cell) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%c", 'a'+c.Row, '1'+c.Col)
}

// ParseCell parses coordinate notation ("e2", case-insensitive file).
func ParseCell(s string) (Cell, bool) {
	if len(s) != 2 {
		return Cell{}, false
	}
	file := s[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	line := s[1]
	c := Cell{Row: int(file) - 'a', Col: int(line) - '1'}
	if !c.Valid() {
		return Cell{}, false
	}
	return c, true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
