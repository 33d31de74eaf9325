// Package console shows a game on a terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/controller"
)

var glyphs = map[chess.Colour]map[chess.PieceType]nchess.Piece{
	chess.White: {
		chess.King:   nchess.WhiteKing,
		chess.Queen:  nchess.WhiteQueen,
		chess.Rook:   nchess.WhiteRook,
		chess.Bishop: nchess.WhiteBishop,
		chess.Knight: nchess.WhiteKnight,
		chess.Pawn:   nchess.WhitePawn,
	},
	chess.Black: {
		chess.King:   nchess.BlackKing,
		chess.Queen:  nchess.BlackQueen,
		chess.Rook:   nchess.BlackRook,
		chess.Bishop: nchess.BlackBishop,
		chess.Knight: nchess.BlackKnight,
		chess.Pawn:   nchess.BlackPawn,
	},
}

// View mirrors the board in memory, prints messages to out and reads
// answers to questions from in.
type View struct {
	in    *bufio.Reader
	out   io.Writer
	board map[nchess.Square]nchess.Piece

	// preset answers the next promotion question without asking
	preset chess.PieceType
}

// New creates a console view.
func New(in io.Reader, out io.Writer) *View {
	return &View{
		in:    bufio.NewReader(in),
		out:   out,
		board: make(map[nchess.Square]nchess.Piece),
	}
}

// square maps a cell onto the library's rank-major square numbering.
func square(row, col int) nchess.Square {
	return nchess.Square(col*chess.BoardSize + row)
}

// StartView implements controller.View.
func (v *View) StartView() {
	fmt.Fprintln(v.out, "Moves are typed as e2e4, e2-e4 or 4 1 4 3. Type help for commands.")
}

// PutPiece implements controller.View.
func (v *View) PutPiece(kind chess.PieceType, colour chess.Colour, row, col int) {
	if p, ok := glyphs[colour][kind]; ok {
		v.board[square(row, col)] = p
	}
}

// RemovePiece implements controller.View.
func (v *View) RemovePiece(row, col int) {
	delete(v.board, square(row, col))
}

// DisplayMessage implements controller.View.
func (v *View) DisplayMessage(msg string) {
	fmt.Fprintln(v.out, msg)
}

// Preselect answers the next question with the choice named after kind.
// NoPiece goes back to asking.
func (v *View) Preselect(kind chess.PieceType) {
	v.preset = kind
}

// AskUser lists the choices and reads one line. The answer may be the
// choice's number, its name or the first letter of its name. Nil is
// returned when input runs out.
func (v *View) AskUser(title, question string, choices ...controller.Choice) controller.Choice {
	if v.preset != chess.NoPiece {
		name := v.preset.String()
		v.preset = chess.NoPiece
		if c := pick(name, choices); c != nil {
			return c
		}
	}
	for {
		fmt.Fprintf(v.out, "%s: %s\n", title, question)
		for i, c := range choices {
			fmt.Fprintf(v.out, "  %d) %s\n", i+1, c.TextValue())
		}
		fmt.Fprint(v.out, "> ")

		line, err := v.in.ReadString('\n')
		if c := pick(strings.TrimSpace(line), choices); c != nil {
			return c
		}
		if err != nil {
			return nil
		}
		fmt.Fprintln(v.out, "Please choose one of the listed pieces.")
	}
}

func pick(answer string, choices []controller.Choice) controller.Choice {
	if answer == "" {
		return nil
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(choices) {
			return choices[n-1]
		}
		return nil
	}
	for _, c := range choices {
		if strings.EqualFold(c.TextValue(), answer) {
			return c
		}
	}
	if len(answer) == 1 {
		for _, c := range choices {
			if strings.HasPrefix(strings.ToLower(c.TextValue()), strings.ToLower(answer)) {
				return c
			}
		}
	}
	return nil
}

// Draw renders the mirrored board.
func (v *View) Draw() string {
	return nchess.NewBoard(v.board).Draw()
}

// Len returns the number of pieces shown.
func (v *View) Len() int {
	return len(v.board)
}
