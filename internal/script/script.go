// Package script reads move scripts: plain text files holding one move per
// line, used to replay games without a user at the keyboard.
//
// A move is written in coordinate notation, "e2e4" or "e2-e4", with an
// optional promotion letter ("a7a8n"), or as four integers
// "fromRow fromCol toRow toCol" in board coordinates. A '#' starts a comment
// that runs to the end of the line; blank lines are ignored.
package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/errors"
)

// Move is one line of a script.
type Move struct {
	From chess.Cell
	To   chess.Cell

	// Promotion is the piece a pawn reaching the last line becomes, or
	// NoPiece to leave the choice open
	Promotion chess.PieceType

	Line int    // 1-based line number
	Text string // The move as written
}

// String returns the move in coordinate notation.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.NoPiece {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// Script is a named list of moves.
type Script struct {
	Name  string
	Moves []Move
}

// Len returns the number of moves.
func (s *Script) Len() int {
	return len(s.Moves)
}

// Parse reads a whole script. The name is used in error messages.
func Parse(r io.Reader, name string) (*Script, error) {
	s := &Script{Name: name}
	scanner := bufio.NewScanner(r)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}

		m, err := ParseMove(text)
		if err != nil {
			var perr *errors.ParseError
			if errors.As(err, &perr) {
				perr.File = name
				perr.Line = lineNum
				perr.Column += strings.Index(line, text)
			}
			return nil, err
		}
		m.Line = lineNum
		s.Moves = append(s.Moves, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return s, nil
}

// ParseString parses a script held in a string.
func ParseString(text, name string) (*Script, error) {
	return Parse(strings.NewReader(text), name)
}

// ParseFile parses the script stored in a file, named after the file.
func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

// ParseMove decodes a single move. Errors are *errors.ParseError with the
// column set relative to the text.
func ParseMove(text string) (Move, error) {
	text = strings.TrimSpace(text)
	if fields := strings.Fields(text); len(fields) == 4 {
		return parseNumeric(text, fields)
	}
	return parseCoordinate(text)
}

// parseCoordinate decodes "e2e4", "e2-e4" and "e7e8q".
func parseCoordinate(text string) (Move, error) {
	m := Move{Text: text}

	from, ok := chess.ParseCell(prefix(text, 2))
	if !ok {
		return m, syntaxError(1, "source cell", prefix(text, 2))
	}
	rest := text[2:]
	col := 3
	if strings.HasPrefix(rest, "-") {
		rest = rest[1:]
		col++
	}

	to, ok := chess.ParseCell(prefix(rest, 2))
	if !ok {
		return m, syntaxError(col, "destination cell", prefix(rest, 2))
	}
	rest = rest[2:]
	col += 2

	switch len(rest) {
	case 0:
	case 1:
		kind := chess.PieceTypeFromLetter(rest[0])
		if !kind.Promotable() {
			return m, syntaxError(col, "promotion piece (q, r, b or n)", rest)
		}
		m.Promotion = kind
	default:
		return m, syntaxError(col, "end of move", rest)
	}

	m.From, m.To = from, to
	return m, nil
}

// parseNumeric decodes "fromRow fromCol toRow toCol".
func parseNumeric(text string, fields []string) (Move, error) {
	m := Move{Text: text}

	var n [4]int
	pos := 0
	for i, field := range fields {
		pos += strings.Index(text[pos:], field)
		v, err := strconv.Atoi(field)
		if err != nil || v < 0 || v >= chess.BoardSize {
			return m, syntaxError(pos+1, fmt.Sprintf("coordinate 0..%d", chess.LastLine), field)
		}
		n[i] = v
		pos += len(field)
	}

	m.From = chess.NewCell(n[0], n[1])
	m.To = chess.NewCell(n[2], n[3])
	return m, nil
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func syntaxError(column int, expected, got string) error {
	if got == "" {
		got = "end of line"
	}
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Column:   column,
		Expected: expected,
		Got:      got,
	}
}
