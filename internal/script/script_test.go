package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/errors"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		text string
		want Move
	}{
		{"e2e4", Move{From: chess.NewCell(4, 1), To: chess.NewCell(4, 3)}},
		{"e2-e4", Move{From: chess.NewCell(4, 1), To: chess.NewCell(4, 3)}},
		{"G8F6", Move{From: chess.NewCell(6, 7), To: chess.NewCell(5, 5)}},
		{"a7a8n", Move{From: chess.NewCell(0, 6), To: chess.NewCell(0, 7), Promotion: chess.Knight}},
		{"h2-h1Q", Move{From: chess.NewCell(7, 1), To: chess.NewCell(7, 0), Promotion: chess.Queen}},
		{"0 1 0 3", Move{From: chess.NewCell(0, 1), To: chess.NewCell(0, 3)}},
		{"  4 0\t6 0 ", Move{From: chess.NewCell(4, 0), To: chess.NewCell(6, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseMove(tt.text)
			if err != nil {
				t.Fatalf("ParseMove(%q) error = %v", tt.text, err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(Move{}, "Text")); diff != "" {
				t.Errorf("ParseMove(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestParseMove_Errors(t *testing.T) {
	tests := []struct {
		text     string
		column   int
		expected string
	}{
		{"", 1, "source cell"},
		{"z2e4", 1, "source cell"},
		{"e2", 3, "destination cell"},
		{"e2-e9", 4, "destination cell"},
		{"e7e8k", 5, "promotion piece (q, r, b or n)"},
		{"e2e4e5", 5, "end of move"},
		{"0 1 0 8", 7, "coordinate 0..7"},
		{"0 x 0 3", 3, "coordinate 0..7"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseMove(tt.text)
			var perr *errors.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ParseMove(%q) error = %v; want *ParseError", tt.text, err)
			}
			if !errors.Is(err, errors.ErrParseFailure) {
				t.Errorf("error does not wrap ErrParseFailure: %v", err)
			}
			if perr.Column != tt.column || perr.Expected != tt.expected {
				t.Errorf("column %d expected %q; want column %d expected %q",
					perr.Column, perr.Expected, tt.column, tt.expected)
			}
		})
	}
}

func TestMove_String(t *testing.T) {
	m, _ := ParseMove("a7-a8N")
	if got := m.String(); got != "a7a8n" {
		t.Errorf("String() = %q; want %q", got, "a7a8n")
	}
}

func TestParse(t *testing.T) {
	text := `# Scholar's mate
e2e4
e7e5   # king's pawn

f1-c4
4 6 4 5
`
	s, err := ParseString(text, "scholar.txt")
	if err != nil {
		t.Fatal(err)
	}

	if s.Name != "scholar.txt" || s.Len() != 4 {
		t.Fatalf("got %q with %d moves; want scholar.txt with 4", s.Name, s.Len())
	}
	var lines []int
	for _, m := range s.Moves {
		lines = append(lines, m.Line)
	}
	if diff := cmp.Diff([]int{2, 3, 5, 6}, lines); diff != "" {
		t.Errorf("line numbers mismatch (-want +got):\n%s", diff)
	}
	if s.Moves[1].Text != "e7e5" {
		t.Errorf("Text = %q; want comment stripped", s.Moves[1].Text)
	}
}

func TestParse_ErrorLocation(t *testing.T) {
	_, err := ParseString("e2e4\n  e7-x5\n", "bad.txt")

	want := `bad.txt:2:6: expected destination cell, got "x5": parse failure`
	if err == nil || err.Error() != want {
		t.Errorf("error = %v; want %s", err, want)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.txt")
	if err := os.WriteFile(path, []byte("d2d4\nd7d5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != path || s.Len() != 2 {
		t.Errorf("ParseFile() = %q with %d moves", s.Name, s.Len())
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("ParseFile(missing) error = nil")
	}
}
