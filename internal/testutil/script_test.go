package testutil

import (
	"testing"
)

func TestParseTestScript(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantNil   bool
		wantMoves int
	}{
		{"valid script", "e2e4\ne7e5\n", false, 2},
		{"comments only", "# nothing\n", false, 0},
		{"bad move", "e2e4\nq9\n", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ParseTestScript(tt.text)
			if tt.wantNil {
				AssertNil(t, s)
				return
			}
			AssertNotNil(t, s)
			AssertEqual(t, s.Len(), tt.wantMoves)
		})
	}
}

func TestMustParseScript(t *testing.T) {
	s := MustParseScript(t, "g1f3\n# reply\ng8f6\n")
	AssertEqual(t, s.Len(), 2)
	AssertEqual(t, s.Moves[1].Line, 3)
}

func TestMustParseMoves(t *testing.T) {
	s := MustParseMoves(t, "e2e4", "0 6 0 4", "e7e8q")
	AssertEqual(t, s.Len(), 3)
	AssertEqual(t, s.Moves[2].Line, 3)
	AssertEqual(t, s.Moves[1].String(), "a7a5")
}
