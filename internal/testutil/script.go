package testutil

import (
	"testing"

	"github.com/lgbarn/chesslab-go/internal/script"
)

// ParseTestScript parses a move script and returns nil if parsing fails.
// Use this for tests where parse failure is an acceptable outcome.
func ParseTestScript(text string) *script.Script {
	s, err := script.ParseString(text, "test")
	if err != nil {
		return nil
	}
	return s
}

// MustParseScript parses a move script.
// It calls t.Fatal if parsing fails or the script holds no moves.
func MustParseScript(t *testing.T, text string) *script.Script {
	t.Helper()
	s, err := script.ParseString(text, "test")
	if err != nil {
		t.Fatalf("failed to parse test script: %v\n%s", err, text)
	}
	if s.Len() == 0 {
		t.Fatalf("test script has no moves:\n%s", text)
	}
	return s
}

// MustParseMoves parses one move per argument and returns them as a script.
func MustParseMoves(t *testing.T, moves ...string) *script.Script {
	t.Helper()
	s := &script.Script{Name: "test"}
	for i, text := range moves {
		m, err := script.ParseMove(text)
		if err != nil {
			t.Fatalf("move %d: %v", i+1, err)
		}
		m.Line = i + 1
		s.Moves = append(s.Moves, m)
	}
	return s
}
