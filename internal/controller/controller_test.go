package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/config"
	"github.com/lgbarn/chesslab-go/internal/engine"
	"github.com/lgbarn/chesslab-go/internal/errors"
	"github.com/lgbarn/chesslab-go/internal/testutil"
)

// recordingView mirrors the board and remembers everything it was told.
type recordingView struct {
	started  bool
	cells    map[chess.Cell]string
	messages []string
	removals int

	title, question string
	offered         []string
	answer          Choice
}

type textChoice string

func (c textChoice) TextValue() string { return string(c) }

func newRecordingView() *recordingView {
	return &recordingView{cells: make(map[chess.Cell]string)}
}

func (v *recordingView) StartView() { v.started = true }

func (v *recordingView) PutPiece(kind chess.PieceType, colour chess.Colour, row, col int) {
	v.cells[chess.NewCell(row, col)] = colour.String() + " " + kind.String()
}

func (v *recordingView) RemovePiece(row, col int) {
	delete(v.cells, chess.NewCell(row, col))
	v.removals++
}

func (v *recordingView) DisplayMessage(msg string) {
	v.messages = append(v.messages, msg)
}

func (v *recordingView) AskUser(title, question string, choices ...Choice) Choice {
	v.title, v.question = title, question
	v.offered = nil
	for _, c := range choices {
		v.offered = append(v.offered, c.TextValue())
	}
	return v.answer
}

func (v *recordingView) lastMessage() string {
	if len(v.messages) == 0 {
		return ""
	}
	return v.messages[len(v.messages)-1]
}

func startedGame(t *testing.T, cfg *config.Config) (*Controller, *recordingView) {
	t.Helper()
	c := New(cfg)
	v := newRecordingView()
	c.Start(v)
	c.NewGame()
	return c, v
}

// customGame replaces the starting position with the given pieces.
func customGame(t *testing.T, pieces ...*engine.Piece) (*Controller, *recordingView) {
	t.Helper()
	c, v := startedGame(t, nil)
	for _, p := range c.Board().Pieces() {
		c.Board().RemovePiece(p.Cell)
	}
	for _, p := range pieces {
		c.Board().AddPiece(p)
	}
	v.messages = nil
	return c, v
}

func TestController_NewGame(t *testing.T) {
	c, v := startedGame(t, nil)

	testutil.AssertTrue(t, v.started, "view started")
	testutil.AssertEqual(t, len(v.cells), 32)
	testutil.AssertEqual(t, v.cells[chess.NewCell(4, 0)], "White King")
	testutil.AssertEqual(t, v.cells[chess.NewCell(3, 7)], "Black Queen")
	testutil.AssertEqual(t, v.messages, []string{"Turn 0: White player's turn"})

	c.Move(4, 1, 4, 3)
	v.removals = 0
	c.NewGame()

	testutil.AssertEqual(t, c.Turn(), 0)
	testutil.AssertEqual(t, v.removals, 32, "every piece removed from the view")
	testutil.AssertEqual(t, len(v.cells), 32)
	testutil.AssertEqual(t, v.cells[chess.NewCell(4, 1)], "White Pawn")
}

func TestController_OpeningDoubleStep(t *testing.T) {
	c, v := startedGame(t, nil)
	v.messages = nil

	testutil.AssertTrue(t, c.Move(0, 1, 0, 3), "a2-a4")
	testutil.AssertEqual(t, c.Turn(), 1)
	testutil.AssertEqual(t, c.SideToMove(), chess.Black)
	testutil.AssertEqual(t, v.messages, []string{
		"Turn 0: White player's turn",
		"Turn 1: Black player's turn",
	})

	pawn := c.Board().PieceAt(chess.NewCell(0, 3))
	testutil.AssertTrue(t, pawn.HasMoved && pawn.CanEnPassant, "pawn flags")
	testutil.AssertEqual(t, v.cells[chess.NewCell(0, 3)], "White Pawn")
	testutil.AssertEqual(t, v.cells[chess.NewCell(0, 1)], "")
}

func TestController_RejectedMove(t *testing.T) {
	c, v := startedGame(t, nil)
	v.messages = nil

	err := c.TryMove(chess.NewCell(4, 6), chess.NewCell(4, 4))
	testutil.AssertTrue(t, errors.Is(err, errors.ErrWrongColour), "black piece on white's turn")

	testutil.AssertFalse(t, c.Move(4, 1, 4, 4), "pawn three cells")
	testutil.AssertEqual(t, c.Turn(), 0)
	testutil.AssertEqual(t, v.messages, []string{
		"Turn 0: White player's turn",
		"Turn 0: White player's turn",
	})
}

func TestController_RejectionCarriesTurn(t *testing.T) {
	c, _ := startedGame(t, nil)
	c.Move(4, 1, 4, 3)
	c.Move(4, 6, 4, 4)

	err := c.TryMove(chess.NewCell(4, 3), chess.NewCell(4, 4))
	moveErr := testutil.AssertRejected(t, err, errors.ErrIllegalMove)
	if moveErr == nil {
		t.FailNow()
	}
	testutil.AssertEqual(t, moveErr.Turn, 2)
	testutil.AssertContains(t, err.Error(), "turn 2")
}

func TestController_ColourAlternates(t *testing.T) {
	c, _ := startedGame(t, nil)
	moves := [][4]int{
		{4, 1, 4, 3}, {4, 6, 4, 4},
		{6, 0, 5, 2}, {1, 7, 2, 5},
		{5, 0, 2, 3}, {6, 7, 5, 5},
	}

	for n, m := range moves {
		want := chess.White
		if n%2 == 1 {
			want = chess.Black
		}
		testutil.AssertEqual(t, c.SideToMove(), want, "before move %d", n)
		if !c.Move(m[0], m[1], m[2], m[3]) {
			t.Fatalf("move %d %v rejected", n, m)
		}
	}
	testutil.AssertEqual(t, c.Turn(), len(moves))
	testutil.AssertEqual(t, c.SideToMove(), chess.White)
}

func TestController_CastleAdvancesOnce(t *testing.T) {
	c, v := customGame(t,
		engine.NewKing(chess.White, chess.NewCell(4, 0)),
		engine.NewRook(chess.White, chess.NewCell(7, 0)),
		engine.NewKing(chess.Black, chess.NewCell(4, 7)),
	)

	testutil.AssertTrue(t, c.Move(4, 0, 6, 0), "O-O")
	testutil.AssertEqual(t, c.Turn(), 1)
	testutil.AssertEqual(t, v.cells[chess.NewCell(5, 0)], "White Rook")
	testutil.AssertEqual(t, v.cells[chess.NewCell(7, 0)], "")
}

func TestController_StandaloneCastleAdvances(t *testing.T) {
	king := engine.NewKing(chess.White, chess.NewCell(4, 0))
	c, _ := customGame(t, king, engine.NewRook(chess.White, chess.NewCell(0, 0)))

	testutil.AssertTrue(t, c.Board().Castling(king, chess.NewCell(2, 0)), "O-O-O")
	testutil.AssertEqual(t, c.Turn(), 1)
	testutil.AssertEqual(t, c.SideToMove(), chess.Black)
}

func TestController_Promotion(t *testing.T) {
	tests := []struct {
		name   string
		answer Choice
		cfg    *config.Config
		want   string
	}{
		{"knight chosen", textChoice("Knight"), nil, "White Knight"},
		{"piece chosen", engine.NewRook(chess.White, chess.NewCell(0, 7)), nil, "White Rook"},
		{"no answer", nil, nil, "White Queen"},
		{"unknown answer", textChoice("Archbishop"), nil, "White Queen"},
		{
			"configured default",
			nil,
			config.NewConfigBuilder().WithDefaultPromotion(chess.Bishop).Build(),
			"White Bishop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, v := startedGame(t, tt.cfg)
			for _, p := range c.Board().Pieces() {
				c.Board().RemovePiece(p.Cell)
			}
			c.Board().AddPiece(engine.NewPawn(chess.White, chess.NewCell(0, 6)))
			v.answer = tt.answer

			testutil.AssertTrue(t, c.Move(0, 6, 0, 7), "a7-a8")
			testutil.AssertEqual(t, v.title, PromotionTitle)
			testutil.AssertEqual(t, v.question, PromotionQuestion)
			testutil.AssertEqual(t, v.offered, []string{"Queen", "Rook", "Bishop", "Knight"})
			testutil.AssertEqual(t, v.cells[chess.NewCell(0, 7)], tt.want)
			testutil.AssertEqual(t, c.Turn(), 1)
		})
	}
}

func TestController_CheckBanner(t *testing.T) {
	c, v := customGame(t,
		engine.NewKing(chess.White, chess.NewCell(4, 0)),
		engine.NewQueen(chess.White, chess.NewCell(3, 0)),
		engine.NewKing(chess.Black, chess.NewCell(4, 7)),
	)

	testutil.AssertTrue(t, c.Move(3, 0, 4, 1), "Qe2+")
	want := []string{
		"Turn 0: White player's turn",
		"black is in check",
		"Turn 1: Black player's turn",
	}
	if diff := cmp.Diff(want, v.messages); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestController_Commentary(t *testing.T) {
	log := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().WithLog(log).WithVerbosity(config.Commentary).Build()
	c, _ := startedGame(t, cfg)

	c.Move(4, 1, 4, 3)
	c.Move(4, 1, 4, 2)

	out := log.String()
	testutil.AssertContains(t, out, "turn 0: White e2-e4")
	testutil.AssertContains(t, out, "rejected")
	testutil.AssertTrue(t, strings.Count(out, "\n") >= 3, "one line per event")
}

func TestController_NoAnnouncements(t *testing.T) {
	cfg := config.NewConfigBuilder().AnnounceTurns(false).Build()
	c, v := startedGame(t, cfg)
	v.messages = nil

	c.Move(4, 1, 4, 4)
	testutil.AssertEqual(t, len(v.messages), 0)
}

func TestController_MoveBeforeStart(t *testing.T) {
	c := New(nil)
	c.NewGame()
	testutil.AssertTrue(t, c.Move(6, 0, 5, 2), "Nf3 without a view")
}
