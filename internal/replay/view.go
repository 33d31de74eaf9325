package replay

import (
	"strings"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/config"
	"github.com/lgbarn/chesslab-go/internal/controller"
)

// View is a headless controller.View. It answers promotion prompts with the
// piece named by the move being replayed and sends banners to the log.
type View struct {
	cfg       *config.Config
	promotion chess.PieceType

	// Checks counts check announcements
	Checks int
}

// NewView creates a headless view logging through cfg.
func NewView(cfg *config.Config) *View {
	return &View{cfg: cfg}
}

// StartView implements controller.View.
func (v *View) StartView() {}

// PutPiece implements controller.View.
func (v *View) PutPiece(chess.PieceType, chess.Colour, int, int) {}

// RemovePiece implements controller.View.
func (v *View) RemovePiece(int, int) {}

// DisplayMessage implements controller.View.
func (v *View) DisplayMessage(msg string) {
	if strings.HasSuffix(msg, " is in check") {
		v.Checks++
	}
	if v.cfg.Game.AnnounceTurns {
		v.cfg.Logf(config.Commentary, "%s", msg)
	}
}

// AskUser picks the choice naming the pending promotion piece. With no piece
// pending it answers nothing, which leaves the choice to the controller.
func (v *View) AskUser(_, _ string, choices ...controller.Choice) controller.Choice {
	if v.promotion == chess.NoPiece {
		return nil
	}
	for _, c := range choices {
		if c.TextValue() == v.promotion.String() {
			return c
		}
	}
	return nil
}
