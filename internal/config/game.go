package config

import (
	"fmt"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/errors"
)

// GameConfig holds settings for a single game.
type GameConfig struct {
	// DefaultPromotion is placed when the view gives no usable answer to
	// the promotion prompt
	DefaultPromotion chess.PieceType

	// AnnounceTurns displays the turn banner before every move attempt
	AnnounceTurns bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		DefaultPromotion: chess.Queen,
		AnnounceTurns:    true,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if !g.DefaultPromotion.Promotable() {
		return fmt.Errorf("default promotion %v is not a promotion piece: %w",
			g.DefaultPromotion, errors.ErrInvalidConfig)
	}
	return nil
}
