// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/config"
	"github.com/lgbarn/chesslab-go/internal/errors"
)

var (
	// Logging
	verbosity = flag.Int("v", config.Summary, "Verbosity: 0 silent, 1 summary, 2 commentary")
	logFile   = flag.String("l", "", "Log file (default: stderr)")
	quiet     = flag.Bool("s", false, "Silent mode: no log output")

	// Output options
	jsonOutput = flag.Bool("J", false, "Write replay results as JSON")

	// Replay options
	workers   = flag.Int("j", 1, "Number of scripts replayed in parallel")
	keepGoing = flag.Bool("keep-going", false, "Keep replaying a script after a rejected move")
	dupes     = flag.Bool("dupes", false, "Report scripts that end in a position already reached")
	dupeLimit = flag.Int("duplicate-capacity", 0, "Maximum positions remembered by -dupes (0 = unlimited)")

	// Game options
	promote = flag.String("promote", "q", "Promotion piece when none is chosen: q, r, b or n")
	noTurns = flag.Bool("noturns", false, "Don't announce turns")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}

	cfg.JSONFormat = *jsonOutput
	cfg.Replay.Workers = *workers
	cfg.Replay.KeepGoing = *keepGoing
	cfg.Duplicate.Detect = *dupes
	cfg.Duplicate.MaxPositions = *dupeLimit
	cfg.Game.AnnounceTurns = !*noTurns

	kind, err := promotionFlag(*promote)
	if err != nil {
		return err
	}
	cfg.Game.DefaultPromotion = kind
	return cfg.Validate()
}

// promotionFlag converts a -promote value to a piece type.
func promotionFlag(value string) (chess.PieceType, error) {
	if len(value) == 1 {
		if kind := chess.PieceTypeFromLetter(value[0]); kind.Promotable() {
			return kind, nil
		}
	}
	return chess.NoPiece, errors.Wrapf(errors.ErrInvalidConfig, "-promote %q: want one of q, r, b or n", value)
}
