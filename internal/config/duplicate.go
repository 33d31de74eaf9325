package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/chesslab-go/internal/errors"
)

// DuplicateConfig holds settings for detecting scripts that end in the same
// position.
type DuplicateConfig struct {
	// Detect enables duplicate detection
	Detect bool

	// MaxPositions bounds the number of positions remembered (0 = no limit)
	MaxPositions int

	// DuplicateFile receives one line per duplicate; nil means OutputFile
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.MaxPositions < 0 {
		return fmt.Errorf("max positions (%d) must not be negative: %w", d.MaxPositions, errors.ErrInvalidConfig)
	}
	return nil
}
