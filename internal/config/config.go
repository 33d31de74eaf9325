// Package config provides configuration for chesslab.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chesslab-go/internal/errors"
)

// Verbosity levels.
const (
	Silent     = 0 // nothing but results
	Summary    = 1 // one line per game
	Commentary = 2 // running commentary on every move
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
	JSONFormat bool // Replay results as one JSON document

	Game      *GameConfig
	Replay    *ReplayConfig
	Duplicate *DuplicateConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Game:       NewGameConfig(),
		Replay:     NewReplayConfig(),
		Duplicate:  NewDuplicateConfig(),
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks the whole configuration and reports every problem found.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Verbosity < Silent || c.Verbosity > Commentary {
		result = multierror.Append(result, fmt.Errorf("verbosity %d out of range %d..%d: %w",
			c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig))
	}
	if c.OutputFile == nil {
		result = multierror.Append(result, fmt.Errorf("no output stream: %w", errors.ErrInvalidConfig))
	}
	if c.Game != nil {
		if err := c.Game.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if c.Replay != nil {
		if err := c.Replay.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if c.Duplicate != nil {
		if err := c.Duplicate.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}
