package config

import (
	"fmt"

	"github.com/lgbarn/chesslab-go/internal/errors"
)

// ReplayConfig holds settings for replaying move scripts.
type ReplayConfig struct {
	// Workers is the number of scripts replayed in parallel
	Workers int

	// BufferSize is the capacity of the work and result queues
	BufferSize int

	// KeepGoing continues a script past a rejected move
	KeepGoing bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Workers:    1,
		BufferSize: 10,
	}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.BufferSize < 0 {
		return fmt.Errorf("buffer size (%d) must not be negative: %w", r.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
