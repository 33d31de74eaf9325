package config

import (
	"io"

	"github.com/lgbarn/chesslab-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithJSON selects JSON replay results.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.JSONFormat = enabled
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithDefaultPromotion sets the piece used when the promotion prompt goes
// unanswered.
func (b *ConfigBuilder) WithDefaultPromotion(kind chess.PieceType) *ConfigBuilder {
	b.cfg.Game.DefaultPromotion = kind
	return b
}

// AnnounceTurns controls whether the turn banner precedes every move attempt.
func (b *ConfigBuilder) AnnounceTurns(announce bool) *ConfigBuilder {
	b.cfg.Game.AnnounceTurns = announce
	return b
}

// WithWorkers sets the number of parallel replay workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}

// WithBufferSize sets the work queue capacity.
func (b *ConfigBuilder) WithBufferSize(n int) *ConfigBuilder {
	b.cfg.Replay.BufferSize = n
	return b
}

// KeepGoing controls whether a replay continues past a rejected move.
func (b *ConfigBuilder) KeepGoing(keep bool) *ConfigBuilder {
	b.cfg.Replay.KeepGoing = keep
	return b
}

// WithDuplicateDetection enables duplicate final position detection.
func (b *ConfigBuilder) WithDuplicateDetection(enabled bool, maxPositions int) *ConfigBuilder {
	b.cfg.Duplicate.Detect = enabled
	b.cfg.Duplicate.MaxPositions = maxPositions
	return b
}
