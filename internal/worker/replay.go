package worker

import (
	"context"
	"sort"

	"github.com/lgbarn/chesslab-go/internal/config"
	"github.com/lgbarn/chesslab-go/internal/hashing"
	"github.com/lgbarn/chesslab-go/internal/replay"
	"github.com/lgbarn/chesslab-go/internal/script"
)

// Replayer returns a ProcessFunc that replays each script on its own game.
func Replayer(cfg *config.Config) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := replay.Script(item.Script, cfg)
		return ProcessResult{Index: item.Index, Result: res, Err: res.Err}
	}
}

// ReplayAll replays scripts with the workers and buffer size from cfg and
// returns the results in input order. Scripts not yet started when ctx is
// cancelled are skipped.
//
// With a detector, each final position is checked in input order, so a
// script is only ever reported as a duplicate of one listed before it.
func ReplayAll(ctx context.Context, cfg *config.Config, scripts []*script.Script, dupes *hashing.ThreadSafeDuplicateDetector) []ProcessResult {
	pool := NewPool(Replayer(cfg),
		WithWorkers(cfg.Replay.Workers),
		WithBufferSize(cfg.Replay.BufferSize),
	)

	go func() {
		defer pool.Close()
		for i, s := range scripts {
			if err := pool.Submit(ctx, WorkItem{Script: s, Index: i}); err != nil {
				cfg.Logf(config.Summary, "replay cancelled before %s: %v", s.Name, err)
				return
			}
		}
	}()

	results := make([]ProcessResult, 0, len(scripts))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	if dupes != nil {
		for i := range results {
			if first, dup := dupes.CheckAndAdd(results[i].Result.Hash, results[i].Result.Name); dup {
				results[i].Duplicate = first
			}
		}
	}
	return results
}
