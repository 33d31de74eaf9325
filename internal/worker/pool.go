// Package worker replays move scripts in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesslab-go/internal/replay"
	"github.com/lgbarn/chesslab-go/internal/script"
)

// WorkItem is a script waiting to be replayed.
type WorkItem struct {
	Script *script.Script
	Index  int // Position in the input, for ordering results
}

// ProcessResult is the outcome of replaying one script.
type ProcessResult struct {
	Index     int
	Result    replay.Result
	Duplicate string // Name of an earlier script that reached the same position
	Err       error
}

// ProcessFunc handles one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of replay workers over a bounded queue. Results
// arrive in completion order.
type Pool struct {
	workers int
	queue   int
	process ProcessFunc

	work    chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the queue length. Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.queue = size
		}
	}
}

// NewPool creates a pool of one worker with a queue of 10 unless options
// say otherwise. Workers start at once.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: 1, queue: 10, process: process}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.queue)
	p.results = make(chan ProcessResult, p.queue)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.work {
		// queued items are drained unprocessed after Stop
		if p.stopped.Load() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues a script, blocking while the queue is full. It gives up and
// stops the pool when ctx is done first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	if err := ctx.Err(); err != nil {
		p.Stop()
		return err
	}
	select {
	case p.work <- item:
		return nil
	case <-ctx.Done():
		p.Stop()
		return ctx.Err()
	}
}

// Stop makes workers skip everything still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished replays.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}
