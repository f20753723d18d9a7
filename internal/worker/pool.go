// Package worker provides a worker pool for splitting move-tree counts
// across goroutines, one root move per work item.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/hourglass/internal/chess"
)

// WorkItem is one subtree to explore: the position reached after Move,
// counted to Depth. Each item owns its position by value.
type WorkItem struct {
	Position chess.Position
	Move     chess.Move
	Depth    int
	Index    int // submission order
}

// ProcessResult is the outcome of one WorkItem.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
}

// ProcessFunc counts one subtree. It may be called from several goroutines
// at once.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted subtrees on a fixed set of goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	work       chan WorkItem
	results    chan ProcessResult
	process    ProcessFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool
	skipped    atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the work and result channel capacity.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Without options it has one worker and a buffer
// of 10.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		process:    process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.work {
		if p.stopped.Load() {
			p.skipped.Add(1)
			continue // drain
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.work <- item
}

// Stop makes workers skip the items still queued. Subtrees already being
// counted run to completion.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel processed items are delivered on, in
// completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Run starts the pool, processes items and returns their results indexed
// like items. If ctx is cancelled before every item was taken, the remaining
// items are skipped and ctx.Err() is returned with the results gathered so
// far; skipped slots keep their zero value.
func (p *Pool) Run(ctx context.Context, items []WorkItem) ([]ProcessResult, error) {
	if ctx.Err() != nil {
		p.Stop()
	}
	p.Start()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Stop()
		case <-done:
		}
	}()

	go func() {
		for i, item := range items {
			item.Index = i
			p.Submit(item)
		}
		p.Close()
	}()

	out := make([]ProcessResult, len(items))
	for result := range p.Results() {
		out[result.Index] = result
	}
	if p.skipped.Load() > 0 {
		return out, ctx.Err()
	}
	return out, nil
}
