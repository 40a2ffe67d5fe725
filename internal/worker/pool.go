// Package worker replays move scripts on a pool of goroutines.
package worker

import (
	"context"
	"sort"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/movelist"
	"github.com/lgbarn/chessrules-go/internal/replay"
)

// WorkItem is one script to replay.
type WorkItem struct {
	Script movelist.Script
	Index  int // position in the input, 0-based
	File   string
}

// ProcessResult is the outcome of one work item.
type ProcessResult struct {
	Index  int
	Report *replay.Report
	// Duplicate is set by consumers that detect repeated final positions
	Duplicate bool
	Error     error
}

// ProcessFunc processes a single work item.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithContext ties the pool to ctx: cancelling it stops the pool.
func WithContext(ctx context.Context) PoolOption {
	return func(p *Pool) {
		if ctx != nil {
			p.ctx = ctx
		}
	}
}

// NewPool creates a pool. Defaults: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
		ctx:         context.Background(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.ctx, p.cancel = context.WithCancel(p.ctx)
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items until the work channel is closed. Items arriving
// after Stop are drained without being processed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		p.resultChan <- p.processFunc(p.ctx, item)
	}
}

// Submit queues an item, blocking while the buffer is full.
// Returns false if the pool was stopped first.
func (p *Pool) Submit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// TrySubmit queues an item without blocking.
// Returns false if the buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new items.
func (p *Pool) Stop() {
	p.cancel()
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.ctx.Err() != nil
}

// Close closes the work channel and waits for all workers to finish,
// then closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
	p.cancel()
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ReplayFunc returns a ProcessFunc that replays each script with opts.
// GameNum and File are filled in from the item.
func ReplayFunc(opts replay.Options) ProcessFunc {
	return func(ctx context.Context, item WorkItem) ProcessResult {
		if err := ctx.Err(); err != nil {
			return ProcessResult{Index: item.Index, Error: err}
		}
		o := opts
		o.GameNum = item.Index + 1
		o.File = item.File
		report := replay.Run(item.Script, o)
		return ProcessResult{Index: item.Index, Report: report, Error: report.Err}
	}
}

// Collect drains results and returns them in input order.
func Collect(results <-chan ProcessResult) []ProcessResult {
	var out []ProcessResult
	for r := range results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
