package calc

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/miku/1brc-engine/internal/chunk"
	"github.com/miku/1brc-engine/internal/measure"
	"github.com/miku/1brc-engine/internal/table"
)

const (
	DefaultChunkSize = 20 * 1024 * 1024
	DefaultTimeout   = time.Minute
)

var (
	// ErrWorkerFailed wraps a panic raised while scanning a chunk.
	ErrWorkerFailed = errors.New("worker failed")
	// ErrTimeout is returned when a run does not finish in time. No partial
	// result is returned along with it.
	ErrTimeout = errors.New("run did not complete on time")
)

// Options configure a run. Zero values select the defaults.
type Options struct {
	Workers   int           // number of workers, defaults to runtime.NumCPU
	ChunkSize int           // target chunk size in bytes
	TableSize int           // slots per worker table
	Timeout   time.Duration // upper bound for the whole run
}

func (o Options) withDefaults() Options {
	if o.Workers < 1 {
		o.Workers = runtime.NumCPU()
	}
	if o.ChunkSize < 1 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.TableSize < 1 {
		o.TableSize = table.DefaultSize
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

// Engine runs aggregations with a fixed set of options. Worker tables are
// kept between runs and reset before reuse, so an Engine must not run
// concurrently with itself.
type Engine struct {
	opts   Options
	tables []*table.Table
}

func New(opts Options) *Engine {
	opts = opts.withDefaults()
	return &Engine{opts: opts}
}

// Options returns the effective options, defaults filled in.
func (e *Engine) Options() Options { return e.opts }

// Run aggregates data with default settings for everything not set in opts.
func Run(ctx context.Context, data []byte, opts Options) (measure.Result, error) {
	return New(opts).Run(ctx, data)
}

// Run splits data into chunks, scans them on the workers and merges the
// worker tables. data must not change during the run.
func (e *Engine) Run(ctx context.Context, data []byte) (measure.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.opts.Timeout)
	defer cancel()
	var (
		chunks  = chunk.Split(data, e.opts.ChunkSize)
		workers = min(e.opts.Workers, max(len(chunks), 1))
		queue   = make(chan chunk.Chunk)
		tables  = e.acquire(workers)
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, t := range tables {
		g.Go(func() error {
			return work(gctx, data, queue, t)
		})
	}
	g.Go(func() error {
		defer close(queue)
		for _, c := range chunks {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case queue <- c:
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, e.opts.Timeout)
		}
		return nil, err
	}
	result := make(measure.Result)
	for _, t := range tables {
		Merge(result, t)
	}
	return result, nil
}

// acquire returns n empty tables, reusing the ones from earlier runs.
func (e *Engine) acquire(n int) []*table.Table {
	for len(e.tables) < n {
		e.tables = append(e.tables, table.New(e.opts.TableSize))
	}
	ts := e.tables[:n]
	for _, t := range ts {
		t.Reset()
	}
	return ts
}

// work scans chunks from queue into t until the queue is closed.
func work(ctx context.Context, data []byte, queue <-chan chunk.Chunk, t *table.Table) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWorkerFailed, r)
		}
	}()
	for c := range queue {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := ProcessChunk(data[c.Start:c.End], t); err != nil {
			return fmt.Errorf("chunk [%d, %d): %w", c.Start, c.End, err)
		}
	}
	return nil
}
