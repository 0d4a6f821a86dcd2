package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/selivandex/stock-sentiment/pkg/logger"
)

// Task processes the item at index i. Tasks must only write state owned by
// index i; the pool gives no other ordering or exclusion guarantees.
type Task func(ctx context.Context, i int) error

// Pool runs indexed tasks on a bounded number of goroutines
type Pool struct {
	name    string
	workers int
}

// NewPool creates new pool. workers < 1 is treated as 1.
func NewPool(name string, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		name:    name,
		workers: workers,
	}
}

// Workers returns the concurrency limit
func (p *Pool) Workers() int {
	return p.workers
}

// Run executes task for every index in [0, n). The first error cancels the
// remaining tasks and is returned.
func (p *Pool) Run(ctx context.Context, n int, task Task) error {
	if n == 0 {
		return nil
	}

	start := time.Now()
	var err error
	if p.workers == 1 {
		err = p.runSequential(ctx, n, task)
	} else {
		err = p.runParallel(ctx, n, task)
	}

	if err != nil {
		logger.Warn("worker pool run failed",
			zap.String("pool", p.name),
			zap.Int("items", n),
			zap.Error(err),
		)
		return err
	}

	logger.Debug("worker pool run completed",
		zap.String("pool", p.name),
		zap.Int("items", n),
		zap.Int("workers", p.workers),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func (p *Pool) runSequential(ctx context.Context, n int, task Task) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := task(ctx, i); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pool) runParallel(ctx context.Context, n int, task Task) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return task(gctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// cancellation observed only by the loop leaves g.Wait() nil
	return ctx.Err()
}
