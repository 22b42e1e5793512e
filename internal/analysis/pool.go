package analysis

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/semaphore"

	"policyguard/internal/analysis/metrics"
)

// ErrStageTimeout is returned by Submit when a stage exceeds its time limit.
var ErrStageTimeout = errors.New("stage timed out")

// DefaultPoolSize bounds concurrent external calls across all requests.
const DefaultPoolSize = 5

// Pool is a process-wide bounded worker pool. Every bounded stage of every
// request runs on it, so at most size stages are in flight at once.
type Pool struct {
	sem     *semaphore.Weighted
	size    int
	metrics *metrics.Metrics
}

// NewPool creates a pool with size slots. Non-positive sizes fall back to
// DefaultPoolSize.
func NewPool(size int, m *metrics.Metrics) *Pool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	return &Pool{
		sem:     semaphore.NewWeighted(int64(size)),
		size:    size,
		metrics: m,
	}
}

// Size returns the number of slots.
func (p *Pool) Size() int {
	return p.size
}

type outcome[T any] struct {
	value T
	err   error
}

// Submit runs fn on a pool slot and waits at most timeout for it, queueing
// time included. fn receives the bounded context so that polling loops stop
// once the caller has given up. A deadline, whether waiting for a slot or
// for fn, surfaces as ErrStageTimeout.
func Submit[T any](ctx context.Context, p *Pool, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return zero, stageError(err)
	}
	p.metrics.PoolAcquired()

	// The slot is held until fn returns, even after the caller stops waiting.
	done := make(chan outcome[T], 1)
	go func() {
		defer p.metrics.PoolReleased()
		defer p.sem.Release(1)

		v, err := fn(ctx)
		done <- outcome[T]{value: v, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			return zero, stageError(out.err)
		}
		return out.value, nil
	case <-ctx.Done():
		return zero, stageError(ctx.Err())
	}
}

func stageError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrStageTimeout
	}
	return err
}
