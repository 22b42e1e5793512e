package analysis

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSubmit(t *testing.T) {
	pool := NewPool(2, nil)

	t.Run("returns the value", func(t *testing.T) {
		v, err := Submit(context.Background(), pool, time.Second, func(context.Context) (string, error) {
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", v)
	})

	t.Run("passes errors through", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Submit(context.Background(), pool, time.Second, func(context.Context) (int, error) {
			return 0, boom
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("deadline becomes ErrStageTimeout", func(t *testing.T) {
		_, err := Submit(context.Background(), pool, 20*time.Millisecond, func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		})
		assert.ErrorIs(t, err, ErrStageTimeout)
	})

	t.Run("work that ignores its context still times out", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		_, err := Submit(context.Background(), pool, 20*time.Millisecond, func(context.Context) (int, error) {
			<-release
			return 1, nil
		})
		assert.ErrorIs(t, err, ErrStageTimeout)
	})

	t.Run("caller cancellation is not a timeout", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Submit(ctx, pool, time.Second, func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, ErrStageTimeout)
	})
}

func TestPoolBoundsConcurrency(t *testing.T) {
	pool := NewPool(3, nil)
	var inFlight, peak atomic.Int32

	g, ctx := errgroup.WithContext(context.Background())
	for range 12 {
		g.Go(func() error {
			_, err := Submit(ctx, pool, 2*time.Second, func(context.Context) (struct{}, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				inFlight.Add(-1)
				return struct{}{}, nil
			})
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestNewPoolDefaultsSize(t *testing.T) {
	assert.Equal(t, DefaultPoolSize, NewPool(0, nil).Size())
	assert.Equal(t, 8, NewPool(8, nil).Size())
}

func TestSubmitTimeoutCountsQueueing(t *testing.T) {
	pool := NewPool(1, nil)
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_, _ = Submit(context.Background(), pool, time.Second, func(context.Context) (int, error) {
			close(started)
			<-release
			return 0, nil
		})
	}()
	<-started
	defer close(release)

	ran := false
	_, err := Submit(context.Background(), pool, 20*time.Millisecond, func(context.Context) (int, error) {
		ran = true
		return 1, nil
	})
	assert.ErrorIs(t, err, ErrStageTimeout)
	assert.False(t, ran)
}
