package sieve

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolSubmit(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	for i := 0; i < 16; i++ {
		err := pool.Submit(context.Background(), func() {
			counter.Add(1)
		})
		require.NoError(t, err)
	}

	// Close drains queued work and joins the workers.
	pool.Close()
	assert.Equal(t, int64(16), counter.Load())
}

func TestWorkerPoolSubmitAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close() // idempotent

	err := pool.Submit(context.Background(), func() {})
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestWorkerPoolSubmitCancelled(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pool.Submit(ctx, func() {})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParallelForCoversRangeOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		pool := NewWorkerPool(workers)

		const n = 1000
		hits := make([]atomic.Int32, n)

		err := pool.ParallelFor(context.Background(), 0, n, func(lo, hi uint64) {
			for k := lo; k < hi; k++ {
				hits[k].Add(1)
			}
		})
		require.NoError(t, err)

		for k := range hits {
			assert.Equal(t, int32(1), hits[k].Load(), "index %d (workers=%d)", k, workers)
		}
		pool.Close()
	}
}

func TestParallelForOffsetRange(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	var sum atomic.Int64
	err := pool.ParallelFor(context.Background(), 10, 20, func(lo, hi uint64) {
		for k := lo; k < hi; k++ {
			sum.Add(int64(k))
		}
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10+11+12+13+14+15+16+17+18+19), sum.Load())
}

func TestParallelForEmptyRange(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	called := false
	err := pool.ParallelFor(context.Background(), 5, 5, func(lo, hi uint64) {
		called = true
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestParallelForFewerIterationsThanWorkers(t *testing.T) {
	pool := NewWorkerPool(8)
	defer pool.Close()

	var count atomic.Int64
	err := pool.ParallelFor(context.Background(), 0, 3, func(lo, hi uint64) {
		count.Add(int64(hi - lo))
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count.Load())
}

func TestParallelForCancelled(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pool.ParallelFor(ctx, 0, 100, func(lo, hi uint64) {})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPoolDefaultSize(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	assert.Greater(t, pool.Size(), 0)
}
