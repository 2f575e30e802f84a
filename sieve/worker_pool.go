package sieve

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool manages a fixed pool of goroutines for marking regions.
// The inner-parallel strategy forks one region per surviving base; a
// persistent pool avoids re-spawning goroutines for every region.
type WorkerPool struct {
	numWorkers int
	workCh     chan func() // Channel carries work closures
	stopCh     chan struct{}
	wg         sync.WaitGroup
	closed     atomic.Bool // Tracks if pool is closed
	submitMu   sync.RWMutex
}

// NewWorkerPool creates a worker pool with numWorkers goroutines.
// numWorkers <= 0 falls back to runtime.GOMAXPROCS(0).
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	wp := &WorkerPool{
		numWorkers: numWorkers,
		workCh:     make(chan func(), numWorkers*2),
		stopCh:     make(chan struct{}),
	}

	wp.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go wp.worker()
	}

	return wp
}

// Size returns the number of worker goroutines.
func (wp *WorkerPool) Size() int { return wp.numWorkers }

// worker processes work closures from the work channel.
func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.stopCh:
			// Drain remaining work before exiting
			for {
				select {
				case workFunc, ok := <-wp.workCh:
					if !ok {
						return
					}
					workFunc()
				default:
					return
				}
			}
		case workFunc, ok := <-wp.workCh:
			if !ok {
				return
			}
			workFunc()
		}
	}
}

// Submit enqueues a task and returns once it is accepted.
//
// Error conditions:
//   - Returns ErrPoolClosed if the pool is closed
//   - Returns the context error if ctx is cancelled before enqueueing
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	wp.submitMu.RLock()
	defer wp.submitMu.RUnlock()

	if wp.closed.Load() {
		return ErrPoolClosed
	}
	if err := ctx.Err(); err != nil {
		// The select below races a ready channel against a done context;
		// an already-cancelled context must lose deterministically.
		return err
	}

	select {
	case wp.workCh <- task:
		return nil
	case <-wp.stopCh:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ParallelFor splits the iteration space [lo, hi) into one contiguous chunk
// per worker, runs body on the pool and joins. Partitioning is static:
// chunks are fixed before any work starts, with no rebalancing.
//
// If a submission fails (closed pool or cancelled context), already
// submitted chunks are still joined before the error is returned, so the
// caller never observes in-flight writes after ParallelFor returns.
func (wp *WorkerPool) ParallelFor(ctx context.Context, lo, hi uint64, body func(lo, hi uint64)) error {
	if hi <= lo {
		return nil
	}

	n := hi - lo
	chunks := uint64(wp.numWorkers)
	if chunks > n {
		chunks = n
	}

	size := n / chunks
	rem := n % chunks

	var wg sync.WaitGroup
	start := lo
	for i := uint64(0); i < chunks; i++ {
		end := start + size
		if i < rem {
			end++
		}

		chunkLo, chunkHi := start, end
		wg.Add(1)
		if err := wp.Submit(ctx, func() {
			defer wg.Done()
			body(chunkLo, chunkHi)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return err
		}

		start = end
	}

	wg.Wait()
	return nil
}

// Close shuts down the worker pool gracefully.
func (wp *WorkerPool) Close() {
	// Mark as closed (atomic, idempotent)
	if !wp.closed.CompareAndSwap(false, true) {
		return
	}

	wp.submitMu.Lock()
	close(wp.stopCh)
	close(wp.workCh)
	wp.submitMu.Unlock()

	wp.wg.Wait()
}
