package sieve

import (
	"context"
	"log/slog"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/gosieve/bound"
	"github.com/hupe1980/gosieve/resource"
)

// Strategy selects how the marking loop is parallelized.
type Strategy int

const (
	// OuterParallel distributes the candidate loop over [2, sqrt(bound)]
	// across workers in a single fork-join region.
	OuterParallel Strategy = iota

	// InnerParallel runs the candidate loop sequentially and distributes
	// each surviving base's multiples across workers, one region per base.
	InnerParallel
)

func (s Strategy) String() string {
	if s == InnerParallel {
		return "inner-parallel"
	}
	return "outer-parallel"
}

// Options contains configuration options for the engine.
type Options struct {
	// Strategy selects the parallel marking scheme.
	Strategy Strategy

	// Workers hints the worker count. Values <= 0 use runtime.GOMAXPROCS(0).
	Workers int

	// Domain bounds the table size and selects the threshold arithmetic.
	Domain bound.Domain

	// Logger receives debug diagnostics. Nil discards them.
	Logger *slog.Logger

	// Resources optionally enforces a memory budget for table allocation.
	Resources *resource.Controller
}

// DefaultOptions contains the default configuration options for the engine.
var DefaultOptions = Options{
	Strategy: OuterParallel,
	Workers:  0,
	Domain:   bound.Domain32,
}

// Engine executes sieve runs.
//
// An Engine is safe for sequential reuse. The worker hint is fixed at
// construction; a run must not share an Engine with another in-flight run.
type Engine struct {
	opts   Options
	logger *slog.Logger
}

// New creates an engine with the given options.
func New(o Options) *Engine {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{opts: o, logger: logger}
}

// Sieve computes the composite table for all values in [0, n].
//
// n must be below the configured domain's maximum; the bound resolver
// guarantees that for user input. The returned table is final and
// read-only; the caller must release it. On error no table is returned
// and any partially reserved state has already been released.
func (e *Engine) Sieve(ctx context.Context, n uint64) (*Table, error) {
	t, err := e.allocate(n)
	if err != nil {
		return nil, err
	}

	threshold := e.threshold(n)

	start := time.Now()
	switch e.opts.Strategy {
	case InnerParallel:
		err = e.markInner(ctx, t, threshold)
	default:
		err = e.markOuter(ctx, t, threshold)
	}
	if err != nil {
		t.Release()
		return nil, err
	}

	t.stats = Stats{
		Bound:     n,
		Threshold: threshold,
		Workers:   e.opts.Workers,
		Strategy:  e.opts.Strategy,
		Elapsed:   time.Since(start),
	}

	e.logger.Debug("sieve completed",
		"bound", n,
		"threshold", threshold,
		"workers", e.opts.Workers,
		"strategy", e.opts.Strategy.String(),
		"elapsed", t.stats.Elapsed,
	)

	return t, nil
}

// allocate builds the zeroed n+1 slot table, enforcing the platform slice
// limit and the optional memory budget. No partial state survives failure.
func (e *Engine) allocate(n uint64) (*Table, error) {
	slots := n + 1
	if slots == 0 || slots > uint64(math.MaxInt) {
		return nil, &ErrAllocation{Slots: slots, cause: errSliceLimit}
	}

	bytes := int64(slots)
	if !e.opts.Resources.TryAcquireMemory(bytes) {
		return nil, &ErrAllocation{Slots: slots, cause: errBudgetExceeded}
	}

	return &Table{
		composite: make([]bool, slots),
		bound:     n,
		resources: e.opts.Resources,
		bytes:     bytes,
	}, nil
}

// threshold computes the floor(sqrt(n)) outer-loop limit. The 32-bit
// domain uses biased float truncation like the reference arithmetic; the
// native domain needs the exact integer method.
func (e *Engine) threshold(n uint64) uint64 {
	if e.opts.Domain == bound.DomainNative {
		return isqrt(n)
	}
	return floatSqrt(n)
}

// markOuter forks the candidate range [2, threshold] into one contiguous
// chunk per worker. A worker may observe a stale "not composite" for a
// base a peer is still marking and then redundantly walk that base's
// multiples; the writes set the same values, so the fixed point is the
// same and no lock is taken.
func (e *Engine) markOuter(ctx context.Context, t *Table, threshold uint64) error {
	if threshold < 2 {
		return nil
	}

	candidates := threshold - 1 // bases in [2, threshold]
	chunks := uint64(e.opts.Workers)
	if chunks > candidates {
		chunks = candidates
	}

	size := candidates / chunks
	rem := candidates % chunks

	g, _ := errgroup.WithContext(ctx)
	start := uint64(2)
	for i := uint64(0); i < chunks; i++ {
		end := start + size
		if i < rem {
			end++
		}

		chunkLo, chunkHi := start, end
		g.Go(func() error {
			for base := chunkLo; base < chunkHi; base++ {
				if t.composite[base] {
					continue
				}
				markMultiples(t.composite, base, t.bound)
			}
			return nil
		})

		start = end
	}

	return g.Wait()
}

// markInner resolves each base sequentially and fans its multiples out
// across a persistent pool. The join barrier per base guarantees every
// base is fully resolved before the next is examined, so composite bases
// never spawn a region.
func (e *Engine) markInner(ctx context.Context, t *Table, threshold uint64) error {
	if threshold < 2 {
		return nil
	}

	pool := NewWorkerPool(e.opts.Workers)
	defer pool.Close()

	for base := uint64(2); base <= threshold; base++ {
		if t.composite[base] {
			continue
		}

		first := base * base
		if first > t.bound {
			break
		}
		steps := (t.bound-first)/base + 1

		err := pool.ParallelFor(ctx, 0, steps, func(lo, hi uint64) {
			for k := lo; k < hi; k++ {
				t.composite[first+k*base] = true
			}
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// markMultiples marks base*base, base*base+base, ... up to limit.
// base <= floor(sqrt(limit)), so base*base cannot wrap.
func markMultiples(composite []bool, base, limit uint64) {
	for m := base * base; m <= limit; m += base {
		composite[m] = true
		if limit-m < base {
			// Next step would wrap at the top of the native domain.
			break
		}
	}
}
