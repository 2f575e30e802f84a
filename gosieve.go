// Package gosieve computes all primes up to a bound with a parallel Sieve
// of Eratosthenes.
//
// # Quick start
//
//	table, err := gosieve.Run(ctx, "1000000")
//	if err != nil {
//		return err
//	}
//	defer table.Release()
//
//	for p := range table.Primes() {
//		fmt.Println(p)
//	}
//
// Run resolves the textual bound (clamping out-of-range requests per the
// configured policy) and executes the sieve. Strategy, worker count,
// numeric domain, overflow policy and memory budget are selected with
// functional options; see Option. Callers that already hold a numeric
// bound can use Compute.
//
// Package sieve holds the engine, package bound the resolver, and package
// format the line-oriented output renderer used by the CLI.
package gosieve

import (
	"context"
	"fmt"

	"github.com/hupe1980/gosieve/bound"
	"github.com/hupe1980/gosieve/resource"
	"github.com/hupe1980/gosieve/sieve"
)

// Run resolves maxToken into a bound and sieves all primes up to it.
// The caller must release the returned table; Release is idempotent and
// safe to defer immediately.
func Run(ctx context.Context, maxToken string, opts ...Option) (*sieve.Table, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	res, err := bound.Resolve(maxToken, o.domain, o.overflow)
	if err != nil {
		return nil, translateError(err)
	}
	if res.Clamped {
		o.logger.LogClamp(res.Requested, res.Value)
	}

	return compute(ctx, res.Value, o)
}

// Compute sieves all primes up to n, skipping textual bound resolution.
// n must be below the configured domain's maximum.
func Compute(ctx context.Context, n uint64, opts ...Option) (*sieve.Table, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	if max := o.domain.Max(); n >= max {
		return nil, fmt.Errorf("%w: %d, domain %s admits at most %d",
			ErrRangeExceeded, n, o.domain, max-1)
	}

	return compute(ctx, n, o)
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.workersSet && o.workers < 1 {
		return o, fmt.Errorf("%w: got %d", ErrInvalidWorkers, o.workers)
	}

	return o, nil
}

func compute(ctx context.Context, n uint64, o options) (*sieve.Table, error) {
	var ctrl *resource.Controller
	if o.memLimit > 0 {
		ctrl = resource.NewController(resource.Config{MemoryLimitBytes: o.memLimit})
	}

	engine := sieve.New(sieve.Options{
		Strategy:  o.strategy,
		Workers:   o.workers,
		Domain:    o.domain,
		Logger:    o.logger.Logger,
		Resources: ctrl,
	})

	table, err := engine.Sieve(ctx, n)
	if err != nil {
		err = translateError(err)
		o.logger.LogRun(sieve.Stats{}, err)
		return nil, err
	}
	o.logger.LogRun(table.Stats(), nil)

	return table, nil
}
