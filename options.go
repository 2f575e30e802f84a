package gosieve

import (
	"github.com/hupe1980/gosieve/bound"
	"github.com/hupe1980/gosieve/sieve"
)

type options struct {
	workers    int
	workersSet bool
	strategy   sieve.Strategy
	domain     bound.Domain
	overflow   bound.OverflowPolicy
	logger     *Logger
	memLimit   int64
}

func defaultOptions() options {
	return options{
		strategy: sieve.OuterParallel,
		domain:   bound.Domain32,
		overflow: bound.OverflowClamp,
		logger:   NoopLogger(),
	}
}

// Option configures Run behavior.
type Option func(*options)

// WithWorkers hints the worker count. Values below 1 make Run fail with
// ErrInvalidWorkers; omit the option for the platform core count.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
		o.workersSet = true
	}
}

// WithStrategy selects the parallel marking strategy.
func WithStrategy(s sieve.Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithWideDomain switches from the 32-bit to the pointer-width numeric
// domain, admitting larger bounds at the cost of exact integer threshold
// arithmetic.
func WithWideDomain() Option {
	return func(o *options) {
		o.domain = bound.DomainNative
	}
}

// WithStrictOverflow fails on a range-exceeded bound instead of clamping
// and warning.
func WithStrictOverflow() Option {
	return func(o *options) {
		o.overflow = bound.OverflowFail
	}
}

// WithLogger sets the logger for diagnostics. Nil restores the noop logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMemoryLimit caps the composite table allocation at bytes.
// Exceeding the cap surfaces as an allocation failure instead of the
// runtime's unrecoverable out-of-memory condition. 0 means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memLimit = bytes
	}
}
