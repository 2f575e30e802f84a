package gosieve

import (
	"errors"
	"fmt"

	"github.com/hupe1980/gosieve/bound"
	"github.com/hupe1980/gosieve/sieve"
)

var (
	// ErrMalformedBound is returned when the bound token is not a
	// non-negative base-10 integer.
	ErrMalformedBound = errors.New("malformed bound")

	// ErrRangeExceeded is returned under the strict overflow policy when
	// the requested bound does not fit the numeric domain.
	ErrRangeExceeded = errors.New("bound out of range")

	// ErrInvalidWorkers is returned when the worker hint is below 1.
	ErrInvalidWorkers = errors.New("worker count must be at least 1")
)

// ErrAllocation indicates the composite table could not be allocated.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrAllocation struct {
	Slots uint64
	cause error
}

func (e *ErrAllocation) Error() string {
	return fmt.Sprintf("cannot allocate composite table (%d slots), try a smaller bound", e.Slots)
}

func (e *ErrAllocation) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, bound.ErrMalformed) {
		return fmt.Errorf("%w: %w", ErrMalformedBound, err)
	}
	if errors.Is(err, bound.ErrRangeExceeded) {
		return fmt.Errorf("%w: %w", ErrRangeExceeded, err)
	}

	var ea *sieve.ErrAllocation
	if errors.As(err, &ea) {
		return &ErrAllocation{Slots: ea.Slots, cause: err}
	}

	return err
}
