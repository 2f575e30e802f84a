package sieve

import (
	"errors"
	"fmt"
)

// ErrPoolClosed is returned when work is submitted to a closed pool.
var ErrPoolClosed = errors.New("worker pool closed")

// ErrAllocation indicates the composite table could not be allocated.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrAllocation struct {
	Slots uint64
	cause error
}

func (e *ErrAllocation) Error() string {
	return fmt.Sprintf("cannot allocate composite table of %d slots, try a smaller bound", e.Slots)
}

func (e *ErrAllocation) Unwrap() error { return e.cause }

// errBudgetExceeded distinguishes budget rejections from platform limits.
var errBudgetExceeded = errors.New("memory budget exceeded")

// errSliceLimit marks bounds beyond the platform's slice length limit.
var errSliceLimit = errors.New("table exceeds platform slice limit")
