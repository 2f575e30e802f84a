// Package bound resolves the user-supplied upper limit of a sieve run into a
// value the engine can address.
//
// A bound lives in a numeric Domain: either the fixed 32-bit unsigned range
// or the platform pointer-width unsigned range. The domain maximum is
// reserved as a parse sentinel and is never a valid bound; requests at or
// above it resolve to max-1 under the configured OverflowPolicy.
package bound

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Domain selects the numeric range a bound must fit in. It also fixes the
// maximum addressable size of the composite table built from the bound.
type Domain int

const (
	// Domain32 restricts bounds to the 32-bit unsigned range.
	Domain32 Domain = iota

	// DomainNative restricts bounds to the platform pointer-width unsigned
	// range. On 64-bit platforms this admits bounds far beyond what is
	// allocatable; the engine's allocation guard handles that.
	DomainNative
)

// Max returns the domain's maximum representable value. The maximum itself
// is reserved as the overflow sentinel; the largest usable bound is Max()-1.
func (d Domain) Max() uint64 {
	if d == DomainNative {
		return uint64(^uint(0))
	}
	return math.MaxUint32
}

func (d Domain) String() string {
	if d == DomainNative {
		return "native"
	}
	return "u32"
}

// OverflowPolicy decides what happens when the requested bound does not fit
// the domain.
type OverflowPolicy int

const (
	// OverflowClamp resolves out-of-range requests to the largest usable
	// bound. Resolution.Clamped is set so the caller can warn.
	OverflowClamp OverflowPolicy = iota

	// OverflowFail rejects out-of-range requests with ErrRangeExceeded.
	OverflowFail
)

var (
	// ErrMalformed is returned when the token is not a non-negative base-10
	// integer.
	ErrMalformed = errors.New("bound is not a non-negative base-10 integer")

	// ErrRangeExceeded is returned under OverflowFail when the requested
	// bound does not fit the domain.
	ErrRangeExceeded = errors.New("bound exceeds the numeric domain")
)

// Resolution is the outcome of resolving a bound token.
type Resolution struct {
	// Value is the effective inclusive bound.
	Value uint64

	// Requested is the original token.
	Requested string

	// Clamped reports that Value differs from the requested bound.
	Clamped bool
}

// Resolve parses token as a base-10 unsigned integer and fits it into d.
//
// Values beyond the domain maximum clamp to it first; a value landing on the
// reserved maximum then decrements to max-1. Under OverflowClamp a clamped
// resolution is returned without error, under OverflowFail it is an
// ErrRangeExceeded. Malformed tokens are always ErrMalformed, never a crash.
func Resolve(token string, d Domain, p OverflowPolicy) (Resolution, error) {
	res := Resolution{Requested: token}

	v, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			// True value exceeds even uint64; treat as the sentinel.
			v = math.MaxUint64
		} else {
			return res, fmt.Errorf("%w: %q: %w", ErrMalformed, token, err)
		}
	}

	if max := d.Max(); v >= max {
		v = max - 1
		res.Clamped = true
	}
	res.Value = v

	if res.Clamped && p == OverflowFail {
		return res, fmt.Errorf("%w: requested %q, domain %s admits at most %d",
			ErrRangeExceeded, token, d, d.Max()-1)
	}

	return res, nil
}
