package sieve

import (
	"iter"
	"sync/atomic"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/gosieve/resource"
)

// Table is the composite-marking table produced by a sieve run.
// After marking, entry i is true iff i is composite, for i in [0, Bound].
// Entries 0 and 1 are never consulted as primality answers; iteration
// starts at 2.
//
// A Table is read-only once returned by the engine. Release must run on
// every path (callers defer it); it is idempotent, nil-safe, and returns
// any reserved memory budget. The table must not be used after Release.
type Table struct {
	composite []bool
	bound     uint64
	stats     Stats

	released  atomic.Bool
	resources *resource.Controller
	bytes     int64
}

// Bound returns the inclusive upper limit of the table.
func (t *Table) Bound() uint64 { return t.bound }

// Stats returns timing and scheduling details of the run that produced t.
func (t *Table) Stats() Stats { return t.stats }

// IsPrime reports whether n is prime. n must not exceed Bound.
func (t *Table) IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	return !t.composite[n]
}

// Primes yields the primes in increasing order, starting at 2.
func (t *Table) Primes() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for n := uint64(2); n <= t.bound; n++ {
			if !t.composite[n] && !yield(n) {
				return
			}
		}
	}
}

// Count returns the number of primes in [2, Bound].
func (t *Table) Count() uint64 {
	var count uint64
	for n := uint64(2); n <= t.bound; n++ {
		if !t.composite[n] {
			count++
		}
	}
	return count
}

// Set materializes the primes as a roaring bitmap, a compact set form of
// the table suited to equality checks and cardinality queries.
func (t *Table) Set() *roaring64.Bitmap {
	set := roaring64.New()
	for p := range t.Primes() {
		set.Add(p)
	}
	return set
}

// Release frees the table storage and returns any reserved memory budget.
// Safe to call multiple times and on a nil table.
func (t *Table) Release() {
	if t == nil {
		return
	}
	if !t.released.CompareAndSwap(false, true) {
		return
	}

	t.composite = nil
	if t.bytes > 0 {
		t.resources.ReleaseMemory(t.bytes)
	}
}
