package sieve

import "time"

// Stats describes a completed sieve run.
type Stats struct {
	// Bound is the inclusive upper limit that was sieved.
	Bound uint64

	// Threshold is the floor(sqrt(Bound)) outer-loop limit that was used.
	Threshold uint64

	// Workers is the effective worker count.
	Workers int

	// Strategy is the marking strategy that ran.
	Strategy Strategy

	// Elapsed is the wall-clock time of the marking phase only; it excludes
	// allocation and output.
	Elapsed time.Duration
}
