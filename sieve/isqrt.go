package sieve

import "math"

// sqrtBias counteracts floating-point under-representation at perfect
// squares (sqrt(25) coming out as 4.999999 and truncating to 4). Large
// enough to absorb representable rounding error, small enough never to
// admit an extra candidate. Adequate through the 32-bit domain.
const sqrtBias = 1e-5

// floatSqrt returns floor(sqrt(n)) via biased float truncation.
// Only valid for the 32-bit domain, where float64 carries n exactly.
func floatSqrt(n uint64) uint64 {
	return uint64(math.Sqrt(float64(n)) + sqrtBias)
}

// isqrt returns floor(sqrt(n)) exactly. Used for the native domain, where
// bounds can exceed float64's integer precision.
func isqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}

	// Seed from the float estimate, then correct. float64 sqrt lands
	// within one step of the true root for all uint64 inputs.
	x := uint64(math.Sqrt(float64(n)))
	for x > 0 && x > n/x {
		x--
	}
	for x+1 <= n/(x+1) {
		x++
	}

	return x
}
