package sieve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatSqrt(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{24, 4},
		{25, 5}, // the classic 4.999999 truncation victim
		{26, 5},
		{100, 10},
		{math.MaxUint32 - 1, 65535},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, floatSqrt(tt.n), "floatSqrt(%d)", tt.n)
	}
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{25, 5},
		{math.MaxUint32, 65535},
		{1 << 40, 1 << 20},
		{(1 << 40) - 1, (1 << 20) - 1},
		{math.MaxUint64, math.MaxUint32},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isqrt(tt.n), "isqrt(%d)", tt.n)
	}
}

func TestIsqrtAroundPerfectSquares(t *testing.T) {
	for _, k := range []uint64{3, 1000, 65536, 1 << 31, math.MaxUint32} {
		sq := k * k
		assert.Equal(t, k-1, isqrt(sq-1), "isqrt(%d^2-1)", k)
		assert.Equal(t, k, isqrt(sq), "isqrt(%d^2)", k)
		assert.Equal(t, k, isqrt(sq+1), "isqrt(%d^2+1)", k)
	}
}
