package format

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gosieve/sieve"
)

func sieveTo(t *testing.T, n uint64) *sieve.Table {
	t.Helper()

	table, err := sieve.New(sieve.DefaultOptions).Sieve(context.Background(), n)
	require.NoError(t, err)
	t.Cleanup(table.Release)

	return table
}

func TestFprintFullLine(t *testing.T) {
	var sb strings.Builder

	// Exactly ten primes up to 30; one complete line, no dangling separator.
	err := Fprint(&sb, sieveTo(t, 30), Options{PerLine: 10, Separator: ","})
	require.NoError(t, err)

	assert.Equal(t, "2,3,5,7,11,13,17,19,23,29\n", sb.String())
}

func TestFprintIncompleteLastLine(t *testing.T) {
	var sb strings.Builder

	// Eleven primes up to 31; the straggler keeps its separator.
	err := Fprint(&sb, sieveTo(t, 31), Options{PerLine: 10, Separator: ","})
	require.NoError(t, err)

	assert.Equal(t, "2,3,5,7,11,13,17,19,23,29\n31,\n", sb.String())
}

func TestFprintOnePerLine(t *testing.T) {
	var sb strings.Builder

	err := Fprint(&sb, sieveTo(t, 10), Options{PerLine: 1, Separator: ","})
	require.NoError(t, err)

	assert.Equal(t, "2\n3\n5\n7\n", sb.String())
}

func TestFprintDefaultSeparator(t *testing.T) {
	var sb strings.Builder

	err := Fprint(&sb, sieveTo(t, 10), DefaultOptions)
	require.NoError(t, err)

	assert.Equal(t, "2\t3\t5\t7\t\n", sb.String())
}

func TestFprintEmpty(t *testing.T) {
	var sb strings.Builder

	err := Fprint(&sb, sieveTo(t, 1), DefaultOptions)
	require.NoError(t, err)

	assert.Empty(t, sb.String())
}

func TestFprintInvalidPerLine(t *testing.T) {
	var sb strings.Builder

	err := Fprint(&sb, sieveTo(t, 10), Options{PerLine: 0, Separator: ","})
	assert.ErrorIs(t, err, ErrInvalidPerLine)
	assert.Empty(t, sb.String())
}
