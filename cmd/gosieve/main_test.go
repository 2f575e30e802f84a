package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"Help", []string{"-h"}, 2},
		{"MissingMax", []string{}, 1},
		{"UnknownFlag", []string{"--bogus", "100"}, 1},
		{"MalformedMax", []string{"-q", "abc"}, 1},
		{"WorkersZero", []string{"-n", "0", "100"}, 1},
		{"WorkersNegative", []string{"-n=-2", "100"}, 1},
		{"LineZero", []string{"-l", "0", "100"}, 1},
		{"StrictOverflow", []string{"--strict", "-q", "99999999999999999999"}, 1},
		{"AllocationFailure", []string{"--mem-limit", "16", "-q", "1000000"}, 1},
		{"Quiet", []string{"-q", "1000"}, 0},
		{"QuietTimed", []string{"-q", "-t", "1000"}, 0},
		{"FastQuiet", []string{"-f", "-q", "1000"}, 0},
		{"ExtendedQuiet", []string{"-e", "-q", "1000"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.args))
		})
	}
}
