// Package format renders sieve results to a writer.
//
// Rendering follows the classic sieve output shape: primes in increasing
// order, a separator between values on the same line, a line break after
// every PerLine-th value, and a final line break when the last line was
// left incomplete.
package format

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/gosieve/sieve"
)

// ErrInvalidPerLine is returned when the per-line count is below 1.
var ErrInvalidPerLine = errors.New("per-line count must be at least 1")

// Options contains configuration options for rendering.
type Options struct {
	// PerLine is the number of primes printed per line. Must be > 0.
	PerLine int

	// Separator is printed between primes on the same line.
	Separator string
}

// DefaultOptions contains the default rendering options.
var DefaultOptions = Options{
	PerLine:   10,
	Separator: "\t",
}

// Fprint writes the primes of t to w according to o.
//
// Each prime is followed by the separator, except the PerLine-th on a line,
// which is followed by a newline instead. An incomplete final line keeps
// its trailing separator and gets a closing newline.
func Fprint(w io.Writer, t *sieve.Table, o Options) error {
	if o.PerLine < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPerLine, o.PerLine)
	}

	bw := bufio.NewWriter(w)

	inLine := 0
	for p := range t.Primes() {
		inLine = (inLine + 1) % o.PerLine

		sep := o.Separator
		if inLine == 0 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(bw, "%d%s", p, sep); err != nil {
			return err
		}
	}

	if inLine > 0 {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
