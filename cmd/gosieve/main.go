// Package main implements the gosieve command, a parallel Sieve of
// Eratosthenes over a user-supplied bound.
//
// Primes go to stdout; every diagnostic (usage text, clamp warnings,
// timing, logs) goes to stderr so results stay pipeable.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/gosieve"
	"github.com/hupe1980/gosieve/format"
	"github.com/hupe1980/gosieve/sieve"
)

const version = "0.1.0"

type config struct {
	workers   int
	timing    bool
	perLine   int
	separator string
	quiet     bool
	fast      bool
	extended  bool
	strict    bool
	memLimit  int64
	verbose   bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var cfg config

	cmd := &cobra.Command{
		Use:     "gosieve [flags] MAX",
		Short:   "Compute all primes up to MAX with a parallel Sieve of Eratosthenes",
		Version: version,
		Args:    cobra.ExactArgs(1),
		Example: `  # All primes up to one million, ten per line
  gosieve 1000000

  # Inner-parallel marking on 4 workers, comma separated, timed
  gosieve -f -n 4 -s , -t 1000000

  # Pure measurement: no output, timing only
  gosieve -q -t 100000000`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return sievePrimes(cmd, args[0], cfg)
		},
	}

	cmd.Flags().IntVarP(&cfg.workers, "workers", "n", 0, "worker count hint (default: all cores)")
	cmd.Flags().BoolVarP(&cfg.timing, "time", "t", false, "report sieve-phase wall time")
	cmd.Flags().IntVarP(&cfg.perLine, "line", "l", format.DefaultOptions.PerLine, "primes per output line")
	cmd.Flags().StringVarP(&cfg.separator, "separator", "s", format.DefaultOptions.Separator, "separator between same-line primes")
	cmd.Flags().BoolVarP(&cfg.quiet, "quiet", "q", false, "suppress result printing")
	cmd.Flags().BoolVarP(&cfg.fast, "fast", "f", false, "inner-parallel marking (skips redundant work)")
	cmd.Flags().BoolVarP(&cfg.extended, "extended", "e", false, "pointer-width bounds instead of 32-bit")
	cmd.Flags().BoolVar(&cfg.strict, "strict", false, "fail instead of clamping an out-of-range MAX")
	cmd.Flags().Int64Var(&cfg.memLimit, "mem-limit", 0, "table memory budget in bytes (0 = unlimited)")
	cmd.Flags().BoolVarP(&cfg.verbose, "verbose", "v", false, "debug logging")

	cmd.SetArgs(args)
	// Usage and help are diagnostics; they must never land in the
	// results stream.
	cmd.SetOut(os.Stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	if helpRequested(cmd) {
		// Usage text without a computation still exits non-zero.
		return 2
	}

	return 0
}

func helpRequested(cmd *cobra.Command) bool {
	f := cmd.Flags().Lookup("help")
	return f != nil && f.Changed
}

func sievePrimes(cmd *cobra.Command, maxToken string, cfg config) error {
	if cmd.Flags().Changed("workers") && cfg.workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", cfg.workers)
	}
	if cfg.perLine < 1 {
		return fmt.Errorf("line width must be at least 1, got %d", cfg.perLine)
	}

	// Past argument validation; failures from here on are runtime
	// conditions, not usage errors.
	cmd.SilenceUsage = true

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := gosieve.NewTextLogger(level)

	opts := []gosieve.Option{gosieve.WithLogger(logger)}
	if cmd.Flags().Changed("workers") {
		opts = append(opts, gosieve.WithWorkers(cfg.workers))
	}
	if cfg.fast {
		opts = append(opts, gosieve.WithStrategy(sieve.InnerParallel))
	}
	if cfg.extended {
		opts = append(opts, gosieve.WithWideDomain())
	}
	if cfg.strict {
		opts = append(opts, gosieve.WithStrictOverflow())
	}
	if cfg.memLimit > 0 {
		opts = append(opts, gosieve.WithMemoryLimit(cfg.memLimit))
	}

	table, err := gosieve.Run(cmd.Context(), maxToken, opts...)
	if err != nil {
		return err
	}
	defer table.Release()

	stats := table.Stats()
	if cfg.timing {
		fmt.Fprintf(os.Stderr, "sieve time: %.6f s\n", stats.Elapsed.Seconds())
	}
	if cfg.verbose {
		logger.Debug("run summary",
			"bound", table.Bound(),
			"primes", table.Set().GetCardinality(),
			"workers", stats.Workers,
			"strategy", stats.Strategy.String(),
		)
	}

	if cfg.quiet {
		return nil
	}

	return format.Fprint(os.Stdout, table, format.Options{
		PerLine:   cfg.perLine,
		Separator: cfg.separator,
	})
}
