package gosieve

import (
	"log/slog"
	"os"

	"github.com/hupe1980/gosieve/sieve"
)

// Logger wraps slog.Logger with sieve-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs
// to stderr, keeping the results stream clean.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithBound adds a bound field to the logger.
func (l *Logger) WithBound(bound uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("bound", bound),
	}
}

// WithWorkers adds a workers field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// LogClamp warns that the requested bound was reduced to the effective one.
func (l *Logger) LogClamp(requested string, effective uint64) {
	l.Warn("requested bound is higher than the domain can handle",
		"requested", requested,
		"effective", effective,
	)
}

// LogRun logs a completed or failed sieve run.
func (l *Logger) LogRun(stats sieve.Stats, err error) {
	if err != nil {
		l.Error("sieve failed",
			"error", err,
		)
		return
	}
	l.Debug("sieve run",
		"bound", stats.Bound,
		"workers", stats.Workers,
		"strategy", stats.Strategy.String(),
		"elapsed", stats.Elapsed,
	)
}
