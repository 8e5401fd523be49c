package valgebra

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/valgebra/blend"
	"github.com/hupe1980/valgebra/value"
)

// Logger wraps slog.Logger with valgebra-specific fields.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithKind adds a kind field to the logger.
func (l *Logger) WithKind(k value.Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", k.String()),
	}
}

// WithMode adds a mode field to the logger.
func (l *Logger) WithMode(m blend.Mode) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", m.String()),
	}
}

// WithRun adds a run ID field to the logger.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run", id),
	}
}

// LogBatch logs a batched blend or accumulation.
func (l *Logger) LogBatch(ctx context.Context, op string, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, op+" failed",
			"count", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, op+" completed",
			"count", n,
		)
	}
}

// LogJob logs the outcome of one recipe job.
func (l *Logger) LogJob(ctx context.Context, job string, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "job failed",
			"job", job,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "job completed",
			"job", job,
			"count", n,
		)
	}
}
