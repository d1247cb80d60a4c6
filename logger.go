package kohonen

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/kohonen/lattice"
)

// Logger wraps slog.Logger with kohonen-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithGrid adds the lattice shape to the logger.
func (l *Logger) WithGrid(rows, cols int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows, "cols", cols),
	}
}

// WithRun adds the training parameters to the logger.
func (l *Logger) WithRun(maxIterate int, alpha0, sigma0 float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("max_iterate", maxIterate, "alpha0", alpha0, "sigma0", sigma0),
	}
}

// LogStep logs a completed training step.
func (l *Logger) LogStep(ctx context.Context, iteration, sample int, bmu lattice.Match, alpha, sigma float64) {
	l.DebugContext(ctx, "step completed",
		"iteration", iteration,
		"sample", sample,
		"bmu", bmu.Position.String(),
		"bmu_distance", bmu.Distance,
		"alpha", alpha,
		"sigma", sigma,
	)
}

// LogProgress logs training progress during Run.
func (l *Logger) LogProgress(ctx context.Context, iteration, maxIterate int) {
	l.InfoContext(ctx, "training progress",
		"iteration", iteration,
		"max_iterate", maxIterate,
	)
}

// LogRun logs the end of a Run call.
func (l *Logger) LogRun(ctx context.Context, steps int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "training interrupted",
			"steps", steps,
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "training completed",
			"steps", steps,
			"elapsed", elapsed,
		)
	}
}
