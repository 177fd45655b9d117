package hermes

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/hermes/distance"
)

// Logger wraps slog.Logger with hermes-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithID adds an id field to the logger.
func (l *Logger) WithID(id uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("id", id),
	}
}

// WithMetric adds a metric field to the logger.
func (l *Logger) WithMetric(m distance.Metric) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", m.String()),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogEvaluate logs a distance evaluation. Successful evaluations are only
// visible at debug level.
func (l *Logger) LogEvaluate(ctx context.Context, m distance.Metric, dimension int, err error) {
	if err != nil {
		l.WarnContext(ctx, "evaluate failed",
			"metric", m.String(),
			"dimension", dimension,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "evaluate completed",
			"metric", m.String(),
			"dimension", dimension,
		)
	}
}

// LogSave logs storing a serialized vector.
func (l *Logger) LogSave(ctx context.Context, id uint32, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"id", id,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "save completed",
			"id", id,
			"bytes", bytes,
		)
	}
}

// LogLoad logs fetching a serialized vector.
func (l *Logger) LogLoad(ctx context.Context, id uint32, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"id", id,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "load completed",
			"id", id,
			"bytes", bytes,
		)
	}
}

// LogBatch logs a batch operation over many vectors.
func (l *Logger) LogBatch(ctx context.Context, op string, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch completed with failures",
			"op", op,
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch completed",
			"op", op,
			"count", count,
		)
	}
}
