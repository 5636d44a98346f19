package tractgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with tractgo-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithWorkers adds a worker-count field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// WithShape adds the static/moving bundle sizes to the logger.
func (l *Logger) WithShape(staticSize, movingSize int) *Logger {
	return &Logger{
		Logger: l.Logger.With("static", staticSize, "moving", movingSize),
	}
}

// LogDistanceMatrix logs a distance matrix computation.
func (l *Logger) LogDistanceMatrix(ctx context.Context, staticSize, movingSize int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "distance matrix failed",
			"static", staticSize,
			"moving", movingSize,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "distance matrix completed",
			"static", staticSize,
			"moving", movingSize,
		)
	}
}

// LogBundleMinimum logs a bundle-minimum-distance computation.
func (l *Logger) LogBundleMinimum(ctx context.Context, staticSize, movingSize int, distance float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "bundle minimum distance failed",
			"static", staticSize,
			"moving", movingSize,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "bundle minimum distance completed",
			"static", staticSize,
			"moving", movingSize,
			"distance", distance,
		)
	}
}
