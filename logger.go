package connectome

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with connectome-specific context.
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

// WithRank adds the calling process's rank to the logger.
func (l *Logger) WithRank(rank int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rank", rank),
	}
}

// WithSynapseModel adds the synapse model name to the logger.
func (l *Logger) WithSynapseModel(model string) *Logger {
	return &Logger{
		Logger: l.Logger.With("synapse_model", model),
	}
}

// LogMaskBuild logs one mask-construction pass.
func (l *Logger) LogMaskBuild(ctx context.Context, processes, sourceRanges, targetRanges int) {
	l.DebugContext(ctx, "masks built",
		"processes", processes,
		"source_ranges", sourceRanges,
		"target_ranges", targetRanges,
	)
}

// LogConnect logs the outcome of one connect call.
func (l *Logger) LogConnect(ctx context.Context, created, failed int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "connect aborted",
			"created", created,
			"failed", failed,
			"error", err,
		)
	case failed > 0:
		l.WarnContext(ctx, "connect completed with failures",
			"created", created,
			"failed", failed,
		)
	default:
		l.DebugContext(ctx, "connect completed",
			"created", created,
		)
	}
}
