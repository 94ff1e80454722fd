package interop

import (
	"context"
	"log/slog"
	"os"

	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
)

// Logger wraps slog.Logger with the field names used by readers and writers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// A nil handler logs text to stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger writing JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger writing human readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithMetricGroup adds the metric group to every entry.
func (l *Logger) WithMetricGroup(group format.MetricGroup) *Logger {
	return &Logger{Logger: l.Logger.With("group", group.String())}
}

// WithPath adds the file path or object name to every entry.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{Logger: l.Logger.With("path", path)}
}

// LogRead logs the outcome of decoding one metric file.
func (l *Logger) LogRead(ctx context.Context, size int, compression format.CompressionType, records int, err error) {
	switch {
	case err == nil:
		l.DebugContext(ctx, "metric file read",
			"bytes", size,
			"compression", compression.String(),
			"records", records,
		)
	case errs.IsRetryable(err):
		l.WarnContext(ctx, "metric file incomplete",
			"bytes", size,
			"error", err,
		)
	default:
		l.ErrorContext(ctx, "metric file read failed",
			"bytes", size,
			"error", err,
		)
	}
}

// LogWrite logs the outcome of encoding one metric file.
func (l *Logger) LogWrite(ctx context.Context, records, size int, compression format.CompressionType, err error) {
	if err != nil {
		l.ErrorContext(ctx, "metric file write failed",
			"records", records,
			"error", err,
		)

		return
	}

	l.DebugContext(ctx, "metric file written",
		"records", records,
		"bytes", size,
		"compression", compression.String(),
	)
}

// LogRun logs the outcome of loading the metric files of a run.
func (l *Logger) LogRun(ctx context.Context, loaded, missing int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "run load failed",
			"loaded", loaded,
			"error", err,
		)
	case missing > 0:
		l.InfoContext(ctx, "run loaded with missing files",
			"loaded", loaded,
			"missing", missing,
		)
	default:
		l.InfoContext(ctx, "run loaded",
			"loaded", loaded,
		)
	}
}
