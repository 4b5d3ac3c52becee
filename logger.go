package knn

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with knn-specific helpers.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithStrategy adds the neighbor search strategy to the logger.
func (l *Logger) WithStrategy(s Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", s.String()),
	}
}

// LogFit logs a fit operation.
func (l *Logger) LogFit(rows, classes int, err error) {
	if err != nil {
		l.Error("fit failed",
			"rows", rows,
			"error", err,
		)
	} else {
		l.Debug("fit completed",
			"rows", rows,
			"classes", classes,
		)
	}
}

// LogSearch logs a neighbor search over a query batch.
func (l *Logger) LogSearch(queries, blockSize int, err error) {
	if err != nil {
		l.Error("search failed",
			"queries", queries,
			"error", err,
		)
	} else {
		l.Debug("search completed",
			"queries", queries,
			"block_size", blockSize,
		)
	}
}

// LogPredict logs a predict operation.
func (l *Logger) LogPredict(queries int, precomputed bool, err error) {
	if err != nil {
		l.Error("predict failed",
			"queries", queries,
			"error", err,
		)
	} else {
		l.Debug("predict completed",
			"queries", queries,
			"precomputed", precomputed,
		)
	}
}

// LogFold logs the evaluation of a single cross-validation fold.
func (l *Logger) LogFold(fold, train, test int, err error) {
	if err != nil {
		l.Error("fold failed",
			"fold", fold,
			"error", err,
		)
	} else {
		l.Debug("fold completed",
			"fold", fold,
			"train", train,
			"test", test,
		)
	}
}

// LogCrossValidation logs a completed cross-validation run.
func (l *Logger) LogCrossValidation(folds int, ks []int) {
	l.Info("cross-validation completed",
		"folds", folds,
		"ks", ks,
	)
}
