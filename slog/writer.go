package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/headlines"
)

// Ensure LoggingWriter implements headlines.TabularWriter.
var _ headlines.TabularWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a TabularWriter with logging.
type LoggingWriter struct {
	next   headlines.TabularWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next headlines.TabularWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteHeadlines delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteHeadlines(ctx context.Context, path string, headers []string, rows []headlines.Headline) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write",
			"path", path,
			"rows", len(rows),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteHeadlines(ctx, path, headers, rows)
}
