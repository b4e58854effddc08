package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/headlines"
)

// Ensure LoggingExtractor implements headlines.HeadlineExtractor.
var _ headlines.HeadlineExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a HeadlineExtractor with debug logging.
type LoggingExtractor struct {
	next   headlines.HeadlineExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next headlines.HeadlineExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractHeadlines delegates to the wrapped extractor and logs the result.
func (e *LoggingExtractor) ExtractHeadlines(baseURL, provider string, page *headlines.Page, tag string) (hs []headlines.Headline, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract headlines",
			"provider", provider,
			"tag", tag,
			"count", len(hs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractHeadlines(baseURL, provider, page, tag)
}
