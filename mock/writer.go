package mock

import (
	"context"

	"github.com/fwojciec/headlines"
)

var _ headlines.TabularWriter = (*TabularWriter)(nil)

// TabularWriter is a mock implementation of headlines.TabularWriter.
type TabularWriter struct {
	WriteHeadlinesFn func(ctx context.Context, path string, headers []string, rows []headlines.Headline) error
}

func (w *TabularWriter) WriteHeadlines(ctx context.Context, path string, headers []string, rows []headlines.Headline) error {
	return w.WriteHeadlinesFn(ctx, path, headers, rows)
}
