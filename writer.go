package headlines

import "context"

// TabularWriter persists headline rows as a delimited file.
type TabularWriter interface {
	// WriteHeadlines writes a header row built from headers followed by
	// one row per headline to path. Calling it with no rows is an error.
	WriteHeadlines(ctx context.Context, path string, headers []string, rows []Headline) error
}
