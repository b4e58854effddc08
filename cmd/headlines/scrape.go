package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/scrape"
)

// ScrapeCmd runs one pass over the site registry.
type ScrapeCmd struct {
	Preview bool
}

// Run executes the scrape command.
// Sites without content or headlines are reported, not treated as errors.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	progress := func(r scrape.Result) {
		switch r.State {
		case scrape.StateWritten:
			if !c.Preview {
				fmt.Fprintf(deps.Stdout, "%s: %d headlines -> %s (page %s)\n", r.Provider, r.Count, r.Path, r.ContentHash)
			}
		case scrape.StatePageAbsent:
			fmt.Fprintf(deps.Stderr, "No content found for %s\n", r.Provider)
		case scrape.StateHeadlinesEmpty:
			fmt.Fprintf(deps.Stderr, "No headlines found for %s\n", r.Provider)
		case scrape.StateFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", r.Provider, r.Err)
		}
	}

	results, err := deps.Scraper.Run(deps.Ctx, deps.Sites, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", headlines.ErrorMessage(err))
		return err
	}

	sum := scrape.Summarize(results)
	fmt.Fprintf(deps.Stdout, "Scraped %d sites: %d written, %d without content, %d without headlines, %d failed\n",
		len(results), sum.Written, sum.Absent, sum.Empty, sum.Failed)

	return nil
}

// previewWriter prints headlines instead of writing files.
type previewWriter struct {
	mu sync.Mutex
	w  io.Writer
}

var _ headlines.TabularWriter = (*previewWriter)(nil)

func newPreviewWriter(w io.Writer) *previewWriter {
	return &previewWriter{w: w}
}

func (p *previewWriter) WriteHeadlines(_ context.Context, path string, _ []string, rows []headlines.Headline) error {
	if len(rows) == 0 {
		return headlines.Errorf(headlines.EINVALID, "no headlines to preview for %s", path)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	_, err := fmt.Fprintf(p.w, "== %s (%d)\n%s\n", rows[0].Provider, len(rows), headlines.FormatHeadlines(rows))
	return err
}
