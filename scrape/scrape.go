// Package scrape runs the headline pipeline over a site registry.
// For every site it resolves the provider, fetches the front page,
// extracts headlines and writes them to one file per provider.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/headlines"
	"golang.org/x/sync/errgroup"
)

// Scraper orchestrates scraping of a site registry.
type Scraper struct {
	Domains   headlines.DomainExtractor
	Fetcher   headlines.PageFetcher
	Extractor headlines.HeadlineExtractor
	Writer    headlines.TabularWriter
	Logger    *slog.Logger

	// OutputDir is the directory output files are written to.
	// Defaults to the current directory.
	OutputDir string

	// Concurrency is the number of sites processed at once.
	// Values below 2 process sites one after another in registry order.
	Concurrency int
}

// Result holds the outcome of scraping one site.
type Result struct {
	Site     headlines.Site
	Provider string
	State    State
	Count    int
	Path     string

	// ContentHash fingerprints the fetched page content.
	ContentHash string

	// Err is set for StatePageAbsent and StateFailed.
	Err error
}

// Summary counts results by terminal state.
type Summary struct {
	Written int
	Absent  int
	Empty   int
	Failed  int
}

// ProgressFunc is called once per site as soon as it reaches a terminal state.
type ProgressFunc func(Result)

// Run scrapes every site and returns one result per site in registry order.
//
// An invalid registry aborts the run before any site is fetched. All other
// failures are confined to the site they happen on and reported in its
// Result; they never stop the remaining sites.
func (s *Scraper) Run(ctx context.Context, sites []headlines.Site, progress ProgressFunc) ([]Result, error) {
	if err := headlines.ValidateSites(sites); err != nil {
		return nil, err
	}

	results := make([]Result, len(sites))

	concurrency := s.Concurrency
	if concurrency < 2 {
		for i, site := range sites {
			results[i] = s.ScrapeSite(ctx, site)
			if progress != nil {
				progress(results[i])
			}
		}
		return results, nil
	}

	// Tasks never return errors so one site cannot cancel its siblings.
	var g errgroup.Group
	g.SetLimit(concurrency)

	done := make(chan int, len(sites))
	for i, site := range sites {
		g.Go(func() error {
			results[i] = s.ScrapeSite(ctx, site)
			done <- i
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(done)
	}()

	for i := range done {
		if progress != nil {
			progress(results[i])
		}
	}

	return results, nil
}

// ScrapeSite runs the pipeline for a single site.
func (s *Scraper) ScrapeSite(ctx context.Context, site headlines.Site) (result Result) {
	result = Result{Site: site, State: StateStart}

	defer func() {
		if r := recover(); r != nil {
			result.State = StateFailed
			result.Err = headlines.Errorf(headlines.EINTERNAL, "panic scraping %s: %v", site.URL, r)
			s.logger().Error("site failed", "url", site.URL, "err", result.Err)
		}
	}()

	result.Provider = s.Domains.GetDomain(site.URL)
	result.State = StateDomainResolved
	if result.Provider == "" {
		s.logger().Warn("unresolved provider", "url", site.URL)
	}

	page, err := s.Fetcher.Fetch(ctx, site.URL)
	if err != nil || page == nil {
		result.State = StatePageAbsent
		result.Err = err
		s.logger().Info(fmt.Sprintf("no content for provider %s", result.Provider),
			"url", site.URL,
			"err", err,
		)
		return result
	}
	result.State = StatePageFetched
	result.ContentHash = computeHash(page.Content)

	hs, err := s.Extractor.ExtractHeadlines(site.URL, result.Provider, page, site.HeadlineTag)
	if err != nil {
		result.State = StateFailed
		result.Err = fmt.Errorf("extract headlines: %w", err)
		s.logger().Error("site failed", "provider", result.Provider, "err", result.Err)
		return result
	}
	result.Count = len(hs)

	if len(hs) == 0 {
		result.State = StateHeadlinesEmpty
		s.logger().Info("no headlines", "provider", result.Provider)
		return result
	}
	result.State = StateHeadlinesExtracted

	result.Path = s.outputPath(result.Provider)
	if err := s.Writer.WriteHeadlines(ctx, result.Path, hs[0].Fields(), hs); err != nil {
		result.State = StateFailed
		result.Err = fmt.Errorf("write headlines: %w", err)
		s.logger().Error("site failed", "provider", result.Provider, "err", result.Err)
		return result
	}
	result.State = StateWritten
	s.logger().Info("headlines written",
		"provider", result.Provider,
		"count", result.Count,
		"path", result.Path,
		"hash", result.ContentHash,
	)

	return result
}

func (s *Scraper) outputPath(provider string) string {
	name := headlines.OutputFilename(provider)
	if s.OutputDir == "" {
		return "./" + name
	}
	return filepath.Join(s.OutputDir, name)
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// Summarize counts results by terminal state.
func Summarize(results []Result) Summary {
	var sum Summary
	for _, r := range results {
		switch r.State {
		case StateWritten:
			sum.Written++
		case StatePageAbsent:
			sum.Absent++
		case StateHeadlinesEmpty:
			sum.Empty++
		case StateFailed:
			sum.Failed++
		}
	}
	return sum
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(content))
}
