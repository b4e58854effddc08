package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/csv"
	"github.com/fwojciec/headlines/goquery"
	headlineshttp "github.com/fwojciec/headlines/http"
	"github.com/fwojciec/headlines/scrape"
	hslog "github.com/fwojciec/headlines/slog"
	"github.com/fwojciec/headlines/yaml"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the HTTP fetcher. Set before calling Run().
	Fetcher headlines.PageFetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("headlines"),
		kong.Description("Scrape news front pages into one CSV file of headlines per site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	delimiter, err := parseDelimiter(cli.Delimiter)
	if err != nil {
		return err
	}

	sites := headlines.DefaultSites
	if cli.Sites != "" {
		sites, err = yaml.LoadSites(cli.Sites)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: a site registry lists entries with url and tag keys under sites:")
			return fmt.Errorf("failed to load site registry: %w", err)
		}
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	// Wire dependencies
	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = headlineshttp.NewFetcher(
			headlineshttp.WithTimeout(cli.Timeout),
			headlineshttp.WithUserAgent(cli.UserAgent),
		)
	}
	defer fetcher.Close()

	var writer headlines.TabularWriter = csv.NewWriter(csv.WithDelimiter(delimiter))
	if cli.Preview {
		writer = newPreviewWriter(stdout)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Sites:  sites,
		Scraper: &scrape.Scraper{
			Domains:     headlines.NewDomainExtractor(),
			Fetcher:     hslog.NewLoggingFetcher(fetcher, logger),
			Extractor:   hslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
			Writer:      hslog.NewLoggingWriter(writer, logger),
			Logger:      logger,
			OutputDir:   cli.Out,
			Concurrency: cli.Concurrency,
		},
	}

	cmd := &ScrapeCmd{Preview: cli.Preview}
	return cmd.Run(deps)
}

// parseDelimiter converts the delimiter flag into a single field separator.
func parseDelimiter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}
