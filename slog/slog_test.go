package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/mock"
	hslog "github.com/fwojciec/headlines/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageFetcher{
			FetchFn: func(ctx context.Context, url string) (*headlines.Page, error) {
				return &headlines.Page{URL: url, Content: []byte("<html>content</html>")}, nil
			},
		}

		fetcher := hslog.NewLoggingFetcher(inner, logger)
		page, err := fetcher.Fetch(context.Background(), "https://www.bbc.com/")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", page.HTML())
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://www.bbc.com/")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageFetcher{
			FetchFn: func(ctx context.Context, url string) (*headlines.Page, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := hslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://www.bbc.com/")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeCalled := false
		inner := &mock.PageFetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := hslog.NewLoggingFetcher(inner, logger)
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}

func TestLoggingExtractor_ExtractHeadlines(t *testing.T) {
	t.Parallel()

	t.Run("logs count at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.HeadlineExtractor{
			ExtractHeadlinesFn: func(baseURL, provider string, page *headlines.Page, tag string) ([]headlines.Headline, error) {
				return []headlines.Headline{{Provider: provider, Title: "T", Link: baseURL + "t"}}, nil
			},
		}

		e := hslog.NewLoggingExtractor(inner, logger)
		hs, err := e.ExtractHeadlines("https://www.bbc.com/", "bbc", &headlines.Page{}, "h2")

		require.NoError(t, err)
		assert.Len(t, hs, 1)
		output := buf.String()
		assert.Contains(t, output, "extract headlines")
		assert.Contains(t, output, "provider=bbc")
		assert.Contains(t, output, "tag=h2")
		assert.Contains(t, output, "count=1")
	})

	t.Run("stays quiet at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.HeadlineExtractor{
			ExtractHeadlinesFn: func(baseURL, provider string, page *headlines.Page, tag string) ([]headlines.Headline, error) {
				return nil, nil
			},
		}

		e := hslog.NewLoggingExtractor(inner, logger)
		_, err := e.ExtractHeadlines("https://www.bbc.com/", "bbc", nil, "h2")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingWriter_WriteHeadlines(t *testing.T) {
	t.Parallel()

	t.Run("logs path and row count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TabularWriter{
			WriteHeadlinesFn: func(ctx context.Context, path string, headers []string, rows []headlines.Headline) error {
				return nil
			},
		}

		rows := []headlines.Headline{
			{Provider: "bbc", Title: "A", Link: "https://www.bbc.com/a"},
			{Provider: "bbc", Title: "B", Link: "https://www.bbc.com/b"},
		}
		w := hslog.NewLoggingWriter(inner, logger)
		err := w.WriteHeadlines(context.Background(), "bbc_news.csv", rows[0].Fields(), rows)

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "write")
		assert.Contains(t, output, "path=bbc_news.csv")
		assert.Contains(t, output, "rows=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TabularWriter{
			WriteHeadlinesFn: func(ctx context.Context, path string, headers []string, rows []headlines.Headline) error {
				return errors.New("disk full")
			},
		}

		w := hslog.NewLoggingWriter(inner, logger)
		err := w.WriteHeadlines(context.Background(), "bbc_news.csv", nil, nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}
