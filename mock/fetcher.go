package mock

import (
	"context"

	"github.com/fwojciec/headlines"
)

var _ headlines.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of headlines.PageFetcher.
type PageFetcher struct {
	FetchFn func(ctx context.Context, url string) (*headlines.Page, error)
	CloseFn func() error
}

func (f *PageFetcher) Fetch(ctx context.Context, url string) (*headlines.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *PageFetcher) Close() error {
	return f.CloseFn()
}
