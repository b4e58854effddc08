package headlines

import "context"

// Page is the raw front page content of a site.
type Page struct {
	URL string

	// Content holds the page body after decoding with Encoding.
	Content []byte

	// Encoding names the text encoding the body was interpreted with.
	Encoding string
}

// HTML returns the page content as a string.
// A nil page returns an empty string.
func (p *Page) HTML() string {
	if p == nil {
		return ""
	}
	return string(p.Content)
}

// PageFetcher retrieves the front page of a site.
type PageFetcher interface {
	// Fetch performs a single request for url and returns its content.
	// Any non-success outcome is returned as an error; callers treat it
	// as the page being absent, never as a fatal condition.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases fetcher resources.
	Close() error
}
