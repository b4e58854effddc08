// Package http provides an HTTP-based implementation of headlines.PageFetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/headlines"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultEncodingName names DefaultEncoding in headlines.Page.Encoding.
const DefaultEncodingName = "ISO-8859-1"

// DefaultEncoding is used to decode every page body regardless of the
// charset the server declares. Non-Latin text comes out garbled.
var DefaultEncoding encoding.Encoding = charmap.ISO8859_1

// Ensure Fetcher implements headlines.PageFetcher at compile time.
var _ headlines.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves front pages with a single GET request.
// Only a 200 response counts as success.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	encoding     encoding.Encoding
	encodingName string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithEncoding sets the fixed encoding used to decode page bodies.
func WithEncoding(name string, enc encoding.Encoding) Option {
	return func(f *Fetcher) {
		f.encodingName = name
		f.encoding = enc
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient replaces the underlying HTTP client.
// The client's own timeout takes precedence over WithTimeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		encoding:     DefaultEncoding,
		encodingName: DefaultEncodingName,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the page at url and decodes its body.
// Transport failures and non-200 responses return an EUNAVAILABLE error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*headlines.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, headlines.Errorf(headlines.EINVALID, "invalid request for %s: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, headlines.Errorf(headlines.EUNAVAILABLE, "%s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, headlines.Errorf(headlines.EUNAVAILABLE, "%s status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(transform.NewReader(resp.Body, f.encoding.NewDecoder()))
	if err != nil {
		return nil, headlines.Errorf(headlines.EUNAVAILABLE, "%s: reading body: %v", url, err)
	}

	return &headlines.Page{
		URL:      url,
		Content:  body,
		Encoding: f.encodingName,
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
