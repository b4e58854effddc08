package mock

import "github.com/fwojciec/headlines"

var _ headlines.HeadlineExtractor = (*HeadlineExtractor)(nil)

// HeadlineExtractor is a mock implementation of headlines.HeadlineExtractor.
type HeadlineExtractor struct {
	ExtractHeadlinesFn func(baseURL, provider string, page *headlines.Page, tag string) ([]headlines.Headline, error)
}

func (e *HeadlineExtractor) ExtractHeadlines(baseURL, provider string, page *headlines.Page, tag string) ([]headlines.Headline, error) {
	return e.ExtractHeadlinesFn(baseURL, provider, page, tag)
}

var _ headlines.DomainExtractor = (*DomainExtractor)(nil)

// DomainExtractor is a mock implementation of headlines.DomainExtractor.
type DomainExtractor struct {
	GetDomainFn func(address string) string
}

func (e *DomainExtractor) GetDomain(address string) string {
	return e.GetDomainFn(address)
}
