package headlines

import (
	"regexp"
	"strings"
)

// DomainExtractor derives a short provider identifier from a site URL.
type DomainExtractor interface {
	// GetDomain returns the provider identifier for address.
	// An empty address is returned unchanged. An address that does not
	// look like scheme://host/ yields an empty string.
	GetDomain(address string) string
}

// domainRe captures the host between the scheme separator and the first
// path separator. The trailing slash is required.
var domainRe = regexp.MustCompile(`https?://([^/]+)/`)

// Ensure DefaultDomainExtractor implements DomainExtractor at compile time.
var _ DomainExtractor = (*DefaultDomainExtractor)(nil)

// DefaultDomainExtractor returns the second dot-separated label of the host,
// so www.bbc.com and edition.cnn.com resolve to "bbc" and "cnn".
//
// Hosts without a leading label resolve to the wrong label (x.com gives
// "com"). Single-label hosts such as localhost resolve to the whole host.
type DefaultDomainExtractor struct{}

// NewDomainExtractor creates a new DefaultDomainExtractor.
func NewDomainExtractor() *DefaultDomainExtractor {
	return &DefaultDomainExtractor{}
}

// GetDomain implements DomainExtractor.
func (e *DefaultDomainExtractor) GetDomain(address string) string {
	if address == "" {
		return address
	}

	match := domainRe.FindStringSubmatch(address)
	if match == nil {
		return ""
	}

	labels := strings.Split(match[1], ".")
	if len(labels) < 2 {
		return match[1]
	}
	return labels[1]
}
