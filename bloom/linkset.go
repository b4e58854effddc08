// Package bloom provides link deduplication backed by a Bloom filter.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Default sizing for a single front page.
const (
	DefaultExpectedLinks = 1000
	DefaultFalsePositive = 0.01
)

// LinkSet records links that have already been accepted.
//
// The Bloom filter answers most lookups for new links without touching the
// exact set. A positive filter answer is always confirmed against the exact
// set, so distinct links are never reported as seen.
// A LinkSet is not safe for concurrent use.
type LinkSet struct {
	filter *bloom.BloomFilter
	exact  map[string]struct{}
}

// NewLinkSet creates a LinkSet sized for n expected links with the given
// false positive rate for the filter.
func NewLinkSet(n uint, fpRate float64) *LinkSet {
	return &LinkSet{
		filter: bloom.NewWithEstimates(n, fpRate),
		exact:  make(map[string]struct{}, n),
	}
}

// Add records link and returns true if it had not been seen before.
func (s *LinkSet) Add(link string) bool {
	if s.Has(link) {
		return false
	}
	s.filter.AddString(link)
	s.exact[link] = struct{}{}
	return true
}

// Has returns true if link has been added.
func (s *LinkSet) Has(link string) bool {
	if !s.filter.TestString(link) {
		return false
	}
	_, ok := s.exact[link]
	return ok
}
