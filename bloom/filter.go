// Package bloom provides a probabilistic filter over already-saved URLs.
// The save command consults it before a network round-trip so probable
// duplicates get a warning up front; the server's conflict response stays
// the authority.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// SeenURLs wraps a Bloom filter over cached article URLs.
type SeenURLs struct {
	f *bloom.BloomFilter
}

// NewSeenURLs creates a filter sized for n expected URLs with the given
// false positive rate.
func NewSeenURLs(n uint, fpRate float64) *SeenURLs {
	return &SeenURLs{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// FromURLs builds a filter pre-seeded with the given URLs.
func FromURLs(urls []string) *SeenURLs {
	n := uint(len(urls))
	if n < 64 {
		n = 64
	}
	s := NewSeenURLs(n, 0.01)
	for _, u := range urls {
		s.Add(u)
	}
	return s
}

// Add records a URL as saved.
func (s *SeenURLs) Add(url string) {
	s.f.AddString(url)
}

// Seen returns true if the URL was probably saved before.
// False positives are possible; false negatives are not.
func (s *SeenURLs) Seen(url string) bool {
	return s.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (s *SeenURLs) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}
