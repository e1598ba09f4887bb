package mock

import "github.com/Achintya1800/lexdoc"

var _ lexdoc.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor is a mock implementation of lexdoc.ListingExtractor.
type ListingExtractor struct {
	ExtractListingFn func(html string, baseURL string) ([]lexdoc.RawItem, error)
}

func (e *ListingExtractor) ExtractListing(html string, baseURL string) ([]lexdoc.RawItem, error) {
	return e.ExtractListingFn(html, baseURL)
}
