package lexdoc

// ListingExtractor turns one fetched HTML page into structured listing
// items. Implementations are schema-agnostic: the source markup is not
// assumed to follow a single layout, and extraction never fails on
// malformed HTML. Elements that cannot be confidently classified are
// silently skipped.
type ListingExtractor interface {
	// ExtractListing parses html and returns the items found, with URLs
	// resolved to absolute form against baseURL. No two returned items
	// share the same (Title, DocURL) pair. PageURL and Category are left
	// for the caller to stamp from the source being crawled.
	ExtractListing(html string, baseURL string) ([]RawItem, error)
}
