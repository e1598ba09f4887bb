package lexdoc

import "context"

// ScrapeResult summarizes one full ingestion run.
type ScrapeResult struct {
	// Inserted counts newly created documents; updates to existing
	// documents are not counted.
	Inserted int `json:"inserted"`

	// Attempted and Succeeded count sources; a run where every source
	// failed is reported as an error, not a zero result.
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
}

// Scraper runs one full ingestion pass over the configured sources.
type Scraper interface {
	// Scrape fetches every configured source in order, extracts and
	// persists its items, and reports the run totals. Individual source
	// failures are skipped; Scrape returns EUNAVAILABLE only when no
	// source could be fetched at all.
	Scrape(ctx context.Context) (*ScrapeResult, error)
}
