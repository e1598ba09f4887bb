// Package crawl provides ingestion orchestration: it drives one polite,
// sequential scrape pass over the configured listing sources, extracts
// their items and persists them through the document store.
package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/Achintya1800/lexdoc"
)

// Compile-time interface verification.
var _ lexdoc.Scraper = (*Pipeline)(nil)

// Pipeline orchestrates one ingestion run. Sources are fetched strictly
// in order with a politeness delay between requests; no parallel fetches
// are issued against the site. A failing source is logged and skipped so
// the remaining sources still run.
type Pipeline struct {
	Fetcher   lexdoc.Fetcher
	Extractor lexdoc.ListingExtractor
	Documents lexdoc.DocumentService

	// Sources defaults to lexdoc.DefaultSources when nil.
	Sources []lexdoc.Source

	// Limiter paces requests against the source site. Optional.
	Limiter *rate.Limiter

	// RetryDelays overrides the per-fetch backoff schedule. Optional.
	RetryDelays []time.Duration

	// Log receives progress messages. Optional.
	Log LogFunc
}

// NewPipeline creates a Pipeline with the default sources and a
// politeness delay between fetches.
func NewPipeline(fetcher lexdoc.Fetcher, extractor lexdoc.ListingExtractor, docs lexdoc.DocumentService, delay time.Duration) *Pipeline {
	return &Pipeline{
		Fetcher:   fetcher,
		Extractor: extractor,
		Documents: docs,
		Limiter:   rate.NewLimiter(rate.Every(delay), 1),
	}
}

// Scrape runs one full pass over the sources and returns the run totals.
// It returns an error only when the persistence layer fails or when every
// source was unavailable; a partial run is a success with Succeeded <
// Attempted.
func (p *Pipeline) Scrape(ctx context.Context) (*lexdoc.ScrapeResult, error) {
	sources := p.Sources
	if sources == nil {
		sources = lexdoc.DefaultSources()
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	result := &lexdoc.ScrapeResult{}

	for _, src := range sources {
		result.Attempted++

		if p.Limiter != nil {
			if err := p.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		p.logf("fetching %s", src.URL)
		body, finalURL, err := FetchWithRetryDelays(ctx, src.URL, p.Fetcher.Fetch, p.Log, delays)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			p.logf("skipping %s: %v", src.URL, err)
			continue
		}

		items, err := p.Extractor.ExtractListing(body, finalURL)
		if err != nil {
			p.logf("skipping %s: %v", src.URL, err)
			continue
		}

		for i := range items {
			items[i].PageURL = src.URL
			items[i].Category = src.Category
		}

		inserted, err := p.Documents.UpsertDocuments(ctx, items)
		if err != nil {
			return nil, err
		}

		p.logf("upserted %d of %d items from %s", inserted, len(items), src.URL)
		result.Succeeded++
		result.Inserted += inserted
	}

	if result.Attempted > 0 && result.Succeeded == 0 {
		return nil, lexdoc.Errorf(lexdoc.EUNAVAILABLE,
			"all sources unavailable: %d attempted, 0 succeeded", result.Attempted)
	}

	p.logf("scrape complete: %d inserted, %d/%d sources succeeded",
		result.Inserted, result.Succeeded, result.Attempted)
	return result, nil
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.Log != nil {
		p.Log(format, args...)
	}
}
