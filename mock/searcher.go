package mock

import (
	"context"

	"github.com/Achintya1800/lexdoc"
)

var _ lexdoc.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of lexdoc.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, topK int) ([]lexdoc.RankedDocument, error)
}

func (s *Searcher) Search(ctx context.Context, query string, topK int) ([]lexdoc.RankedDocument, error) {
	return s.SearchFn(ctx, query, topK)
}

var _ lexdoc.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of lexdoc.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context) (*lexdoc.ScrapeResult, error)
}

func (s *Scraper) Scrape(ctx context.Context) (*lexdoc.ScrapeResult, error) {
	return s.ScrapeFn(ctx)
}

var _ lexdoc.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of lexdoc.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, query string, topK int) (*lexdoc.Answer, error)
}

func (a *Answerer) Answer(ctx context.Context, query string, topK int) (*lexdoc.Answer, error) {
	return a.AnswerFn(ctx, query, topK)
}
