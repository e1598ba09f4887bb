package search

import (
	"context"
	"time"

	"github.com/Achintya1800/lexdoc"
)

// Compile-time interface verification.
var _ lexdoc.Searcher = (*Engine)(nil)

// Engine composes the query path: parse intent, widen the category
// filter, load candidates from the store, rank. It holds no per-query
// state; concurrent searches need no coordination beyond the store's
// read consistency.
type Engine struct {
	Documents lexdoc.DocumentService
	Parser    *Parser
	Ranker    *Ranker
}

// NewEngine creates an Engine over docs, measuring recency in loc.
func NewEngine(docs lexdoc.DocumentService, loc *time.Location) *Engine {
	return &Engine{
		Documents: docs,
		Parser:    &Parser{},
		Ranker:    NewRanker(loc),
	}
}

// Search parses query, retrieves category- and date-filtered candidates
// and returns the topK highest-scoring documents.
func (e *Engine) Search(ctx context.Context, query string, topK int) ([]lexdoc.RankedDocument, error) {
	q := e.Parser.Parse(query)

	candidates, err := e.Documents.FindDocuments(ctx, lexdoc.DocumentFilter{
		Categories: lexdoc.ExpandCategories(q),
		DateFrom:   q.DateFrom,
		DateTo:     q.DateTo,
	})
	if err != nil {
		return nil, err
	}

	return e.Ranker.Rank(q, candidates, topK), nil
}
