package lexdoc

import "context"

// Answer is a composed natural-language answer together with the ranked
// documents it was grounded on.
type Answer struct {
	Content    string           `json:"content"`
	SourceSite string           `json:"source_site"`
	Documents  []RankedDocument `json:"documents"`
}

// Answerer composes natural-language answers over ranked search results.
type Answerer interface {
	// Answer runs a ranked search for query and composes an answer from
	// the topK results.
	Answer(ctx context.Context, query string, topK int) (*Answer, error)
}
