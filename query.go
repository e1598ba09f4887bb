package lexdoc

import (
	"context"
	"strings"
	"time"
	"unicode"
)

// ParsedQuery is the structured intent extracted from a free-text query.
// Parsing never fails: malformed input simply yields empty fields.
type ParsedQuery struct {
	// Raw is the original query text, trimmed.
	Raw string

	// Keywords are the tokens left after category synonyms, intent flag
	// words and bare years have been consumed. Order is preserved and
	// duplicates are retained.
	Keywords []string

	// Categories holds canonical category names recognized in the query.
	Categories map[string]bool

	// DateFrom and DateTo bound the published date, inclusive.
	DateFrom *time.Time
	DateTo   *time.Time

	// WantLatest biases ranking toward freshness; WantUpdated widens the
	// category filter to the "Updated" variants. Neither is a hard filter.
	WantLatest  bool
	WantUpdated bool
}

// UpdatedCategories maps a category to its "Updated" counterpart, used to
// widen category filters when a query asks for updated/amended documents.
var UpdatedCategories = map[string]string{
	"Rules":       "Updated Rules",
	"Regulations": "Updated Regulations",
}

// ExpandCategories returns the effective category filter for q. When the
// query asks for updated documents, each category gains its "Updated"
// counterpart. Returns nil when the query named no categories, meaning
// "no category filter" rather than "match nothing".
func ExpandCategories(q ParsedQuery) []string {
	if len(q.Categories) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(q.Categories)*2)
	var cats []string
	add := func(c string) {
		if !seen[c] {
			seen[c] = true
			cats = append(cats, c)
		}
	}
	for c := range q.Categories {
		add(c)
	}
	if q.WantUpdated {
		for c := range q.Categories {
			if updated, ok := UpdatedCategories[c]; ok {
				add(updated)
			}
		}
	}
	return cats
}

// Tokenize splits text on non-word-character boundaries and lowercases
// the resulting tokens. Empty tokens are dropped.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}

// Searcher answers free-text queries with an ordered, scored document list.
type Searcher interface {
	// Search parses query, retrieves matching documents and returns the
	// topK highest-scoring ones in descending score order. An empty result
	// is not an error.
	Search(ctx context.Context, query string, topK int) ([]RankedDocument, error)
}
