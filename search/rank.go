package search

import (
	"math"
	"sort"
	"time"

	"github.com/Achintya1800/lexdoc"
)

// recencyHalfLife is the age at which the recency score decays to half
// its maximum: about six months.
const recencyHalfLife = 180.0

// noDateBaseline is the recency score of a document with no published date.
const noDateBaseline = 0.1

// Relevance weights for the combined score. An explicit "latest" intent
// halves the weight given to lexical relevance in favor of freshness.
const (
	alphaDefault = 0.7
	alphaLatest  = 0.4
)

// Ranker orders candidate documents for a parsed query by a hybrid
// BM25+recency score. It is stateless per call; concurrent use is safe.
type Ranker struct {
	// Location is the reference timezone in which document age is
	// measured.
	Location *time.Location

	// Now is the clock used for recency scoring. Defaults to time.Now;
	// tests inject a fixed instant.
	Now func() time.Time
}

// NewRanker creates a Ranker measuring document age in loc.
func NewRanker(loc *time.Location) *Ranker {
	return &Ranker{Location: loc}
}

// Rank scores candidates against q and returns the topK best in
// descending score order. Ties keep the candidates' input order. An
// empty candidate set yields an empty result, never an error.
func (r *Ranker) Rank(q lexdoc.ParsedQuery, candidates []*lexdoc.Document, topK int) []lexdoc.RankedDocument {
	if len(candidates) == 0 {
		return []lexdoc.RankedDocument{}
	}

	corpus := make([][]string, len(candidates))
	for i, c := range candidates {
		corpus[i] = lexdoc.Tokenize(c.Title + " " + c.Category)
	}

	queryTokens := q.Keywords
	if len(queryTokens) == 0 {
		queryTokens = lexdoc.Tokenize(q.Raw)
	}

	relevance := normalize(newBM25(corpus).scores(queryTokens))

	alpha := alphaDefault
	if q.WantLatest {
		alpha = alphaLatest
	}

	today := r.today()
	ranked := make([]lexdoc.RankedDocument, len(candidates))
	for i, c := range candidates {
		score := alpha*relevance[i] + (1-alpha)*r.recency(today, c.PublishedDate)
		ranked[i] = lexdoc.RankedDocument{Document: *c, Score: score}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}

// today returns the current calendar date in the reference timezone,
// expressed at midnight UTC to match stored published dates.
func (r *Ranker) today() time.Time {
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}
	now = now.In(r.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// recency scores a document by the age of its published date with an
// exponential half-life decay. Documents dated in the future clamp to
// age zero; documents with no date get a fixed low baseline.
func (r *Ranker) recency(today time.Time, published *time.Time) float64 {
	if published == nil {
		return noDateBaseline
	}
	ageDays := today.Sub(*published).Hours() / 24
	if ageDays < 0 {
		ageDays = 0
	}
	return math.Exp(-ageDays / recencyHalfLife)
}

// normalize divides scores by the batch maximum so the best lexical match
// scores exactly 1.0. An all-zero batch stays all-zero.
func normalize(scores []float64) []float64 {
	var max float64
	for _, s := range scores {
		if s > max {
			max = s
		}
	}
	if max == 0 {
		return scores
	}
	out := make([]float64, len(scores))
	for i, s := range scores {
		out[i] = s / max
	}
	return out
}
