package search

import "math"

// Okapi BM25 parameters, matching the conventional defaults.
const (
	bm25K1      = 1.5
	bm25B       = 0.75
	bm25Epsilon = 0.25
)

// bm25 is a per-query lexical index over a candidate corpus. Candidates
// are few enough (thousands at most) that rebuilding the index on every
// query is cheaper than maintaining one incrementally.
type bm25 struct {
	freqs  []map[string]int
	docLen []int
	avgdl  float64
	idf    map[string]float64
}

// newBM25 indexes a corpus of tokenized documents.
func newBM25(corpus [][]string) *bm25 {
	m := &bm25{
		freqs:  make([]map[string]int, len(corpus)),
		docLen: make([]int, len(corpus)),
		idf:    make(map[string]float64),
	}

	docCount := make(map[string]int)
	total := 0
	for i, tokens := range corpus {
		freq := make(map[string]int, len(tokens))
		for _, t := range tokens {
			freq[t]++
		}
		for t := range freq {
			docCount[t]++
		}
		m.freqs[i] = freq
		m.docLen[i] = len(tokens)
		total += len(tokens)
	}
	if len(corpus) > 0 {
		m.avgdl = float64(total) / float64(len(corpus))
	}

	// Standard Okapi IDF goes negative for terms present in more than
	// half the corpus (common here: category tokens appear on most rows).
	// Those are floored to a small positive fraction of the average IDF
	// so frequent terms still contribute, just weakly.
	n := float64(len(corpus))
	var idfSum float64
	var negative []string
	for t, df := range docCount {
		idf := math.Log(n-float64(df)+0.5) - math.Log(float64(df)+0.5)
		m.idf[t] = idf
		idfSum += idf
		if idf < 0 {
			negative = append(negative, t)
		}
	}
	// The floor is taken from the magnitude of the average IDF so it stays
	// positive even in tiny corpora where most terms are common and the
	// average itself dips below zero. Scores then never go negative, which
	// max-normalization downstream relies on.
	if len(m.idf) > 0 {
		floor := bm25Epsilon * math.Abs(idfSum/float64(len(m.idf)))
		for _, t := range negative {
			m.idf[t] = floor
		}
	}

	return m
}

// scores returns the raw, unbounded BM25 score of every indexed document
// against the query tokens, in corpus order.
func (m *bm25) scores(query []string) []float64 {
	scores := make([]float64, len(m.freqs))
	for _, t := range query {
		idf, ok := m.idf[t]
		if !ok {
			continue
		}
		for i, freq := range m.freqs {
			f := float64(freq[t])
			if f == 0 {
				continue
			}
			norm := 1 - bm25B + bm25B*float64(m.docLen[i])/m.avgdl
			scores[i] += idf * f * (bm25K1 + 1) / (f + bm25K1*norm)
		}
	}
	return scores
}
