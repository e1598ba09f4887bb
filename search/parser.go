// Package search implements free-text retrieval over stored documents:
// query intent parsing, BM25 lexical scoring and hybrid relevance+recency
// ranking.
package search

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/Achintya1800/lexdoc"
)

// categorySynonyms maps query tokens onto canonical category names.
var categorySynonyms = map[string]string{
	"rule":          "Rules",
	"rules":         "Rules",
	"regulation":    "Regulations",
	"regulations":   "Regulations",
	"notification":  "Notifications",
	"notifications": "Notifications",
	"circular":      "Circulars",
	"circulars":     "Circulars",
}

var (
	latestTokens  = map[string]bool{"latest": true, "newest": true, "recent": true}
	updatedTokens = map[string]bool{"updated": true, "amended": true, "revision": true, "revised": true}
)

// dateTokenRE matches a date-like token optionally preceded by an operator
// word: a dd/mm/yyyy form, a bare 4-digit year, or a "month year" form.
var dateTokenRE = regexp.MustCompile(
	`(?:\b(?P<op>after|since|from|before|until|till|in)\s+)?(?P<val>(?:\b\d{1,2}[\-/]\d{1,2}[\-/]\d{2,4}\b)|(?:\b\d{4}\b)|(?:\b[a-z]+\s+\d{4}\b))`)

var (
	yearRE      = regexp.MustCompile(`^\d{4}$`)
	monthYearRE = regexp.MustCompile(`^([a-z]+)\s+(\d{4})$`)
)

// BareDatePolicy controls how a date token with no operator word is
// interpreted. The original behavior treats it as a lower bound ("since"),
// which is a debatable default, so it is configuration rather than
// hard-wired.
type BareDatePolicy int

const (
	// BareDateSince treats a standalone date as dateFrom.
	BareDateSince BareDatePolicy = iota
	// BareDateExact treats a standalone date as an exact-day window.
	BareDateExact
	// BareDateIgnore discards standalone dates.
	BareDateIgnore
)

// Parser extracts structured intent from free-text queries.
// The zero value is ready to use with the default bare-date policy.
type Parser struct {
	BareDate BareDatePolicy
}

// Parse extracts categories, intent flags, a date window and residual
// keywords from q. It never fails: malformed input yields a ParsedQuery
// with empty fields and retrieval proceeds on whatever was extracted.
func (p *Parser) Parse(q string) lexdoc.ParsedQuery {
	raw := strings.TrimSpace(q)
	lowered := strings.ToLower(raw)
	tokens := lexdoc.Tokenize(lowered)

	parsed := lexdoc.ParsedQuery{
		Raw:        raw,
		Categories: make(map[string]bool),
	}

	for _, t := range tokens {
		if c, ok := categorySynonyms[t]; ok {
			parsed.Categories[c] = true
		}
		if latestTokens[t] {
			parsed.WantLatest = true
		}
		if updatedTokens[t] {
			parsed.WantUpdated = true
		}
	}

	for _, m := range dateTokenRE.FindAllStringSubmatch(lowered, -1) {
		op, val := m[1], m[2]
		p.applyDateToken(&parsed, op, val)
	}

	parsed.Keywords = make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := categorySynonyms[t]; ok {
			continue
		}
		if latestTokens[t] || updatedTokens[t] || yearRE.MatchString(t) {
			continue
		}
		parsed.Keywords = append(parsed.Keywords, t)
	}

	return parsed
}

// applyDateToken folds one matched date token into the query's date window.
func (p *Parser) applyDateToken(parsed *lexdoc.ParsedQuery, op, val string) {
	if yearRE.MatchString(val) {
		year, _ := time.Parse("2006", val)
		from := time.Date(year.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		if op == "in" {
			to := time.Date(year.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
			parsed.DateFrom = &from
			parsed.DateTo = &to
			return
		}
		p.applyDate(parsed, op, from)
		return
	}

	d, ok := parseDateValue(val)
	if !ok {
		return
	}
	p.applyDate(parsed, op, d)
}

func (p *Parser) applyDate(parsed *lexdoc.ParsedQuery, op string, d time.Time) {
	switch op {
	case "after", "since", "from":
		parsed.DateFrom = &d
	case "before", "until", "till":
		parsed.DateTo = &d
	case "in":
		parsed.DateFrom = &d
		parsed.DateTo = &d
	default:
		switch p.BareDate {
		case BareDateSince:
			parsed.DateFrom = &d
		case BareDateExact:
			parsed.DateFrom = &d
			parsed.DateTo = &d
		case BareDateIgnore:
		}
	}
}

// parseDateValue parses a non-year date token to a calendar date at
// midnight UTC. Day-first forms are preferred for numeric dates.
func parseDateValue(val string) (time.Time, bool) {
	if m := monthYearRE.FindStringSubmatch(val); m != nil {
		month := strings.ToUpper(m[1][:1]) + m[1][1:]
		for _, layout := range []string{"January 2006", "Jan 2006"} {
			if t, err := time.Parse(layout, month+" "+m[2]); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}

	t, err := dateparse.ParseIn(val, time.UTC,
		dateparse.PreferMonthFirst(false),
		dateparse.RetryAmbiguousDateWithSwap(true),
	)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}
