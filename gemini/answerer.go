// Package gemini implements lexdoc.Answerer using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/Achintya1800/lexdoc"
)

const model = "gemini-2.5-flash"

// DefaultTopK is how many ranked documents an answer is grounded on when
// the caller does not say otherwise.
const DefaultTopK = 6

// SourceSite is the site every answer is attributed to.
const SourceSite = "UIDAI (uidai.gov.in)"

// Ensure Answerer implements lexdoc.Answerer at compile time.
var _ lexdoc.Answerer = (*Answerer)(nil)

// Answerer composes natural-language answers over ranked search results
// using Google Gemini.
type Answerer struct {
	client   *genai.Client
	searcher lexdoc.Searcher
	loc      *time.Location
}

// NewAnswerer creates a new Answerer. The location is used to stamp the
// current date into the prompt.
func NewAnswerer(client *genai.Client, searcher lexdoc.Searcher, loc *time.Location) *Answerer {
	return &Answerer{client: client, searcher: searcher, loc: loc}
}

// Answer runs a ranked search for query and asks the model to compose a
// short grounded answer from the results.
func (a *Answerer) Answer(ctx context.Context, query string, topK int) (*lexdoc.Answer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "query required")
	}
	if topK < 1 {
		topK = DefaultTopK
	}

	results, err := a.searcher.Search(ctx, query, topK)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, lexdoc.Errorf(lexdoc.ENOTFOUND, "no documents match query %q", query)
	}

	today := time.Now().In(a.loc).Format("2006-01-02")
	prompt := BuildUserPrompt(query, results, today)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, lexdoc.Errorf(lexdoc.EINTERNAL, "gemini returned nil result")
	}

	return &lexdoc.Answer{
		Content:    result.Text(),
		SourceSite: SourceSite,
		Documents:  results,
	}, nil
}

// systemInstruction constrains the model to the supplied document list
// and pins the output format.
const systemInstruction = "You are a precise assistant for a legal-information service focused on UIDAI. " +
	"Answer concisely (2-5 sentences) using only the provided document list. " +
	"If the context is insufficient, say so and point the user to the listed documents. " +
	"Do not hallucinate dates or titles. The current timezone is Asia/Kolkata.\n\n" +
	"Always reply in exactly this format:\n\n" +
	"## Response\n" +
	"<your 2-5 sentence answer>\n\n" +
	"## Most Relevant Documents\n" +
	"<the ranked document list, reproduced verbatim>\n\n" +
	"## Information Source Website\n" +
	SourceSite + "\n"

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the query and the
// ranked document list.
func BuildUserPrompt(query string, results []lexdoc.RankedDocument, today string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Date (IST): %s\n", today)
	fmt.Fprintf(&sb, "User query: %s\n\n", query)
	sb.WriteString("Documents (ranked):\n")
	sb.WriteString(lexdoc.FormatResults(results))
	sb.WriteString("\nWrite a 2-5 sentence Response that addresses the query, citing document titles in natural language where helpful. Then reproduce the exact three-section format as specified.")
	return sb.String()
}
