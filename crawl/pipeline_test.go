package crawl_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Achintya1800/lexdoc"
	"github.com/Achintya1800/lexdoc/crawl"
	"github.com/Achintya1800/lexdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSources() []lexdoc.Source {
	return []lexdoc.Source{
		{URL: "https://example.com/rules.html", Category: "Rules"},
		{URL: "https://example.com/circulars.html", Category: "Circulars"},
	}
}

func itemFor(url string) lexdoc.RawItem {
	return lexdoc.RawItem{
		Title:  "Document on " + url,
		DocURL: url + "#doc",
	}
}

func TestPipeline_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("fetches sources in order and stamps source metadata", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, string, error) {
				fetched = append(fetched, url)
				return "<html></html>", url, nil
			},
		}
		extractor := &mock.ListingExtractor{
			ExtractListingFn: func(html, baseURL string) ([]lexdoc.RawItem, error) {
				return []lexdoc.RawItem{itemFor(baseURL)}, nil
			},
		}
		var upserted []lexdoc.RawItem
		docs := &mock.DocumentService{
			UpsertDocumentsFn: func(ctx context.Context, items []lexdoc.RawItem) (int, error) {
				upserted = append(upserted, items...)
				return len(items), nil
			},
		}

		p := &crawl.Pipeline{
			Fetcher:     fetcher,
			Extractor:   extractor,
			Documents:   docs,
			Sources:     testSources(),
			RetryDelays: []time.Duration{},
		}

		result, err := p.Scrape(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []string{
			"https://example.com/rules.html",
			"https://example.com/circulars.html",
		}, fetched)

		assert.Equal(t, 2, result.Inserted)
		assert.Equal(t, 2, result.Attempted)
		assert.Equal(t, 2, result.Succeeded)

		require.Len(t, upserted, 2)
		assert.Equal(t, "https://example.com/rules.html", upserted[0].PageURL)
		assert.Equal(t, "Rules", upserted[0].Category)
		assert.Equal(t, "Circulars", upserted[1].Category)
	})

	t.Run("a failing source is skipped, not fatal", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, string, error) {
				if strings.Contains(url, "rules") {
					return "", "", errors.New("HTTP 503")
				}
				return "<html></html>", url, nil
			},
		}
		extractor := &mock.ListingExtractor{
			ExtractListingFn: func(html, baseURL string) ([]lexdoc.RawItem, error) {
				return []lexdoc.RawItem{itemFor(baseURL)}, nil
			},
		}
		docs := &mock.DocumentService{
			UpsertDocumentsFn: func(ctx context.Context, items []lexdoc.RawItem) (int, error) {
				return len(items), nil
			},
		}

		var logs []string
		p := &crawl.Pipeline{
			Fetcher:     fetcher,
			Extractor:   extractor,
			Documents:   docs,
			Sources:     testSources(),
			RetryDelays: []time.Duration{},
			Log:         func(format string, args ...any) { logs = append(logs, fmt.Sprintf(format, args...)) },
		}

		result, err := p.Scrape(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, result.Inserted)
		assert.Equal(t, 2, result.Attempted)
		assert.Equal(t, 1, result.Succeeded)
		assert.Contains(t, strings.Join(logs, "\n"), "skipping https://example.com/rules.html")
	})

	t.Run("all sources failing is a run-level error", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, string, error) {
				return "", "", errors.New("connection refused")
			},
		}

		p := &crawl.Pipeline{
			Fetcher:     fetcher,
			Extractor:   &mock.ListingExtractor{},
			Documents:   &mock.DocumentService{},
			Sources:     testSources(),
			RetryDelays: []time.Duration{},
		}

		_, err := p.Scrape(context.Background())
		require.Error(t, err)
		assert.Equal(t, lexdoc.EUNAVAILABLE, lexdoc.ErrorCode(err))
		assert.Contains(t, lexdoc.ErrorMessage(err), "2 attempted")
	})

	t.Run("store failure aborts the run", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, string, error) {
				return "<html></html>", url, nil
			},
		}
		extractor := &mock.ListingExtractor{
			ExtractListingFn: func(html, baseURL string) ([]lexdoc.RawItem, error) {
				return []lexdoc.RawItem{itemFor(baseURL)}, nil
			},
		}
		docs := &mock.DocumentService{
			UpsertDocumentsFn: func(ctx context.Context, items []lexdoc.RawItem) (int, error) {
				return 0, errors.New("database is locked")
			},
		}

		p := &crawl.Pipeline{
			Fetcher:     fetcher,
			Extractor:   extractor,
			Documents:   docs,
			Sources:     testSources(),
			RetryDelays: []time.Duration{},
		}

		_, err := p.Scrape(context.Background())
		require.Error(t, err)
	})

	t.Run("canceled context stops the run", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, string, error) {
				cancel()
				return "", "", ctx.Err()
			},
		}

		p := &crawl.Pipeline{
			Fetcher:     fetcher,
			Extractor:   &mock.ListingExtractor{},
			Documents:   &mock.DocumentService{},
			Sources:     testSources(),
			RetryDelays: []time.Duration{},
		}

		_, err := p.Scrape(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("uses default sources when none configured", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, string, error) {
				fetched = append(fetched, url)
				return "<html></html>", url, nil
			},
		}
		extractor := &mock.ListingExtractor{
			ExtractListingFn: func(html, baseURL string) ([]lexdoc.RawItem, error) {
				return nil, nil
			},
		}
		docs := &mock.DocumentService{
			UpsertDocumentsFn: func(ctx context.Context, items []lexdoc.RawItem) (int, error) {
				return 0, nil
			},
		}

		p := &crawl.Pipeline{
			Fetcher:     fetcher,
			Extractor:   extractor,
			Documents:   docs,
			RetryDelays: []time.Duration{},
		}

		result, err := p.Scrape(context.Background())
		require.NoError(t, err)
		assert.Equal(t, len(lexdoc.DefaultSources()), result.Attempted)
		assert.Equal(t, lexdoc.RulesURL, fetched[2])
	})
}
