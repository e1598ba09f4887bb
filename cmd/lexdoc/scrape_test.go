package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/Achintya1800/lexdoc"
	main "github.com/Achintya1800/lexdoc/cmd/lexdoc"
	"github.com/Achintya1800/lexdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints run totals", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(ctx context.Context) (*lexdoc.ScrapeResult, error) {
				return &lexdoc.ScrapeResult{Inserted: 42, Attempted: 8, Succeeded: 8}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: scraper,
		}

		cmd := &main.ScrapeCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Scraped 8/8 sources, 42 new documents")
	})

	t.Run("reports error when all sources fail", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(ctx context.Context) (*lexdoc.ScrapeResult, error) {
				return nil, lexdoc.Errorf(lexdoc.EUNAVAILABLE, "all sources unavailable: 8 attempted, 0 succeeded")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Scraper: scraper,
		}

		cmd := &main.ScrapeCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "all sources unavailable")
		assert.Empty(t, stdout.String())
	})
}
