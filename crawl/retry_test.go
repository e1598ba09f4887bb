package crawl_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Achintya1800/lexdoc/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	// Zero-length delays run immediately in tests.
	noDelays := []time.Duration{0, 0, 0}

	t.Run("returns first success without retrying", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, string, error) {
			calls++
			return "body", url, nil
		}

		body, finalURL, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)
		require.NoError(t, err)
		assert.Equal(t, "body", body)
		assert.Equal(t, "https://example.com", finalURL)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, string, error) {
			calls++
			if calls < 3 {
				return "", "", errors.New("HTTP 503")
			}
			return "body", url, nil
		}

		body, _, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)
		require.NoError(t, err)
		assert.Equal(t, "body", body)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error when all attempts fail", func(t *testing.T) {
		t.Parallel()

		fetch := func(ctx context.Context, url string) (string, string, error) {
			return "", "", errors.New("connection refused")
		}

		_, _, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)
		require.Error(t, err)
		assert.Equal(t, "connection refused", err.Error())
	})

	t.Run("logs each retry attempt", func(t *testing.T) {
		t.Parallel()

		fetch := func(ctx context.Context, url string) (string, string, error) {
			return "", "", errors.New("HTTP 503")
		}

		var logged int
		logger := func(format string, args ...any) { logged++ }

		_, _, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, logger, noDelays)
		require.Error(t, err)
		assert.Equal(t, 3, logged, "one log line per retry, not per attempt")
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, string, error) {
			cancel()
			return "", "", errors.New("HTTP 503")
		}

		_, _, err := crawl.FetchWithRetryDelays(ctx, "https://example.com", fetch, nil, []time.Duration{time.Hour})
		require.ErrorIs(t, err, context.Canceled)
	})
}
