package mock

import (
	"context"

	"github.com/Achintya1800/lexdoc"
)

var _ lexdoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of lexdoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, string, error) {
	return f.FetchFn(ctx, url)
}
