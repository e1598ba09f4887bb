package lexdoc

import "context"

// Fetcher retrieves the body of a listing page over the network.
// Any failure mode (non-2xx status, timeout, connection error) is reported
// as an error; callers treat them all as "source unavailable".
type Fetcher interface {
	// Fetch retrieves the page at url and returns its body together with
	// the final URL after any redirects, which relative links on the page
	// must be resolved against.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, finalURL string, err error)
}
