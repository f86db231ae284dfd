// Package profile defines how a user's profile and transactions are fetched
// and decoded. A Fetcher performs one exchange per call and reports the
// outcome exactly once through a completion handler; Parse turns a raw body
// into a domain.FetchResult.
package profile

import (
	"context"
	"summit/pkg/domain"
)

// Fetcher is the abstraction for profile sources.
type Fetcher interface {
	// Fetch starts one exchange using creds and returns immediately. onComplete
	// is invoked exactly once with the outcome, on the fetcher's dispatcher; it
	// may be nil when the caller only uses the returned Call.
	Fetch(ctx context.Context, creds domain.Credentials, onComplete func(domain.FetchResult)) *Call
}

// FetcherFunc adapts a synchronous function to the Fetcher interface. The
// function runs on its own goroutine and the handler is invoked on it directly.
type FetcherFunc func(ctx context.Context, creds domain.Credentials) domain.FetchResult

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context,
	creds domain.Credentials,
	onComplete func(domain.FetchResult)) *Call {
	return Start(ctx, Immediate, onComplete, func(ctx context.Context) domain.FetchResult {
		return f(ctx, creds)
	})
}

var _ Fetcher = FetcherFunc(nil)
