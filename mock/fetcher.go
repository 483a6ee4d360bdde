package mock

import (
	"context"

	"github.com/fwojciec/yardstick"
)

var _ yardstick.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of yardstick.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

// Close calls CloseFn when set.
func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
