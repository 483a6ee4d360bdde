package mock

import (
	"context"

	"github.com/fwojciec/yardstick"
)

var _ yardstick.Amender = (*Amender)(nil)

// Amender is a mock implementation of yardstick.Amender.
type Amender struct {
	AmendFn func(ctx context.Context, text string) (string, error)
}

func (a *Amender) Amend(ctx context.Context, text string) (string, error) {
	return a.AmendFn(ctx, text)
}
