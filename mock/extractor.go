package mock

import "github.com/fwojciec/yardstick"

var _ yardstick.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of yardstick.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*yardstick.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*yardstick.ExtractResult, error) {
	return e.ExtractFn(html)
}
