package mock

import "github.com/fwojciec/yardstick"

var _ yardstick.Converter = (*Converter)(nil)

// Converter is a mock implementation of yardstick.Converter.
type Converter struct {
	ConvertFn func(html, baseURL string) (string, error)
}

func (c *Converter) Convert(html, baseURL string) (string, error) {
	return c.ConvertFn(html, baseURL)
}
