package mock

import (
	"context"

	"github.com/fwojciec/yardstick"
)

var _ yardstick.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of yardstick.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, req yardstick.ScrapeRequest) (*yardstick.Article, error)
}

func (s *Scraper) Scrape(ctx context.Context, req yardstick.ScrapeRequest) (*yardstick.Article, error) {
	return s.ScrapeFn(ctx, req)
}
