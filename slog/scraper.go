package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/yardstick"
)

// Ensure LoggingScraper implements yardstick.Scraper.
var _ yardstick.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper and logs each scrape.
type LoggingScraper struct {
	next   yardstick.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next yardstick.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the outcome.
func (s *LoggingScraper) Scrape(ctx context.Context, req yardstick.ScrapeRequest) (article *yardstick.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", req.URL,
			"format", string(req.Format),
			"extractor", req.Extractor,
			"duration", time.Since(begin),
		}
		if article != nil {
			attrs = append(attrs, "title", article.Title, "chars", len(article.Content))
		}
		if err != nil {
			attrs = append(attrs, "code", yardstick.ErrorCode(err), "err", err)
			s.logger.Warn("scrape", attrs...)
			return
		}
		s.logger.Info("scrape", attrs...)
	}(time.Now())
	return s.next.Scrape(ctx, req)
}
