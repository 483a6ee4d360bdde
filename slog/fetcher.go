// Package slog provides logging decorators for yardstick services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/yardstick"
)

// Ensure LoggingFetcher implements yardstick.Fetcher.
var _ yardstick.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. Failures are logged at warn
// level with their yardstick error code.
type LoggingFetcher struct {
	next   yardstick.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next yardstick.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", yardstick.ErrorCode(err), "err", err)
			f.logger.Warn("fetch", attrs...)
			return
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
